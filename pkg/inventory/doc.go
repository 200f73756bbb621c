// Package inventory catalogues the fillable fields of the questionnaire PDF
// and cross-checks mapping tables against that catalogue before output is
// produced. A mapping that names a field the PDF lacks, or writes a value a
// field cannot hold, is caught here rather than silently dropped by a PDF
// filler downstream.
package inventory
