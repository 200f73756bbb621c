// Package pdfmap builds the flat PDF-field-id to value table a filled
// questionnaire serialises to. Section mappers populate a Table through typed
// setters; Walk handles the flat parts of a section generically by collecting
// Field leaves. The table serialises to JSON, FDF, or XFDF so any standard
// form-fill tool can merge it into the government PDF.
package pdfmap
