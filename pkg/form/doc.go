// Package form defines the typed answer model shared by every questionnaire
// section. The central type is Field, a generic wrapper pairing an answer
// value with the fixed PDF form field identifier it populates. Composite
// shapes (names, addresses, date ranges, telephones) mirror how the PDF
// splits those answers across individual fields, so section structs compose
// them directly and the PDF mapper can walk any section without per-type
// knowledge. Identifiers are structural: JSON and YAML serialisation carry
// values only, and section default constructors reinstate identifiers on load.
package form
