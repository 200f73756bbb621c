// Package answers loads, validates, and saves questionnaire answer
// documents. Documents are JSON or YAML trees keyed by section and answer
// names; they carry answer values only, never PDF field identifiers, which
// are reinstated when a document is applied to a questionnaire.
package answers
