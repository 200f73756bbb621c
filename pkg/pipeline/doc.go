// Package pipeline coordinates the full run from an answers document to PDF
// field output. It wires the loading, decoding, sanitising, validation,
// mapping, and inventory cross-check stages together while remaining open to
// dependency injection for callers that need to swap any one of them.
package pipeline
