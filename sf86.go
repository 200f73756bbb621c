// Package sf86 assembles questionnaire answers into PDF form field data. The
// root package re-exports the types most callers need and offers one-call
// entry points over the pipeline; the pkg tree holds the full API.
package sf86

import (
	"context"

	"github.com/caseworks/go-sf86/pkg/answers"
	"github.com/caseworks/go-sf86/pkg/pdfmap"
	"github.com/caseworks/go-sf86/pkg/pipeline"
	"github.com/caseworks/go-sf86/pkg/sections"
	"github.com/caseworks/go-sf86/pkg/validation"
)

// Questionnaire aliases the full answer model exported via the root package
// for convenience.
type Questionnaire = sections.Questionnaire

// Issue is one validation finding, located by section and field path.
type Issue = validation.Issue

// Result is the aggregate outcome of validating a questionnaire.
type Result = validation.Result

// Source identifies where an answers document lives.
type Source = answers.Source

// Format names a serialisation of the PDF field table.
type Format = pdfmap.Format

// Output formats accepted by Fill.
const (
	FormatJSON = pdfmap.FormatJSON
	FormatFDF  = pdfmap.FormatFDF
	FormatXFDF = pdfmap.FormatXFDF
)

// New returns a defaults-initialised questionnaire with every answer bound to
// its PDF field identifier.
func New() *Questionnaire {
	return sections.NewQuestionnaire()
}

// FileSource points an entry point at an answers file. JSON and YAML are
// detected by extension.
func FileSource(path string) Source {
	return answers.SourceFromFile(path)
}

// Fill loads the answers document, validates it, and emits the PDF field
// table in the requested format. It is the simplest entry point for callers
// that just want fill data; the returned result carries every issue found
// when validation blocks emission.
func Fill(ctx context.Context, source Source, format Format, options ...pipeline.Option) (*pipeline.Result, error) {
	p := pipeline.New(options...)
	return p.Fill(ctx, pipeline.Request{Source: source, Format: format})
}

// Validate loads and applies the answers document, reporting every issue
// without producing output.
func Validate(ctx context.Context, source Source, options ...pipeline.Option) (*pipeline.Result, error) {
	p := pipeline.New(options...)
	return p.Validate(ctx, pipeline.Request{Source: source})
}
