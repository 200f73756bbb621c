package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/caseworks/go-sf86/pkg/answers"
	"github.com/caseworks/go-sf86/pkg/inventory"
	"github.com/caseworks/go-sf86/pkg/pdfmap"
	"github.com/caseworks/go-sf86/pkg/sanitize"
	"github.com/caseworks/go-sf86/pkg/sections"
	"github.com/caseworks/go-sf86/pkg/validation"
)

// Option customises the pipeline configuration.
type Option func(*Pipeline)

// WithLoader injects a custom answers loader, e.g. one backed by an fs.FS or
// a preconfigured HTTP client.
func WithLoader(loader answers.Loader) Option {
	return func(p *Pipeline) {
		p.loader = loader
	}
}

// WithInventory supplies the PDF field inventory. When present, every fill
// run cross-checks the mapping table against it.
func WithInventory(inv *inventory.Inventory) Option {
	return func(p *Pipeline) {
		p.inventory = inv
	}
}

// WithOutputFormat overrides the default output format (JSON).
func WithOutputFormat(format pdfmap.Format) Option {
	return func(p *Pipeline) {
		if format != "" {
			p.format = format
		}
	}
}

// WithoutSanitize disables the markup-stripping pass over text answers.
// Intended for tests that need byte-exact values.
func WithoutSanitize() Option {
	return func(p *Pipeline) {
		p.sanitize = false
	}
}

// Pipeline coordinates the full run from an answers document to PDF field
// output: load, decode, apply, sanitise, validate, map, cross-check, emit.
type Pipeline struct {
	loader    answers.Loader
	inventory *inventory.Inventory
	format    pdfmap.Format
	sanitize  bool
}

// New constructs a pipeline with defaults (file loader, JSON output,
// sanitising enabled).
func New(options ...Option) *Pipeline {
	p := &Pipeline{
		format:   pdfmap.FormatJSON,
		sanitize: true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// Request describes one pipeline run.
type Request struct {
	// Source identifies where the answers document lives. Optional when
	// Document is supplied.
	Source answers.Source

	// Document bypasses the loader when the caller already holds the payload.
	Document *answers.Document

	// Format overrides the pipeline's output format for this run.
	Format pdfmap.Format
}

// Result carries everything a run produced. Output is only set by Fill, and
// only when validation passed.
type Result struct {
	Questionnaire *sections.Questionnaire
	// Shape lists schema-level mismatches in the answers document.
	Shape []validation.Issue
	// Unresolved lists answer paths that could not be applied.
	Unresolved []validation.Issue
	// Validation is the aggregate section validation outcome.
	Validation validation.Result
	// Table is the PDF field mapping, present when validation passed.
	Table *pdfmap.Table
	// Inventory is the cross-check report, present when an inventory was
	// configured and the table was built.
	Inventory *inventory.Report
	Output    []byte
}

// Ready reports whether the run produced output fit for a PDF filler.
func (r *Result) Ready() bool {
	return r.Validation.Valid && len(r.Shape) == 0 && len(r.Unresolved) == 0 && r.Output != nil
}

// Validate loads an answers document, applies it, and reports every issue
// without producing output.
func (p *Pipeline) Validate(ctx context.Context, req Request) (*Result, error) {
	return p.run(ctx, req, false)
}

// Fill executes the full run and emits the PDF field table in the requested
// format. Emission is skipped when any validation or shape issue remains.
func (p *Pipeline) Fill(ctx context.Context, req Request) (*Result, error) {
	return p.run(ctx, req, true)
}

func (p *Pipeline) run(ctx context.Context, req Request, emit bool) (*Result, error) {
	if ctx == nil {
		return nil, errors.New("pipeline: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := p.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	decoded, err := answers.Decode(doc)
	if err != nil {
		return nil, err
	}

	result := &Result{Questionnaire: sections.NewQuestionnaire()}
	result.Shape = answers.ValidateShape(decoded)

	result.Unresolved, err = answers.Apply(result.Questionnaire, decoded)
	if err != nil {
		return nil, fmt.Errorf("pipeline: apply answers: %w", err)
	}

	if p.sanitize {
		sanitize.Apply(result.Questionnaire)
	}

	result.Validation = result.Questionnaire.Validate()

	table, err := result.Questionnaire.MapPDF()
	if err != nil {
		return nil, fmt.Errorf("pipeline: map fields: %w", err)
	}
	result.Table = table

	if p.inventory != nil {
		report := p.inventory.Check(table)
		result.Inventory = &report
	}

	if !emit {
		return result, nil
	}
	if !result.Validation.Valid || len(result.Shape) > 0 || len(result.Unresolved) > 0 {
		return result, nil
	}

	format := p.format
	if req.Format != "" {
		format = req.Format
	}
	output, err := table.Emit(format)
	if err != nil {
		return nil, fmt.Errorf("pipeline: emit: %w", err)
	}
	result.Output = output
	return result, nil
}

func (p *Pipeline) resolveDocument(ctx context.Context, req Request) (answers.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return answers.Document{}, errors.New("pipeline: an answers source or document is required")
	}
	doc, err := p.loader.Load(ctx, req.Source)
	if err != nil {
		return answers.Document{}, fmt.Errorf("pipeline: load answers: %w", err)
	}
	return doc, nil
}
