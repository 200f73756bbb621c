package wizard

import (
	"context"
	"fmt"

	"github.com/caseworks/go-sf86/pkg/fieldpath"
	"github.com/caseworks/go-sf86/pkg/form"
	"github.com/caseworks/go-sf86/pkg/sections"
)

// Wizard walks an applicant through the questionnaire section by section,
// writing answers onto the questionnaire through field paths.
type Wizard struct {
	driver     PromptDriver
	sectionIDs []string
}

// Option configures the wizard.
type Option func(*Wizard)

// WithPromptDriver overrides the prompt driver. Tests use a scripted driver
// here instead of a real terminal.
func WithPromptDriver(driver PromptDriver) Option {
	return func(w *Wizard) {
		if driver != nil {
			w.driver = driver
		}
	}
}

// WithSections restricts the session to the named section ids, in the given
// order. An empty list means every section in form order.
func WithSections(ids ...string) Option {
	return func(w *Wizard) {
		w.sectionIDs = ids
	}
}

// New constructs a wizard with defaults (survey driver, all sections).
func New(options ...Option) *Wizard {
	w := &Wizard{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w
}

// Run prompts through the configured sections and records the answers on the
// questionnaire. Aborting a prompt returns ErrAborted; answers recorded
// before the abort stay on the questionnaire so the draft can be saved.
func (w *Wizard) Run(ctx context.Context, q *sections.Questionnaire) error {
	if ctx == nil {
		return fmt.Errorf("wizard: context is required")
	}
	registry := q.Registry()

	ids := w.sectionIDs
	if len(ids) == 0 {
		for _, sec := range q.Sections() {
			ids = append(ids, sec.ID())
		}
	}

	for _, id := range ids {
		sec, ok := registry.ByID(id)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSection, id)
		}
		fl, ok := flows[id]
		if !ok {
			continue
		}
		if err := w.driver.Info(ctx, sec.Title()); err != nil {
			return err
		}
		if err := w.runFlow(ctx, q, id, fl); err != nil {
			return err
		}
		q.Touch()
	}
	return nil
}

func (w *Wizard) runFlow(ctx context.Context, q *sections.Questionnaire, sectionID string, fl flow) error {
	if err := w.runSteps(ctx, q, sectionID, fl.steps); err != nil {
		return err
	}
	if fl.entries == nil {
		return nil
	}
	ef := fl.entries
	if ef.when != "" && !branchIsYes(q, sectionID+"."+ef.when) {
		return nil
	}
	if len(ef.whenAny) > 0 {
		any := false
		for _, branch := range ef.whenAny {
			if branchIsYes(q, sectionID+"."+branch) {
				any = true
				break
			}
		}
		if !any {
			return nil
		}
	}
	if ef.count > 0 {
		for i := 0; i < ef.count; i++ {
			prefix := fmt.Sprintf("%s.%s[%d]", sectionID, ef.list, i)
			if err := w.runSteps(ctx, q, prefix, ef.steps); err != nil {
				return err
			}
		}
		return nil
	}
	for i := 0; ; i++ {
		if ef.max > 0 && i >= ef.max {
			if err := w.driver.Info(ctx, "No more entries fit on the form; continue on a continuation sheet."); err != nil {
				return err
			}
			return nil
		}
		message := ef.first
		if i > 0 {
			message = ef.again
		}
		add, err := w.driver.Confirm(ctx, ConfirmConfig{Message: message})
		if err != nil {
			return err
		}
		if !add {
			return nil
		}
		prefix := fmt.Sprintf("%s.%s[%d]", sectionID, ef.list, i)
		if err := w.runSteps(ctx, q, prefix, ef.steps); err != nil {
			return err
		}
	}
}

func (w *Wizard) runSteps(ctx context.Context, q *sections.Questionnaire, prefix string, steps []step) error {
	for _, st := range steps {
		if st.when != "" && !branchIsYes(q, prefix+"."+st.when) {
			continue
		}
		path := prefix + "." + st.path
		switch st.kind {
		case stepBranch:
			yes, err := w.driver.Confirm(ctx, ConfirmConfig{Message: st.message, Help: st.help})
			if err != nil {
				return err
			}
			answer := form.BranchNo
			if yes {
				answer = form.BranchYes
			}
			if err := fieldpath.Set(q, path, answer); err != nil {
				return err
			}
		case stepCheck:
			on, err := w.driver.Confirm(ctx, ConfirmConfig{Message: st.message, Help: st.help})
			if err != nil {
				return err
			}
			if err := fieldpath.Set(q, path, on); err != nil {
				return err
			}
		case stepSelect:
			idx, err := w.driver.Select(ctx, SelectConfig{
				Message: st.message,
				Options: st.options,
				Help:    st.help,
			})
			if err != nil {
				return err
			}
			if idx < 0 || idx >= len(st.options) {
				continue
			}
			answer := st.options[idx]
			if len(st.values) == len(st.options) {
				answer = st.values[idx]
			}
			if err := fieldpath.Set(q, path, answer); err != nil {
				return err
			}
		default:
			value, err := w.driver.Input(ctx, InputConfig{
				Message:   st.message,
				Help:      st.help,
				Default:   currentString(q, path),
				Validator: st.validate,
			})
			if err != nil {
				return err
			}
			if value == "" && st.optional {
				continue
			}
			if err := fieldpath.Set(q, path, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func branchIsYes(q *sections.Questionnaire, path string) bool {
	value, err := fieldpath.GetValue(q, path)
	if err != nil {
		return false
	}
	s, ok := value.(string)
	return ok && s == form.BranchYes
}

func currentString(q *sections.Questionnaire, path string) string {
	value, err := fieldpath.GetValue(q, path)
	if err != nil {
		return ""
	}
	s, _ := value.(string)
	return s
}
