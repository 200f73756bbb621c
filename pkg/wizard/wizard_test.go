package wizard

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/caseworks/go-sf86/pkg/form"
	"github.com/caseworks/go-sf86/pkg/sections"
)

// scriptDriver answers prompts from canned responses. Inputs are matched in
// order; confirms and selects are matched by message fragment so scripts
// survive flow reordering.
type scriptDriver struct {
	t        *testing.T
	inputs   []string
	confirms map[string]bool
	selects  map[string]int
	infos    []string
}

func newScriptDriver(t *testing.T) *scriptDriver {
	return &scriptDriver{
		t:        t,
		confirms: make(map[string]bool),
		selects:  make(map[string]int),
	}
}

func (d *scriptDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		d.t.Fatalf("unscripted input prompt: %q", cfg.Message)
	}
	out := d.inputs[0]
	d.inputs = d.inputs[1:]
	if cfg.Validator != nil && out != "" {
		if err := cfg.Validator(out); err != nil {
			d.t.Fatalf("scripted answer %q rejected for %q: %v", out, cfg.Message, err)
		}
	}
	return out, nil
}

func (d *scriptDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	for fragment, answer := range d.confirms {
		if strings.Contains(cfg.Message, fragment) {
			return answer, nil
		}
	}
	return false, nil
}

func (d *scriptDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	for fragment, idx := range d.selects {
		if strings.Contains(cfg.Message, fragment) {
			return idx, nil
		}
	}
	return 0, nil
}

func (d *scriptDriver) Info(ctx context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func TestRunIdentity(t *testing.T) {
	driver := newScriptDriver(t)
	driver.inputs = []string{
		"Doe", "Jane", "", "", // name
		"04/01/1990",                // date of birth
		"Arlington", "", "VA", "US", // place of birth
		"123-45-6789",
	}

	q := sections.NewQuestionnaire()
	w := New(WithPromptDriver(driver), WithSections("identity"))
	if err := w.Run(context.Background(), q); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := q.Identity.Name.Last.Value; got != "Doe" {
		t.Errorf("last name = %q, want Doe", got)
	}
	if got := q.Identity.DateOfBirth.Value; got != "04/01/1990" {
		t.Errorf("date of birth = %q", got)
	}
	if got := q.Identity.SSN.Number.Value; got != "123-45-6789" {
		t.Errorf("ssn = %q", got)
	}
	if len(driver.infos) == 0 {
		t.Error("section title was never announced")
	}
}

func TestRunBranchGating(t *testing.T) {
	driver := newScriptDriver(t)
	// passport branch answered no: no passport details may be prompted
	q := sections.NewQuestionnaire()
	w := New(WithPromptDriver(driver), WithSections("section8"))
	if err := w.Run(context.Background(), q); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !form.IsNo(q.Passport.HasPassport) {
		t.Errorf("hasPassport = %q, want NO", q.Passport.HasPassport.Value)
	}
	if q.Passport.Number.Value != "" {
		t.Errorf("passport number prompted despite NO branch")
	}
}

func TestRunRepeatingEntries(t *testing.T) {
	driver := newScriptDriver(t)
	driver.confirms["other names"] = true
	driver.confirms["Record an other name"] = true
	driver.inputs = []string{
		"Smith", "Jane", "", // name
		"",                   // maiden name
		"01/2010", "06/2015", // dates
		"Marriage",
	}

	q := sections.NewQuestionnaire()
	w := New(WithPromptDriver(driver), WithSections("section5"))
	if err := w.Run(context.Background(), q); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !form.IsYes(q.OtherNames.HasOtherNames) {
		t.Fatalf("hasOtherNames = %q, want YES", q.OtherNames.HasOtherNames.Value)
	}
	if len(q.OtherNames.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(q.OtherNames.Entries))
	}
	entry := q.OtherNames.Entries[0]
	if entry.Name.Last.Value != "Smith" {
		t.Errorf("entry last name = %q", entry.Name.Last.Value)
	}
	if entry.Name.Last.ID == "" {
		t.Error("entry created by the wizard lost its field id")
	}
	if entry.Reason.Value != "Marriage" {
		t.Errorf("reason = %q", entry.Reason.Value)
	}
}

func TestRunSelectExportValues(t *testing.T) {
	driver := newScriptDriver(t)
	driver.selects["Citizenship status"] = 2 // naturalized
	driver.inputs = []string{
		"", "", "", // certificate, court, date
	}

	q := sections.NewQuestionnaire()
	w := New(WithPromptDriver(driver), WithSections("section9"))
	if err := w.Run(context.Background(), q); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := q.Citizenship.Status.Value; got != sections.CitizenNaturalized {
		t.Errorf("status = %q, want %q", got, sections.CitizenNaturalized)
	}
}

func TestRunUnknownSection(t *testing.T) {
	q := sections.NewQuestionnaire()
	w := New(WithPromptDriver(newScriptDriver(t)), WithSections("section99"))
	err := w.Run(context.Background(), q)
	if !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("Run() error = %v, want ErrUnknownSection", err)
	}
}

func TestRunFixedReferences(t *testing.T) {
	driver := newScriptDriver(t)
	for i := 0; i < sections.ReferenceCount; i++ {
		driver.inputs = append(driver.inputs,
			"Ref", "Person", "", // name
			"01/2015",         // known since
			"",                // email
			"703-555-0100",    // telephone
			"Friend",          // relationship
			"", "Arlington",   // street, city
			"VA", "22203", "", // state, zip, country
		)
	}

	q := sections.NewQuestionnaire()
	w := New(WithPromptDriver(driver), WithSections("section16"))
	if err := w.Run(context.Background(), q); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for i := range q.References.People {
		if got := q.References.People[i].Name.Last.Value; got != "Ref" {
			t.Errorf("person %d last name = %q, want Ref", i, got)
		}
	}
}

func TestTouchAdvancesRevision(t *testing.T) {
	driver := newScriptDriver(t)
	q := sections.NewQuestionnaire()
	before := q.Metadata.Revision
	w := New(WithPromptDriver(driver), WithSections("section8"))
	if err := w.Run(context.Background(), q); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if q.Metadata.Revision <= before {
		t.Errorf("revision = %d, want > %d", q.Metadata.Revision, before)
	}
}
