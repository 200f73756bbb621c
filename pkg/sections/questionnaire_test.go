package sections_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/caseworks/go-sf86/pkg/sections"
	"github.com/caseworks/go-sf86/pkg/testsupport"
)

func TestNewQuestionnaireSectionOrder(t *testing.T) {
	q := sections.NewQuestionnaire()
	var got []string
	for _, s := range q.Sections() {
		got = append(got, s.ID())
	}
	want := []string{
		"identity", "section5", "section6", "section7", "section8",
		"section9", "section11", "section12", "section13", "section14",
		"section15", "section16", "section18", "section22", "section23",
		"section26", "section27", "section29",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("section order mismatch (-want +got):\n%s", diff)
	}
}

func TestNewQuestionnaireMetadata(t *testing.T) {
	q := sections.NewQuestionnaire()
	if q.Metadata.DocumentID == "" {
		t.Error("fresh questionnaire has no document id")
	}
	if q.Metadata.Revision != 1 {
		t.Errorf("Revision = %d, want 1", q.Metadata.Revision)
	}
	if sections.NewQuestionnaire().Metadata.DocumentID == q.Metadata.DocumentID {
		t.Error("document ids are not unique")
	}
}

func TestRegistry(t *testing.T) {
	q := sections.NewQuestionnaire()
	r := q.Registry()

	s, ok := r.ByID("section11")
	if !ok {
		t.Fatal("section11 missing from registry")
	}
	if s.Title() != "Where You Have Lived" {
		t.Errorf("Title() = %q", s.Title())
	}
	if _, ok := r.ByID("section99"); ok {
		t.Error("unknown id resolved")
	}
	if got, want := len(r.All()), len(q.Sections()); got != want {
		t.Errorf("All() has %d sections, want %d", got, want)
	}

	ids := r.IDs()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("IDs() not sorted: %v", ids)
		}
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate section id did not panic")
		}
	}()
	s := sections.NewIdentity()
	sections.NewRegistry(s, s)
}

func TestValidateFreshQuestionnaire(t *testing.T) {
	result := sections.NewQuestionnaire().Validate()
	if result.Valid {
		t.Fatal("an empty questionnaire must not validate")
	}
	found := false
	for _, issue := range result.Issues {
		if issue.Section == "section11" {
			found = true
		}
	}
	if !found {
		t.Error("missing residence coverage went unreported")
	}
}

func TestValidateCompleteQuestionnaire(t *testing.T) {
	result := testsupport.CompleteQuestionnaire().Validate()
	if !result.Valid {
		for _, issue := range result.Issues {
			t.Errorf("unexpected issue: %s", issue)
		}
	}
}

func TestMapPDF(t *testing.T) {
	q := testsupport.CompleteQuestionnaire()
	table, err := q.MapPDF()
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := table.Get("form1[0].Sections1-6[0].TextField11[0]"); !ok || got != "Doe" {
		t.Errorf("last name field = %q, %v", got, ok)
	}
	if table.Len() < 50 {
		t.Errorf("Len() = %d, a complete questionnaire should populate many fields", table.Len())
	}
}

func TestMapPDFEmptyQuestionnaire(t *testing.T) {
	table, err := sections.NewQuestionnaire().MapPDF()
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 0 {
		t.Errorf("Len() = %d, unanswered fields must stay out of the table", table.Len())
	}
}
