package sections_test

import (
	"strings"
	"testing"

	"github.com/caseworks/go-sf86/pkg/pdfmap"
	"github.com/caseworks/go-sf86/pkg/sections"
	"github.com/caseworks/go-sf86/pkg/validation"
)

func residenceAt(from, to string, present bool) sections.ResidenceEntry {
	e := sections.NewResidenceEntry(0)
	e.Dates.From.Date.Set(from)
	e.Dates.To.Date.Set(to)
	e.Dates.Present.Set(present)
	e.Address.Street.Set("123 Main St")
	e.Address.City.Set("Richmond")
	e.Address.State.Set("VA")
	e.Address.ZipCode.Set("23220")
	e.Role.Set("Rent")
	e.Verifier.Name.Last.Set("Neighbor")
	e.Verifier.Name.First.Set("Nancy")
	return e
}

func hasIssueAt(issues []validation.Issue, path string) bool {
	for _, i := range issues {
		if i.Path == path {
			return true
		}
	}
	return false
}

func TestResidencesValidate(t *testing.T) {
	tests := []struct {
		name    string
		entries []sections.ResidenceEntry
		wantAt  string
	}{
		{
			name:   "no entries",
			wantAt: "section11.entries",
		},
		{
			name:    "no present entry",
			entries: []sections.ResidenceEntry{residenceAt("01/2020", "03/2022", false)},
			wantAt:  "section11.entries",
		},
		{
			name: "two present entries",
			entries: []sections.ResidenceEntry{
				residenceAt("03/2022", "", true),
				residenceAt("01/2020", "", true),
			},
			wantAt: "section11.entries",
		},
		{
			name: "coverage gap",
			entries: []sections.ResidenceEntry{
				residenceAt("01/2023", "", true),
				residenceAt("01/2019", "06/2020", false),
			},
			wantAt: "section11.entries[1]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sections.NewResidences()
			s.Entries = tt.entries
			issues := s.Validate()
			if !hasIssueAt(issues, tt.wantAt) {
				t.Errorf("no issue at %q, got %v", tt.wantAt, issues)
			}
		})
	}
}

func TestResidencesValidateClean(t *testing.T) {
	s := sections.NewResidences()
	s.Entries = []sections.ResidenceEntry{
		residenceAt("04/2022", "", true),
		residenceAt("01/2020", "05/2022", false),
	}
	if issues := s.Validate(); len(issues) != 0 {
		t.Errorf("issues = %v", issues)
	}
}

func TestResidencesRoleOther(t *testing.T) {
	s := sections.NewResidences()
	e := residenceAt("01/2020", "", true)
	e.Role.Set("Other")
	s.Entries = []sections.ResidenceEntry{e}
	if !hasIssueAt(s.Validate(), "section11.entries[0].roleOther") {
		t.Error("Other role without an explanation went unreported")
	}

	s.Entries[0].RoleOther.Set("Staying with family")
	if hasIssueAt(s.Validate(), "section11.entries[0].roleOther") {
		t.Error("explained Other role still reported")
	}

	s.Entries[0].Role.Set("Squatting")
	if !hasIssueAt(s.Validate(), "section11.entries[0].role") {
		t.Error("off-list role went unreported")
	}
}

func TestResidencesOverflow(t *testing.T) {
	s := sections.NewResidences()
	for i := 0; i < sections.ResidenceSlots+1; i++ {
		s.Entries = append(s.Entries, sections.NewResidenceEntry(i))
	}
	issues := s.Validate()
	found := false
	for _, issue := range issues {
		if issue.Path == "section11.entries" && strings.Contains(issue.Message, "continuation sheet") {
			found = true
		}
	}
	if !found {
		t.Errorf("slot overflow went unreported: %v", issues)
	}
}

func TestResidenceEntrySlotIDs(t *testing.T) {
	first := sections.NewResidenceEntry(0)
	second := sections.NewResidenceEntry(1)
	if first.Address.City.ID == "" || second.Address.City.ID == "" {
		t.Fatal("in-capacity entries must carry field ids")
	}
	if first.Address.City.ID == second.Address.City.ID {
		t.Error("slots share a field id")
	}

	// entries past the form's capacity carry no ids and stay unmapped
	overflow := sections.NewResidenceEntry(sections.ResidenceSlots)
	if overflow.Address.City.ID != "" {
		t.Errorf("overflow entry has id %q", overflow.Address.City.ID)
	}
	overflow.Address.City.Set("Nowhere")
	table := pdfmap.NewTable()
	s := sections.NewResidences()
	s.Entries = []sections.ResidenceEntry{overflow}
	if err := s.MapPDF(table); err != nil {
		t.Fatal(err)
	}
	if table.Len() != 0 {
		t.Errorf("overflow entry mapped %d fields", table.Len())
	}
}

func TestReferencesDuplicate(t *testing.T) {
	s := sections.NewReferences()
	for i := range s.People {
		s.People[i].Name.Last.Set("Smith")
		s.People[i].Name.First.Set("Pat")
	}
	issues := s.Validate()
	if !hasIssueAt(issues, "section16.people[1]") || !hasIssueAt(issues, "section16.people[2]") {
		t.Errorf("duplicate references went unreported: %v", issues)
	}
}
