package sections

import (
	"fmt"

	"github.com/caseworks/go-sf86/pkg/form"
	"github.com/caseworks/go-sf86/pkg/pdfmap"
	"github.com/caseworks/go-sf86/pkg/validation"
)

// slotID formats the PDF id of a repeating-entry field. Entries past the
// form's fixed slot capacity get no id: they stay blank in the output and are
// reported by the section's validation instead.
func slotID(index, capacity int, format string) string {
	if index < 0 || index >= capacity {
		return ""
	}
	return fmt.Sprintf(format, index)
}

// Identity covers the opening page group: full legal name, date and place of
// birth, and social security number.
type Identity struct {
	Name         form.PersonName    `json:"name"`
	DateOfBirth  form.Field[string] `json:"dateOfBirth"`
	DOBEstimated form.Field[bool]   `json:"dobEstimated"`
	BirthCity    form.Field[string] `json:"birthCity"`
	BirthCounty  form.Field[string] `json:"birthCounty"`
	BirthState   form.Field[string] `json:"birthState"`
	BirthCountry form.Field[string] `json:"birthCountry"`
	SSN          form.SSNField      `json:"ssn"`
}

// NewIdentity binds the identity answers to their PDF fields.
func NewIdentity() *Identity {
	return &Identity{
		Name: form.PersonName{
			Last:   form.NewField[string]("form1[0].Sections1-6[0].TextField11[0]"),
			First:  form.NewField[string]("form1[0].Sections1-6[0].TextField11[1]"),
			Middle: form.NewField[string]("form1[0].Sections1-6[0].TextField11[2]"),
			Suffix: form.NewField[string]("form1[0].Sections1-6[0].suffix[0]"),
		},
		DateOfBirth:  form.NewField[string]("form1[0].Sections1-6[0].From_Datefield_Name_2[0]"),
		DOBEstimated: form.NewField[bool]("form1[0].Sections1-6[0].#field[10]"),
		BirthCity:    form.NewField[string]("form1[0].Sections1-6[0].TextField11[3]"),
		BirthCounty:  form.NewField[string]("form1[0].Sections1-6[0].TextField11[4]"),
		BirthState:   form.NewField[string]("form1[0].Sections1-6[0].School6_State[0]"),
		BirthCountry: form.NewField[string]("form1[0].Sections1-6[0].DropDownList1[0]"),
		SSN: form.SSNField{
			Number:        form.NewField[string]("form1[0].Sections1-6[0].SSN[0]"),
			NotApplicable: form.NewField[bool]("form1[0].Sections1-6[0].#field[13]"),
		},
	}
}

func (s *Identity) ID() string    { return "identity" }
func (s *Identity) Title() string { return "Information About You" }

func (s *Identity) Validate() []validation.Issue {
	c := validation.NewCollector(s.ID())
	validation.PersonName(c, "identity.name", s.Name, "applicant")
	validation.Required(c, "identity.dateOfBirth", s.DateOfBirth.Value, "date of birth")
	validation.FullDate(c, "identity.dateOfBirth", s.DateOfBirth.Value, "date of birth", false)
	validation.Required(c, "identity.birthCity", s.BirthCity.Value, "city of birth")
	validation.Required(c, "identity.birthCountry", s.BirthCountry.Value, "country of birth")
	validation.SSN(c, "identity.ssn", s.SSN)
	return c.Issues()
}

func (s *Identity) MapPDF(t *pdfmap.Table) error {
	return pdfmap.Walk(s, t)
}
