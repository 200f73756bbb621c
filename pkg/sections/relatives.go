package sections

import (
	"strings"

	"github.com/caseworks/go-sf86/pkg/form"
	"github.com/caseworks/go-sf86/pkg/pdfmap"
	"github.com/caseworks/go-sf86/pkg/validation"
)

const RelativeSlots = 6

// Relative type dropdown options.
var RelativeTypes = []string{
	"Mother", "Father", "Stepmother", "Stepfather", "Foster parent", "Child",
	"Stepchild", "Brother", "Sister", "Stepbrother", "Stepsister",
	"Half-brother", "Half-sister", "Father-in-law", "Mother-in-law", "Guardian",
}

// Relatives covers the applicant's immediate family.
type Relatives struct {
	Entries []RelativeEntry `json:"entries"`
}

// RelativeEntry is one relative record.
type RelativeEntry struct {
	Type         form.Field[string] `json:"type"`
	Name         form.PersonName    `json:"name"`
	DateOfBirth  form.Field[string] `json:"dateOfBirth"`
	BirthCountry form.Field[string] `json:"birthCountry"`
	Citizenship  form.Field[string] `json:"citizenship"`
	Deceased     form.Branch        `json:"deceased"`
	Address      form.Address       `json:"address"`
}

// NewRelatives binds the section to its PDF fields.
func NewRelatives() *Relatives {
	return &Relatives{}
}

// NewRelativeEntry builds entry defaults for the given slot.
func NewRelativeEntry(index int) RelativeEntry {
	id := func(format string) string { return slotID(index, RelativeSlots, format) }
	return RelativeEntry{
		Type: form.NewField[string](id("form1[0].Section18[%d].DropDownList15[0]")),
		Name: form.PersonName{
			Last:   form.NewField[string](id("form1[0].Section18[%d].TextField11[0]")),
			First:  form.NewField[string](id("form1[0].Section18[%d].TextField11[1]")),
			Middle: form.NewField[string](id("form1[0].Section18[%d].TextField11[2]")),
			Suffix: form.NewField[string](id("form1[0].Section18[%d].suffix[0]")),
		},
		DateOfBirth:  form.NewField[string](id("form1[0].Section18[%d].From_Datefield_Name_2[0]")),
		BirthCountry: form.NewField[string](id("form1[0].Section18[%d].DropDownList16[0]")),
		Citizenship:  form.NewField[string](id("form1[0].Section18[%d].DropDownList17[0]")),
		Deceased:     form.NewField[string](id("form1[0].Section18[%d].RadioButtonList[0]")),
		Address: form.Address{
			Street:  form.NewField[string](id("form1[0].Section18[%d].TextField11[3]")),
			City:    form.NewField[string](id("form1[0].Section18[%d].TextField11[4]")),
			State:   form.NewField[string](id("form1[0].Section18[%d].School6_State[0]")),
			ZipCode: form.NewField[string](id("form1[0].Section18[%d].TextField11[5]")),
			Country: form.NewField[string](id("form1[0].Section18[%d].DropDownList18[0]")),
		},
	}
}

func (s *Relatives) ID() string    { return "section18" }
func (s *Relatives) Title() string { return "Relatives" }

// NewEntry implements fieldpath.EntryFactory.
func (s *Relatives) NewEntry(list string, index int) (any, bool) {
	if list == "entries" {
		return NewRelativeEntry(index), true
	}
	return nil, false
}

// AddEntry appends a defaults-initialised entry and returns it for editing.
func (s *Relatives) AddEntry() *RelativeEntry {
	s.Entries = append(s.Entries, NewRelativeEntry(len(s.Entries)))
	return &s.Entries[len(s.Entries)-1]
}

func (s *Relatives) Validate() []validation.Issue {
	c := validation.NewCollector(s.ID())
	if len(s.Entries) == 0 {
		c.Add("section18.entries", "list each living or deceased immediate relative")
	}
	if len(s.Entries) > RelativeSlots {
		c.Add("section18.entries", "the form has %d entry slots; move additional relatives to the continuation sheet", RelativeSlots)
	}
	for i, e := range s.Entries {
		path := entryPath("section18.entries", i)
		if v := strings.TrimSpace(e.Type.Value); v == "" {
			c.Add(path+".type", "relative type is required")
		} else if !oneOf(v, RelativeTypes) {
			c.Add(path+".type", "relative type %q is not one of the form's options", v)
		}
		validation.PersonName(c, path+".name", e.Name, "relative")
		validation.FullDate(c, path+".dateOfBirth", e.DateOfBirth.Value, "date of birth", false)
		validation.Required(c, path+".birthCountry", e.BirthCountry.Value, "country of birth")
		validation.Branch(c, path+".deceased", e.Deceased, "deceased")
		if form.IsNo(e.Deceased) {
			validation.Address(c, path+".address", e.Address, "relative")
		}
	}
	return c.Issues()
}

func (s *Relatives) MapPDF(t *pdfmap.Table) error {
	return pdfmap.Walk(s, t)
}
