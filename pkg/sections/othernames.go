package sections

import (
	"github.com/caseworks/go-sf86/pkg/form"
	"github.com/caseworks/go-sf86/pkg/pdfmap"
	"github.com/caseworks/go-sf86/pkg/validation"
)

// OtherNameSlots is the number of entry subforms on the printed page.
const OtherNameSlots = 4

// OtherNames records every other name the applicant has used: maiden names,
// aliases, and former legal names, each with the period of use.
type OtherNames struct {
	HasOtherNames form.Branch      `json:"hasOtherNames"`
	Entries       []OtherNameEntry `json:"entries"`
}

// OtherNameEntry is one name-used record.
type OtherNameEntry struct {
	Name       form.PersonName    `json:"name"`
	MaidenName form.Field[string] `json:"maidenName"`
	Dates      form.DateRange     `json:"dates"`
	Reason     form.Field[string] `json:"reason"`
}

// NewOtherNames binds the section to its PDF fields.
func NewOtherNames() *OtherNames {
	return &OtherNames{
		HasOtherNames: form.NewField[string]("form1[0].Sections1-6[0].RadioButtonList[0]"),
	}
}

// NewOtherNameEntry builds entry defaults for the given slot.
func NewOtherNameEntry(index int) OtherNameEntry {
	return OtherNameEntry{
		Name: form.PersonName{
			Last:   form.NewField[string](slotID(index, OtherNameSlots, "form1[0].Section5[%d].TextField11[0]")),
			First:  form.NewField[string](slotID(index, OtherNameSlots, "form1[0].Section5[%d].TextField11[1]")),
			Middle: form.NewField[string](slotID(index, OtherNameSlots, "form1[0].Section5[%d].TextField11[2]")),
			Suffix: form.NewField[string](slotID(index, OtherNameSlots, "form1[0].Section5[%d].suffix[0]")),
		},
		MaidenName: form.NewField[string](slotID(index, OtherNameSlots, "form1[0].Section5[%d].RadioButtonList[0]")),
		Dates: form.DateRange{
			From: form.DateField{
				Date:      form.NewField[string](slotID(index, OtherNameSlots, "form1[0].Section5[%d].From_Datefield_Name_2[0]")),
				Estimated: form.NewField[bool](slotID(index, OtherNameSlots, "form1[0].Section5[%d].#field[5]")),
			},
			To: form.DateField{
				Date:      form.NewField[string](slotID(index, OtherNameSlots, "form1[0].Section5[%d].From_Datefield_Name_2[1]")),
				Estimated: form.NewField[bool](slotID(index, OtherNameSlots, "form1[0].Section5[%d].#field[7]")),
			},
			Present: form.NewField[bool](slotID(index, OtherNameSlots, "form1[0].Section5[%d].#field[8]")),
		},
		Reason: form.NewField[string](slotID(index, OtherNameSlots, "form1[0].Section5[%d].TextField11[3]")),
	}
}

func (s *OtherNames) ID() string    { return "section5" }
func (s *OtherNames) Title() string { return "Other Names Used" }

// NewEntry implements fieldpath.EntryFactory.
func (s *OtherNames) NewEntry(list string, index int) (any, bool) {
	if list == "entries" {
		return NewOtherNameEntry(index), true
	}
	return nil, false
}

// AddEntry appends a defaults-initialised entry and returns it for editing.
func (s *OtherNames) AddEntry() *OtherNameEntry {
	s.Entries = append(s.Entries, NewOtherNameEntry(len(s.Entries)))
	return &s.Entries[len(s.Entries)-1]
}

func (s *OtherNames) Validate() []validation.Issue {
	c := validation.NewCollector(s.ID())
	validation.Branch(c, "section5.hasOtherNames", s.HasOtherNames, "other names used")
	if form.IsNo(s.HasOtherNames) && len(s.Entries) > 0 {
		c.Add("section5.entries", "entries are present but the question was answered NO")
	}
	if form.IsYes(s.HasOtherNames) && len(s.Entries) == 0 {
		c.Add("section5.entries", "at least one entry is required when answering YES")
	}
	if len(s.Entries) > OtherNameSlots {
		c.Add("section5.entries", "the form has %d entry slots; move additional names to the continuation sheet", OtherNameSlots)
	}
	for i, e := range s.Entries {
		path := entryPath("section5.entries", i)
		validation.PersonName(c, path+".name", e.Name, "other name")
		validation.DateRange(c, path+".dates", e.Dates, "period of use")
		validation.Required(c, path+".reason", e.Reason.Value, "reason for the name change")
	}
	return c.Issues()
}

func (s *OtherNames) MapPDF(t *pdfmap.Table) error {
	return pdfmap.Walk(s, t)
}
