package sections

import (
	"strings"

	"github.com/caseworks/go-sf86/pkg/form"
	"github.com/caseworks/go-sf86/pkg/pdfmap"
	"github.com/caseworks/go-sf86/pkg/validation"
)

const EducationSlots = 3

// School type radio export values.
var SchoolTypes = []string{"High School", "College/University/Military College", "Vocational/Technical/Trade School", "Correspondence/Distance/Extension/Online School"}

// Education covers schools attended and degrees received.
type Education struct {
	Attended form.Branch      `json:"attended"`
	Entries  []EducationEntry `json:"entries"`
}

// EducationEntry is one school attended.
type EducationEntry struct {
	Dates          form.DateRange     `json:"dates"`
	SchoolName     form.Field[string] `json:"schoolName"`
	SchoolType     form.Field[string] `json:"schoolType"`
	Address        form.Address       `json:"address"`
	ReceivedDegree form.Branch        `json:"receivedDegree"`
	Degree         form.Field[string] `json:"degree"`
	DegreeDate     form.DateField     `json:"degreeDate"`
}

// NewEducation binds the section to its PDF fields.
func NewEducation() *Education {
	return &Education{
		Attended: form.NewField[string]("form1[0].Section12[0].RadioButtonList[0]"),
	}
}

// NewEducationEntry builds entry defaults for the given slot.
func NewEducationEntry(index int) EducationEntry {
	id := func(format string) string { return slotID(index, EducationSlots, format) }
	return EducationEntry{
		Dates: form.DateRange{
			From: form.DateField{
				Date:      form.NewField[string](id("form1[0].Section12[%d].From_Datefield_Name_2[0]")),
				Estimated: form.NewField[bool](id("form1[0].Section12[%d].#field[1]")),
			},
			To: form.DateField{
				Date:      form.NewField[string](id("form1[0].Section12[%d].From_Datefield_Name_2[1]")),
				Estimated: form.NewField[bool](id("form1[0].Section12[%d].#field[3]")),
			},
			Present: form.NewField[bool](id("form1[0].Section12[%d].#field[4]")),
		},
		SchoolName: form.NewField[string](id("form1[0].Section12[%d].TextField11[0]")),
		SchoolType: form.NewField[string](id("form1[0].Section12[%d].RadioButtonList[0]")),
		Address: form.Address{
			Street:  form.NewField[string](id("form1[0].Section12[%d].TextField11[1]")),
			City:    form.NewField[string](id("form1[0].Section12[%d].TextField11[2]")),
			State:   form.NewField[string](id("form1[0].Section12[%d].School6_State[0]")),
			ZipCode: form.NewField[string](id("form1[0].Section12[%d].TextField11[3]")),
			Country: form.NewField[string](id("form1[0].Section12[%d].DropDownList6[0]")),
		},
		ReceivedDegree: form.NewField[string](id("form1[0].Section12[%d].RadioButtonList[1]")),
		Degree:         form.NewField[string](id("form1[0].Section12[%d].TextField11[4]")),
		DegreeDate: form.DateField{
			Date:      form.NewField[string](id("form1[0].Section12[%d].From_Datefield_Name_2[2]")),
			Estimated: form.NewField[bool](id("form1[0].Section12[%d].#field[9]")),
		},
	}
}

func (s *Education) ID() string    { return "section12" }
func (s *Education) Title() string { return "Where You Went To School" }

// NewEntry implements fieldpath.EntryFactory.
func (s *Education) NewEntry(list string, index int) (any, bool) {
	if list == "entries" {
		return NewEducationEntry(index), true
	}
	return nil, false
}

// AddEntry appends a defaults-initialised entry and returns it for editing.
func (s *Education) AddEntry() *EducationEntry {
	s.Entries = append(s.Entries, NewEducationEntry(len(s.Entries)))
	return &s.Entries[len(s.Entries)-1]
}

func (s *Education) Validate() []validation.Issue {
	c := validation.NewCollector(s.ID())
	validation.Branch(c, "section12.attended", s.Attended, "school attendance")
	if form.IsYes(s.Attended) && len(s.Entries) == 0 {
		c.Add("section12.entries", "at least one entry is required when answering YES")
	}
	if len(s.Entries) > EducationSlots {
		c.Add("section12.entries", "the form has %d entry slots; move additional schools to the continuation sheet", EducationSlots)
	}
	for i, e := range s.Entries {
		path := entryPath("section12.entries", i)
		validation.DateRange(c, path+".dates", e.Dates, "attendance period")
		validation.Required(c, path+".schoolName", e.SchoolName.Value, "school name")
		validation.Address(c, path+".address", e.Address, "school")
		if v := e.SchoolType.Value; v != "" && !oneOf(v, SchoolTypes) {
			c.Add(path+".schoolType", "school type %q is not one of the form's options", v)
		}
		if form.IsYes(e.ReceivedDegree) {
			validation.Required(c, path+".degree", e.Degree.Value, "degree")
			validation.MonthYear(c, path+".degreeDate", e.DegreeDate, "degree date", false)
		} else if strings.TrimSpace(e.Degree.Value) != "" {
			c.Add(path+".degree", "a degree is recorded but the degree question was not answered YES")
		}
	}
	return c.Issues()
}

func (s *Education) MapPDF(t *pdfmap.Table) error {
	return pdfmap.Walk(s, t)
}
