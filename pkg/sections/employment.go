package sections

import (
	"strings"

	"github.com/caseworks/go-sf86/pkg/form"
	"github.com/caseworks/go-sf86/pkg/pdfmap"
	"github.com/caseworks/go-sf86/pkg/validation"
)

const EmploymentSlots = 4

// Employment activity radio export values.
var EmploymentActivities = []string{
	"Active military duty station", "National Guard/Reserve", "USPHS Commissioned Corps",
	"Other federal employment", "State government", "Self-employment", "Unemployment",
	"Federal contractor", "Non-government employment", "Other",
}

// Employment covers the applicant's employment activities, including
// unemployment periods and supervisor contacts for verification.
type Employment struct {
	Entries []EmploymentEntry `json:"entries"`
}

// EmploymentEntry is one employment activity.
type EmploymentEntry struct {
	Activity      form.Field[string] `json:"activity"`
	ActivityOther form.Field[string] `json:"activityOther"`
	Dates         form.DateRange     `json:"dates"`
	Employer      form.Field[string] `json:"employer"`
	PositionTitle form.Field[string] `json:"positionTitle"`
	Address       form.Address       `json:"address"`
	Telephone     form.Telephone     `json:"telephone"`
	Supervisor    Supervisor         `json:"supervisor"`
	// Unemployment periods name a reference instead of a supervisor.
	ReferenceName form.PersonName `json:"referenceName"`
}

// Supervisor identifies the entry's supervisor for employer verification.
type Supervisor struct {
	Name      form.Field[string] `json:"name"`
	Title     form.Field[string] `json:"title"`
	Email     form.Field[string] `json:"email"`
	Telephone form.Telephone     `json:"telephone"`
	Address   form.Address       `json:"address"`
}

// NewEmployment binds the section to its PDF fields.
func NewEmployment() *Employment {
	return &Employment{}
}

// NewEmploymentEntry builds entry defaults for the given slot.
func NewEmploymentEntry(index int) EmploymentEntry {
	id := func(format string) string { return slotID(index, EmploymentSlots, format) }
	return EmploymentEntry{
		Activity:      form.NewField[string](id("form1[0].Section13A[%d].RadioButtonList[0]")),
		ActivityOther: form.NewField[string](id("form1[0].Section13A[%d].TextField11[0]")),
		Dates: form.DateRange{
			From: form.DateField{
				Date:      form.NewField[string](id("form1[0].Section13A[%d].From_Datefield_Name_2[0]")),
				Estimated: form.NewField[bool](id("form1[0].Section13A[%d].#field[2]")),
			},
			To: form.DateField{
				Date:      form.NewField[string](id("form1[0].Section13A[%d].From_Datefield_Name_2[1]")),
				Estimated: form.NewField[bool](id("form1[0].Section13A[%d].#field[4]")),
			},
			Present: form.NewField[bool](id("form1[0].Section13A[%d].#field[5]")),
		},
		Employer:      form.NewField[string](id("form1[0].Section13A[%d].TextField11[1]")),
		PositionTitle: form.NewField[string](id("form1[0].Section13A[%d].TextField11[2]")),
		Address: form.Address{
			Street:  form.NewField[string](id("form1[0].Section13A[%d].TextField11[3]")),
			City:    form.NewField[string](id("form1[0].Section13A[%d].TextField11[4]")),
			State:   form.NewField[string](id("form1[0].Section13A[%d].School6_State[0]")),
			ZipCode: form.NewField[string](id("form1[0].Section13A[%d].TextField11[5]")),
			Country: form.NewField[string](id("form1[0].Section13A[%d].DropDownList7[0]")),
		},
		Telephone: form.Telephone{
			Number:        form.NewField[string](id("form1[0].Section13A[%d].p3-t68[0]")),
			Extension:     form.NewField[string](id("form1[0].Section13A[%d].p3-t68[1]")),
			International: form.NewField[bool](id("form1[0].Section13A[%d].#field[12]")),
			Day:           form.NewField[bool](id("form1[0].Section13A[%d].#field[13]")),
			Night:         form.NewField[bool](id("form1[0].Section13A[%d].#field[14]")),
		},
		Supervisor: Supervisor{
			Name:  form.NewField[string](id("form1[0].Section13A[%d].TextField11[6]")),
			Title: form.NewField[string](id("form1[0].Section13A[%d].TextField11[7]")),
			Email: form.NewField[string](id("form1[0].Section13A[%d].TextField11[8]")),
			Telephone: form.Telephone{
				Number:    form.NewField[string](id("form1[0].Section13A[%d].p3-t68[2]")),
				Extension: form.NewField[string](id("form1[0].Section13A[%d].p3-t68[3]")),
				Day:       form.NewField[bool](id("form1[0].Section13A[%d].#field[18]")),
				Night:     form.NewField[bool](id("form1[0].Section13A[%d].#field[19]")),
			},
			Address: form.Address{
				Street:  form.NewField[string](id("form1[0].Section13A[%d].TextField11[9]")),
				City:    form.NewField[string](id("form1[0].Section13A[%d].TextField11[10]")),
				State:   form.NewField[string](id("form1[0].Section13A[%d].School6_State[1]")),
				ZipCode: form.NewField[string](id("form1[0].Section13A[%d].TextField11[11]")),
				Country: form.NewField[string](id("form1[0].Section13A[%d].DropDownList8[0]")),
			},
		},
		ReferenceName: form.PersonName{
			Last:  form.NewField[string](id("form1[0].Section13A[%d].TextField11[12]")),
			First: form.NewField[string](id("form1[0].Section13A[%d].TextField11[13]")),
		},
	}
}

func (s *Employment) ID() string    { return "section13" }
func (s *Employment) Title() string { return "Employment Activities" }

// NewEntry implements fieldpath.EntryFactory.
func (s *Employment) NewEntry(list string, index int) (any, bool) {
	if list == "entries" {
		return NewEmploymentEntry(index), true
	}
	return nil, false
}

// AddEntry appends a defaults-initialised entry and returns it for editing.
func (s *Employment) AddEntry() *EmploymentEntry {
	s.Entries = append(s.Entries, NewEmploymentEntry(len(s.Entries)))
	return &s.Entries[len(s.Entries)-1]
}

func (s *Employment) Validate() []validation.Issue {
	c := validation.NewCollector(s.ID())
	if len(s.Entries) == 0 {
		c.Add("section13.entries", "at least the current employment activity is required")
	}
	if len(s.Entries) > EmploymentSlots {
		c.Add("section13.entries", "the form has %d entry slots; move additional activities to the continuation sheet", EmploymentSlots)
	}
	for i, e := range s.Entries {
		path := entryPath("section13.entries", i)
		validation.DateRange(c, path+".dates", e.Dates, "employment period")
		activity := strings.TrimSpace(e.Activity.Value)
		if activity == "" {
			c.Add(path+".activity", "employment activity is required")
			continue
		}
		if !oneOf(activity, EmploymentActivities) {
			c.Add(path+".activity", "employment activity %q is not one of the form's options", activity)
			continue
		}
		switch activity {
		case "Other":
			validation.Required(c, path+".activityOther", e.ActivityOther.Value, "activity explanation")
		case "Unemployment":
			validation.Required(c, path+".referenceName.last", e.ReferenceName.Last.Value, "reference last name")
			validation.Required(c, path+".referenceName.first", e.ReferenceName.First.Value, "reference first name")
		default:
			validation.Required(c, path+".employer", e.Employer.Value, "employer name")
			validation.Required(c, path+".positionTitle", e.PositionTitle.Value, "position title")
			validation.Address(c, path+".address", e.Address, "employer")
			validation.Phone(c, path+".telephone", e.Telephone, "employer telephone")
			validation.Required(c, path+".supervisor.name", e.Supervisor.Name.Value, "supervisor name")
			validation.Email(c, path+".supervisor.email", e.Supervisor.Email.Value)
		}
	}
	return c.Issues()
}

func (s *Employment) MapPDF(t *pdfmap.Table) error {
	return pdfmap.Walk(s, t)
}
