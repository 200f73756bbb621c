package sections

import (
	"strings"

	"github.com/caseworks/go-sf86/pkg/form"
	"github.com/caseworks/go-sf86/pkg/pdfmap"
	"github.com/caseworks/go-sf86/pkg/validation"
)

const MilitarySlots = 2

// Service branch dropdown options.
var ServiceBranches = []string{"Army", "Navy", "Air Force", "Marine Corps", "Coast Guard", "Space Force", "Army National Guard", "Air National Guard"}

// Discharge type radio export values.
var DischargeTypes = []string{"Honorable", "General", "Other Than Honorable", "Bad Conduct", "Dishonorable", "Other"}

// MilitaryHistory covers US military service.
type MilitaryHistory struct {
	HasServed form.Branch            `json:"hasServed"`
	Entries   []MilitaryServiceEntry `json:"entries"`
}

// MilitaryServiceEntry is one period of service.
type MilitaryServiceEntry struct {
	Branch          form.Field[string] `json:"branch"`
	Dates           form.DateRange     `json:"dates"`
	ServiceNumber   form.Field[string] `json:"serviceNumber"`
	OfficerEnlisted form.Field[string] `json:"officerEnlisted"`
	Discharged      form.Branch        `json:"discharged"`
	DischargeType   form.Field[string] `json:"dischargeType"`
	DischargeDate   form.DateField     `json:"dischargeDate"`
	DischargeReason form.Field[string] `json:"dischargeReason"`
}

// NewMilitaryHistory binds the section to its PDF fields.
func NewMilitaryHistory() *MilitaryHistory {
	return &MilitaryHistory{
		HasServed: form.NewField[string]("form1[0].Section15[0].RadioButtonList[0]"),
	}
}

// NewMilitaryServiceEntry builds entry defaults for the given slot.
func NewMilitaryServiceEntry(index int) MilitaryServiceEntry {
	id := func(format string) string { return slotID(index, MilitarySlots, format) }
	return MilitaryServiceEntry{
		Branch: form.NewField[string](id("form1[0].Section15[%d].DropDownList12[0]")),
		Dates: form.DateRange{
			From: form.DateField{
				Date:      form.NewField[string](id("form1[0].Section15[%d].From_Datefield_Name_2[0]")),
				Estimated: form.NewField[bool](id("form1[0].Section15[%d].#field[2]")),
			},
			To: form.DateField{
				Date:      form.NewField[string](id("form1[0].Section15[%d].From_Datefield_Name_2[1]")),
				Estimated: form.NewField[bool](id("form1[0].Section15[%d].#field[4]")),
			},
			Present: form.NewField[bool](id("form1[0].Section15[%d].#field[5]")),
		},
		ServiceNumber:   form.NewField[string](id("form1[0].Section15[%d].TextField11[0]")),
		OfficerEnlisted: form.NewField[string](id("form1[0].Section15[%d].RadioButtonList[1]")),
		Discharged:      form.NewField[string](id("form1[0].Section15[%d].RadioButtonList[2]")),
		DischargeType:   form.NewField[string](id("form1[0].Section15[%d].RadioButtonList[3]")),
		DischargeDate: form.DateField{
			Date:      form.NewField[string](id("form1[0].Section15[%d].From_Datefield_Name_2[2]")),
			Estimated: form.NewField[bool](id("form1[0].Section15[%d].#field[10]")),
		},
		DischargeReason: form.NewField[string](id("form1[0].Section15[%d].TextField12[0]")),
	}
}

func (s *MilitaryHistory) ID() string    { return "section15" }
func (s *MilitaryHistory) Title() string { return "Military History" }

// NewEntry implements fieldpath.EntryFactory.
func (s *MilitaryHistory) NewEntry(list string, index int) (any, bool) {
	if list == "entries" {
		return NewMilitaryServiceEntry(index), true
	}
	return nil, false
}

// AddEntry appends a defaults-initialised entry and returns it for editing.
func (s *MilitaryHistory) AddEntry() *MilitaryServiceEntry {
	s.Entries = append(s.Entries, NewMilitaryServiceEntry(len(s.Entries)))
	return &s.Entries[len(s.Entries)-1]
}

func (s *MilitaryHistory) Validate() []validation.Issue {
	c := validation.NewCollector(s.ID())
	validation.Branch(c, "section15.hasServed", s.HasServed, "military service")
	if form.IsNo(s.HasServed) && len(s.Entries) > 0 {
		c.Add("section15.entries", "entries are present but the question was answered NO")
	}
	if form.IsYes(s.HasServed) && len(s.Entries) == 0 {
		c.Add("section15.entries", "at least one entry is required when answering YES")
	}
	if len(s.Entries) > MilitarySlots {
		c.Add("section15.entries", "the form has %d entry slots; move additional service periods to the continuation sheet", MilitarySlots)
	}
	for i, e := range s.Entries {
		path := entryPath("section15.entries", i)
		if v := strings.TrimSpace(e.Branch.Value); v == "" {
			c.Add(path+".branch", "service branch is required")
		} else if !oneOf(v, ServiceBranches) {
			c.Add(path+".branch", "service branch %q is not one of the form's options", v)
		}
		validation.DateRange(c, path+".dates", e.Dates, "service period")
		validation.Required(c, path+".serviceNumber", e.ServiceNumber.Value, "service number")
		if form.IsYes(e.Discharged) {
			if v := strings.TrimSpace(e.DischargeType.Value); v == "" {
				c.Add(path+".dischargeType", "discharge type is required")
			} else if !oneOf(v, DischargeTypes) {
				c.Add(path+".dischargeType", "discharge type %q is not one of the form's options", v)
			}
			validation.MonthYear(c, path+".dischargeDate", e.DischargeDate, "discharge date", false)
			if v := e.DischargeType.Value; v != "" && v != "Honorable" {
				validation.Required(c, path+".dischargeReason", e.DischargeReason.Value, "discharge explanation")
			}
		}
	}
	return c.Issues()
}

func (s *MilitaryHistory) MapPDF(t *pdfmap.Table) error {
	return pdfmap.Walk(s, t)
}
