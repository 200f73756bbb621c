package sections

import (
	"github.com/caseworks/go-sf86/pkg/form"
	"github.com/caseworks/go-sf86/pkg/pdfmap"
	"github.com/caseworks/go-sf86/pkg/validation"
)

const TechIncidentSlots = 2

// TechnologyUse covers misuse of information technology systems.
type TechnologyUse struct {
	HasUnauthorizedAccess form.Branch         `json:"hasUnauthorizedAccess"`
	HasUnauthorizedModify form.Branch         `json:"hasUnauthorizedModify"`
	HasUnauthorizedUse    form.Branch         `json:"hasUnauthorizedUse"`
	Incidents             []TechIncidentEntry `json:"incidents"`
}

// TechIncidentEntry is one IT misuse record.
type TechIncidentEntry struct {
	Date        form.DateField     `json:"date"`
	Description form.Field[string] `json:"description"`
	Location    form.Address       `json:"location"`
	Action      form.Field[string] `json:"action"`
}

// NewTechnologyUse binds the section to its PDF fields.
func NewTechnologyUse() *TechnologyUse {
	return &TechnologyUse{
		HasUnauthorizedAccess: form.NewField[string]("form1[0].Section27[0].RadioButtonList[0]"),
		HasUnauthorizedModify: form.NewField[string]("form1[0].Section27[0].RadioButtonList[1]"),
		HasUnauthorizedUse:    form.NewField[string]("form1[0].Section27[0].RadioButtonList[2]"),
	}
}

// NewTechIncidentEntry builds entry defaults for the given slot.
func NewTechIncidentEntry(index int) TechIncidentEntry {
	id := func(format string) string { return slotID(index, TechIncidentSlots, format) }
	return TechIncidentEntry{
		Date: form.DateField{
			Date:      form.NewField[string](id("form1[0].Section27[%d].From_Datefield_Name_2[0]")),
			Estimated: form.NewField[bool](id("form1[0].Section27[%d].#field[1]")),
		},
		Description: form.NewField[string](id("form1[0].Section27[%d].TextField12[0]")),
		Location: form.Address{
			Street:  form.NewField[string](id("form1[0].Section27[%d].TextField11[0]")),
			City:    form.NewField[string](id("form1[0].Section27[%d].TextField11[1]")),
			State:   form.NewField[string](id("form1[0].Section27[%d].School6_State[0]")),
			ZipCode: form.NewField[string](id("form1[0].Section27[%d].TextField11[2]")),
			Country: form.NewField[string](id("form1[0].Section27[%d].DropDownList24[0]")),
		},
		Action: form.NewField[string](id("form1[0].Section27[%d].TextField12[1]")),
	}
}

func (s *TechnologyUse) ID() string    { return "section27" }
func (s *TechnologyUse) Title() string { return "Use of Information Technology Systems" }

// NewEntry implements fieldpath.EntryFactory.
func (s *TechnologyUse) NewEntry(list string, index int) (any, bool) {
	if list == "incidents" {
		return NewTechIncidentEntry(index), true
	}
	return nil, false
}

// AddIncident appends a defaults-initialised entry and returns it.
func (s *TechnologyUse) AddIncident() *TechIncidentEntry {
	s.Incidents = append(s.Incidents, NewTechIncidentEntry(len(s.Incidents)))
	return &s.Incidents[len(s.Incidents)-1]
}

func (s *TechnologyUse) Validate() []validation.Issue {
	c := validation.NewCollector(s.ID())
	validation.Branch(c, "section27.hasUnauthorizedAccess", s.HasUnauthorizedAccess, "unauthorized access question")
	validation.Branch(c, "section27.hasUnauthorizedModify", s.HasUnauthorizedModify, "unauthorized modification question")
	validation.Branch(c, "section27.hasUnauthorizedUse", s.HasUnauthorizedUse, "unauthorized use question")

	anyYes := form.IsYes(s.HasUnauthorizedAccess) || form.IsYes(s.HasUnauthorizedModify) || form.IsYes(s.HasUnauthorizedUse)
	if !anyYes {
		if len(s.Incidents) > 0 {
			c.Add("section27.incidents", "incident entries are present but every question was answered NO")
		}
		return c.Issues()
	}
	if len(s.Incidents) == 0 {
		c.Add("section27.incidents", "at least one incident entry is required when answering YES")
	}
	if len(s.Incidents) > TechIncidentSlots {
		c.Add("section27.incidents", "the form has %d entry slots; move additional incidents to the continuation sheet", TechIncidentSlots)
	}
	for i, e := range s.Incidents {
		path := entryPath("section27.incidents", i)
		validation.MonthYear(c, path+".date", e.Date, "incident date", false)
		validation.Required(c, path+".description", e.Description.Value, "incident description")
		validation.Required(c, path+".action", e.Action.Value, "action taken")
	}
	return c.Issues()
}

func (s *TechnologyUse) MapPDF(t *pdfmap.Table) error {
	return pdfmap.Walk(s, t)
}
