package sections

import (
	"strings"

	"github.com/caseworks/go-sf86/pkg/form"
	"github.com/caseworks/go-sf86/pkg/pdfmap"
	"github.com/caseworks/go-sf86/pkg/validation"
)

const OffenseSlots = 2

// PoliceRecord covers arrests, charges, and convictions within the lookback
// window, plus the EVER questions that ignore the window.
type PoliceRecord struct {
	HasSummons    form.Branch    `json:"hasSummons"`
	HasArrest     form.Branch    `json:"hasArrest"`
	HasCharge     form.Branch    `json:"hasCharge"`
	EverConvicted form.Branch    `json:"everConvicted"`
	Offenses      []OffenseEntry `json:"offenses"`
}

// OffenseEntry is one offense record.
type OffenseEntry struct {
	Date                     form.DateField     `json:"date"`
	Description              form.Field[string] `json:"description"`
	InvolvedDomesticViolence form.Field[bool]   `json:"involvedDomesticViolence"`
	InvolvedFirearms         form.Field[bool]   `json:"involvedFirearms"`
	InvolvedAlcoholDrugs     form.Field[bool]   `json:"involvedAlcoholDrugs"`
	CourtName                form.Field[string] `json:"courtName"`
	CourtAddress             form.Address       `json:"courtAddress"`
	Outcome                  form.Field[string] `json:"outcome"`
}

// NewPoliceRecord binds the section to its PDF fields.
func NewPoliceRecord() *PoliceRecord {
	return &PoliceRecord{
		HasSummons:    form.NewField[string]("form1[0].Section22[0].RadioButtonList[0]"),
		HasArrest:     form.NewField[string]("form1[0].Section22[0].RadioButtonList[1]"),
		HasCharge:     form.NewField[string]("form1[0].Section22[0].RadioButtonList[2]"),
		EverConvicted: form.NewField[string]("form1[0].Section22[0].RadioButtonList[3]"),
	}
}

// NewOffenseEntry builds entry defaults for the given slot.
func NewOffenseEntry(index int) OffenseEntry {
	id := func(format string) string { return slotID(index, OffenseSlots, format) }
	return OffenseEntry{
		Date: form.DateField{
			Date:      form.NewField[string](id("form1[0].Section22[%d].From_Datefield_Name_2[0]")),
			Estimated: form.NewField[bool](id("form1[0].Section22[%d].#field[1]")),
		},
		Description:              form.NewField[string](id("form1[0].Section22[%d].TextField12[0]")),
		InvolvedDomesticViolence: form.NewField[bool](id("form1[0].Section22[%d].#field[3]")),
		InvolvedFirearms:         form.NewField[bool](id("form1[0].Section22[%d].#field[4]")),
		InvolvedAlcoholDrugs:     form.NewField[bool](id("form1[0].Section22[%d].#field[5]")),
		CourtName:                form.NewField[string](id("form1[0].Section22[%d].TextField11[0]")),
		CourtAddress: form.Address{
			Street:  form.NewField[string](id("form1[0].Section22[%d].TextField11[1]")),
			City:    form.NewField[string](id("form1[0].Section22[%d].TextField11[2]")),
			State:   form.NewField[string](id("form1[0].Section22[%d].School6_State[0]")),
			ZipCode: form.NewField[string](id("form1[0].Section22[%d].TextField11[3]")),
			Country: form.NewField[string](id("form1[0].Section22[%d].DropDownList20[0]")),
		},
		Outcome: form.NewField[string](id("form1[0].Section22[%d].TextField12[1]")),
	}
}

func (s *PoliceRecord) ID() string    { return "section22" }
func (s *PoliceRecord) Title() string { return "Police Record" }

// NewEntry implements fieldpath.EntryFactory.
func (s *PoliceRecord) NewEntry(list string, index int) (any, bool) {
	if list == "offenses" {
		return NewOffenseEntry(index), true
	}
	return nil, false
}

// AddOffense appends a defaults-initialised entry and returns it for editing.
func (s *PoliceRecord) AddOffense() *OffenseEntry {
	s.Offenses = append(s.Offenses, NewOffenseEntry(len(s.Offenses)))
	return &s.Offenses[len(s.Offenses)-1]
}

// anyYes reports whether any gating branch was answered affirmatively.
func (s *PoliceRecord) anyYes() bool {
	return form.IsYes(s.HasSummons) || form.IsYes(s.HasArrest) ||
		form.IsYes(s.HasCharge) || form.IsYes(s.EverConvicted)
}

func (s *PoliceRecord) Validate() []validation.Issue {
	c := validation.NewCollector(s.ID())
	validation.Branch(c, "section22.hasSummons", s.HasSummons, "summons question")
	validation.Branch(c, "section22.hasArrest", s.HasArrest, "arrest question")
	validation.Branch(c, "section22.hasCharge", s.HasCharge, "charge question")
	validation.Branch(c, "section22.everConvicted", s.EverConvicted, "conviction question")

	if !s.anyYes() {
		if len(s.Offenses) > 0 {
			c.Add("section22.offenses", "offense entries are present but every question was answered NO")
		}
		return c.Issues()
	}
	if len(s.Offenses) == 0 {
		c.Add("section22.offenses", "at least one offense entry is required when answering YES")
	}
	if len(s.Offenses) > OffenseSlots {
		c.Add("section22.offenses", "the form has %d entry slots; move additional offenses to the continuation sheet", OffenseSlots)
	}
	for i, e := range s.Offenses {
		path := entryPath("section22.offenses", i)
		validation.Required(c, path+".date", e.Date.Date.Value, "offense date")
		validation.MonthYear(c, path+".date", e.Date, "offense date", false)
		validation.Required(c, path+".description", e.Description.Value, "offense description")
		validation.Required(c, path+".courtName", e.CourtName.Value, "court name")
		if strings.TrimSpace(e.CourtName.Value) != "" {
			validation.Address(c, path+".courtAddress", e.CourtAddress, "court")
		}
		validation.Required(c, path+".outcome", e.Outcome.Value, "outcome")
	}
	return c.Issues()
}

func (s *PoliceRecord) MapPDF(t *pdfmap.Table) error {
	return pdfmap.Walk(s, t)
}
