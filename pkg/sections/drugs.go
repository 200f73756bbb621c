package sections

import (
	"github.com/caseworks/go-sf86/pkg/form"
	"github.com/caseworks/go-sf86/pkg/pdfmap"
	"github.com/caseworks/go-sf86/pkg/validation"
)

const DrugUseSlots = 2

// DrugInvolvement covers illegal drug use and drug activity.
type DrugInvolvement struct {
	HasUsed           form.Branch    `json:"hasUsed"`
	HasDistributed    form.Branch    `json:"hasDistributed"`
	UsedWithClearance form.Branch    `json:"usedWithClearance"`
	Uses              []DrugUseEntry `json:"uses"`
}

// DrugUseEntry is one drug-use record.
type DrugUseEntry struct {
	DrugType                form.Field[string] `json:"drugType"`
	Dates                   form.DateRange     `json:"dates"`
	NatureOfUse             form.Field[string] `json:"natureOfUse"`
	FutureIntent            form.Branch        `json:"futureIntent"`
	FutureIntentExplanation form.Field[string] `json:"futureIntentExplanation"`
}

// NewDrugInvolvement binds the section to its PDF fields.
func NewDrugInvolvement() *DrugInvolvement {
	return &DrugInvolvement{
		HasUsed:           form.NewField[string]("form1[0].Section23[0].RadioButtonList[0]"),
		HasDistributed:    form.NewField[string]("form1[0].Section23[0].RadioButtonList[1]"),
		UsedWithClearance: form.NewField[string]("form1[0].Section23[0].RadioButtonList[2]"),
	}
}

// NewDrugUseEntry builds entry defaults for the given slot.
func NewDrugUseEntry(index int) DrugUseEntry {
	id := func(format string) string { return slotID(index, DrugUseSlots, format) }
	return DrugUseEntry{
		DrugType: form.NewField[string](id("form1[0].Section23[%d].DropDownList22[0]")),
		Dates: form.DateRange{
			From: form.DateField{
				Date:      form.NewField[string](id("form1[0].Section23[%d].From_Datefield_Name_2[0]")),
				Estimated: form.NewField[bool](id("form1[0].Section23[%d].#field[1]")),
			},
			To: form.DateField{
				Date:      form.NewField[string](id("form1[0].Section23[%d].From_Datefield_Name_2[1]")),
				Estimated: form.NewField[bool](id("form1[0].Section23[%d].#field[3]")),
			},
			Present: form.NewField[bool](id("form1[0].Section23[%d].#field[4]")),
		},
		NatureOfUse:             form.NewField[string](id("form1[0].Section23[%d].TextField12[0]")),
		FutureIntent:            form.NewField[string](id("form1[0].Section23[%d].RadioButtonList[0]")),
		FutureIntentExplanation: form.NewField[string](id("form1[0].Section23[%d].TextField12[1]")),
	}
}

func (s *DrugInvolvement) ID() string    { return "section23" }
func (s *DrugInvolvement) Title() string { return "Illegal Use of Drugs or Drug Activity" }

// NewEntry implements fieldpath.EntryFactory.
func (s *DrugInvolvement) NewEntry(list string, index int) (any, bool) {
	if list == "uses" {
		return NewDrugUseEntry(index), true
	}
	return nil, false
}

// AddUse appends a defaults-initialised entry and returns it for editing.
func (s *DrugInvolvement) AddUse() *DrugUseEntry {
	s.Uses = append(s.Uses, NewDrugUseEntry(len(s.Uses)))
	return &s.Uses[len(s.Uses)-1]
}

func (s *DrugInvolvement) Validate() []validation.Issue {
	c := validation.NewCollector(s.ID())
	validation.Branch(c, "section23.hasUsed", s.HasUsed, "drug use question")
	validation.Branch(c, "section23.hasDistributed", s.HasDistributed, "drug activity question")
	validation.Branch(c, "section23.usedWithClearance", s.UsedWithClearance, "use-while-cleared question")

	if !form.IsYes(s.HasUsed) {
		if len(s.Uses) > 0 {
			c.Add("section23.uses", "use entries are present but the question was answered NO")
		}
		return c.Issues()
	}
	if len(s.Uses) == 0 {
		c.Add("section23.uses", "at least one use entry is required when answering YES")
	}
	if len(s.Uses) > DrugUseSlots {
		c.Add("section23.uses", "the form has %d entry slots; move additional entries to the continuation sheet", DrugUseSlots)
	}
	for i, e := range s.Uses {
		path := entryPath("section23.uses", i)
		validation.Required(c, path+".drugType", e.DrugType.Value, "drug type")
		validation.DateRange(c, path+".dates", e.Dates, "period of use")
		validation.Required(c, path+".natureOfUse", e.NatureOfUse.Value, "nature and frequency of use")
		validation.Branch(c, path+".futureIntent", e.FutureIntent, "future intent question")
		if form.IsYes(e.FutureIntent) {
			validation.Required(c, path+".futureIntentExplanation", e.FutureIntentExplanation.Value, "an explanation")
		}
	}
	return c.Issues()
}

func (s *DrugInvolvement) MapPDF(t *pdfmap.Table) error {
	return pdfmap.Walk(s, t)
}
