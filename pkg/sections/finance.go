package sections

import (
	"strconv"
	"strings"

	"github.com/caseworks/go-sf86/pkg/form"
	"github.com/caseworks/go-sf86/pkg/pdfmap"
	"github.com/caseworks/go-sf86/pkg/validation"
)

const DelinquencySlots = 2

// FinancialRecord covers bankruptcy, tax problems, and delinquent debts.
type FinancialRecord struct {
	HasBankruptcy    form.Branch        `json:"hasBankruptcy"`
	HasTaxFailure    form.Branch        `json:"hasTaxFailure"`
	HasDelinquencies form.Branch        `json:"hasDelinquencies"`
	Delinquencies    []DelinquencyEntry `json:"delinquencies"`
}

// DelinquencyEntry is one delinquent-debt record.
type DelinquencyEntry struct {
	Creditor      form.Field[string] `json:"creditor"`
	AmountDollars form.Field[string] `json:"amountDollars"`
	Reason        form.Field[string] `json:"reason"`
	Status        form.Field[string] `json:"status"`
	DateIncurred  form.DateField     `json:"dateIncurred"`
	Resolved      form.Branch        `json:"resolved"`
	DateResolved  form.DateField     `json:"dateResolved"`
}

// NewFinancialRecord binds the section to its PDF fields.
func NewFinancialRecord() *FinancialRecord {
	return &FinancialRecord{
		HasBankruptcy:    form.NewField[string]("form1[0].Section26[0].RadioButtonList[0]"),
		HasTaxFailure:    form.NewField[string]("form1[0].Section26[0].RadioButtonList[1]"),
		HasDelinquencies: form.NewField[string]("form1[0].Section26[0].RadioButtonList[2]"),
	}
}

// NewDelinquencyEntry builds entry defaults for the given slot.
func NewDelinquencyEntry(index int) DelinquencyEntry {
	id := func(format string) string { return slotID(index, DelinquencySlots, format) }
	return DelinquencyEntry{
		Creditor:      form.NewField[string](id("form1[0].Section26[%d].TextField11[0]")),
		AmountDollars: form.NewField[string](id("form1[0].Section26[%d].NumericField1[0]")),
		Reason:        form.NewField[string](id("form1[0].Section26[%d].TextField12[0]")),
		Status:        form.NewField[string](id("form1[0].Section26[%d].TextField12[1]")),
		DateIncurred: form.DateField{
			Date:      form.NewField[string](id("form1[0].Section26[%d].From_Datefield_Name_2[0]")),
			Estimated: form.NewField[bool](id("form1[0].Section26[%d].#field[5]")),
		},
		Resolved: form.NewField[string](id("form1[0].Section26[%d].RadioButtonList[0]")),
		DateResolved: form.DateField{
			Date:      form.NewField[string](id("form1[0].Section26[%d].From_Datefield_Name_2[1]")),
			Estimated: form.NewField[bool](id("form1[0].Section26[%d].#field[8]")),
		},
	}
}

func (s *FinancialRecord) ID() string    { return "section26" }
func (s *FinancialRecord) Title() string { return "Financial Record" }

// NewEntry implements fieldpath.EntryFactory.
func (s *FinancialRecord) NewEntry(list string, index int) (any, bool) {
	if list == "delinquencies" {
		return NewDelinquencyEntry(index), true
	}
	return nil, false
}

// AddDelinquency appends a defaults-initialised entry and returns it.
func (s *FinancialRecord) AddDelinquency() *DelinquencyEntry {
	s.Delinquencies = append(s.Delinquencies, NewDelinquencyEntry(len(s.Delinquencies)))
	return &s.Delinquencies[len(s.Delinquencies)-1]
}

func (s *FinancialRecord) Validate() []validation.Issue {
	c := validation.NewCollector(s.ID())
	validation.Branch(c, "section26.hasBankruptcy", s.HasBankruptcy, "bankruptcy question")
	validation.Branch(c, "section26.hasTaxFailure", s.HasTaxFailure, "tax question")
	validation.Branch(c, "section26.hasDelinquencies", s.HasDelinquencies, "delinquency question")

	if !form.IsYes(s.HasDelinquencies) {
		if len(s.Delinquencies) > 0 {
			c.Add("section26.delinquencies", "entries are present but the question was answered NO")
		}
		return c.Issues()
	}
	if len(s.Delinquencies) == 0 {
		c.Add("section26.delinquencies", "at least one entry is required when answering YES")
	}
	if len(s.Delinquencies) > DelinquencySlots {
		c.Add("section26.delinquencies", "the form has %d entry slots; move additional debts to the continuation sheet", DelinquencySlots)
	}
	for i, e := range s.Delinquencies {
		path := entryPath("section26.delinquencies", i)
		validation.Required(c, path+".creditor", e.Creditor.Value, "creditor name")
		if v := strings.TrimSpace(e.AmountDollars.Value); v == "" {
			c.Add(path+".amountDollars", "amount is required")
		} else if n, err := strconv.Atoi(strings.ReplaceAll(v, ",", "")); err != nil || n <= 0 {
			c.Add(path+".amountDollars", "amount must be a whole dollar figure")
		}
		validation.Required(c, path+".reason", e.Reason.Value, "the reason for the debt")
		validation.MonthYear(c, path+".dateIncurred", e.DateIncurred, "date incurred", false)
		if form.IsYes(e.Resolved) {
			validation.MonthYear(c, path+".dateResolved", e.DateResolved, "date resolved", false)
		}
	}
	return c.Issues()
}

func (s *FinancialRecord) MapPDF(t *pdfmap.Table) error {
	return pdfmap.Walk(s, t)
}
