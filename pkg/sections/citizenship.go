package sections

import (
	"strings"

	"github.com/caseworks/go-sf86/pkg/form"
	"github.com/caseworks/go-sf86/pkg/pdfmap"
	"github.com/caseworks/go-sf86/pkg/validation"
)

// Citizenship status radio export values.
const (
	CitizenBornInUS    = "1"
	CitizenBornAbroad  = "2"
	CitizenNaturalized = "3"
	CitizenDerived     = "4"
	CitizenNot         = "5"
)

const DualCitizenshipSlots = 2

// Citizenship covers citizenship status, naturalization data, and held
// foreign citizenships.
type Citizenship struct {
	Status form.Field[string] `json:"status"`

	// Naturalization data, required for status 3.
	CertificateNumber form.Field[string] `json:"certificateNumber"`
	CourtName         form.Field[string] `json:"courtName"`
	CourtAddress      form.Address       `json:"courtAddress"`
	NaturalizedDate   form.DateField     `json:"naturalizedDate"`

	HoldsForeign form.Branch          `json:"holdsForeign"`
	Foreign      []ForeignCitizenship `json:"foreign"`
}

// ForeignCitizenship is one held or former foreign citizenship.
type ForeignCitizenship struct {
	Country     form.Field[string] `json:"country"`
	Dates       form.DateRange     `json:"dates"`
	HowAcquired form.Field[string] `json:"howAcquired"`
}

// NewCitizenship binds the section to its PDF fields.
func NewCitizenship() *Citizenship {
	return &Citizenship{
		Status:            form.NewField[string]("form1[0].Sections7-9[0].RadioButtonList[1]"),
		CertificateNumber: form.NewField[string]("form1[0].Sections7-9[0].TextField11[6]"),
		CourtName:         form.NewField[string]("form1[0].Sections7-9[0].TextField11[7]"),
		CourtAddress: form.Address{
			Street:  form.NewField[string]("form1[0].Sections7-9[0].TextField11[8]"),
			City:    form.NewField[string]("form1[0].Sections7-9[0].TextField11[9]"),
			State:   form.NewField[string]("form1[0].Sections7-9[0].School6_State[0]"),
			ZipCode: form.NewField[string]("form1[0].Sections7-9[0].TextField11[10]"),
			Country: form.NewField[string]("form1[0].Sections7-9[0].DropDownList2[0]"),
		},
		NaturalizedDate: form.DateField{
			Date:      form.NewField[string]("form1[0].Sections7-9[0].From_Datefield_Name_2[2]"),
			Estimated: form.NewField[bool]("form1[0].Sections7-9[0].#field[12]"),
		},
		HoldsForeign: form.NewField[string]("form1[0].Section10[0].RadioButtonList[0]"),
	}
}

// NewForeignCitizenship builds entry defaults for the given slot.
func NewForeignCitizenship(index int) ForeignCitizenship {
	return ForeignCitizenship{
		Country: form.NewField[string](slotID(index, DualCitizenshipSlots, "form1[0].Section10[0].DropDownList3[%d]")),
		Dates: form.DateRange{
			From: form.DateField{
				Date:      form.NewField[string](slotID(index, DualCitizenshipSlots, "form1[0].Section10[0].From_Datefield_Name_2[%d]")),
				Estimated: form.NewField[bool](slotID(index, DualCitizenshipSlots, "form1[0].Section10[0].#fieldFrom[%d]")),
			},
			To: form.DateField{
				Date:      form.NewField[string](slotID(index, DualCitizenshipSlots, "form1[0].Section10[0].To_Datefield_Name_2[%d]")),
				Estimated: form.NewField[bool](slotID(index, DualCitizenshipSlots, "form1[0].Section10[0].#fieldTo[%d]")),
			},
			Present: form.NewField[bool](slotID(index, DualCitizenshipSlots, "form1[0].Section10[0].#fieldPresent[%d]")),
		},
		HowAcquired: form.NewField[string](slotID(index, DualCitizenshipSlots, "form1[0].Section10[0].TextField11[%d]")),
	}
}

func (s *Citizenship) ID() string    { return "section9" }
func (s *Citizenship) Title() string { return "Citizenship" }

// NewEntry implements fieldpath.EntryFactory.
func (s *Citizenship) NewEntry(list string, index int) (any, bool) {
	if list == "foreign" {
		return NewForeignCitizenship(index), true
	}
	return nil, false
}

// AddForeign appends a foreign citizenship entry.
func (s *Citizenship) AddForeign() *ForeignCitizenship {
	s.Foreign = append(s.Foreign, NewForeignCitizenship(len(s.Foreign)))
	return &s.Foreign[len(s.Foreign)-1]
}

func (s *Citizenship) Validate() []validation.Issue {
	c := validation.NewCollector(s.ID())
	switch s.Status.Value {
	case CitizenBornInUS, CitizenBornAbroad, CitizenDerived, CitizenNot:
	case CitizenNaturalized:
		validation.Required(c, "section9.certificateNumber", s.CertificateNumber.Value, "certificate number")
		validation.Required(c, "section9.courtName", s.CourtName.Value, "naturalization court")
		validation.MonthYear(c, "section9.naturalizedDate", s.NaturalizedDate, "naturalization date", false)
	case "":
		c.Add("section9.status", "citizenship status is required")
	default:
		c.Add("section9.status", "citizenship status %q is not a recognised option", s.Status.Value)
	}

	validation.Branch(c, "section9.holdsForeign", s.HoldsForeign, "foreign citizenship")
	if form.IsYes(s.HoldsForeign) && len(s.Foreign) == 0 {
		c.Add("section9.foreign", "at least one entry is required when answering YES")
	}
	if len(s.Foreign) > DualCitizenshipSlots {
		c.Add("section9.foreign", "the form has %d entry slots; move additional citizenships to the continuation sheet", DualCitizenshipSlots)
	}
	for i, e := range s.Foreign {
		path := entryPath("section9.foreign", i)
		if strings.TrimSpace(e.Country.Value) == "" {
			c.Add(path+".country", "country is required")
		}
		validation.DateRange(c, path+".dates", e.Dates, "citizenship period")
	}
	return c.Issues()
}

func (s *Citizenship) MapPDF(t *pdfmap.Table) error {
	return pdfmap.Walk(s, t)
}
