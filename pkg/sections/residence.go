package sections

import (
	"strings"
	"time"

	"github.com/caseworks/go-sf86/pkg/form"
	"github.com/caseworks/go-sf86/pkg/pdfmap"
	"github.com/caseworks/go-sf86/pkg/validation"
)

const ResidenceSlots = 4

// Residence roles offered by the form's dropdown.
var ResidenceRoles = []string{"Own", "Rent", "Military housing", "Other"}

// Residences covers where the applicant has lived. Coverage is expected to be
// continuous for the lookback window; each entry past the first also names a
// person who can verify the residence.
type Residences struct {
	Entries []ResidenceEntry `json:"entries"`
}

// ResidenceEntry is one place lived.
type ResidenceEntry struct {
	Dates     form.DateRange     `json:"dates"`
	Address   form.Address       `json:"address"`
	Role      form.Field[string] `json:"role"`
	RoleOther form.Field[string] `json:"roleOther"`
	Verifier  Verifier           `json:"verifier"`
}

// Verifier is a neighbor or other person who knows the applicant at an
// address.
type Verifier struct {
	Name      form.PersonName `json:"name"`
	Telephone form.Telephone  `json:"telephone"`
	Address   form.Address    `json:"address"`
}

// NewResidences binds the section to its PDF fields.
func NewResidences() *Residences {
	return &Residences{}
}

// NewResidenceEntry builds entry defaults for the given slot.
func NewResidenceEntry(index int) ResidenceEntry {
	id := func(format string) string { return slotID(index, ResidenceSlots, format) }
	return ResidenceEntry{
		Dates: form.DateRange{
			From: form.DateField{
				Date:      form.NewField[string](id("form1[0].Section11[%d].From_Datefield_Name_2[0]")),
				Estimated: form.NewField[bool](id("form1[0].Section11[%d].#field[1]")),
			},
			To: form.DateField{
				Date:      form.NewField[string](id("form1[0].Section11[%d].From_Datefield_Name_2[1]")),
				Estimated: form.NewField[bool](id("form1[0].Section11[%d].#field[3]")),
			},
			Present: form.NewField[bool](id("form1[0].Section11[%d].#field[4]")),
		},
		Address: form.Address{
			Street:  form.NewField[string](id("form1[0].Section11[%d].TextField11[0]")),
			Street2: form.NewField[string](id("form1[0].Section11[%d].TextField11[1]")),
			City:    form.NewField[string](id("form1[0].Section11[%d].TextField11[2]")),
			State:   form.NewField[string](id("form1[0].Section11[%d].School6_State[0]")),
			ZipCode: form.NewField[string](id("form1[0].Section11[%d].TextField11[3]")),
			Country: form.NewField[string](id("form1[0].Section11[%d].DropDownList4[0]")),
		},
		Role:      form.NewField[string](id("form1[0].Section11[%d].RadioButtonList[0]")),
		RoleOther: form.NewField[string](id("form1[0].Section11[%d].TextField11[4]")),
		Verifier: Verifier{
			Name: form.PersonName{
				Last:   form.NewField[string](id("form1[0].Section11[%d].TextField11[5]")),
				First:  form.NewField[string](id("form1[0].Section11[%d].TextField11[6]")),
				Middle: form.NewField[string](id("form1[0].Section11[%d].TextField11[7]")),
				Suffix: form.NewField[string](id("form1[0].Section11[%d].suffix[0]")),
			},
			Telephone: form.Telephone{
				Number:        form.NewField[string](id("form1[0].Section11[%d].p3-t68[0]")),
				Extension:     form.NewField[string](id("form1[0].Section11[%d].p3-t68[1]")),
				International: form.NewField[bool](id("form1[0].Section11[%d].#field[20]")),
				Day:           form.NewField[bool](id("form1[0].Section11[%d].#field[21]")),
				Night:         form.NewField[bool](id("form1[0].Section11[%d].#field[22]")),
			},
			Address: form.Address{
				Street:  form.NewField[string](id("form1[0].Section11[%d].TextField11[8]")),
				City:    form.NewField[string](id("form1[0].Section11[%d].TextField11[9]")),
				State:   form.NewField[string](id("form1[0].Section11[%d].School6_State[1]")),
				ZipCode: form.NewField[string](id("form1[0].Section11[%d].TextField11[10]")),
				Country: form.NewField[string](id("form1[0].Section11[%d].DropDownList5[0]")),
			},
		},
	}
}

func (s *Residences) ID() string    { return "section11" }
func (s *Residences) Title() string { return "Where You Have Lived" }

// NewEntry implements fieldpath.EntryFactory.
func (s *Residences) NewEntry(list string, index int) (any, bool) {
	if list == "entries" {
		return NewResidenceEntry(index), true
	}
	return nil, false
}

// AddEntry appends a defaults-initialised entry and returns it for editing.
func (s *Residences) AddEntry() *ResidenceEntry {
	s.Entries = append(s.Entries, NewResidenceEntry(len(s.Entries)))
	return &s.Entries[len(s.Entries)-1]
}

func (s *Residences) Validate() []validation.Issue {
	c := validation.NewCollector(s.ID())
	if len(s.Entries) == 0 {
		c.Add("section11.entries", "at least the current residence is required")
	}
	if len(s.Entries) > ResidenceSlots {
		c.Add("section11.entries", "the form has %d entry slots; move additional residences to the continuation sheet", ResidenceSlots)
	}

	currentCount := 0
	for i, e := range s.Entries {
		path := entryPath("section11.entries", i)
		validation.DateRange(c, path+".dates", e.Dates, "residence period")
		validation.Address(c, path+".address", e.Address, "residence")
		if e.Dates.Present.Value {
			currentCount++
		}
		if v := e.Role.Value; v != "" && !oneOf(v, ResidenceRoles) {
			c.Add(path+".role", "residence role %q is not one of the form's options", v)
		}
		if e.Role.Value == "Other" && strings.TrimSpace(e.RoleOther.Value) == "" {
			c.Add(path+".roleOther", "an explanation is required when the role is Other")
		}
		if i > 0 || e.Dates.Present.Value {
			validation.PersonName(c, path+".verifier.name", e.Verifier.Name, "verifier")
		}
	}
	if len(s.Entries) > 0 && currentCount == 0 {
		c.Add("section11.entries", "one residence must be marked present")
	}
	if currentCount > 1 {
		c.Add("section11.entries", "only one residence can be marked present")
	}
	s.checkContinuity(c)
	return c.Issues()
}

// checkContinuity flags gaps of a month or more between consecutive entries.
// Entries are compared in the order given; the wizard collects newest first.
func (s *Residences) checkContinuity(c *validation.Collector) {
	type span struct {
		from, to time.Time
		ok       bool
	}
	spans := make([]span, len(s.Entries))
	for i, e := range s.Entries {
		from, errF := time.Parse("01/2006", strings.TrimSpace(e.Dates.From.Date.Value))
		to := time.Now()
		errT := error(nil)
		if !e.Dates.Present.Value {
			to, errT = time.Parse("01/2006", strings.TrimSpace(e.Dates.To.Date.Value))
		}
		spans[i] = span{from: from, to: to, ok: errF == nil && errT == nil}
	}
	for i := 1; i < len(spans); i++ {
		newer, older := spans[i-1], spans[i]
		if !newer.ok || !older.ok {
			continue
		}
		if older.to.AddDate(0, 1, 0).Before(newer.from) {
			c.Add(entryPath("section11.entries", i), "gap between this residence and the previous entry")
		}
	}
}

func (s *Residences) MapPDF(t *pdfmap.Table) error {
	return pdfmap.Walk(s, t)
}
