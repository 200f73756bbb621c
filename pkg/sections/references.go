package sections

import (
	"fmt"
	"strings"

	"github.com/caseworks/go-sf86/pkg/form"
	"github.com/caseworks/go-sf86/pkg/pdfmap"
	"github.com/caseworks/go-sf86/pkg/validation"
)

// ReferenceCount is fixed: the form asks for exactly three people.
const ReferenceCount = 3

// References covers people who know the applicant well. Unlike the repeating
// sections, the page has exactly three entry blocks and all must be filled.
type References struct {
	People [ReferenceCount]ReferenceEntry `json:"people"`
}

// ReferenceEntry is one person who knows the applicant well.
type ReferenceEntry struct {
	Name         form.PersonName    `json:"name"`
	DatesKnown   form.DateRange     `json:"datesKnown"`
	Email        form.Field[string] `json:"email"`
	Telephone    form.Telephone     `json:"telephone"`
	Address      form.Address       `json:"address"`
	Relationship form.Field[string] `json:"relationship"`
}

// NewReferences binds the section to its PDF fields.
func NewReferences() *References {
	var s References
	for i := range s.People {
		id := func(format string) string { return fmt.Sprintf(format, i) }
		s.People[i] = ReferenceEntry{
			Name: form.PersonName{
				Last:   form.NewField[string](id("form1[0].Section16[%d].TextField11[0]")),
				First:  form.NewField[string](id("form1[0].Section16[%d].TextField11[1]")),
				Middle: form.NewField[string](id("form1[0].Section16[%d].TextField11[2]")),
				Suffix: form.NewField[string](id("form1[0].Section16[%d].suffix[0]")),
			},
			DatesKnown: form.DateRange{
				From: form.DateField{
					Date:      form.NewField[string](id("form1[0].Section16[%d].From_Datefield_Name_2[0]")),
					Estimated: form.NewField[bool](id("form1[0].Section16[%d].#field[5]")),
				},
				To: form.DateField{
					Date:      form.NewField[string](id("form1[0].Section16[%d].From_Datefield_Name_2[1]")),
					Estimated: form.NewField[bool](id("form1[0].Section16[%d].#field[7]")),
				},
				Present: form.NewField[bool](id("form1[0].Section16[%d].#field[8]")),
			},
			Email: form.NewField[string](id("form1[0].Section16[%d].TextField11[3]")),
			Telephone: form.Telephone{
				Number:        form.NewField[string](id("form1[0].Section16[%d].p3-t68[0]")),
				Extension:     form.NewField[string](id("form1[0].Section16[%d].p3-t68[1]")),
				International: form.NewField[bool](id("form1[0].Section16[%d].#field[11]")),
				Day:           form.NewField[bool](id("form1[0].Section16[%d].#field[12]")),
				Night:         form.NewField[bool](id("form1[0].Section16[%d].#field[13]")),
			},
			Address: form.Address{
				Street:  form.NewField[string](id("form1[0].Section16[%d].TextField11[4]")),
				City:    form.NewField[string](id("form1[0].Section16[%d].TextField11[5]")),
				State:   form.NewField[string](id("form1[0].Section16[%d].School6_State[0]")),
				ZipCode: form.NewField[string](id("form1[0].Section16[%d].TextField11[6]")),
				Country: form.NewField[string](id("form1[0].Section16[%d].DropDownList9[0]")),
			},
			Relationship: form.NewField[string](id("form1[0].Section16[%d].TextField11[7]")),
		}
	}
	return &s
}

func (s *References) ID() string    { return "section16" }
func (s *References) Title() string { return "People Who Know You Well" }

func (s *References) Validate() []validation.Issue {
	c := validation.NewCollector(s.ID())
	for i, p := range s.People {
		path := entryPath("section16.people", i)
		validation.PersonName(c, path+".name", p.Name, "reference")
		validation.DateRange(c, path+".datesKnown", p.DatesKnown, "period known")
		validation.Address(c, path+".address", p.Address, "reference")
		validation.Email(c, path+".email", p.Email.Value)
		validation.Phone(c, path+".telephone", p.Telephone, "reference telephone")
		validation.Required(c, path+".relationship", p.Relationship.Value, "relationship")
	}
	seen := make(map[string]int)
	for i, p := range s.People {
		key := strings.ToLower(strings.TrimSpace(p.Name.Last.Value) + "|" + strings.TrimSpace(p.Name.First.Value))
		if key == "|" {
			continue
		}
		if prev, ok := seen[key]; ok {
			c.Add(entryPath("section16.people", i), "duplicate of reference %d; three different people are required", prev+1)
		}
		seen[key] = i
	}
	return c.Issues()
}

func (s *References) MapPDF(t *pdfmap.Table) error {
	return pdfmap.Walk(s, t)
}
