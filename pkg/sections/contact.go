package sections

import (
	"strconv"
	"strings"

	"github.com/caseworks/go-sf86/pkg/form"
	"github.com/caseworks/go-sf86/pkg/pdfmap"
	"github.com/caseworks/go-sf86/pkg/validation"
)

// Contact covers the applicant's contact information: home and work email
// plus up to three telephone numbers. The phone slots are fixed on the page.
type Contact struct {
	HomeEmail form.Field[string] `json:"homeEmail"`
	WorkEmail form.Field[string] `json:"workEmail"`
	Phones    [3]form.Telephone  `json:"phones"`
}

// NewContact binds the section to its PDF fields.
func NewContact() *Contact {
	phone := func(i int) form.Telephone {
		base := "form1[0].Sections7-9[0].p3-t68[" // phone widgets share a numbered run
		return form.Telephone{
			Number:        form.NewField[string](base + strconv.Itoa(i*2) + "]"),
			Extension:     form.NewField[string](base + strconv.Itoa(i*2+1) + "]"),
			International: form.NewField[bool]("form1[0].Sections7-9[0].#field[" + strconv.Itoa(20+i*3) + "]"),
			Day:           form.NewField[bool]("form1[0].Sections7-9[0].#field[" + strconv.Itoa(21+i*3) + "]"),
			Night:         form.NewField[bool]("form1[0].Sections7-9[0].#field[" + strconv.Itoa(22+i*3) + "]"),
		}
	}
	return &Contact{
		HomeEmail: form.NewField[string]("form1[0].Sections7-9[0].TextField11[0]"),
		WorkEmail: form.NewField[string]("form1[0].Sections7-9[0].TextField11[1]"),
		Phones:    [3]form.Telephone{phone(0), phone(1), phone(2)},
	}
}

func (s *Contact) ID() string    { return "section7" }
func (s *Contact) Title() string { return "Your Contact Information" }

func (s *Contact) Validate() []validation.Issue {
	c := validation.NewCollector(s.ID())
	validation.Email(c, "section7.homeEmail", s.HomeEmail.Value)
	validation.Email(c, "section7.workEmail", s.WorkEmail.Value)

	any := false
	for i, p := range s.Phones {
		if strings.TrimSpace(p.Number.Value) != "" {
			any = true
		}
		validation.Phone(c, entryPath("section7.phones", i), p, "telephone number")
	}
	if !any {
		c.Add("section7.phones", "at least one telephone number is required")
	}
	if strings.TrimSpace(s.HomeEmail.Value) == "" && strings.TrimSpace(s.WorkEmail.Value) == "" {
		c.Add("section7.homeEmail", "at least one email address is required")
	}
	return c.Issues()
}

func (s *Contact) MapPDF(t *pdfmap.Table) error {
	return pdfmap.Walk(s, t)
}
