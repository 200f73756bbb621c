package sections

import (
	"regexp"
	"strings"

	"github.com/caseworks/go-sf86/pkg/form"
	"github.com/caseworks/go-sf86/pkg/pdfmap"
	"github.com/caseworks/go-sf86/pkg/validation"
)

var passportNumberPattern = regexp.MustCompile(`^[A-Za-z0-9]{6,9}$`)

// Passport covers US passport possession: a branch question and, when
// answered YES, the passport's book data.
type Passport struct {
	HasPassport form.Branch        `json:"hasPassport"`
	Number      form.Field[string] `json:"number"`
	Name        form.PersonName    `json:"name"`
	IssueDate   form.DateField     `json:"issueDate"`
	ExpireDate  form.DateField     `json:"expireDate"`
}

// NewPassport binds the section to its PDF fields.
func NewPassport() *Passport {
	return &Passport{
		HasPassport: form.NewField[string]("form1[0].Sections7-9[0].RadioButtonList[0]"),
		Number:      form.NewField[string]("form1[0].Sections7-9[0].TextField11[2]"),
		Name: form.PersonName{
			Last:   form.NewField[string]("form1[0].Sections7-9[0].TextField11[3]"),
			First:  form.NewField[string]("form1[0].Sections7-9[0].TextField11[4]"),
			Middle: form.NewField[string]("form1[0].Sections7-9[0].TextField11[5]"),
			Suffix: form.NewField[string]("form1[0].Sections7-9[0].suffix[0]"),
		},
		IssueDate: form.DateField{
			Date:      form.NewField[string]("form1[0].Sections7-9[0].From_Datefield_Name_2[0]"),
			Estimated: form.NewField[bool]("form1[0].Sections7-9[0].#field[4]"),
		},
		ExpireDate: form.DateField{
			Date:      form.NewField[string]("form1[0].Sections7-9[0].From_Datefield_Name_2[1]"),
			Estimated: form.NewField[bool]("form1[0].Sections7-9[0].#field[6]"),
		},
	}
}

func (s *Passport) ID() string    { return "section8" }
func (s *Passport) Title() string { return "U.S. Passport Information" }

func (s *Passport) Validate() []validation.Issue {
	c := validation.NewCollector(s.ID())
	validation.Branch(c, "section8.hasPassport", s.HasPassport, "passport possession")
	if !form.IsYes(s.HasPassport) {
		if strings.TrimSpace(s.Number.Value) != "" {
			c.Add("section8.number", "passport data is present but the question was answered NO")
		}
		return c.Issues()
	}
	validation.Required(c, "section8.number", s.Number.Value, "passport number")
	validation.Pattern(c, "section8.number", s.Number.Value, passportNumberPattern, "passport number")
	validation.PersonName(c, "section8.name", s.Name, "passport")
	validation.MonthYear(c, "section8.issueDate", s.IssueDate, "issue date", false)
	validation.MonthYear(c, "section8.expireDate", s.ExpireDate, "expiration date", true)
	return c.Issues()
}

func (s *Passport) MapPDF(t *pdfmap.Table) error {
	return pdfmap.Walk(s, t)
}
