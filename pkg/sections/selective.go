package sections

import (
	"regexp"
	"strings"

	"github.com/caseworks/go-sf86/pkg/form"
	"github.com/caseworks/go-sf86/pkg/pdfmap"
	"github.com/caseworks/go-sf86/pkg/validation"
)

var selectiveNumberPattern = regexp.MustCompile(`^\d{8,11}$`)

// SelectiveService covers selective service registration for applicants born
// male after 1959.
type SelectiveService struct {
	BornAfter1959      form.Branch        `json:"bornAfter1959"`
	Registered         form.Field[string] `json:"registered"` // YES, NO, or "I don't know"
	RegistrationNumber form.Field[string] `json:"registrationNumber"`
	Explanation        form.Field[string] `json:"explanation"`
}

// NewSelectiveService binds the section to its PDF fields.
func NewSelectiveService() *SelectiveService {
	return &SelectiveService{
		BornAfter1959:      form.NewField[string]("form1[0].Section14[0].RadioButtonList[0]"),
		Registered:         form.NewField[string]("form1[0].Section14[0].RadioButtonList[1]"),
		RegistrationNumber: form.NewField[string]("form1[0].Section14[0].TextField11[0]"),
		Explanation:        form.NewField[string]("form1[0].Section14[0].TextField12[0]"),
	}
}

func (s *SelectiveService) ID() string    { return "section14" }
func (s *SelectiveService) Title() string { return "Selective Service Record" }

func (s *SelectiveService) Validate() []validation.Issue {
	c := validation.NewCollector(s.ID())
	validation.Branch(c, "section14.bornAfter1959", s.BornAfter1959, "born after 1959")
	if !form.IsYes(s.BornAfter1959) {
		return c.Issues()
	}
	switch strings.TrimSpace(s.Registered.Value) {
	case form.BranchYes:
		validation.Required(c, "section14.registrationNumber", s.RegistrationNumber.Value, "registration number")
		validation.Pattern(c, "section14.registrationNumber", s.RegistrationNumber.Value, selectiveNumberPattern, "registration number")
	case form.BranchNo, "I don't know":
		validation.Required(c, "section14.explanation", s.Explanation.Value, "an explanation")
	case "":
		c.Add("section14.registered", "registration status is required")
	default:
		c.Add("section14.registered", "registration status %q is not a recognised option", s.Registered.Value)
	}
	return c.Issues()
}

func (s *SelectiveService) MapPDF(t *pdfmap.Table) error {
	return pdfmap.Walk(s, t)
}
