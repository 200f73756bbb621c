package form

import "strings"

// Radio-group export values used by the questionnaire PDF. Branch questions
// ("Have you EVER ...") map onto radio groups carrying these literals.
const (
	BranchYes = "YES"
	BranchNo  = "NO"
)

// Branch is a yes/no radio-group answer.
type Branch = Field[string]

// IsYes reports whether a branch question was answered affirmatively.
func IsYes(b Branch) bool {
	return strings.EqualFold(strings.TrimSpace(b.Value), BranchYes)
}

// IsNo reports whether a branch question was answered negatively.
func IsNo(b Branch) bool {
	return strings.EqualFold(strings.TrimSpace(b.Value), BranchNo)
}

// PersonName captures a full legal name as the PDF splits it.
type PersonName struct {
	Last   Field[string] `json:"last"`
	First  Field[string] `json:"first"`
	Middle Field[string] `json:"middle"`
	Suffix Field[string] `json:"suffix"`
}

// DateField is a month/year answer plus the "estimate" checkbox that
// accompanies nearly every date on the form. Dates are entered as MM/YYYY.
type DateField struct {
	Date      Field[string] `json:"date"`
	Estimated Field[bool]   `json:"estimated"`
}

// DateRange is a from/to pair with the "present" checkbox for open ranges.
// When Present is checked the To date is left blank on the PDF.
type DateRange struct {
	From    DateField   `json:"from"`
	To      DateField   `json:"to"`
	Present Field[bool] `json:"present"`
}

// Address is a US or foreign street address. State is blank for foreign
// addresses; Country is blank for US ones. APO/FPO addresses carry the state
// literals "AA", "AE" or "AP" and a ZIP.
type Address struct {
	Street  Field[string] `json:"street"`
	Street2 Field[string] `json:"street2"`
	City    Field[string] `json:"city"`
	State   Field[string] `json:"state"`
	ZipCode Field[string] `json:"zipCode"`
	Country Field[string] `json:"country"`
}

// IsForeign reports whether the address names a non-US country.
func (a Address) IsForeign() bool {
	country := strings.TrimSpace(a.Country.Value)
	return country != "" && !strings.EqualFold(country, "United States")
}

// IsAPOFPO reports whether the address uses a military postal state code.
func (a Address) IsAPOFPO() bool {
	switch strings.ToUpper(strings.TrimSpace(a.State.Value)) {
	case "AA", "AE", "AP":
		return true
	}
	return false
}

// Telephone is a phone number with its usage checkboxes.
type Telephone struct {
	Number        Field[string] `json:"number"`
	Extension     Field[string] `json:"extension"`
	International Field[bool]   `json:"international"`
	Day           Field[bool]   `json:"day"`
	Night         Field[bool]   `json:"night"`
}

// SSNField is the social security number answer with its not-applicable
// checkbox for applicants who have never been issued one.
type SSNField struct {
	Number        Field[string] `json:"number"`
	NotApplicable Field[bool]   `json:"notApplicable"`
}
