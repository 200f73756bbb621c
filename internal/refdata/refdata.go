// Package refdata holds the fixed option lists the questionnaire PDF bakes
// into its dropdown and radio fields.
package refdata

// StateCodes lists the US state and territory codes accepted by the form's
// state dropdowns, including the military postal codes.
var StateCodes = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY", "AS", "FM", "GU", "MH", "MP", "PW", "PR", "VI",
	"AA", "AE", "AP",
}

// NameSuffixes lists the suffix dropdown options.
var NameSuffixes = []string{
	"Jr", "Sr", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "Other",
}

// hasString reports membership in a literal list.
func hasString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// ValidStateCode reports whether v is an accepted state dropdown value.
func ValidStateCode(v string) bool {
	return hasString(StateCodes, v)
}

// ValidNameSuffix reports whether v is an accepted suffix dropdown value.
func ValidNameSuffix(v string) bool {
	return hasString(NameSuffixes, v)
}
