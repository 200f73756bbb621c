package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/caseworks/go-sf86/internal/refdata"
	"github.com/caseworks/go-sf86/pkg/form"
)

const (
	monthYearLayout = "01/2006"
	fullDateLayout  = "01/02/2006"
)

var (
	ssnPattern   = regexp.MustCompile(`^(\d{3})-?(\d{2})-?(\d{4})$`)
	zipPattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^[0-9()+\-. ]{7,20}$`)
)

// now is swappable so date tests are not wall-clock dependent.
var now = time.Now

// Required records an issue when the answer is blank.
func Required(c *Collector, path string, value, label string) {
	if strings.TrimSpace(value) == "" {
		c.Add(path, "%s is required", label)
	}
}

// MaxLen records an issue when the answer exceeds the PDF field's capacity.
func MaxLen(c *Collector, path, value string, max int, label string) {
	if len(value) > max {
		c.Add(path, "%s exceeds %d characters", label, max)
	}
}

// Pattern records an issue when a non-blank answer fails the expression.
// Blank answers are left to Required.
func Pattern(c *Collector, path, value string, re *regexp.Regexp, label string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return
	}
	if !re.MatchString(trimmed) {
		c.Add(path, "%s is not in a valid format", label)
	}
}

// Branch requires a yes/no question to be answered with one of the radio
// group's export values.
func Branch(c *Collector, path string, b form.Branch, label string) {
	if !form.IsYes(b) && !form.IsNo(b) {
		c.Add(path, "%s must be answered YES or NO", label)
	}
}

// SSN validates the social security number unless the not-applicable box is
// checked. Known-invalid area, group, and serial numbers are rejected.
func SSN(c *Collector, path string, ssn form.SSNField) {
	if ssn.NotApplicable.Value {
		return
	}
	trimmed := strings.TrimSpace(ssn.Number.Value)
	if trimmed == "" {
		c.Add(path, "social security number is required unless marked not applicable")
		return
	}
	m := ssnPattern.FindStringSubmatch(trimmed)
	if m == nil {
		c.Add(path, "social security number must be 9 digits")
		return
	}
	area, group, serial := m[1], m[2], m[3]
	if area == "000" || area == "666" || area[0] == '9' {
		c.Add(path, "social security number area %s is not issued", area)
	}
	if group == "00" {
		c.Add(path, "social security number group 00 is not issued")
	}
	if serial == "0000" {
		c.Add(path, "social security number serial 0000 is not issued")
	}
}

// ZipCode validates a non-blank ZIP answer.
func ZipCode(c *Collector, path, value string) {
	Pattern(c, path, value, zipPattern, "ZIP code")
}

// Email validates a non-blank email answer.
func Email(c *Collector, path, value string) {
	Pattern(c, path, value, emailPattern, "email address")
}

// Phone validates a telephone number when one was supplied.
func Phone(c *Collector, path string, t form.Telephone, label string) {
	Pattern(c, path+".number", t.Number.Value, phonePattern, label)
}

// MonthYear validates a MM/YYYY answer and rejects dates after the current
// month unless allowFuture is set.
func MonthYear(c *Collector, path string, d form.DateField, label string, allowFuture bool) {
	trimmed := strings.TrimSpace(d.Date.Value)
	if trimmed == "" {
		return
	}
	parsed, err := time.Parse(monthYearLayout, trimmed)
	if err != nil {
		c.Add(path, "%s must use MM/YYYY", label)
		return
	}
	if !allowFuture && parsed.After(now()) {
		c.Add(path, "%s cannot be in the future", label)
	}
}

// FullDate validates a MM/DD/YYYY answer such as a date of birth.
func FullDate(c *Collector, path, value, label string, allowFuture bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return
	}
	parsed, err := time.Parse(fullDateLayout, trimmed)
	if err != nil {
		c.Add(path, "%s must use MM/DD/YYYY", label)
		return
	}
	if !allowFuture && parsed.After(now()) {
		c.Add(path, "%s cannot be in the future", label)
	}
}

// DateRange validates a from/to pair: both parse, from precedes to, and an
// open range leaves the to date blank in favour of the present checkbox.
func DateRange(c *Collector, path string, r form.DateRange, label string) {
	MonthYear(c, path+".from", r.From, label+" start", false)
	if r.Present.Value {
		if strings.TrimSpace(r.To.Date.Value) != "" {
			c.Add(path+".to", "%s end must be blank when marked present", label)
		}
		return
	}
	MonthYear(c, path+".to", r.To, label+" end", false)
	from, errFrom := time.Parse(monthYearLayout, strings.TrimSpace(r.From.Date.Value))
	to, errTo := time.Parse(monthYearLayout, strings.TrimSpace(r.To.Date.Value))
	if errFrom == nil && errTo == nil && to.Before(from) {
		c.Add(path, "%s end predates its start", label)
	}
}

// Address validates the parts of an address the PDF requires: street and
// city always, a state dropdown value plus ZIP for US addresses, a country
// for foreign ones.
func Address(c *Collector, path string, a form.Address, label string) {
	Required(c, path+".street", a.Street.Value, label+" street")
	Required(c, path+".city", a.City.Value, label+" city")
	if a.IsForeign() {
		if strings.TrimSpace(a.State.Value) != "" && !a.IsAPOFPO() {
			c.Add(path+".state", "%s cannot carry both a state and a foreign country", label)
		}
		return
	}
	state := strings.TrimSpace(a.State.Value)
	if state == "" {
		c.Add(path+".state", "%s state is required for US addresses", label)
	} else if !refdata.ValidStateCode(state) {
		c.Add(path+".state", "%s state %q is not a recognised code", label, state)
	}
	Required(c, path+".zipCode", a.ZipCode.Value, label+" ZIP code")
	ZipCode(c, path+".zipCode", a.ZipCode.Value)
}

// PersonName validates the split name fields. A lone initial in the middle
// name slot is permitted; suffixes must come from the dropdown list.
func PersonName(c *Collector, path string, n form.PersonName, label string) {
	Required(c, path+".last", n.Last.Value, label+" last name")
	Required(c, path+".first", n.First.Value, label+" first name")
	if suffix := strings.TrimSpace(n.Suffix.Value); suffix != "" && !refdata.ValidNameSuffix(suffix) {
		c.Add(path+".suffix", "%s suffix %q is not a recognised option", label, suffix)
	}
}
