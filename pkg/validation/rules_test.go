package validation

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/caseworks/go-sf86/pkg/form"
)

// freeze pins the clock so future-date checks are deterministic.
func freeze(t *testing.T) {
	t.Helper()
	orig := now
	now = func() time.Time { return time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = orig })
}

func issuePaths(issues []Issue) []string {
	var out []string
	for _, i := range issues {
		out = append(out, i.Path)
	}
	return out
}

func TestRequired(t *testing.T) {
	c := NewCollector("s")
	Required(c, "a", "value", "field")
	Required(c, "b", "   ", "field")
	Required(c, "c", "", "field")

	want := []string{"b", "c"}
	if diff := cmp.Diff(want, issuePaths(c.Issues())); diff != "" {
		t.Errorf("issue paths mismatch (-want +got):\n%s", diff)
	}
}

func TestMaxLen(t *testing.T) {
	c := NewCollector("s")
	MaxLen(c, "ok", "short", 10, "field")
	MaxLen(c, "over", "twelve chars", 5, "field")
	if got := issuePaths(c.Issues()); len(got) != 1 || got[0] != "over" {
		t.Errorf("issue paths = %v", got)
	}
}

func TestPatternSkipsBlank(t *testing.T) {
	c := NewCollector("s")
	Email(c, "blank", "")
	Email(c, "spaces", "   ")
	Email(c, "good", "jane@example.com")
	Email(c, "bad", "not-an-email")
	if got := issuePaths(c.Issues()); len(got) != 1 || got[0] != "bad" {
		t.Errorf("issue paths = %v", got)
	}
}

func TestBranch(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"YES", true},
		{"no", true},
		{"", false},
		{"maybe", false},
	}
	for _, tt := range tests {
		c := NewCollector("s")
		Branch(c, "q", form.Branch{Value: tt.value}, "question")
		if got := len(c.Issues()) == 0; got != tt.ok {
			t.Errorf("Branch(%q): issues = %v", tt.value, c.Issues())
		}
	}
}

func TestSSN(t *testing.T) {
	tests := []struct {
		name   string
		number string
		na     bool
		issues int
	}{
		{name: "valid dashed", number: "527-88-1234"},
		{name: "valid bare", number: "527881234"},
		{name: "not applicable", na: true},
		{name: "blank", number: "", issues: 1},
		{name: "too short", number: "12-34-567", issues: 1},
		{name: "area 000", number: "000-88-1234", issues: 1},
		{name: "area 666", number: "666-88-1234", issues: 1},
		{name: "area 9xx", number: "912-88-1234", issues: 1},
		{name: "group 00", number: "527-00-1234", issues: 1},
		{name: "serial 0000", number: "527-88-0000", issues: 1},
		{name: "all bad groups", number: "666-00-0000", issues: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector("s")
			ssn := form.SSNField{}
			ssn.Number.Set(tt.number)
			ssn.NotApplicable.Set(tt.na)
			SSN(c, "ssn", ssn)
			if len(c.Issues()) != tt.issues {
				t.Errorf("issues = %v, want %d", c.Issues(), tt.issues)
			}
		})
	}
}

func TestMonthYear(t *testing.T) {
	freeze(t)
	tests := []struct {
		name        string
		date        string
		allowFuture bool
		issues      int
	}{
		{name: "blank skipped", date: ""},
		{name: "valid past", date: "05/2020"},
		{name: "current month", date: "06/2024"},
		{name: "bad layout", date: "2020-05", issues: 1},
		{name: "full date rejected", date: "05/01/2020", issues: 1},
		{name: "future rejected", date: "07/2024", issues: 1},
		{name: "future allowed", date: "07/2024", allowFuture: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector("s")
			d := form.DateField{}
			d.Date.Set(tt.date)
			MonthYear(c, "d", d, "date", tt.allowFuture)
			if len(c.Issues()) != tt.issues {
				t.Errorf("issues = %v, want %d", c.Issues(), tt.issues)
			}
		})
	}
}

func TestFullDate(t *testing.T) {
	freeze(t)
	tests := []struct {
		name        string
		date        string
		allowFuture bool
		issues      int
	}{
		{name: "blank skipped", date: ""},
		{name: "valid", date: "04/01/1990"},
		{name: "month year rejected", date: "04/1990", issues: 1},
		{name: "future rejected", date: "12/31/2024", issues: 1},
		{name: "future allowed", date: "12/31/2024", allowFuture: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector("s")
			FullDate(c, "d", tt.date, "date", tt.allowFuture)
			if len(c.Issues()) != tt.issues {
				t.Errorf("issues = %v, want %d", c.Issues(), tt.issues)
			}
		})
	}
}

func TestDateRange(t *testing.T) {
	freeze(t)
	mk := func(from, to string, present bool) form.DateRange {
		var r form.DateRange
		r.From.Date.Set(from)
		r.To.Date.Set(to)
		r.Present.Set(present)
		return r
	}
	tests := []struct {
		name   string
		r      form.DateRange
		issues []string
	}{
		{name: "closed range", r: mk("01/2020", "03/2022", false)},
		{name: "open range", r: mk("01/2020", "", true)},
		{
			name:   "present with end date",
			r:      mk("01/2020", "03/2022", true),
			issues: []string{"r.to"},
		},
		{
			name:   "end predates start",
			r:      mk("03/2022", "01/2020", false),
			issues: []string{"r"},
		},
		{
			name:   "unparseable start",
			r:      mk("January 2020", "03/2022", false),
			issues: []string{"r.from"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector("s")
			DateRange(c, "r", tt.r, "period")
			if diff := cmp.Diff(tt.issues, issuePaths(c.Issues())); diff != "" {
				t.Errorf("issue paths mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddress(t *testing.T) {
	mk := func(street, city, state, zip, country string) form.Address {
		var a form.Address
		a.Street.Set(street)
		a.City.Set(city)
		a.State.Set(state)
		a.ZipCode.Set(zip)
		a.Country.Set(country)
		return a
	}
	tests := []struct {
		name   string
		a      form.Address
		issues []string
	}{
		{name: "us complete", a: mk("123 Main St", "Richmond", "VA", "23220", "")},
		{name: "us spelled out country", a: mk("123 Main St", "Richmond", "VA", "23220", "United States")},
		{name: "apo", a: mk("PSC 123 Box 45", "APO", "AE", "09012", "")},
		{name: "foreign", a: mk("1 Rue de Lyon", "Paris", "", "", "France")},
		{
			name:   "us missing state and zip",
			a:      mk("123 Main St", "Richmond", "", "", ""),
			issues: []string{"a.state", "a.zipCode"},
		},
		{
			name:   "us unknown state",
			a:      mk("123 Main St", "Richmond", "XX", "23220", ""),
			issues: []string{"a.state"},
		},
		{
			name:   "us bad zip",
			a:      mk("123 Main St", "Richmond", "VA", "2322", ""),
			issues: []string{"a.zipCode"},
		},
		{
			name:   "foreign with state",
			a:      mk("1 Rue de Lyon", "Paris", "VA", "", "France"),
			issues: []string{"a.state"},
		},
		{
			name:   "missing street and city",
			a:      mk("", "", "VA", "23220", ""),
			issues: []string{"a.street", "a.city"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector("s")
			Address(c, "a", tt.a, "home")
			if diff := cmp.Diff(tt.issues, issuePaths(c.Issues())); diff != "" {
				t.Errorf("issue paths mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPersonName(t *testing.T) {
	mk := func(last, first, suffix string) form.PersonName {
		var n form.PersonName
		n.Last.Set(last)
		n.First.Set(first)
		n.Suffix.Set(suffix)
		return n
	}
	tests := []struct {
		name   string
		n      form.PersonName
		issues []string
	}{
		{name: "complete", n: mk("Doe", "Jane", "")},
		{name: "with suffix", n: mk("Doe", "John", "Jr")},
		{name: "missing last", n: mk("", "Jane", ""), issues: []string{"n.last"}},
		{name: "bad suffix", n: mk("Doe", "Jane", "Esq"), issues: []string{"n.suffix"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector("s")
			PersonName(c, "n", tt.n, "applicant")
			if diff := cmp.Diff(tt.issues, issuePaths(c.Issues())); diff != "" {
				t.Errorf("issue paths mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPhone(t *testing.T) {
	c := NewCollector("s")
	var good form.Telephone
	good.Number.Set("(703) 555-0100")
	Phone(c, "p", good, "telephone")
	if len(c.Issues()) != 0 {
		t.Errorf("issues = %v", c.Issues())
	}

	var bad form.Telephone
	bad.Number.Set("call me")
	Phone(c, "p", bad, "telephone")
	if got := issuePaths(c.Issues()); len(got) != 1 || got[0] != "p.number" {
		t.Errorf("issue paths = %v", got)
	}
}

func TestNewResultSorts(t *testing.T) {
	result := NewResult([]Issue{
		{Section: "section9", Path: "b", Message: "m"},
		{Section: "identity", Path: "z", Message: "m"},
		{Section: "identity", Path: "a", Message: "m"},
	})
	if result.Valid {
		t.Error("result with issues reports valid")
	}
	want := []Issue{
		{Section: "identity", Path: "a", Message: "m"},
		{Section: "identity", Path: "z", Message: "m"},
		{Section: "section9", Path: "b", Message: "m"},
	}
	if diff := cmp.Diff(want, result.Issues); diff != "" {
		t.Errorf("sorted issues mismatch (-want +got):\n%s", diff)
	}

	if empty := NewResult(nil); !empty.Valid || len(empty.Issues) != 0 {
		t.Errorf("NewResult(nil) = %+v", empty)
	}
}

func TestIssueString(t *testing.T) {
	tests := []struct {
		issue Issue
		want  string
	}{
		{Issue{Section: "s", Path: "p", Message: "m"}, "[s] p: m"},
		{Issue{Path: "p", Message: "m"}, "p: m"},
		{Issue{Message: "m"}, "m"},
	}
	for _, tt := range tests {
		if got := tt.issue.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
