package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Issue is one human-readable validation finding, located by section id and
// field path so callers can surface it next to the offending input.
type Issue struct {
	Section string `json:"section,omitempty"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	var b strings.Builder
	if i.Section != "" {
		fmt.Fprintf(&b, "[%s] ", i.Section)
	}
	if i.Path != "" {
		fmt.Fprintf(&b, "%s: ", i.Path)
	}
	b.WriteString(i.Message)
	return b.String()
}

// Result captures the outcome of validating one or more sections.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// NewResult wraps a set of issues, sorted by section then path for stable
// reporting.
func NewResult(issues []Issue) Result {
	sorted := append([]Issue(nil), issues...)
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].Section != sorted[b].Section {
			return sorted[a].Section < sorted[b].Section
		}
		return sorted[a].Path < sorted[b].Path
	})
	return Result{Valid: len(sorted) == 0, Issues: sorted}
}

// Collector accumulates issues while a section walks its answers.
type Collector struct {
	section string
	issues  []Issue
}

// NewCollector returns a Collector tagging every issue with the section id.
func NewCollector(section string) *Collector {
	return &Collector{section: section}
}

// Add records an issue at the given field path.
func (c *Collector) Add(path, format string, args ...any) {
	c.issues = append(c.issues, Issue{
		Section: c.section,
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	})
}

// Issues returns the accumulated findings.
func (c *Collector) Issues() []Issue {
	return c.issues
}
