// Package sanitize scrubs free-text answers before they reach the PDF
// mapper. Applicants paste explanations from anywhere; markup and control
// characters must not survive into the form data.
package sanitize

import (
	"html"
	"strings"
	"sync"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	textPolicy *bluemonday.Policy
)

func policy() *bluemonday.Policy {
	policyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// Text strips markup and non-printable characters from a free-text answer,
// collapsing runs of horizontal whitespace and trimming the result.
func Text(raw string) string {
	if raw == "" {
		return ""
	}
	cleaned := html.UnescapeString(policy().Sanitize(raw))
	var b strings.Builder
	b.Grow(len(cleaned))
	lastSpace := false
	for _, r := range cleaned {
		switch {
		case r == '\n':
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteRune(' ')
			}
			lastSpace = true
		case unicode.IsControl(r):
			// drop
		default:
			b.WriteRune(r)
			lastSpace = false
		}
	}
	return strings.TrimSpace(b.String())
}
