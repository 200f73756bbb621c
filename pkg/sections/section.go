package sections

import (
	"fmt"
	"sort"

	"github.com/caseworks/go-sf86/pkg/pdfmap"
	"github.com/caseworks/go-sf86/pkg/validation"
)

// Section is one topical grouping of questionnaire answers. Every section
// knows how to validate itself and how to copy its answers into the PDF
// field table.
type Section interface {
	ID() string
	Title() string
	Validate() []validation.Issue
	MapPDF(t *pdfmap.Table) error
}

// entryPath renders the field path of a repeating entry.
func entryPath(list string, index int) string {
	return fmt.Sprintf("%s[%d]", list, index)
}

// Registry indexes sections by id for lookup by the wizard and the CLI.
type Registry struct {
	ordered []Section
	byID    map[string]Section
}

// NewRegistry builds a registry over the supplied sections, preserving their
// order. Duplicate ids panic: section ids are fixed by the form layout and a
// collision is a programming error.
func NewRegistry(list ...Section) *Registry {
	r := &Registry{byID: make(map[string]Section, len(list))}
	for _, s := range list {
		if _, ok := r.byID[s.ID()]; ok {
			panic(fmt.Sprintf("sections: duplicate section id %q", s.ID()))
		}
		r.byID[s.ID()] = s
		r.ordered = append(r.ordered, s)
	}
	return r
}

// ByID looks a section up by id.
func (r *Registry) ByID(id string) (Section, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// All returns sections in form order.
func (r *Registry) All() []Section {
	return append([]Section(nil), r.ordered...)
}

// IDs returns the sorted section id list.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
