package pdfmap

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// checkOn is the export value the questionnaire PDF uses for checked boxes.
const checkOn = "1"

// Entry is one populated PDF field.
type Entry struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// Table is the PDF-field-id to value association a filled questionnaire
// produces. Fields that receive no value never enter the table, which leaves
// them blank in the output document. Insertion order is preserved; sorted
// iteration is available for stable serialisation.
type Table struct {
	entries   []Entry
	index     map[string]int
	conflicts []string
}

// NewTable returns an empty mapping table.
func NewTable() *Table {
	return &Table{index: make(map[string]int)}
}

// Text records a text field value. Blank values are skipped.
func (t *Table) Text(id, value string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return
	}
	t.put(id, trimmed)
}

// Check records a checkbox. Unchecked boxes are skipped so the PDF keeps its
// default off state.
func (t *Table) Check(id string, on bool) {
	if !on {
		return
	}
	t.put(id, checkOn)
}

// Radio records a radio-group selection by export value. Blank selections are
// skipped.
func (t *Table) Radio(id, value string) {
	t.Text(id, value)
}

// Dropdown records a dropdown selection. Blank selections are skipped.
func (t *Table) Dropdown(id, value string) {
	t.Text(id, value)
}

func (t *Table) put(id, value string) {
	if id == "" {
		return
	}
	if at, ok := t.index[id]; ok {
		if t.entries[at].Value != value {
			t.conflicts = append(t.conflicts, fmt.Sprintf("%s: %q vs %q", id, t.entries[at].Value, value))
		}
		return
	}
	t.index[id] = len(t.entries)
	t.entries = append(t.entries, Entry{ID: id, Value: value})
}

// Len reports the number of populated fields.
func (t *Table) Len() int {
	return len(t.entries)
}

// Get returns the value recorded for a field id.
func (t *Table) Get(id string) (string, bool) {
	at, ok := t.index[id]
	if !ok {
		return "", false
	}
	return t.entries[at].Value, true
}

// Entries returns the populated fields in insertion order.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Sorted returns the populated fields ordered by field id.
func (t *Table) Sorted() []Entry {
	out := t.Entries()
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out
}

// Err reports any conflicting writes: the same field id recorded with two
// different values. The first value wins; the conflict is remembered here.
func (t *Table) Err() error {
	if len(t.conflicts) == 0 {
		return nil
	}
	return errors.New("pdfmap: conflicting field values: " + strings.Join(t.conflicts, "; "))
}
