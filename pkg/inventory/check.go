package inventory

import (
	"fmt"
	"sort"

	"github.com/caseworks/go-sf86/pkg/pdfmap"
)

// Finding is one problem the cross-check discovered.
type Finding struct {
	FieldID string
	Message string
}

func (f Finding) String() string {
	return f.FieldID + ": " + f.Message
}

// Report is the outcome of checking a mapping table against the PDF field
// inventory.
type Report struct {
	// Unknown lists mapped field ids the PDF does not expose.
	Unknown []Finding
	// Mismatched lists mapped values a field cannot accept.
	Mismatched []Finding
	// Mapped counts table entries that resolved to a catalogued field.
	Mapped int
	// Total is the inventory size, for coverage reporting.
	Total int
}

// Clean reports whether the check found no problems.
func (r Report) Clean() bool {
	return len(r.Unknown) == 0 && len(r.Mismatched) == 0
}

// Coverage is the share of catalogued fields the table populates.
func (r Report) Coverage() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Mapped) / float64(r.Total)
}

// Check verifies every table entry against the inventory: the field must
// exist, text values must fit the field's length limit, and choice values
// must be one of the field's export values.
func (inv *Inventory) Check(t *pdfmap.Table) Report {
	report := Report{Total: inv.Len()}
	for _, entry := range t.Sorted() {
		field, ok := inv.Lookup(entry.ID)
		if !ok {
			report.Unknown = append(report.Unknown, Finding{
				FieldID: entry.ID,
				Message: "not present in the PDF",
			})
			continue
		}
		report.Mapped++

		switch field.Kind {
		case KindText:
			if field.MaxLen > 0 && len(entry.Value) > field.MaxLen {
				report.Mismatched = append(report.Mismatched, Finding{
					FieldID: entry.ID,
					Message: fmt.Sprintf("value is %d characters, field holds %d", len(entry.Value), field.MaxLen),
				})
			}
		case KindCheckbox, KindRadio, KindDropdown:
			if !field.acceptsExport(entry.Value) {
				report.Mismatched = append(report.Mismatched, Finding{
					FieldID: entry.ID,
					Message: fmt.Sprintf("%q is not an export value of this %s", entry.Value, field.Kind),
				})
			}
		}
	}
	sort.Slice(report.Unknown, func(a, b int) bool {
		return report.Unknown[a].FieldID < report.Unknown[b].FieldID
	})
	return report
}
