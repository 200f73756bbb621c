package inventory

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// Field kinds as reported by PDF form extraction tools.
const (
	KindText     = "text"
	KindCheckbox = "checkbox"
	KindRadio    = "radio"
	KindDropdown = "dropdown"
)

// Field describes one fillable field of the questionnaire PDF.
type Field struct {
	ID      string   `json:"id"`
	Kind    string   `json:"kind"`
	Page    int      `json:"page"`
	MaxLen  int      `json:"maxLen,omitempty"`
	Exports []string `json:"exports,omitempty"`
}

// Inventory is the catalogue of every fillable field the target PDF
// exposes, keyed by fully qualified field id.
type Inventory struct {
	fields []Field
	index  map[string]int
}

// New builds an inventory from a field list. Duplicate ids are rejected.
func New(fields []Field) (*Inventory, error) {
	inv := &Inventory{
		fields: append([]Field(nil), fields...),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range inv.fields {
		if f.ID == "" {
			return nil, fmt.Errorf("inventory: field %d has no id", i)
		}
		if _, dup := inv.index[f.ID]; dup {
			return nil, fmt.Errorf("inventory: duplicate field id %q", f.ID)
		}
		inv.index[f.ID] = i
	}
	return inv, nil
}

// Parse reads an inventory from its JSON form, a flat list of field
// descriptors.
func Parse(raw []byte) (*Inventory, error) {
	var fields []Field
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("inventory: parse: %w", err)
	}
	return New(fields)
}

// LoadFile reads an inventory from a JSON file on disk.
func LoadFile(path string) (*Inventory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("inventory: read %s: %w", path, err)
	}
	return Parse(raw)
}

// LoadFS reads an inventory from a filesystem, typically an embedded one.
func LoadFS(fsys fs.FS, path string) (*Inventory, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("inventory: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Len reports the number of catalogued fields.
func (inv *Inventory) Len() int {
	return len(inv.fields)
}

// Lookup returns the descriptor for a field id.
func (inv *Inventory) Lookup(id string) (Field, bool) {
	at, ok := inv.index[id]
	if !ok {
		return Field{}, false
	}
	return inv.fields[at], true
}

// Fields returns the catalogued fields in their original order.
func (inv *Inventory) Fields() []Field {
	return append([]Field(nil), inv.fields...)
}

// IDs returns every catalogued field id, sorted.
func (inv *Inventory) IDs() []string {
	out := make([]string, 0, len(inv.index))
	for id := range inv.index {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Pages returns the set of page numbers carrying fields, sorted.
func (inv *Inventory) Pages() []int {
	seen := make(map[int]bool)
	for _, f := range inv.fields {
		seen[f.Page] = true
	}
	out := make([]int, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

func (f Field) acceptsExport(value string) bool {
	if len(f.Exports) == 0 {
		return true
	}
	for _, e := range f.Exports {
		if e == value {
			return true
		}
	}
	return false
}

func (f Field) String() string {
	var b strings.Builder
	b.WriteString(f.ID)
	b.WriteString(" (")
	b.WriteString(f.Kind)
	fmt.Fprintf(&b, ", page %d", f.Page)
	b.WriteString(")")
	return b.String()
}
