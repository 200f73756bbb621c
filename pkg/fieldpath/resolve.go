package fieldpath

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/caseworks/go-sf86/pkg/form"
)

// EntryFactory lets a section supply defaults for repeating entries so that
// Set can grow a slice past its current length without losing the fixed PDF
// identifiers those entries carry. The receiver is asked for the slice's JSON
// key and the zero-based index of the entry being created.
type EntryFactory interface {
	NewEntry(list string, index int) (any, bool)
}

// NotFoundError reports a path segment that does not resolve against the
// answer model.
type NotFoundError struct {
	Path    string
	Segment string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("fieldpath: %q does not resolve at %q", e.Path, e.Segment)
}

// Get resolves the path against root and returns the addressed value. When
// the path ends on a Field wrapper the wrapper itself is returned; use
// GetValue to unwrap.
func Get(root any, raw string) (any, error) {
	path, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	v := reflect.ValueOf(root)
	for _, seg := range path {
		v, err = step(v, seg, raw)
		if err != nil {
			return nil, err
		}
	}
	return v.Interface(), nil
}

// GetValue resolves the path and unwraps a Field leaf into its raw value.
func GetValue(root any, raw string) (any, error) {
	out, err := Get(root, raw)
	if err != nil {
		return nil, err
	}
	if leaf, ok := out.(form.Leaf); ok {
		return leaf.FieldValue(), nil
	}
	return out, nil
}

// Set resolves the path against root (which must be a pointer) and writes
// value into the addressed Field wrapper, coercing between the scalar kinds
// JSON and YAML decoders produce. Slices of repeating entries grow on demand,
// consulting the nearest enclosing EntryFactory for per-index defaults.
func Set(root any, raw string, value any) error {
	path, err := Parse(raw)
	if err != nil {
		return err
	}
	rv := reflect.ValueOf(root)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("fieldpath: Set requires a non-nil pointer root, got %T", root)
	}

	v := rv.Elem()
	factory, _ := root.(EntryFactory)
	listKey := ""
	for _, seg := range path {
		if seg.IsIndex {
			switch v.Kind() {
			case reflect.Slice:
				if err := growSlice(v, seg.Index, factory, listKey); err != nil {
					return err
				}
			case reflect.Array:
				if seg.Index >= v.Len() {
					return &NotFoundError{Path: raw, Segment: fmt.Sprintf("[%d]", seg.Index)}
				}
			default:
				return &NotFoundError{Path: raw, Segment: fmt.Sprintf("[%d]", seg.Index)}
			}
			v = v.Index(seg.Index)
		} else {
			field, ok := structField(v, seg.Key)
			if !ok {
				return &NotFoundError{Path: raw, Segment: seg.Key}
			}
			listKey = seg.Key
			v = field
		}
		if v.Kind() == reflect.Pointer && !v.IsNil() {
			if f, ok := v.Interface().(EntryFactory); ok {
				factory = f
			}
		} else if v.Kind() != reflect.Slice && v.CanAddr() {
			if f, ok := v.Addr().Interface().(EntryFactory); ok {
				factory = f
			}
		}
	}
	return assign(v, value, raw)
}

func step(v reflect.Value, seg Segment, raw string) (reflect.Value, error) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, &NotFoundError{Path: raw, Segment: seg.Key}
		}
		v = v.Elem()
	}
	if seg.IsIndex {
		if (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) || seg.Index >= v.Len() {
			return reflect.Value{}, &NotFoundError{Path: raw, Segment: fmt.Sprintf("[%d]", seg.Index)}
		}
		return v.Index(seg.Index), nil
	}
	field, ok := structField(v, seg.Key)
	if !ok {
		return reflect.Value{}, &NotFoundError{Path: raw, Segment: seg.Key}
	}
	return field, nil
}

// structField matches a path key against a struct's json tag names, falling
// back to a case-insensitive match on the Go field name.
func structField(v reflect.Value, key string) (reflect.Value, bool) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := sf.Name
		if tag, ok := sf.Tag.Lookup("json"); ok {
			if tagName, _, _ := strings.Cut(tag, ","); tagName != "" && tagName != "-" {
				name = tagName
			}
		}
		if name == key {
			return v.Field(i), true
		}
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.IsExported() && strings.EqualFold(sf.Name, key) {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func growSlice(v reflect.Value, index int, factory EntryFactory, listKey string) error {
	if !v.CanSet() {
		return fmt.Errorf("fieldpath: cannot grow unaddressable slice %q", listKey)
	}
	for v.Len() <= index {
		next := reflect.New(v.Type().Elem()).Elem()
		if factory != nil {
			if entry, ok := factory.NewEntry(listKey, v.Len()); ok {
				ev := reflect.ValueOf(entry)
				if ev.Kind() == reflect.Pointer {
					ev = ev.Elem()
				}
				if ev.Type() == v.Type().Elem() {
					next = ev
				}
			}
		}
		v.Set(reflect.Append(v, next))
	}
	return nil
}

// assign writes value into target. When target is a Field wrapper the value
// lands in its Value member so the PDF identifier survives.
func assign(target reflect.Value, value any, raw string) error {
	if !target.CanSet() {
		return fmt.Errorf("fieldpath: %q is not settable", raw)
	}
	if target.Kind() == reflect.Struct && implementsLeaf(target) {
		if inner := target.FieldByName("Value"); inner.IsValid() {
			target = inner
		}
	}
	return coerce(target, value, raw)
}

func implementsLeaf(v reflect.Value) bool {
	leafType := reflect.TypeOf((*form.Leaf)(nil)).Elem()
	return v.Type().Implements(leafType)
}

func coerce(target reflect.Value, value any, raw string) error {
	if value == nil {
		target.Set(reflect.Zero(target.Type()))
		return nil
	}
	vv := reflect.ValueOf(value)
	if vv.Type().AssignableTo(target.Type()) {
		target.Set(vv)
		return nil
	}
	if vv.Type().ConvertibleTo(target.Type()) {
		switch target.Kind() {
		case reflect.String:
			// Refuse numeric-to-string conversions; they produce runes.
			if vv.Kind() != reflect.String {
				break
			}
			target.Set(vv.Convert(target.Type()))
			return nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Float32, reflect.Float64:
			if isNumeric(vv.Kind()) {
				target.Set(vv.Convert(target.Type()))
				return nil
			}
		}
	}
	if num, ok := value.(json.Number); ok && isNumeric(target.Kind()) {
		if f, err := num.Float64(); err == nil {
			target.Set(reflect.ValueOf(f).Convert(target.Type()))
			return nil
		}
	}
	return fmt.Errorf("fieldpath: cannot assign %T to %s at %q", value, target.Type(), raw)
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
