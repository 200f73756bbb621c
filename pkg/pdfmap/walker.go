package pdfmap

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/caseworks/go-sf86/pkg/form"
)

// Walk traverses a section value and records every Field leaf carrying a
// non-empty PDF identifier. Strings become text values, bools checkboxes,
// integers text. Leaves without an identifier are skipped: repeating entries
// whose identifiers depend on the entry index are mapped by the section's own
// MapPDF code instead.
func Walk(section any, t *Table) error {
	return walkValue(reflect.ValueOf(section), t)
}

func walkValue(v reflect.Value, t *Table) error {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return walkValue(v.Elem(), t)
	case reflect.Struct:
		if leaf, ok := v.Interface().(form.Leaf); ok {
			return record(leaf, t)
		}
		for i := 0; i < v.NumField(); i++ {
			if !v.Type().Field(i).IsExported() {
				continue
			}
			if err := walkValue(v.Field(i), t); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := walkValue(v.Index(i), t); err != nil {
				return err
			}
		}
	}
	return nil
}

func record(leaf form.Leaf, t *Table) error {
	id := leaf.FieldID()
	if id == "" {
		return nil
	}
	switch value := leaf.FieldValue().(type) {
	case string:
		t.Text(id, value)
	case bool:
		t.Check(id, value)
	case int:
		if value != 0 {
			t.Text(id, strconv.Itoa(value))
		}
	default:
		return fmt.Errorf("pdfmap: unsupported leaf type %T for field %s", value, id)
	}
	return nil
}
