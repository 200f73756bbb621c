package sanitize

import (
	"reflect"

	"github.com/caseworks/go-sf86/pkg/form"
)

var leafType = reflect.TypeOf((*form.Leaf)(nil)).Elem()

// Apply walks an answer graph and scrubs every string field value in place.
// The root must be a pointer.
func Apply(root any) {
	v := reflect.ValueOf(root)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return
	}
	applyValue(v.Elem())
}

func applyValue(v reflect.Value) {
	switch v.Kind() {
	case reflect.Pointer:
		if !v.IsNil() {
			applyValue(v.Elem())
		}
	case reflect.Struct:
		if v.Type().Implements(leafType) {
			if inner := v.FieldByName("Value"); inner.IsValid() && inner.Kind() == reflect.String && inner.CanSet() {
				inner.SetString(Text(inner.String()))
			}
			return
		}
		for i := 0; i < v.NumField(); i++ {
			if v.Type().Field(i).IsExported() {
				applyValue(v.Field(i))
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			applyValue(v.Index(i))
		}
	}
}
