package answers

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/caseworks/go-sf86/pkg/form"
	"github.com/caseworks/go-sf86/pkg/sections"
	"github.com/caseworks/go-sf86/pkg/validation"
)

var (
	leafType = reflect.TypeOf((*form.Leaf)(nil)).Elem()
	timeType = reflect.TypeOf(time.Time{})
)

// DocumentSchema derives the OpenAPI schema for an answers document from the
// questionnaire's own shape. Leaves collapse to their value scalar, so the
// schema describes what an answers file may contain, not the internal
// field-id bookkeeping.
func DocumentSchema() *openapi3.Schema {
	return schemaFor(reflect.TypeOf(sections.Questionnaire{}))
}

func schemaFor(t reflect.Type) *openapi3.Schema {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Implements(leafType) || reflect.PointerTo(t).Implements(leafType) {
		return leafSchema(t)
	}
	if t == timeType {
		return openapi3.NewStringSchema().WithFormat("date-time")
	}

	switch t.Kind() {
	case reflect.Struct:
		schema := openapi3.NewObjectSchema()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			name := jsonName(field)
			if name == "" {
				continue
			}
			schema.WithPropertyRef(name, openapi3.NewSchemaRef("", schemaFor(field.Type)))
		}
		return schema
	case reflect.Slice, reflect.Array:
		// empty entry lists serialise as null
		schema := openapi3.NewArraySchema()
		schema.Nullable = true
		schema.Items = openapi3.NewSchemaRef("", schemaFor(t.Elem()))
		return schema
	case reflect.String:
		return openapi3.NewStringSchema()
	case reflect.Bool:
		return openapi3.NewBoolSchema()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return openapi3.NewIntegerSchema()
	case reflect.Float32, reflect.Float64:
		return openapi3.NewFloat64Schema()
	default:
		return openapi3.NewSchema()
	}
}

// leafSchema resolves the scalar behind a Field wrapper by inspecting its
// Value field.
func leafSchema(t reflect.Type) *openapi3.Schema {
	if t.Kind() == reflect.Struct {
		if value, ok := t.FieldByName("Value"); ok {
			switch value.Type.Kind() {
			case reflect.Bool:
				return openapi3.NewBoolSchema()
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
				return openapi3.NewIntegerSchema()
			case reflect.Float32, reflect.Float64:
				return openapi3.NewFloat64Schema()
			}
		}
	}
	return openapi3.NewStringSchema()
}

func jsonName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	if tag == "" {
		return field.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return field.Name
	}
	return name
}

// ValidateShape checks a decoded answers document against the derived
// schema and reports every mismatch as an issue. Unknown keys are tolerated
// here; Apply reports them with the exact path that failed to resolve.
func ValidateShape(doc map[string]any) []validation.Issue {
	schema := DocumentSchema()
	err := schema.VisitJSON(doc, openapi3.MultiErrors())
	if err == nil {
		return nil
	}
	return issuesFromSchemaErr(err)
}

func issuesFromSchemaErr(err error) []validation.Issue {
	var issues []validation.Issue
	switch e := err.(type) {
	case openapi3.MultiError:
		for _, nested := range e {
			issues = append(issues, issuesFromSchemaErr(nested)...)
		}
	case *openapi3.SchemaError:
		issues = append(issues, validation.Issue{
			Path:    pointerToPath(e.JSONPointer()),
			Message: e.Reason,
		})
	default:
		issues = append(issues, validation.Issue{Message: err.Error()})
	}
	return issues
}

// pointerToPath converts a JSON pointer token list to dotted field-path
// notation, so schema issues read the same way as rule issues.
func pointerToPath(tokens []string) string {
	var b strings.Builder
	for _, tok := range tokens {
		if isIndex(tok) {
			fmt.Fprintf(&b, "[%s]", tok)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(tok)
	}
	return b.String()
}

func isIndex(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
