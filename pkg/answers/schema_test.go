package answers_test

import (
	"strings"
	"testing"

	"github.com/caseworks/go-sf86/pkg/answers"
)

func TestDocumentSchemaShape(t *testing.T) {
	schema := answers.DocumentSchema()

	identity, ok := schema.Properties["identity"]
	if !ok {
		t.Fatal("schema missing identity section")
	}
	name, ok := identity.Value.Properties["name"]
	if !ok {
		t.Fatal("identity schema missing name")
	}
	last, ok := name.Value.Properties["last"]
	if !ok {
		t.Fatal("name schema missing last")
	}
	if !last.Value.Type.Is("string") {
		t.Errorf("last type = %v, want string", last.Value.Type)
	}

	section11, ok := schema.Properties["section11"]
	if !ok {
		t.Fatal("schema missing section11")
	}
	entries, ok := section11.Value.Properties["entries"]
	if !ok {
		t.Fatal("section11 schema missing entries")
	}
	if !entries.Value.Type.Is("array") {
		t.Errorf("entries type = %v, want array", entries.Value.Type)
	}
}

func TestValidateShape(t *testing.T) {
	tests := []struct {
		name     string
		doc      map[string]any
		wantPath string
	}{
		{
			name: "valid document",
			doc: map[string]any{
				"identity": map[string]any{"name": map[string]any{"last": "Doe"}},
			},
		},
		{
			name: "scalar where object expected",
			doc: map[string]any{
				"identity": "Doe",
			},
			wantPath: "identity",
		},
		{
			name: "wrong scalar type",
			doc: map[string]any{
				"identity": map[string]any{"name": map[string]any{"last": float64(12)}},
			},
			wantPath: "identity.name.last",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := answers.ValidateShape(tt.doc)
			if tt.wantPath == "" {
				if len(issues) != 0 {
					t.Fatalf("ValidateShape() issues = %v, want none", issues)
				}
				return
			}
			if len(issues) == 0 {
				t.Fatal("ValidateShape() expected issues")
			}
			found := false
			for _, issue := range issues {
				if strings.HasPrefix(issue.Path, tt.wantPath) {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue for path %q in %v", tt.wantPath, issues)
			}
		})
	}
}
