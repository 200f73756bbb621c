package answers_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/caseworks/go-sf86/pkg/answers"
	"github.com/caseworks/go-sf86/pkg/sections"
)

func TestDecodeJSON(t *testing.T) {
	doc := answers.MustNewDocument(answers.SourceFromFile("draft.json"), []byte(`{
		"identity": {"name": {"last": "Doe", "first": "Jane"}}
	}`))

	got, err := answers.Decode(doc)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	identity, ok := got["identity"].(map[string]any)
	if !ok {
		t.Fatalf("identity: expected object, got %T", got["identity"])
	}
	name, ok := identity["name"].(map[string]any)
	if !ok {
		t.Fatalf("name: expected object, got %T", identity["name"])
	}
	if name["last"] != "Doe" {
		t.Errorf("last = %v, want Doe", name["last"])
	}
}

func TestDecodeYAML(t *testing.T) {
	doc := answers.MustNewDocument(answers.SourceFromFile("draft.yaml"), []byte("identity:\n  name:\n    last: Doe\n"))

	got, err := answers.Decode(doc)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	identity, ok := got["identity"].(map[string]any)
	if !ok {
		t.Fatalf("identity: expected object, got %T", got["identity"])
	}
	name, ok := identity["name"].(map[string]any)
	if !ok {
		t.Fatalf("name: expected object, got %T", identity["name"])
	}
	if name["last"] != "Doe" {
		t.Errorf("last = %v, want Doe", name["last"])
	}
}

// Hand-edited YAML drafts carry unquoted timestamps: yq and most YAML
// editors strip the quotes, which makes yaml.v3 hand back time.Time values.
// Those must decode to the same strings the JSON path produces so the shape
// check does not reject a valid draft.
func TestDecodeYAMLUnquotedTimestamps(t *testing.T) {
	doc := answers.MustNewDocument(answers.SourceFromFile("draft.yaml"), []byte(
		"metadata:\n"+
			"  documentId: d5b9a6f2-08a1-4f41-9c7e-2f61f4b1d9c0\n"+
			"  createdAt: 2026-08-30T12:00:00Z\n"+
			"  updatedAt: 2026-08-30T12:05:00Z\n"+
			"  revision: 2\n"+
			"identity:\n"+
			"  name:\n"+
			"    last: Doe\n"+
			"  dateOfBirth: 1990-04-01\n"))

	decoded, err := answers.Decode(doc)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if issues := answers.ValidateShape(decoded); len(issues) != 0 {
		t.Fatalf("ValidateShape() issues = %v, want none", issues)
	}

	q := sections.NewQuestionnaire()
	issues, err := answers.Apply(q, decoded)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(issues) != 0 {
		t.Fatalf("Apply() issues = %v, want none", issues)
	}
	if got := q.Metadata.CreatedAt.UTC().Format(time.RFC3339); got != "2026-08-30T12:00:00Z" {
		t.Errorf("createdAt = %q, want the draft's timestamp", got)
	}
	if q.Identity.Name.Last.Value != "Doe" {
		t.Errorf("last = %q, want Doe", q.Identity.Name.Last.Value)
	}
	// the bare date lands as a string answer; format rules take it from here
	if q.Identity.DateOfBirth.Value == "" {
		t.Error("dateOfBirth did not apply")
	}
}

func TestDecodeMalformed(t *testing.T) {
	doc := answers.MustNewDocument(answers.SourceFromFile("draft.json"), []byte(`{"identity":`))
	if _, err := answers.Decode(doc); err == nil {
		t.Fatal("Decode() expected error for truncated JSON")
	}
}

func TestApply(t *testing.T) {
	q := sections.NewQuestionnaire()
	doc := map[string]any{
		"identity": map[string]any{
			"name": map[string]any{
				"last":  "Doe",
				"first": "Jane",
			},
		},
		"section11": map[string]any{
			"entries": []any{
				map[string]any{
					"address": map[string]any{"city": "Arlington"},
				},
			},
		},
	}

	issues, err := answers.Apply(q, doc)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(issues) != 0 {
		t.Fatalf("Apply() issues = %v, want none", issues)
	}

	if got := q.Identity.Name.Last.Value; got != "Doe" {
		t.Errorf("lastName = %q, want %q", got, "Doe")
	}
	if got := q.Residences.Entries[0].Address.City.Value; got != "Arlington" {
		t.Errorf("city = %q, want %q", got, "Arlington")
	}
	// entry created through Apply still carries its slot field id
	if q.Residences.Entries[0].Address.City.ID == "" {
		t.Error("applied entry lost its field id")
	}
}

func TestApplyUnknownPath(t *testing.T) {
	q := sections.NewQuestionnaire()
	doc := map[string]any{
		"identity": map[string]any{"middleInitial": "Q"},
	}

	issues, err := answers.Apply(q, doc)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(issues) != 1 {
		t.Fatalf("Apply() issues = %d, want 1", len(issues))
	}
	if issues[0].Path != "identity.middleInitial" {
		t.Errorf("issue path = %q, want identity.middleInitial", issues[0].Path)
	}
}

func TestApplyMetadata(t *testing.T) {
	q := sections.NewQuestionnaire()
	doc := map[string]any{
		"metadata": map[string]any{
			"documentId": "d5b9a6f2-08a1-4f41-9c7e-2f61f4b1d9c0",
			"revision":   float64(4),
		},
	}

	if _, err := answers.Apply(q, doc); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if q.Metadata.DocumentID != "d5b9a6f2-08a1-4f41-9c7e-2f61f4b1d9c0" {
		t.Errorf("documentId = %q", q.Metadata.DocumentID)
	}
	if q.Metadata.Revision != 4 {
		t.Errorf("revision = %d, want 4", q.Metadata.Revision)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	q := sections.NewQuestionnaire()
	q.Identity.Name.Last.Set("Doe")
	q.Identity.Name.First.Set("Jane")
	q.Residences.AddEntry()
	q.Residences.Entries[0].Address.City.Set("Arlington")

	raw, err := answers.EncodeJSON(q)
	if err != nil {
		t.Fatalf("EncodeJSON() error = %v", err)
	}

	decoded, err := answers.Decode(answers.MustNewDocument(answers.SourceFromFile("draft.json"), raw))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	restored := sections.NewQuestionnaire()
	issues, err := answers.Apply(restored, decoded)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(issues) != 0 {
		t.Fatalf("Apply() issues = %v, want none", issues)
	}

	if diff := cmp.Diff(q.Identity, restored.Identity); diff != "" {
		t.Errorf("identity mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(q.Residences.Entries, restored.Residences.Entries); diff != "" {
		t.Errorf("residence entries mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeYAML(t *testing.T) {
	q := sections.NewQuestionnaire()
	q.Identity.Name.Last.Set("Doe")

	raw, err := answers.EncodeYAML(q)
	if err != nil {
		t.Fatalf("EncodeYAML() error = %v", err)
	}
	if !strings.Contains(string(raw), "last: Doe") {
		t.Errorf("yaml output missing answer:\n%s", raw)
	}
}
