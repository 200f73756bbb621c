package sf86_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	sf86 "github.com/caseworks/go-sf86"
	"github.com/caseworks/go-sf86/pkg/testsupport"
)

func writeAnswers(t *testing.T, raw []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFill(t *testing.T) {
	path := writeAnswers(t, testsupport.CompleteAnswersJSON(t))

	result, err := sf86.Fill(context.Background(), sf86.FileSource(path), sf86.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Ready() {
		t.Fatalf("fill not ready: shape=%v unresolved=%v issues=%v",
			result.Shape, result.Unresolved, result.Validation.Issues)
	}

	var fields map[string]string
	if err := json.Unmarshal(result.Output, &fields); err != nil {
		t.Fatal(err)
	}
	if fields["form1[0].Sections1-6[0].TextField11[0]"] != "Doe" {
		t.Errorf("last name field = %q", fields["form1[0].Sections1-6[0].TextField11[0]"])
	}
}

func TestValidate(t *testing.T) {
	path := writeAnswers(t, []byte(`{"identity": {"name": {"last": "Doe"}}}`))

	result, err := sf86.Validate(context.Background(), sf86.FileSource(path))
	if err != nil {
		t.Fatal(err)
	}
	if result.Validation.Valid {
		t.Error("a near-empty questionnaire must not validate")
	}
	if result.Output != nil {
		t.Error("Validate produced output")
	}
}

func TestNew(t *testing.T) {
	q := sf86.New()
	if q.Metadata.DocumentID == "" {
		t.Error("fresh questionnaire has no document id")
	}
	if len(q.Sections()) == 0 {
		t.Error("no sections")
	}
}
