package form_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/caseworks/go-sf86/pkg/form"
)

func TestNewField(t *testing.T) {
	f := form.NewField[string]("form1[0].Sections1-6[0].TextField11[0]")
	if f.ID != "form1[0].Sections1-6[0].TextField11[0]" {
		t.Errorf("ID = %q", f.ID)
	}
	if !f.IsZero() {
		t.Error("fresh field is not zero")
	}

	f.Set("Doe")
	if f.IsZero() {
		t.Error("field with a value reports zero")
	}
	if f.Value != "Doe" {
		t.Errorf("Value = %q", f.Value)
	}
}

func TestFieldLeaf(t *testing.T) {
	f := form.WithValue("id1", true)
	var leaf form.Leaf = f
	if leaf.FieldID() != "id1" {
		t.Errorf("FieldID() = %q", leaf.FieldID())
	}
	if got, ok := leaf.FieldValue().(bool); !ok || !got {
		t.Errorf("FieldValue() = %v", leaf.FieldValue())
	}
}

func TestFieldJSONValueOnly(t *testing.T) {
	f := form.WithValue("form1[0].Sections1-6[0].SSN[0]", "527-88-1234")
	raw, err := json.Marshal(f)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `"527-88-1234"` {
		t.Errorf("Marshal = %s, want the bare value", raw)
	}

	decoded := form.NewField[string]("kept")
	if err := json.Unmarshal([]byte(`"new value"`), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Value != "new value" {
		t.Errorf("Value = %q", decoded.Value)
	}
	if decoded.ID != "kept" {
		t.Errorf("decode clobbered the field id: %q", decoded.ID)
	}
}

func TestFieldYAMLValueOnly(t *testing.T) {
	f := form.WithValue("id", "hello")
	raw, err := yaml.Marshal(f)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "hello\n" {
		t.Errorf("Marshal = %q, want bare value", raw)
	}

	decoded := form.NewField[string]("kept")
	if err := yaml.Unmarshal([]byte("round trip"), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Value != "round trip" || decoded.ID != "kept" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestStructJSONValues(t *testing.T) {
	name := form.PersonName{
		Last:  form.WithValue("id.last", "Doe"),
		First: form.WithValue("id.first", "Jane"),
	}
	raw, err := json.Marshal(name)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"last":"Doe","first":"Jane","middle":"","suffix":""}`
	if diff := cmp.Diff(want, string(raw)); diff != "" {
		t.Errorf("marshal mismatch (-want +got):\n%s", diff)
	}
}

func TestBranch(t *testing.T) {
	tests := []struct {
		value   string
		yes, no bool
	}{
		{"YES", true, false},
		{"yes", true, false},
		{" NO ", false, true},
		{"", false, false},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		b := form.Branch{Value: tt.value}
		if got := form.IsYes(b); got != tt.yes {
			t.Errorf("IsYes(%q) = %v, want %v", tt.value, got, tt.yes)
		}
		if got := form.IsNo(b); got != tt.no {
			t.Errorf("IsNo(%q) = %v, want %v", tt.value, got, tt.no)
		}
	}
}

func TestAddressIsForeign(t *testing.T) {
	var a form.Address
	if a.IsForeign() {
		t.Error("blank address reports foreign")
	}
	a.Country.Set("United States")
	if a.IsForeign() {
		t.Error("United States reports foreign")
	}
	a.Country.Set("France")
	if !a.IsForeign() {
		t.Error("France does not report foreign")
	}
}

func TestAddressIsAPOFPO(t *testing.T) {
	var a form.Address
	for _, code := range []string{"AA", "ae", " AP "} {
		a.State.Set(code)
		if !a.IsAPOFPO() {
			t.Errorf("state %q does not report APO/FPO", code)
		}
	}
	a.State.Set("VA")
	if a.IsAPOFPO() {
		t.Error("VA reports APO/FPO")
	}
}
