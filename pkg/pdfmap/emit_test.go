package pdfmap

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{name: "json", want: FormatJSON},
		{name: " FDF ", want: FormatFDF},
		{name: "XFdf", want: FormatXFDF},
		{name: "pdf", wantErr: true},
		{name: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFormat(%q) succeeded, want error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestEmitJSON(t *testing.T) {
	table := NewTable()
	table.Text("b", "2")
	table.Text("a", "1")

	raw, err := table.Emit(FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]string
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]string{"a": "1", "b": "2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("emitted object mismatch (-want +got):\n%s", diff)
	}
}

func TestEmitFDF(t *testing.T) {
	table := NewTable()
	table.Text("form1[0].T(1)", `back\slash`)

	raw, err := table.Emit(FormatFDF)
	if err != nil {
		t.Fatal(err)
	}
	out := string(raw)
	if !strings.HasPrefix(out, "%FDF-1.2\n") {
		t.Errorf("missing FDF header:\n%s", out)
	}
	if !strings.Contains(out, `/T (form1[0].T\(1\))`) {
		t.Errorf("parentheses not escaped:\n%s", out)
	}
	if !strings.Contains(out, `/V (back\\slash)`) {
		t.Errorf("backslash not escaped:\n%s", out)
	}
	if !strings.HasSuffix(out, "%%EOF\n") {
		t.Errorf("missing trailer:\n%s", out)
	}
}

func TestEmitXFDF(t *testing.T) {
	table := NewTable()
	table.Text("id<1>", `a "quoted" & value`)

	raw, err := table.Emit(FormatXFDF)
	if err != nil {
		t.Fatal(err)
	}
	out := string(raw)
	if !strings.Contains(out, `xmlns="http://ns.adobe.com/xfdf/"`) {
		t.Errorf("missing xfdf namespace:\n%s", out)
	}
	if !strings.Contains(out, "id&lt;1&gt;") {
		t.Errorf("field name not escaped:\n%s", out)
	}
	if !strings.Contains(out, "&amp; value") {
		t.Errorf("value not escaped:\n%s", out)
	}
}

func TestEmitUnknownFormat(t *testing.T) {
	if _, err := NewTable().Emit(Format("pdf")); err == nil {
		t.Error("unknown format did not error")
	}
}
