package sanitize

import (
	"testing"

	"github.com/caseworks/go-sf86/pkg/form"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "", want: ""},
		{name: "plain", raw: "no markup here", want: "no markup here"},
		{name: "trims", raw: "  padded  ", want: "padded"},
		{name: "strips tags", raw: `<script>alert("x")</script>hello`, want: "hello"},
		{name: "keeps tag text", raw: "<b>bold</b> claim", want: "bold claim"},
		{name: "unescapes entities", raw: "Smith &amp; Sons", want: "Smith & Sons"},
		{name: "collapses spaces", raw: "a \t  b", want: "a b"},
		{name: "keeps newlines", raw: "line one\nline two", want: "line one\nline two"},
		{name: "drops controls", raw: "a\x00b\x07c", want: "abc"},
		{name: "ampersand survives", raw: "AT&T", want: "AT&T"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.raw); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestApply(t *testing.T) {
	model := struct {
		Name    form.Field[string]
		Checked form.Field[bool]
		Nested  struct{ Note form.Field[string] }
		Entries []form.Field[string]
	}{
		Name:    form.WithValue("id.name", "<i>Doe</i>"),
		Checked: form.WithValue("id.checked", true),
		Entries: []form.Field[string]{form.WithValue("id.e0", "ok\x00ok")},
	}
	model.Nested.Note = form.WithValue("id.note", "  spaced \t out  ")

	Apply(&model)

	if model.Name.Value != "Doe" {
		t.Errorf("Name = %q", model.Name.Value)
	}
	if model.Nested.Note.Value != "spaced out" {
		t.Errorf("Note = %q", model.Nested.Note.Value)
	}
	if model.Entries[0].Value != "okok" {
		t.Errorf("Entries[0] = %q", model.Entries[0].Value)
	}
	if !model.Checked.Value {
		t.Error("non-string leaf was disturbed")
	}
	if model.Name.ID != "id.name" {
		t.Error("field id was disturbed")
	}
}

func TestApplyNonPointer(t *testing.T) {
	// value roots are ignored rather than panicking
	Apply(struct{ F form.Field[string] }{})
	Apply(nil)
}
