package answers_test

import (
	"testing"

	"github.com/caseworks/go-sf86/pkg/answers"
)

func TestDocumentFormat(t *testing.T) {
	tests := []struct {
		name string
		src  answers.Source
		raw  string
		want answers.Encoding
	}{
		{
			name: "json extension",
			src:  answers.SourceFromFile("draft.json"),
			raw:  "identity:\n",
			want: answers.EncodingJSON,
		},
		{
			name: "yaml extension",
			src:  answers.SourceFromFile("draft.yaml"),
			raw:  `{"identity": {}}`,
			want: answers.EncodingYAML,
		},
		{
			name: "yml extension",
			src:  answers.SourceFromFS("drafts/mine.yml"),
			raw:  "identity:\n",
			want: answers.EncodingYAML,
		},
		{
			name: "uppercase extension",
			src:  answers.SourceFromFile("DRAFT.YAML"),
			raw:  "identity:\n",
			want: answers.EncodingYAML,
		},
		{
			name: "url query string does not hide the extension",
			src:  answers.SourceFromURL("https://example.com/drafts/mine.yaml?rev=2"),
			raw:  "identity:\n",
			want: answers.EncodingYAML,
		},
		{
			name: "no extension sniffs json",
			src:  answers.SourceFromFile("draft"),
			raw:  "  \n\t{\"identity\": {}}",
			want: answers.EncodingJSON,
		},
		{
			name: "no extension sniffs yaml",
			src:  answers.SourceFromFile("draft"),
			raw:  "identity:\n  name: {}\n",
			want: answers.EncodingYAML,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := answers.MustNewDocument(tt.src, []byte(tt.raw))
			if got := doc.Format(); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSourceFromFileCleansPath(t *testing.T) {
	src := answers.SourceFromFile("drafts/../draft.json")
	if src.Location() != "draft.json" {
		t.Errorf("Location() = %q", src.Location())
	}
	if src.Kind() != answers.SourceKindFile {
		t.Errorf("Kind() = %q", src.Kind())
	}
}

func TestSourceFromURLRejectsGarbage(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("malformed URL did not panic")
		}
	}()
	answers.SourceFromURL("not a url")
}
