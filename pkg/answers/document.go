package answers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
)

// Document wraps a raw answers payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("answers: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("answers: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a defensive copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Format detects the payload encoding from the source location, falling back
// to sniffing the first non-blank byte.
func (d Document) Format() Encoding {
	if enc, ok := encodingFor(d.source); ok {
		return enc
	}
	for _, b := range d.raw {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '{', '[':
			return EncodingJSON
		default:
			return EncodingYAML
		}
	}
	return EncodingJSON
}

// Loader fetches answer documents for a Source.
type Loader struct {
	FS     fs.FS
	Client *http.Client
}

// Load reads the document the source points at.
func (l Loader) Load(ctx context.Context, src Source) (Document, error) {
	if src == nil {
		return Document{}, errors.New("answers: source is required")
	}
	switch src.Kind() {
	case SourceKindFile:
		raw, err := os.ReadFile(src.Location())
		if err != nil {
			return Document{}, fmt.Errorf("answers: read %s: %w", src.Location(), err)
		}
		return NewDocument(src, raw)
	case SourceKindFS:
		if l.FS == nil {
			return Document{}, errors.New("answers: loader has no fs.FS configured")
		}
		raw, err := fs.ReadFile(l.FS, src.Location())
		if err != nil {
			return Document{}, fmt.Errorf("answers: read %s: %w", src.Location(), err)
		}
		return NewDocument(src, raw)
	case SourceKindURL:
		client := l.Client
		if client == nil {
			client = http.DefaultClient
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.Location(), nil)
		if err != nil {
			return Document{}, fmt.Errorf("answers: build request for %s: %w", src.Location(), err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return Document{}, fmt.Errorf("answers: fetch %s: %w", src.Location(), err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return Document{}, fmt.Errorf("answers: fetch %s: unexpected status %d", src.Location(), resp.StatusCode)
		}
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return Document{}, fmt.Errorf("answers: read %s: %w", src.Location(), err)
		}
		return NewDocument(src, raw)
	}
	return Document{}, fmt.Errorf("answers: unsupported source kind %q", src.Kind())
}
