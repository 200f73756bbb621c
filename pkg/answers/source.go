package answers

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// SourceKind enumerates where a draft can live.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Source locates an answers document for the Loader.
type Source interface {
	Kind() SourceKind
	Location() string
}

// source is the one concrete Source. The kinds differ only in how the Loader
// reads them, not in what they carry.
type source struct {
	kind     SourceKind
	location string
}

func (s source) Kind() SourceKind { return s.kind }
func (s source) Location() string { return s.location }

// SourceFromFile points at a draft file on disk.
func SourceFromFile(p string) Source {
	return source{kind: SourceKindFile, location: filepath.Clean(p)}
}

// SourceFromFS points at a draft inside an fs.FS, read through Loader.FS.
func SourceFromFS(name string) Source {
	return source{kind: SourceKindFS, location: name}
}

// SourceFromURL points at a draft served over HTTP, fetched through
// Loader.Client. Malformed URLs panic: the URL is operator configuration and
// a mistake should surface at startup, not mid-run.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("answers: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("answers: invalid URL %q: %v", raw, err))
	}
	return source{kind: SourceKindURL, location: raw}
}

// encodingFor guesses the draft encoding from a source location. URL sources
// are judged by their path component so a query string does not hide the
// extension.
func encodingFor(src Source) (Encoding, bool) {
	if src == nil {
		return "", false
	}
	loc := src.Location()
	if src.Kind() == SourceKindURL {
		if u, err := url.Parse(loc); err == nil {
			loc = u.Path
		}
	}
	switch strings.ToLower(path.Ext(loc)) {
	case ".yaml", ".yml":
		return EncodingYAML, true
	case ".json":
		return EncodingJSON, true
	}
	return "", false
}
