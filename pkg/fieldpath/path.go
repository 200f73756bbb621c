package fieldpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step of a field path: either a named key into a struct or an
// index into a slice of repeating entries.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// Path is a parsed field path such as "section11.residences[2].dates.from.date".
type Path []Segment

var errEmptyPath = errors.New("fieldpath: empty path")

// Parse splits a dotted/bracketed path into segments. Keys are separated by
// dots; repeating entries are addressed with zero-based bracket indices.
func Parse(raw string) (Path, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, errEmptyPath
	}

	var path Path
	for _, part := range strings.Split(trimmed, ".") {
		if part == "" {
			return nil, fmt.Errorf("fieldpath: empty segment in %q", raw)
		}
		key := part
		var brackets string
		if idx := strings.IndexByte(part, '['); idx >= 0 {
			key, brackets = part[:idx], part[idx:]
		}
		if key == "" {
			return nil, fmt.Errorf("fieldpath: missing key before index in %q", raw)
		}
		path = append(path, Segment{Key: key})

		for brackets != "" {
			if brackets[0] != '[' {
				return nil, fmt.Errorf("fieldpath: malformed index in %q", raw)
			}
			close := strings.IndexByte(brackets, ']')
			if close < 0 {
				return nil, fmt.Errorf("fieldpath: unterminated index in %q", raw)
			}
			n, err := strconv.Atoi(brackets[1:close])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("fieldpath: invalid index %q in %q", brackets[1:close], raw)
			}
			path = append(path, Segment{Index: n, IsIndex: true})
			brackets = brackets[close+1:]
		}
	}
	return path, nil
}

// MustParse panics on malformed paths. Useful for fixed paths in tests and
// wizard flows.
func MustParse(raw string) Path {
	path, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return path
}

// String renders the path back into its dotted/bracketed form. Parse and
// String round-trip.
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if seg.IsIndex {
			fmt.Fprintf(&b, "[%d]", seg.Index)
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.Key)
	}
	return b.String()
}

// Child returns a copy of the path extended with a key segment.
func (p Path) Child(key string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, Segment{Key: key})
}

// At returns a copy of the path extended with an index segment.
func (p Path) At(index int) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, Segment{Index: index, IsIndex: true})
}
