package answers

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/caseworks/go-sf86/pkg/fieldpath"
	"github.com/caseworks/go-sf86/pkg/sections"
	"github.com/caseworks/go-sf86/pkg/validation"
)

// Encoding names a document payload encoding.
type Encoding string

const (
	EncodingJSON Encoding = "json"
	EncodingYAML Encoding = "yaml"
)

// Decode parses the document into a generic answer map. YAML and JSON decode
// to the same shapes: see normalizeYAML.
func Decode(doc Document) (map[string]any, error) {
	raw := doc.Raw()
	switch doc.Format() {
	case EncodingYAML:
		out := make(map[string]any)
		if err := yaml.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("answers: parse %s: %w", doc.Location(), err)
		}
		normalizeYAML(out)
		return out, nil
	default:
		out := make(map[string]any)
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("answers: parse %s: %w", doc.Location(), err)
		}
		return out, nil
	}
}

// Apply writes a decoded answer map onto the questionnaire through field
// paths. Answers addressing unknown paths are reported as issues and left
// out; every resolvable answer is applied. The metadata subtree is restored
// separately so draft identity survives the round trip.
func Apply(q *sections.Questionnaire, doc map[string]any) ([]validation.Issue, error) {
	if meta, ok := doc["metadata"]; ok {
		if err := applyMetadata(q, meta); err != nil {
			return nil, err
		}
	}

	flat := make(map[string]any)
	for key, value := range doc {
		if key == "metadata" {
			continue
		}
		flatten(key, value, flat)
	}

	paths := make([]string, 0, len(flat))
	for p := range flat {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var issues []validation.Issue
	for _, p := range paths {
		if err := fieldpath.Set(q, p, flat[p]); err != nil {
			issues = append(issues, validation.Issue{
				Path:    p,
				Message: err.Error(),
			})
		}
	}
	return issues, nil
}

func applyMetadata(q *sections.Questionnaire, meta any) error {
	raw, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("answers: reencode metadata: %w", err)
	}
	if err := json.Unmarshal(raw, &q.Metadata); err != nil {
		return fmt.Errorf("answers: decode metadata: %w", err)
	}
	return nil
}

// normalizeYAML rewrites YAML decode artifacts into the shapes JSON decoding
// produces, so the schema check and field application see one document form
// regardless of encoding. Unquoted RFC 3339 scalars arrive as time.Time
// (YAML editors drop the quotes on save) and become strings again; non-string
// map keys become strings.
func normalizeYAML(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, nested := range v {
			v[key] = normalizeYAML(nested)
		}
		return v
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, nested := range v {
			out[fmt.Sprintf("%v", key)] = normalizeYAML(nested)
		}
		return out
	case []any:
		for i, nested := range v {
			v[i] = normalizeYAML(nested)
		}
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return value
	}
}

// flatten reduces nested maps and lists to path/scalar pairs.
func flatten(prefix string, value any, out map[string]any) {
	switch v := value.(type) {
	case map[string]any:
		for key, nested := range v {
			flatten(prefix+"."+key, nested, out)
		}
	case map[any]any:
		for key, nested := range v {
			flatten(fmt.Sprintf("%s.%v", prefix, key), nested, out)
		}
	case []any:
		for i, nested := range v {
			flatten(fmt.Sprintf("%s[%d]", prefix, i), nested, out)
		}
	case nil:
		// absent answer, leave the default in place
	case float64:
		// JSON numbers decode as float64; integral answers stay ints
		if v == float64(int(v)) {
			out[prefix] = int(v)
			return
		}
		out[prefix] = v
	default:
		out[prefix] = value
	}
}

// EncodeJSON serialises a questionnaire draft as indented JSON.
func EncodeJSON(q *sections.Questionnaire) ([]byte, error) {
	return json.MarshalIndent(q, "", "  ")
}

// EncodeYAML serialises a questionnaire draft as YAML. The JSON field names
// are authoritative, so the YAML tree is derived from the JSON encoding.
func EncodeYAML(q *sections.Questionnaire) ([]byte, error) {
	raw, err := json.Marshal(q)
	if err != nil {
		return nil, err
	}
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, err
	}
	return yaml.Marshal(tree)
}
