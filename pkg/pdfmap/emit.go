package pdfmap

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"
)

// Format names a serialisation of the mapping table.
type Format string

const (
	FormatJSON Format = "json"
	FormatFDF  Format = "fdf"
	FormatXFDF Format = "xfdf"
)

// ParseFormat resolves a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatFDF:
		return FormatFDF, nil
	case FormatXFDF:
		return FormatXFDF, nil
	}
	return "", fmt.Errorf("pdfmap: unknown output format %q", name)
}

// Emit serialises the table in the requested format.
func (t *Table) Emit(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return t.EmitJSON()
	case FormatFDF:
		return t.EmitFDF()
	case FormatXFDF:
		return t.EmitXFDF()
	}
	return nil, fmt.Errorf("pdfmap: unknown output format %q", format)
}

// EmitJSON writes the table as a canonical id-sorted JSON object.
func (t *Table) EmitJSON() ([]byte, error) {
	out := make(map[string]string, t.Len())
	for _, e := range t.entries {
		out[e.ID] = e.Value
	}
	return json.MarshalIndent(out, "", "  ")
}

// EmitFDF writes a Forms Data Format document suitable for merging into the
// questionnaire PDF with standard form-fill tooling.
func (t *Table) EmitFDF() ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("%FDF-1.2\n1 0 obj\n<< /FDF << /Fields [\n")
	for _, e := range t.Sorted() {
		fmt.Fprintf(&b, "<< /T (%s) /V (%s) >>\n", escapeFDF(e.ID), escapeFDF(e.Value))
	}
	b.WriteString("] >> >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")
	return b.Bytes(), nil
}

// EmitXFDF writes the XML flavour of the forms data format.
func (t *Table) EmitXFDF() ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(xml.Header)
	b.WriteString(`<xfdf xmlns="http://ns.adobe.com/xfdf/" xml:space="preserve">` + "\n<fields>\n")
	for _, e := range t.Sorted() {
		b.WriteString(`<field name="`)
		if err := escapeXML(&b, e.ID); err != nil {
			return nil, err
		}
		b.WriteString(`"><value>`)
		if err := escapeXML(&b, e.Value); err != nil {
			return nil, err
		}
		b.WriteString("</value></field>\n")
	}
	b.WriteString("</fields>\n</xfdf>\n")
	return b.Bytes(), nil
}

func escapeFDF(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`, "\n", `\n`, "\r", `\r`)
	return r.Replace(s)
}

func escapeXML(b *bytes.Buffer, s string) error {
	return xml.EscapeText(b, []byte(s))
}
