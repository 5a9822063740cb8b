package svg

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"
)

// FormatNumber renders f as its shortest round-trip decimal
// representation, trimming trailing fractional zeros; a value that is a
// whole number is emitted with no decimal point at all ("12", not
// "12.0" or "12.00").
func FormatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

// EscapeXML escapes s for safe inclusion as SVG text content or an
// attribute value.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// mermaidEntities maps the small set of escape tokens a diagram DSL author
// may write inside label text (since the raw characters are otherwise
// reserved by the DSL's own grammar) to their literal characters. Decoding
// happens before XML-escaping, and only for label text -- never for
// attribute values, which never carry these tokens.
var mermaidEntities = map[string]string{
	"#lt;":   "<",
	"#gt;":   ">",
	"#quot;": `"`,
	"#amp;":  "&",
	"#35;":   "#",
	"#9;":    "\t",
	"#br;":   "\n",
}

// DecodeMermaidEntities replaces every recognized #token; escape in s with
// its literal character, leaving unrecognized tokens untouched.
func DecodeMermaidEntities(s string) string {
	if !strings.Contains(s, "#") {
		return s
	}
	for token, lit := range mermaidEntities {
		s = strings.ReplaceAll(s, token, lit)
	}
	return s
}

// EscapeLabel decodes Mermaid's own entity tokens, then XML-escapes the
// result, so user-facing label text renders literal characters safely.
func EscapeLabel(s string) string {
	return EscapeXML(DecodeMermaidEntities(s))
}
