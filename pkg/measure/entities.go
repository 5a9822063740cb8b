package measure

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"
)

// mermaidEntities mirrors the small set of entity escapes the diagram
// source DSL itself emits for structural characters that would otherwise
// be parsed (so that, e.g., an escaped "&lt;br&gt;" in a label stays
// literal text instead of becoming a line break). Word-wrap and
// measurement always run on the raw, still-encoded text; entities are
// decoded only when the label is finally written into the SVG document.
var mermaidEntities = map[string]string{
	"&lt;":   "<",
	"&gt;":   ">",
	"&amp;":  "&",
	"&quot;": `"`,
	"&#39;":  "'",
}

// EscapeXML XML-escapes s for use as SVG element text content.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// DecodeEntities decodes Mermaid's named entity escapes plus numeric
// character references (&#NN; and &#xHH;) in s. It is the caller's
// responsibility to apply this only to label text destined for the text
// node, never to attribute values, and only at emission time -- decoding
// before wrap/measure would let an escaped "&lt;br&gt;" act like a real
// line break.
func DecodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	for enc, dec := range mermaidEntities {
		s = strings.ReplaceAll(s, enc, dec)
	}
	return decodeNumericRefs(s)
}

func decodeNumericRefs(s string) string {
	var out strings.Builder
	for {
		i := strings.Index(s, "&#")
		if i < 0 {
			out.WriteString(s)
			break
		}
		out.WriteString(s[:i])
		rest := s[i+2:]
		j := strings.IndexByte(rest, ';')
		if j < 0 {
			out.WriteString("&#")
			s = rest
			continue
		}
		ref, tail := rest[:j], rest[j+1:]
		if r, ok := parseCodepoint(ref); ok {
			out.WriteRune(r)
		} else {
			out.WriteString("&#" + ref + ";")
		}
		s = tail
	}
	return out.String()
}

func parseCodepoint(ref string) (rune, bool) {
	base := 10
	if strings.HasPrefix(ref, "x") || strings.HasPrefix(ref, "X") {
		base = 16
		ref = ref[1:]
	}
	n, err := strconv.ParseInt(ref, base, 32)
	if err != nil {
		return 0, false
	}
	return rune(n), true
}

// NonEmptyLabel returns s, or [ZeroWidthSpace] if s is empty. Layout code
// calls this before measuring a node's label so an empty label never
// collapses to a zero-height box.
func NonEmptyLabel(s string) string {
	if s == "" {
		return ZeroWidthSpace
	}
	return s
}
