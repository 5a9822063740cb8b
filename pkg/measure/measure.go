package measure

import "strings"

// Box is a deterministic bounding box: width and height in px.
type Box struct {
	Width, Height float64
}

// Wrapped is the result of [MeasureWrapped]: an overall bounding box plus
// the wrapped line list.
type Wrapped struct {
	Box
	Lines []string
}

// ZeroWidthSpace is the zero-width space (U+200B) that layout code
// substitutes for an empty label before measuring it, so that downstream
// layout never sees a zero-height box. The measurer itself has no opinion
// about empty text: Measure and MeasureWrapped report a true zero-area box,
// per their own contract.
const ZeroWidthSpace = "​"

// Measure returns the single-line, unwrapped bounding box of text under
// style. Measurement happens on the raw (entity-encoded) text; entities are
// decoded only at emission time. Zero-length text returns a zero-area box.
func Measure(text string, style Style) Box {
	if text == "" {
		return Box{}
	}
	return Box{
		Width:  lineWidth(text, style.FontSize),
		Height: style.FontSize * svgLineHeight,
	}
}

func lineWidth(line string, fontSize float64) float64 {
	var w float64
	for _, r := range line {
		w += runeAdvance(r) * fontSize
	}
	return w
}

// MeasureWrapped wraps text to maxWidth (nil/<=0 means unlimited) under
// wrapMode and returns the overall bounding box plus the line list. A
// zero-length text returns a zero-area box with exactly one empty line.
func MeasureWrapped(text string, style Style, maxWidth *float64, wrapMode WrapMode) Wrapped {
	if text == "" {
		return Wrapped{Lines: []string{""}}
	}

	var width float64
	if maxWidth != nil && *maxWidth > 0 {
		width = *maxWidth
	}

	lines := wrap(text, style.FontSize, width, wrapMode)

	var maxLineWidth float64
	for _, l := range lines {
		if w := lineWidth(l, style.FontSize); w > maxLineWidth {
			maxLineWidth = w
		}
	}

	lh := LineHeight(wrapMode, style.FontSize)
	return Wrapped{
		Box:   Box{Width: maxLineWidth, Height: lh * float64(len(lines))},
		Lines: lines,
	}
}

// MeasureSVGTextBBoxX returns the asymmetric horizontal extent (left, right)
// around an SVG <text> element's anchor point, required to build a correctly
// centered bounding box: unlike Measure, the left and right half-widths are
// computed from the first and last glyphs' own advances rather than split
// evenly, matching how SVG renders a middle-anchored text run.
func MeasureSVGTextBBoxX(text string, style Style) (left, right float64) {
	if text == "" {
		return 0, 0
	}
	total := lineWidth(text, style.FontSize)
	runes := []rune(text)
	firstHalf := runeAdvance(runes[0]) * style.FontSize / 2
	lastHalf := runeAdvance(runes[len(runes)-1]) * style.FontSize / 2
	left = total/2 - firstHalf/2
	right = total/2 + lastHalf/2
	return left, right
}

// splitTokens splits on ASCII space, keeping interior runs of spaces as
// their own tokens so that wrap decisions can reinstate the exact
// whitespace between words.
func splitTokens(s string) []string {
	var tokens []string
	var b strings.Builder
	inSpace := false
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	for _, r := range s {
		isSpace := r == ' '
		if isSpace != inSpace {
			flush()
			inSpace = isSpace
		}
		b.WriteRune(r)
	}
	flush()
	return tokens
}
