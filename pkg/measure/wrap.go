package measure

import (
	"strings"
	"unicode"
)

// wrap greedily fits tokens (words, with interior-space runs as their own
// tokens) onto lines no wider than maxWidth. maxWidth <= 0 means unlimited
// (the whole text becomes a single line). When a single token alone exceeds
// maxWidth and the current line is empty, SvgLike breaks it on character
// boundaries (appending a trailing hyphen when the previous character is
// alphanumeric and the hyphen still fits); HtmlLike instead accepts the
// overflow and keeps the token intact.
func wrap(text string, fontSize, maxWidth float64, mode WrapMode) []string {
	if maxWidth <= 0 {
		return []string{text}
	}

	tokens := splitTokens(text)
	var lines []string
	var cur strings.Builder
	var curWidth float64

	flush := func() {
		if cur.Len() > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			curWidth = 0
		}
	}

	for _, tok := range tokens {
		tokWidth := lineWidth(tok, fontSize)
		if strings.TrimSpace(tok) == "" {
			// Whitespace token: keep it only if it doesn't push the line
			// over width; otherwise it is dropped at the wrap point.
			if curWidth+tokWidth <= maxWidth || cur.Len() == 0 {
				cur.WriteString(tok)
				curWidth += tokWidth
			} else {
				flush()
			}
			continue
		}

		if curWidth+tokWidth <= maxWidth {
			cur.WriteString(tok)
			curWidth += tokWidth
			continue
		}

		if cur.Len() > 0 {
			flush()
		}
		if tokWidth <= maxWidth {
			cur.WriteString(tok)
			curWidth = tokWidth
			continue
		}

		// The token alone exceeds maxWidth.
		switch mode {
		case SvgLike:
			for _, piece := range breakToken(tok, fontSize, maxWidth) {
				lines = append(lines, piece)
			}
		default: // HtmlLike
			lines = append(lines, tok)
		}
	}
	flush()

	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

// breakToken character-breaks an overlong token into maxWidth-fitting
// pieces, appending a trailing hyphen to all but the last piece when the
// preceding rune is alphanumeric and the hyphen still fits.
func breakToken(tok string, fontSize, maxWidth float64) []string {
	runes := []rune(tok)
	var pieces []string
	var cur []rune
	var curWidth float64

	flush := func(hyphen bool) {
		if len(cur) == 0 {
			return
		}
		s := string(cur)
		if hyphen {
			s += "-"
		}
		pieces = append(pieces, s)
		cur = nil
		curWidth = 0
	}

	for _, r := range runes {
		w := runeAdvance(r) * fontSize
		if curWidth+w > maxWidth && len(cur) > 0 {
			last := cur[len(cur)-1]
			alnum := unicode.IsLetter(last) || unicode.IsDigit(last)
			hyphenFits := curWidth+runeAdvance('-')*fontSize <= maxWidth
			flush(alnum && hyphenFits)
		}
		cur = append(cur, r)
		curWidth += w
	}
	flush(false)
	return pieces
}
