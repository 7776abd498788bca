// internal/knowledge/normalize.go
package knowledge

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize prepares text for matching: decompose, strip only the Latin
// combining diacritic range so Indic matras survive, recompose, lowercase
// and collapse whitespace.
func Normalize(s string) string {
	decomposed := norm.NFD.String(s)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r >= 0x0300 && r <= 0x036F {
			continue
		}
		b.WriteRune(r)
	}

	out := norm.NFC.String(b.String())
	out = strings.ToLower(out)
	return collapseSpaces(out)
}

func collapseSpaces(s string) string {
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	return strings.Join(fields, " ")
}
