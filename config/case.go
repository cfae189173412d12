package config

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// placeholder matches the SVD dimension substitution markers.
var placeholder = regexp.MustCompile(`\[%s\]|%s`)

// ChangeCase renders name in the given identifier format. Dimension
// placeholders are kept as they are and the text around them is converted
// piecewise.
func ChangeCase(name string, f IdentifierFormat) string {
	if f == Original {
		return name
	}

	matches := placeholder.FindAllStringIndex(name, -1)
	if matches == nil {
		return convertCase(name, f)
	}

	var b strings.Builder
	last := 0
	for i, m := range matches {
		b.WriteString(convertPart(name[last:m[0]], f, i > 0))
		b.WriteString(name[m[0]:m[1]])
		last = m[1]
	}
	b.WriteString(convertPart(name[last:], f, true))
	return b.String()
}

// convertPart converts a piece of a name split at a placeholder. Pieces after
// the first continue a camel case identifier and so start upper case.
func convertPart(part string, f IdentifierFormat, inner bool) string {
	if inner && f == Camel {
		return convertCase(part, Pascal)
	}
	return convertCase(part, f)
}

func convertCase(s string, f IdentifierFormat) string {
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	switch f {
	case Upper:
		return upper.String(s)
	case Lower:
		return lower.String(s)
	}

	ws := words(s)
	if len(ws) == 0 {
		return s
	}

	switch f {
	case Snake, Constant:
		c := lower
		if f == Constant {
			c = upper
		}
		for i, w := range ws {
			ws[i] = c.String(w)
		}
		return strings.Join(ws, "_")
	case Camel, Pascal:
		// Upper case words are acronyms unless the whole name is written in
		// upper case, as in USART_CR1.
		acronyms := len(ws) == 1 || strings.IndexFunc(s, unicode.IsLower) >= 0

		var b strings.Builder
		for i, w := range ws {
			switch {
			case i == 0 && f == Camel:
				b.WriteString(lower.String(w))
			case acronyms && strings.IndexFunc(w, unicode.IsLower) < 0:
				b.WriteString(w)
			default:
				_, n := utf8.DecodeRuneInString(w)
				b.WriteString(upper.String(w[:n]))
				b.WriteString(lower.String(w[n:]))
			}
		}
		return b.String()
	}
	return s
}

// words splits an identifier at delimiters and at case transitions. Digits
// belong to the word they appear in, so I2C1 and DMA2D stay whole while
// tim2Cr1 splits before the C.
func words(s string) []string {
	var out []string
	rs := []rune(s)
	start := -1
	hasLower := false

	flush := func(end int) {
		if start >= 0 && end > start {
			out = append(out, string(rs[start:end]))
		}
		start = -1
		hasLower = false
	}

	for i, r := range rs {
		if isDelimiter(r) {
			flush(i)
			continue
		}

		if start >= 0 && unicode.IsUpper(r) {
			prev := rs[i-1]
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			switch {
			case unicode.IsLower(prev):
				flush(i)
			case unicode.IsDigit(prev) && (hasLower || nextLower):
				flush(i)
			case unicode.IsUpper(prev) && nextLower:
				flush(i)
			}
		}

		if start < 0 {
			start = i
		}
		if unicode.IsLower(r) {
			hasLower = true
		}
	}
	flush(len(rs))
	return out
}

func isDelimiter(r rune) bool {
	switch r {
	case '_', '-', '.', ' ':
		return true
	}
	return false
}
