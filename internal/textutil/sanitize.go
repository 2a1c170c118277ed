package textutil

import "strings"

// bidiControls are invisible runes that can reorder how a name is displayed.
var bidiControls = map[rune]struct{}{
	0x061C: {}, 0x200E: {}, 0x200F: {},
	0x202A: {}, 0x202B: {}, 0x202C: {}, 0x202D: {}, 0x202E: {},
	0x2066: {}, 0x2067: {}, 0x2068: {}, 0x2069: {},
}

// SanitizeTerminalText replaces control characters so names read from a
// config file cannot inject terminal escape sequences when rendered.
func SanitizeTerminalText(text string) string {
	for _, r := range text {
		if needsSanitizing(r) {
			return sanitize(text)
		}
	}
	return text
}

func needsSanitizing(r rune) bool {
	if _, ok := bidiControls[r]; ok {
		return true
	}
	return r < 0x20 || r == 0x7f
}

func sanitize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		case needsSanitizing(r):
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
