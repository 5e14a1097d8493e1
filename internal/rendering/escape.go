// Package rendering serializes resume data into Typst markup documents.
package rendering

import "strings"

// EscapeTypst escapes text destined for a quoted Typst string literal.
// Backslash, # $ @ < > are backslash-escaped. Backslash is handled first in
// an ordered replacement; the single pass below produces the same result
// because inserted escapes are never revisited. A double quote is escaped as
// well so user text cannot terminate the literal.
func EscapeTypst(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) + len(text)/4)

	for _, r := range text {
		switch r {
		case '\\', '#', '$', '@', '<', '>', '"':
			result.WriteByte('\\')
			result.WriteRune(r)
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
