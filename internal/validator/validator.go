// Package validator checks free-text card input before it reaches the table.
package validator

import (
	"strings"
	"unicode/utf8"
)

// MaxLength is the longest accepted card title, in characters.
const MaxLength = 50

// IsValid reports whether input is usable as card text: non-blank after
// trimming surrounding whitespace, and no longer than MaxLength.
func IsValid(input string) bool {
	trimmed := strings.TrimSpace(input)
	n := utf8.RuneCountInString(trimmed)
	return n > 0 && n <= MaxLength
}
