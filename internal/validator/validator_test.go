package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", false},
		{"only whitespace", "   ", false},
		{"tabs and newlines", "\t\n ", false},
		{"short text", "ok", true},
		{"exactly fifty characters", strings.Repeat("a", 50), true},
		{"fifty-one characters", strings.Repeat("a", 51), false},
		{"padding does not count", "  " + strings.Repeat("a", 50) + "  ", true},
		{"non-ascii counted in characters", strings.Repeat("✦", 50), true},
		{"fifty-one non-ascii characters", strings.Repeat("✦", 51), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.input))
		})
	}
}
