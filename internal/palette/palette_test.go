package palette

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomStaysInPalette(t *testing.T) {
	for i := 0; i < 500; i++ {
		c := Random()
		assert.True(t, Contains(c), "Random returned %q, not a palette color", c)
	}
}

func TestContains(t *testing.T) {
	for _, c := range Colors {
		assert.True(t, Contains(c))
	}
	assert.False(t, Contains("#123456"))
	assert.False(t, Contains(""))
}

func TestAdjustBrightness(t *testing.T) {
	tests := []struct {
		name    string
		color   string
		percent int
		want    string
	}{
		{"black stays black however far lightened", "#000000", 1000, "#000000"},
		{"white clamps to black when fully darkened", "#ffffff", -1000, "#000000"},
		{"white clamps to white when lightened", "#ffffff", 1000, "#ffffff"},
		{"zero percent is identity", "#808080", 0, "#808080"},
		{"minus hundred percent darkens to black", "#667eea", -100, "#000000"},
		{"doubling", "#404040", 100, "#808080"},
		{"half lighten keeps zero padding", "#0a0a0a", 50, "#0f0f0f"},
		{"rounds to nearest", "#010101", 50, "#020202"},
		{"mixed channels clamp independently", "#ff0180", 100, "#ff02ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AdjustBrightness(tt.color, tt.percent)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdjustBrightnessAlwaysWellFormed(t *testing.T) {
	hexColor := regexp.MustCompile(`^#[0-9a-f]{6}$`)

	for _, c := range Colors {
		for _, percent := range []int{-1000, -55, -35, 0, 25, 50, 1000} {
			got, err := AdjustBrightness(c, percent)
			require.NoError(t, err)
			assert.Regexp(t, hexColor, got)
		}
	}
}

func TestAdjustBrightnessRejectsMalformedInput(t *testing.T) {
	for _, bad := range []string{"", "nope", "#12345", "667eea", "#zzzzzz"} {
		_, err := AdjustBrightness(bad, 10)
		assert.Error(t, err, "expected error for %q", bad)
	}
}
