// Package palette holds the fixed set of card face colors and helpers for
// picking and shading them.
package palette

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Colors is the fixed palette card faces are drawn from. Every conjured
// card carries exactly one of these six values.
var Colors = []string{
	"#667eea", // periwinkle
	"#764ba2", // royal purple
	"#f093fb", // orchid
	"#4facfe", // sky blue
	"#43e97b", // spring green
	"#fa709a", // rose
}

// Random returns a palette color chosen uniformly at random.
func Random() string {
	return Colors[rand.Intn(len(Colors))]
}

// Contains reports whether c is one of the palette colors.
func Contains(c string) bool {
	for _, p := range Colors {
		if p == c {
			return true
		}
	}
	return false
}

// AdjustBrightness lightens (positive percent) or darkens (negative
// percent) a #rrggbb color. Each channel is moved by percent/100 of its
// own value, rounded to the nearest integer and clamped to [0, 255], so
// extreme percentages still yield a well-formed color. The only error is
// a hex string that cannot be parsed.
func AdjustBrightness(hex string, percent int) (string, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %v", hex, err)
	}

	r, g, b := c.RGB255()
	return fmt.Sprintf("#%02x%02x%02x",
		adjustChannel(r, percent),
		adjustChannel(g, percent),
		adjustChannel(b, percent)), nil
}

func adjustChannel(ch uint8, percent int) uint8 {
	v := math.Round(float64(ch) + float64(ch)*float64(percent)/100)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
