package atomize

import (
	"fmt"
	"math"
	"regexp"

	"github.com/mazznoer/csscolorparser"
)

// rgbaPattern matches rgba() with integer channels and a decimal alpha
var rgbaPattern = regexp.MustCompile(`rgba\((\d+),\s*(\d+),\s*(\d+),\s*([\d.]+)\)`)

// RGBAToHex replaces the first rgba(r, g, b, a) in s with #rrggbbaa.
// Input without a parseable rgba() is returned unchanged. Zero channels
// and zero alpha are converted like any other value.
func RGBAToHex(s string) string {
	loc := rgbaPattern.FindStringIndex(s)
	if loc == nil {
		return s
	}

	c, err := csscolorparser.Parse(s[loc[0]:loc[1]])
	if err != nil {
		return s
	}

	return s[:loc[0]] + hexWithAlpha(c) + s[loc[1]:]
}

// hexWithAlpha always emits all four components, unlike Color.HexString
// which drops an opaque alpha.
func hexWithAlpha(c csscolorparser.Color) string {
	return fmt.Sprintf("#%02x%02x%02x%02x",
		to255(c.R), to255(c.G), to255(c.B), to255(c.A))
}

// to255 scales a 0..1 component, rounding half away from zero (127.5 -> 128)
func to255(v float64) uint8 {
	n := math.Round(v * 255)
	switch {
	case n < 0:
		return 0
	case n > 255:
		return 255
	}
	return uint8(n)
}
