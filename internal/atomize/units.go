package atomize

import (
	"regexp"
	"strconv"
)

// Spacing-scale fixups applied to the joined class string. The engines emit
// pixel-derived numbers; border widths are scaled up and padding scaled down
// to the 4px-per-unit convention.
var (
	borderWidthPattern = regexp.MustCompile(`border-(\d+\.\d+|\d+)`)
	borderSidePattern  = regexp.MustCompile(`(border-[xylrtb]-)(\d+\.\d+|\d+)`)
	paddingPxPattern   = regexp.MustCompile(`(p[xylrtb])-(\d+\.\d+|\d+)px`)
)

// RescaleUnits rewrites border-N, border-{side}-N and p{side}-Npx tokens.
func RescaleUnits(classes string) string {
	classes = borderWidthPattern.ReplaceAllStringFunc(classes, func(m string) string {
		sub := borderWidthPattern.FindStringSubmatch(m)
		return "border-" + scale(sub[1], 4)
	})
	classes = borderSidePattern.ReplaceAllStringFunc(classes, func(m string) string {
		sub := borderSidePattern.FindStringSubmatch(m)
		return sub[1] + scale(sub[2], 4)
	})
	classes = paddingPxPattern.ReplaceAllStringFunc(classes, func(m string) string {
		sub := paddingPxPattern.FindStringSubmatch(m)
		return sub[1] + "-" + scale(sub[2], 0.25)
	})
	return classes
}

// scale multiplies a decimal string and renders the shortest form
func scale(n string, factor float64) string {
	f, err := strconv.ParseFloat(n, 64)
	if err != nil {
		return n
	}
	return strconv.FormatFloat(f*factor, 'f', -1, 64)
}
