package atomize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yacobolo/atomize/internal/engine"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// toTailwind applies the Tailwind overrides in priority order; the first
// matching rule wins and everything else goes to the generic engine.
func toTailwind(e engine.Engine, declaration string, isRem bool) string {
	prop, value := splitToken(declaration)

	switch {
	case prop == "letter-spacing":
		return "tracking-[" + value + "]"
	case declaration == "font-style: normal":
		return ""
	case strings.Contains(declaration, "rgba"):
		return engine.First(e.Convert(RGBAToHex(declaration), isRem))
	case prop == "font-weight":
		if n, err := strconv.Atoi(value); err == nil {
			return "font-[" + strconv.Itoa(n) + "]"
		}
		return "font-" + value
	case prop == "font-family":
		return "font-" + familyName(value)
	case declaration == "flex: 1 0 0":
		return "flex-1"
	}

	return engine.First(e.Convert(declaration, isRem))
}

// toUnocss uses only the first element the engine returns
func toUnocss(e engine.Engine, declaration string, isRem bool) string {
	return engine.First(e.Convert(declaration, isRem))
}

// familyName turns '"SF Pro Display", sans-serif' into SF-Pro-Display
func familyName(value string) string {
	if i := strings.IndexByte(value, ','); i >= 0 {
		value = value[:i]
	}
	value = strings.Trim(strings.TrimSpace(value), `"'`)
	return whitespacePattern.ReplaceAllString(value, "-")
}

// splitToken splits "property: value" at the first colon
func splitToken(declaration string) (string, string) {
	prop, value, found := strings.Cut(declaration, ":")
	if !found {
		return strings.TrimSpace(declaration), ""
	}
	return strings.TrimSpace(prop), strings.TrimSpace(value)
}
