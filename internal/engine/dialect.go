package engine

import (
	"math"
	"strconv"
	"strings"
)

// dialect captures the spelling differences between the two engines.
// The rule table in rules.go is shared.
type dialect struct {
	name       string
	length     func(prefix, v string) string
	border     func(prefix, v string) string
	lineHeight string // "lh" or "leading"
	italic     string
	notItalic  string
	grow       string
	shrink     string
	opacity    string
}

// rule converts the value of one property into classes. An empty result
// lets Convert fall back to arbitrary-property syntax.
type rule func(c *converter, value string) string

// converter binds a dialect to the unit mode of a single call
type converter struct {
	*dialect
	isRem bool
}

// ruleEngine is the Engine implementation shared by both dialects
type ruleEngine struct {
	d     *dialect
	rules map[string]rule
}

// NewUnocss returns the UnoCSS engine. Spacing keeps px units (pl-8px),
// border widths are bare numbers (border-1).
func NewUnocss() Engine {
	return &ruleEngine{d: unocssDialect, rules: rules}
}

// NewTailwind returns the Tailwind CSS engine. Lengths use bracketed
// arbitrary values (gap-[8px], rounded-[12px]).
func NewTailwind() Engine {
	return &ruleEngine{d: tailwindDialect, rules: rules}
}

func (e *ruleEngine) Name() string { return e.d.name }

// Convert implements Engine
func (e *ruleEngine) Convert(declaration string, isRem bool) []string {
	prop, value, ok := splitDeclaration(declaration)
	if !ok {
		return nil
	}

	c := &converter{dialect: e.d, isRem: isRem}

	if r, exists := e.rules[prop]; exists {
		if cls := r(c, value); cls != "" {
			return []string{cls}
		}
	}

	// Vendor-prefixed properties without a rule are left untransformed
	if strings.HasPrefix(prop, "-") && !strings.HasPrefix(prop, "-webkit-") {
		return []string{"", declaration}
	}

	return []string{arbitraryProperty(prop, value)}
}

var unocssDialect = &dialect{
	name: "unocss",
	length: func(prefix, v string) string {
		switch {
		case v == "auto":
			return prefix + "-auto"
		case isLength(v) && strings.HasPrefix(v, "-"):
			return "-" + prefix + "-" + v[1:]
		case isLength(v):
			return prefix + "-" + v
		}
		return prefix + "-[" + arbitrary(v) + "]"
	},
	border: func(prefix, v string) string {
		if n, ok := pxNumber(v); ok {
			return prefix + "-" + n
		}
		return prefix + "-[" + arbitrary(v) + "]"
	},
	lineHeight: "lh",
	italic:     "font-italic",
	notItalic:  "font-not-italic",
	grow:       "flex-grow",
	shrink:     "flex-shrink",
	opacity:    "op",
}

var tailwindDialect = &dialect{
	name: "tailwind",
	length: func(prefix, v string) string {
		switch {
		case v == "auto":
			return prefix + "-auto"
		case v == "0" || v == "0px":
			return prefix + "-0"
		}
		return prefix + "-[" + arbitrary(v) + "]"
	},
	border: func(prefix, v string) string {
		if v == "0" || v == "0px" {
			return prefix + "-0"
		}
		return prefix + "-[" + arbitrary(v) + "]"
	},
	lineHeight: "leading",
	italic:     "italic",
	notItalic:  "not-italic",
	grow:       "grow",
	shrink:     "shrink",
	opacity:    "opacity",
}

// measure formats a length after optional rem conversion
func (c *converter) measure(prefix, v string) string {
	return c.length(prefix, convertPx(v, c.isRem))
}

// color formats a color class: named colors stay bare, everything else is bracketed
func (c *converter) color(prefix, v string) string {
	if isKeyword(v) {
		return prefix + "-" + strings.ToLower(v)
	}
	return prefix + "-[" + arbitrary(v) + "]"
}

// box expands padding/margin/inset style shorthands
func (c *converter) box(base, v string) string {
	t, r, b, l, ok := boxSides(splitValues(v))
	if !ok {
		return ""
	}

	switch {
	case t == r && r == b && b == l:
		return c.measure(strings.TrimSuffix(base, "-"), t)
	case t == b && r == l:
		return joinClasses(c.measure(base+"y", t), c.measure(base+"x", r))
	}
	return joinClasses(c.measure(base+"t", t), c.measure(base+"r", r), c.measure(base+"b", b), c.measure(base+"l", l))
}

// percent renders a 0..1 opacity as 0..100
func (c *converter) percent(prefix, v string) string {
	f, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
	if err != nil {
		return ""
	}
	if !strings.HasSuffix(v, "%") {
		f *= 100
	}
	return prefix + "-" + formatNumber(math.Round(f*100)/100)
}

// isKeyword reports a plain identifier such as "white" or "transparent"
func isKeyword(v string) bool {
	if v == "" {
		return false
	}
	for _, r := range v {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && r != '-' {
			return false
		}
	}
	return true
}
