package engine

import (
	"strings"
)

// keywords maps a property value directly to a class
func keywords(table map[string]string) rule {
	return func(_ *converter, v string) string {
		return table[strings.ToLower(v)]
	}
}

// prefixed emits prefix-value for any keyword value
func prefixed(prefix string) rule {
	return func(_ *converter, v string) string {
		if !isKeyword(v) {
			return ""
		}
		return prefix + "-" + strings.ToLower(v)
	}
}

func spacing(prefix string) rule {
	return func(c *converter, v string) string {
		return c.measure(prefix, v)
	}
}

func sizing(prefix string) rule {
	return func(c *converter, v string) string {
		switch v {
		case "100%":
			return prefix + "-full"
		case "fit-content":
			return prefix + "-fit"
		case "max-content":
			return prefix + "-max"
		case "min-content":
			return prefix + "-min"
		}
		return c.measure(prefix, v)
	}
}

func colorRule(prefix string) rule {
	return func(c *converter, v string) string {
		if !isColor(v) && !strings.Contains(v, "(") {
			return ""
		}
		return c.color(prefix, v)
	}
}

var borderStyles = map[string]bool{
	"solid": true, "dashed": true, "dotted": true, "double": true, "hidden": true, "none": true,
}

// borderShorthand handles "1px solid #e7e5e4" for border and its sides
func borderShorthand(prefix string) rule {
	return func(c *converter, v string) string {
		if v == "none" || v == "0" {
			return c.border(prefix, "0")
		}

		var classes []string
		for _, part := range splitValues(v) {
			switch {
			case isLength(part):
				classes = append(classes, c.border(prefix, part))
			case borderStyles[part]:
				classes = append(classes, "border-"+part)
			case isColor(part) || strings.HasPrefix(part, "var("):
				classes = append(classes, c.color(prefix, part))
			default:
				return ""
			}
		}
		return joinClasses(classes...)
	}
}

// borderWidths expands a 1-4 value border-width
func borderWidths(c *converter, v string) string {
	t, r, b, l, ok := boxSides(splitValues(v))
	if !ok {
		return ""
	}
	if t == r && r == b && b == l {
		return c.border("border", t)
	}
	if t == b && r == l {
		return joinClasses(c.border("border-y", t), c.border("border-x", r))
	}
	return joinClasses(c.border("border-t", t), c.border("border-r", r), c.border("border-b", b), c.border("border-l", l))
}

func borderRadius(c *converter, v string) string {
	parts := splitValues(v)
	if len(parts) == 1 {
		if v == "50%" || v == "9999px" {
			return "rounded-full"
		}
		return c.measure("rounded", v)
	}
	t, r, b, l, ok := boxSides(parts)
	if !ok {
		return ""
	}
	// corner order: top-left, top-right, bottom-right, bottom-left
	return joinClasses(c.measure("rounded-tl", t), c.measure("rounded-tr", r), c.measure("rounded-br", b), c.measure("rounded-bl", l))
}

func background(c *converter, v string) string {
	switch {
	case strings.Contains(v, "url("), strings.Contains(v, "gradient("):
		return "bg-[" + arbitrary(v) + "]"
	case isColor(v) || strings.HasPrefix(v, "var("):
		return c.color("bg", v)
	}
	return ""
}

func gap(c *converter, v string) string {
	parts := splitValues(v)
	switch len(parts) {
	case 1:
		return c.measure("gap", v)
	case 2:
		if parts[0] == parts[1] {
			return c.measure("gap", parts[0])
		}
		return joinClasses(c.measure("gap-y", parts[0]), c.measure("gap-x", parts[1]))
	}
	return ""
}

func flex(_ *converter, v string) string {
	switch v {
	case "1", "1 1 0", "1 1 0%", "1 1 0px":
		return "flex-1"
	case "none", "0 0 auto":
		return "flex-none"
	case "auto", "1 1 auto":
		return "flex-auto"
	case "initial", "0 1 auto":
		return "flex-initial"
	}
	return "flex-[" + arbitrary(v) + "]"
}

func flexFactor(kind string) rule {
	return func(c *converter, v string) string {
		base := c.grow
		if kind == "shrink" {
			base = c.shrink
		}
		switch v {
		case "1":
			return base
		case "0":
			return base + "-0"
		}
		return base + "-[" + v + "]"
	}
}

func fontSize(c *converter, v string) string {
	return c.measure("text", v)
}

func fontWeight(c *converter, v string) string {
	if isNumber(v) {
		if c.name == "tailwind" {
			return "font-[" + v + "]"
		}
		return "font-" + v
	}
	return prefixed("font")(c, v)
}

func fontFamily(_ *converter, v string) string {
	family := firstFamily(v)
	if family == "" {
		return ""
	}
	return "font-[" + arbitrary(family) + "]"
}

func fontStyle(c *converter, v string) string {
	switch strings.ToLower(v) {
	case "italic", "oblique":
		return c.italic
	case "normal":
		return c.notItalic
	}
	return ""
}

func lineHeight(c *converter, v string) string {
	if v == "normal" || v == "none" {
		return c.lineHeight + "-" + v
	}
	if isNumber(v) {
		if c.name == "tailwind" {
			return c.lineHeight + "-[" + v + "]"
		}
		return c.lineHeight + "-" + v
	}
	return c.measure(c.lineHeight, v)
}

func letterSpacing(c *converter, v string) string {
	if v == "normal" {
		return "tracking-normal"
	}
	return "tracking-[" + arbitrary(convertPx(v, c.isRem)) + "]"
}

func opacity(c *converter, v string) string {
	return c.percent(c.opacity, v)
}

func zIndex(_ *converter, v string) string {
	if strings.HasPrefix(v, "-") && isNumber(v) {
		return "-z-" + v[1:]
	}
	if isNumber(v) || v == "auto" {
		return "z-" + v
	}
	return ""
}

func boxShadow(c *converter, v string) string {
	if v == "none" {
		return "shadow-none"
	}
	return "shadow-[" + arbitrary(convertPx(v, c.isRem)) + "]"
}

// filterFunc handles blur(4px) style values for filter and backdrop-filter
func filterFunc(prefix string) rule {
	return func(c *converter, v string) string {
		if v == "none" {
			return prefix + "-none"
		}
		if strings.HasPrefix(v, "blur(") && strings.HasSuffix(v, ")") {
			inner := strings.TrimSuffix(strings.TrimPrefix(v, "blur("), ")")
			blur := "blur"
			if prefix != "filter" {
				blur = prefix + "-blur"
			}
			return blur + "-[" + arbitrary(convertPx(inner, c.isRem)) + "]"
		}
		return ""
	}
}

func lineClamp(_ *converter, v string) string {
	if !isNumber(v) {
		return ""
	}
	return "line-clamp-" + v
}

func order(_ *converter, v string) string {
	if !isNumber(v) {
		return ""
	}
	return "order-" + v
}

func aspectRatio(_ *converter, v string) string {
	switch v {
	case "1", "1 / 1":
		return "aspect-square"
	case "auto":
		return "aspect-auto"
	}
	return "aspect-[" + strings.ReplaceAll(v, " ", "") + "]"
}

var (
	displayValues = map[string]string{
		"flex": "flex", "inline-flex": "inline-flex", "block": "block", "inline-block": "inline-block",
		"inline": "inline", "grid": "grid", "inline-grid": "inline-grid", "none": "hidden",
		"contents": "contents", "table": "table", "-webkit-box": "-webkit-box",
	}
	flexDirectionValues = map[string]string{
		"row": "flex-row", "column": "flex-col", "row-reverse": "flex-row-reverse", "column-reverse": "flex-col-reverse",
	}
	flexWrapValues = map[string]string{
		"wrap": "flex-wrap", "nowrap": "flex-nowrap", "wrap-reverse": "flex-wrap-reverse",
	}
	alignItemsValues = map[string]string{
		"flex-start": "items-start", "start": "items-start", "flex-end": "items-end", "end": "items-end",
		"center": "items-center", "baseline": "items-baseline", "stretch": "items-stretch",
	}
	alignSelfValues = map[string]string{
		"auto": "self-auto", "flex-start": "self-start", "start": "self-start", "flex-end": "self-end",
		"end": "self-end", "center": "self-center", "stretch": "self-stretch", "baseline": "self-baseline",
	}
	alignContentValues = map[string]string{
		"flex-start": "content-start", "flex-end": "content-end", "center": "content-center",
		"space-between": "content-between", "space-around": "content-around", "space-evenly": "content-evenly",
		"stretch": "content-stretch",
	}
	justifyContentValues = map[string]string{
		"flex-start": "justify-start", "start": "justify-start", "flex-end": "justify-end", "end": "justify-end",
		"center": "justify-center", "space-between": "justify-between", "space-around": "justify-around",
		"space-evenly": "justify-evenly", "stretch": "justify-stretch",
	}
	textAlignValues = map[string]string{
		"left": "text-left", "center": "text-center", "right": "text-right", "justify": "text-justify",
		"start": "text-start", "end": "text-end",
	}
	textTransformValues = map[string]string{
		"uppercase": "uppercase", "lowercase": "lowercase", "capitalize": "capitalize", "none": "normal-case",
	}
	textDecorationValues = map[string]string{
		"underline": "underline", "line-through": "line-through", "overline": "overline", "none": "no-underline",
	}
	whiteSpaceValues = map[string]string{
		"normal": "whitespace-normal", "nowrap": "whitespace-nowrap", "pre": "whitespace-pre",
		"pre-line": "whitespace-pre-line", "pre-wrap": "whitespace-pre-wrap", "break-spaces": "whitespace-break-spaces",
	}
	textOverflowValues = map[string]string{
		"ellipsis": "text-ellipsis", "clip": "text-clip",
	}
	positionValues = map[string]string{
		"static": "static", "relative": "relative", "absolute": "absolute", "fixed": "fixed", "sticky": "sticky",
	}
	boxSizingValues = map[string]string{
		"border-box": "box-border", "content-box": "box-content",
	}
	visibilityValues = map[string]string{
		"visible": "visible", "hidden": "invisible", "collapse": "collapse",
	}
	wordBreakValues = map[string]string{
		"break-all": "break-all", "keep-all": "break-keep", "break-word": "break-words",
	}
)

// rules is the property table shared by both dialects
var rules = map[string]rule{
	// Layout
	"display":         keywords(displayValues),
	"flex":            flex,
	"flex-direction":  keywords(flexDirectionValues),
	"flex-wrap":       keywords(flexWrapValues),
	"flex-grow":       flexFactor("grow"),
	"flex-shrink":     flexFactor("shrink"),
	"flex-basis":      spacing("basis"),
	"align-items":     keywords(alignItemsValues),
	"align-self":      keywords(alignSelfValues),
	"align-content":   keywords(alignContentValues),
	"justify-content": keywords(justifyContentValues),
	"gap":             gap,
	"row-gap":         spacing("gap-y"),
	"column-gap":      spacing("gap-x"),
	"order":           order,
	"position":        keywords(positionValues),
	"top":             spacing("top"),
	"right":           spacing("right"),
	"bottom":          spacing("bottom"),
	"left":            spacing("left"),
	"inset":           func(c *converter, v string) string { return c.box("inset-", v) },
	"z-index":         zIndex,
	"overflow":        prefixed("overflow"),
	"overflow-x":      prefixed("overflow-x"),
	"overflow-y":      prefixed("overflow-y"),
	"box-sizing":      keywords(boxSizingValues),
	"visibility":      keywords(visibilityValues),
	"aspect-ratio":    aspectRatio,
	"object-fit":      prefixed("object"),
	"cursor":          prefixed("cursor"),

	// Sizing
	"width":      sizing("w"),
	"height":     sizing("h"),
	"min-width":  sizing("min-w"),
	"min-height": sizing("min-h"),
	"max-width":  sizing("max-w"),
	"max-height": sizing("max-h"),

	// Spacing
	"padding":        func(c *converter, v string) string { return c.box("p", v) },
	"padding-top":    spacing("pt"),
	"padding-right":  spacing("pr"),
	"padding-bottom": spacing("pb"),
	"padding-left":   spacing("pl"),
	"margin":         func(c *converter, v string) string { return c.box("m", v) },
	"margin-top":     spacing("mt"),
	"margin-right":   spacing("mr"),
	"margin-bottom":  spacing("mb"),
	"margin-left":    spacing("ml"),

	// Visual
	"background":                 background,
	"background-color":           colorRule("bg"),
	"background-image":           background,
	"color":                      colorRule("text"),
	"border":                     borderShorthand("border"),
	"border-top":                 borderShorthand("border-t"),
	"border-right":               borderShorthand("border-r"),
	"border-bottom":              borderShorthand("border-b"),
	"border-left":                borderShorthand("border-l"),
	"border-width":               borderWidths,
	"border-top-width":           func(c *converter, v string) string { return c.border("border-t", v) },
	"border-right-width":         func(c *converter, v string) string { return c.border("border-r", v) },
	"border-bottom-width":        func(c *converter, v string) string { return c.border("border-b", v) },
	"border-left-width":          func(c *converter, v string) string { return c.border("border-l", v) },
	"border-style":               prefixed("border"),
	"border-color":               colorRule("border"),
	"border-radius":              borderRadius,
	"border-top-left-radius":     spacing("rounded-tl"),
	"border-top-right-radius":    spacing("rounded-tr"),
	"border-bottom-right-radius": spacing("rounded-br"),
	"border-bottom-left-radius":  spacing("rounded-bl"),
	"opacity":                    opacity,
	"box-shadow":                 boxShadow,
	"mix-blend-mode":             prefixed("mix-blend"),
	"filter":                     filterFunc("filter"),
	"backdrop-filter":            filterFunc("backdrop"),

	// Typography
	"font-size":            fontSize,
	"font-weight":          fontWeight,
	"font-family":          fontFamily,
	"font-style":           fontStyle,
	"line-height":          lineHeight,
	"letter-spacing":       letterSpacing,
	"text-align":           keywords(textAlignValues),
	"text-transform":       keywords(textTransformValues),
	"text-decoration":      keywords(textDecorationValues),
	"text-decoration-line": keywords(textDecorationValues),
	"white-space":          keywords(whiteSpaceValues),
	"text-overflow":        keywords(textOverflowValues),
	"word-break":           keywords(wordBreakValues),
	"-webkit-line-clamp":   lineClamp,
}
