package engine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

var (
	numberPattern = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)$`)
	lengthPattern = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)(px|rem|em|%|vh|vw|pt|ch|ex|vmin|vmax|deg|s|ms)?$`)
	pxPattern     = regexp.MustCompile(`(-?(?:\d+\.?\d*|\.\d+))px\b`)
	commaSpace    = regexp.MustCompile(`\s*,\s*`)
)

// remBase is the root font size used for px to rem conversion
const remBase = 16

// splitDeclaration separates "prop: value" and drops a trailing ";" and "!important".
func splitDeclaration(declaration string) (prop, value string, ok bool) {
	i := strings.IndexByte(declaration, ':')
	if i <= 0 {
		return "", "", false
	}

	prop = strings.ToLower(strings.TrimSpace(declaration[:i]))
	value = strings.TrimSpace(declaration[i+1:])
	value = strings.TrimSpace(strings.TrimSuffix(value, ";"))
	value = strings.TrimSpace(strings.TrimSuffix(value, "!important"))

	if prop == "" || value == "" {
		return "", "", false
	}
	return prop, value, true
}

// splitValues splits on whitespace outside parentheses:
// "1px solid rgba(0, 0, 0, 0.1)" -> ["1px", "solid", "rgba(0, 0, 0, 0.1)"]
func splitValues(value string) []string {
	var parts []string
	var cur strings.Builder
	depth := 0

	flush := func() {
		if cur.Len() > 0 {
			parts = append(parts, cur.String())
			cur.Reset()
		}
	}

	for _, r := range value {
		switch {
		case r == '(':
			depth++
			cur.WriteRune(r)
		case r == ')':
			if depth > 0 {
				depth--
			}
			cur.WriteRune(r)
		case (r == ' ' || r == '\t' || r == '\n') && depth == 0:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()

	return parts
}

func isNumber(v string) bool { return numberPattern.MatchString(v) }

func isLength(v string) bool { return lengthPattern.MatchString(v) }

// isColor reports whether v is a CSS color literal
func isColor(v string) bool {
	switch strings.ToLower(v) {
	case "currentcolor", "inherit":
		return true
	case "none", "auto", "initial", "unset":
		return false
	}
	if isLength(v) {
		return false
	}
	_, err := csscolorparser.Parse(v)
	return err == nil
}

// formatNumber renders f in shortest form: 2, 0.5, -0.32
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// convertPx rewrites every px length in v as rem when isRem is set.
func convertPx(v string, isRem bool) string {
	if !isRem {
		return v
	}
	return pxPattern.ReplaceAllStringFunc(v, func(m string) string {
		n, err := strconv.ParseFloat(strings.TrimSuffix(m, "px"), 64)
		if err != nil {
			return m
		}
		return formatNumber(n/remBase) + "rem"
	})
}

// arbitrary renders a value for bracket syntax: spaces become underscores
// and whitespace around commas is removed.
func arbitrary(v string) string {
	v = commaSpace.ReplaceAllString(strings.TrimSpace(v), ",")
	return strings.Join(strings.Fields(v), "_")
}

// arbitraryProperty is the catch-all [prop:value] class
func arbitraryProperty(prop, v string) string {
	return "[" + prop + ":" + arbitrary(v) + "]"
}

// unquote strips matching single or double quotes
func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

// firstFamily returns the first entry of a font-family list without quotes
func firstFamily(v string) string {
	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}
	return unquote(strings.TrimSpace(v))
}

// pxNumber returns the bare number of a px or unitless length
func pxNumber(v string) (string, bool) {
	n := strings.TrimSuffix(v, "px")
	if !isNumber(n) {
		return "", false
	}
	return n, true
}

// boxSides expands a 1-4 value shorthand into top, right, bottom, left
func boxSides(parts []string) (t, r, b, l string, ok bool) {
	switch len(parts) {
	case 1:
		return parts[0], parts[0], parts[0], parts[0], true
	case 2:
		return parts[0], parts[1], parts[0], parts[1], true
	case 3:
		return parts[0], parts[1], parts[2], parts[1], true
	case 4:
		return parts[0], parts[1], parts[2], parts[3], true
	}
	return "", "", "", "", false
}

func joinClasses(classes ...string) string {
	out := classes[:0:0]
	for _, c := range classes {
		if c != "" {
			out = append(out, c)
		}
	}
	return strings.Join(out, " ")
}
