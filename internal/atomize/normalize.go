package atomize

import (
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// varFallbackPattern matches var(--name, fallback) and captures the fallback.
// var(--name) without a fallback is deliberately not matched.
var varFallbackPattern = regexp.MustCompile(`var\(--[^,]+,\s*([^)]+)\)`)

// maxVarDepth bounds resolution of nested fallbacks like var(--a, var(--b, 4px))
const maxVarDepth = 8

// StripComments removes every /* ... */ block from a value and trims the result.
// Comments inside quoted strings are kept since the lexer reports them as strings.
func StripComments(value string) string {
	if !strings.Contains(value, "/*") {
		return strings.TrimSpace(value)
	}

	var b strings.Builder
	lexer := css.NewLexer(parse.NewInputString(value))
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			break
		}
		if tt == css.CommentToken {
			continue
		}
		b.Write(text)
	}

	return strings.TrimSpace(b.String())
}

// ResolveVars replaces var(--name, fallback) with its trimmed fallback.
func ResolveVars(s string) string {
	for range maxVarDepth {
		next := varFallbackPattern.ReplaceAllStringFunc(s, func(match string) string {
			sub := varFallbackPattern.FindStringSubmatch(match)
			return strings.TrimSpace(sub[1])
		})
		if next == s {
			break
		}
		s = next
	}
	return s
}

// cssLine renders a declaration for the CSSCode block
func cssLine(d Declaration) string {
	return d.Property + ": " + StripComments(d.Value) + ";"
}

// NormalizeDeclaration produces the "property: value" token handed to an engine.
func NormalizeDeclaration(d Declaration) string {
	return ResolveVars(d.Property + ": " + StripComments(d.Value))
}
