package atomize

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseDeclarations reads a declaration block as copied from the inspector:
//
//	display: flex;
//	gap: var(--spacing-xs, 4px);
//
// The block may also be wrapped in one or more rulesets (".card { ... }"),
// in which case declarations of all rulesets are returned in source order.
// Custom property definitions (--name: value) are skipped.
func ParseDeclarations(content string) (StyleMap, error) {
	inline := !strings.Contains(content, "{")
	parser := css.NewParser(parse.NewInputString(content), inline)

	var style StyleMap
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err != io.EOF {
				return style, fmt.Errorf("parse declarations: %w", err)
			}
			return style, nil

		case css.DeclarationGrammar:
			value := declarationValue(parser.Values())
			if value == "" {
				continue
			}
			style = append(style, Declaration{
				Property: strings.ToLower(string(data)),
				Value:    value,
			})
		}
	}
}

// declarationValue joins value tokens back into source text, collapsing
// whitespace runs to a single space
func declarationValue(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			continue
		}
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}
