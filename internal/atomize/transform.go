// Package atomize converts CSS declarations copied from a design tool into
// UnoCSS or Tailwind CSS utility classes.
package atomize

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/yacobolo/atomize/internal/engine"
)

// Engine results that never become a class
var (
	noClass         = map[string]bool{"": true, "undefined": true}
	filteredClasses = map[string]bool{"-webkit-box": true, "self-stretch": true}
)

// miniExcludedProperties are dropped before conversion in the mini output
var miniExcludedProperties = []string{"font-feature-settings", "font-family", "text-transform"}

// miniExcludedClasses are dropped after conversion in the mini output
var miniExcludedClasses = []string{"lh-normal", "font-not-italic", "bg-[url("}

// Option customizes a Transform call
type Option func(*transformer)

// WithLogger traces every declaration at debug level
func WithLogger(logger *zap.Logger) Option {
	return func(t *transformer) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithEngine replaces the engine resolved from Config.Engine. The dispatch
// rules still follow Config.Engine.
func WithEngine(e engine.Engine) Option {
	return func(t *transformer) {
		if e != nil {
			t.engine = e
		}
	}
}

type transformer struct {
	config Config
	engine engine.Engine
	logger *zap.Logger
}

func newTransformer(config Config, opts []Option) *transformer {
	t := &transformer{config: config, logger: zap.NewNop()}

	name := EngineUnocss
	if config.isTailwind() {
		name = EngineTailwind
	}
	t.engine, _ = engine.ByName(name)

	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transform derives the CSS block and both class strings from style.
// It reads only its arguments and is safe for concurrent use.
func Transform(style StyleMap, config Config, opts ...Option) Result {
	t := newTransformer(config, opts)

	uno, skipped := t.classes(style, false)
	mini, _ := t.classes(style, true)

	return Result{
		CSSCode: CSSCode(style),
		Uno:     uno,
		UnoMini: mini,
		Skipped: skipped,
	}
}

// CSSCode renders one "property: value;" line per declaration
func CSSCode(style StyleMap) string {
	lines := make([]string, len(style))
	for i, d := range style {
		lines[i] = cssLine(d)
	}
	return strings.Join(lines, "\n")
}

// classes builds the joined class string. In mini mode typography-only
// properties and classes are dropped.
func (t *transformer) classes(style StyleMap, mini bool) (string, []Skipped) {
	tokens := make([]string, 0, len(style))
	var skipped []Skipped

	for _, d := range style {
		if mini && hasAnyPrefix(d.Property, miniExcludedProperties) {
			continue
		}

		declaration := NormalizeDeclaration(d)
		class := t.convert(declaration)

		if !mini {
			t.logger.Debug("converted declaration",
				zap.String("engine", t.engine.Name()),
				zap.String("declaration", declaration),
				zap.String("class", class))
		}

		switch {
		case noClass[class]:
			skipped = append(skipped, Skipped{Declaration: declaration, Reason: ReasonNoMatch})
			continue
		case filteredClasses[class]:
			skipped = append(skipped, Skipped{Declaration: declaration, Reason: fmt.Sprintf(ReasonFiltered, class)})
			continue
		}

		if mini && hasAnyPrefix(class, miniExcludedClasses) {
			continue
		}

		tokens = append(tokens, prefixClasses(t.config.Prefix, class))
	}

	return RescaleUnits(strings.Join(tokens, " ")), skipped
}

func (t *transformer) convert(declaration string) string {
	if t.config.isTailwind() {
		return toTailwind(t.engine, declaration, t.config.IsRem)
	}
	return toUnocss(t.engine, declaration, t.config.IsRem)
}

// prefixClasses prefixes every class of a multi-class engine result
func prefixClasses(prefix, class string) string {
	if prefix == "" {
		return class
	}
	fields := strings.Fields(class)
	for i, f := range fields {
		fields[i] = prefix + f
	}
	return strings.Join(fields, " ")
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// Explanation describes how one declaration was converted
type Explanation struct {
	Property    string           `json:"property" yaml:"property"`
	Declaration string           `json:"declaration" yaml:"declaration"`
	Class       string           `json:"class" yaml:"class"`
	Category    PropertyCategory `json:"category" yaml:"category"`
	InMini      bool             `json:"inMini" yaml:"inMini"`
}

// Explain converts declarations one at a time. Class is empty for
// declarations that produce no class or whose class is filtered.
func Explain(style StyleMap, config Config, opts ...Option) []Explanation {
	t := newTransformer(config, opts)

	out := make([]Explanation, 0, len(style))
	for _, d := range style {
		declaration := NormalizeDeclaration(d)
		class := t.convert(declaration)
		if noClass[class] || filteredClasses[class] {
			class = ""
		}

		e := Explanation{
			Property:    d.Property,
			Declaration: declaration,
			Category:    CategorizeProperty(d.Property),
		}
		if class != "" {
			e.Class = RescaleUnits(prefixClasses(t.config.Prefix, class))
			e.InMini = !hasAnyPrefix(d.Property, miniExcludedProperties) &&
				!hasAnyPrefix(class, miniExcludedClasses)
		}
		out = append(out, e)
	}
	return out
}
