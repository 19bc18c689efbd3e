// Package atomize converts CSS declarations copied from a design tool's
// inspector into UnoCSS or Tailwind CSS utility classes.
//
// # Transforming
//
// Transform an ordered list of declarations:
//
//	style := atomize.StyleMap{
//		{Property: "display", Value: "flex"},
//		{Property: "gap", Value: "var(--spacing-xs, 8px)"},
//	}
//	result := atomize.Transform(style, atomize.DefaultConfig())
//	// result.Uno == "flex gap-8px"
//
// The result holds the normalized CSS block, the full class string and a
// reduced class string without typography classes.
//
// # Loading
//
// Declarations can be parsed from a CSS block or loaded from .css/.json files:
//
//	style, err := atomize.ParseDeclarations("display: flex; gap: 8px;")
//	style, err := atomize.LoadStyleMap("card.json")
//
// # CLI Tool
//
// atomize also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/atomize/cmd/atomize@latest
package atomize

import (
	"github.com/yacobolo/atomize/internal/atomize"
	"github.com/yacobolo/atomize/internal/engine"
)

// Core types
type (
	Declaration = atomize.Declaration
	StyleMap    = atomize.StyleMap
	Config      = atomize.Config
	Result      = atomize.Result
	Skipped     = atomize.Skipped
	Option      = atomize.Option

	// Engine converts one declaration; pass an implementation via WithEngine.
	Engine = engine.Engine
)

// Engine names accepted by Config.Engine
const (
	EngineUnocss   = atomize.EngineUnocss
	EngineTailwind = atomize.EngineTailwind
)

// Errors
var (
	ErrUnknownEngine    = atomize.ErrUnknownEngine
	ErrEmptyInput       = atomize.ErrEmptyInput
	ErrUnsupportedInput = atomize.ErrUnsupportedInput
)

// Options
var (
	WithLogger = atomize.WithLogger
	WithEngine = atomize.WithEngine
)

// DefaultConfig returns the defaults: unocss, px units, no prefix.
func DefaultConfig() Config {
	return atomize.DefaultConfig()
}

// Transform derives the CSS block and both class strings from style.
func Transform(style StyleMap, config Config, opts ...Option) Result {
	return atomize.Transform(style, config, opts...)
}

// ParseDeclarations reads a CSS declaration block or ruleset.
func ParseDeclarations(content string) (StyleMap, error) {
	return atomize.ParseDeclarations(content)
}

// LoadStyleMap reads a .css, .txt, .json or .jsonc declaration file.
func LoadStyleMap(path string) (StyleMap, error) {
	return atomize.LoadStyleMap(path)
}
