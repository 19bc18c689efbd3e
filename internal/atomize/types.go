package atomize

import (
	"errors"
	"fmt"
	"strings"
)

// Engine names accepted by Config.Engine
const (
	EngineUnocss   = "unocss"
	EngineTailwind = "tailwind"
)

var (
	// ErrUnknownEngine is returned by Config.Validate for unsupported engine names.
	ErrUnknownEngine = errors.New("unknown engine")
	// ErrEmptyInput is returned when an input yields no declarations.
	ErrEmptyInput = errors.New("no declarations found")
	// ErrUnsupportedInput is returned for input files with an unknown extension.
	ErrUnsupportedInput = errors.New("unsupported input format")
)

// Declaration is a single CSS property/value pair as emitted by the inspector
type Declaration struct {
	Property string `json:"property" yaml:"property"`
	Value    string `json:"value" yaml:"value"`
}

// StyleMap is an ordered list of declarations. Order determines both the
// order of lines in CSSCode and the order of class tokens.
type StyleMap []Declaration

// Get returns the value of the first declaration with the given property.
func (m StyleMap) Get(property string) (string, bool) {
	for _, d := range m {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// Properties returns property names in input order
func (m StyleMap) Properties() []string {
	names := make([]string, len(m))
	for i, d := range m {
		names[i] = d.Property
	}
	return names
}

// Config holds transformation settings
type Config struct {
	Engine string // "unocss" (default) or "tailwind"
	IsRem  bool   // Convert px lengths to rem
	Prefix string // Prepended to every emitted class
}

// DefaultConfig returns the defaults: unocss, px units, no prefix.
func DefaultConfig() Config {
	return Config{Engine: EngineUnocss}
}

// Validate checks the engine name. An empty engine is accepted and means unocss.
func (c Config) Validate() error {
	switch strings.ToLower(c.Engine) {
	case "", EngineUnocss, EngineTailwind:
		return nil
	}
	return fmt.Errorf("%w %q (expected %s or %s)", ErrUnknownEngine, c.Engine, EngineUnocss, EngineTailwind)
}

func (c Config) isTailwind() bool {
	return strings.EqualFold(c.Engine, EngineTailwind)
}

// Result contains the three derived outputs of a transformation
type Result struct {
	CSSCode string    `json:"cssCode" yaml:"cssCode"`
	Uno     string    `json:"uno" yaml:"uno"`
	UnoMini string    `json:"unoMini" yaml:"unoMini"`
	Skipped []Skipped `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// Skipped records a declaration that contributed no class to Uno
type Skipped struct {
	Declaration string `json:"declaration" yaml:"declaration"`
	Reason      string `json:"reason" yaml:"reason"`
}

// Skip reasons
const (
	ReasonNoMatch  = "no class produced"
	ReasonFiltered = "class %q filtered"
)

// OutputFormat represents how a Result is written
type OutputFormat string

const (
	// OutputText prints all three outputs in labelled sections
	OutputText OutputFormat = "text"
	// OutputExplain prints one row per declaration with its category and class
	OutputExplain OutputFormat = "explain"
	// OutputJSON exports the Result as JSON
	OutputJSON OutputFormat = "json"
	// OutputYAML exports the Result as YAML
	OutputYAML OutputFormat = "yaml"
	// OutputCSS prints only the normalized CSS
	OutputCSS OutputFormat = "css"
	// OutputUno prints only the full class string
	OutputUno OutputFormat = "uno"
	// OutputMini prints only the reduced class string
	OutputMini OutputFormat = "mini"
)

// Conversion bundles one converted input for output
type Conversion struct {
	Source string
	Style  StyleMap
	Config Config
	Result Result
}

// Convert transforms style and records where it came from
func Convert(source string, style StyleMap, config Config, opts ...Option) Conversion {
	return Conversion{
		Source: source,
		Style:  style,
		Config: config,
		Result: Transform(style, config, opts...),
	}
}
