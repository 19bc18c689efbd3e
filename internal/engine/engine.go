// Package engine converts single CSS declarations into atomic utility classes.
//
// Two dialects are provided, UnoCSS and Tailwind CSS. Both cover the
// declaration subset a design tool's inspector emits (layout, flexbox,
// spacing, sizing, borders, colors, typography) and fall back to the
// arbitrary-property syntax [prop:value] for anything else.
package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Engine converts one "property: value" declaration into utility classes.
//
// The first element of the returned slice holds the space-separated classes
// for the declaration; any further elements are parts of the declaration the
// engine could not express. A nil or empty slice means no class was produced.
type Engine interface {
	Name() string
	Convert(declaration string, isRem bool) []string
}

// Func adapts a plain function to the Engine interface
type Func struct {
	EngineName string
	Fn         func(declaration string, isRem bool) []string
}

// Name returns the adapter name
func (f Func) Name() string { return f.EngineName }

// Convert calls the wrapped function
func (f Func) Convert(declaration string, isRem bool) []string {
	return f.Fn(declaration, isRem)
}

var registry = map[string]Engine{
	"unocss":   NewUnocss(),
	"tailwind": NewTailwind(),
}

// ByName returns the engine registered under name (case-insensitive)
func ByName(name string) (Engine, error) {
	e, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("engine %q not found (available: %s)", name, strings.Join(Names(), ", "))
	}
	return e, nil
}

// Names lists the registered engines in alphabetical order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// First returns the class string of an engine result, or "" when there is none
func First(classes []string) string {
	if len(classes) == 0 {
		return ""
	}
	return classes[0]
}
