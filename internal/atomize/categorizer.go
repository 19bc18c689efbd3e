package atomize

import "strings"

// PropertyCategory groups related CSS properties
type PropertyCategory string

// Property categories shown by the explain output
const (
	CategoryLayout     PropertyCategory = "Layout"
	CategorySpacing    PropertyCategory = "Spacing"
	CategorySizing     PropertyCategory = "Sizing"
	CategoryVisual     PropertyCategory = "Visual"
	CategoryTypography PropertyCategory = "Typography"
	CategoryEffects    PropertyCategory = "Effects"
	CategoryVendor     PropertyCategory = "Vendor"
)

// propertyCategories maps exact property names; prefixes are handled in CategorizeProperty
var propertyCategories = map[string]PropertyCategory{
	"display":         CategoryLayout,
	"flex":            CategoryLayout,
	"order":           CategoryLayout,
	"position":        CategoryLayout,
	"top":             CategoryLayout,
	"right":           CategoryLayout,
	"bottom":          CategoryLayout,
	"left":            CategoryLayout,
	"inset":           CategoryLayout,
	"z-index":         CategoryLayout,
	"gap":             CategoryLayout,
	"row-gap":         CategoryLayout,
	"column-gap":      CategoryLayout,
	"justify-content": CategoryLayout,
	"align-items":     CategoryLayout,
	"align-self":      CategoryLayout,
	"align-content":   CategoryLayout,
	"overflow":        CategoryLayout,
	"box-sizing":      CategoryLayout,
	"visibility":      CategoryLayout,

	"width":        CategorySizing,
	"height":       CategorySizing,
	"min-width":    CategorySizing,
	"min-height":   CategorySizing,
	"max-width":    CategorySizing,
	"max-height":   CategorySizing,
	"aspect-ratio": CategorySizing,

	"color":      CategoryVisual,
	"background": CategoryVisual,
	"opacity":    CategoryVisual,
	"fill":       CategoryVisual,
	"stroke":     CategoryVisual,

	"line-height":    CategoryTypography,
	"letter-spacing": CategoryTypography,
	"white-space":    CategoryTypography,
	"word-break":     CategoryTypography,

	"box-shadow":      CategoryEffects,
	"filter":          CategoryEffects,
	"backdrop-filter": CategoryEffects,
	"mix-blend-mode":  CategoryEffects,
	"transform":       CategoryEffects,
}

// CategorizeProperty determines the category of a CSS property
func CategorizeProperty(name string) PropertyCategory {
	if cat, exists := propertyCategories[name]; exists {
		return cat
	}

	switch {
	case strings.HasPrefix(name, "-webkit-"),
		strings.HasPrefix(name, "-moz-"),
		strings.HasPrefix(name, "-ms-"):
		return CategoryVendor
	case strings.HasPrefix(name, "padding"), strings.HasPrefix(name, "margin"):
		return CategorySpacing
	case strings.HasPrefix(name, "font-"), strings.HasPrefix(name, "text-"):
		return CategoryTypography
	case strings.HasPrefix(name, "border"), strings.HasPrefix(name, "background-"), strings.HasPrefix(name, "outline"):
		return CategoryVisual
	case strings.HasPrefix(name, "flex-"), strings.HasPrefix(name, "grid"), strings.HasPrefix(name, "overflow-"):
		return CategoryLayout
	case strings.HasPrefix(name, "transition"), strings.HasPrefix(name, "animation"):
		return CategoryEffects
	}

	// Unknown properties are most often layout helpers
	return CategoryLayout
}
