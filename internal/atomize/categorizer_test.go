package atomize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategorizeProperty(t *testing.T) {
	tests := []struct {
		property string
		want     PropertyCategory
	}{
		{"display", CategoryLayout},
		{"gap", CategoryLayout},
		{"padding-left", CategorySpacing},
		{"margin", CategorySpacing},
		{"width", CategorySizing},
		{"border-radius", CategoryVisual},
		{"background-color", CategoryVisual},
		{"font-family", CategoryTypography},
		{"text-transform", CategoryTypography},
		{"box-shadow", CategoryEffects},
		{"transition-duration", CategoryEffects},
		{"-webkit-line-clamp", CategoryVendor},
		{"flex-direction", CategoryLayout},
		{"something-else", CategoryLayout},
	}

	for _, tt := range tests {
		t.Run(tt.property, func(t *testing.T) {
			require.Equal(t, tt.want, CategorizeProperty(tt.property))
		})
	}
}
