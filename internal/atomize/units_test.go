package atomize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRescaleUnits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"border width", "border-1", "border-4"},
		{"border decimal", "border-0.5", "border-2"},
		{"border side", "border-l-2", "border-l-8"},
		{"border side decimal", "border-t-0.25", "border-t-1"},
		{"padding px", "pl-8px", "pl-2"},
		{"padding odd px", "px-6px", "px-1.5"},
		{"padding y", "py-16px", "py-4"},
		{"all padding untouched", "p-8px", "p-8px"},
		{"bracketed untouched", "border-[1px] pl-[8px]", "border-[1px] pl-[8px]"},
		{"border color untouched", "border-[#e7e5e4] border-solid", "border-[#e7e5e4] border-solid"},
		{"prefixed tokens", "u-border-1 u-pl-8px", "u-border-4 u-pl-2"},
		{"mixed string", "flex border-1 py-8px px-16px gap-8px", "flex border-4 py-2 px-4 gap-8px"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, RescaleUnits(tt.input))
		})
	}
}
