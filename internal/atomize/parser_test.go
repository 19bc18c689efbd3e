package atomize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDeclarations(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    StyleMap
	}{
		{
			name:    "inline block",
			content: "display: flex;\ngap: var(--spacing-xs, 4px);\n",
			want: StyleMap{
				{Property: "display", Value: "flex"},
				{Property: "gap", Value: "var(--spacing-xs, 4px)"},
			},
		},
		{
			name:    "missing final semicolon",
			content: "display: flex; padding: 8px  16px",
			want: StyleMap{
				{Property: "display", Value: "flex"},
				{Property: "padding", Value: "8px 16px"},
			},
		},
		{
			name:    "ruleset",
			content: ".card {\n  display: flex;\n  border: 1px solid #e7e5e4;\n}\n",
			want: StyleMap{
				{Property: "display", Value: "flex"},
				{Property: "border", Value: "1px solid #e7e5e4"},
			},
		},
		{
			name:    "property lowercased",
			content: "Display: block;",
			want:    StyleMap{{Property: "display", Value: "block"}},
		},
		{
			name:    "custom properties skipped",
			content: "--spacing: 4px;\ngap: 4px;",
			want:    StyleMap{{Property: "gap", Value: "4px"}},
		},
		{
			name:    "empty",
			content: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDeclarations(tt.content)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
