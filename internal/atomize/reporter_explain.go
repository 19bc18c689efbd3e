package atomize

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// ExplainReporter prints one table row per declaration
type ExplainReporter struct {
	w         io.Writer
	useColors bool
}

// NewExplainReporter creates an explain reporter
func NewExplainReporter(w io.Writer, useColors bool) *ExplainReporter {
	return &ExplainReporter{w: w, useColors: useColors}
}

// PrintExplanation renders the per-declaration table for a conversion
func (r *ExplainReporter) PrintExplanation(c Conversion, opts ...Option) {
	if c.Source != "" {
		fmt.Fprintln(r.w, RenderStyle(StyleCyan, c.Source, r.useColors))
	}

	rows := make([][]string, 0, len(c.Style))
	for _, e := range Explain(c.Style, c.Config, opts...) {
		class := e.Class
		if class == "" {
			class = "-"
		}
		mini := ""
		if e.InMini {
			mini = "✓"
		}
		rows = append(rows, []string{e.Declaration, string(e.Category), class, mini})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Declaration", "Category", "Class", "Mini").
		Rows(rows...)

	if r.useColors {
		t = t.StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return StyleCyan
			case col == 1:
				return StyleGray
			case col == 2:
				return StyleGreen
			}
			return lipgloss.NewStyle()
		})
	}

	fmt.Fprintln(r.w, t.Render())
	fmt.Fprintf(r.w, "%d declarations, %d skipped\n\n", len(c.Style), len(c.Result.Skipped))
}
