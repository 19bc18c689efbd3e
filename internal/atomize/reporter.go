package atomize

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Reporter prints conversions as labelled text sections
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a text reporter
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{w: w, useColors: useColors}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintConversion writes the CSS block and both class strings
func (r *Reporter) PrintConversion(c Conversion) {
	if c.Source != "" {
		fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleCyan, c.Source, r.useColors),
			RenderStyle(StyleGray, "("+engineLabel(c.Config)+")", r.useColors))
	}

	r.printSection("CSS", c.Result.CSSCode)
	r.printSection("Uno", RenderStyle(StyleGreen, c.Result.Uno, r.useColors))
	r.printSection("Uno mini", RenderStyle(StyleGreen, c.Result.UnoMini, r.useColors))
	r.PrintSkipped(c.Result.Skipped)
}

// PrintSkipped lists declarations that produced no class
func (r *Reporter) PrintSkipped(skipped []Skipped) {
	if len(skipped) == 0 {
		return
	}

	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Skipped", r.useColors))
	for _, s := range skipped {
		fmt.Fprintf(r.w, "  • %s %s\n", s.Declaration, RenderStyle(StyleGray, "("+s.Reason+")", r.useColors))
	}
	fmt.Fprintln(r.w, "")
}

func (r *Reporter) printSection(title, body string) {
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, title, r.useColors))
	for _, line := range strings.Split(body, "\n") {
		fmt.Fprintf(r.w, "  %s\n", line)
	}
	fmt.Fprintln(r.w, "")
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

func engineLabel(c Config) string {
	name := EngineUnocss
	if c.isTailwind() {
		name = EngineTailwind
	}
	if c.IsRem {
		name += ", rem"
	}
	if c.Prefix != "" {
		name += ", prefix " + c.Prefix
	}
	return name
}
