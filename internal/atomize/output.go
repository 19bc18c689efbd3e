package atomize

import (
	"fmt"
	"io"
	"strings"
)

// DetermineOutputFormat selects the output format from the flag value.
// Quiet mode prints only the full class string so the result can be piped.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	if quiet {
		return OutputUno
	}

	switch strings.ToLower(formatFlag) {
	case "text", "":
		return OutputText
	case "explain":
		return OutputExplain
	case "json":
		return OutputJSON
	case "yaml", "yml":
		return OutputYAML
	case "css":
		return OutputCSS
	case "uno", "classes":
		return OutputUno
	case "mini", "uno-mini":
		return OutputMini
	default:
		// Invalid format, fall back to the default
		return OutputText
	}
}

// OutputFormats lists the accepted --output-format values
func OutputFormats() []string {
	return []string{
		string(OutputText), string(OutputExplain), string(OutputJSON), string(OutputYAML),
		string(OutputCSS), string(OutputUno), string(OutputMini),
	}
}

// WriteOutput writes conversions in the specified format
func WriteOutput(w io.Writer, conversions []Conversion, format OutputFormat, useColors bool, opts ...Option) error {
	switch format {
	case OutputJSON:
		if err := WriteJSON(w, conversions); err != nil {
			return fmt.Errorf("write json: %w", err)
		}

	case OutputYAML:
		if err := WriteYAML(w, conversions); err != nil {
			return fmt.Errorf("write yaml: %w", err)
		}

	case OutputExplain:
		reporter := NewExplainReporter(w, useColors)
		for _, c := range conversions {
			reporter.PrintExplanation(c, opts...)
		}

	case OutputCSS:
		for _, c := range conversions {
			if _, err := fmt.Fprintln(w, c.Result.CSSCode); err != nil {
				return err
			}
		}

	case OutputUno:
		for _, c := range conversions {
			if _, err := fmt.Fprintln(w, c.Result.Uno); err != nil {
				return err
			}
		}

	case OutputMini:
		for _, c := range conversions {
			if _, err := fmt.Fprintln(w, c.Result.UnoMini); err != nil {
				return err
			}
		}

	default:
		reporter := NewReporter(w, useColors)
		for _, c := range conversions {
			reporter.PrintConversion(c)
		}
	}
	return nil
}
