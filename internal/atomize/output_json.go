package atomize

import (
	"encoding/json"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// JSONOutput represents the structured export schema shared by json and yaml output
type JSONOutput struct {
	Version   string     `json:"version" yaml:"version"`
	Timestamp string     `json:"timestamp" yaml:"timestamp"`
	Files     []JSONFile `json:"files" yaml:"files"`
}

// JSONFile holds one converted input
type JSONFile struct {
	Source  string    `json:"source,omitempty" yaml:"source,omitempty"`
	Engine  string    `json:"engine" yaml:"engine"`
	IsRem   bool      `json:"isRem" yaml:"isRem"`
	Prefix  string    `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	CSSCode string    `json:"cssCode" yaml:"cssCode"`
	Uno     string    `json:"uno" yaml:"uno"`
	UnoMini string    `json:"unoMini" yaml:"unoMini"`
	Skipped []Skipped `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// WriteJSON writes conversions as indented JSON
func WriteJSON(w io.Writer, conversions []Conversion) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(buildJSONOutput(conversions))
}

// WriteYAML writes conversions as YAML
func WriteYAML(w io.Writer, conversions []Conversion) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(buildJSONOutput(conversions)); err != nil {
		return err
	}
	return encoder.Close()
}

// buildJSONOutput converts conversions to the export schema
func buildJSONOutput(conversions []Conversion) JSONOutput {
	files := make([]JSONFile, len(conversions))
	for i, c := range conversions {
		engine := EngineUnocss
		if c.Config.isTailwind() {
			engine = EngineTailwind
		}
		files[i] = JSONFile{
			Source:  c.Source,
			Engine:  engine,
			IsRem:   c.Config.IsRem,
			Prefix:  c.Config.Prefix,
			CSSCode: c.Result.CSSCode,
			Uno:     c.Result.Uno,
			UnoMini: c.Result.UnoMini,
			Skipped: c.Result.Skipped,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Files:     files,
	}
}
