package atomize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Input formats understood by ReadStyleMap
const (
	FormatCSS  = "css"
	FormatJSON = "json"
)

// FormatFromPath infers the input format from a file extension
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".css", ".txt":
		return FormatCSS, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedInput, path)
}

// LoadStyleMap reads a declaration file. CSS files hold a declaration block,
// JSON files an object of property/value pairs in display order.
func LoadStyleMap(path string) (StyleMap, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	// #nosec G304 - path comes from the command line or a configured glob
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	style, err := ReadStyleMap(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return style, nil
}

// DetectFormat guesses the format of piped input: a leading "{" means JSON
func DetectFormat(data []byte) string {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return FormatJSON
	}
	return FormatCSS
}

// ReadStyleMap reads declarations in the given format from r. An empty
// format is detected from the content. An input without declarations
// yields ErrEmptyInput.
func ReadStyleMap(r io.Reader, format string) (StyleMap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	if format == "" {
		format = DetectFormat(data)
	}

	var style StyleMap
	switch format {
	case FormatCSS:
		style, err = ParseDeclarations(string(data))
	case FormatJSON:
		style, err = parseJSONStyle(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedInput, format)
	}
	if err != nil {
		return nil, err
	}

	if len(style) == 0 {
		return nil, ErrEmptyInput
	}
	return style, nil
}

// parseJSONStyle decodes {"display": "flex", "gap": "8px"} keeping key order.
// Comments and trailing commas are accepted.
func parseJSONStyle(data []byte) (StyleMap, error) {
	om := orderedmap.New[string, any]()
	if err := json.Unmarshal(jsonc.ToJSON(data), om); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	style := make(StyleMap, 0, om.Len())
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		value, err := scalarString(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", pair.Key, err)
		}
		style = append(style, Declaration{Property: pair.Key, Value: value})
	}
	return style, nil
}

// scalarString renders a JSON scalar as a CSS value
func scalarString(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(val), nil
	case nil:
		return "", nil
	}
	return "", fmt.Errorf("unsupported value type %T", v)
}
