package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// encodingFormatter writes results through a streaming encoder.
type encodingFormatter struct {
	name   string
	encode func(w io.Writer, data interface{}) error
}

// NewJSONFormatter returns a formatter writing JSON indented by two spaces.
func NewJSONFormatter() Formatter {
	return encodingFormatter{name: "json", encode: encodeJSON}
}

// NewYAMLFormatter returns a formatter writing YAML; nil is written as null.
func NewYAMLFormatter() Formatter {
	return encodingFormatter{name: "yaml", encode: encodeYAML}
}

func (f encodingFormatter) Name() string {
	return f.name
}

func (f encodingFormatter) Format(w io.Writer, data interface{}) error {
	if err := f.encode(w, data); err != nil {
		return fmt.Errorf("failed to encode %s: %w", strings.ToUpper(f.name), err)
	}
	return nil
}

func encodeJSON(w io.Writer, data interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func encodeYAML(w io.Writer, data interface{}) error {
	if data == nil {
		_, err := io.WriteString(w, "null\n")
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}
