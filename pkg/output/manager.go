package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// DefaultFormat is used when no format is selected.
const DefaultFormat = "text"

// Manager selects a formatter by name.
type Manager struct {
	formatters    map[string]Formatter
	defaultFormat string
}

// NewManager creates a new output manager with the text, JSON and YAML
// formatters registered.
func NewManager() *Manager {
	m := &Manager{
		formatters:    make(map[string]Formatter),
		defaultFormat: DefaultFormat,
	}

	m.RegisterFormatter(NewTextFormatter())
	m.RegisterFormatter(NewJSONFormatter())
	m.RegisterFormatter(NewYAMLFormatter())

	return m
}

// RegisterFormatter registers a new formatter.
func (m *Manager) RegisterFormatter(formatter Formatter) {
	m.formatters[formatter.Name()] = formatter
}

// GetFormatter returns a formatter by name. An empty name selects the
// default format.
func (m *Manager) GetFormatter(name string) (Formatter, error) {
	if name == "" {
		name = m.defaultFormat
	}
	formatter, ok := m.formatters[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unsupported output format %q (supported: %s)",
			name, strings.Join(m.SupportedFormats(), ", "))
	}
	return formatter, nil
}

// SetDefaultFormat sets the default output format.
func (m *Manager) SetDefaultFormat(format string) {
	m.defaultFormat = format
}

// SupportedFormats returns the registered format names, sorted.
func (m *Manager) SupportedFormats() []string {
	names := make([]string, 0, len(m.formatters))
	for name := range m.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Format writes data to w in the named format.
func (m *Manager) Format(w io.Writer, data interface{}, format string) error {
	formatter, err := m.GetFormatter(format)
	if err != nil {
		return err
	}
	return formatter.Format(w, data)
}

var defaultManager = NewManager()

// Format writes data to w in the named format using the default manager.
func Format(w io.Writer, data interface{}, format string) error {
	return defaultManager.Format(w, data, format)
}

// IsSupported reports whether the default manager knows format.
func IsSupported(format string) bool {
	_, err := defaultManager.GetFormatter(format)
	return err == nil
}
