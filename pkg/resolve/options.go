package resolve

// Options is the option store of one invocation.
type Options interface {
	// Option returns the raw value for name, or nil when none was given.
	Option(name string) interface{}
	// SetOption stores a value for name.
	SetOption(name string, value interface{})
	// Interactive reports whether questions may be asked.
	Interactive() bool
}

// MapOptions is an in-memory option store.
type MapOptions struct {
	Values         map[string]interface{}
	NonInteractive bool
}

// NewMapOptions returns an interactive store seeded with values.
func NewMapOptions(values map[string]interface{}) *MapOptions {
	if values == nil {
		values = make(map[string]interface{})
	}
	return &MapOptions{Values: values}
}

// Option returns the stored value for name.
func (m *MapOptions) Option(name string) interface{} {
	return m.Values[name]
}

// SetOption stores value under name.
func (m *MapOptions) SetOption(name string, value interface{}) {
	if m.Values == nil {
		m.Values = make(map[string]interface{})
	}
	m.Values[name] = value
}

// Interactive reports whether the store allows prompting.
func (m *MapOptions) Interactive() bool {
	return !m.NonInteractive
}
