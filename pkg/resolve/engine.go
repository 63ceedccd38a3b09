package resolve

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/CliForge/cliparams/pkg/param"
)

// Engine resolves parameter values for one invocation.
type Engine struct {
	options  Options
	terminal Terminal
	params   map[string]param.Param
	logger   *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger used for resolution traces.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine over an option store and a terminal. Every
// parameter the command resolves must be passed here; names must be unique.
// A nil terminal makes interactive resolution fail.
func NewEngine(options Options, terminal Terminal, params []param.Param, opts ...EngineOption) (*Engine, error) {
	if options == nil {
		return nil, fmt.Errorf("options cannot be nil")
	}
	if terminal == nil {
		terminal = noTerminal{}
	}

	e := &Engine{
		options:  options,
		terminal: terminal,
		params:   make(map[string]param.Param, len(params)),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}

	for _, p := range params {
		if _, exists := e.params[p.Name()]; exists {
			return nil, param.NewError(param.ErrInvalidConfiguration, p.Name(), "duplicate parameter name: %s", p.Name())
		}
		e.params[p.Name()] = p
	}

	return e, nil
}

// Param returns the declaration registered under name.
func (e *Engine) Param(name string) (param.Param, bool) {
	p, ok := e.params[name]
	return p, ok
}

// Resolve returns the value of the named parameter. Values given on the
// invocation and declared defaults are normalized and validated; missing
// values are asked for and written back into the option store.
func (e *Engine) Resolve(name string) (interface{}, error) {
	p, ok := e.params[name]
	if !ok {
		return nil, param.NewError(param.ErrUnknownParameter, name, "Invalid parameter name: %s", name)
	}

	value := e.options.Option(name)
	prompt := p.Prompt()
	source := "option"

	if !isProvided(p, value) && !e.options.Interactive() {
		value = p.Default()
		source = "default"
	}

	if isProvided(p, value) {
		if _, ok := param.Values(value); ok && !p.Multiple() {
			return nil, param.NewError(param.ErrInvalidShape, name,
				"Option --%s expects a single value, but received %q",
				name, param.TypeName(value))
		}
		normalized := normalize(value, prompt.Normalizer)
		if err := validate(normalized, p.Multiple(), prompt.Validator, name); err != nil {
			return nil, err
		}
		e.logger.Debug("resolved parameter", "name", name, "source", source)
		return normalized, nil
	}

	if !e.options.Interactive() && p.Required() {
		return nil, param.NewError(param.ErrMissingRequiredValue, name, "Missing required value for --%s parameter", name)
	}

	terminal := e.terminal
	if !e.options.Interactive() {
		terminal = blankTerminal{}
	}

	var answer interface{}
	var err error
	if p.Multiple() {
		answer, err = askMany(terminal, prompt)
	} else {
		answer, err = askOnce(terminal, prompt)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve --%s: %w", name, err)
	}

	e.options.SetOption(name, answer)
	e.logger.Debug("resolved parameter", "name", name, "source", "prompt")

	return answer, nil
}

// isProvided reports whether value counts as given for p.
func isProvided(p param.Param, value interface{}) bool {
	if value == nil {
		return false
	}
	if !p.Multiple() {
		return true
	}
	values, ok := param.Values(value)
	return !ok || len(values) > 0
}

// normalize applies n to a scalar or to every element of a sequence.
// Sequences always come back as []interface{}.
func normalize(value interface{}, n param.Normalizer) interface{} {
	values, ok := param.Values(value)
	if !ok {
		if n == nil {
			return value
		}
		return n(value)
	}

	normalized := make([]interface{}, len(values))
	for i, v := range values {
		if n != nil {
			v = n(v)
		}
		normalized[i] = v
	}
	return normalized
}

// validate runs v on value, or on each element when a sequence is expected.
func validate(value interface{}, expectArray bool, v param.Validator, name string) error {
	if v == nil {
		return nil
	}

	if !expectArray {
		_, err := v(value)
		return withParam(err, name)
	}

	values, ok := param.Values(value)
	if !ok {
		return param.NewError(param.ErrInvalidShape, name,
			"Option --%s expects an array of values, but received %q; check to ensure the command has provided a valid default.",
			name, param.TypeName(value))
	}

	for _, element := range values {
		if _, err := v(element); err != nil {
			return withParam(err, name)
		}
	}
	return nil
}

func withParam(err error, name string) error {
	var pe *param.Error
	if errors.As(err, &pe) && pe.Param == "" {
		pe.Param = name
	}
	return err
}
