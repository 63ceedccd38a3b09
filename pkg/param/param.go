// Package param declares the named, typed parameters a command can resolve.
//
// A declaration is configured once, while the command is being built, and is
// read-only afterwards. Every kind produces a fresh Prompt on demand; the
// prompt carries the normalizer and validator used both for values supplied
// on the command line and for answers typed at a terminal.
//
// The set of kinds is closed:
//
//   - Bool: yes/no confirmation, no value payload on the command line
//   - Int: integer with optional bounds
//   - String: text with an optional pattern
//   - Choice: one value out of a fixed list
//   - Path: filesystem path, optionally required to exist
//
// Example:
//
//	count := param.NewInt("count")
//	count.SetDescription("How many instances")
//	count.SetRequired(true)
//	count.SetMin(1)
//	count.SetMax(10)
package param

import (
	"strings"
)

// Mode tells how a parameter maps onto a command-line option.
type Mode int

const (
	// ModeNone is a flag without a value.
	ModeNone Mode = iota
	// ModeRequired is an option that requires a value.
	ModeRequired
)

// Param is a parameter declaration. Implementations are the kinds of this
// package; the interface cannot be implemented elsewhere.
type Param interface {
	Name() string
	Description() string
	Default() interface{}
	Required() bool
	// Shortcut returns the option aliases, without leading dashes.
	Shortcut() []string
	// Multiple reports whether the parameter collects a sequence of values.
	Multiple() bool
	Mode() Mode
	// Prompt builds a new prompt descriptor for one resolution attempt.
	Prompt() *Prompt

	declaration() *base
}

type base struct {
	name        string
	description string
	def         interface{}
	required    bool
	shortcut    []string
	multiple    bool
	constraint  *constraint
}

func newBase(name string) base {
	return base{name: name}
}

func (b *base) declaration() *base { return b }

// Name returns the parameter name.
func (b *base) Name() string { return b.name }

// Description returns the label used to build prompts.
func (b *base) Description() string { return b.description }

// Default returns the declared default value, or nil.
func (b *base) Default() interface{} { return b.def }

// Required reports whether a value must be resolved.
func (b *base) Required() bool { return b.required }

// Shortcut returns the option aliases.
func (b *base) Shortcut() []string { return b.shortcut }

// Multiple reports whether the parameter collects several values.
func (b *base) Multiple() bool { return b.multiple }

// SetDescription sets the prompt label.
func (b *base) SetDescription(description string) { b.description = description }

// SetDefault sets the default value. For multi-value parameters the default
// must be a slice.
func (b *base) SetDefault(value interface{}) { b.def = value }

// SetRequired sets the required flag.
func (b *base) SetRequired(required bool) { b.required = required }

// SetAllowMultiple switches the parameter between a single value and a list
// of values.
func (b *base) SetAllowMultiple(multiple bool) { b.multiple = multiple }

// SetShortcut sets the option aliases. Calling it without arguments clears
// them. Each alias may carry leading dashes and "|" separated alternatives,
// but must not be blank once the dashes are removed.
func (b *base) SetShortcut(shortcuts ...string) error {
	if len(shortcuts) == 0 {
		b.shortcut = nil
		return nil
	}

	cleaned := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		for _, alias := range strings.Split(s, "|") {
			alias = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(alias), "-"))
			if alias == "" {
				return invalidConfig(b.name, "shortcut %q must be a non-zero-length string once leading dashes are removed", s)
			}
			cleaned = append(cleaned, alias)
		}
	}

	b.shortcut = cleaned
	return nil
}

// SetConstraint adds a boolean expr-lang expression every non-blank value
// must satisfy; the value is available as "value". message is reported
// when the expression evaluates to false. An empty expression removes the
// constraint.
func (b *base) SetConstraint(expression, message string) error {
	if expression == "" {
		b.constraint = nil
		return nil
	}
	c, err := compileConstraint(expression, message)
	if err != nil {
		return invalidConfig(b.name, "invalid constraint %q: %v", expression, err)
	}
	b.constraint = c
	return nil
}

// textPrompt builds the common prompt shape shared by text kinds.
func (b *base) textPrompt(validator Validator, normalizer Normalizer) *Prompt {
	return &Prompt{
		Kind:       PromptText,
		Name:       b.name,
		Message:    b.description,
		Text:       questionText(b.description, ":", b.def, b.multiple, b.required, "entry"),
		Default:    b.def,
		Multiple:   b.multiple,
		Required:   b.required,
		Normalizer: normalizer,
		Validator:  b.constrain(validator),
	}
}

// constrain appends the constraint expression, if any, to v.
func (b *base) constrain(v Validator) Validator {
	if b.constraint == nil {
		return v
	}
	c := b.constraint
	return func(value interface{}) (interface{}, error) {
		if v != nil {
			var err error
			if value, err = v(value); err != nil {
				return nil, err
			}
		}
		if IsBlank(value) {
			return value, nil
		}
		if err := c.check(value); err != nil {
			return nil, err
		}
		return value, nil
	}
}
