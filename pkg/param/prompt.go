package param

import (
	"fmt"
	"strings"
)

// PromptKind selects the terminal widget used to ask a question.
type PromptKind int

const (
	// PromptText asks for free-form text.
	PromptText PromptKind = iota
	// PromptConfirm asks a yes/no question.
	PromptConfirm
	// PromptSelect asks for one value out of Prompt.Choices.
	PromptSelect
)

// String returns the prompt kind name.
func (k PromptKind) String() string {
	switch k {
	case PromptConfirm:
		return "confirm"
	case PromptSelect:
		return "select"
	default:
		return "text"
	}
}

// Normalizer converts a raw answer before validation.
type Normalizer func(value interface{}) interface{}

// Validator accepts a value, possibly transformed, or rejects it with an
// ErrInvalidValue error.
type Validator func(value interface{}) (interface{}, error)

// Completer returns completion candidates for partial input.
type Completer func(input string) []string

// Prompt describes one question asked for a parameter. A Prompt is built
// fresh by Param.Prompt for every resolution attempt.
type Prompt struct {
	Kind PromptKind
	// Name of the parameter the prompt belongs to.
	Name string
	// Message is the parameter description.
	Message string
	// Text is the rendered question, including default and multi-value hints.
	Text string
	// Default is the suggested answer, if any.
	Default interface{}
	// Choices holds the allowed answers for PromptSelect.
	Choices  []string
	Multiple bool
	Required bool

	Normalizer   Normalizer
	Validator    Validator
	Autocomplete Completer
}

// Normalize applies the prompt normalizer; a nil normalizer is the identity.
func (p *Prompt) Normalize(value interface{}) interface{} {
	if p.Normalizer == nil {
		return value
	}
	return p.Normalizer(value)
}

// Validate applies the prompt validator; a nil validator accepts everything.
func (p *Prompt) Validate(value interface{}) (interface{}, error) {
	if p.Validator == nil {
		return value, nil
	}
	return p.Validator(value)
}

// WithValidator returns a shallow copy of p that validates with v.
func (p *Prompt) WithValidator(v Validator) *Prompt {
	cp := *p
	cp.Validator = v
	return &cp
}

// DefaultHint renders the default value as shown in brackets, or "" when
// there is nothing to show.
func (p *Prompt) DefaultHint() string {
	return formatDefault(p.Default)
}

func formatDefault(v interface{}) string {
	if v == nil {
		return ""
	}
	if values, ok := Values(v); ok {
		if len(values) == 0 {
			return ""
		}
		parts := make([]string, len(values))
		for i, e := range values {
			parts[i] = fmt.Sprint(e)
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprint(v)
}

// questionText renders "<description><terminator> [<default>]" followed by
// the multi-value hints.
func questionText(description, terminator string, def interface{}, multiple, required bool, noun string) string {
	var b strings.Builder
	b.WriteString(description)
	b.WriteString(terminator)
	if hint := formatDefault(def); hint != "" {
		fmt.Fprintf(&b, " [%s]", hint)
	}
	if multiple {
		fmt.Fprintf(&b, "\nMultiple %s allowed. ", pluralNoun(noun))
		if required {
			fmt.Fprintf(&b, "At least one %s is required. ", noun)
		}
	}
	return b.String()
}

func pluralNoun(noun string) string {
	if strings.HasSuffix(noun, "y") {
		return strings.TrimSuffix(noun, "y") + "ies"
	}
	return noun + "s"
}

// BlankAnswer is what an empty submission stands for: the default for
// single-value prompts, nil for multi-value prompts where an empty answer
// ends the list.
func (p *Prompt) BlankAnswer() interface{} {
	if p.Multiple {
		return nil
	}
	return p.Default
}
