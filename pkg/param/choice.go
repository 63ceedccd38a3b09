package param

import (
	"fmt"
	"strings"
)

// Choice is a parameter whose value comes from a fixed list.
type Choice struct {
	base
	choices []string
}

// NewChoice declares a choice parameter over choices.
func NewChoice(name string, choices []string) *Choice {
	return &Choice{
		base:    newBase(name),
		choices: append([]string(nil), choices...),
	}
}

// Mode returns ModeRequired.
func (p *Choice) Mode() Mode { return ModeRequired }

// Choices returns the allowed values.
func (p *Choice) Choices() []string {
	return append([]string(nil), p.choices...)
}

// Prompt returns a select prompt over the configured choices.
func (p *Choice) Prompt() *Prompt {
	return &Prompt{
		Kind:      PromptSelect,
		Name:      p.name,
		Message:   p.description,
		Text:      questionText(p.description, "?", p.def, p.multiple, p.required, "selection"),
		Default:   p.def,
		Choices:   p.Choices(),
		Multiple:  p.multiple,
		Required:  p.required,
		Validator: p.constrain(choiceValidator(p.required, p.choices)),
	}
}

func choiceValidator(required bool, choices []string) Validator {
	return func(value interface{}) (interface{}, error) {
		if !required && IsBlank(value) {
			return value, nil
		}

		s := fmt.Sprint(value)
		if value == nil {
			s = ""
		}
		for _, c := range choices {
			if c == s {
				return c, nil
			}
		}

		return nil, invalidValue("Invalid value %q; expected one of: %s", s, strings.Join(choices, ", "))
	}
}
