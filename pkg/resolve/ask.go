package resolve

import (
	"github.com/CliForge/cliparams/pkg/param"
)

// askOnce asks a single-value question. Optional parameters accept a blank
// answer without running the kind validator.
func askOnce(terminal Terminal, prompt *param.Prompt) (interface{}, error) {
	if !prompt.Required {
		prompt = prompt.WithValidator(skipBlank(prompt.Validator))
	}

	answer, err := terminal.Ask(prompt)
	if err != nil {
		return nil, err
	}
	if param.IsBlank(answer) {
		return nil, nil
	}
	return answer, nil
}

// askMany asks the same question until a blank answer arrives and returns
// the collected answers in order. The blank terminator is never included.
//
// A required parameter must collect one value: until it has, blank answers
// go through the kind validator, which rejects them. From then on blank
// answers pass, since the accumulator only grows.
func askMany(terminal Terminal, prompt *param.Prompt) ([]interface{}, error) {
	values := []interface{}{}
	validator := prompt.Validator
	required := prompt.Required

	question := prompt.WithValidator(func(value interface{}) (interface{}, error) {
		if param.IsBlank(value) && (!required || len(values) > 0) {
			return value, nil
		}
		if validator == nil {
			return value, nil
		}
		return validator(value)
	})

	for {
		answer, err := terminal.Ask(question)
		if err != nil {
			return nil, err
		}
		if param.IsBlank(answer) {
			return values, nil
		}
		values = append(values, answer)
	}
}

func skipBlank(v param.Validator) param.Validator {
	return func(value interface{}) (interface{}, error) {
		if param.IsBlank(value) || v == nil {
			return value, nil
		}
		return v(value)
	}
}

// blankTerminal answers every question with its blank answer. It stands in
// for the terminal when the session is not interactive.
type blankTerminal struct{}

func (blankTerminal) Ask(prompt *param.Prompt) (interface{}, error) {
	return prompt.BlankAnswer(), nil
}
