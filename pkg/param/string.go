package param

import "regexp"

// String is a free-text parameter with an optional pattern.
type String struct {
	base
	pattern *regexp.Regexp
}

// NewString declares a string parameter.
func NewString(name string) *String {
	return &String{base: newBase(name)}
}

// Mode returns ModeRequired.
func (p *String) Mode() Mode { return ModeRequired }

// SetPattern sets the regular expression values must match. The pattern is
// compiled immediately; a malformed pattern is rejected.
func (p *String) SetPattern(pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return invalidConfig(p.name, "Invalid pattern %q: %v", pattern, err)
	}
	p.pattern = re
	return nil
}

// Prompt returns a text prompt validating the value type and pattern.
func (p *String) Prompt() *Prompt {
	return p.textPrompt(stringValidator(p.required, p.pattern), nil)
}

func stringValidator(required bool, pattern *regexp.Regexp) Validator {
	return func(value interface{}) (interface{}, error) {
		if !required && IsBlank(value) {
			return value, nil
		}

		s, ok := value.(string)
		if !ok {
			return nil, invalidValue("Invalid value: string expected, %s given", TypeName(value))
		}

		if pattern != nil && !pattern.MatchString(s) {
			return nil, invalidValue("Invalid value: does not match pattern %s", pattern.String())
		}

		return s, nil
	}
}
