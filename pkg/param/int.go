package param

import (
	"math"
	"regexp"
	"strconv"
)

var integerLiteral = regexp.MustCompile(`^(0|-?[1-9][0-9]*)$`)

// Int is an integer parameter with optional bounds.
type Int struct {
	base
	min *int
	max *int
}

// NewInt declares an integer parameter.
func NewInt(name string) *Int {
	return &Int{base: newBase(name)}
}

// Mode returns ModeRequired.
func (p *Int) Mode() Mode { return ModeRequired }

// SetMin sets the smallest accepted value.
func (p *Int) SetMin(min int) { p.min = &min }

// SetMax sets the largest accepted value.
func (p *Int) SetMax(max int) { p.max = &max }

// Prompt returns a text prompt that converts integer literals to int and
// enforces the bounds.
func (p *Int) Prompt() *Prompt {
	return p.textPrompt(intValidator(p.required, p.min, p.max), NormalizeInt)
}

// NormalizeInt converts canonical base-10 integer strings and integer types
// that fit an int to int. Anything else, including "1.1", "0.0" and "-0", is
// returned unchanged.
func NormalizeInt(value interface{}) interface{} {
	switch v := value.(type) {
	case string:
		if !integerLiteral.MatchString(v) {
			return value
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return value
		}
		return n
	case int8:
		return int(v)
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return int(v)
	case uint8:
		return int(v)
	case uint16:
		return int(v)
	case uint32:
		if uint64(v) <= math.MaxInt {
			return int(v)
		}
	case uint:
		if uint64(v) <= math.MaxInt {
			return int(v)
		}
	case uint64:
		if v <= math.MaxInt {
			return int(v)
		}
	}
	return value
}

func intValidator(required bool, min, max *int) Validator {
	return func(value interface{}) (interface{}, error) {
		if !required && IsBlank(value) {
			return value, nil
		}

		n, ok := value.(int)
		if !ok {
			return nil, invalidValue("Invalid value: integer expected, %s given", TypeName(value))
		}

		if min != nil && n < *min {
			return nil, invalidValue("Invalid value %d; minimum value is %d", n, *min)
		}

		if max != nil && n > *max {
			return nil, invalidValue("Invalid value %d; maximum value is %d", n, *max)
		}

		return n, nil
	}
}
