package resolve

import (
	"fmt"

	"github.com/CliForge/cliparams/pkg/param"
)

// String resolves name and returns it as a string. A nil value yields "".
func (e *Engine) String(name string) (string, error) {
	v, err := e.Resolve(name)
	if err != nil || v == nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", typeMismatch(name, "string", v)
	}
	return s, nil
}

// Int resolves name and returns it as an int. A nil value yields 0.
func (e *Engine) Int(name string) (int, error) {
	v, err := e.Resolve(name)
	if err != nil || v == nil {
		return 0, err
	}
	n, ok := param.NormalizeInt(v).(int)
	if !ok {
		return 0, typeMismatch(name, "int", v)
	}
	return n, nil
}

// Bool resolves name and returns it as a bool. A nil value yields false.
func (e *Engine) Bool(name string) (bool, error) {
	v, err := e.Resolve(name)
	if err != nil || v == nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, typeMismatch(name, "bool", v)
	}
	return b, nil
}

// Strings resolves a multi-value parameter as a []string.
func (e *Engine) Strings(name string) ([]string, error) {
	values, err := e.values(name)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, typeMismatch(name, "string", v)
		}
		out = append(out, s)
	}
	return out, nil
}

// Ints resolves a multi-value parameter as a []int.
func (e *Engine) Ints(name string) ([]int, error) {
	values, err := e.values(name)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(values))
	for _, v := range values {
		n, ok := param.NormalizeInt(v).(int)
		if !ok {
			return nil, typeMismatch(name, "int", v)
		}
		out = append(out, n)
	}
	return out, nil
}

func (e *Engine) values(name string) ([]interface{}, error) {
	v, err := e.Resolve(name)
	if err != nil || v == nil {
		return nil, err
	}
	values, ok := param.Values(v)
	if !ok {
		return nil, param.NewError(param.ErrInvalidShape, name, "Option --%s expects an array of values, but received %q", name, param.TypeName(v))
	}
	return values, nil
}

func typeMismatch(name, want string, got interface{}) error {
	return fmt.Errorf("parameter --%s resolved to %s, not %s", name, param.TypeName(got), want)
}
