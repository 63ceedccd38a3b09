package param

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// constraint is a compiled boolean expression over "value".
type constraint struct {
	source  string
	message string
	program *vm.Program
}

func compileConstraint(expression, message string) (*constraint, error) {
	program, err := expr.Compile(expression, expr.AsBool())
	if err != nil {
		return nil, err
	}
	if message == "" {
		message = fmt.Sprintf("must satisfy %s", expression)
	}
	return &constraint{
		source:  expression,
		message: message,
		program: program,
	}, nil
}

func (c *constraint) check(value interface{}) error {
	env := map[string]interface{}{"value": value}

	output, err := expr.Run(c.program, env)
	if err != nil {
		return invalidValue("Invalid value %v; failed to evaluate %s: %v", value, c.source, err)
	}

	ok, isBool := output.(bool)
	if !isBool {
		return invalidValue("Invalid value %v; %s did not evaluate to a boolean", value, c.source)
	}
	if !ok {
		return invalidValue("Invalid value %v; %s", value, c.message)
	}
	return nil
}
