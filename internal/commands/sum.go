package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CliForge/cliparams/pkg/command"
	"github.com/CliForge/cliparams/pkg/output"
	"github.com/CliForge/cliparams/pkg/param"
)

// NewSumCommand adds up a list of integers.
func NewSumCommand() (*command.Command, error) {
	cmd := command.New("sum", "Add up integers", runSum)

	numbers := param.NewInt("number")
	numbers.SetDescription("Number to add")
	numbers.SetRequired(true)
	numbers.SetAllowMultiple(true)
	if err := numbers.SetConstraint("value >= -1000000 && value <= 1000000", "numbers must be within one million of zero"); err != nil {
		return nil, err
	}

	if err := cmd.AddParam(numbers); err != nil {
		return nil, err
	}
	return cmd, nil
}

func runSum(cmd *cobra.Command, in *command.Input) error {
	numbers, err := in.Ints("number")
	if err != nil {
		return err
	}

	result := SumResult{Numbers: numbers}
	for _, n := range numbers {
		result.Total += n
	}

	return output.Format(cmd.OutOrStdout(), result, command.OutputFormat(cmd))
}

// SumResult is the outcome of the sum command.
type SumResult struct {
	Numbers []int `json:"numbers" yaml:"numbers"`
	Total   int   `json:"total" yaml:"total"`
}

// Text renders the sum as an equation.
func (r SumResult) Text() string {
	terms := make([]string, len(r.Numbers))
	for i, n := range r.Numbers {
		terms[i] = fmt.Sprint(n)
	}
	return fmt.Sprintf("%s = %d", strings.Join(terms, " + "), r.Total)
}
