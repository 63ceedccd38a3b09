package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CliForge/cliparams/pkg/command"
	"github.com/CliForge/cliparams/pkg/param"
)

// NewGreetCommand greets someone by name.
func NewGreetCommand() (*command.Command, error) {
	cmd := command.New("greet", "Greet someone", runGreet)

	name := param.NewString("name")
	name.SetDescription("Who should be greeted")
	name.SetRequired(true)
	if err := name.SetPattern(`^\p{L}[\p{L} '-]*$`); err != nil {
		return nil, err
	}
	if err := name.SetShortcut("N"); err != nil {
		return nil, err
	}

	greeting := param.NewChoice("greeting", []string{"Hello", "Hi", "Hey"})
	greeting.SetDescription("Which greeting to use")
	greeting.SetDefault("Hello")

	times := param.NewInt("times")
	times.SetDescription("How many times to greet")
	times.SetDefault(1)
	times.SetMin(1)
	times.SetMax(5)

	shout := param.NewBool("shout")
	shout.SetDescription("Shout the greeting")

	for _, p := range []param.Param{name, greeting, times, shout} {
		if err := cmd.AddParam(p); err != nil {
			return nil, err
		}
	}

	return cmd, nil
}

func runGreet(cmd *cobra.Command, in *command.Input) error {
	name, err := in.String("name")
	if err != nil {
		return err
	}
	greeting, err := in.String("greeting")
	if err != nil {
		return err
	}
	times, err := in.Int("times")
	if err != nil {
		return err
	}
	shout, err := in.Bool("shout")
	if err != nil {
		return err
	}

	line := fmt.Sprintf("%s, %s!", greeting, name)
	if shout {
		line = strings.ToUpper(line)
	}
	for i := 0; i < times; i++ {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return err
		}
	}
	return nil
}
