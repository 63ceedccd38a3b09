// Package command binds parameter declarations to cobra commands.
//
// A Command registers one flag per declaration and, when it runs, builds an
// Input whose values are resolved from the flags, the declared defaults or
// questions asked at the terminal.
//
//	greet := command.New("greet", "Greet someone", func(cmd *cobra.Command, in *command.Input) error {
//		name, err := in.String("name")
//		if err != nil {
//			return err
//		}
//		cmd.Printf("Hello, %s!\n", name)
//		return nil
//	})
//	name := param.NewString("name")
//	name.SetRequired(true)
//	if err := greet.AddParam(name); err != nil {
//		return err
//	}
package command

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/CliForge/cliparams/pkg/cli/interactive"
	"github.com/CliForge/cliparams/pkg/param"
	"github.com/CliForge/cliparams/pkg/resolve"
)

// RunFunc is the body of a parameter-aware command.
type RunFunc func(cmd *cobra.Command, in *Input) error

// Command is a cobra command with parameter declarations.
type Command struct {
	*cobra.Command

	flags       *FlagBuilder
	params      []param.Param
	terminal    resolve.Terminal
	logger      *slog.Logger
	interactive func(cmd *cobra.Command) bool
	input       *Input
}

// New creates a command that resolves its parameters before calling run.
func New(use, short string, run RunFunc) *Command {
	c := &Command{
		Command: &cobra.Command{
			Use:   use,
			Short: short,
		},
		flags: NewFlagBuilder(),
	}

	c.RunE = func(cmd *cobra.Command, args []string) error {
		c.input = nil
		in, err := c.Input()
		if err != nil {
			return err
		}
		if run == nil {
			return nil
		}
		return run(cmd, in)
	}

	return c
}

// AddParam declares a parameter and registers its flag.
func (c *Command) AddParam(p param.Param) error {
	if p == nil {
		return fmt.Errorf("parameter cannot be nil")
	}
	if err := c.flags.AddParamFlag(c.Command, p); err != nil {
		return fmt.Errorf("failed to add parameter --%s to %s: %w", p.Name(), c.Name(), err)
	}
	c.params = append(c.params, p)
	return nil
}

// Params returns the declared parameters in declaration order.
func (c *Command) Params() []param.Param {
	return append([]param.Param(nil), c.params...)
}

// SetTerminal sets the terminal questions are asked on. The default is an
// interactive.Prompter over stdin and stdout.
func (c *Command) SetTerminal(t resolve.Terminal) {
	c.terminal = t
}

// SetLogger sets the logger passed to the resolution engine.
func (c *Command) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

// SetInteractive overrides how the command decides whether questions may
// be asked.
func (c *Command) SetInteractive(fn func(cmd *cobra.Command) bool) {
	c.interactive = fn
}

// Input returns the resolution input for the current invocation, creating
// it on first use. It must be called after flags are parsed.
func (c *Command) Input() (*Input, error) {
	if c.input != nil {
		return c.input, nil
	}

	settings := SettingsFrom(c.Context())
	if settings == nil {
		settings = &Settings{}
	}

	terminal := c.terminal
	if terminal == nil {
		terminal = settings.Terminal
	}
	if terminal == nil {
		terminal = interactive.NewPrompter(nil)
	}

	logger := c.logger
	if logger == nil {
		logger = settings.Logger
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	allowQuestions := !settings.NoInteraction && c.isInteractive()
	options := NewFlagOptions(c.Flags(), allowQuestions)
	engine, err := resolve.NewEngine(options, terminal, c.params,
		resolve.WithLogger(logger.With("command", c.Name())))
	if err != nil {
		return nil, fmt.Errorf("failed to prepare parameters of %s: %w", c.Name(), err)
	}

	c.input = &Input{Engine: engine, options: options}
	return c.input, nil
}

func (c *Command) isInteractive() bool {
	if c.interactive != nil {
		return c.interactive(c.Command)
	}
	return DefaultInteractive(c.Command)
}

// ShellInteractiveEnv forces questions on piped stdin when set.
const ShellInteractiveEnv = "SHELL_INTERACTIVE"

// DefaultInteractive allows questions unless --no-interaction is set or
// stdin is not a terminal and ShellInteractiveEnv is unset.
func DefaultInteractive(cmd *cobra.Command) bool {
	if NoInteraction(cmd) {
		return false
	}
	if _, ok := os.LookupEnv(ShellInteractiveEnv); ok {
		return true
	}
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// NoInteraction reports whether --no-interaction was given to cmd or one of
// its parents.
func NoInteraction(cmd *cobra.Command) bool {
	f := cmd.Flag(NoInteractionFlag)
	if f == nil {
		return false
	}
	return f.Value.String() == "true"
}

// Input gives a running command access to its resolved parameters.
type Input struct {
	*resolve.Engine
	options *FlagOptions
}

// Param resolves the named parameter.
func (in *Input) Param(name string) (interface{}, error) {
	return in.Resolve(name)
}

// Options returns the option store backing the input.
func (in *Input) Options() *FlagOptions {
	return in.options
}
