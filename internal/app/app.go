// Package app assembles the root command of a parameter-aware CLI.
//
// # Initialization Flow
//
//  1. Load configuration (pkg/config)
//  2. Map command names to services (pkg/loader)
//  3. Build the root command with global flags
//  4. Execute with a context carrying the terminal and logger every
//     command resolves its parameters with
//
// # Global Flags
//
//	--config            Path to the configuration file
//	--no-interaction, -n  Do not ask any interactive question
//	--verbose, -v       Enable debug logging
//	--no-color          Disable colored output
//	--output, -o        Result format: text, json or yaml
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/CliForge/cliparams/pkg/cli/interactive"
	"github.com/CliForge/cliparams/pkg/command"
	"github.com/CliForge/cliparams/pkg/config"
	"github.com/CliForge/cliparams/pkg/loader"
	"github.com/CliForge/cliparams/pkg/logging"
	"github.com/CliForge/cliparams/pkg/output"
	"github.com/CliForge/cliparams/pkg/resolve"
)

// App is a configured command-line application.
type App struct {
	config   *config.Config
	loader   *loader.Loader
	rootCmd  *cobra.Command
	settings *command.Settings
	logLevel logging.LogLevel
	errOut   io.Writer
}

// Option configures an App.
type Option func(*App)

// WithTerminal sets the terminal every command asks questions on.
func WithTerminal(t resolve.Terminal) Option {
	return func(a *App) {
		a.settings.Terminal = t
	}
}

// WithErrorOutput sets where diagnostics are written. Defaults to stderr.
func WithErrorOutput(w io.Writer) Option {
	return func(a *App) {
		a.errOut = w
	}
}

// New builds the application from its configuration and command loader.
func New(cfg *config.Config, ld *loader.Loader, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if ld == nil {
		return nil, fmt.Errorf("loader cannot be nil")
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	a := &App{
		config:   cfg,
		loader:   ld,
		settings: &command.Settings{NoInteraction: !cfg.Interactive()},
		logLevel: level,
		errOut:   os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}

	if err := a.buildCommandTree(); err != nil {
		return nil, fmt.Errorf("failed to build command tree: %w", err)
	}

	return a, nil
}

// RootCommand returns the root command.
func (a *App) RootCommand() *cobra.Command {
	return a.rootCmd
}

// Execute runs the root command with args.
func (a *App) Execute(ctx context.Context, args []string) error {
	a.rootCmd.SetArgs(args)
	return a.rootCmd.ExecuteContext(command.NewContext(ctx, a.settings))
}

func (a *App) buildCommandTree() error {
	meta := a.config.Metadata

	a.rootCmd = &cobra.Command{
		Use:               meta.Name,
		Short:             meta.Description,
		Version:           meta.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	command.NewFlagBuilder().AddGlobalFlags(a.rootCmd)
	flags := a.rootCmd.PersistentFlags()
	flags.String("config", "", "Path to the configuration file")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.Bool("no-color", a.config.ColorDisabled(), "Disable colored output")
	flags.StringP("output", "o", a.config.Output.Format, "Result format (text, json, yaml)")

	cmds, err := a.loader.Commands()
	if err != nil {
		return err
	}
	for _, cmd := range cmds {
		a.rootCmd.AddCommand(cmd)
	}
	if !a.loader.Has("version") {
		a.rootCmd.AddCommand(newVersionCommand(meta))
	}

	return nil
}

// setup applies the global flags before any command runs.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	noColor, _ := cmd.Flags().GetBool("no-color")
	if noColor {
		pterm.DisableColor()
	}

	format, _ := cmd.Flags().GetString("output")
	if format != "" && !output.IsSupported(format) {
		return fmt.Errorf("unsupported output format %q", format)
	}
	a.settings.Format = format

	verbose, _ := cmd.Flags().GetBool("verbose")
	level := a.logLevel
	if verbose {
		level = logging.LevelDebug
	}
	logger := logging.InitForCLI(level, a.errOut).With("app", a.config.Metadata.Name)
	a.settings.Logger = logger

	if a.settings.Terminal == nil {
		a.settings.Terminal = interactive.NewPrompter(&interactive.PrompterConfig{
			Logger:       logger.With("subsystem", "prompt"),
			DisableColor: noColor,
			MaxAttempts:  a.config.Interaction.MaxAttempts,
		})
	}

	logger.Debug("running command",
		slog.String("command", cmd.CommandPath()),
		slog.Bool("interactive", !a.settings.NoInteraction && !command.NoInteraction(cmd)))
	return nil
}
