package command

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/CliForge/cliparams/pkg/resolve"
)

// Settings are application-wide defaults for every command run under a
// context. Fields set on a Command itself take precedence.
type Settings struct {
	Terminal resolve.Terminal
	Logger   *slog.Logger
	// NoInteraction disables questions for every command.
	NoInteraction bool
	// Format names the format results are written in; empty means text.
	Format string
}

type settingsKey struct{}

// NewContext returns a context carrying settings. Pass it to
// cobra.Command.ExecuteContext on the root command.
func NewContext(ctx context.Context, settings *Settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, settings)
}

// SettingsFrom returns the settings carried by ctx, or nil.
func SettingsFrom(ctx context.Context) *Settings {
	if ctx == nil {
		return nil
	}
	settings, _ := ctx.Value(settingsKey{}).(*Settings)
	return settings
}

// OutputFormat returns the result format selected for cmd.
func OutputFormat(cmd *cobra.Command) string {
	if settings := SettingsFrom(cmd.Context()); settings != nil {
		return settings.Format
	}
	return ""
}
