package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/CliForge/cliparams/pkg/command"
	"github.com/CliForge/cliparams/pkg/config"
	"github.com/CliForge/cliparams/pkg/output"
)

// VersionInfo contains version information about the CLI.
type VersionInfo struct {
	Name      string `json:"name" yaml:"name"`
	Version   string `json:"version" yaml:"version"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
	Compiler  string `json:"compiler" yaml:"compiler"`
}

// Text renders the version information one field per line.
func (v VersionInfo) Text() string {
	return fmt.Sprintf("%s %s\nGo: %s\nPlatform: %s\nCompiler: %s",
		v.Name, v.Version, v.GoVersion, v.Platform, v.Compiler)
}

// newVersionCommand creates the version command.
func newVersionCommand(meta config.Metadata) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionInfo{
				Name:      meta.Name,
				Version:   meta.Version,
				GoVersion: runtime.Version(),
				Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
				Compiler:  runtime.Compiler,
			}
			return output.Format(cmd.OutOrStdout(), info, command.OutputFormat(cmd))
		},
	}
}
