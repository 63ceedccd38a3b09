package commands

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CliForge/cliparams/pkg/command"
	"github.com/CliForge/cliparams/pkg/output"
	"github.com/CliForge/cliparams/pkg/param"
)

// NewInspectCommand reports the size of an existing file.
func NewInspectCommand() (*command.Command, error) {
	cmd := command.New("inspect", "Show information about a file", runInspect)

	file, err := param.NewPath("file", param.PathFile)
	if err != nil {
		return nil, err
	}
	file.SetDescription("File to inspect")
	file.SetRequired(true)
	file.SetMustExist(true)
	if err := file.SetShortcut("f"); err != nil {
		return nil, err
	}

	lines := param.NewBool("lines")
	lines.SetDescription("Count lines as well")
	if err := lines.SetShortcut("l|count-lines"); err != nil {
		return nil, err
	}

	for _, p := range []param.Param{file, lines} {
		if err := cmd.AddParam(p); err != nil {
			return nil, err
		}
	}
	return cmd, nil
}

func runInspect(cmd *cobra.Command, in *command.Input) error {
	path, err := in.String("file")
	if err != nil {
		return err
	}
	countLines, err := in.Bool("lines")
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to inspect %s: %w", path, err)
	}
	result := InspectResult{Path: path, Size: info.Size()}

	if countLines {
		n, err := countFileLines(path)
		if err != nil {
			return err
		}
		result.Lines = &n
	}

	return output.Format(cmd.OutOrStdout(), result, command.OutputFormat(cmd))
}

// InspectResult is the outcome of the inspect command.
type InspectResult struct {
	Path  string `json:"path" yaml:"path"`
	Size  int64  `json:"size" yaml:"size"`
	Lines *int   `json:"lines,omitempty" yaml:"lines,omitempty"`
}

// Text renders one line per measurement.
func (r InspectResult) Text() string {
	text := fmt.Sprintf("%s: %d bytes", r.Path, r.Size)
	if r.Lines != nil {
		text += fmt.Sprintf("\n%s: %d lines", r.Path, *r.Lines)
	}
	return text
}

func countFileLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	n := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		n++
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return n, nil
}
