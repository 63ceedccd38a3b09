// Package interactive asks parameter questions at a terminal.
//
// A Prompter answers param.Prompt questions and is the terminal used by the
// resolution engine. It works in two modes:
//
//   - terminal mode, when input is a TTY: pterm widgets render text,
//     confirmation and selection questions; prompts with completion use
//     readline so TAB completes candidates such as filesystem paths
//   - line mode, otherwise: the question is written to the output and one
//     line is read from the input per attempt
//
// Either way an answer is normalized and validated by the prompt; rejected
// answers print the validation message and the question is asked again,
// up to MaxAttempts times.
//
// Example Usage
//
//	prompter := interactive.NewPrompter(nil)
//	engine, err := resolve.NewEngine(options, prompter, params)
package interactive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/CliForge/cliparams/pkg/param"
)

var (
	// ErrAborted is returned when the input ends and no answer was accepted.
	ErrAborted = errors.New("aborted: no more input")
	// ErrTooManyAttempts is returned when MaxAttempts answers were rejected.
	ErrTooManyAttempts = errors.New("too many invalid answers")

	errEndOfInput = errors.New("end of input")
)

// Prompter handles interactive user prompts.
type Prompter struct {
	input  io.Reader
	output io.Writer
	reader *bufio.Reader
	logger *slog.Logger
	// DisableColor disables colored output
	DisableColor bool
	// DisableInteractive forces line mode even on a TTY (for testing)
	DisableInteractive bool
	// MaxAttempts bounds the number of answers read for one question; zero
	// means no bound.
	MaxAttempts int
}

// PrompterConfig configures the Prompter.
type PrompterConfig struct {
	Input              io.Reader
	Output             io.Writer
	Logger             *slog.Logger
	DisableColor       bool
	DisableInteractive bool
	MaxAttempts        int
}

// NewPrompter creates a new Prompter with the given configuration.
// If config is nil, uses default configuration (stdin/stdout).
func NewPrompter(config *PrompterConfig) *Prompter {
	if config == nil {
		config = &PrompterConfig{}
	}

	input := config.Input
	if input == nil {
		input = os.Stdin
	}
	output := config.Output
	if output == nil {
		output = os.Stdout
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	p := &Prompter{
		input:              input,
		output:             output,
		reader:             bufio.NewReader(input),
		logger:             logger,
		DisableColor:       config.DisableColor,
		DisableInteractive: config.DisableInteractive,
		MaxAttempts:        config.MaxAttempts,
	}

	// Configure pterm
	if config.DisableColor {
		pterm.DisableColor()
	}

	return p
}

// IsTerminal reports whether questions are rendered with terminal widgets.
func (p *Prompter) IsTerminal() bool {
	if p.DisableInteractive {
		return false
	}
	f, ok := p.input.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Ask asks prompt until an answer passes validation and returns the
// validated value. A blank answer stands for prompt.BlankAnswer.
//
// In line mode the end of the input reads as one blank answer, which ends a
// list of answers. If that blank is rejected, Ask returns ErrAborted.
func (p *Prompter) Ask(prompt *param.Prompt) (interface{}, error) {
	if prompt == nil {
		return nil, fmt.Errorf("prompt cannot be nil")
	}

	var lastErr error
	endOfInput := false
	for attempt := 1; p.MaxAttempts <= 0 || attempt <= p.MaxAttempts; attempt++ {
		raw, err := p.read(prompt)
		if errors.Is(err, errEndOfInput) {
			if endOfInput {
				return nil, ErrAborted
			}
			endOfInput = true
			raw, err = nil, nil
		}
		if err != nil && !errors.Is(err, param.ErrInvalidValue) {
			return nil, err
		}

		var value interface{}
		if err == nil {
			if param.IsBlank(raw) {
				raw = prompt.BlankAnswer()
			}
			value, err = prompt.Validate(prompt.Normalize(raw))
			if err == nil {
				return value, nil
			}
		}

		lastErr = err
		p.logger.Debug("answer rejected", "param", prompt.Name, "attempt", attempt, "error", err)
		p.reportError(err)
	}

	return nil, fmt.Errorf("%w for --%s: %w", ErrTooManyAttempts, prompt.Name, lastErr)
}

// read returns one raw answer.
func (p *Prompter) read(prompt *param.Prompt) (interface{}, error) {
	if p.IsTerminal() {
		return p.readTerminal(prompt)
	}
	return p.readLine(prompt)
}

func (p *Prompter) readTerminal(prompt *param.Prompt) (interface{}, error) {
	switch prompt.Kind {
	case param.PromptConfirm:
		def, _ := prompt.Default.(bool)
		result, err := pterm.DefaultInteractiveConfirm.
			WithDefaultValue(def).
			Show(prompt.Message)
		if err != nil {
			return nil, fmt.Errorf("failed to read confirmation: %w", err)
		}
		return result, nil

	case param.PromptSelect:
		// A select widget cannot produce a blank answer.
		if !usesSelectWidget(prompt) {
			return p.readCompleted(prompt, staticCandidates(prompt.Choices))
		}
		if len(prompt.Choices) == 0 {
			return nil, fmt.Errorf("select prompt for --%s has no choices", prompt.Name)
		}

		sel := pterm.DefaultInteractiveSelect.WithOptions(prompt.Choices)
		if def, ok := prompt.Default.(string); ok && containsString(prompt.Choices, def) {
			sel = sel.WithDefaultOption(def)
		}
		result, err := sel.Show(prompt.Message)
		if err != nil {
			return nil, fmt.Errorf("failed to read selection: %w", err)
		}
		return result, nil

	default:
		if prompt.Autocomplete != nil {
			return p.readCompleted(prompt, prompt.Autocomplete)
		}
		result, err := pterm.DefaultInteractiveTextInput.
			WithMultiLine(false).
			Show(strings.TrimRight(prompt.Text, ": "))
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		return strings.TrimSpace(result), nil
	}
}

// readLine writes the question to the output and reads one line.
func (p *Prompter) readLine(prompt *param.Prompt) (interface{}, error) {
	fmt.Fprintf(p.output, "%s ", prompt.Text)
	if prompt.Kind == param.PromptSelect {
		fmt.Fprintln(p.output)
		for i, choice := range prompt.Choices {
			fmt.Fprintf(p.output, "  [%d] %s\n", i, choice)
		}
		fmt.Fprint(p.output, "> ")
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		fmt.Fprintln(p.output)
		if errors.Is(err, io.EOF) {
			return nil, errEndOfInput
		}
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return nil, nil
	}

	switch prompt.Kind {
	case param.PromptConfirm:
		return parseConfirmation(answer)
	case param.PromptSelect:
		return selectByIndex(prompt.Choices, answer), nil
	}
	return answer, nil
}

func (p *Prompter) reportError(err error) {
	if p.IsTerminal() {
		pterm.Error.Println(err.Error())
		return
	}
	fmt.Fprintln(p.output, pterm.Error.Sprint(err.Error()))
}

// usesSelectWidget reports whether a select prompt can be shown as a pterm
// select, which always returns one of the choices. Lists of selections and
// optional questions without a default need a blank answer and are read as
// completed text instead.
func usesSelectWidget(prompt *param.Prompt) bool {
	if prompt.Multiple {
		return false
	}
	return prompt.Required || !param.IsBlank(prompt.Default)
}

// parseConfirmation accepts y, yes, n and no in any case.
func parseConfirmation(answer string) (interface{}, error) {
	switch strings.ToLower(answer) {
	case "y", "yes", "true":
		return true, nil
	case "n", "no", "false":
		return false, nil
	}
	return nil, param.NewError(param.ErrInvalidValue, "", "Please answer yes or no, got %q", answer)
}

// selectByIndex maps a numeric answer onto the choice at that index, unless
// the answer is itself one of the choices.
func selectByIndex(choices []string, answer string) string {
	if containsString(choices, answer) {
		return answer
	}
	if i, err := strconv.Atoi(answer); err == nil && i >= 0 && i < len(choices) {
		return choices[i]
	}
	return answer
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
