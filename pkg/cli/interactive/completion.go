package interactive

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/CliForge/cliparams/pkg/param"
)

// candidateCompleter adapts a param.Completer to readline's AutoCompleter.
type candidateCompleter struct {
	complete param.Completer
}

// Do implements the AutoCompleter interface
func (c candidateCompleter) Do(line []rune, pos int) ([][]rune, int) {
	typed := string(line[:pos])

	var suffixes [][]rune
	for _, candidate := range c.complete(typed) {
		if strings.HasPrefix(candidate, typed) && candidate != typed {
			suffixes = append(suffixes, []rune(candidate[len(typed):]))
		}
	}
	return suffixes, len(line[:pos])
}

// staticCandidates completes against a fixed list.
func staticCandidates(choices []string) param.Completer {
	return func(string) []string {
		return choices
	}
}

// readCompleted reads one line with TAB completion.
func (p *Prompter) readCompleted(prompt *param.Prompt, complete param.Completer) (interface{}, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt.Text + " ",
		AutoComplete:    candidateCompleter{complete: complete},
		InterruptPrompt: "^C",
		Stdout:          p.output,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()

	line, err := rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt), errors.Is(err, io.EOF):
		return nil, ErrAborted
	case err != nil:
		return nil, fmt.Errorf("readline error: %w", err)
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return nil, nil
	}
	return answer, nil
}
