package resolve

import (
	"fmt"

	"github.com/CliForge/cliparams/pkg/param"
)

// Terminal asks one question and returns one answer. A nil answer means
// "no answer". Implementations may re-ask on validation failures before
// returning; the returned value has already been normalized and validated.
type Terminal interface {
	Ask(prompt *param.Prompt) (interface{}, error)
}

// ScriptedTerminal answers questions from a fixed list, running each answer
// through the prompt normalizer and validator and moving on to the next
// answer when validation fails, the way an interactive terminal re-prompts.
// Blank answers stand for Prompt.BlankAnswer.
// Once the script is exhausted every question gets a nil answer.
type ScriptedTerminal struct {
	Answers []interface{}
	// Asked records the text of every question, once per Ask call.
	Asked []string
	// Rejected records validation errors for rejected answers.
	Rejected []error
	next     int
}

// NewScriptedTerminal returns a terminal answering with answers in order.
func NewScriptedTerminal(answers ...interface{}) *ScriptedTerminal {
	return &ScriptedTerminal{Answers: answers}
}

// Ask returns the first scripted answer the prompt accepts.
func (s *ScriptedTerminal) Ask(prompt *param.Prompt) (interface{}, error) {
	s.Asked = append(s.Asked, prompt.Text)

	for s.next < len(s.Answers) {
		raw := s.Answers[s.next]
		s.next++
		if param.IsBlank(raw) {
			raw = prompt.BlankAnswer()
		}

		value, err := prompt.Validate(prompt.Normalize(raw))
		if err != nil {
			s.Rejected = append(s.Rejected, err)
			continue
		}
		return value, nil
	}

	return nil, nil
}

// Remaining returns the number of unused answers.
func (s *ScriptedTerminal) Remaining() int {
	return len(s.Answers) - s.next
}

// noTerminal is used when the engine has no terminal configured.
type noTerminal struct{}

func (noTerminal) Ask(prompt *param.Prompt) (interface{}, error) {
	return nil, fmt.Errorf("cannot ask for --%s: no terminal available", prompt.Name)
}
