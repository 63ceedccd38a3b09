package param

import "fmt"

// Bool is a yes/no parameter. On the command line it is a flag without a
// value; interactively it is a confirmation question.
type Bool struct {
	base
}

// NewBool declares a boolean parameter. Its default is false.
func NewBool(name string) *Bool {
	b := &Bool{base: newBase(name)}
	b.def = false
	return b
}

// Mode returns ModeNone.
func (p *Bool) Mode() Mode { return ModeNone }

// Multiple always returns false: a confirmation has no blank answer to end
// a list with.
func (p *Bool) Multiple() bool { return false }

// Prompt returns a confirmation prompt rendering "y/N" or "Y/n" depending on
// the default.
func (p *Bool) Prompt() *Prompt {
	def, _ := p.def.(bool)
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	return &Prompt{
		Kind:     PromptConfirm,
		Name:     p.name,
		Message:  p.description,
		Text:     fmt.Sprintf("%s? [%s]", p.description, hint),
		Default:  def,
		Required: p.required,
	}
}
