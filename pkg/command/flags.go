package command

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/CliForge/cliparams/pkg/param"
)

// Flag annotations set on every parameter flag.
const (
	AnnotationShortcuts = "cliparams:shortcuts"
	AnnotationRequired  = "cliparams:required"
	AnnotationChoices   = "cliparams:choices"
)

// NoInteractionFlag disables questions for one invocation.
const NoInteractionFlag = "no-interaction"

// reservedShorthands are taken by the root command's persistent flags.
var reservedShorthands = map[string]bool{"h": true, "n": true, "o": true, "v": true}

// FlagBuilder registers parameter declarations as flags on a command.
type FlagBuilder struct {
	// aliases maps every multi-letter shortcut to its flag name.
	aliases map[string]string
}

// NewFlagBuilder creates a new flag builder.
func NewFlagBuilder() *FlagBuilder {
	return &FlagBuilder{aliases: make(map[string]string)}
}

// AddParamFlag adds the flag for p to cmd. Bool parameters become value-less
// flags; every other kind takes a string, or a repeatable string when the
// parameter allows multiple values. The first single-letter shortcut is the
// flag shorthand; longer shortcuts are accepted as alternative flag names.
func (fb *FlagBuilder) AddParamFlag(cmd *cobra.Command, p param.Param) error {
	flags := cmd.Flags()
	name := p.Name()

	if flags.Lookup(name) != nil || fb.aliases[name] != "" {
		return param.NewError(param.ErrInvalidConfiguration, name, "flag --%s is already defined", name)
	}

	shorthand, aliases := splitShortcuts(p.Shortcut())
	if shorthand != "" && (reservedShorthands[shorthand] || flags.ShorthandLookup(shorthand) != nil) {
		return param.NewError(param.ErrInvalidConfiguration, name, "shortcut -%s of --%s is already in use", shorthand, name)
	}
	for _, alias := range aliases {
		if flags.Lookup(alias) != nil || fb.aliases[alias] != "" {
			return param.NewError(param.ErrInvalidConfiguration, name, "shortcut --%s of --%s is already in use", alias, name)
		}
	}

	usage := p.Description()
	switch {
	case p.Mode() == param.ModeNone:
		def, _ := p.Default().(bool)
		flags.BoolP(name, shorthand, def, usage)
	case p.Multiple():
		flags.StringArrayP(name, shorthand, nil, usage)
	default:
		flags.StringP(name, shorthand, p.Prompt().DefaultHint(), usage)
	}

	for _, alias := range aliases {
		fb.aliases[alias] = name
	}
	if len(aliases) > 0 {
		flags.SetNormalizeFunc(fb.normalize)
	}

	if len(p.Shortcut()) > 0 {
		_ = flags.SetAnnotation(name, AnnotationShortcuts, p.Shortcut())
	}
	if p.Required() {
		_ = flags.SetAnnotation(name, AnnotationRequired, []string{"true"})
	}
	if choice, ok := p.(*param.Choice); ok {
		_ = flags.SetAnnotation(name, AnnotationChoices, choice.Choices())
	}
	registerCompletion(cmd, p)

	return nil
}

// registerCompletion offers the values a question would complete to shell
// completion of the flag.
func registerCompletion(cmd *cobra.Command, p param.Param) {
	prompt := p.Prompt()
	switch {
	case len(prompt.Choices) > 0:
		choices := prompt.Choices
		_ = cmd.RegisterFlagCompletionFunc(p.Name(), func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return choices, cobra.ShellCompDirectiveNoFileComp
		})
	case prompt.Autocomplete != nil:
		complete := prompt.Autocomplete
		_ = cmd.RegisterFlagCompletionFunc(p.Name(), func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return complete(toComplete), cobra.ShellCompDirectiveNoSpace
		})
	}
}

// AddGlobalFlags adds the flags every command inherits.
func (fb *FlagBuilder) AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolP(NoInteractionFlag, "n", false, "Do not ask any interactive question")
}

func (fb *FlagBuilder) normalize(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if target, ok := fb.aliases[name]; ok {
		return pflag.NormalizedName(target)
	}
	return pflag.NormalizedName(name)
}

// splitShortcuts returns the first single-letter shortcut and the remaining
// multi-letter ones. Additional single letters cannot be represented as
// pflag shorthands and are dropped.
func splitShortcuts(shortcuts []string) (string, []string) {
	var shorthand string
	var aliases []string
	for _, s := range shortcuts {
		if len(s) == 1 {
			if shorthand == "" {
				shorthand = s
			}
			continue
		}
		aliases = append(aliases, s)
	}
	return shorthand, aliases
}

// flagValue returns the typed value of a changed flag.
func flagValue(flags *pflag.FlagSet, f *pflag.Flag) (interface{}, error) {
	switch f.Value.Type() {
	case "bool":
		return flags.GetBool(f.Name)
	case "stringArray":
		return flags.GetStringArray(f.Name)
	case "stringSlice":
		return flags.GetStringSlice(f.Name)
	case "string":
		return flags.GetString(f.Name)
	}
	return nil, fmt.Errorf("unsupported flag type %s for --%s", f.Value.Type(), f.Name)
}
