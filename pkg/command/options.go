package command

import (
	"github.com/spf13/pflag"
)

// FlagOptions is the option store of one invocation, backed by the parsed
// flags of a command. Flags the user did not set read as nil, so declared
// defaults are applied by resolution rather than by pflag. Values written
// with SetOption take precedence over the flags.
type FlagOptions struct {
	flags       *pflag.FlagSet
	overrides   map[string]interface{}
	interactive bool
}

// NewFlagOptions creates an option store over parsed flags.
func NewFlagOptions(flags *pflag.FlagSet, interactive bool) *FlagOptions {
	return &FlagOptions{
		flags:       flags,
		overrides:   make(map[string]interface{}),
		interactive: interactive,
	}
}

// Option returns the value for name, or nil when the flag is unset or
// unknown.
func (o *FlagOptions) Option(name string) interface{} {
	if v, ok := o.overrides[name]; ok {
		return v
	}
	if o.flags == nil {
		return nil
	}

	f := o.flags.Lookup(name)
	if f == nil || !f.Changed {
		return nil
	}

	v, err := flagValue(o.flags, f)
	if err != nil {
		return f.Value.String()
	}
	return v
}

// SetOption stores value for name.
func (o *FlagOptions) SetOption(name string, value interface{}) {
	o.overrides[name] = value
}

// Interactive reports whether questions may be asked.
func (o *FlagOptions) Interactive() bool {
	return o.interactive
}
