// Package commands holds the demo commands shipped with cliparams.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/CliForge/cliparams/pkg/loader"
)

// Service ids of the demo commands.
const (
	GreetService   = "GreetCommand"
	SumService     = "SumCommand"
	InspectService = "InspectCommand"
)

// Register makes the demo commands available to ld. Greet and sum are
// container services; inspect is only known to the loader as a factory.
func Register(container *loader.MapContainer, ld *loader.Loader) {
	container.SetConstructor(GreetService, func() (interface{}, error) {
		return NewGreetCommand()
	})
	container.SetConstructor(SumService, func() (interface{}, error) {
		return NewSumCommand()
	})
	ld.RegisterFactory(InspectService, func() (*cobra.Command, error) {
		cmd, err := NewInspectCommand()
		if err != nil {
			return nil, err
		}
		return cmd.Command, nil
	})
}
