// Package loader resolves command names to commands held in a service
// container.
//
// The loader maps each command name to a service id. A command is looked up
// in the container under its id; ids the container does not hold may be
// built by a factory registered for the id instead.
package loader

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/CliForge/cliparams/pkg/command"
)

// Container holds services by id.
type Container interface {
	Has(id string) bool
	Get(id string) (interface{}, error)
}

// Factory builds a command that is not present in the container.
type Factory func() (*cobra.Command, error)

// Loader loads commands by name.
type Loader struct {
	mu        sync.RWMutex
	container Container
	commands  map[string]string
	factories map[string]Factory
}

// New creates a loader over container. commands maps command names to
// service ids.
func New(container Container, commands map[string]string) *Loader {
	l := &Loader{
		container: container,
		commands:  make(map[string]string, len(commands)),
		factories: make(map[string]Factory),
	}
	for name, id := range commands {
		l.commands[name] = id
	}
	return l
}

// Register maps a command name to a service id.
func (l *Loader) Register(name, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if name == "" || id == "" {
		return fmt.Errorf("command name and service id cannot be empty")
	}
	if existing, exists := l.commands[name]; exists {
		return fmt.Errorf("command '%s' is already mapped to '%s'", name, existing)
	}

	l.commands[name] = id
	return nil
}

// RegisterFactory sets the factory used for id when the container does
// not hold it.
func (l *Loader) RegisterFactory(id string, factory Factory) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.factories[id] = factory
}

// Has reports whether name is mapped to a service. A mapped command counts
// as known even when the container does not hold it; Get reports whether it
// can actually be loaded.
func (l *Loader) Has(name string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.commands[name]
	return ok
}

// Get loads the named command and names it after the mapping.
func (l *Loader) Get(name string) (*cobra.Command, error) {
	l.mu.RLock()
	id, ok := l.commands[name]
	factory := l.factories[id]
	l.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("command '%s' not found", name)
	}

	var cmd *cobra.Command
	switch {
	case l.container != nil && l.container.Has(id):
		service, err := l.container.Get(id)
		if err != nil {
			return nil, fmt.Errorf("failed to load command '%s' from service '%s': %w", name, id, err)
		}
		if cmd, err = asCommand(service); err != nil {
			return nil, fmt.Errorf("service '%s' for command '%s': %w", id, name, err)
		}

	case factory != nil:
		var err error
		if cmd, err = factory(); err != nil {
			return nil, fmt.Errorf("failed to build command '%s' from service '%s': %w", name, id, err)
		}
		if cmd == nil {
			return nil, fmt.Errorf("factory for service '%s' returned no command for '%s'", id, name)
		}

	default:
		return nil, fmt.Errorf("command '%s' maps to service '%s', which is neither in the container nor constructible", name, id)
	}

	rename(cmd, name)
	return cmd, nil
}

// Names returns all mapped command names, sorted.
func (l *Loader) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.commands))
	for name := range l.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Commands loads every mapped command.
func (l *Loader) Commands() ([]*cobra.Command, error) {
	names := l.Names()
	cmds := make([]*cobra.Command, 0, len(names))
	for _, name := range names {
		cmd, err := l.Get(name)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

func asCommand(service interface{}) (*cobra.Command, error) {
	switch c := service.(type) {
	case *cobra.Command:
		return c, nil
	case *command.Command:
		return c.Command, nil
	case nil:
		return nil, fmt.Errorf("service is nil")
	default:
		return nil, fmt.Errorf("%T is not a command", service)
	}
}

// rename replaces the command name in Use, keeping the argument synopsis.
func rename(cmd *cobra.Command, name string) {
	if i := strings.IndexByte(cmd.Use, ' '); i >= 0 {
		cmd.Use = name + cmd.Use[i:]
		return
	}
	cmd.Use = name
}
