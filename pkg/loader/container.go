package loader

import (
	"fmt"
	"sync"
)

// Constructor builds a service on first use.
type Constructor func() (interface{}, error)

// MapContainer is an in-memory Container. Services are either set directly
// or built once by a constructor and cached.
type MapContainer struct {
	mu           sync.Mutex
	services     map[string]interface{}
	constructors map[string]Constructor
}

// NewMapContainer creates an empty container.
func NewMapContainer() *MapContainer {
	return &MapContainer{
		services:     make(map[string]interface{}),
		constructors: make(map[string]Constructor),
	}
}

// Set stores a service instance under id.
func (c *MapContainer) Set(id string, service interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.services[id] = service
	delete(c.constructors, id)
}

// SetConstructor registers a lazily built service under id.
func (c *MapContainer) SetConstructor(id string, constructor Constructor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.services, id)
	c.constructors[id] = constructor
}

// Has reports whether id is set or constructible.
func (c *MapContainer) Has(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.services[id]; ok {
		return true
	}
	_, ok := c.constructors[id]
	return ok
}

// Get returns the service for id, constructing it on first use.
func (c *MapContainer) Get(id string) (interface{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if service, ok := c.services[id]; ok {
		return service, nil
	}

	constructor, ok := c.constructors[id]
	if !ok {
		return nil, fmt.Errorf("service '%s' not found", id)
	}

	service, err := constructor()
	if err != nil {
		return nil, fmt.Errorf("failed to construct service '%s': %w", id, err)
	}

	c.services[id] = service
	delete(c.constructors, id)
	return service, nil
}
