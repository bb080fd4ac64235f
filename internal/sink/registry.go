package sink

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry = make(map[string]Sink)
	mu       sync.RWMutex
)

// Register adds a sink to the registry.
func Register(s Sink) {
	mu.Lock()
	defer mu.Unlock()
	registry[s.Name()] = s
}

// Get retrieves a sink by name.
func Get(name string) (Sink, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown sink: %s", name)
	}
	return s, nil
}

// List returns all registered sink names in sorted order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all registered sinks sorted by name.
func All() []Sink {
	names := List()

	mu.RLock()
	defer mu.RUnlock()

	sinks := make([]Sink, 0, len(names))
	for _, name := range names {
		sinks = append(sinks, registry[name])
	}
	return sinks
}
