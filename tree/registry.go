package tree

import (
	"fmt"
	"sort"
	"strings"
)

// Registry holds registered tree parsers.
type Registry struct {
	parsers map[string]Parser
}

// DefaultRegistry is the global parser registry.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a new parser registry.
func NewRegistry() *Registry {
	return &Registry{
		parsers: make(map[string]Parser),
	}
}

// Register adds a parser to the registry.
func (r *Registry) Register(p Parser) {
	r.parsers[strings.ToLower(p.Name())] = p
}

// GetParser retrieves a parser by name.
func (r *Registry) GetParser(name string) (Parser, error) {
	p, ok := r.parsers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown parser: %s", name)
	}
	return p, nil
}

// List returns all registered parser names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds a parser to the default registry.
func Register(p Parser) {
	DefaultRegistry.Register(p)
}

// GetParser retrieves a parser from the default registry.
func GetParser(name string) (Parser, error) {
	return DefaultRegistry.GetParser(name)
}

// List returns the parser names in the default registry.
func List() []string {
	return DefaultRegistry.List()
}
