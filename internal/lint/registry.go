package lint

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mikededo/sort-svelte-attributes/internal/config"
)

// Factory builds a rule from the loaded configuration
type Factory func(cfg *config.Config) (Rule, error)

// Definition describes a registered rule
type Definition struct {
	Name        string
	Description string
	Fixable     bool
	New         Factory
}

var globalRegistry = &Registry{
	definitions: make(map[string]Definition),
}

type Registry struct {
	mu          sync.RWMutex
	definitions map[string]Definition
}

func GlobalRegistry() *Registry {
	return globalRegistry
}

func Register(d Definition) {
	globalRegistry.Register(d)
}

func (reg *Registry) Register(d Definition) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, exists := reg.definitions[d.Name]; exists {
		panic(fmt.Sprintf("sort-svelte-attributes: duplicate rule registration: %s", d.Name))
	}
	reg.definitions[d.Name] = d
}

func (reg *Registry) Get(name string) (Definition, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	d, ok := reg.definitions[name]
	return d, ok
}

// All returns the definitions sorted by name
func (reg *Registry) All() []Definition {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	out := make([]Definition, 0, len(reg.definitions))
	for _, d := range reg.definitions {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Build constructs every registered rule from cfg. Configuration errors are
// returned as soon as one rule rejects cfg.
func (reg *Registry) Build(cfg *config.Config) ([]Rule, error) {
	var rules []Rule
	for _, d := range reg.All() {
		r, err := d.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("configuring %s: %w", d.Name, err)
		}
		rules = append(rules, r)
	}
	return rules, nil
}
