package livestock

import (
	"fmt"
	"sync"
)

var (
	registry []Species
	mu       sync.RWMutex
)

// Register adds a species to the registry. Registration order is
// preserved: it determines both category emission order and multiplier
// rule precedence.
func Register(sp Species) {
	mu.Lock()
	defer mu.Unlock()
	registry = append(registry, sp)
}

// Get retrieves a species by name.
func Get(name string) (Species, error) {
	mu.RLock()
	defer mu.RUnlock()

	for _, sp := range registry {
		if sp.Name == name {
			return sp, nil
		}
	}
	return Species{}, fmt.Errorf("unknown species: %s", name)
}

// All returns all registered species in registration order.
func All() []Species {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Species, len(registry))
	copy(out, registry)
	return out
}

// Categories returns every sale category across all species, in
// registration order. Duplicates are kept: a name listed by two species
// produces a row for each listing, as the seed data set always has.
func Categories() []string {
	mu.RLock()
	defer mu.RUnlock()

	var names []string
	for _, sp := range registry {
		names = append(names, sp.Categories...)
	}
	return names
}

// Rules returns the combined multiplier rule list across all species, in
// registration order.
func Rules() []Rule {
	mu.RLock()
	defer mu.RUnlock()

	var rules []Rule
	for _, sp := range registry {
		rules = append(rules, sp.Rules...)
	}
	return rules
}
