// Package registry holds the framework catalogue.
package registry

import (
	"sort"
	"sync"

	"github.com/dublyo/dockergen/frameworks"
)

// Registry holds all registered frameworks
type Registry struct {
	mu         sync.RWMutex
	frameworks map[frameworks.Key]frameworks.Framework
	ordered    []frameworks.Key // Maintains registration order
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		frameworks: make(map[frameworks.Key]frameworks.Framework),
		ordered:    make([]frameworks.Key, 0),
	}
}

// Register adds a framework to the registry. Registering an existing key
// replaces it in place.
func (r *Registry) Register(f frameworks.Framework) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.frameworks[f.Key]; !exists {
		r.ordered = append(r.ordered, f.Key)
	}
	r.frameworks[f.Key] = f
}

// Get returns a framework by key
func (r *Registry) Get(key frameworks.Key) (frameworks.Framework, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.frameworks[key]
	return f, ok
}

// Frameworks returns all registered frameworks in registration order
func (r *Registry) Frameworks() []frameworks.Framework {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]frameworks.Framework, 0, len(r.ordered))
	for _, key := range r.ordered {
		result = append(result, r.frameworks[key])
	}
	return result
}

// Keys returns all registered keys in registration order
func (r *Registry) Keys() []frameworks.Key {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]frameworks.Key, len(r.ordered))
	copy(result, r.ordered)
	return result
}

// ByFamily returns frameworks for a specific family
func (r *Registry) ByFamily(family frameworks.Family) []frameworks.Framework {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []frameworks.Framework
	for _, key := range r.ordered {
		if f := r.frameworks[key]; f.Family == family {
			result = append(result, f)
		}
	}
	return result
}

// Families returns all unique families, sorted
func (r *Registry) Families() []frameworks.Family {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[frameworks.Family]struct{})
	var families []frameworks.Family
	for _, f := range r.frameworks {
		if _, ok := seen[f.Family]; !ok {
			seen[f.Family] = struct{}{}
			families = append(families, f.Family)
		}
	}
	sort.Slice(families, func(i, j int) bool { return families[i] < families[j] })
	return families
}

// Count returns the number of registered frameworks
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.frameworks)
}
