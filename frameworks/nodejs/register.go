package nodejs

import (
	"github.com/dublyo/dockergen/internal/registry"
)

// RegisterAll registers all Node.js frameworks with the registry
func RegisterAll(r *registry.Registry) {
	r.Register(ReactVite())
	r.Register(NextJS())
	r.Register(Express())
}
