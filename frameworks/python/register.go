package python

import (
	"github.com/dublyo/dockergen/internal/registry"
)

// RegisterAll registers all Python frameworks with the registry
func RegisterAll(r *registry.Registry) {
	r.Register(FastAPI())
	r.Register(Django())
}
