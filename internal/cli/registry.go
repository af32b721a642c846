package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dublyo/dockergen/frameworks"
	"github.com/dublyo/dockergen/frameworks/nodejs"
	"github.com/dublyo/dockergen/frameworks/python"
	"github.com/dublyo/dockergen/internal/config"
	"github.com/dublyo/dockergen/internal/generator"
	"github.com/dublyo/dockergen/internal/registry"
)

// setupRegistry registers the built-in frameworks followed by the ones declared in cfg
func setupRegistry(cfg *config.Config) (*registry.Registry, error) {
	r := registry.New()
	nodejs.RegisterAll(r)
	python.RegisterAll(r)

	for _, fc := range cfg.Frameworks {
		f, err := cfg.Framework(fc)
		if err != nil {
			return nil, fmt.Errorf("framework %q: %w", fc.Key, err)
		}
		if _, err := generator.Parse(string(f.Key), f.Template); err != nil {
			return nil, fmt.Errorf("framework %q: %w", fc.Key, err)
		}
		r.Register(f)
	}

	return r, nil
}

// knownKeys returns the registered keys as a sorted, comma separated list
func knownKeys(r *registry.Registry) string {
	keys := r.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// defaultVersion resolves the version to use for a framework when none was given
func defaultVersion(cfg *config.Config, f frameworks.Framework) string {
	if v := cfg.DefaultVersion(f.Family); v != "" {
		return v
	}
	return f.Family.DefaultVersion()
}
