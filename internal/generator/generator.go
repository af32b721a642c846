// Package generator renders Dockerfiles from the framework catalogue.
package generator

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"text/template"

	"go.uber.org/zap"

	"github.com/dublyo/dockergen/frameworks"
	"github.com/dublyo/dockergen/internal/errors"
	"github.com/dublyo/dockergen/internal/registry"
)

// Placeholder is returned by Generate when no known framework is selected
const Placeholder = "# Please select a framework"

// TemplateSuffix is the file suffix of override templates in a template directory
const TemplateSuffix = ".Dockerfile.tmpl"

// Generator renders Dockerfiles
type Generator interface {
	// Generate never fails: unknown keys and render errors yield Placeholder.
	Generate(key frameworks.Key, version string) string
	Render(key frameworks.Key, version string) (*Output, error)
	Lookup(key frameworks.Key) (frameworks.Framework, bool)
}

// Output is a rendered Dockerfile
type Output struct {
	Framework  frameworks.Framework
	Version    string
	Dockerfile string
}

// TemplateData is the data passed to every template
type TemplateData struct {
	Version string
	Key     frameworks.Key
	Family  frameworks.Family
	Port    int
}

// Option configures the generator
type Option func(*generator)

type generator struct {
	registry    *registry.Registry
	templateDir string
	logger      *zap.Logger

	mu     sync.Mutex
	parsed map[frameworks.Key]parsedTemplate
}

type parsedTemplate struct {
	source string
	tmpl   *template.Template
}

// New creates a new generator backed by the registry
func New(r *registry.Registry, opts ...Option) Generator {
	g := &generator{
		registry: r,
		logger:   zap.NewNop(),
		parsed:   make(map[frameworks.Key]parsedTemplate),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// WithTemplateDir sets a directory whose <key>.Dockerfile.tmpl files override built-in templates
func WithTemplateDir(dir string) Option {
	return func(g *generator) {
		g.templateDir = dir
	}
}

// WithLogger sets the logger used for render diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(g *generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Lookup returns the framework registered for key
func (g *generator) Lookup(key frameworks.Key) (frameworks.Framework, bool) {
	return g.registry.Get(key)
}

// Generate returns the Dockerfile for key with version interpolated
func (g *generator) Generate(key frameworks.Key, version string) string {
	output, err := g.Render(key, version)
	if err != nil {
		if !stderrors.Is(err, errors.ErrUnknownFramework) && !stderrors.Is(err, errors.ErrNoFramework) {
			g.logger.Warn("dockerfile render failed",
				zap.String("framework", string(key)),
				zap.Error(err),
			)
		}
		return Placeholder
	}
	return output.Dockerfile
}

// Render returns the Dockerfile for key, or ErrUnknownFramework
func (g *generator) Render(key frameworks.Key, version string) (*Output, error) {
	if key == "" {
		return nil, errors.ErrNoFramework
	}
	f, ok := g.registry.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownFramework, key)
	}

	source, err := g.templateSource(f)
	if err != nil {
		return nil, err
	}
	tmpl, err := g.parse(f.Key, source)
	if err != nil {
		return nil, err
	}

	dockerfile, err := execute(tmpl, TemplateData{
		Version: version,
		Key:     f.Key,
		Family:  f.Family,
		Port:    f.Port,
	})
	if err != nil {
		return nil, err
	}

	return &Output{
		Framework:  f,
		Version:    version,
		Dockerfile: dockerfile,
	}, nil
}

// templateSource prefers an override file from the template directory
func (g *generator) templateSource(f frameworks.Framework) (string, error) {
	if g.templateDir != "" {
		data, err := os.ReadFile(filepath.Join(g.templateDir, string(f.Key)+TemplateSuffix))
		if err == nil {
			return string(data), nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %v", errors.ErrTemplateNotFound, err)
		}
	}
	if f.Template == "" {
		return "", fmt.Errorf("%w: %s", errors.ErrTemplateNotFound, f.Key)
	}
	return f.Template, nil
}

func (g *generator) parse(key frameworks.Key, source string) (*template.Template, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if cached, ok := g.parsed[key]; ok && cached.source == source {
		return cached.tmpl, nil
	}

	tmpl, err := Parse(string(key), source)
	if err != nil {
		return nil, err
	}
	g.parsed[key] = parsedTemplate{source: source, tmpl: tmpl}
	return tmpl, nil
}

// Parse parses a Dockerfile template with the generator's function map
func Parse(name, source string) (*template.Template, error) {
	tmpl, err := template.New(name).Funcs(funcMap).Option("missingkey=error").Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrTemplateInvalid, err)
	}
	return tmpl, nil
}

var funcMap = template.FuncMap{
	"default": func(def, val interface{}) interface{} {
		if val == nil || val == "" {
			return def
		}
		return val
	},
	"lower":      strings.ToLower,
	"upper":      strings.ToUpper,
	"trimSuffix": strings.TrimSuffix,
	"replace":    strings.ReplaceAll,
}

func execute(tmpl *template.Template, data TemplateData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}
	return buf.String(), nil
}

// WriteFile writes the Dockerfile to path. An existing file is only replaced when overwrite is set.
func (o *Output) WriteFile(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", errors.ErrFileExists, path)
		}
	}

	content := o.Dockerfile
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", errors.ErrWriteFailed, path, err)
	}
	return nil
}
