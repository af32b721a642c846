// Package form holds the state of one interactive generation session and
// the prompt flow that drives it.
package form

import (
	"go.uber.org/zap"

	"github.com/dublyo/dockergen/frameworks"
	"github.com/dublyo/dockergen/internal/clipboard"
	"github.com/dublyo/dockergen/internal/generator"
	"github.com/dublyo/dockergen/internal/usage"
)

// Defaults are the initial version values of a session
type Defaults struct {
	NodeVersion   string
	PythonVersion string
}

// Session is the in-memory form state: one active framework, one version per
// family and the currently displayed Dockerfile.
type Session struct {
	gen           generator.Generator
	framework     frameworks.Key
	nodeVersion   string
	pythonVersion string
	dockerfile    string
}

// NewSession creates a session with no framework selected
func NewSession(gen generator.Generator, defaults Defaults) *Session {
	if defaults.NodeVersion == "" {
		defaults.NodeVersion = frameworks.DefaultNodeVersion
	}
	if defaults.PythonVersion == "" {
		defaults.PythonVersion = frameworks.DefaultPythonVersion
	}
	return &Session{
		gen:           gen,
		nodeVersion:   defaults.NodeVersion,
		pythonVersion: defaults.PythonVersion,
	}
}

// SetFramework activates key and clears the displayed Dockerfile
func (s *Session) SetFramework(key frameworks.Key) {
	s.framework = key
	s.dockerfile = ""
}

// Framework returns the active framework key, "" when none is selected
func (s *Session) Framework() frameworks.Key {
	return s.framework
}

// Family returns the family of the active framework, "" when unknown
func (s *Session) Family() frameworks.Family {
	f, ok := s.gen.Lookup(s.framework)
	if !ok {
		return ""
	}
	return f.Family
}

// SetVersion stores v in the version slot of the active family.
// Without a known framework there is no slot and the call is ignored.
func (s *Session) SetVersion(v string) {
	switch s.Family() {
	case frameworks.FamilyNode:
		s.nodeVersion = v
	case frameworks.FamilyPython:
		s.pythonVersion = v
	}
}

// Version returns the version of the active family
func (s *Session) Version() string {
	switch s.Family() {
	case frameworks.FamilyNode:
		return s.nodeVersion
	case frameworks.FamilyPython:
		return s.pythonVersion
	}
	return ""
}

// NodeVersion returns the Node.js version slot
func (s *Session) NodeVersion() string { return s.nodeVersion }

// PythonVersion returns the Python version slot
func (s *Session) PythonVersion() string { return s.pythonVersion }

// CanGenerate reports whether a framework is selected
func (s *Session) CanGenerate() bool {
	return s.framework != ""
}

// Generate replaces the displayed Dockerfile with a fresh rendering and returns it
func (s *Session) Generate() string {
	s.dockerfile = s.gen.Generate(s.framework, s.Version())
	return s.dockerfile
}

// Dockerfile returns the displayed Dockerfile, "" before the first Generate
func (s *Session) Dockerfile() string {
	return s.dockerfile
}

// Copy writes the displayed Dockerfile to the clipboard. Failures are logged
// and reported as false.
func (s *Session) Copy(w clipboard.Writer, logger *zap.Logger) bool {
	if s.dockerfile == "" {
		return false
	}
	return clipboard.Copy(w, s.dockerfile, logger)
}

// Instructions returns the usage steps for the active framework
func (s *Session) Instructions() (usage.Instructions, bool) {
	f, ok := s.gen.Lookup(s.framework)
	if !ok {
		return usage.Instructions{}, false
	}
	return usage.For(f), true
}
