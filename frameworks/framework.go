// Package frameworks defines the framework catalogue entries used to generate Dockerfiles.
// Copyright (c) 2026 Dublyo. All rights reserved.
// Licensed under the MIT License.
package frameworks

// Key identifies a framework, e.g. "react-vite"
type Key string

// Built-in framework keys
const (
	ReactVite Key = "react-vite"
	NextJS    Key = "nextjs"
	Express   Key = "express"
	FastAPI   Key = "fastapi"
	Django    Key = "django"
)

// Family is the runtime family that decides which version a framework uses
type Family string

const (
	FamilyNode   Family = "node"
	FamilyPython Family = "python"
)

// Default version strings per family
const (
	DefaultNodeVersion   = "20-alpine"
	DefaultPythonVersion = "3.11-slim"
)

// DefaultVersion returns the default version string for the family
func (f Family) DefaultVersion() string {
	switch f {
	case FamilyNode:
		return DefaultNodeVersion
	case FamilyPython:
		return DefaultPythonVersion
	}
	return ""
}

// Valid reports whether f is a known family
func (f Family) Valid() bool {
	return f == FamilyNode || f == FamilyPython
}

// Framework is a fixed Dockerfile template together with its display metadata.
// Template is a text/template source; the version string is available as {{.Version}}.
type Framework struct {
	Key         Key
	Name        string // e.g., "React Vite"
	Label       string // e.g., "React with Vite"
	Family      Family
	Port        int // Port exposed by the image
	HostPort    int // Port suggested for "docker run -p"
	Description string
	URL         string
	Template    string
	Markers     Markers
}

// Markers are the project hints used to suggest a framework
type Markers struct {
	// package.json dependencies that must all be present
	Dependencies []string

	// requirements.txt / pyproject.toml packages, at least one must be present
	Requirements []string

	// Files that raise confidence when present
	Files []string
}

// VersionHelp returns the prompt help text for the framework's version input
func (f Framework) VersionHelp() (label, help, examples string) {
	switch f.Family {
	case FamilyNode:
		return "Node Version", "Specify the Node.js version for the build environment", "Examples: 20-alpine, 18-alpine, 16"
	case FamilyPython:
		return "Python Version", "Specify the Python version for the environment", "Examples: 3.11-slim, 3.10-slim, 3.9-alpine"
	}
	return "Version", "Specify the base image tag", ""
}
