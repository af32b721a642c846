// Package scanner reads the project manifests used to suggest a framework.
package scanner

import (
	"os"
	"path/filepath"
	"strings"
)

// ScanResult contains the information extracted from a project directory
type ScanResult struct {
	Path     string
	FileTree *FileTree
	Metadata *Metadata
	rootPath string // For ReadFile operations
}

// ReadFile reads a file relative to the project root
func (s *ScanResult) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.rootPath, path))
}

// HasFile checks if a file exists in the scan result
func (s *ScanResult) HasFile(path string) bool {
	return s.FileTree.HasFile(path)
}

// FileTree lists the files found near the project root
type FileTree struct {
	Root     string
	Files    []string // slash-separated, relative to Root
	Dirs     []string
	MaxDepth int
	fileSet  map[string]struct{}
}

// HasFile checks if a file exists in the tree
func (ft *FileTree) HasFile(path string) bool {
	if ft.fileSet == nil {
		ft.fileSet = make(map[string]struct{}, len(ft.Files))
		for _, f := range ft.Files {
			ft.fileSet[f] = struct{}{}
		}
	}
	_, ok := ft.fileSet[path]
	return ok
}

// Metadata contains parsed manifest files
type Metadata struct {
	PackageJSON  *PackageJSON // package.json
	Requirements []string     // requirements.txt and pyproject.toml package names, lowercased
}

// PackageJSON represents a Node.js package.json file
type PackageJSON struct {
	Name            string            `json:"name"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Engines         struct {
		Node string `json:"node"`
	} `json:"engines"`
}

// HasDependency checks if a dependency exists (dev or regular)
func (p *PackageJSON) HasDependency(name string) bool {
	if p == nil {
		return false
	}
	if _, ok := p.Dependencies[name]; ok {
		return true
	}
	_, ok := p.DevDependencies[name]
	return ok
}

// HasRequirement checks if a Python package is listed
func (m *Metadata) HasRequirement(name string) bool {
	name = strings.ToLower(name)
	for _, req := range m.Requirements {
		if req == name {
			return true
		}
	}
	return false
}
