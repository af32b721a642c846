package scanner

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/dublyo/dockergen/internal/errors"
)

// Scanner scans project directories
type Scanner interface {
	Scan(ctx context.Context, path string) (*ScanResult, error)
}

// Option configures the scanner
type Option func(*scanner)

type scanner struct {
	maxDepth    int
	maxFileSize int64
	ignorePaths map[string]struct{}
}

// New creates a new scanner
func New(opts ...Option) Scanner {
	s := &scanner{
		maxDepth:    2,
		maxFileSize: 1024 * 1024, // 1MB
		ignorePaths: map[string]struct{}{
			"node_modules": {},
			".git":         {},
			"__pycache__":  {},
			".venv":        {},
			"venv":         {},
			"dist":         {},
			"build":        {},
			".next":        {},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithMaxDepth sets how many directory levels below the root are listed
func WithMaxDepth(depth int) Option {
	return func(s *scanner) {
		s.maxDepth = depth
	}
}

// Scan implements Scanner with context cancellation support
func (s *scanner) Scan(ctx context.Context, path string) (*ScanResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ErrPathNotFound
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, errors.ErrNotADirectory
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	tree, err := s.scanFileTree(ctx, absPath)
	if err != nil {
		return nil, err
	}

	result := &ScanResult{
		Path:     absPath,
		FileTree: tree,
		rootPath: absPath,
	}
	result.Metadata = s.extractMetadata(result)

	return result, nil
}

func (s *scanner) scanFileTree(ctx context.Context, root string) (*FileTree, error) {
	tree := &FileTree{Root: root, MaxDepth: s.maxDepth}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip unreadable entries
		}
		if ctx.Err() != nil {
			return errors.ErrScanCancelled
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		depth := strings.Count(rel, "/")

		if d.IsDir() {
			if _, skip := s.ignorePaths[d.Name()]; skip || depth >= s.maxDepth {
				return filepath.SkipDir
			}
			tree.Dirs = append(tree.Dirs, rel)
			return nil
		}
		tree.Files = append(tree.Files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return tree, nil
}

func (s *scanner) extractMetadata(result *ScanResult) *Metadata {
	meta := &Metadata{}

	if data, ok := s.readManifest(result, "package.json"); ok {
		var pkg PackageJSON
		if json.Unmarshal(data, &pkg) == nil {
			meta.PackageJSON = &pkg
		}
	}
	if data, ok := s.readManifest(result, "requirements.txt"); ok {
		meta.Requirements = append(meta.Requirements, parseRequirements(string(data))...)
	}
	if data, ok := s.readManifest(result, "pyproject.toml"); ok {
		meta.Requirements = append(meta.Requirements, parsePyProjectDependencies(data)...)
	}

	return meta
}

func (s *scanner) readManifest(result *ScanResult, name string) ([]byte, bool) {
	if !result.HasFile(name) {
		return nil, false
	}
	info, err := os.Stat(filepath.Join(result.rootPath, name))
	if err != nil || info.Size() > s.maxFileSize {
		return nil, false
	}
	data, err := result.ReadFile(name)
	if err != nil {
		return nil, false
	}
	return data, true
}

// parseRequirements parses a requirements.txt file into lowercased package names
func parseRequirements(content string) []string {
	var reqs []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		if name := requirementName(line); name != "" {
			reqs = append(reqs, name)
		}
	}
	return reqs
}

// pyprojectManifest holds the dependency sections of a pyproject.toml file
type pyprojectManifest struct {
	Project struct {
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Dependencies map[string]any `toml:"dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// parsePyProjectDependencies extracts package names from the
// [project] dependencies array and the [tool.poetry.dependencies] table.
// Invalid TOML yields no dependencies.
func parsePyProjectDependencies(data []byte) []string {
	var manifest pyprojectManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil
	}

	var deps []string
	for _, spec := range manifest.Project.Dependencies {
		if name := requirementName(spec); name != "" {
			deps = append(deps, name)
		}
	}

	poetry := make([]string, 0, len(manifest.Tool.Poetry.Dependencies))
	for name := range manifest.Tool.Poetry.Dependencies {
		if name = strings.ToLower(name); name != "python" {
			poetry = append(poetry, name)
		}
	}
	sort.Strings(poetry)

	return append(deps, poetry...)
}

func requirementName(spec string) string {
	parts := strings.FieldsFunc(spec, func(r rune) bool {
		return r == '=' || r == '>' || r == '<' || r == '~' || r == '!' || r == '[' || r == ';' || r == ' '
	})
	if len(parts) == 0 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(parts[0]))
}
