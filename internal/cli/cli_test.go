package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dublyo/dockergen/internal/errors"
	"github.com/dublyo/dockergen/internal/prompt"
)

// writeConfig creates a config file that keeps tests away from the user's clipboard and home config
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dockergen.yml")
	require.NoError(t, os.WriteFile(path, []byte("clipboard:\n  enabled: false\n"+body), 0644))
	return path
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	for _, key := range []string{
		"DOCKERGEN_NODE_VERSION", "DOCKERGEN_PYTHON_VERSION", "DOCKERGEN_TEMPLATE_DIR",
		"DOCKERGEN_LOG_LEVEL", "DOCKERGEN_LOG_FORMAT", "DOCKERGEN_NO_CLIPBOARD",
	} {
		t.Setenv(key, "")
	}

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestGenerateDefaults(t *testing.T) {
	cfg := writeConfig(t, "")

	tests := []struct {
		key  string
		want []string
	}{
		{"react-vite", []string{"FROM node:20-alpine AS build", "FROM nginx:alpine", "EXPOSE 80"}},
		{"nextjs", []string{"FROM node:20-alpine AS build", "FROM node:20-alpine-slim"}},
		{"express", []string{"FROM node:20-alpine-slim"}},
		{"fastapi", []string{"FROM python:3.11-slim", "EXPOSE 8000"}},
		{"django", []string{"FROM python:3.11-slim", "libpq-dev"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			stdout, _, err := run(t, "--config", cfg, "generate", tt.key)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, stdout, w)
			}
		})
	}
}

func TestGenerateVersionFlag(t *testing.T) {
	cfg := writeConfig(t, "")

	stdout, _, err := run(t, "--config", cfg, "generate", "express", "--version", "18-alpine")
	require.NoError(t, err)
	assert.Contains(t, stdout, "FROM node:18-alpine AS build")
	assert.Contains(t, stdout, "FROM node:18-alpine-slim")
	assert.NotContains(t, stdout, "20-alpine")
}

func TestGenerateConfigDefaults(t *testing.T) {
	cfg := writeConfig(t, "defaults:\n  python_version: 3.12-slim\n")

	stdout, _, err := run(t, "--config", cfg, "generate", "django")
	require.NoError(t, err)
	assert.Contains(t, stdout, "FROM python:3.12-slim")
}

func TestRootShorthandGenerates(t *testing.T) {
	cfg := writeConfig(t, "")

	stdout, _, err := run(t, "--config", cfg, "fastapi")
	require.NoError(t, err)
	assert.Contains(t, stdout, "FROM python:3.11-slim")
}

func TestGenerateUnknownFramework(t *testing.T) {
	cfg := writeConfig(t, "")

	stdout, stderr, err := run(t, "--config", cfg, "generate", "rails")
	require.ErrorIs(t, err, errors.ErrUnknownFramework)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "available: django, express, fastapi, nextjs, react-vite")
}

func TestGenerateWritesFile(t *testing.T) {
	cfg := writeConfig(t, "")
	path := filepath.Join(t.TempDir(), "Dockerfile")

	stdout, stderr, err := run(t, "--config", cfg, "generate", "nextjs", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Wrote Next.js Dockerfile to")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# Build stage\n"))

	_, _, err = run(t, "--config", cfg, "generate", "nextjs", "-o", path)
	require.ErrorIs(t, err, errors.ErrFileExists)

	_, _, err = run(t, "--config", cfg, "generate", "express", "-o", path, "--force")
	require.NoError(t, err)
}

func TestGenerateJSON(t *testing.T) {
	cfg := writeConfig(t, "")

	stdout, _, err := run(t, "--config", cfg, "--json", "generate", "react-vite", "--usage")
	require.NoError(t, err)

	var out GenerateOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, "react-vite", out.Framework)
	assert.Equal(t, "node", out.Family)
	assert.Equal(t, "20-alpine", out.Version)
	assert.Contains(t, out.Dockerfile, "FROM node:20-alpine AS build")
	require.NotNil(t, out.Usage)
	assert.Equal(t, "docker run -p 8080:80 my-react-vite-app", out.Usage.Run)
	assert.Equal(t, "http://localhost:8080", out.Usage.URL)
}

func TestGenerateCopyWithClipboardDisabled(t *testing.T) {
	cfg := writeConfig(t, "")

	stdout, stderr, err := run(t, "--config", cfg, "generate", "fastapi", "--copy")
	require.NoError(t, err, "clipboard failures never fail generation")
	assert.Contains(t, stdout, "FROM python:3.11-slim")
	assert.Contains(t, stderr, "Could not copy the Dockerfile to the clipboard")
}

func TestGenerateUsage(t *testing.T) {
	cfg := writeConfig(t, "")

	_, stderr, err := run(t, "--config", cfg, "generate", "django", "--usage")
	require.NoError(t, err)
	assert.Contains(t, stderr, "How to use this Dockerfile:")
	assert.Contains(t, stderr, "docker run -p 8000:8000 my-django-app")
}

func TestConfigFramework(t *testing.T) {
	cfg := writeConfig(t, `frameworks:
  - key: flask
    name: Flask
    family: python
    port: 5000
    template: |
      FROM python:{{.Version}}
      EXPOSE 5000
`)

	stdout, _, err := run(t, "--config", cfg, "generate", "flask", "--version", "3.9-alpine")
	require.NoError(t, err)
	assert.Contains(t, stdout, "FROM python:3.9-alpine")

	stdout, _, err = run(t, "--config", cfg, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "flask")
}

func TestConfigFrameworkInvalidTemplate(t *testing.T) {
	cfg := writeConfig(t, `frameworks:
  - key: broken
    family: node
    template: "FROM node:{{.Version"
`)

	_, _, err := run(t, "--config", cfg, "list")
	require.ErrorIs(t, err, errors.ErrTemplateInvalid)
}

func TestMissingConfigFile(t *testing.T) {
	_, _, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yml"), "list")
	require.ErrorIs(t, err, errors.ErrConfigNotFound)
}

func TestList(t *testing.T) {
	cfg := writeConfig(t, "")

	stdout, _, err := run(t, "--config", cfg, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "KEY")
	assert.Contains(t, lines[1], "react-vite")
	assert.Contains(t, lines[5], "django")
}

func TestListJSON(t *testing.T) {
	cfg := writeConfig(t, "defaults:\n  node_version: 22-alpine\n")

	stdout, _, err := run(t, "--config", cfg, "--json", "list")
	require.NoError(t, err)

	var items []FrameworkOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &items))
	require.Len(t, items, 5)
	assert.Equal(t, "react-vite", items[0].Key)
	assert.Equal(t, "22-alpine", items[0].DefaultVersion)
	assert.Equal(t, "3.11-slim", items[3].DefaultVersion)
}

func TestListYAML(t *testing.T) {
	cfg := writeConfig(t, "")

	stdout, _, err := run(t, "--config", cfg, "list", "--yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "- key: react-vite")
	assert.Contains(t, stdout, "default_version: 3.11-slim")
}

func TestDetect(t *testing.T) {
	cfg := writeConfig(t, "")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "requirements.txt"), []byte("fastapi==0.110.0\nuvicorn\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.py"), []byte("app = None\n"), 0644))

	stdout, _, err := run(t, "--config", cfg, "--json", "detect", dir, "--all")
	require.NoError(t, err)

	var out DetectionOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.True(t, out.Detected)
	assert.Equal(t, "fastapi", out.Framework)
	assert.Equal(t, "python", out.Family)
	require.NotEmpty(t, out.Candidates)
	assert.Equal(t, "fastapi", out.Candidates[0].Framework)
}

func TestDetectNothing(t *testing.T) {
	cfg := writeConfig(t, "")

	stdout, stderr, err := run(t, "--config", cfg, "detect", t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "No framework detected")
}

func TestDetectMissingPath(t *testing.T) {
	cfg := writeConfig(t, "")

	_, _, err := run(t, "--config", cfg, "detect", filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, errors.ErrPathNotFound)
}

func TestVersionJSON(t *testing.T) {
	cfg := writeConfig(t, "")

	stdout, _, err := run(t, "--config", cfg, "--json", "version")
	require.NoError(t, err)

	var out VersionOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, Version, out.Version)
	assert.NotEmpty(t, out.GoVersion)
}

type stubDriver struct {
	selected int
	err      error
	defaults []int
}

func (d *stubDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	return cfg.Default, d.err
}

func (d *stubDriver) Confirm(_ context.Context, cfg prompt.ConfirmConfig) (bool, error) {
	return cfg.Default, d.err
}

func (d *stubDriver) Select(_ context.Context, cfg prompt.SelectConfig) (int, error) {
	d.defaults = append(d.defaults, cfg.DefaultIndex)
	return d.selected, d.err
}

func withDriver(t *testing.T, d prompt.Driver) {
	t.Helper()
	prev := newDriver
	newDriver = func() prompt.Driver { return d }
	t.Cleanup(func() { newDriver = prev })
}

func TestFormCommand(t *testing.T) {
	cfg := writeConfig(t, "")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"),
		[]byte(`{"dependencies":{"express":"^4.18.0"}}`), 0644))

	driver := &stubDriver{selected: 2}
	withDriver(t, driver)

	stdout, _, err := run(t, "--config", cfg, "form", dir)
	require.NoError(t, err)
	require.Len(t, driver.defaults, 1)
	assert.Equal(t, 2, driver.defaults[0], "detected express is preselected")
	assert.Contains(t, stdout, "Generated Dockerfile")
	assert.Contains(t, stdout, "FROM node:20-alpine AS build")
	assert.Contains(t, stdout, "docker run -p 3000:3000 my-express-app")
	assert.NotContains(t, stdout, "clipboard", "clipboard disabled skips the copy prompt")
}

func TestFormCommandAborted(t *testing.T) {
	cfg := writeConfig(t, "")
	withDriver(t, &stubDriver{err: prompt.ErrAborted})

	stdout, stderr, err := run(t, "--config", cfg, "form", t.TempDir())
	require.NoError(t, err)
	assert.NotContains(t, stdout, "Generated Dockerfile")
	assert.Contains(t, stderr, "Aborted")
}

func TestListGroupsByFamily(t *testing.T) {
	cfg := writeConfig(t, `frameworks:
  - key: koa
    name: Koa
    family: node
    port: 3000
    template: "FROM node:{{.Version}}"
`)

	stdout, _, err := run(t, "--config", cfg, "--json", "list")
	require.NoError(t, err)

	var items []FrameworkOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &items))
	keys := make([]string, len(items))
	for i, item := range items {
		keys[i] = item.Key
	}
	assert.Equal(t, []string{"react-vite", "nextjs", "express", "koa", "fastapi", "django"}, keys)
}

func TestDetectTopAndDepth(t *testing.T) {
	cfg := writeConfig(t, "")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "requirements.txt"), []byte("fastapi\ndjango\n"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "app"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app", "main.py"), []byte("app = None\n"), 0644))

	stdout, _, err := run(t, "--config", cfg, "--json", "detect", dir, "--top", "1")
	require.NoError(t, err)
	var out DetectionOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, "fastapi", out.Framework)
	assert.Equal(t, 75, out.Confidence)
	require.Len(t, out.Candidates, 1)

	stdout, _, err = run(t, "--config", cfg, "--json", "detect", dir, "--depth", "0")
	require.NoError(t, err)
	out = DetectionOutput{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, 60, out.Confidence, "app/ is not inspected at depth 0")
	assert.Empty(t, out.Candidates)
}

func TestVersionIgnoresBrokenConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yml")
	require.NoError(t, os.WriteFile(path, []byte("defaults: [not a map\n"), 0644))

	_, _, err := run(t, "--config", path, "list")
	require.ErrorIs(t, err, errors.ErrConfigInvalid)

	stdout, _, err := run(t, "--config", path, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dockergen "+Version)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dockergen.yml")

	_, stderr, err := run(t, "config", "init", path, "--node-version", "22-alpine")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Wrote configuration to")

	stdout, _, err := run(t, "--config", path, "generate", "express")
	require.NoError(t, err)
	assert.Contains(t, stdout, "FROM node:22-alpine AS build")

	_, _, err = run(t, "config", "init", path)
	require.ErrorIs(t, err, errors.ErrFileExists)

	_, _, err = run(t, "config", "init", path, "--force")
	require.NoError(t, err)
}

func TestConfigShow(t *testing.T) {
	cfg := writeConfig(t, "defaults:\n  python_version: 3.12-slim\n")

	stdout, stderr, err := run(t, "--config", cfg, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "python_version: 3.12-slim")
	assert.Contains(t, stderr, "loaded from "+cfg)
}

func TestGenerateHelpDocumentsTemplateFunctions(t *testing.T) {
	stdout, _, err := run(t, "generate", "--help")
	require.NoError(t, err)
	for _, fn := range []string{"default", "lower", "upper", "trimSuffix", "replace", "{{.Version}}"} {
		assert.Contains(t, stdout, fn)
	}
}
