// Package cli provides the command-line interface for dockergen.
// Copyright (c) 2026 Dublyo. All rights reserved.
// Licensed under the MIT License.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dublyo/dockergen/internal/config"
	"github.com/dublyo/dockergen/internal/generator"
	"github.com/dublyo/dockergen/internal/logging"
	"github.com/dublyo/dockergen/internal/registry"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// rootOptions holds the global flags and the state built from them
type rootOptions struct {
	verbose    bool
	quiet      bool
	jsonOut    bool
	configPath string

	cfg      *config.Config
	registry *registry.Registry
	gen      generator.Generator

	// Status messages go here so stdout only carries generated output
	status io.Writer
}

// Execute runs the root command
func Execute() {
	err := newRootCmd().Execute()
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{status: os.Stderr}

	cmd := &cobra.Command{
		Use:   "dockergen [framework]",
		Short: "Dockerfile generator for common web frameworks",
		Long: `Dockergen - Dockerfile generator for common web frameworks

Pick a framework and a base image version and get a ready-to-use
Dockerfile: multi-stage Node.js builds for React (Vite), Next.js and
Express, and single-stage Python images for FastAPI and Django.

Examples:
  # Fill in the interactive form
  dockergen

  # Generate a Next.js Dockerfile with the default Node version
  dockergen nextjs

  # Generate a FastAPI Dockerfile for Python 3.10 into ./Dockerfile
  dockergen generate fastapi --version 3.10-slim -o Dockerfile

  # List supported frameworks
  dockergen list`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.status = cmd.ErrOrStderr()
			return opts.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runForm(cmd, opts, ".")
			}
			return runGenerate(cmd, opts, &generateOptions{}, args[0])
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "Output in JSON format")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: .dockergen.yml, ~/.config/dockergen/config.yml)")

	cmd.AddCommand(newGenerateCmd(opts))
	cmd.AddCommand(newFormCmd(opts))
	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newDetectCmd(opts))
	cmd.AddCommand(newVersionCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))

	return cmd
}

// setup loads configuration, logging, the registry and the generator
func (o *rootOptions) setup() error {
	var err error
	if o.configPath != "" {
		o.cfg, err = config.LoadFromFile(o.configPath)
	} else {
		o.cfg, err = config.Load()
	}
	if err != nil {
		o.printError("failed to load config: %v", err)
		return err
	}

	level := o.cfg.Log.Level
	switch {
	case o.verbose:
		level = "debug"
	case o.quiet:
		level = "error"
	}
	if err := logging.Init(logging.Options{Level: level, Format: o.cfg.Log.Format}); err != nil {
		o.printError("invalid log settings: %v", err)
		return err
	}
	if path := o.cfg.Path(); path != "" {
		logging.S().Debugf("loaded config from %s", path)
	}

	o.registry, err = setupRegistry(o.cfg)
	if err != nil {
		o.printError("%v", err)
		return err
	}

	logging.S().Debugf("registered %d frameworks", o.registry.Count())

	o.gen = generator.New(o.registry,
		generator.WithTemplateDir(o.cfg.Templates.Dir),
		generator.WithLogger(logging.L()),
	)
	return nil
}

// Print helpers

func (o *rootOptions) printInfo(format string, args ...interface{}) {
	if !o.quiet {
		fmt.Fprintf(o.status, format+"\n", args...)
	}
}

func (o *rootOptions) printVerbose(format string, args ...interface{}) {
	if o.verbose && !o.quiet {
		fmt.Fprintf(o.status, format+"\n", args...)
	}
}

func (o *rootOptions) printError(format string, args ...interface{}) {
	color.New(color.FgRed).Fprint(o.status, "Error: ")
	fmt.Fprintf(o.status, format+"\n", args...)
}

func (o *rootOptions) printWarning(format string, args ...interface{}) {
	if !o.quiet {
		color.New(color.FgYellow).Fprint(o.status, "⚠ ")
		fmt.Fprintf(o.status, format+"\n", args...)
	}
}

func (o *rootOptions) printSuccess(format string, args ...interface{}) {
	if !o.quiet {
		color.New(color.FgGreen).Fprint(o.status, "✓ ")
		fmt.Fprintf(o.status, format+"\n", args...)
	}
}
