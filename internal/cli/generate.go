package cli

import (
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dublyo/dockergen/frameworks"
	"github.com/dublyo/dockergen/internal/clipboard"
	"github.com/dublyo/dockergen/internal/errors"
	"github.com/dublyo/dockergen/internal/logging"
	"github.com/dublyo/dockergen/internal/usage"
)

// GenerateOutput is the JSON output for the generate command
type GenerateOutput struct {
	Framework  string       `json:"framework"`
	Family     string       `json:"family"`
	Version    string       `json:"version"`
	Dockerfile string       `json:"dockerfile"`
	File       string       `json:"file,omitempty"`
	Copied     bool         `json:"copied,omitempty"`
	Usage      *UsageOutput `json:"usage,omitempty"`
}

// UsageOutput is the JSON form of the usage instructions
type UsageOutput struct {
	Build string `json:"build"`
	Run   string `json:"run"`
	URL   string `json:"url"`
}

type generateOptions struct {
	version    string
	versionSet bool
	output     string
	force      bool
	copy       bool
	usage      bool
}

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	g := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <framework>",
		Short: "Generate a Dockerfile for a framework",
		Long: `Generate a Dockerfile for one of the supported frameworks.

The version is interpolated verbatim into the base image tags. It defaults
to 20-alpine for Node.js frameworks and 3.11-slim for Python frameworks.

Templates in the config file or in the templates directory
(<framework>.Dockerfile.tmpl) are Go text/templates. They can use
{{.Version}}, {{.Key}}, {{.Family}} and {{.Port}}, and the functions
default, lower, upper, trimSuffix and replace, for example:
  FROM node:{{.Version | default "20-alpine"}}
  LABEL app={{.Key | lower}}

Examples:
  dockergen generate react-vite
  dockergen generate express --version 18-alpine
  dockergen generate django --version 3.12-slim -o Dockerfile --usage
  dockergen generate nextjs --copy`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g.versionSet = cmd.Flags().Changed("version")
			return runGenerate(cmd, opts, g, args[0])
		},
	}

	cmd.Flags().StringVarP(&g.version, "version", "V", "", "Base image version (default: 20-alpine for Node.js, 3.11-slim for Python)")
	cmd.Flags().StringVarP(&g.output, "output", "o", "", "Write the Dockerfile to this path instead of stdout")
	cmd.Flags().BoolVarP(&g.force, "force", "f", false, "Overwrite an existing output file")
	cmd.Flags().BoolVar(&g.copy, "copy", false, "Copy the Dockerfile to the clipboard")
	cmd.Flags().BoolVar(&g.usage, "usage", false, "Print instructions for building and running the image")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *rootOptions, g *generateOptions, key string) error {
	f, ok := opts.gen.Lookup(frameworks.Key(key))
	if !ok {
		err := fmt.Errorf("%w: %s", errors.ErrUnknownFramework, key)
		opts.printError("%v (available: %s)", err, knownKeys(opts.registry))
		return err
	}

	version := g.version
	if !g.versionSet {
		version = defaultVersion(opts.cfg, f)
	}

	output, err := opts.gen.Render(f.Key, version)
	if err != nil {
		opts.printError("failed to generate Dockerfile: %v", err)
		return err
	}
	opts.printVerbose("Rendered %s Dockerfile with version %q", f.Name, version)

	path := g.output
	if path == "" {
		path = opts.cfg.Defaults.Output
	}
	if path != "" {
		overwrite := g.force || opts.cfg.Defaults.Overwrite
		if err := output.WriteFile(path, overwrite); err != nil {
			if stderrors.Is(err, errors.ErrFileExists) {
				opts.printError("%s already exists (use --force to overwrite)", path)
			} else {
				opts.printError("%v", err)
			}
			return err
		}
	}

	copied := false
	if g.copy {
		var w clipboard.Writer = clipboard.Disabled{}
		if opts.cfg.Clipboard.Enabled {
			w = clipboard.System{}
		}
		copied = clipboard.Copy(w, output.Dockerfile, logging.L())
	}

	instructions := usage.For(f)

	if opts.jsonOut {
		result := GenerateOutput{
			Framework:  string(f.Key),
			Family:     string(f.Family),
			Version:    version,
			Dockerfile: output.Dockerfile,
			File:       path,
			Copied:     copied,
		}
		if g.usage {
			result.Usage = &UsageOutput{
				Build: instructions.Build,
				Run:   instructions.Run,
				URL:   instructions.URL,
			}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), output.Dockerfile)
	} else {
		opts.printSuccess("Wrote %s Dockerfile to %s", f.Name, path)
	}

	if g.copy {
		if copied {
			opts.printSuccess("Dockerfile copied to clipboard")
		} else {
			opts.printWarning("Could not copy the Dockerfile to the clipboard")
		}
	}

	if g.usage && !opts.quiet {
		fmt.Fprintln(opts.status)
		return instructions.Write(opts.status)
	}
	return nil
}
