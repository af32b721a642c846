package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dublyo/dockergen/internal/config"
	"github.com/dublyo/dockergen/internal/errors"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create or inspect the dockergen configuration",
	}

	cmd.AddCommand(newConfigInitCmd(opts))
	cmd.AddCommand(newConfigShowCmd(opts))
	return cmd
}

func newConfigInitCmd(opts *rootOptions) *cobra.Command {
	var (
		force         bool
		nodeVersion   string
		pythonVersion string
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a configuration file with the default settings",
		Long: `Write a configuration file with the default settings.

The file is written to .dockergen.yml unless a path is given. An existing
file is only replaced with --force.

Examples:
  dockergen config init
  dockergen config init --node-version 22-alpine
  dockergen config init ~/.config/dockergen/config.yml --force`,
		Args: cobra.MaximumNArgs(1),
		// The file being written may be the broken one, so existing config is not loaded
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.status = cmd.ErrOrStderr()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ".dockergen.yml"
			if len(args) > 0 {
				path = args[0]
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					err := fmt.Errorf("%w: %s", errors.ErrFileExists, path)
					opts.printError("%s already exists (use --force to overwrite)", path)
					return err
				}
			}

			cfg := config.DefaultConfig()
			if nodeVersion != "" {
				cfg.Defaults.NodeVersion = nodeVersion
			}
			if pythonVersion != "" {
				cfg.Defaults.PythonVersion = pythonVersion
			}

			if err := cfg.Save(path); err != nil {
				err = fmt.Errorf("%w: %s: %v", errors.ErrWriteFailed, path, err)
				opts.printError("%v", err)
				return err
			}
			opts.printSuccess("Wrote configuration to %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	cmd.Flags().StringVar(&nodeVersion, "node-version", "", "Default Node.js version")
	cmd.Flags().StringVar(&pythonVersion, "python-version", "", "Default Python version")
	return cmd
}

func newConfigShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path := opts.cfg.Path(); path != "" {
				opts.printInfo("# loaded from %s", path)
			} else {
				opts.printInfo("# no configuration file found, showing defaults")
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(opts.cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
