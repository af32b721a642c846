package cli

import (
	"context"
	stderrors "errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dublyo/dockergen/frameworks"
	"github.com/dublyo/dockergen/internal/clipboard"
	"github.com/dublyo/dockergen/internal/detector"
	"github.com/dublyo/dockergen/internal/form"
	"github.com/dublyo/dockergen/internal/logging"
	"github.com/dublyo/dockergen/internal/prompt"
	"github.com/dublyo/dockergen/internal/scanner"
)

// newDriver builds the prompt driver; replaced in tests
var newDriver = func() prompt.Driver { return prompt.NewSurvey() }

func newFormCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "form [path]",
		Short: "Fill in the Dockerfile form interactively",
		Long: `Interactively choose a framework and version, then generate the Dockerfile.

When path points at a project directory, the framework found there is
preselected. After generation the Dockerfile can be copied to the
clipboard and instructions for building and running it are shown.

Examples:
  dockergen form
  dockergen form ./my-project`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			return runForm(cmd, opts, path)
		},
	}
}

func runForm(cmd *cobra.Command, opts *rootOptions, path string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	session := form.NewSession(opts.gen, form.Defaults{
		NodeVersion:   opts.cfg.Defaults.NodeVersion,
		PythonVersion: opts.cfg.Defaults.PythonVersion,
	})

	flow := &form.Flow{
		Registry:  opts.registry,
		Session:   session,
		Driver:    newDriver(),
		Out:       cmd.OutOrStdout(),
		Logger:    logging.L(),
		Suggested: suggestFramework(ctx, opts, path),
	}
	if opts.cfg.Clipboard.Enabled {
		flow.Clipboard = clipboard.System{}
	}

	if err := flow.Run(ctx); err != nil {
		if stderrors.Is(err, prompt.ErrAborted) {
			opts.printInfo("Aborted")
			return nil
		}
		opts.printError("%v", err)
		return err
	}
	return nil
}

// suggestFramework detects the project framework; any failure means no suggestion
func suggestFramework(ctx context.Context, opts *rootOptions, path string) frameworks.Key {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	scan, err := scanner.New().Scan(ctx, path)
	if err != nil {
		logging.L().Debug("project scan skipped", zap.String("path", path), zap.Error(err))
		return ""
	}
	result, err := detector.New(opts.registry).Detect(ctx, scan)
	if err != nil || !result.Detected {
		return ""
	}
	opts.printVerbose("Detected %s (%d%% confidence)", result.Framework, result.Confidence)
	return result.Framework
}
