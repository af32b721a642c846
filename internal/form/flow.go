package form

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/dublyo/dockergen/frameworks"
	"github.com/dublyo/dockergen/internal/clipboard"
	"github.com/dublyo/dockergen/internal/errors"
	"github.com/dublyo/dockergen/internal/prompt"
	"github.com/dublyo/dockergen/internal/registry"
)

// Flow walks the user through the form: framework, version, generate, copy, usage.
type Flow struct {
	Registry  *registry.Registry
	Session   *Session
	Driver    prompt.Driver
	Out       io.Writer
	Clipboard clipboard.Writer // nil skips the copy prompt
	Logger    *zap.Logger
	Suggested frameworks.Key // preselected framework, optional
}

// Run executes the flow once
func (f *Flow) Run(ctx context.Context) error {
	if f.Logger == nil {
		f.Logger = zap.NewNop()
	}

	choices := f.Registry.Frameworks()
	options := make([]string, len(choices))
	defaultIndex := -1
	for i, c := range choices {
		options[i] = c.Label
		if c.Key == f.Suggested {
			defaultIndex = i
		}
	}

	idx, err := f.Driver.Select(ctx, prompt.SelectConfig{
		Message:      "Framework",
		Options:      options,
		DefaultIndex: defaultIndex,
		Help:         "Select your application framework",
		PageSize:     len(options),
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(choices) {
		return errors.ErrNoFramework
	}
	chosen := choices[idx]
	f.Session.SetFramework(chosen.Key)
	f.Logger.Debug("framework selected", zap.String("framework", string(chosen.Key)))

	label, help, examples := chosen.VersionHelp()
	if examples != "" {
		help += ". " + examples
	}
	version, err := f.Driver.Input(ctx, prompt.InputConfig{
		Message: label,
		Default: f.Session.Version(),
		Help:    help,
	})
	if err != nil {
		return err
	}
	f.Session.SetVersion(version)

	dockerfile := f.Session.Generate()
	fmt.Fprintf(f.Out, "\nGenerated Dockerfile\n\n%s\n\n", dockerfile)

	if f.Clipboard != nil {
		copyIt, err := f.Driver.Confirm(ctx, prompt.ConfirmConfig{
			Message: "Copy Dockerfile to clipboard?",
			Default: true,
		})
		if err != nil {
			return err
		}
		if copyIt {
			if f.Session.Copy(f.Clipboard, f.Logger) {
				fmt.Fprintln(f.Out, "Dockerfile copied to clipboard!")
			} else {
				fmt.Fprintln(f.Out, "Could not copy to the clipboard; copy the text above instead.")
			}
			fmt.Fprintln(f.Out)
		}
	}

	if instructions, ok := f.Session.Instructions(); ok {
		return instructions.Write(f.Out)
	}
	return nil
}
