package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dublyo/dockergen/internal/detector"
	"github.com/dublyo/dockergen/internal/scanner"
)

// DetectionOutput is the JSON output for the detect command
type DetectionOutput struct {
	Detected   bool              `json:"detected"`
	Framework  string            `json:"framework,omitempty"`
	Family     string            `json:"family,omitempty"`
	Confidence int               `json:"confidence,omitempty"`
	Candidates []CandidateOutput `json:"candidates,omitempty"`
}

// CandidateOutput represents a candidate in JSON output
type CandidateOutput struct {
	Framework  string   `json:"framework"`
	Confidence int      `json:"confidence"`
	Reasons    []string `json:"reasons,omitempty"`
}

type detectOptions struct {
	showAll bool
	top     int
	depth   int
}

// candidates returns the candidates selected by --all or --top
func (d *detectOptions) candidates(result *detector.DetectionResult) []detector.Candidate {
	switch {
	case d.showAll:
		return result.Candidates
	case d.top > 0:
		return result.TopCandidates(d.top)
	}
	return nil
}

func newDetectCmd(opts *rootOptions) *cobra.Command {
	d := &detectOptions{}

	cmd := &cobra.Command{
		Use:   "detect [path]",
		Short: "Suggest the framework of a project directory",
		Long: `Inspect package.json, requirements.txt and pyproject.toml to suggest
which framework template fits a project.

Examples:
  dockergen detect
  dockergen detect ./my-project --all
  dockergen detect ./my-project --top 2 --depth 3
  dockergen detect --json ./my-project`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			opts.printVerbose("Scanning %s...", path)
			scan, err := scanner.New(scanner.WithMaxDepth(d.depth)).Scan(ctx, path)
			if err != nil {
				opts.printError("scan failed: %v", err)
				return err
			}

			result, err := detector.New(opts.registry).Detect(ctx, scan)
			if err != nil {
				opts.printError("detection failed: %v", err)
				return err
			}

			if opts.jsonOut {
				return outputDetectJSON(cmd, result, d.candidates(result))
			}
			return outputDetectText(cmd, opts, result, d.candidates(result))
		},
	}

	cmd.Flags().BoolVar(&d.showAll, "all", false, "Show all candidates, not just the best match")
	cmd.Flags().IntVar(&d.top, "top", 0, "Show the N highest scoring candidates")
	cmd.Flags().IntVar(&d.depth, "depth", 2, "Directory levels below the project root to inspect")
	return cmd
}

func outputDetectJSON(cmd *cobra.Command, result *detector.DetectionResult, candidates []detector.Candidate) error {
	output := DetectionOutput{
		Detected:   result.Detected,
		Framework:  string(result.Framework),
		Family:     string(result.Family),
		Confidence: result.Confidence,
	}
	for _, c := range candidates {
		output.Candidates = append(output.Candidates, CandidateOutput{
			Framework:  string(c.Framework),
			Confidence: c.Confidence,
			Reasons:    c.Reasons,
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func outputDetectText(cmd *cobra.Command, opts *rootOptions, result *detector.DetectionResult, candidates []detector.Candidate) error {
	out := cmd.OutOrStdout()

	if !result.Detected {
		opts.printInfo("No framework detected")
		if best := result.BestCandidate(); best != nil {
			opts.printInfo("Closest match: %s (%d%%)", best.Framework, best.Confidence)
		}
		opts.printInfo("Pick one explicitly: dockergen generate <framework> (see dockergen list)")
	} else {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  Framework:  %s\n", result.Framework)
		fmt.Fprintf(out, "  Family:     %s\n", result.Family)
		fmt.Fprintf(out, "  Confidence: %d%%\n", result.Confidence)
		fmt.Fprintln(out)
	}

	if len(candidates) > 0 {
		fmt.Fprintln(out, "  Candidates:")
		for i, c := range candidates {
			marker := " "
			if i == 0 && result.Detected {
				marker = "→"
			}
			fmt.Fprintf(out, "  %s %s (%d%%)\n", marker, c.Framework, c.Confidence)
			if opts.verbose {
				for _, reason := range c.Reasons {
					fmt.Fprintf(out, "      %s\n", reason)
				}
			}
		}
		fmt.Fprintln(out)
	}

	return nil
}
