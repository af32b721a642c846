package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// FrameworkOutput describes a framework in list output
type FrameworkOutput struct {
	Key            string `json:"key" yaml:"key"`
	Name           string `json:"name" yaml:"name"`
	Family         string `json:"family" yaml:"family"`
	Port           int    `json:"port" yaml:"port"`
	DefaultVersion string `json:"defaultVersion" yaml:"default_version"`
	Description    string `json:"description,omitempty" yaml:"description,omitempty"`
	URL            string `json:"url,omitempty" yaml:"url,omitempty"`
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var yamlOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List supported frameworks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Grouped by family so frameworks added in the config sit next to their built-in peers
			items := make([]FrameworkOutput, 0, opts.registry.Count())
			for _, family := range opts.registry.Families() {
				for _, f := range opts.registry.ByFamily(family) {
					items = append(items, FrameworkOutput{
						Key:            string(f.Key),
						Name:           f.Name,
						Family:         string(f.Family),
						Port:           f.Port,
						DefaultVersion: defaultVersion(opts.cfg, f),
						Description:    f.Description,
						URL:            f.URL,
					})
				}
			}

			out := cmd.OutOrStdout()
			switch {
			case opts.jsonOut:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(items)
			case yamlOut:
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(items); err != nil {
					return err
				}
				return enc.Close()
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tNAME\tFAMILY\tPORT\tDEFAULT VERSION")
			for _, item := range items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", item.Key, item.Name, item.Family, item.Port, item.DefaultVersion)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&yamlOut, "yaml", false, "Output in YAML format")
	return cmd
}
