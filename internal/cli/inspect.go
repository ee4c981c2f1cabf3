package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/roach88/lucene/queryir"
)

// Inspection describes the shape of one query.
type Inspection struct {
	Name     string         `json:"name"`
	Nodes    int            `json:"nodes"`
	Kinds    map[string]int `json:"kinds"`
	Warnings []string       `json:"warnings"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Summarize the node tree of a query file",
		Long: `Count the nodes of each query in a file by kind and report
constructs that render but are probably mistakes, such as empty groups
inside a boolean operator or purely negative queries.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runInspect(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	docs, err := loadDocuments(formatter, []string{path})
	if err != nil {
		return err
	}

	inspections := []Inspection{}
	for _, doc := range docs {
		for _, c := range doc.Cases {
			kinds := queryir.Stats(c.Query)
			total := 0
			for _, n := range kinds {
				total += n
			}
			inspections = append(inspections, Inspection{
				Name:     c.Name,
				Nodes:    total,
				Kinds:    kinds,
				Warnings: queryir.Validate(c.Query).Warnings,
			})
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(inspections)
	}

	w := formatter.Writer
	for _, in := range inspections {
		fmt.Fprintf(w, "%s: %d node(s)\n", in.Name, in.Nodes)

		kinds := make([]string, 0, len(in.Kinds))
		for k := range in.Kinds {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)
		for _, k := range kinds {
			fmt.Fprintf(w, "  %-9s %d\n", k, in.Kinds[k])
		}
		for _, warning := range in.Warnings {
			fmt.Fprintf(w, "  warning: %s\n", warning)
		}
	}
	return nil
}
