package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/lucene"
	"github.com/roach88/lucene/queryir"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Warn bool // print validation warnings
}

// RenderedQuery is one rendered case in JSON output.
type RenderedQuery struct {
	File     string   `json:"file"`
	Name     string   `json:"name"`
	Query    string   `json:"query"`
	Warnings []string `json:"warnings,omitempty"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <file|dir>...",
		Short: "Render query files as Lucene query strings",
		Long: `Render each query in the given YAML, JSON or CUE files.

Directories are searched recursively for .yaml, .yml, .json and .cue files.
A file holding a single query prints one line; a corpus file prints one
"name: query" line per case.

Examples:
  lucene-query render query.yaml
  lucene-query render ./queries --format json
  lucene-query render query.cue --warn`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Warn, "warn", false, "report constructs that render but are likely mistakes")

	return cmd
}

func runRender(opts *RenderOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	docs, err := loadDocuments(formatter, args)
	if err != nil {
		return err
	}

	results := []RenderedQuery{}
	for _, doc := range docs {
		for _, c := range doc.Cases {
			q := lucene.FromNode(c.Query)
			r := RenderedQuery{File: doc.Path, Name: c.Name, Query: q.String()}
			if opts.Warn {
				r.Warnings = queryir.Validate(c.Query).Warnings
			}
			slog.Debug("rendered query", "file", doc.Path, "name", c.Name, "length", len(r.Query))
			results = append(results, r)
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(results)
	}

	// A lone query prints bare so the output can be piped.
	if len(docs) == 1 && len(results) == 1 {
		fmt.Fprintln(formatter.Writer, results[0].Query)
		printWarnings(formatter, results[0])
		return nil
	}
	for _, r := range results {
		fmt.Fprintf(formatter.Writer, "%s: %s\n", r.Name, r.Query)
		printWarnings(formatter, r)
	}
	return nil
}

func printWarnings(f *OutputFormatter, r RenderedQuery) {
	for _, w := range r.Warnings {
		fmt.Fprintf(f.diag(), "warning: %s: %s\n", r.Name, w)
	}
}
