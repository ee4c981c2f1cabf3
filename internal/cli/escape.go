package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/lucene/querylucene"
)

// EscapeOptions holds flags for the escape command.
type EscapeOptions struct {
	*RootOptions
	Quote bool // render as a quoted string literal
}

// EscapedText pairs an input with its escaped form in JSON output.
type EscapedText struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// NewEscapeCommand creates the escape command.
func NewEscapeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EscapeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "escape <text>...",
		Short: "Escape text for use in a Lucene query",
		Long: `Backslash-escape Lucene's reserved characters in each argument.

With --quote the text is rendered as a string literal: escaped, with a
trailing AND/OR/NOT downcased, and wrapped in single quotes.

Examples:
  lucene-query escape 'C++ (2nd ed.)'
  lucene-query escape --quote 'Me AND'`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEscape(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Quote, "quote", "q", false, "quote as a string literal")

	return cmd
}

func runEscape(opts *EscapeOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	results := make([]EscapedText, len(args))
	for i, arg := range args {
		out := querylucene.Escape(arg)
		if opts.Quote {
			out = querylucene.Quote(arg)
		}
		results[i] = EscapedText{Input: arg, Output: out}
	}

	if formatter.Format == "json" {
		return formatter.Success(results)
	}
	for _, r := range results {
		fmt.Fprintln(formatter.Writer, r.Output)
	}
	return nil
}
