package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/lucene/querylucene"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Filter string // case name filter (glob pattern)
	Golden string // directory of {case}.golden files
}

// CaseResult holds the result of a single case.
type CaseResult struct {
	File   string   `json:"file"`
	Name   string   `json:"name"`
	Pass   bool     `json:"pass"`
	Got    string   `json:"got"`
	Errors []string `json:"errors,omitempty"`
}

// CheckResult holds the overall check result.
type CheckResult struct {
	Cases   []CaseResult `json:"cases"`
	Passed  int          `json:"passed"`
	Failed  int          `json:"failed"`
	Skipped int          `json:"skipped"`
	Total   int          `json:"total"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <file|dir>...",
		Short: "Check corpus files against their expected renderings",
		Long: `Render every case of the given corpus files and compare the result
with the case's "expect" string and, with --golden, with {name}.golden in
the given directory. Cases with nothing to compare against are skipped.

Exit codes:
  0 - All cases matched
  1 - One or more cases did not match
  2 - Command error (invalid paths, invalid documents, etc.)

Examples:
  lucene-query check ./queries
  lucene-query check ./queries --filter "escape_*"
  lucene-query check ./queries --golden ./golden --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter cases by glob pattern")
	cmd.Flags().StringVar(&opts.Golden, "golden", "", "directory of golden files")

	return cmd
}

func runCheck(opts *CheckOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if opts.Filter != "" {
		if _, err := filepath.Match(opts.Filter, ""); err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeGeneric, "invalid filter pattern", err)
		}
	}

	docs, err := loadDocuments(formatter, args)
	if err != nil {
		return err
	}

	result := CheckResult{Cases: []CaseResult{}}
	for _, doc := range docs {
		for _, c := range doc.Cases {
			if opts.Filter != "" {
				if matched, _ := filepath.Match(opts.Filter, c.Name); !matched {
					continue
				}
			}

			cr := CaseResult{File: doc.Path, Name: c.Name, Got: querylucene.Render(c.Query)}
			compared := false
			if c.HasExpect {
				compared = true
				if cr.Got != c.Expect {
					cr.Errors = append(cr.Errors, fmt.Sprintf("expected %q, got %q", c.Expect, cr.Got))
				}
			}
			if opts.Golden != "" {
				ok, msg := compareGolden(opts.Golden, c.Name, cr.Got)
				if ok || msg != "" {
					compared = true
				}
				if msg != "" {
					cr.Errors = append(cr.Errors, msg)
				}
			}

			result.Total++
			switch {
			case !compared:
				result.Skipped++
				slog.Debug("nothing to compare", "case", c.Name)
				continue
			case len(cr.Errors) == 0:
				cr.Pass = true
				result.Passed++
			default:
				result.Failed++
			}
			result.Cases = append(result.Cases, cr)
		}
	}

	if formatter.Format == "json" {
		return outputCheckJSON(formatter, result)
	}
	return outputCheckText(formatter, result)
}

// compareGolden reports whether got matches dir/{name}.golden. A missing
// golden file is neither a match nor a failure.
func compareGolden(dir, name, got string) (bool, string) {
	path := filepath.Join(dir, name+".golden")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, ""
	}
	if err != nil {
		return false, fmt.Sprintf("reading golden file: %v", err)
	}
	if string(data) != got {
		return false, fmt.Sprintf("golden mismatch in %s: expected %q, got %q", path, string(data), got)
	}
	return true, ""
}

func outputCheckJSON(f *OutputFormatter, result CheckResult) error {
	response := CLIResponse{Status: "ok", Data: result}
	if result.Failed > 0 {
		response.Status = "error"
		response.Error = &CLIError{
			Code:    ErrCodeCheckFailed,
			Message: fmt.Sprintf("%d case(s) failed", result.Failed),
		}
	}
	if err := f.encode(response); err != nil {
		return err
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d case(s) failed", result.Failed))
	}
	return nil
}

func outputCheckText(f *OutputFormatter, result CheckResult) error {
	w := f.Writer
	for _, cr := range result.Cases {
		if cr.Pass {
			fmt.Fprintf(w, "✓ %s\n", cr.Name)
			continue
		}
		fmt.Fprintf(w, "✗ %s (%s)\n", cr.Name, cr.File)
		for _, e := range cr.Errors {
			fmt.Fprintf(w, "  %s\n", e)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Check Summary: %d passed, %d failed, %d skipped, %d total\n",
		result.Passed, result.Failed, result.Skipped, result.Total)

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d case(s) failed", result.Failed))
	}

	fmt.Fprintln(w, "✓ All cases passed")
	return nil
}
