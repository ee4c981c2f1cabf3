package cli

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/roach88/lucene/internal/document"
)

// collectFiles expands the command arguments into query files. Directories
// are walked recursively and contribute every file with a known extension;
// explicit file arguments are kept even when the extension is unknown, so
// Load can report it.
func collectFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("query path not found: %s", arg)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		var found []string
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if _, err := document.FormatFor(path); err != nil {
				slog.Debug("skipping file", "path", path)
				return nil
			}
			found = append(found, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", arg, err)
		}
		sort.Strings(found)
		files = append(files, found...)
	}

	return files, nil
}

// loadDocuments collects and loads every query file named by args.
func loadDocuments(f *OutputFormatter, args []string) ([]*document.Document, error) {
	files, err := collectFiles(args)
	if err != nil {
		return nil, f.Fail(ExitCommandError, ErrCodeNotFound, err.Error(), nil)
	}
	if len(files) == 0 {
		return nil, f.Fail(ExitCommandError, ErrCodeNoFiles, fmt.Sprintf("no query files found in %v", args), nil)
	}

	docs := make([]*document.Document, 0, len(files))
	for _, file := range files {
		slog.Debug("loading query file", "path", file)
		doc, err := document.Load(file)
		if err != nil {
			return nil, f.Fail(ExitCommandError, ErrCodeInvalidDoc, "invalid query document", err)
		}
		slog.Debug("loaded query file", "path", file, "format", doc.Format, "cases", len(doc.Cases))
		docs = append(docs, doc)
	}
	return docs, nil
}
