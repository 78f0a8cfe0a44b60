package lint

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/skillkit/skillkit/pkg/logger"
)

// CheckFunc scans document lines and returns issues.
type CheckFunc func(lines []string) []Issue

// Checkers maps a document kind to its validator.
var Checkers = map[string]CheckFunc{
	"md":   CheckMarkdown,
	"toon": CheckTOON,
}

// ExpandPaths resolves glob patterns (doublestar syntax, e.g. docs/**/*.md)
// into a sorted, de-duplicated file list. A pattern matching nothing is an
// error so typos don't silently validate zero files.
func ExpandPaths(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	var merr *multierror.Error

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			merr = multierror.Append(merr, errors.Wrapf(err, "bad pattern %q", pattern))
			continue
		}
		if len(matches) == 0 {
			merr = multierror.Append(merr, errors.Errorf("no files match %q", pattern))
			continue
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}

	sort.Strings(paths)
	return paths, merr.ErrorOrNil()
}

// ValidateFiles runs the named checker over each file. Unreadable files are
// aggregated into the returned error; readable files still produce results.
func ValidateFiles(ctx context.Context, kind string, paths []string) ([]Result, error) {
	check, ok := Checkers[kind]
	if !ok {
		return nil, errors.Errorf("unknown document kind %q", kind)
	}

	results := make([]Result, 0, len(paths))
	var merr *multierror.Error

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			merr = multierror.Append(merr, errors.Wrapf(err, "reading %s", path))
			continue
		}
		logger.G(ctx).WithField("file", path).Debug("validating")
		results = append(results, Result{
			File:   path,
			Issues: check(splitLines(string(content))),
		})
	}

	return results, merr.ErrorOrNil()
}

// ValidateReader runs the named checker over a single stream, labelled
// "<stdin>" in the results.
func ValidateReader(ctx context.Context, kind string, r io.Reader) (Result, error) {
	check, ok := Checkers[kind]
	if !ok {
		return Result{}, errors.Errorf("unknown document kind %q", kind)
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return Result{}, errors.Wrap(err, "reading input")
	}

	logger.G(ctx).WithField("file", "<stdin>").Debug("validating")
	return Result{File: "<stdin>", Issues: check(splitLines(string(content)))}, nil
}

// WriteText renders results in a compact file:line style report.
func WriteText(w io.Writer, results []Result) error {
	issueCount := 0
	for _, r := range results {
		for _, issue := range r.Issues {
			issueCount++
			if _, err := fmt.Fprintf(w, "%s:%s\n", r.File, issue.String()); err != nil {
				return err
			}
		}
	}

	if issueCount == 0 {
		_, err := fmt.Fprintf(w, "%d file(s) checked, no issues found\n", len(results))
		return err
	}
	_, err := fmt.Fprintf(w, "%d file(s) checked, %d issue(s) found\n", len(results), issueCount)
	return err
}

// WriteJSON renders results as a JSON array for machine consumers.
func WriteJSON(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func splitLines(content string) []string {
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}
