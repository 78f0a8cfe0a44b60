// Package scaffold generates project and documentation skeletons from
// embedded templates. Existing files are never overwritten silently: the
// renderer records a unified diff against what it would have written and
// skips the file unless forced.
package scaffold

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"text/template"
	"time"

	"github.com/aymanbagabas/go-udiff"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/skillkit/skillkit/pkg/logger"
)

// FileSpec is one file of a scaffold set: a relative path and its
// text/template body.
type FileSpec struct {
	Path     string
	Template string
}

// Options configures a scaffold run.
type Options struct {
	Dir         string // target directory, created if missing
	Name        string // project name; defaults to the target directory base
	Author      string
	Description string
	Force       bool // overwrite files that exist with different content
}

// Summary reports what a scaffold run did.
type Summary struct {
	Written []string
	Skipped []string
	// Diffs maps skipped paths to a unified diff of existing vs generated
	// content.
	Diffs map[string]string
}

// data is what templates render against.
type data struct {
	Name        string
	Author      string
	Description string
	Year        int
}

var registry = map[string][]FileSpec{
	"fastapi": fastapiFiles,
	"nextjs":  nextjsFiles,
	"docs":    docsFiles,
}

// Kinds lists the available scaffold sets.
func Kinds() []string {
	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Run renders the named scaffold set into opts.Dir.
func Run(ctx context.Context, kind string, opts Options) (*Summary, error) {
	files, ok := registry[kind]
	if !ok {
		return nil, errors.Errorf("unknown scaffold kind %q (available: %v)", kind, Kinds())
	}
	if opts.Dir == "" {
		return nil, errors.New("target directory is required")
	}
	if opts.Name == "" {
		abs, err := filepath.Abs(opts.Dir)
		if err != nil {
			return nil, errors.Wrap(err, "resolving target directory")
		}
		opts.Name = filepath.Base(abs)
	}
	if opts.Description == "" {
		opts.Description = opts.Name
	}

	d := data{
		Name:        opts.Name,
		Author:      opts.Author,
		Description: opts.Description,
		Year:        time.Now().Year(),
	}

	summary := &Summary{Diffs: make(map[string]string)}
	var merr *multierror.Error

	for _, spec := range files {
		content, err := render(spec, d)
		if err != nil {
			merr = multierror.Append(merr, errors.Wrapf(err, "rendering %s", spec.Path))
			continue
		}

		target := filepath.Join(opts.Dir, filepath.FromSlash(spec.Path))
		if err := writeFile(ctx, target, content, opts.Force, summary); err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	return summary, merr.ErrorOrNil()
}

func render(spec FileSpec, d data) (string, error) {
	tmpl, err := template.New(spec.Path).Parse(spec.Template)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeFile(ctx context.Context, target, content string, force bool, summary *Summary) error {
	existing, err := os.ReadFile(target)
	switch {
	case err == nil && string(existing) == content:
		logger.G(ctx).WithField("file", target).Debug("unchanged, skipping")
		summary.Skipped = append(summary.Skipped, target)
		return nil
	case err == nil && !force:
		summary.Skipped = append(summary.Skipped, target)
		summary.Diffs[target] = udiff.Unified(target, target+" (generated)", string(existing), content)
		return nil
	case err != nil && !os.IsNotExist(err):
		return errors.Wrapf(err, "reading %s", target)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", target)
	}
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", target)
	}
	logger.G(ctx).WithField("file", target).Debug("written")
	summary.Written = append(summary.Written, target)
	return nil
}
