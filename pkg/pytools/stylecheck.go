// Package pytools wraps external Python tooling (pycodestyle/flake8 and
// alembic). The wrappers add argument plumbing and discovery only; the
// wrapped tool's output and exit code pass through unchanged.
package pytools

import (
	"context"
	"io"
	"os/exec"
	"strconv"

	"github.com/pkg/errors"

	"github.com/skillkit/skillkit/pkg/logger"
)

// styleCheckers in preference order.
var styleCheckers = []string{"pycodestyle", "flake8"}

// StyleCheckOptions configures a PEP8 style check run.
type StyleCheckOptions struct {
	Paths         []string
	MaxLineLength int    // 0 leaves the tool default
	Select        string // comma-separated codes to enable
	Ignore        string // comma-separated codes to disable
	Stdout        io.Writer
	Stderr        io.Writer
}

// FindStyleChecker locates the first available PEP8 checker on PATH.
func FindStyleChecker() (string, error) {
	for _, name := range styleCheckers {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", errors.Errorf("no PEP8 checker found on PATH (tried %v); install pycodestyle or flake8", styleCheckers)
}

// RunStyleCheck executes the checker over the given paths and returns its
// exit code unchanged.
func RunStyleCheck(ctx context.Context, opts StyleCheckOptions) (int, error) {
	checker, err := FindStyleChecker()
	if err != nil {
		return 1, err
	}

	args := []string{}
	if opts.MaxLineLength > 0 {
		args = append(args, "--max-line-length", strconv.Itoa(opts.MaxLineLength))
	}
	if opts.Select != "" {
		args = append(args, "--select", opts.Select)
	}
	if opts.Ignore != "" {
		args = append(args, "--ignore", opts.Ignore)
	}
	paths := opts.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}
	args = append(args, paths...)

	logger.G(ctx).WithField("checker", checker).WithField("args", args).Debug("running style check")
	return runCommand(ctx, checker, args, "", opts.Stdout, opts.Stderr)
}

// runCommand runs an external command, streaming its output, and maps the
// result to (exit code, error). A non-zero child exit is not an error here;
// only failures to run the command at all are.
func runCommand(ctx context.Context, name string, args []string, dir string, stdout, stderr io.Writer) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, errors.Wrapf(err, "running %s", name)
	}
	return 0, nil
}
