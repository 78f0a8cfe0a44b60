package pytools

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/skillkit/skillkit/pkg/logger"
)

const alembicConfigName = "alembic.ini"

// FindAlembicINI walks from start up to the filesystem root looking for an
// alembic.ini and returns the directory containing it.
func FindAlembicINI(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", errors.Wrap(err, "resolving start directory")
	}

	for {
		candidate := filepath.Join(dir, alembicConfigName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Errorf("no %s found in %s or any parent directory", alembicConfigName, start)
		}
		dir = parent
	}
}

// RunAlembic runs the alembic CLI from the directory containing alembic.ini
// and returns its exit code unchanged.
func RunAlembic(ctx context.Context, startDir string, args []string, stdout, stderr io.Writer) (int, error) {
	projectDir, err := FindAlembicINI(startDir)
	if err != nil {
		return 1, err
	}

	logger.G(ctx).WithField("dir", projectDir).WithField("args", args).Debug("running alembic")
	return runCommand(ctx, "alembic", args, projectDir, stdout, stderr)
}
