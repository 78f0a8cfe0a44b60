package pytools

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAlembicINI(t *testing.T) {
	t.Run("found in start directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "alembic.ini"), []byte("[alembic]\n"), 0o644))

		found, err := FindAlembicINI(dir)
		require.NoError(t, err)
		assert.Equal(t, dir, found)
	})

	t.Run("found in parent directory", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "alembic.ini"), []byte("[alembic]\n"), 0o644))
		nested := filepath.Join(root, "app", "api")
		require.NoError(t, os.MkdirAll(nested, 0o755))

		found, err := FindAlembicINI(nested)
		require.NoError(t, err)
		assert.Equal(t, root, found)
	})

	t.Run("missing everywhere", func(t *testing.T) {
		_, err := FindAlembicINI(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no alembic.ini found")
	})

	t.Run("directory named alembic.ini does not count", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "alembic.ini"), 0o755))

		_, err := FindAlembicINI(dir)
		assert.Error(t, err)
	})
}

func TestRunCommandExitCodes(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
	ctx := context.Background()

	t.Run("zero exit", func(t *testing.T) {
		var out bytes.Buffer
		code, err := runCommand(ctx, "sh", []string{"-c", "echo ok"}, "", &out, &out)
		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.Contains(t, out.String(), "ok")
	})

	t.Run("non-zero exit is propagated, not an error", func(t *testing.T) {
		var out bytes.Buffer
		code, err := runCommand(ctx, "sh", []string{"-c", "exit 3"}, "", &out, &out)
		require.NoError(t, err)
		assert.Equal(t, 3, code)
	})

	t.Run("missing binary is an error", func(t *testing.T) {
		var out bytes.Buffer
		code, err := runCommand(ctx, "definitely-not-a-real-binary", nil, "", &out, &out)
		require.Error(t, err)
		assert.Equal(t, 1, code)
	})
}

func TestRunAlembicRequiresConfig(t *testing.T) {
	var out bytes.Buffer
	code, err := RunAlembic(context.Background(), t.TempDir(), []string{"current"}, &out, &out)
	require.Error(t, err)
	assert.Equal(t, 1, code)
	assert.Contains(t, err.Error(), "alembic.ini")
}
