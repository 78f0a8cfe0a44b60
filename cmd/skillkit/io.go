package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// readInput reads from the named file, or from stdin when path is empty
// or "-".
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		content, err := io.ReadAll(os.Stdin)
		return content, errors.Wrap(err, "reading stdin")
	}
	content, err := os.ReadFile(path)
	return content, errors.Wrapf(err, "reading %s", path)
}

// writeOutput writes to the named file, or to stdout when path is empty
// or "-".
func writeOutput(path string, content []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(content)
		return errors.Wrap(err, "writing stdout")
	}
	return errors.Wrapf(os.WriteFile(path, content, 0o644), "writing %s", path)
}
