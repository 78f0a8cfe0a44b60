package presenter

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newTestPresenter() (*TerminalPresenter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewWithOptions(&out, &errOut, ColorNever), &out, &errOut
}

func TestErrorOutput(t *testing.T) {
	t.Run("with context", func(t *testing.T) {
		p, out, errOut := newTestPresenter()
		p.Error(errors.New("boom"), "Failed to parse input")
		assert.Empty(t, out.String())
		assert.Contains(t, errOut.String(), "[ERROR] Failed to parse input: boom")
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		p, _, errOut := newTestPresenter()
		p.Error(nil, "context")
		assert.Empty(t, errOut.String())
	})

	t.Run("errors survive quiet mode", func(t *testing.T) {
		p, _, errOut := newTestPresenter()
		p.SetQuiet(true)
		p.Error(errors.New("boom"), "")
		assert.Contains(t, errOut.String(), "boom")
	})
}

func TestQuietModeSuppressesMessages(t *testing.T) {
	p, out, _ := newTestPresenter()
	p.SetQuiet(true)
	assert.True(t, p.IsQuiet())

	p.Success("done")
	p.Warning("careful")
	p.Info("details")
	p.Section("Title")
	p.Separator()

	assert.Empty(t, out.String())
}

func TestMessageFormatting(t *testing.T) {
	p, out, _ := newTestPresenter()

	p.Success("generated report")
	p.Warning("file exists")
	p.Info("3 files scanned")
	p.Section("Results")

	output := out.String()
	assert.Contains(t, output, "✓ generated report")
	assert.Contains(t, output, "⚠ file exists")
	assert.Contains(t, output, "3 files scanned")
	assert.Contains(t, output, "Results\n-------")
}
