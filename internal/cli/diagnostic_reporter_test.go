package cli

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toyz/springhttp/internal/errors"
)

func TestDiagnosticReporter_ReportError(t *testing.T) {
	t.Run("plain error", func(t *testing.T) {
		var buf bytes.Buffer
		NewDiagnosticReporter(&buf, false).ReportError(fmt.Errorf("boom"))
		assert.Equal(t, "error: boom\n", buf.String())
	})

	t.Run("read error with suggestion", func(t *testing.T) {
		var buf bytes.Buffer
		err := errors.WrapReadError("src/A.java", os.ErrPermission)
		NewDiagnosticReporter(&buf, false).ReportError(err)

		output := buf.String()
		assert.Contains(t, output, "error: src/A.java: failed to read 'src/A.java': permission denied\n")
		assert.Contains(t, output, "  type: File System Error\n")
		assert.Contains(t, output, "  location: src/A.java\n")
		assert.Contains(t, output, "    1. Check the file permissions or rerun with --skip-unreadable\n")
		assert.NotContains(t, output, "context:")
	})

	t.Run("verbose adds context and cause chain", func(t *testing.T) {
		var buf bytes.Buffer
		inner := errors.WrapWriteError("out/A.http", os.ErrNotExist)
		err := errors.Wrap(errors.GenerationErrorCode, "failed to generate template for A", inner)
		NewDiagnosticReporter(&buf, true).ReportError(fmt.Errorf("run: %w", err))

		output := buf.String()
		assert.Contains(t, output, "  type: Template Generation Error\n")
		assert.Contains(t, output, "  caused by:\n    1. failed to write 'out/A.http': file does not exist\n    2. file does not exist\n")
	})

	t.Run("context keys are sorted and titled", func(t *testing.T) {
		var buf bytes.Buffer
		err := errors.WrapConfigurationError("config.yaml", "load", os.ErrNotExist)
		NewDiagnosticReporter(&buf, true).ReportError(err)

		assert.Contains(t, buf.String(), "  context:\n    Config Type: config.yaml\n    Operation: load\n")
	})
}
