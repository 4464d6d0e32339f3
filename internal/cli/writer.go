package cli

import (
	"os"
	"strings"

	"github.com/docker/go-units"

	"github.com/toyz/springhttp/internal/errors"
	"github.com/toyz/springhttp/internal/models"
	"github.com/toyz/springhttp/internal/utils"
)

// TemplateExtension is appended to the class name of every generated file
const TemplateExtension = ".http"

// OutputWriter writes rendered templates into the output directory
type OutputWriter struct {
	outputDir   string
	diagnostics *utils.DiagnosticSystem
	written     map[string]string // output path -> source that produced it
}

// NewOutputWriter creates a writer for outputDir
func NewOutputWriter(outputDir string, diagnostics *utils.DiagnosticSystem) *OutputWriter {
	return &OutputWriter{
		outputDir:   outputDir,
		diagnostics: diagnostics,
		written:     make(map[string]string),
	}
}

// EnsureDir creates the output directory and any missing parents
func (w *OutputWriter) EnsureDir() error {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return errors.WrapOutputDirError(w.outputDir, err)
	}
	return nil
}

// OutputPath returns the file a controller class is written to. The directory is
// kept as given, so "out/" yields "out/X.http" and "./out" yields "./out/X.http".
func (w *OutputWriter) OutputPath(className string) string {
	name := className + TemplateExtension
	if w.outputDir == "" || strings.HasSuffix(w.outputDir, "/") {
		return w.outputDir + name
	}
	return w.outputDir + "/" + name
}

// Write stores content for info, replacing any earlier file of the same class name
func (w *OutputWriter) Write(info *models.ControllerInfo, content string) (models.GeneratedFile, bool, error) {
	outFile := w.OutputPath(info.ClassName)

	previous, overwritten := w.written[outFile]
	if overwritten {
		w.diagnostics.Warn("Duplicate controller class '%s': %s overwrites output generated from %s",
			info.ClassName, info.FilePath, previous)
	}

	if err := os.WriteFile(outFile, []byte(content), 0644); err != nil {
		return models.GeneratedFile{}, false, errors.WrapWriteError(outFile, err).
			WithContext("class", info.ClassName)
	}
	w.written[outFile] = info.FilePath

	w.diagnostics.Verbose("Wrote %s (%d route(s), %s)", outFile, info.RouteCount(), units.HumanSize(float64(len(content))))

	return models.GeneratedFile{
		ClassName:  info.ClassName,
		OutputPath: outFile,
		SourcePath: info.FilePath,
		Bytes:      len(content),
		Routes:     info.RouteCount(),
	}, overwritten, nil
}
