package cli

import (
	"github.com/toyz/springhttp/internal/errors"
	"github.com/toyz/springhttp/internal/utils"
)

// FileScanner discovers candidate controller sources
type FileScanner struct {
	fileProcessor *utils.FileProcessor
	diagnostics   *utils.DiagnosticSystem
}

// NewFileScanner creates a new file scanner
func NewFileScanner(fileProcessor *utils.FileProcessor, diagnostics *utils.DiagnosticSystem) *FileScanner {
	return &FileScanner{
		fileProcessor: fileProcessor,
		diagnostics:   diagnostics,
	}
}

// Scan returns path itself when it is a file, otherwise every descendant whose
// name ends with ext in lexical walk order. A missing path yields no files.
func (s *FileScanner) Scan(path, ext string) ([]string, error) {
	files, exists, err := s.fileProcessor.CollectSourceFiles(path, ext)
	if err != nil {
		return nil, errors.WrapFileSystemError("scan", path, err)
	}
	if !exists {
		s.diagnostics.Warn("Path '%s' does not exist, nothing to scan", path)
		return nil, nil
	}

	s.diagnostics.Verbose("Found %d candidate file(s) under %s", len(files), path)
	return files, nil
}
