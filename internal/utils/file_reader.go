package utils

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/toyz/springhttp/internal/errors"
)

// FileReader reads source files as text with caching
type FileReader struct {
	contentCache *Cache[string, string]
}

// NewFileReader creates a new FileReader instance with caching
func NewFileReader() *FileReader {
	return &FileReader{
		contentCache: NewCache[string, string](),
	}
}

// ReadSource reads a file as UTF-8 text and normalizes line endings to "\n".
// Invalid UTF-8 is reported as a decode error.
func (fr *FileReader) ReadSource(filePath string) (string, error) {
	cleanPath := filepath.Clean(filePath)

	if cached, fresh := fr.contentCache.Fresh(cleanPath, cleanPath); fresh {
		return cached, nil
	}

	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return "", errors.WrapReadError(filePath, err)
	}
	if !utf8.Valid(content) {
		return "", errors.DecodeError(filePath)
	}

	text := NormalizeNewlines(string(content))

	// a failed stat only means the entry is not cached
	_ = fr.contentCache.StoreFile(cleanPath, cleanPath, text)

	return text, nil
}

// NormalizeNewlines converts "\r\n" and lone "\r" line endings to "\n"
func NormalizeNewlines(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// CachedFiles returns the number of files currently cached
func (fr *FileReader) CachedFiles() int {
	return fr.contentCache.Len()
}
