package utils

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileProcessor provides utilities for discovering source files on disk
type FileProcessor struct {
	fileReader *FileReader
}

// NewFileProcessor creates a new file processor
func NewFileProcessor() *FileProcessor {
	return &FileProcessor{
		fileReader: NewFileReader(),
	}
}

// FileFilter defines a function that determines whether a file should be processed
type FileFilter func(path string, info os.DirEntry) bool

// DirectoryFilter defines a function that determines whether a directory should be processed
type DirectoryFilter func(path string, info os.DirEntry) bool

// FileWalkOptions configures file walking behavior
type FileWalkOptions struct {
	FileFilter      FileFilter
	DirectoryFilter DirectoryFilter
	SkipErrors      bool
}

// SuffixFileFilter keeps non-directory entries whose name ends with suffix
func SuffixFileFilter(suffix string) FileFilter {
	return func(path string, info os.DirEntry) bool {
		if info.IsDir() {
			return false
		}
		return strings.HasSuffix(info.Name(), suffix)
	}
}

// WalkFiles walks through files in a directory tree with filtering.
// Entries are visited in lexical order within each directory.
func (fp *FileProcessor) WalkFiles(rootDir string, options FileWalkOptions) ([]string, error) {
	var matchedFiles []string

	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if options.SkipErrors {
				return nil
			}
			return WrapProcessError("walk "+path, err)
		}

		if d.IsDir() {
			if path != rootDir && options.DirectoryFilter != nil && !options.DirectoryFilter(path, d) {
				return filepath.SkipDir
			}
			return nil
		}

		if options.FileFilter == nil || options.FileFilter(path, d) {
			matchedFiles = append(matchedFiles, path)
		}
		return nil
	})

	return matchedFiles, err
}

// CollectSourceFiles resolves path into the list of candidate source files.
// A regular file is returned as-is regardless of its suffix, a directory is walked
// recursively with unreadable subdirectories skipped. exists reports whether path
// was present at all.
func (fp *FileProcessor) CollectSourceFiles(path, suffix string) (files []string, exists bool, err error) {
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			return nil, false, nil
		}
		return nil, true, WrapProcessError("stat "+path, statErr)
	}

	if info.Mode().IsRegular() {
		return []string{path}, true, nil
	}
	if !info.IsDir() {
		return nil, true, nil
	}

	files, err = fp.WalkFiles(path, FileWalkOptions{
		FileFilter: SuffixFileFilter(suffix),
		SkipErrors: true,
	})
	return files, true, err
}

// GetFileReader returns the underlying FileReader for advanced operations
func (fp *FileProcessor) GetFileReader() *FileReader {
	return fp.fileReader
}
