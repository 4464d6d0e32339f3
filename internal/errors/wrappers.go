package errors

import "fmt"

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s '%s'", operation, path)
	return Wrap(FileSystemErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapReadError wraps an error raised while reading a source file
func WrapReadError(path string, cause error) *BaseError {
	return WrapFileSystemError("read", path, cause).
		WithLocation(SourceLocation{File: path}).
		WithSuggestion("Check the file permissions or rerun with --skip-unreadable")
}

// DecodeError reports a source file that is not valid UTF-8 text
func DecodeError(path string) *BaseError {
	return New(DecodeErrorCode, "file is not valid UTF-8 text").
		WithLocation(SourceLocation{File: path}).
		WithContext("path", path).
		WithSuggestion("Convert the file to UTF-8 or rerun with --skip-unreadable")
}

// WrapWriteError wraps an error raised while writing generated output
func WrapWriteError(path string, cause error) *BaseError {
	return WrapFileSystemError("write", path, cause)
}

// WrapOutputDirError wraps an error raised while creating the output directory
func WrapOutputDirError(dir string, cause error) *BaseError {
	return WrapFileSystemError("create output directory", dir, cause).
		WithSuggestion("Choose a writable location with --out")
}

// WrapConfigurationError wraps configuration-related errors
func WrapConfigurationError(configType, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s configuration '%s'", operation, configType)
	return Wrap(ConfigurationErrorCode, message, cause).
		WithContext("config_type", configType).
		WithContext("operation", operation)
}

// SyntaxError reports annotation text that could not be parsed
func SyntaxError(loc SourceLocation, format string, args ...interface{}) *BaseError {
	return Newf(SyntaxErrorCode, format, args...).WithLocation(loc)
}
