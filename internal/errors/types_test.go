package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceLocation_String(t *testing.T) {
	tests := []struct {
		loc  SourceLocation
		want string
	}{
		{SourceLocation{}, "unknown location"},
		{SourceLocation{File: "A.java"}, "A.java"},
		{SourceLocation{File: "A.java", Line: 3}, "A.java:3"},
		{SourceLocation{File: "A.java", Line: 3, Column: 7}, "A.java:3:7"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.loc.String())
	}
}

func TestBaseError_Error(t *testing.T) {
	err := Wrap(FileSystemErrorCode, "failed to read", os.ErrPermission).
		WithLocation(SourceLocation{File: "A.java", Line: 2})

	assert.Equal(t, "A.java:2: failed to read: permission denied", err.Error())
	assert.True(t, stderrors.Is(err, os.ErrPermission))
	assert.Equal(t, FileSystemErrorCode, err.ErrorCode())
	assert.Empty(t, err.Context())
}

func TestHasCode(t *testing.T) {
	inner := DecodeError("A.java")
	outer := Wrap(GenerationErrorCode, "generation failed", inner)
	wrapped := fmt.Errorf("run: %w", outer)

	assert.True(t, HasCode(wrapped, GenerationErrorCode))
	assert.True(t, HasCode(wrapped, DecodeErrorCode))
	assert.False(t, HasCode(wrapped, ConfigurationErrorCode))
	assert.False(t, HasCode(os.ErrNotExist, FileSystemErrorCode))
	assert.False(t, HasCode(nil, UnknownErrorCode))

	var target *BaseError
	require.True(t, stderrors.As(wrapped, &target))
	assert.Equal(t, GenerationErrorCode, target.Code)
}

func TestWrapOutputDirError(t *testing.T) {
	err := WrapOutputDirError("out", os.ErrExist)
	assert.Equal(t, "failed to create output directory 'out': file already exists", err.Error())
	assert.Equal(t, []string{"Choose a writable location with --out"}, err.Suggestions())
}

func TestWrappers(t *testing.T) {
	t.Run("read error", func(t *testing.T) {
		err := WrapReadError("src/A.java", os.ErrPermission)
		assert.Equal(t, FileSystemErrorCode, err.ErrorCode())
		assert.Equal(t, "read", err.Context()["operation"])
		assert.Equal(t, "src/A.java", err.Location().File)
		assert.Len(t, err.Suggestions(), 1)
	})

	t.Run("decode error", func(t *testing.T) {
		err := DecodeError("src/A.java")
		assert.Equal(t, "src/A.java: file is not valid UTF-8 text", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("syntax error", func(t *testing.T) {
		err := SyntaxError(SourceLocation{File: "A.java", Line: 9}, "unexpected %q", "+")
		assert.Equal(t, `A.java:9: unexpected "+"`, err.Error())
		assert.Equal(t, "SyntaxError", err.ErrorCode().String())
	})

	t.Run("configuration error", func(t *testing.T) {
		err := WrapConfigurationError("app.yaml", "load", os.ErrNotExist)
		assert.Equal(t, "failed to load configuration 'app.yaml': file does not exist", err.Error())
		assert.Equal(t, "app.yaml", err.Context()["config_type"])
	})
}
