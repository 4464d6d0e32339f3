package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassRequiresAuth(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"secured", "@Secured(\"ROLE_ADMIN\")\n@RestController\nclass A {}", true},
		{"pre authorize", "@PreAuthorize(\"isAuthenticated()\")\nclass A {}", true},
		{"roles allowed", "@RolesAllowed(\"ADMIN\")\nclass A {}", true},
		{"inside the class only", "@RestController\nclass A {\n@Secured(\"X\") void f() {}\n}", false},
		{"block comment", "/* @Secured(\"X\") */\n@RestController\nclass A {}", false},
		{"no class", "@Secured(\"X\") interface A {}", false},
		{"none", "@RestController\nclass A {}", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassRequiresAuth(tt.text))
		})
	}
}

func TestMethodRequiresAuth(t *testing.T) {
	t.Run("annotation before the mapping", func(t *testing.T) {
		text := "class A {\n  @PreAuthorize(\"hasRole('ADMIN')\")\n  @GetMapping(\"/admin\")"
		assert.True(t, MethodRequiresAuth(text, strings.Index(text, "@GetMapping")))
	})

	t.Run("roles allowed counts only at class level", func(t *testing.T) {
		text := "class A {\n  @RolesAllowed(\"ADMIN\")\n  @GetMapping(\"/admin\")"
		assert.False(t, MethodRequiresAuth(text, strings.Index(text, "@GetMapping")))
	})

	t.Run("context is limited to 500 characters", func(t *testing.T) {
		text := "@Secured(\"X\")\n" + strings.Repeat(" ", AuthContextSize-14) + "@GetMapping"
		assert.True(t, MethodRequiresAuth(text, strings.Index(text, "@GetMapping")))

		text = "@Secured(\"X\")\n" + strings.Repeat(" ", AuthContextSize-13) + "@GetMapping"
		assert.False(t, MethodRequiresAuth(text, strings.Index(text, "@GetMapping")))
	})

	t.Run("context counts characters", func(t *testing.T) {
		text := "@Secured(\"X\")\n" + strings.Repeat("é", AuthContextSize-14) + "@GetMapping"
		assert.True(t, MethodRequiresAuth(text, strings.Index(text, "@GetMapping")))
	})

	t.Run("commented out", func(t *testing.T) {
		text := "/* @Secured(\"X\") */\n@GetMapping"
		assert.False(t, MethodRequiresAuth(text, strings.Index(text, "@GetMapping")))
	})
}
