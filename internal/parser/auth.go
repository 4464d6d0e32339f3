package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// AuthContextSize is the number of characters before a mapping annotation searched
// for a method-level security annotation
const AuthContextSize = 500

var (
	classAuthMarkers  = []string{"@Secured", "@PreAuthorize", "@RolesAllowed"}
	methodAuthMarkers = []string{"@Secured", "@PreAuthorize"}

	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

// ClassRequiresAuth reports whether a security annotation appears before the
// first class declaration. Block comments are ignored.
func ClassRequiresAuth(text string) bool {
	loc := classPattern.FindStringIndex(text)
	if loc == nil {
		return false
	}
	return containsAny(blockComment.ReplaceAllString(text[:loc[0]], " "), classAuthMarkers)
}

// MethodRequiresAuth reports whether @Secured or @PreAuthorize appears in the
// AuthContextSize characters before the annotation starting at byte offset start.
// The context is not bounded by the previous handler, so an annotation on one
// handler also marks the routes declared shortly after it.
func MethodRequiresAuth(text string, start int) bool {
	i := start
	for n := 0; n < AuthContextSize && i > 0; n++ {
		_, size := utf8.DecodeLastRuneInString(text[:i])
		i -= size
	}
	return containsAny(blockComment.ReplaceAllString(text[i:start], " "), methodAuthMarkers)
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
