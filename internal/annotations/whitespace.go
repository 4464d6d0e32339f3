package annotations

import "unicode"

// SpaceClass is the body of a regexp character class holding every character
// treated as whitespace in Java sources: the ASCII controls \t to \r, space, the
// information separators \x1c to \x1f, and the Unicode space separators.
const SpaceClass = `\t\n\v\f\r \x{1c}-\x{1f}\x{85}\x{a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}`

// WS matches one character of SpaceClass
const WS = `[` + SpaceClass + `]`

// IsSpace reports whether r is matched by WS
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
