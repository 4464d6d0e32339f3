package annotations

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/springhttp/internal/models"
)

// MappingParser parses the argument list of a Spring mapping annotation,
// e.g. `(value = "/orders", method = RequestMethod.POST)`.
type MappingParser struct {
	parser *participle.Parser[ArgumentList]
}

// ArgumentList is the parenthesised argument list of an annotation
type ArgumentList struct {
	Args []*Argument `parser:"'(' ( @@ ( ',' @@ )* )? ')'"`
}

// Argument is either `name = value` or a bare positional value
type Argument struct {
	Name  string `parser:"( @Ident '=' )?"`
	Value *Value `parser:"@@"`
}

// Value is a single annotation element value
type Value struct {
	String *string    `parser:"  @String"`
	List   *ValueList `parser:"| @@"`
	Ref    *string    `parser:"| @( Ident ( '.' Ident )* )"`
	Number *string    `parser:"| @Number"`
}

// ValueList is a Java array initializer `{a, b}`
type ValueList struct {
	Items []*Value `parser:"'{' ( @@ ( ',' @@ )* ','? )? '}'"`
}

// Mapping is the route information carried by a mapping annotation
type Mapping struct {
	Path   string
	Method models.HTTPMethod
}

// NewMappingParser creates a new argument list parser
func NewMappingParser() *MappingParser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "String", Pattern: `"(\\.|[^"\\])*"|'(\\.|[^'\\])*'`},
		{Name: "Comment", Pattern: `//[^\n]*|/\*([^*]|\*+[^*/])*\*+/`},
		{Name: "Number", Pattern: `[-+]?[0-9]+(\.[0-9]+)?[lLfFdD]?`},
		{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*`},
		{Name: "Punct", Pattern: `[(){},=.]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser := participle.MustBuild[ArgumentList](
		participle.Lexer(lex),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(2),
	)

	return &MappingParser{parser: parser}
}

// Parse parses a parenthesised argument list into its route path and verb.
// The path is taken from `value`/`path`, else the first positional string; the verb
// from `method`, defaulting to GET. Array values contribute their first element.
func (p *MappingParser) Parse(args string) (*Mapping, error) {
	list, err := p.parser.ParseString("", args)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping arguments %q: %w", args, err)
	}

	mapping := &Mapping{Method: models.MethodGet}
	pathSet := false

	for _, arg := range list.Args {
		switch arg.Name {
		case "value", "path":
			if s, ok := arg.Value.firstString(); ok {
				mapping.Path = s
				pathSet = true
			}
		case "method":
			if ref, ok := arg.Value.firstRef(); ok {
				if m, known := models.ParseHTTPMethod(lastSegment(ref)); known {
					mapping.Method = m
				}
			}
		case "":
			if !pathSet {
				if s, ok := arg.Value.firstString(); ok {
					mapping.Path = s
					pathSet = true
				}
			}
		}
	}

	return mapping, nil
}

func (v *Value) firstString() (string, bool) {
	switch {
	case v == nil:
		return "", false
	case v.String != nil:
		return unquote(*v.String), true
	case v.List != nil && len(v.List.Items) > 0:
		return v.List.Items[0].firstString()
	}
	return "", false
}

func (v *Value) firstRef() (string, bool) {
	switch {
	case v == nil:
		return "", false
	case v.Ref != nil:
		return *v.Ref, true
	case v.List != nil && len(v.List.Items) > 0:
		return v.List.Items[0].firstRef()
	}
	return "", false
}

func unquote(s string) string {
	if len(s) >= 2 {
		return s[1 : len(s)-1]
	}
	return s
}

func lastSegment(ref string) string {
	if i := strings.LastIndexByte(ref, '.'); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// ArgumentSpan returns the balanced "( ... )" text starting at text[open], which must
// be '('. Parentheses inside string or char literals are ignored. ok is false when the
// list is not closed before the end of text.
func ArgumentSpan(text string, open int) (span string, end int, ok bool) {
	if open >= len(text) || text[open] != '(' {
		return "", open, false
	}

	depth := 0
	var quote byte
	for i := open; i < len(text); i++ {
		c := text[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return text[open : i+1], i + 1, true
			}
		}
	}
	return "", open, false
}
