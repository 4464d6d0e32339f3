// Package dto builds example JSON request bodies from Java DTO classes.
package dto

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/toyz/springhttp/internal/annotations"
)

// Field is one instance field of a DTO class
type Field struct {
	Name    string
	Type    string
	Example *string // @Schema(example = ...) when present
}

// Class is a parsed DTO class
type Class struct {
	Name   string
	Fields []Field
}

const fieldContextSize = 500

const ws = annotations.WS

var (
	fieldPattern     = regexp.MustCompile(`(?:private|public|protected)` + ws + `+([A-Za-z0-9<>,` + annotations.SpaceClass + `]+)` + ws + `+([a-zA-Z0-9_]+)` + ws + `*;`)
	schemaPattern    = regexp.MustCompile(`@Schema` + ws + `*\(([^)]*)\)`)
	exampleString    = regexp.MustCompile(`example` + ws + `*=` + ws + `*"([^"]*)"`)
	examplePrimitive = regexp.MustCompile(`example` + ws + `*=` + ws + `*([0-9.]+|true|false)`)
	leadingInt       = regexp.MustCompile(`^` + ws + `*[+-]?[0-9]+`)
	leadingFloat     = regexp.MustCompile(`^` + ws + `*[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?`)
)

// ParseClass extracts the instance fields declared in content. A field is skipped
// as static when "static" appears anywhere in the 500 characters before it, so a
// static constant also hides the fields that closely follow it. Annotations are
// read from the same window, stopping at the previous semicolon.
func ParseClass(name, content string) *Class {
	class := &Class{Name: name}

	for _, m := range fieldPattern.FindAllStringSubmatchIndex(content, -1) {
		start := m[0]
		context := precedingRunes(content, start, fieldContextSize)

		javaType, static := stripModifiers(content[m[2]:m[3]])
		if static || strings.Contains(context, "static") {
			continue
		}
		if i := strings.LastIndexByte(context, ';'); i >= 0 {
			context = context[i+1:]
		}

		class.Fields = append(class.Fields, Field{
			Name:    trimSpace(content[m[4]:m[5]]),
			Type:    javaType,
			Example: schemaExample(context),
		})
	}

	return class
}

// precedingRunes returns up to n characters of s ending at byte offset end
func precedingRunes(s string, end, n int) string {
	i := end
	for ; n > 0 && i > 0; n-- {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
	}
	return s[i:end]
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, annotations.IsSpace)
}

// stripModifiers removes field modifiers captured with the type and reports
// whether one of them was static
func stripModifiers(declared string) (javaType string, static bool) {
	fields := strings.FieldsFunc(declared, annotations.IsSpace)
	kept := fields[:0]
	for _, f := range fields {
		switch f {
		case "static":
			static = true
		case "final", "transient", "volatile":
		default:
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " "), static
}

// Example builds the example JSON object for the class, in field order
func (c *Class) Example() Object {
	obj := make(Object, 0, len(c.Fields))
	for _, f := range c.Fields {
		var value any
		if f.Example != nil {
			value = typedExample(*f.Example, f.Type)
		} else {
			value = ExampleValue(f.Type)
		}
		obj = append(obj, Member{Key: f.Name, Value: value})
	}
	return obj
}

func schemaExample(context string) *string {
	schema := schemaPattern.FindStringSubmatch(context)
	if schema == nil {
		return nil
	}
	if m := exampleString.FindStringSubmatch(schema[1]); m != nil {
		return &m[1]
	}
	if m := examplePrimitive.FindStringSubmatch(schema[1]); m != nil {
		return &m[1]
	}
	return nil
}

// typedExample converts an @Schema example string to the field's JSON type
func typedExample(value, javaType string) any {
	switch strings.TrimPrefix(BaseType(javaType), "java.lang.") {
	case "Integer", "int", "Long", "long", "Short", "short", "Byte", "byte":
		if n, err := strconv.ParseInt(trimSpace(leadingInt.FindString(value)), 10, 64); err == nil {
			return n
		}
		return int64(0)
	case "Double", "double", "Float", "float", "BigDecimal":
		if f, err := strconv.ParseFloat(trimSpace(leadingFloat.FindString(value)), 64); err == nil {
			return f
		}
		return float64(0)
	case "Boolean", "boolean":
		return value == "true"
	case "UUID", "java.util.UUID":
		if id, err := uuid.Parse(trimSpace(value)); err == nil {
			return id.String()
		}
		return uuid.Nil.String()
	default:
		return value
	}
}
