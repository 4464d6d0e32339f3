package dto

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// exampleValues maps Java types to the JSON value used in generated bodies
var exampleValues = map[string]any{
	"int":       int64(0),
	"Integer":   int64(0),
	"long":      int64(0),
	"Long":      int64(0),
	"double":    float64(0),
	"Double":    float64(0),
	"float":     float64(0),
	"Float":     float64(0),
	"boolean":   false,
	"Boolean":   false,
	"byte":      int64(0),
	"Byte":      int64(0),
	"short":     int64(0),
	"Short":     int64(0),
	"char":      "",
	"Character": "",

	"String": "",

	"LocalDate":      "2025-01-01",
	"LocalDateTime":  "2025-01-01T00:00:00",
	"LocalTime":      "00:00:00",
	"Date":           "2025-01-01T00:00:00",
	"Instant":        "2025-01-01T00:00:00Z",
	"ZonedDateTime":  "2025-01-01T00:00:00Z",
	"OffsetDateTime": "2025-01-01T00:00:00+00:00",

	"BigDecimal": float64(0),
	"BigInteger": int64(0),

	"UUID": uuid.Nil.String(),
}

var collectionTypes = map[string]bool{
	"List": true, "Set": true, "Collection": true,
	"ArrayList": true, "HashSet": true, "LinkedList": true,
}

var mapTypes = map[string]bool{
	"Map": true, "HashMap": true, "LinkedHashMap": true, "TreeMap": true,
}

var genericArgPattern = regexp.MustCompile(`<([^>]+)>`)

// ExampleValue returns the example JSON value for a Java type. Collections become a
// one-element array of their element example; maps and unknown types become {}.
func ExampleValue(javaType string) any {
	base := BaseType(javaType)

	if collectionTypes[base] {
		elem := GenericArgument(javaType)
		if elem == "" {
			elem = "String"
		}
		return []any{ExampleValue(elem)}
	}

	if mapTypes[base] {
		return Object{}
	}

	if v, ok := exampleValues[base]; ok {
		return v
	}
	return Object{}
}

// BaseType strips generic parameters: "List<String>" becomes "List"
func BaseType(javaType string) string {
	if i := strings.IndexByte(javaType, '<'); i >= 0 {
		javaType = javaType[:i]
	}
	return strings.TrimSpace(javaType)
}

// GenericArgument returns the text inside the first <...>, or ""
func GenericArgument(javaType string) string {
	if m := genericArgPattern.FindStringSubmatch(javaType); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// IsCollection reports whether the type is a known collection type
func IsCollection(javaType string) bool {
	return collectionTypes[BaseType(javaType)]
}

// IsStandardType reports whether the type maps to a built-in example
func IsStandardType(javaType string) bool {
	base := BaseType(javaType)
	_, known := exampleValues[base]
	return known || collectionTypes[base] || mapTypes[base]
}
