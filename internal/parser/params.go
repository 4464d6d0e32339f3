package parser

import (
	"regexp"
	"strings"

	"github.com/toyz/springhttp/internal/annotations"
	"github.com/toyz/springhttp/internal/models"
)

// Parameter annotations, in the order they are tested against a parameter
const (
	RequestBodyAnnotation   = "RequestBody"
	PathVariableAnnotation  = "PathVariable"
	RequestParamAnnotation  = "RequestParam"
	RequestHeaderAnnotation = "RequestHeader"
)

var parameterAnnotations = []string{
	RequestBodyAnnotation,
	PathVariableAnnotation,
	RequestParamAnnotation,
	RequestHeaderAnnotation,
}

var (
	annotationName = regexp.MustCompile(`^@([A-Za-z0-9_.]+)`)
	explicitName   = regexp.MustCompile(`^\(` + ws + `*["']([^"']+)["']|\b(?:name|value)` + ws + `*=` + ws + `*["']([^"']+)["']`)
	optionalParam  = regexp.MustCompile(`required` + ws + `*=` + ws + `*false|defaultValue` + ws + `*=`)
)

// Parameter is one handler parameter
type Parameter struct {
	Name       string // bound name: the annotation's name or value when given, else the variable name
	Type       string
	Annotation string // one of the parameter annotations, or ""
	Required   bool
}

// HandlerParameters returns the parameters of the handler whose name is found in
// the lookahead window starting at end. The argument list is read in full, even
// past the window.
func HandlerParameters(text string, end int) []Parameter {
	loc := handlerPattern.FindStringIndex(Lookahead(text, end))
	if loc == nil {
		return nil
	}

	span, _, ok := annotations.ArgumentSpan(text, end+loc[1]-1)
	if !ok {
		return nil
	}

	var params []Parameter
	for _, raw := range splitParameters(span[1 : len(span)-1]) {
		if p, ok := parseParameter(raw); ok {
			params = append(params, p)
		}
	}
	return params
}

// QueryParams keeps the @RequestParam parameters
func QueryParams(params []Parameter) []models.QueryParam {
	var query []models.QueryParam
	for _, p := range params {
		if p.Annotation == RequestParamAnnotation {
			query = append(query, models.QueryParam{Name: p.Name, Required: p.Required})
		}
	}
	return query
}

// splitParameters splits an argument list on top-level commas. Commas inside
// generics, annotation arguments and string literals do not split.
func splitParameters(list string) []string {
	var (
		parts []string
		depth int
		quote byte
		start int
	)
	for i := 0; i < len(list); i++ {
		c := list[i]
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
		case '<', '(', '{':
			depth++
		case '>', ')', '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, list[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, list[start:])

	var kept []string
	for _, p := range parts {
		if p = strings.TrimFunc(p, annotations.IsSpace); p != "" {
			kept = append(kept, p)
		}
	}
	return kept
}

// parseParameter reads one declaration such as `@RequestParam(required = false) Integer page`.
// Declarations with fewer than a type and a name are dropped.
func parseParameter(raw string) (Parameter, bool) {
	args := make(map[string]string)
	var rest strings.Builder

	for i := 0; i < len(raw); {
		m := annotationName.FindStringSubmatch(raw[i:])
		if m == nil {
			rest.WriteByte(raw[i])
			i++
			continue
		}

		name := m[1][strings.LastIndexByte(m[1], '.')+1:]
		i += len(m[0])
		args[name] = ""
		if span, end, ok := annotations.ArgumentSpan(raw, skipWhitespace(raw, i)); ok {
			args[name] = span
			i = end
		}
		rest.WriteByte(' ')
	}

	tokens := strings.FieldsFunc(rest.String(), annotations.IsSpace)
	if len(tokens) < 2 {
		return Parameter{}, false
	}

	p := Parameter{
		Name: tokens[len(tokens)-1],
		Type: tokens[len(tokens)-2],
	}
	for _, a := range parameterAnnotations {
		if _, ok := args[a]; ok {
			p.Annotation = a
			break
		}
	}

	switch p.Annotation {
	case RequestBodyAnnotation:
		p.Required = true
	case RequestParamAnnotation, PathVariableAnnotation, RequestHeaderAnnotation:
		span := args[p.Annotation]
		if m := explicitName.FindStringSubmatch(span); m != nil {
			p.Name = m[1] + m[2]
		}
		p.Required = !optionalParam.MatchString(span)
	}
	return p, true
}
