package dto

import (
	"path/filepath"
	"strings"

	"github.com/toyz/springhttp/internal/models"
	"github.com/toyz/springhttp/internal/utils"
)

// EmptyBody is the placeholder body used when no DTO can be resolved
const EmptyBody = "{}"

// BodyResolver renders request bodies from DTO sources found among the scanned files
type BodyResolver struct {
	index       map[string]string // "UserDto" -> first discovered UserDto<ext>
	reader      *utils.FileReader
	bodies      *utils.Cache[string, string]
	diagnostics *utils.DiagnosticSystem
}

// NewBodyResolver indexes files by class name. When two files share a name the
// first in traversal order wins.
func NewBodyResolver(files []string, ext string, reader *utils.FileReader, diagnostics *utils.DiagnosticSystem) *BodyResolver {
	index := make(map[string]string)
	for _, f := range files {
		base := filepath.Base(f)
		if !strings.HasSuffix(base, ext) {
			continue
		}
		name := strings.TrimSuffix(base, ext)
		if _, seen := index[name]; !seen {
			index[name] = f
		}
	}

	return &BodyResolver{
		index:       index,
		reader:      reader,
		bodies:      utils.NewCache[string, string](),
		diagnostics: diagnostics,
	}
}

// Body returns the request body for a route. Routes without a resolvable DTO get {}.
func (r *BodyResolver) Body(route models.RouteInfo) string {
	if route.BodyType == "" {
		return EmptyBody
	}
	return r.bodies.GetOrCompute(route.BodyType, func() string {
		return r.render(route.BodyType)
	})
}

func (r *BodyResolver) render(bodyType string) string {
	target := bodyType
	collection := IsCollection(bodyType)
	if collection {
		target = GenericArgument(bodyType)
	}
	if IsStandardType(target) {
		r.debug("%s is a standard type, using an empty body", bodyType)
		return EmptyBody
	}

	class, ok := r.lookup(target)
	if !ok {
		r.debug("no DTO source for %s", bodyType)
		return EmptyBody
	}

	var value any = class.Example()
	if collection {
		value = []any{value}
	}

	body, err := Indent(value)
	if err != nil {
		r.debug("failed to render body for %s: %v", bodyType, err)
		return EmptyBody
	}
	return body
}

func (r *BodyResolver) lookup(javaType string) (*Class, bool) {
	name := BaseType(javaType)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}

	path, ok := r.index[name]
	if !ok {
		return nil, false
	}

	content, err := r.reader.ReadSource(path)
	if err != nil {
		r.debug("skipping DTO %s: %v", path, err)
		return nil, false
	}

	class := ParseClass(name, content)
	if len(class.Fields) == 0 {
		return nil, false
	}
	return class, true
}

func (r *BodyResolver) debug(format string, args ...interface{}) {
	if r.diagnostics != nil {
		r.diagnostics.Debug(format, args...)
	}
}
