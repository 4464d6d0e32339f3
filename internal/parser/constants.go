package parser

import (
	"fmt"
	"regexp"

	"github.com/toyz/springhttp/internal/annotations"
	"github.com/toyz/springhttp/internal/models"
)

const (
	// RestControllerMarker and ControllerMarker identify a controller source file
	RestControllerMarker = "@RestController"
	ControllerMarker     = "@Controller"

	// RequestBodyMarker flags a route that takes a request body
	RequestBodyMarker = "@RequestBody"

	// ClassKeyword bounds the class-level annotation area
	ClassKeyword = "class"

	// UnknownClassName is used when no class declaration is found
	UnknownClassName = "Unknown"

	// UnknownMethodName is used when no handler is found in the lookahead window
	UnknownMethodName = "unknown"

	// LookaheadWindow is the number of characters after a mapping annotation
	// searched for the handler name and the request body marker
	LookaheadWindow = 200
)

const ws = annotations.WS

// mappingArgs matches `( [value|path] [=] "path"` after an annotation name
const mappingArgs = ws + `*\(` + ws + `*(?:value|path)?` + ws + `*=?` + ws + `*["']([^"']+)["']`

var (
	classPattern       = regexp.MustCompile(`class` + ws + `+([A-Za-z0-9_]+)`)
	basePathPattern    = regexp.MustCompile(`@RequestMapping` + mappingArgs)
	markerOnlyPattern  = regexp.MustCompile(`@(Get|Post|Put|Delete|Patch)Mapping(` + ws + `*)`)
	handlerPattern     = regexp.MustCompile(`([A-Za-z0-9_]+)` + ws + `*\(`)
	requestMappingName = regexp.MustCompile(`@RequestMapping`)
	bodyTypePattern    = regexp.MustCompile(
		`@RequestBody(?:` + ws + `*\([^)]*\))?` + ws + `+` +
			`(?:(?:final|@[A-Za-z0-9_.]+(?:` + ws + `*\([^)]*\))?)` + ws + `+)*` +
			`([A-Za-z0-9_.]+(?:<[^>]*>)?)` + ws + `+[A-Za-z0-9_]+`)
)

// routePattern is a path-carrying mapping annotation for one verb
type routePattern struct {
	method  models.HTTPMethod
	pattern *regexp.Regexp
}

// routePatterns are applied in this order: GET, POST, PUT, DELETE, PATCH
var routePatterns = buildRoutePatterns()

func buildRoutePatterns() []routePattern {
	names := map[models.HTTPMethod]string{
		models.MethodGet:    "Get",
		models.MethodPost:   "Post",
		models.MethodPut:    "Put",
		models.MethodDelete: "Delete",
		models.MethodPatch:  "Patch",
	}

	patterns := make([]routePattern, 0, len(models.AllMethods))
	for _, method := range models.AllMethods {
		patterns = append(patterns, routePattern{
			method:  method,
			pattern: regexp.MustCompile(fmt.Sprintf(`@%sMapping%s`, names[method], mappingArgs)),
		})
	}
	return patterns
}
