package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/toyz/springhttp/internal/annotations"
	"github.com/toyz/springhttp/internal/errors"
	"github.com/toyz/springhttp/internal/models"
	"github.com/toyz/springhttp/internal/utils"
)

// ControllerParser extracts controller metadata from raw source text by pattern
// matching. It does not build a syntax tree: routes are collected over the whole file,
// so a file declaring several classes yields the routes of all of them under the
// first class name.
type ControllerParser struct {
	requestMapping bool
	queryParams    bool
	authDetection  bool
	mappingParser  *annotations.MappingParser
	diagnostics    *utils.DiagnosticSystem
}

// Option configures a ControllerParser
type Option func(*ControllerParser)

// WithRequestMapping enables method-level @RequestMapping routes
func WithRequestMapping(enabled bool) Option {
	return func(p *ControllerParser) {
		p.requestMapping = enabled
	}
}

// WithQueryParams fills RouteInfo.QueryParams from the handler's @RequestParam parameters
func WithQueryParams(enabled bool) Option {
	return func(p *ControllerParser) {
		p.queryParams = enabled
	}
}

// WithAuthDetection fills the RequiresAuth flags from @Secured, @PreAuthorize and
// @RolesAllowed annotations
func WithAuthDetection(enabled bool) Option {
	return func(p *ControllerParser) {
		p.authDetection = enabled
	}
}

// WithDiagnostics reports recoverable parse problems at debug level
func WithDiagnostics(diagnostics *utils.DiagnosticSystem) Option {
	return func(p *ControllerParser) {
		p.diagnostics = diagnostics
	}
}

// NewControllerParser creates a new controller parser
func NewControllerParser(opts ...Option) *ControllerParser {
	p := &ControllerParser{}
	for _, opt := range opts {
		opt(p)
	}
	if p.requestMapping {
		p.mappingParser = annotations.NewMappingParser()
	}
	return p
}

// Parse extracts a ControllerInfo from text. It returns false when text contains
// neither controller marker.
func (p *ControllerParser) Parse(filePath, text string) (*models.ControllerInfo, bool) {
	if !IsController(text) {
		return nil, false
	}

	found := locateRoutes(text)
	if p.requestMapping {
		found = append(found, p.locateRequestMappings(filePath, text)...)
	}

	info := &models.ControllerInfo{
		ClassName: ExtractClassName(text),
		BasePath:  ExtractBasePath(text),
		FilePath:  filePath,
	}
	if p.authDetection {
		info.RequiresAuth = ClassRequiresAuth(text)
	}

	for _, f := range found {
		route := f.route
		if p.queryParams {
			route.QueryParams = QueryParams(HandlerParameters(text, f.end))
		}
		if p.authDetection {
			route.RequiresAuth = info.RequiresAuth || MethodRequiresAuth(text, f.start)
		}
		info.Methods = append(info.Methods, route)
	}

	return info, true
}

// locatedRoute is a route with the byte offsets of its mapping annotation
type locatedRoute struct {
	route      models.RouteInfo
	start, end int
}

// IsController reports whether text contains either controller marker
func IsController(text string) bool {
	return strings.Contains(text, RestControllerMarker) || strings.Contains(text, ControllerMarker)
}

// ExtractClassName returns the identifier of the first "class <Identifier>" in text
func ExtractClassName(text string) string {
	if m := classPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return UnknownClassName
}

// ExtractBasePath returns the @RequestMapping value found before the first
// occurrence of "class", or the empty string
func ExtractBasePath(text string) string {
	if m := basePathPattern.FindStringSubmatch(ClassLevelArea(text)); m != nil {
		return m[1]
	}
	return ""
}

// ClassLevelArea returns text up to the first occurrence of "class", or all of
// text when the keyword never occurs
func ClassLevelArea(text string) string {
	idx := strings.Index(text, ClassKeyword)
	if idx < 0 {
		idx = len(text)
	}
	return text[:idx]
}

// ExtractRoutes applies the GET, POST, PUT, DELETE and PATCH path patterns followed by
// the marker-only pattern, each scanned left to right over the whole text
func ExtractRoutes(text string) []models.RouteInfo {
	var routes []models.RouteInfo
	for _, f := range locateRoutes(text) {
		routes = append(routes, f.route)
	}
	return routes
}

func locateRoutes(text string) []locatedRoute {
	var found []locatedRoute

	for _, rp := range routePatterns {
		for _, m := range rp.pattern.FindAllStringSubmatchIndex(text, -1) {
			found = append(found, locatedRoute{
				route: newRoute(text, m[1], rp.method, text[m[2]:m[3]]),
				start: m[0],
				end:   m[1],
			})
		}
	}

	for _, m := range markerOnlyPattern.FindAllStringSubmatchIndex(text, -1) {
		end, ok := markerOnlyEnd(text, m)
		if !ok {
			continue
		}
		method, _ := models.ParseHTTPMethod(text[m[2]:m[3]])
		found = append(found, locatedRoute{
			route: newRoute(text, end, method, ""),
			start: m[0],
			end:   end,
		})
	}

	return found
}

// markerOnlyEnd decides whether a `@XxxMapping<ws>` match is an annotation without an
// argument list and returns where it ends. The whitespace run is greedy but gives back
// its last character when an opening parenthesis follows it, so only a parenthesis
// directly after the name rejects the match.
func markerOnlyEnd(text string, m []int) (int, bool) {
	end := m[1]
	if end >= len(text) || text[end] != '(' {
		return end, true
	}
	if end > m[4] {
		_, size := utf8.DecodeLastRuneInString(text[:end])
		return end - size, true
	}
	return 0, false
}

// locateRequestMappings collects method-level @RequestMapping annotations, those at
// or after the first class declaration
func (p *ControllerParser) locateRequestMappings(filePath, text string) []locatedRoute {
	classStart := 0
	if loc := classPattern.FindStringIndex(text); loc != nil {
		classStart = loc[0]
	}

	var found []locatedRoute
	for _, loc := range requestMappingName.FindAllStringIndex(text, -1) {
		if loc[0] < classStart {
			continue
		}

		end := loc[1]
		mapping := &annotations.Mapping{Method: models.MethodGet}

		open := skipWhitespace(text, end)
		if span, spanEnd, ok := annotations.ArgumentSpan(text, open); ok {
			end = spanEnd
			parsed, err := p.mappingParser.Parse(span)
			if err != nil {
				at := errors.SourceLocation{File: filePath, Line: strings.Count(text[:loc[0]], "\n") + 1}
				p.debug("ignoring @RequestMapping arguments: %v", errors.SyntaxError(at, "%v", err))
			} else {
				mapping = parsed
			}
		}

		found = append(found, locatedRoute{
			route: newRoute(text, end, mapping.Method, mapping.Path),
			start: loc[0],
			end:   end,
		})
	}
	return found
}

func (p *ControllerParser) debug(format string, args ...interface{}) {
	if p.diagnostics != nil {
		p.diagnostics.Debug(format, args...)
	}
}

// newRoute builds a route whose handler name and body flag come from the lookahead
// window starting at end
func newRoute(text string, end int, method models.HTTPMethod, path string) models.RouteInfo {
	window := Lookahead(text, end)

	route := models.RouteInfo{
		Name:    UnknownMethodName,
		Method:  method,
		Path:    path,
		HasBody: strings.Contains(window, RequestBodyMarker),
	}
	if m := handlerPattern.FindStringSubmatch(window); m != nil {
		route.Name = m[1]
	}
	if route.HasBody {
		if m := bodyTypePattern.FindStringSubmatch(window); m != nil {
			route.BodyType = m[1]
		}
	}
	return route
}

// Lookahead returns at most LookaheadWindow characters of text starting at byte
// offset start. Characters are counted as runes.
func Lookahead(text string, start int) string {
	rest := text[start:]
	n := 0
	for i := range rest {
		if n == LookaheadWindow {
			return rest[:i]
		}
		n++
	}
	return rest
}

// skipWhitespace advances past the characters matched by ws
func skipWhitespace(text string, i int) int {
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !annotations.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}
