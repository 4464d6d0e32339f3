package templates

import (
	"regexp"
	"strings"

	"github.com/toyz/springhttp/internal/models"
)

const (
	// RequestDelimiter separates request blocks in a .http file
	RequestDelimiter = "###"

	// AuthorizationHeader is written on every request, or only on routes that
	// require auth when auth detection is enabled
	AuthorizationHeader = "Authorization: Bearer {{token}}"

	// ContentTypeHeader is written on requests that carry a body
	ContentTypeHeader = "Content-Type: application/json"

	// PlaceholderBody is the body written when no other body is known
	PlaceholderBody = "{}"
)

// BodyProvider supplies the request body for a route that has one
type BodyProvider interface {
	Body(route models.RouteInfo) string
}

type placeholderBodies struct{}

func (placeholderBodies) Body(models.RouteInfo) string {
	return PlaceholderBody
}

// QueryValue is written for required query parameters; optional ones are left empty
const QueryValue = "value"

var pathVariable = regexp.MustCompile(`\{([^}]+)\}`)

// HTTPRenderer renders controllers as .http request templates
type HTTPRenderer struct {
	baseURL       string
	bodies        BodyProvider
	pathVariables bool
	authDetection bool
}

// RenderOption configures an HTTPRenderer
type RenderOption func(*HTTPRenderer)

// WithPathVariables rewrites {name} path segments as {{name}} request variables
func WithPathVariables() RenderOption {
	return func(r *HTTPRenderer) {
		r.pathVariables = true
	}
}

// WithAuthDetection writes the Authorization header only on routes marked RequiresAuth
func WithAuthDetection() RenderOption {
	return func(r *HTTPRenderer) {
		r.authDetection = true
	}
}

// NewHTTPRenderer creates a renderer prefixing every request line with baseURL.
// A nil BodyProvider writes {} for every body.
func NewHTTPRenderer(baseURL string, bodies BodyProvider, opts ...RenderOption) *HTTPRenderer {
	if bodies == nil {
		bodies = placeholderBodies{}
	}
	r := &HTTPRenderer{baseURL: baseURL, bodies: bodies}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render builds the template for one controller: a header block followed by one
// block per route, lines joined by "\n" without a trailing newline of their own.
// Interpolated values are written verbatim.
func (r *HTTPRenderer) Render(info *models.ControllerInfo) string {
	lines := []string{
		"### " + info.ClassName,
		"# File: " + info.FilePath,
		"",
	}

	for _, route := range info.Methods {
		lines = append(lines,
			"# "+route.Name,
			route.Method.String()+" "+r.url(info.BasePath, route),
		)
		if !r.authDetection || route.RequiresAuth {
			lines = append(lines, AuthorizationHeader)
		}

		if route.HasBody {
			lines = append(lines, ContentTypeHeader, "", r.bodies.Body(route))
		}

		lines = append(lines, "", RequestDelimiter, "")
	}

	return strings.Join(lines, "\n")
}

func (r *HTTPRenderer) url(basePath string, route models.RouteInfo) string {
	path := JoinPath(basePath, route.Path)
	if r.pathVariables {
		path = FormatPathVariables(path)
	}
	return r.baseURL + path + QueryString(route.QueryParams)
}

// FormatPathVariables replaces each {name} with {{name}}
func FormatPathVariables(path string) string {
	return pathVariable.ReplaceAllString(path, "{{${1}}}")
}

// QueryString builds "?a=value&b=" from the parameters, value for required ones.
// It is empty when there are none.
func QueryString(params []models.QueryParam) string {
	if len(params) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(params))
	for _, p := range params {
		value := ""
		if p.Required {
			value = QueryValue
		}
		pairs = append(pairs, p.Name+"="+value)
	}
	return "?" + strings.Join(pairs, "&")
}

// JoinPath joins the class and method paths as "/" + base + "/" + method with
// surrounding slashes trimmed from each, then replaces each "//" with "/" in a
// single non-overlapping pass.
func JoinPath(basePath, methodPath string) string {
	full := "/" + strings.Trim(basePath, "/") + "/" + strings.Trim(methodPath, "/")
	return strings.ReplaceAll(full, "//", "/")
}
