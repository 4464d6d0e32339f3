package models

import "strings"

// HTTPMethod is an HTTP verb understood by the route patterns
type HTTPMethod string

const (
	MethodGet    HTTPMethod = "GET"
	MethodPost   HTTPMethod = "POST"
	MethodPut    HTTPMethod = "PUT"
	MethodDelete HTTPMethod = "DELETE"
	MethodPatch  HTTPMethod = "PATCH"
)

// AllMethods lists the verbs in pattern priority order
var AllMethods = []HTTPMethod{MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch}

// ParseHTTPMethod upper-cases name and reports whether it is a known verb
func ParseHTTPMethod(name string) (HTTPMethod, bool) {
	m := HTTPMethod(strings.ToUpper(name))
	for _, known := range AllMethods {
		if m == known {
			return m, true
		}
	}
	return m, false
}

// String returns the verb as written in a request line
func (m HTTPMethod) String() string {
	return string(m)
}
