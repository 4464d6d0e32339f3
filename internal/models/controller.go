package models

// ControllerInfo represents one recognized controller source file and its routes
type ControllerInfo struct {
	ClassName string      // first "class <Identifier>" in the file, or "Unknown"
	BasePath  string      // class-level @RequestMapping value, possibly empty
	Methods   []RouteInfo // routes in discovery order, never filtered
	FilePath  string      // source file path as discovered

	// RequiresAuth is set when a security annotation precedes the class declaration.
	// Only filled in when auth detection is enabled.
	RequiresAuth bool
}

// RouteInfo represents a single HTTP route extracted from a controller
type RouteInfo struct {
	Name    string     // handler name found in the lookahead window, or "unknown"
	Method  HTTPMethod // HTTP verb
	Path    string     // sub-path from the mapping annotation, possibly empty
	HasBody bool       // whether @RequestBody appears in the lookahead window

	// BodyType is the declared type of the @RequestBody parameter, when one could be read.
	// It is only consulted when DTO bodies are enabled.
	BodyType string

	// QueryParams lists the handler's @RequestParam parameters in declaration order.
	// Only filled in when query parameter extraction is enabled.
	QueryParams []QueryParam

	// RequiresAuth is set when the controller or the handler carries a security
	// annotation. Only filled in when auth detection is enabled.
	RequiresAuth bool
}

// QueryParam is one @RequestParam handler parameter
type QueryParam struct {
	Name     string
	Required bool
}

// RouteCount returns the number of routes on the controller
func (c *ControllerInfo) RouteCount() int {
	return len(c.Methods)
}
