package cli

import (
	"github.com/toyz/springhttp/internal/errors"
	"github.com/toyz/springhttp/internal/utils"
)

// Default values for optional settings
const (
	DefaultBaseURL   = "http://localhost:8080"
	DefaultOutputDir = "http-requests"
	DefaultExtension = ".java"
)

// Config holds the configuration for the CLI generator
type Config struct {
	// Path is a source file or a directory scanned recursively
	Path string

	// BaseURL prefixes every generated request line
	BaseURL string

	// OutputDir receives one <ClassName>.http file per controller
	OutputDir string

	// Extension selects source files during directory scans
	Extension string

	// SkipUnreadable turns unreadable or undecodable files into warnings
	SkipUnreadable bool

	// RequestMapping also extracts method-level @RequestMapping routes
	RequestMapping bool

	// DTOBodies renders request bodies from DTO sources instead of a placeholder
	DTOBodies bool

	// QueryParams appends @RequestParam parameters to the request line as a query string
	QueryParams bool

	// PathVariables writes {id} path segments as {{id}} request variables
	PathVariables bool

	// AuthDetection writes the Authorization header only on routes guarded by
	// @Secured, @PreAuthorize or @RolesAllowed
	AuthDetection bool

	// Verbose enables detailed logging
	Verbose bool
}

// DefaultConfig returns a configuration with the default URL, output directory and extension
func DefaultConfig(path string) Config {
	return Config{
		Path:      path,
		BaseURL:   DefaultBaseURL,
		OutputDir: DefaultOutputDir,
		Extension: DefaultExtension,
	}
}

var configValidator = utils.NewValidatorChain(
	utils.Field(func(c Config) string { return c.Path }, utils.NotEmpty("path")),
	utils.Field(func(c Config) string { return c.OutputDir }, utils.NotEmpty("out")),
	utils.Field(func(c Config) string { return c.Extension }, utils.NotEmpty("ext")),
)

// Validate reports the first required setting left empty
func (c Config) Validate() error {
	if err := configValidator.Validate(c); err != nil {
		return errors.WrapConfigurationError("flags", "validate", err)
	}
	return nil
}
