package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/toyz/springhttp/internal/cli"
	"github.com/toyz/springhttp/internal/errors"
	"github.com/toyz/springhttp/internal/utils"
)

// CLI is the springhttp command line
type CLI struct {
	Path string `arg:"" help:"Path to a Java project directory or a single source file."`

	URL            string `name:"url" default:"http://localhost:8080" help:"Base URL prefixed to every request line."`
	Out            string `name:"out" default:"http-requests" help:"Output directory, created if missing."`
	Ext            string `name:"ext" default:".java" help:"Source file suffix used when scanning a directory."`
	SkipUnreadable bool   `name:"skip-unreadable" help:"Warn and continue when a source file cannot be read or decoded."`
	RequestMapping bool   `name:"request-mapping" help:"Also generate routes from method-level @RequestMapping annotations."`
	DTOBodies      bool   `name:"dto-bodies" help:"Render JSON request bodies from DTO classes found among the scanned sources."`
	QueryParams    bool   `name:"query-params" help:"Append @RequestParam parameters to request lines as a query string."`
	PathVars       bool   `name:"path-vars" help:"Write {id} path variables as {{id}} request variables."`
	AuthDetect     bool   `name:"auth-detect" help:"Only add the Authorization header to routes guarded by @Secured, @PreAuthorize or @RolesAllowed."`
	Verbose        bool   `short:"v" help:"Enable verbose output."`
	Quiet          bool   `short:"q" help:"Only show errors and the final summary."`
	Config         string `placeholder:"FILE" help:"Load flag values from a JSON, YAML or TOML file. Command line flags take precedence."`
}

// exitCode carries a kong exit request out of the parser
type exitCode int

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	options := []kong.Option{
		kong.Name("springhttp"),
		kong.Description("Generate .http request templates from Spring Boot controllers."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(c int) { panic(exitCode(c)) }),
	}

	if path := findUserConfig(args); path != "" {
		if _, err := os.Stat(path); err != nil {
			reportError(stderr, false, errors.WrapConfigurationError(path, "load", err).
				WithSuggestion("Check the --config path"))
			return 1
		}
		options = append(options, kong.Configuration(configLoader(path), path))
	}

	var flags CLI
	parser, err := kong.New(&flags, options...)
	if err != nil {
		reportError(stderr, false, errors.WrapConfigurationError(findUserConfig(args), "load", err))
		return 1
	}

	_, err = parser.Parse(args)
	parser.FatalIfErrorf(err)

	diagnostics := utils.NewDiagnosticSystemWithWriters(utils.LevelFromFlags(flags.Quiet, flags.Verbose), stdout, stderr)

	config := cli.Config{
		Path:           flags.Path,
		BaseURL:        flags.URL,
		OutputDir:      flags.Out,
		Extension:      flags.Ext,
		SkipUnreadable: flags.SkipUnreadable,
		RequestMapping: flags.RequestMapping,
		DTOBodies:      flags.DTOBodies,
		QueryParams:    flags.QueryParams,
		PathVariables:  flags.PathVars,
		AuthDetection:  flags.AuthDetect,
		Verbose:        flags.Verbose,
	}

	if flags.Verbose {
		diagnostics.Subsection("Configuration")
		diagnostics.List("Path: %s", config.Path)
		diagnostics.List("Base URL: %s", config.BaseURL)
		diagnostics.List("Output directory: %s", config.OutputDir)
		if flags.Config != "" {
			diagnostics.List("Config file: %s", flags.Config)
		}
	}

	if _, err := cli.NewGenerator(config, diagnostics).Run(); err != nil {
		reportError(stderr, flags.Verbose, err)
		return 1
	}
	return 0
}

func reportError(stderr io.Writer, verbose bool, err error) {
	cli.NewDiagnosticReporter(stderr, verbose).ReportError(err)
}

// configLoader picks the configuration format from the file extension
func configLoader(path string) kong.ConfigurationLoader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return kongyaml.Loader
	case ".toml":
		return kongtoml.Loader
	default:
		return kong.JSON
	}
}

// findUserConfig returns the --config value from args, before kong parses them
func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
