package cli

import (
	"time"

	"github.com/toyz/springhttp/internal/dto"
	"github.com/toyz/springhttp/internal/errors"
	"github.com/toyz/springhttp/internal/models"
	"github.com/toyz/springhttp/internal/parser"
	"github.com/toyz/springhttp/internal/templates"
	"github.com/toyz/springhttp/internal/utils"
)

// Generator coordinates the CLI generation process
type Generator struct {
	config        Config
	fileProcessor *utils.FileProcessor
	scanner       *FileScanner
	parser        parser.ControllerExtractor
	writer        *OutputWriter
	diagnostics   *utils.DiagnosticSystem
	summary       models.GenerationSummary
}

// NewGenerator creates a generator for config reporting through diagnostics
func NewGenerator(config Config, diagnostics *utils.DiagnosticSystem) *Generator {
	fileProcessor := utils.NewFileProcessor()

	return &Generator{
		config:        config,
		fileProcessor: fileProcessor,
		scanner:       NewFileScanner(fileProcessor, diagnostics),
		parser: parser.NewControllerParser(
			parser.WithRequestMapping(config.RequestMapping),
			parser.WithQueryParams(config.QueryParams),
			parser.WithAuthDetection(config.AuthDetection),
			parser.WithDiagnostics(diagnostics),
		),
		writer:      NewOutputWriter(config.OutputDir, diagnostics),
		diagnostics: diagnostics,
	}
}

// Run scans the configured path and writes one template per controller found.
// The summary line is printed even when no controller matched.
func (g *Generator) Run() (models.GenerationSummary, error) {
	start := time.Now()
	g.summary = models.GenerationSummary{}

	if err := g.config.Validate(); err != nil {
		return g.summary, err
	}

	files, err := g.scanner.Scan(g.config.Path, g.config.Extension)
	if err != nil {
		return g.summary, err
	}
	g.summary.FilesScanned = len(files)

	if err := g.writer.EnsureDir(); err != nil {
		return g.summary, err
	}

	renderer := templates.NewHTTPRenderer(g.config.BaseURL, g.bodyProvider(files), g.renderOptions()...)

	for _, file := range files {
		if err := g.processFile(file, renderer); err != nil {
			return g.summary, err
		}
	}

	g.reportSummary(time.Since(start))
	return g.summary, nil
}

func (g *Generator) renderOptions() []templates.RenderOption {
	var opts []templates.RenderOption
	if g.config.PathVariables {
		opts = append(opts, templates.WithPathVariables())
	}
	if g.config.AuthDetection {
		opts = append(opts, templates.WithAuthDetection())
	}
	return opts
}

func (g *Generator) bodyProvider(files []string) templates.BodyProvider {
	if !g.config.DTOBodies {
		return nil
	}
	return dto.NewBodyResolver(files, g.config.Extension, g.fileProcessor.GetFileReader(), g.diagnostics)
}

func (g *Generator) processFile(file string, renderer *templates.HTTPRenderer) error {
	text, err := g.fileProcessor.GetFileReader().ReadSource(file)
	if err != nil {
		if !g.config.SkipUnreadable || !skippable(err) {
			return err
		}
		g.diagnostics.Warn("Skipping %s: %v", file, err)
		g.summary.FilesSkipped = append(g.summary.FilesSkipped, file)
		return nil
	}

	info, ok := g.parser.Parse(file, text)
	if !ok {
		g.diagnostics.Debug("%s has no controller marker", file)
		return nil
	}
	g.summary.ControllersFound++
	g.summary.RoutesFound += info.RouteCount()

	generated, overwritten, err := g.writer.Write(info, renderer.Render(info))
	if err != nil {
		return errors.Wrap(errors.GenerationErrorCode, "failed to generate template for "+info.ClassName, err).
			WithLocation(errors.SourceLocation{File: file})
	}
	if overwritten {
		g.summary.Overwritten = append(g.summary.Overwritten, generated.OutputPath)
	}
	g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, generated)

	g.diagnostics.Progress("Generated: %s", generated.OutputPath)
	return nil
}

// skippable reports whether a read failure may be turned into a warning
func skippable(err error) bool {
	return errors.HasCode(err, errors.FileSystemErrorCode) || errors.HasCode(err, errors.DecodeErrorCode)
}

func (g *Generator) reportSummary(elapsed time.Duration) {
	g.diagnostics.Subsection("Summary")
	g.diagnostics.List("%d file(s) scanned", g.summary.FilesScanned)
	g.diagnostics.List("%d controller(s), %d route(s)", g.summary.ControllersFound, g.summary.RoutesFound)
	g.listPaths("%d unreadable file(s) skipped", g.summary.FilesSkipped)
	g.listPaths("%d file(s) overwritten by a duplicate class name", g.summary.Overwritten)
	g.diagnostics.List("%d source file(s) read", g.fileProcessor.GetFileReader().CachedFiles())
	g.diagnostics.List("finished in %s", elapsed.Round(time.Millisecond))

	g.diagnostics.Result("\nDone! Generated %d .http files in '%s'", g.summary.Count(), g.config.OutputDir)
}

// listPaths writes a count line followed by the paths, nested one level
func (g *Generator) listPaths(format string, paths []string) {
	if len(paths) == 0 {
		return
	}
	g.diagnostics.List(format, len(paths))
	g.diagnostics.Indent()
	for _, p := range paths {
		g.diagnostics.List("%s", p)
	}
	g.diagnostics.Unindent()
}
