package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/toyz/springhttp/internal/errors"
)

// DiagnosticReporter renders fatal errors with their location, context and suggestions
type DiagnosticReporter struct {
	out     io.Writer
	verbose bool
}

// NewDiagnosticReporter creates a new diagnostic reporter writing to out
func NewDiagnosticReporter(out io.Writer, verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		out:     out,
		verbose: verbose,
	}
}

// ReportError writes err to the reporter's stream
func (r *DiagnosticReporter) ReportError(err error) {
	red := color.New(color.FgRed, color.Bold)
	fmt.Fprintf(r.out, "%s %s\n", red.Sprint("error:"), err.Error())

	genErr := findGenError(err)
	if genErr == nil {
		return
	}

	fmt.Fprintf(r.out, "  type: %s\n", describeCode(genErr.ErrorCode()))
	if loc := genErr.Location(); !loc.IsEmpty() {
		fmt.Fprintf(r.out, "  location: %s\n", loc)
	}

	if r.verbose {
		r.printContext(genErr.Context())
		r.printChain(genErr.Unwrap())
	}

	r.printSuggestions(genErr.Suggestions())
}

// printContext prints context entries sorted by key
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	if len(context) == 0 {
		return
	}
	keys := make([]string, 0, len(context))
	for key := range context {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintf(r.out, "  context:\n")
	for _, key := range keys {
		fmt.Fprintf(r.out, "    %s: %v\n", formatContextKey(key), context[key])
	}
}

func (r *DiagnosticReporter) printChain(cause error) {
	level := 1
	for cause != nil {
		if level == 1 {
			fmt.Fprintf(r.out, "  caused by:\n")
		}
		fmt.Fprintf(r.out, "    %d. %s\n", level, cause.Error())
		unwrapper, ok := cause.(interface{ Unwrap() error })
		if !ok {
			break
		}
		cause = unwrapper.Unwrap()
		level++
	}
}

func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	fmt.Fprintf(r.out, "  suggestions:\n")
	for i, suggestion := range suggestions {
		fmt.Fprintf(r.out, "    %d. %s\n", i+1, suggestion)
	}
}

// findGenError returns the outermost GenError in err's chain
func findGenError(err error) errors.GenError {
	for err != nil {
		if genErr, ok := err.(errors.GenError); ok {
			return genErr
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil
		}
		err = unwrapper.Unwrap()
	}
	return nil
}

func describeCode(code errors.ErrorCode) string {
	switch code {
	case errors.SyntaxErrorCode:
		return "Annotation Syntax Error"
	case errors.DecodeErrorCode:
		return "Decode Error"
	case errors.FileSystemErrorCode:
		return "File System Error"
	case errors.GenerationErrorCode:
		return "Template Generation Error"
	case errors.ConfigurationErrorCode:
		return "Configuration Error"
	default:
		return "Unknown Error"
	}
}

// formatContextKey converts snake_case keys to Title Case
func formatContextKey(key string) string {
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}
