package models

// GeneratedFile records one template written to disk
type GeneratedFile struct {
	ClassName  string // controller class the file was named after
	OutputPath string // path of the written .http file
	SourcePath string // controller source it was rendered from
	Bytes      int    // size of the rendered template
	Routes     int    // number of route blocks
}

// GenerationSummary collects the results of one generator run
type GenerationSummary struct {
	FilesScanned     int             // candidate source files discovered
	ControllersFound int             // files that passed the controller marker check
	RoutesFound      int             // total routes across all controllers
	FilesSkipped     []string        // unreadable files skipped with --skip-unreadable
	Overwritten      []string        // output paths written more than once
	GeneratedFiles   []GeneratedFile // one entry per write, in write order
}

// Count returns how many template files were written, counting overwrites
func (s GenerationSummary) Count() int {
	return len(s.GeneratedFiles)
}
