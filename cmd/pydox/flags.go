package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across invocations.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// projectFlags holds project discovery flags.
type projectFlags struct {
	manifest   string
	module     string
	githubUser string
}

// renderFlags holds rendering and output-shape flags.
type renderFlags struct {
	style      string
	styleDir   string
	withCSS    bool
	withReadme bool
	withPDF    bool
}

// generateFlags holds all flags for a generation run.
type generateFlags struct {
	common  commonFlags
	project projectFlags
	render  renderFlags
	output  string
	timeout string
	version bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addProjectFlags adds project discovery flags to a FlagSet.
func addProjectFlags(fs *flag.FlagSet, f *projectFlags) {
	fs.StringVar(&f.manifest, "tomlfile", "", "manifest path relative to the project directory")
	fs.StringVar(&f.module, "module", "", "module name (\"\" = derive from project name)")
	fs.StringVar(&f.githubUser, "github-user", "", "GitHub login for the sidebar profile")
}

// addRenderFlags adds rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVar(&f.style, "style", "", "stylesheet name (default: \"default\")")
	fs.StringVar(&f.styleDir, "style-dir", "", "directory with custom stylesheets")
	fs.BoolVar(&f.withCSS, "with-css", false, "write the stylesheet next to index.html")
	fs.BoolVar(&f.withReadme, "with-readme", false, "include a rendered README.md section")
	fs.BoolVar(&f.withPDF, "with-pdf", false, "also render index.pdf via headless Chrome")
}

// parseFlags parses command line flags and returns positional args.
func parseFlags(args []string) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet("pydox", flag.ContinueOnError)
	f := &generateFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "generation timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.version, "version", false, "show version information")

	addCommonFlags(fs, &f.common)
	addProjectFlags(fs, &f.project)
	addRenderFlags(fs, &f.render)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
