package pydox

import (
	"path/filepath"
	"time"
)

// Input contains generation parameters.
type Input struct {
	ProjectDir string // Project root containing pyproject.toml (required)
	Manifest   string // Manifest path (default: {ProjectDir}/pyproject.toml)
	Module     string // Python module name (default: project name from the manifest)
	OutputDir  string // Output directory (default: {ProjectDir}/docs)
	Style      string // Stylesheet name (default: "default")
	StyleDir   string // Custom stylesheet directory (empty = embedded styles only)
	GitHubUser string // Sidebar profile account (default: derived from the homepage URL)
	WithCSS    bool   // Write the stylesheet next to index.html instead of inlining it
	WithReadme bool   // Append the rendered README.md as a final section
	WithPDF    bool   // Also export the page as PDF via headless Chrome
}

// manifestPath resolves the pyproject.toml location.
func (in Input) manifestPath() string {
	if in.Manifest == "" {
		return filepath.Join(in.ProjectDir, "pyproject.toml")
	}
	if filepath.IsAbs(in.Manifest) {
		return in.Manifest
	}
	return filepath.Join(in.ProjectDir, in.Manifest)
}

// outputDir resolves the output directory.
func (in Input) outputDir() string {
	if in.OutputDir == "" {
		return filepath.Join(in.ProjectDir, "docs")
	}
	if filepath.IsAbs(in.OutputDir) {
		return in.OutputDir
	}
	return filepath.Join(in.ProjectDir, in.OutputDir)
}

// Result reports the generated artifacts.
type Result struct {
	HTML      string   // The full generated page
	IndexPath string   // Path of the written index.html
	CSSPath   string   // Path of the written stylesheet (empty unless WithCSS)
	PDFPath   string   // Path of the written PDF (empty unless WithPDF)
	Warnings  []string // Non-fatal findings (undocumented callables, skipped sections)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
	now     func() time.Time
}

// defaultTimeout is used when no timeout is specified. It bounds both the
// profile fetch and the PDF page load.
const defaultTimeout = 60 * time.Second

// defaultClock is the production time source.
func defaultClock() time.Time {
	return time.Now()
}

// WithTimeout sets the network and rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("pydox: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithClock overrides the time source used for the footer copyright year.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.cfg.now = now
	}
}
