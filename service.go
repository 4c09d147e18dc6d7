package pydox

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pydox/pydox/internal/ghprofile"
	"github.com/pydox/pydox/internal/manifest"
	"github.com/pydox/pydox/internal/pymod"
)

// profileFetcher abstracts the GitHub profile lookup to allow test fakes.
type profileFetcher interface {
	Fetch(ctx context.Context, login string) (*ghprofile.Profile, error)
}

// Service orchestrates the documentation pipeline.
type Service struct {
	cfg      serviceConfig
	profiles profileFetcher
	readme   readmeConverter
	pdf      pdfRenderer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.cfg.now == nil {
		s.cfg.now = defaultClock
	}

	// Create collaborators if not injected (e.g., by tests)
	if s.profiles == nil {
		s.profiles = ghprofile.NewClient(ghprofile.WithTimeout(s.cfg.timeout))
	}
	if s.readme == nil {
		s.readme = newGoldmarkConverter()
	}
	if s.pdf == nil {
		s.pdf = newRodRenderer(s.cfg.timeout)
	}

	return s
}

// Generate runs the full pipeline and writes the documentation page.
// The context is used for cancellation and timeout.
func (s *Service) Generate(ctx context.Context, input Input) (*Result, error) {
	if input.ProjectDir == "" {
		return nil, ErrEmptyProjectDir
	}

	project, err := manifest.Load(input.manifestPath())
	if err != nil {
		return nil, err
	}

	moduleName := input.Module
	if moduleName == "" {
		// Distribution names use dashes, import names use underscores.
		moduleName = strings.ReplaceAll(project.Name, "-", "_")
	}

	module, err := pymod.Load(input.ProjectDir, moduleName)
	if err != nil {
		return nil, err
	}

	result := &Result{Warnings: module.Warnings}

	profile, err := s.fetchProfile(ctx, input, project)
	if err != nil {
		return nil, err
	}

	readmeHTML, err := s.renderReadme(ctx, input, result)
	if err != nil {
		return nil, err
	}

	css, err := BuildCSS(input.Style, input.StyleDir)
	if err != nil {
		return nil, err
	}

	data := documentData{
		Project: project,
		Module:  module,
		Profile: profile,
		Readme:  readmeHTML,
		CSS:     css,
		Year:    s.cfg.now().Year(),
	}
	if input.WithCSS {
		data.CSSHref = stylesheetName
	}
	result.HTML = renderDocument(data)

	if err := s.writeOutputs(ctx, input, css, result); err != nil {
		return nil, err
	}

	return result, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdf != nil {
		return s.pdf.Close()
	}
	return nil
}

// stylesheetName is the filename the stylesheet is written under when
// WithCSS is set; index.html links it relatively.
const stylesheetName = "pydox.css"

// fetchProfile resolves the sidebar account and fetches its profile.
// A project with no homepage and no explicit account renders without a
// profile card.
func (s *Service) fetchProfile(ctx context.Context, input Input, project *manifest.Project) (*ghprofile.Profile, error) {
	login := input.GitHubUser
	if login == "" {
		login = project.Organization()
	}
	if login == "" {
		return nil, nil
	}

	profile, err := s.profiles.Fetch(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}
	return profile, nil
}

// renderReadme converts README.md to an HTML fragment when requested.
// A missing README is a warning, not a failure.
func (s *Service) renderReadme(ctx context.Context, input Input, result *Result) (string, error) {
	if !input.WithReadme {
		return "", nil
	}

	raw, err := os.ReadFile(filepath.Join(input.ProjectDir, "README.md"))
	if err != nil {
		result.Warnings = append(result.Warnings, "README.md not found, readme section skipped")
		return "", nil
	}

	fragment, err := s.readme.ToFragment(ctx, string(raw))
	if err != nil {
		return "", fmt.Errorf("rendering README: %w", err)
	}
	return fragment, nil
}

// writeOutputs writes index.html and the optional stylesheet and PDF.
func (s *Service) writeOutputs(ctx context.Context, input Input, css string, result *Result) error {
	outDir := input.outputDir()
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	indexPath := filepath.Join(outDir, "index.html")
	// #nosec G306 -- generated documentation is intended to be readable
	if err := os.WriteFile(indexPath, []byte(result.HTML), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	result.IndexPath = indexPath

	if input.WithCSS {
		cssPath := filepath.Join(outDir, stylesheetName)
		// #nosec G306 -- generated documentation is intended to be readable
		if err := os.WriteFile(cssPath, []byte(css), 0o644); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		result.CSSPath = cssPath
	}

	if input.WithPDF {
		absIndex, err := filepath.Abs(indexPath)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		pdfBytes, err := s.pdf.RenderFromFile(ctx, absIndex)
		if err != nil {
			return err
		}
		pdfPath := filepath.Join(outDir, "index.pdf")
		// #nosec G306 -- generated documentation is intended to be readable
		if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		result.PDFPath = pdfPath
	}

	return nil
}
