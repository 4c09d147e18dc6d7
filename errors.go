package pydox

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyProjectDir = errors.New("project directory cannot be empty")
	ErrHTMLConversion  = errors.New("HTML conversion failed")
	ErrWriteOutput     = errors.New("failed to write output")

	// PDF export errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)
