package main

import (
	"errors"
	"os"

	pydox "github.com/pydox/pydox"
	"github.com/pydox/pydox/internal/assets"
	"github.com/pydox/pydox/internal/config"
	"github.com/pydox/pydox/internal/ghprofile"
	"github.com/pydox/pydox/internal/manifest"
	"github.com/pydox/pydox/internal/pymod"
)

// Exit codes for the pydox CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Documentation generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or manifest content
	ExitIO      = 3 // File not found, permission denied
	ExitNetwork = 4 // GitHub profile fetch errors
	ExitBrowser = 5 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 5)
	if errors.Is(err, pydox.ErrBrowserConnect) ||
		errors.Is(err, pydox.ErrPageCreate) ||
		errors.Is(err, pydox.ErrPageLoad) ||
		errors.Is(err, pydox.ErrPDFGeneration) {
		return ExitBrowser
	}

	// Network errors (exit 4)
	if errors.Is(err, ghprofile.ErrProfileFetch) {
		return ExitNetwork
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, manifest.ErrManifestRead) ||
		errors.Is(err, pymod.ErrModuleNotFound) ||
		errors.Is(err, assets.ErrAssetRead) ||
		errors.Is(err, pydox.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, manifest.ErrManifestParse) ||
		errors.Is(err, pymod.ErrEmptyModuleName) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, pydox.ErrEmptyProjectDir) ||
		errors.Is(err, ErrInvalidTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}
