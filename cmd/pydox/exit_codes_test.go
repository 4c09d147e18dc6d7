package main

// Notes:
// - exitCodeFor: we test all sentinel errors from pydox and internal packages,
//   plus wrapped errors to verify errors.Is() chain works correctly.
// - Exit code constants: we verify Unix conventions (0=success, 1=general, 2=usage)
//   and custom codes are below 126.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	pydox "github.com/pydox/pydox"
	"github.com/pydox/pydox/internal/assets"
	"github.com/pydox/pydox/internal/config"
	"github.com/pydox/pydox/internal/ghprofile"
	"github.com/pydox/pydox/internal/manifest"
	"github.com/pydox/pydox/internal/pymod"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Browser errors (exit 5)
		{"browser connect", pydox.ErrBrowserConnect, ExitBrowser},
		{"page create", pydox.ErrPageCreate, ExitBrowser},
		{"page load", pydox.ErrPageLoad, ExitBrowser},
		{"pdf generation", pydox.ErrPDFGeneration, ExitBrowser},
		{"wrapped browser connect", fmt.Errorf("failed: %w", pydox.ErrBrowserConnect), ExitBrowser},

		// Network errors (exit 4)
		{"profile fetch", ghprofile.ErrProfileFetch, ExitNetwork},
		{"wrapped profile fetch", fmt.Errorf("fetching profile: %w", ghprofile.ErrProfileFetch), ExitNetwork},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"manifest read", manifest.ErrManifestRead, ExitIO},
		{"module not found", pymod.ErrModuleNotFound, ExitIO},
		{"asset read", assets.ErrAssetRead, ExitIO},
		{"write output", pydox.ErrWriteOutput, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"manifest parse", manifest.ErrManifestParse, ExitUsage},
		{"empty module name", pymod.ErrEmptyModuleName, ExitUsage},
		{"style not found", assets.ErrStyleNotFound, ExitUsage},
		{"invalid asset name", assets.ErrInvalidAssetName, ExitUsage},
		{"invalid base path", assets.ErrInvalidBasePath, ExitUsage},
		{"path traversal", assets.ErrPathTraversal, ExitUsage},
		{"empty project dir", pydox.ErrEmptyProjectDir, ExitUsage},
		{"invalid timeout", ErrInvalidTimeout, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("something went wrong"), ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := exitCodeFor(tt.err)
			if got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeConventions(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}

	for _, code := range []int{ExitIO, ExitNetwork, ExitBrowser} {
		if code <= 2 || code >= 126 {
			t.Errorf("custom exit code %d outside valid range (3-125)", code)
		}
	}
}
