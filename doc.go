// Package pydox generates an HTML documentation page for a Python project
// from its docstrings, pyproject.toml and GitHub profile.
//
// # Quick Start
//
// Create a service, generate, and close when done:
//
//	svc := pydox.New()
//	defer svc.Close()
//
//	result, err := svc.Generate(ctx, pydox.Input{
//	    ProjectDir: ".",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", result.IndexPath)
//
// The result carries the generated HTML, the output paths, and any
// non-fatal warnings collected while scanning the Python sources.
//
// # Generation Pipeline
//
// The generation process follows these stages:
//
//  1. Read the [project] table of pyproject.toml
//  2. Scan the Python module statically (docstrings, signatures, constants)
//  3. Fetch the GitHub profile for the sidebar card
//  4. Render docstring bodies through the indentation-sensitive block
//     grammar and the inline markup rules (internal/markup)
//  5. Assemble the page and write docs/index.html (plus optional
//     stylesheet, README section, and PDF export)
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := pydox.New(
//	    pydox.WithTimeout(2 * time.Minute),
//	)
//
// Per-run options are passed via Input:
//
//	result, err := svc.Generate(ctx, pydox.Input{
//	    ProjectDir: "/path/to/project",
//	    Style:      "default",
//	    WithReadme: true,
//	    WithPDF:    true,
//	})
//
// # Browser Requirements
//
// PDF export requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
// Use ROD_BROWSER_BIN to specify a custom Chrome binary; the sandbox is
// disabled automatically when CI=true.
package pydox
