package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pydox [project-dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate docs/index.html for a Python project from its docstrings,")
	fmt.Fprintln(w, "pyproject.toml metadata, and GitHub profile.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  project-dir    Project root containing pyproject.toml (\"-\" or empty = \".\")")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: docs)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --tomlfile <path>     Manifest path (default: pyproject.toml)")
	fmt.Fprintln(w, "      --module <name>       Module name (\"\" = derive from project name)")
	fmt.Fprintln(w, "      --github-user <s>     GitHub login for the sidebar profile")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --style <name>        Stylesheet name (default: \"default\")")
	fmt.Fprintln(w, "      --style-dir <dir>     Directory with custom stylesheets")
	fmt.Fprintln(w, "      --with-css            Write the stylesheet next to index.html")
	fmt.Fprintln(w, "      --with-readme         Include a rendered README.md section")
	fmt.Fprintln(w, "      --with-pdf            Also render index.pdf via headless Chrome")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -t, --timeout <d>         Generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w, "      --version             Show version information")
}
