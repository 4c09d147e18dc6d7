package pydox

import (
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	chromastyles "github.com/alecthomas/chroma/v2/styles"

	"github.com/pydox/pydox/internal/assets"
)

// chromaStyleName selects the palette of the generated highlight rules.
const chromaStyleName = "github"

// BuildCSS assembles the page stylesheet: the named base style (embedded,
// or resolved from styleDir with embedded fallback) followed by the chroma
// syntax-highlighting rules used by fenced code in the README section.
func BuildCSS(style, styleDir string) (string, error) {
	if style == "" {
		style = assets.DefaultStyleName
	}

	resolver, err := assets.NewResolver(styleDir)
	if err != nil {
		return "", err
	}
	base, err := resolver.LoadStyle(style)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(base)
	if !strings.HasSuffix(base, "\n") {
		b.WriteString("\n")
	}

	b.WriteString("\n/* Syntax highlighting */\n")
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	chromaStyle := chromastyles.Get(chromaStyleName)
	if chromaStyle == nil {
		chromaStyle = chromastyles.Fallback
	}
	if err := formatter.WriteCSS(&b, chromaStyle); err != nil {
		return "", fmt.Errorf("writing highlight rules: %w", err)
	}

	return b.String(), nil
}
