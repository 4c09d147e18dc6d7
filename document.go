package pydox

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/pydox/pydox/internal/ghprofile"
	"github.com/pydox/pydox/internal/manifest"
	"github.com/pydox/pydox/internal/markup"
	"github.com/pydox/pydox/internal/pymod"
)

// documentData gathers everything the page renders.
type documentData struct {
	Project *manifest.Project
	Module  *pymod.Module
	Profile *ghprofile.Profile // nil = no sidebar card
	Readme  string             // rendered fragment, empty = section omitted
	CSSHref string             // non-empty = <link>, empty = inline <style>
	CSS     string
	Year    int
}

// typePattern marks identifier-like tokens in annotations so signature
// types render italic.
var typePattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_.]*`)

// renderDocument assembles the full HTML page.
func renderDocument(d documentData) string {
	var b strings.Builder

	writeHead(&b, d)
	writeSidebar(&b, d)

	b.WriteString("<div class=\"w3-main\">\n")
	writeMainSection(&b, d)
	writePythonSection(&b, d.Module)
	writePackageSection(&b, d)
	writeReadmeSection(&b, d)
	writeFooter(&b, d)
	b.WriteString("</div>\n")

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func writeHead(b *strings.Builder, d documentData) {
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(b, "<title>%s</title>\n", html.EscapeString(d.Project.Name))
	if d.CSSHref != "" {
		fmt.Fprintf(b, "<link rel=\"stylesheet\" href=\"%s\">\n", d.CSSHref)
	} else {
		b.WriteString("<style>\n")
		b.WriteString(d.CSS)
		b.WriteString("</style>\n")
	}
	b.WriteString("</head>\n<body>\n")
}

func writeSidebar(b *strings.Builder, d documentData) {
	b.WriteString("<nav class=\"w3-sidebar\">\n")
	if p := d.Profile; p != nil {
		fmt.Fprintf(b, "<a href=\"%s\" target=\"_tab\"><img src=\"%s\" alt=\"%s\"></a>\n",
			p.HTMLURL, p.AvatarURL, html.EscapeString(p.Name))
		fmt.Fprintf(b, "<p><b>%s</b></p>\n", html.EscapeString(p.Name))
		if p.Company != "" {
			fmt.Fprintf(b, "<p>%s</p>\n", html.EscapeString(p.Company))
		}
	}
	fmt.Fprintf(b, "<a href=\"#main\">%s</a>\n", html.EscapeString(d.Project.Name))
	b.WriteString("<a href=\"#python\">Python Library</a>\n")
	b.WriteString("<a href=\"#package\">Package</a>\n")
	if d.Readme != "" {
		b.WriteString("<a href=\"#readme\">Readme</a>\n")
	}
	b.WriteString("</nav>\n")
}

// writeMainSection renders the command line section: the project
// description and the module docstring, whose headings start at level 2
// under the section title. The project name itself appears in the page
// title and the sidebar.
func writeMainSection(b *strings.Builder, d documentData) {
	b.WriteString("<h1 id=\"main\" class=\"w3-container\">Command Line</h1>\n")
	if d.Project.Description != "None" {
		fmt.Fprintf(b, "<p>%s</p>\n", markup.RenderInline(d.Project.Description))
	}
	if d.Module.Doc != "" {
		b.WriteString(markup.NewRenderer().Render(d.Module.Doc))
	}
}

// writePythonSection renders classes (constructor, methods) and functions
// with their signature lines and rendered docstrings.
func writePythonSection(b *strings.Builder, m *pymod.Module) {
	b.WriteString("\n<h1 id=\"python\" class=\"w3-container\">Python Library</h1>\n")

	// One renderer per documentable unit; nested headings start at level 4.
	renderDoc := func(doc string) string {
		return markup.NewRenderer(markup.WithHeadingLevel(4)).Render(doc)
	}

	for _, cls := range m.Classes {
		fmt.Fprintf(b, "\n<h2 class=\"w3-container\">class %s</h2>\n", cls.Name)
		if cls.Init != nil {
			b.WriteString(renderSignature(cls.Name, cls.Init))
			b.WriteString(renderDoc(cls.Init.Doc))
		}
		b.WriteString(renderDoc(cls.Doc))
		for i := range cls.Methods {
			method := &cls.Methods[i]
			fmt.Fprintf(b, "\n<h3 class=\"w3-container\">%s.%s</h3>\n", cls.Name, method.Name)
			b.WriteString(renderSignature(method.Name, method))
			b.WriteString(renderDoc(method.Doc))
		}
	}

	for i := range m.Functions {
		fn := &m.Functions[i]
		fmt.Fprintf(b, "\n<h2 class=\"w3-container\">%s</h2>\n", fn.Name)
		b.WriteString(renderSignature(fn.Name, fn))
		b.WriteString(renderDoc(fn.Doc))
	}
}

// renderSignature formats one callable as a signature line: the name and
// parameter names bold, annotation types italic.
func renderSignature(name string, c *pymod.Callable) string {
	var b strings.Builder
	b.WriteString("<p/><code><b>" + name + "</b>(")
	for i, p := range c.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("<b>" + p.Name + "</b>: " + italicizeTypes(p.Type))
	}
	b.WriteString(")")
	// No return annotation reads as returning None.
	returns := c.Returns
	if returns == "" {
		returns = "None"
	}
	b.WriteString(" &rightarrow; " + italicizeTypes(returns))
	b.WriteString("</code>\n")
	return b.String()
}

func italicizeTypes(annotation string) string {
	escaped := html.EscapeString(annotation)
	return typePattern.ReplaceAllString(escaped, "<i>$0</i>")
}

// writePackageSection renders module constants and the manifest metadata
// table.
func writePackageSection(b *strings.Builder, d documentData) {
	b.WriteString("\n<h1 id=\"package\" class=\"w3-container\">Package</h1>\n")

	if len(d.Module.Constants) > 0 {
		b.WriteString("\n<h2 class=\"w3-container\">Constants</h2>\n")
		for _, c := range d.Module.Constants {
			fmt.Fprintf(b, "<p/><code>%s = %s</code>\n", c.Name, html.EscapeString(c.Value))
		}
	}

	b.WriteString("\n<h2 class=\"w3-container\">Metadata</h2>\n")
	b.WriteString("<table class=\"w3-table\">\n")
	for _, f := range d.Project.Fields() {
		fmt.Fprintf(b, "<tr><th><nobr>%s</nobr></th><td>:</td><td>%s</td></tr>\n",
			titleCase(f.Key), markup.RenderInline(f.Value))
	}
	b.WriteString("</table>\n")
}

// titleCase capitalizes each dash-separated word ("requires-python" →
// "Requires-Python").
func titleCase(key string) string {
	words := strings.Split(key, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, "-")
}

func writeReadmeSection(b *strings.Builder, d documentData) {
	if d.Readme == "" {
		return
	}
	b.WriteString("\n<h1 id=\"readme\" class=\"w3-container\">Readme</h1>\n")
	b.WriteString(d.Readme)
	if !strings.HasSuffix(d.Readme, "\n") {
		b.WriteString("\n")
	}
}

func writeFooter(b *strings.Builder, d documentData) {
	author := d.Project.Authors
	if author == "None" {
		author = d.Project.Name
	}
	fmt.Fprintf(b, "\n<hr/>\n<p/>\n<cite>Copyright &copy; %d %s</cite>\n", d.Year, html.EscapeString(author))
}
