package markup

import (
	"strings"
	"testing"
)

func TestRenderBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "prose paragraph",
			body: "hello world",
			want: "<p>hello world</p>\n",
		},
		{
			name: "blank line separates paragraphs",
			body: "first\n\nsecond",
			want: "<p>first</p>\n<p>second</p>\n",
		},
		{
			name: "leading blank emits a paragraph break",
			body: "\nfoo",
			want: "<p/>\n<p>foo</p>\n",
		},
		{
			name: "bulleted list",
			body: "    * a\n    * b",
			want: "<ul><li>a</li>\n<li>b</li>\n</ul>\n",
		},
		{
			name: "bullet with code span label",
			body: "    * --debug: Enable debugging",
			want: "<ul><li><code>--debug</code>: Enable debugging</li>\n</ul>\n",
		},
		{
			name: "numbered list",
			body: "    1. first\n    2. second",
			want: "<ol><li>first</li>\n<li>second</li>\n</ol>\n",
		},
		{
			name: "list continuation keeps the item open",
			body: "    * item\n      more *text*",
			want: "<ul><li>item\nmore <i>text</i></li>\n</ul>\n",
		},
		{
			name: "definition list",
			body: "    name: the name\n    other: stuff",
			want: "<dl><dt><code>name</code></dt>\n<dd>the name</dd>\n<dt><code>other</code></dt>\n<dd>stuff</dd>\n</dl>\n",
		},
		{
			name: "preformatted block",
			body: "    x = 1\n    y = 2",
			want: "<pre>x = 1\ny = 2\n</pre>",
		},
		{
			name: "syntax directive keeps mode",
			body: "Syntax: pydox [OPTION ...]",
			want: "Syntax: <code>pydox [OPTION ...]</code>\n",
		},
		{
			name: "heading strips the colon",
			body: "Options:",
			want: "\n<h2 class=\"w3-container\">Options</h2>\n",
		},
		{
			name: "inline markup inside list items",
			body: "    * uses **bold** text",
			want: "<ul><li>uses <b>bold</b> text</li>\n</ul>\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NewRenderer().Render(tt.body)
			if got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

// A bulleted block followed by a blank line and prose renders as a single
// list, fully closed before the paragraph begins.
func TestRenderListClosesBeforeParagraph(t *testing.T) {
	t.Parallel()

	got := NewRenderer().Render("    * a\n    * b\n\nfoo")

	if strings.Count(got, "<ul>") != 1 {
		t.Fatalf("expected a single <ul>, got %q", got)
	}
	if strings.Count(got, "<li>") != 2 || strings.Count(got, "</li>") != 2 {
		t.Fatalf("expected two list items, got %q", got)
	}
	ulClose := strings.Index(got, "</ul>")
	pOpen := strings.Index(got, "<p>")
	if ulClose == -1 || pOpen == -1 || ulClose > pOpen {
		t.Errorf("list not closed before paragraph: %q", got)
	}
}

// A heading line immediately closes any open list before the heading
// element is emitted.
func TestRenderHeadingClosesOpenList(t *testing.T) {
	t.Parallel()

	got := NewRenderer().Render("    * a\nSyntax:\nfoo")

	ulClose := strings.Index(got, "</ul>")
	heading := strings.Index(got, "<h2")
	if ulClose == -1 || heading == -1 || ulClose > heading {
		t.Errorf("open list not closed before heading: %q", got)
	}
}

// Deeply indented lines inside an open item are literal preformatted text,
// and the item still closes correctly when the next bullet begins.
func TestRenderPreformattedInsideListItem(t *testing.T) {
	t.Parallel()

	got := NewRenderer().Render("    * a\n        code_x()\n    * b")

	want := "<ul><li>a<pre>code_x()\n</pre></li>\n<li>b</li>\n</ul>\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if strings.Contains(got, "<sub>") {
		t.Errorf("inline rule fired inside preformatted text: %q", got)
	}
}

// Blank lines inside an open list are insignificant whitespace: the two
// items still share one list.
func TestRenderBlankInsideListIsInsignificant(t *testing.T) {
	t.Parallel()

	got := NewRenderer().Render("    * a\n\n    * b")

	if strings.Count(got, "<ul>") != 1 || strings.Count(got, "</ul>") != 1 {
		t.Errorf("blank line split the list: %q", got)
	}
	if strings.Contains(got, "<p/>") {
		t.Errorf("paragraph break leaked into open list: %q", got)
	}
}

// Consecutive list blocks of different kinds never merge: the unordered
// list closes before the ordered list opens.
func TestRenderListKindsNeverMerge(t *testing.T) {
	t.Parallel()

	got := NewRenderer().Render("    * a\n    1. b")

	ulClose := strings.Index(got, "</ul>")
	olOpen := strings.Index(got, "<ol>")
	if ulClose == -1 || olOpen == -1 || ulClose > olOpen {
		t.Errorf("list kinds merged: %q", got)
	}
}

func TestRenderHeadingLevelOption(t *testing.T) {
	t.Parallel()

	got := NewRenderer(WithHeadingLevel(3)).Render("Arguments:")
	want := "\n<h3 class=\"w3-container\">Arguments</h3>\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

// Units render independently: a list left unterminated in one body does
// not leak block-mode state into the next render.
func TestRenderFreshStatePerUnit(t *testing.T) {
	t.Parallel()

	first := NewRenderer().Render("    * left open")
	if !strings.HasSuffix(first, "</ul>\n") {
		t.Fatalf("final transition did not flush the list: %q", first)
	}

	second := NewRenderer().Render("plain text")
	if strings.Contains(second, "<ul>") || strings.Contains(second, "</li>") {
		t.Errorf("state leaked across units: %q", second)
	}
	if second != "<p>plain text</p>\n" {
		t.Errorf("Render() = %q, want %q", second, "<p>plain text</p>\n")
	}
}

func TestRenderDeterministic(t *testing.T) {
	t.Parallel()

	body := "Options:\n\n    * a: uses **bold**\n      and more\n\n        pre_text\n\ndone"
	first := NewRenderer().Render(body)
	second := NewRenderer().Render(body)
	if first != second {
		t.Errorf("Render not deterministic:\n first=%q\nsecond=%q", first, second)
	}
}
