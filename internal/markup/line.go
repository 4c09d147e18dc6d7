// Package markup renders the indentation-sensitive documentation grammar
// used in pydox docstrings into HTML fragments.
//
// The package has two layers. Line classification and the block renderer
// (line.go, block.go) turn a full docstring body into block-level HTML,
// driving open/close tags from leading-whitespace patterns and terminal
// punctuation. The inline transformer (inline.go) rewrites one fragment of
// visible text with inline styling (bold, code spans, bare URLs, ...).
package markup

import (
	"regexp"
	"strings"
)

// Leading-space thresholds of the documentation grammar. These carry
// distinct structural meaning; an off-by-one here silently changes the
// rendered structure rather than failing loudly.
const (
	// indentItem marks bullet, numbered and definition items.
	indentItem = 4
	// indentContinuation continues the text of the open list item.
	indentContinuation = 6
	// indentPre marks preformatted text, and inside an open list item,
	// preformatted text nested in that item.
	indentPre = 8
)

// syntaxPrefix introduces a one-line usage synopsis.
const syntaxPrefix = "Syntax: "

// LineKind classifies one input line. Kinds are mutually exclusive.
type LineKind int

const (
	// KindBlank is a zero-length line.
	KindBlank LineKind = iota
	// KindSyntax starts with the "Syntax: " marker.
	KindSyntax
	// KindHeading has no leading spaces and a trailing colon.
	KindHeading
	// KindBullet is a "    * " list item.
	KindBullet
	// KindNumbered is a "    1. " list item.
	KindNumbered
	// KindDefinition is a 4-space line with a ": " term separator.
	KindDefinition
	// KindContinuation continues the text of the open list item.
	KindContinuation
	// KindPre is preformatted text, emitted without inline rendering.
	KindPre
	// KindText is ordinary prose.
	KindText
)

// Line is one classified input line. Lines are immutable once classified.
type Line struct {
	Raw    string
	Indent int
	Kind   LineKind
}

var (
	bulletPattern   = regexp.MustCompile(`^ {4}\* `)
	numberedPattern = regexp.MustCompile(`^ {4}[0-9]+\. `)
)

// ClassifyLine derives the kind of one raw line. Continuation and
// nested-preformatted kinds only exist while a list block is open, so the
// caller passes listOpen from its current renderer state.
func ClassifyLine(raw string, listOpen bool) Line {
	indent := leadingSpaces(raw)
	line := Line{Raw: raw, Indent: indent}

	switch {
	case len(raw) == 0:
		line.Kind = KindBlank
	case strings.HasPrefix(raw, syntaxPrefix):
		line.Kind = KindSyntax
	case bulletPattern.MatchString(raw):
		line.Kind = KindBullet
	case numberedPattern.MatchString(raw):
		line.Kind = KindNumbered
	case listOpen && indent >= indentPre:
		line.Kind = KindPre
	case listOpen && indent >= indentContinuation:
		line.Kind = KindContinuation
	case indent >= indentPre:
		line.Kind = KindPre
	case indent == indentItem && strings.Contains(raw, ": "):
		line.Kind = KindDefinition
	case indent >= indentItem:
		line.Kind = KindPre
	case indent == 0 && strings.HasSuffix(raw, ":"):
		line.Kind = KindHeading
	default:
		line.Kind = KindText
	}

	return line
}

// leadingSpaces counts the leading space characters of raw. Tabs are not
// part of the grammar and end the count like any other character.
func leadingSpaces(raw string) int {
	n := 0
	for n < len(raw) && raw[n] == ' ' {
		n++
	}
	return n
}
