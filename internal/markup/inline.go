package markup

import (
	"regexp"
	"strings"
)

// Protected spans are recognized first and their content is never touched
// by the styling rules: a code span containing an underscore must not
// become subscripted, and a URL containing a tilde must not be struck out.
// Recognition priority is escape, then code span, then autolink, so a code
// span that itself contains "://" is not misidentified as a raw link.
var (
	escapePattern   = regexp.MustCompile("``")
	codeSpanPattern = regexp.MustCompile("`([^`]+)`")
	autolinkPattern = regexp.MustCompile(`([a-z]+)://([A-Za-z0-9/.:@+_?&]+)`)
)

// styleRules are the ordered unprotected substitutions applied to literal
// text. Order matters: the single-star italic class is a strict subset of
// the double-star bold pattern, so bold must be resolved first. Each rule
// uses a negated-delimiter class, so nested same-delimiter markup resolves
// as greedy-but-non-overlapping spans and unpaired delimiters stay literal.
var styleRules = []struct {
	pattern *regexp.Regexp
	replace string
}{
	{regexp.MustCompile(`\*\*([^*]+)\*\*`), "<b>$1</b>"},
	{regexp.MustCompile(`\*([^*]+)\*`), "<i>$1</i>"},
	{regexp.MustCompile(`~~([^~]+)~~`), "<strike>$1</strike>"},
	{regexp.MustCompile(`__([^_]+)__`), "<u>$1</u>"},
	{regexp.MustCompile(`!!([^!]+)!!`), `<font class="highlight">$1</font>`},
	{regexp.MustCompile(`_([^ ]+)`), "<sub>$1</sub>"},
	{regexp.MustCompile(`\^([^ ]+)`), "<sup>$1</sup>"},
}

// segmentKind tags one typed segment of the first inline pass.
type segmentKind int

const (
	segLiteral segmentKind = iota
	segEscape
	segCodeSpan
	segAutolink
)

// segment is one typed region of input text. For segCodeSpan the text is
// the content between the backticks; for segAutolink it is the full URL.
type segment struct {
	kind segmentKind
	text string
}

// RenderInline rewrites one fragment of visible text with inline styling
// and returns HTML. It is a pure function: no shared state between calls,
// and rendering the same input twice yields byte-identical output.
//
// The first pass walks the text left to right producing typed segments
// (literal, escape, code span, autolink); the second pass applies the
// ordered styling rules to literal segments only. Protected segments are
// emitted verbatim, never re-scanned by any rule.
func RenderInline(text string) string {
	var b strings.Builder
	for _, seg := range splitSegments(text) {
		switch seg.kind {
		case segEscape:
			b.WriteString("`")
		case segCodeSpan:
			b.WriteString("<code>")
			b.WriteString(seg.text)
			b.WriteString("</code>")
		case segAutolink:
			b.WriteString(`<a href="`)
			b.WriteString(seg.text)
			b.WriteString(`" target="_tab">`)
			b.WriteString(seg.text)
			b.WriteString("</a>")
		default:
			b.WriteString(applyStyles(seg.text))
		}
	}
	return b.String()
}

// splitSegments performs the first pass: the leftmost protected match is
// cut out of the text, earlier patterns winning ties, until none remain.
func splitSegments(text string) []segment {
	var segs []segment
	for len(text) > 0 {
		kind, loc := nextProtected(text)
		if loc == nil {
			segs = append(segs, segment{kind: segLiteral, text: text})
			break
		}
		if loc[0] > 0 {
			segs = append(segs, segment{kind: segLiteral, text: text[:loc[0]]})
		}
		segs = append(segs, protectedSegment(kind, text[loc[0]:loc[1]]))
		text = text[loc[1]:]
	}
	return segs
}

// nextProtected locates the earliest protected match in text. On equal
// start offsets the escape pattern wins over code spans, and code spans
// win over autolinks.
func nextProtected(text string) (segmentKind, []int) {
	patterns := []struct {
		kind    segmentKind
		pattern *regexp.Regexp
	}{
		{segEscape, escapePattern},
		{segCodeSpan, codeSpanPattern},
		{segAutolink, autolinkPattern},
	}

	var bestKind segmentKind
	var best []int
	for _, p := range patterns {
		loc := p.pattern.FindStringIndex(text)
		if loc == nil {
			continue
		}
		if best == nil || loc[0] < best[0] {
			bestKind = p.kind
			best = loc
		}
	}
	return bestKind, best
}

// protectedSegment strips the delimiters from a protected match.
func protectedSegment(kind segmentKind, match string) segment {
	if kind == segCodeSpan {
		match = match[1 : len(match)-1]
	}
	return segment{kind: kind, text: match}
}

// applyStyles runs the ordered styling rules over literal text.
func applyStyles(text string) string {
	for _, rule := range styleRules {
		text = rule.pattern.ReplaceAllString(text, rule.replace)
	}
	return text
}
