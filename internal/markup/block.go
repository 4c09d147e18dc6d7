package markup

import (
	"fmt"
	"regexp"
	"strings"
)

// blockMode is the top-level structural container lines are appended into.
// At most one top-level mode is open at any time.
type blockMode int

const (
	modeNone blockMode = iota
	modeParagraph
	modeUnordered
	modeOrdered
	modeDefinition
)

// itemMode is one open list entry or definition value, nested inside its
// enclosing list or definition mode.
type itemMode int

const (
	itemNone itemMode = iota
	itemListEntry
	itemDefValue
)

var (
	modeOpenTag  = map[blockMode]string{modeParagraph: "<p>", modeUnordered: "<ul>", modeOrdered: "<ol>", modeDefinition: "<dl>"}
	modeCloseTag = map[blockMode]string{modeParagraph: "</p>", modeUnordered: "</ul>", modeOrdered: "</ol>", modeDefinition: "</dl>"}
	itemOpenTag  = map[itemMode]string{itemListEntry: "<li>", itemDefValue: "<dd>"}
	itemCloseTag = map[itemMode]string{itemListEntry: "</li>", itemDefValue: "</dd>"}
)

// rendererState is the renderer's only mutable state. It is owned
// exclusively by one Render call and never shared or exposed.
//
// The preformatted flag is orthogonal to the block mode: a preformatted
// region can be nested inside an open list item and is closed before the
// item closes; closing any top-level mode also force-closes it.
type rendererState struct {
	mode blockMode
	item itemMode
	pre  bool
}

// DefaultHeadingLevel is the heading depth of a top-level document.
// Nested documents (class, method and function docs) render one deeper.
const DefaultHeadingLevel = 2

// Renderer turns one complete docstring body into a contiguous HTML
// fragment. A Renderer is created per documentable unit and holds no state
// across Render calls: every call starts from a clean state and ends with
// a forced transition that flushes any still-open block.
type Renderer struct {
	out          strings.Builder
	state        rendererState
	headingLevel int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithHeadingLevel sets the depth of heading elements emitted for heading
// lines. Values outside h1..h6 are clamped.
func WithHeadingLevel(level int) Option {
	return func(r *Renderer) {
		if level < 1 {
			level = 1
		}
		if level > 6 {
			level = 6
		}
		r.headingLevel = level
	}
}

// NewRenderer creates a block renderer for one documentable unit.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{headingLevel: DefaultHeadingLevel}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Render consumes a complete newline-separated body and returns its HTML
// fragment. It never fails: malformed markup degrades to best-effort
// rendering and the pass is strictly linear.
func (r *Renderer) Render(body string) string {
	r.out.Reset()
	r.state = rendererState{}

	body = crlfOrCR.ReplaceAllString(body, "\n")
	for _, raw := range strings.Split(body, "\n") {
		listOpen := r.state.mode == modeUnordered || r.state.mode == modeOrdered
		r.dispatch(ClassifyLine(raw, listOpen))
	}
	r.setMode(modeNone)

	return r.out.String()
}

func (r *Renderer) write(s string) {
	r.out.WriteString(s)
}

// enterPre opens a preformatted region if one is not already open. No
// other open mode is disturbed.
func (r *Renderer) enterPre() {
	if !r.state.pre {
		r.write("<pre>")
		r.state.pre = true
	}
}

func (r *Renderer) closePre() {
	if r.state.pre {
		r.write("</pre>")
		r.state.pre = false
	}
}

// closeItem closes the open item mode, if any, emitting its closing tag
// exactly once.
func (r *Renderer) closeItem() {
	if r.state.item != itemNone {
		r.write(itemCloseTag[r.state.item])
		r.write("\n")
		r.state.item = itemNone
	}
}

// enterItem closes any open item (and the preformatted region nested in
// it) and opens a new one, without disturbing the enclosing list mode.
func (r *Renderer) enterItem(it itemMode) {
	r.closePre()
	r.closeItem()
	r.write(itemOpenTag[it])
	r.state.item = it
}

// setMode transitions the top-level block mode. A change of mode closes
// the open preformatted region, then the open item, then the current mode,
// before the new mode's opening tag is emitted. It returns the mode that
// was active immediately before the call.
func (r *Renderer) setMode(m blockMode) blockMode {
	prev := r.state.mode
	r.closePre()
	if m == prev {
		return prev
	}
	r.closeItem()
	if prev != modeNone {
		r.write(modeCloseTag[prev])
		r.write("\n")
	}
	if m != modeNone {
		r.write(modeOpenTag[m])
	}
	r.state.mode = m
	return prev
}

// dispatch routes one classified line through the state machine.
func (r *Renderer) dispatch(line Line) {
	switch line.Kind {
	case KindBlank:
		r.blankLine()
	case KindSyntax:
		r.write("Syntax: <code>")
		r.write(line.Raw[len(syntaxPrefix):])
		r.write("</code>\n")
	case KindContinuation:
		r.continuation(line)
	case KindBullet:
		r.listItem(modeUnordered, line.Raw[indentItem+2:])
	case KindNumbered:
		rest := line.Raw[indentItem:]
		rest = rest[strings.Index(rest, ". ")+2:]
		r.listItem(modeOrdered, rest)
	case KindDefinition:
		r.definition(line.Raw[indentItem:])
	case KindPre:
		r.preLine(line)
	case KindHeading:
		r.setMode(modeNone)
		title := strings.TrimSuffix(line.Raw, ":")
		fmt.Fprintf(&r.out, "\n<h%d class=\"w3-container\">%s</h%d>\n", r.headingLevel, RenderInline(title), r.headingLevel)
	default:
		r.prose(line.Raw)
	}
}

// blankLine ends an open paragraph, emits a paragraph break when nothing
// is open, and is insignificant whitespace inside any other block.
func (r *Renderer) blankLine() {
	switch {
	case r.state.mode == modeParagraph:
		r.setMode(modeNone)
	case r.state.mode == modeNone && !r.state.pre:
		r.write("<p/>\n")
	}
}

// continuation appends text to the still-open list item, preserving the
// item's running text; re-entry into the item mode is idempotent. Lines at
// the preformatted depth classify as KindPre instead and nest a
// preformatted region inside the item (see preLine).
func (r *Renderer) continuation(line Line) {
	if r.state.item == itemNone {
		r.enterItem(itemListEntry)
	} else {
		r.closePre()
	}
	r.write("\n")
	r.write(RenderInline(line.Raw[indentContinuation:]))
}

// listItem opens the enclosing list mode and a fresh item. A bullet whose
// text carries a ": " pair renders the leading portion as a code span
// label. An item with no visible text opens the list only.
func (r *Renderer) listItem(mode blockMode, text string) {
	r.setMode(mode)
	if mode == modeUnordered {
		if label, rest, ok := strings.Cut(text, ": "); ok {
			r.enterItem(itemListEntry)
			r.write("<code>")
			r.write(label)
			r.write("</code>: ")
			r.write(RenderInline(rest))
			return
		}
	}
	if strings.TrimSpace(text) == "" {
		return
	}
	r.enterItem(itemListEntry)
	r.write(RenderInline(text))
}

// definition renders a "term: description" pair: the term becomes a code
// span label and the description an open item the following lines may
// continue. A ": " inside a code span can confuse the label split; the
// result is a misrendered label, never an error.
func (r *Renderer) definition(text string) {
	r.setMode(modeDefinition)
	term, desc, _ := strings.Cut(text, ": ")
	r.closePre()
	r.closeItem()
	r.write("<dt><code>")
	r.write(term)
	r.write("</code></dt>\n")
	r.enterItem(itemDefValue)
	r.write(RenderInline(desc))
}

// preLine appends one line of preformatted text, literally, with no
// inline rendering. Inside an open list the preformatted region nests in
// the current item; otherwise it opens at the top level.
func (r *Renderer) preLine(line Line) {
	r.enterPre()
	strip := indentItem
	if (r.state.mode == modeUnordered || r.state.mode == modeOrdered) && line.Indent >= indentPre {
		strip = indentPre
	}
	if strip > line.Indent {
		strip = line.Indent
	}
	r.write(line.Raw[strip:])
	r.write("\n")
}

// prose merges ordinary text into the current paragraph, opening one if a
// different block is open or none is.
func (r *Renderer) prose(raw string) {
	if r.setMode(modeParagraph) == modeParagraph {
		r.write("\n")
	}
	r.write(RenderInline(raw))
}
