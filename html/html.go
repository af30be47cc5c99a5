package html

import (
	"io"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/unistyle"
	"github.com/npillmayer/unistyle/edit"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// HTMLError is the error type of this package.
type HTMLError string

func (e HTMLError) Error() string {
	return string(e)
}

// ErrNilNode is flagged if InnerText is called without a node.
const ErrNilNode = HTMLError("html: node is nil")

// InnerText returns the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//      document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents). Styled letters are kept as they are.
//
func InnerText(n *html.Node) (string, error) {
	if n == nil {
		return "", ErrNilNode
	}
	var b strings.Builder
	collectText(n, &b)
	return b.String(), nil
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// TextFromHTML extracts the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (string, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, n := range nodes {
		collectText(n, &b)
	}
	return b.String(), nil
}

// --- Styled rendering ------------------------------------------------------

// renderer collects the Unicode-styled text of an HTML fragment.
type renderer struct {
	prefs edit.Preferences
	b     strings.Builder
}

// format is the inline formatting in effect for a node.
type format struct {
	state edit.State
	mono  bool
	pre   bool // keep whitespace
}

// Render converts an HTML fragment, as produced by rich text editors, into
// plain text carrying its inline formatting as styled Unicode letters.
//
//	<b>, <strong>                      bold
//	<i>, <em>, <cite>, <var>           italic
//	<code>, <kbd>, <samp>, <tt>, <pre> monospace
//	<h1> … <h6>                        bold
//
// Block elements like <p>, <div> or <li> end a line, <br> inserts a newline.
// Outside of <pre>, runs of whitespace collapse to a single space and lines
// carry no leading or trailing blanks.
// Combinations of bold and italic are resolved to a style with
// edit.ResolveStyle, using prefs.
func Render(input io.Reader, prefs edit.Preferences) (string, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return "", err
	}
	r := &renderer{prefs: prefs}
	for _, n := range nodes {
		r.render(n, format{})
	}
	return strings.TrimRight(r.b.String(), " \n"), nil
}

func (r *renderer) render(n *html.Node, f format) {
	switch n.Type {
	case html.TextNode:
		r.text(n.Data, f)
		return
	case html.ElementNode:
		T().Debugf("html: render <%s> with %v", n.Data, f.state)
		switch n.DataAtom {
		case atom.Br:
			r.b.WriteByte('\n')
			return
		case atom.Script, atom.Style, atom.Head, atom.Template:
			return
		case atom.B, atom.Strong:
			f.state = f.state.Add(edit.Bold)
		case atom.I, atom.Em, atom.Cite, atom.Var:
			f.state = f.state.Add(edit.Italic)
		case atom.Code, atom.Kbd, atom.Samp, atom.Tt, atom.Pre:
			f.mono = true
		case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
			r.endLine()
			f.state = f.state.Add(edit.Bold)
		case atom.Li:
			r.endLine()
			r.b.WriteString("• ")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.render(c, f)
	}
	if n.Type == html.ElementNode && isBlock(n.DataAtom) {
		r.endLine()
	}
}

func (r *renderer) text(s string, f format) {
	if !f.pre {
		s = collapseSpace(s)
		if r.atLineStart() || strings.HasSuffix(r.b.String(), " ") {
			s = strings.TrimLeft(s, " ")
		}
		if s == "" {
			return
		}
	}
	name := edit.ResolveStyle(f.state, r.prefs)
	if f.mono {
		name = "monospace"
	}
	if name == "" {
		r.b.WriteString(s)
		return
	}
	styled, err := unistyle.ConvertTo(s, name)
	if err != nil {
		T().Errorf("html: %v", err)
		styled = s
	}
	r.b.WriteString(styled)
}

// collapseSpace replaces every run of HTML whitespace in s by a single space.
func collapseSpace(s string) string {
	var b strings.Builder
	space := false
	for _, c := range s {
		switch c {
		case ' ', '\t', '\n', '\r', '\f':
			space = true
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteRune(c)
	}
	if space {
		b.WriteByte(' ')
	}
	return b.String()
}

// trimBlanks removes trailing blanks from the current line.
func (r *renderer) trimBlanks() {
	out := r.b.String()
	if trimmed := strings.TrimRight(out, " "); len(trimmed) < len(out) {
		r.b.Reset()
		r.b.WriteString(trimmed)
	}
}

// newline ends the current line unconditionally.
func (r *renderer) newline() {
	r.trimBlanks()
	r.b.WriteByte('\n')
}

// endLine starts a new line unless the output is empty or already ends with
// a newline.
func (r *renderer) endLine() {
	r.trimBlanks()
	if r.atLineStart() {
		return
	}
	r.b.WriteByte('\n')
}

func (r *renderer) atLineStart() bool {
	out := r.b.String()
	return out == "" || strings.HasSuffix(out, "\n")
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Li, atom.Ul, atom.Ol, atom.Blockquote, atom.Pre,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Section, atom.Article, atom.Header, atom.Footer, atom.Table, atom.Tr:
		return true
	}
	return false
}
