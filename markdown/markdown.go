/*
Package markdown renders Markdown into plain text, carrying inline formatting
as styled Unicode letters.

	**bold**, __bold__     bold
	*em*, _em_             italic
	`code`, code blocks    monospace
	# Heading              bold

Paragraphs are separated by an empty line, list items are prefixed by a
bullet and indented by two spaces per nesting level. Links keep their text and append the destination in parentheses.
*/
package markdown

import (
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/unistyle"
	"github.com/npillmayer/unistyle/edit"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

type renderer struct {
	source []byte
	prefs  edit.Preferences
	depth  int // list nesting
	b      strings.Builder
}

// Render converts Markdown source to Unicode-styled plain text.
// Combinations of bold and italic are resolved with edit.ResolveStyle, using prefs.
func Render(source []byte, prefs edit.Preferences) string {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))
	r := &renderer{source: source, prefs: prefs}
	r.block(doc)
	return strings.TrimRight(r.b.String(), "\n")
}

// block renders block-level nodes.
func (r *renderer) block(n ast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Heading:
			r.separate()
			r.inline(node, edit.Bold, false)
			r.b.WriteByte('\n')
		case *ast.Paragraph, *ast.TextBlock:
			if _, ok := node.(*ast.TextBlock); !ok {
				r.separate()
			}
			r.inline(node, edit.PlainState, false)
			r.b.WriteByte('\n')
		case *ast.List:
			if _, nested := node.Parent().(*ast.ListItem); !nested {
				r.separate()
			}
			r.depth++
			r.block(node)
			r.depth--
		case *ast.ListItem:
			r.b.WriteString(strings.Repeat("  ", r.depth-1) + "• ")
			r.block(node)
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			r.separate()
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				r.write(string(seg.Value(r.source)), edit.PlainState, true)
			}
		case *ast.Blockquote:
			r.separate()
			r.block(node)
		case *ast.ThematicBreak:
			r.separate()
			r.b.WriteString("―――\n")
		default:
			T().Debugf("markdown: skipping block %s", c.Kind())
		}
	}
}

// separate inserts an empty line between blocks.
func (r *renderer) separate() {
	out := r.b.String()
	if out == "" || strings.HasSuffix(out, "\n\n") || strings.HasSuffix(out, "• ") {
		return
	}
	if !strings.HasSuffix(out, "\n") {
		r.b.WriteByte('\n')
	}
	r.b.WriteByte('\n')
}

// inline renders the inline children of n with a given formatting state.
func (r *renderer) inline(n ast.Node, state edit.State, mono bool) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			r.write(string(node.Segment.Value(r.source)), state, mono)
			if node.HardLineBreak() || node.SoftLineBreak() {
				r.b.WriteByte('\n')
			}
		case *ast.String:
			r.write(string(node.Value), state, mono)
		case *ast.Emphasis:
			s := state.Add(edit.Italic)
			if node.Level >= 2 {
				s = state.Add(edit.Bold)
			}
			r.inline(node, s, mono)
		case *ast.CodeSpan:
			r.inline(node, state, true)
		case *ast.Link:
			start := r.b.Len()
			r.inline(node, state, mono)
			label := unistyle.Normalize(r.b.String()[start:])
			if dest := string(node.Destination); dest != "" && dest != label {
				r.b.WriteString(" (" + dest + ")")
			}
		case *ast.AutoLink:
			r.b.Write(node.URL(r.source))
		case *ast.Image:
			r.inline(node, state, mono)
		case *ast.RawHTML:
			// inline tags are dropped
		default:
			r.inline(node, state, mono)
		}
	}
}

func (r *renderer) write(s string, state edit.State, mono bool) {
	name := edit.ResolveStyle(state, r.prefs)
	if mono {
		name = "monospace"
	}
	if name == "" {
		r.b.WriteString(s)
		return
	}
	styled, err := unistyle.ConvertTo(s, name)
	if err != nil {
		T().Errorf("markdown: %v", err)
		styled = s
	}
	r.b.WriteString(styled)
}
