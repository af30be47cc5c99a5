package html

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/unistyle"
	"github.com/npillmayer/unistyle/edit"
	"golang.org/x/net/html"
)

func conv(t *testing.T, text, style string) string {
	t.Helper()
	s, err := unistyle.ConvertTo(text, style)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestTextFromHTML(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	text, err := TextFromHTML(strings.NewReader("Hello <b>World</b>, how <i>are</i> you?"))
	if err != nil {
		t.Fatal(err)
	}
	if text != "Hello World, how are you?" {
		t.Errorf("unexpected text %q", text)
	}
}

func TestInnerText(t *testing.T) {
	nodes, err := html.ParseFragment(strings.NewReader("<p>one <span>two</span></p>"), nil)
	if err != nil {
		t.Fatal(err)
	}
	text, err := InnerText(nodes[0])
	if err != nil {
		t.Fatal(err)
	}
	if text != "one two" {
		t.Errorf("unexpected inner text %q", text)
	}
	if _, err := InnerText(nil); !errors.Is(err, ErrNilNode) {
		t.Errorf("expected ErrNilNode, got %v", err)
	}
	if ErrNilNode.Error() != "html: node is nil" {
		t.Errorf("unexpected error message %q", ErrNilNode.Error())
	}
}

func TestRenderInlineStyles(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	out, err := Render(strings.NewReader(
		"Say <b>hello</b> to <i>my</i> <strong><em>little</em></strong> <code>friend</code>!"),
		edit.DefaultPreferences)
	if err != nil {
		t.Fatal(err)
	}
	expected := "Say " + conv(t, "hello", "bold") + " to " + conv(t, "my", "sans-serif-italic") +
		" " + conv(t, "little", "sans-serif-bold-italic") + " " + conv(t, "friend", "monospace") + "!"
	if out != expected {
		t.Errorf("expected %q, got %q", expected, out)
	}
	if unistyle.Normalize(out) != "Say hello to my little friend!" {
		t.Errorf("unexpected normalized output %q", unistyle.Normalize(out))
	}
}

func TestRenderSerifPreferences(t *testing.T) {
	prefs := edit.Preferences{Italic: edit.Serif, BoldItalic: edit.Serif}
	out, err := Render(strings.NewReader("<em>a</em><b><i>b</i></b>"), prefs)
	if err != nil {
		t.Fatal(err)
	}
	if out != conv(t, "a", "italic")+conv(t, "b", "bold-italic") {
		t.Errorf("unexpected serif rendering %q", out)
	}
}

func TestRenderBlocks(t *testing.T) {
	out, err := Render(strings.NewReader(
		"<h1>Title</h1>\n<p>First<br>line</p>\n<ul><li>one</li><li>two</li></ul>"),
		edit.DefaultPreferences)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(out, "\n")
	expected := []string{conv(t, "Title", "bold"), "First", "line", "• one", "• two"}
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, got %d: %q", len(expected), len(lines), out)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d: expected %q, got %q", i, expected[i], lines[i])
		}
	}
}

func TestRenderCollapsesWhitespace(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	out, err := Render(strings.NewReader("<div>\n  <p>\n    Hello <b>World</b>\n  </p>\n</div>"),
		edit.DefaultPreferences)
	if err != nil {
		t.Fatal(err)
	}
	if expected := "Hello " + conv(t, "World", "bold"); out != expected {
		t.Errorf("expected %q, got %q", expected, out)
	}
	out, err = Render(strings.NewReader(
		"<ul>\n  <li>one\n    two</li>\n  <li>  three  </li>\n</ul>\n<p>a<br>\n  b</p>"),
		edit.DefaultPreferences)
	if err != nil {
		t.Fatal(err)
	}
	if expected := "• one two\n• three\na\nb"; out != expected {
		t.Errorf("expected %q, got %q", expected, out)
	}
}

func TestRenderPreKeepsWhitespace(t *testing.T) {
	out, err := Render(strings.NewReader("<p>code:</p><pre>a  b\n  c</pre>"), edit.DefaultPreferences)
	if err != nil {
		t.Fatal(err)
	}
	if expected := "code:\n" + conv(t, "a  b\n  c", "monospace"); out != expected {
		t.Errorf("expected %q, got %q", expected, out)
	}
}
