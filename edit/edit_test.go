package edit

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/unistyle"
)

func TestStateString(t *testing.T) {
	s := Italic.Add(Sans)
	if s.String() != "i+sans" {
		t.Errorf("expected 'i+sans', got %q", s.String())
	}
	if PlainState.String() != "plain" {
		t.Errorf("expected 'plain', got %q", PlainState.String())
	}
	if s.Minus(Italic) != Sans {
		t.Errorf("expected minus italic to leave sans, got %v", s.Minus(Italic))
	}
}

func TestResolveStyle(t *testing.T) {
	serif := Preferences{Italic: Serif, BoldItalic: Serif}
	tests := []struct {
		name     string
		state    State
		prefs    Preferences
		expected string
	}{
		{"script overrides", Script.Add(Bold).Add(Italic), DefaultPreferences, "script"},
		{"bold italic default", Bold | Italic, DefaultPreferences, "sans-serif-bold-italic"},
		{"bold italic serif", Bold | Italic, serif, "bold-italic"},
		{"italic default", Italic, DefaultPreferences, "sans-serif-italic"},
		{"italic serif", Italic, serif, "italic"},
		{"bold serif", Bold, DefaultPreferences, "bold"},
		{"bold sans", Bold | Sans, serif, "sans-serif-bold"},
		{"plain sans", Sans, DefaultPreferences, "sans-serif"},
		{"plain serif", PlainState, DefaultPreferences, ""},
		{"compat italic", Italic, Preferences{Italic: Serif, Compat: true}, "sans-serif-italic"},
		{"compat bold", Bold, Preferences{Compat: true}, "sans-serif-bold"},
		{"compat plain", PlainState, Preferences{Compat: true}, ""},
		{"compat plain sans", Sans, Preferences{Compat: true}, "sans-serif"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveStyle(tt.state, tt.prefs); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestResolvedStylesAreRegistered(t *testing.T) {
	for s := State(0); s < 32; s++ {
		for _, prefs := range []Preferences{DefaultPreferences, {Italic: Serif, BoldItalic: Serif}, {Compat: true}} {
			name := ResolveStyle(s, prefs)
			if name == "" {
				continue
			}
			if _, err := unistyle.Lookup(name); err != nil {
				t.Errorf("state %v resolves to unregistered style %q", s, name)
			}
		}
	}
}

func TestParseFace(t *testing.T) {
	if f, err := ParseFace("Serif"); err != nil || f != Serif {
		t.Errorf("expected serif, got %v, %v", f, err)
	}
	if f, err := ParseFace("sans-serif"); err != nil || f != SansSerif {
		t.Errorf("expected sans-serif, got %v, %v", f, err)
	}
	if _, err := ParseFace("gothic"); err == nil {
		t.Errorf("expected error for unknown face")
	}
}

func TestApplyToggles(t *testing.T) {
	s := Apply(PlainState, ToggleBold)
	if s != Bold {
		t.Errorf("expected bold, got %v", s)
	}
	s = Apply(s, ToggleScript)
	if s != Script {
		t.Errorf("expected script to clear bold, got %v", s)
	}
	s = Apply(s, ToggleItalic)
	if s != Italic {
		t.Errorf("expected italic to clear script, got %v", s)
	}
	for _, toggle := range []Toggle{ToggleBold, ToggleItalic, ToggleScript} {
		start := Bold | Sans
		if toggle == ToggleScript {
			start = Script
		}
		if twice := Apply(Apply(start, toggle), toggle); twice != start {
			t.Errorf("toggling %v twice changed %v to %v", toggle, start, twice)
		}
	}
}

func TestInferState(t *testing.T) {
	bold, _ := unistyle.ConvertTo("Hi", "sans-serif-bold")
	text := "say " + bold + "  \n"
	if s := InferState(text, len(text)); s != Bold|Sans {
		t.Errorf("expected bold sans from context, got %v", s)
	}
	if s := InferState(text, 4); s != PlainState {
		t.Errorf("expected plain before styled word, got %v", s)
	}
	if s := InferState("   ", 3); s != PlainState {
		t.Errorf("expected plain for whitespace only, got %v", s)
	}
	if s := InferState(text, 1000); s != Bold|Sans {
		t.Errorf("expected offset to be clamped, got %v", s)
	}
}

func TestEffective(t *testing.T) {
	italic, _ := unistyle.ConvertTo("x", "italic")
	if s := Effective(Bold, italic, len(italic)); s != Bold {
		t.Errorf("expected pending state to win, got %v", s)
	}
	if s := Effective(Sans, italic, len(italic)); s != Italic {
		t.Errorf("expected inferred italic, got %v", s)
	}
}

func TestToggleBoldInPlainContext(t *testing.T) {
	text := "plain text"
	state := Effective(PlainState, text, len(text))
	state = Apply(state, ToggleBold)
	if name := ResolveStyle(state, DefaultPreferences); name != "bold" {
		t.Errorf("expected serif 'bold' for plain context, got %q", name)
	}
}

func TestToggleSelection(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	text, state := ToggleSelection("Hello 42", ToggleBold, DefaultPreferences)
	expected, _ := unistyle.ConvertTo("Hello 42", "bold")
	if text != expected || state != Bold {
		t.Errorf("expected serif bold %q, got %q (%v)", expected, text, state)
	}
	text, state = ToggleSelection(text, ToggleItalic, DefaultPreferences)
	expected, _ = unistyle.ConvertTo("Hello 42", "sans-serif-bold-italic")
	if text != expected || state != Bold|Italic {
		t.Errorf("expected sans bold italic %q, got %q (%v)", expected, text, state)
	}
	text, _ = ToggleSelection(text, ToggleItalic, DefaultPreferences)
	text, state = ToggleSelection(text, ToggleBold, DefaultPreferences)
	expected, _ = unistyle.ConvertTo("Hello 42", "sans-serif")
	if text != expected || state != Sans {
		t.Errorf("expected sans-serif text after untoggling, got %q (%v)", text, state)
	}
	text, state = ToggleSelection("Hello", ToggleScript, DefaultPreferences)
	if unistyle.Normalize(text) != "Hello" || state != Script {
		t.Errorf("expected script text, got %q (%v)", text, state)
	}
}

func TestApplyPending(t *testing.T) {
	text := "ab"
	out, caret := ApplyPending(text, 2, Bold, DefaultPreferences)
	expected := "a" + string(rune(0x1D400+26+1))
	if out != expected || caret != len(expected) {
		t.Errorf("expected %q with caret %d, got %q with caret %d", expected, len(expected), out, caret)
	}
	if out, caret = ApplyPending("a ", 2, Bold, DefaultPreferences); out != "a " || caret != 2 {
		t.Errorf("expected whitespace to stay plain, got %q", out)
	}
	if out, _ = ApplyPending("ab", 2, PlainState, DefaultPreferences); out != "ab" {
		t.Errorf("expected inactive state to leave text alone, got %q", out)
	}
	if out, _ = ApplyPending("a!", 2, Italic, DefaultPreferences); out != "a!" {
		t.Errorf("expected punctuation to stay plain, got %q", out)
	}
}

func TestClearAndPostText(t *testing.T) {
	s, _ := unistyle.ConvertTo("Hello", "script")
	if Clear(s+" world") != "Hello world" {
		t.Errorf("expected styling to be cleared")
	}
	post := PostText("  First line\n\nSecond \t  line  \n")
	if post != "First line\nSecond line" {
		t.Errorf("unexpected post text %q", post)
	}
}

func TestCharCount(t *testing.T) {
	bold, _ := unistyle.ConvertTo("Hi!", "bold")
	tests := []struct {
		text     string
		expected int
	}{
		{"", 0},
		{"Hi!", 3},
		{bold, 5},
		{"Grüße", 5},
	}
	for _, tt := range tests {
		if n := CharCount(tt.text); n != tt.expected {
			t.Errorf("CharCount(%q): expected %d, got %d", tt.text, tt.expected, n)
		}
	}
}

func TestLevelOf(t *testing.T) {
	tests := []struct {
		count    int
		expected CountLevel
	}{
		{0, CountOK},
		{CharWarnLimit, CountOK},
		{CharWarnLimit + 1, CountWarn},
		{CharAlertLimit, CountWarn},
		{CharAlertLimit + 1, CountAlert},
	}
	for _, tt := range tests {
		if l := LevelOf(tt.count); l != tt.expected {
			t.Errorf("LevelOf(%d): expected %v, got %v", tt.count, tt.expected, l)
		}
	}
}
