package edit

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/unistyle"
)

// Toggle names a formatting command an editor issues, e.g. for a toolbar
// button or a keyboard shortcut.
type Toggle int8

// Formatting commands.
const (
	ToggleBold Toggle = iota
	ToggleItalic
	ToggleScript
)

func (t Toggle) String() string {
	switch t {
	case ToggleBold:
		return "bold"
	case ToggleItalic:
		return "italic"
	case ToggleScript:
		return "script"
	}
	return "Toggle(?)"
}

// ParseToggle parses "bold", "italic" or "script".
func ParseToggle(s string) (Toggle, bool) {
	switch strings.ToLower(s) {
	case "bold", "b":
		return ToggleBold, true
	case "italic", "i":
		return ToggleItalic, true
	case "script", "s":
		return ToggleScript, true
	}
	return ToggleBold, false
}

// Apply flips the flag addressed by toggle. Script and bold/italic exclude each
// other: switching script on clears bold and italic, switching bold or italic
// on clears script.
func Apply(state State, toggle Toggle) State {
	switch toggle {
	case ToggleScript:
		if state.Has(Script) {
			return state.Minus(Script)
		}
		return state.Add(Script).Minus(Bold | Italic)
	case ToggleBold:
		if state.Has(Bold) {
			return state.Minus(Bold)
		}
		return state.Add(Bold).Minus(Script)
	case ToggleItalic:
		if state.Has(Italic) {
			return state.Minus(Italic)
		}
		return state.Add(Italic).Minus(Script)
	}
	return state
}

// InferState returns the formatting state of the nearest non-whitespace code
// point before byte position offset of text. If there is none, the plain
// state is returned.
func InferState(text string, offset int) State {
	if offset > len(text) {
		offset = len(text)
	}
	for offset > 0 {
		r, w := utf8.DecodeLastRuneInString(text[:offset])
		offset -= w
		if unicode.IsSpace(r) {
			continue
		}
		return FromFormat(unistyle.Classify(string(r)))
	}
	return PlainState
}

// Effective returns the state which applies to the caret at offset: the pending
// state if it has bold, italic or script set, otherwise the state inferred
// from the text before the caret.
func Effective(pending State, text string, offset int) State {
	if pending.IsActive() {
		return pending
	}
	return InferState(text, offset)
}

// ToggleSelection applies a formatting command to a selected run of text.
// The selection is normalized, its current state classified and toggled,
// and the result converted to the resolved style. It returns the new text
// together with the new state, which the caller should keep as pending state.
//
// If the state resolves to no style, the normalized text is returned.
func ToggleSelection(selected string, toggle Toggle, prefs Preferences) (string, State) {
	plain := unistyle.Normalize(selected)
	target := Apply(FromFormat(unistyle.Classify(selected)), toggle)
	name := ResolveStyle(target, prefs)
	T().Debugf("edit: toggle %s on selection: state %v → style %q", toggle, target, name)
	if name == "" {
		return plain, target
	}
	styled, err := unistyle.ConvertTo(plain, name)
	if err != nil {
		T().Errorf("edit: %v", err)
		return plain, target
	}
	return styled, target
}

// ApplyPending styles the code point just typed, i.e. the one ending at byte
// position offset, according to a pending state. It returns the new text and
// the caret position adjusted to the possibly longer encoding.
//
// Text is returned unchanged if the pending state is not active, if there is
// no code point before offset or if it is whitespace.
func ApplyPending(text string, offset int, pending State, prefs Preferences) (string, int) {
	if !pending.IsActive() || offset <= 0 || offset > len(text) {
		return text, offset
	}
	r, w := utf8.DecodeLastRuneInString(text[:offset])
	if unicode.IsSpace(r) {
		return text, offset
	}
	name := ResolveStyle(pending, prefs)
	if name == "" {
		return text, offset
	}
	style, err := unistyle.Lookup(name)
	if err != nil {
		T().Errorf("edit: %v", err)
		return text, offset
	}
	c := unistyle.ConvertRune(r, style)
	if c == r {
		return text, offset
	}
	conv := string(c)
	start := offset - w
	return text[:start] + conv + text[offset:], start + len(conv)
}

// Clear strips all styling from text.
func Clear(text string) string {
	return unistyle.Normalize(text)
}

var blanks = regexp.MustCompile(`[ \t]+`)

// PostText prepares editor content for posting: it trims surrounding space,
// collapses pairs of newlines into a single one and runs of blanks and tabs
// into a single space.
func PostText(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "\n\n", "\n")
	text = blanks.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
