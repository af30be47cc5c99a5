package edit

import (
	"fmt"
	"strings"
)

// Face selects between serif and sans-serif glyphs for a combination of
// formatting flags. The zero value prefers sans-serif.
type Face int8

// Faces to choose from.
const (
	SansSerif Face = iota
	Serif
)

func (f Face) String() string {
	if f == Serif {
		return "serif"
	}
	return "sans-serif"
}

// ParseFace parses "serif" or "sans-serif" (case insensitive; "sans" is
// accepted as well).
func ParseFace(s string) (Face, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "serif":
		return Serif, nil
	case "sans-serif", "sans":
		return SansSerif, nil
	}
	return SansSerif, fmt.Errorf("unknown face %q, expected serif or sans-serif", s)
}

// Preferences configure the choice of glyph faces for combinations of
// formatting flags.
//
// Serif italic letters lack a glyph for 'h' (U+1D455 is unassigned). Compat
// reproduces the legacy resolution, which avoids serif glyphs: Italic and
// BoldItalic are ignored and every state except plain resolves to a
// sans-serif style.
type Preferences struct {
	Italic     Face // face for italic-only text
	BoldItalic Face // face for bold italic text
	Compat     bool
}

// DefaultPreferences prefer sans-serif for italic and bold italic text.
var DefaultPreferences = Preferences{Italic: SansSerif, BoldItalic: SansSerif}

// ResolveStyle maps an editor state to the name of a style as registered with
// package unistyle. Script overrides all other flags. For bold italic text
// and italic text the face is taken from the preferences, for bold and plain
// text from the state's Sans flag.
//
// Plain serif text has no style of its own: ResolveStyle returns "" to signal
// that text should be left unconverted.
func ResolveStyle(state State, prefs Preferences) string {
	if state.Has(Script) {
		return "script"
	}
	bold, italic := state.Has(Bold), state.Has(Italic)
	var preferSans bool
	switch {
	case prefs.Compat && (bold || italic):
		preferSans = true
	case bold && italic:
		preferSans = prefs.BoldItalic == SansSerif
	case italic:
		preferSans = prefs.Italic == SansSerif
	default:
		preferSans = state.Has(Sans)
	}
	if preferSans {
		switch {
		case bold && italic:
			return "sans-serif-bold-italic"
		case italic:
			return "sans-serif-italic"
		case bold:
			return "sans-serif-bold"
		}
		return "sans-serif"
	}
	switch {
	case bold && italic:
		return "bold-italic"
	case italic:
		return "italic"
	case bold:
		return "bold"
	}
	return ""
}
