package edit

import (
	"fmt"

	"github.com/npillmayer/unistyle"
)

// State is the formatting state an editor keeps for a caret position or a
// selection. States are values: operations of this package return new states
// instead of modifying shared ones.
type State int

// Flags of a formatting state.
const (
	PlainState State = 0
	Bold       State = 1 << iota
	Italic
	Script
	Sans
)

func stateString(s State) string {
	switch s {
	case PlainState:
		return "plain"
	case Bold:
		return "b"
	case Italic:
		return "i"
	case Script:
		return "script"
	case Sans:
		return "sans"
	}
	return fmt.Sprintf("State(%d)", s)
}

// Add returns s with the flags of other set.
func (s State) Add(other State) State {
	return s | other
}

// Minus returns s with the flags of other cleared.
func (s State) Minus(other State) State {
	return s & ^other
}

// Has is true if all flags of other are set in s.
func (s State) Has(other State) bool {
	return s&other == other
}

// IsActive is true if any of bold, italic or script is set. The sans flag
// alone does not count as active formatting.
func (s State) IsActive() bool {
	return s&(Bold|Italic|Script) != 0
}

func (s State) String() string {
	if s == 0 {
		return stateString(0)
	}
	str := ""
	for _, flag := range []State{Bold, Italic, Script, Sans} {
		if s&flag > 0 {
			if str != "" {
				str += "+"
			}
			str += stateString(flag)
		}
	}
	if str != "" {
		return str
	}
	return stateString(s)
}

// FromFormat derives an editor state from a classification result.
// Monospace is not part of an editor state and is dropped.
func FromFormat(f unistyle.Format) State {
	var s State
	if f.Bold {
		s = s.Add(Bold)
	}
	if f.Italic {
		s = s.Add(Italic)
	}
	if f.Script {
		s = s.Add(Script)
	}
	if f.Sans {
		s = s.Add(Sans)
	}
	return s
}
