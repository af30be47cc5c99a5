/*
Package edit holds the formatting logic of a plain-text editor producing
Unicode-styled text.

Editors keep a formatting state (bold, italic, script) for the caret and
for selections, toggle it on user commands and resolve it to one of the
styles of package unistyle. All of this is modelled as values and pure
functions: the editor owns its state and passes it in explicitly.

	state := edit.Effective(pending, text, caret)
	state = edit.Apply(state, edit.ToggleBold)
	name := edit.ResolveStyle(state, edit.DefaultPreferences) // "bold" for plain context

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package edit

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
