package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/unistyle"
	"github.com/npillmayer/unistyle/edit"
	"github.com/npillmayer/unistyle/wrap"
	"golang.org/x/term"
)

// reporter prints classification results, using colors to visualize
// formatting flags if the output is a terminal.
type reporter struct {
	w       io.Writer
	flags   map[string]*color.Color
	family  map[unistyle.Family]*color.Color
	faint   *color.Color
	levels  map[edit.CountLevel]*color.Color
	colored bool
}

func newReporter(w io.Writer, mode string) *reporter {
	r := &reporter{
		w: w,
		flags: map[string]*color.Color{
			"bold":   color.New(color.FgRed, color.Bold),
			"italic": color.New(color.FgGreen, color.Italic),
			"script": color.New(color.FgMagenta),
			"sans":   color.New(color.FgCyan),
			"mono":   color.New(color.FgYellow),
		},
		family: map[unistyle.Family]*color.Color{
			unistyle.Serif:   color.New(color.FgBlue),
			unistyle.Script:  color.New(color.FgMagenta),
			unistyle.Fraktur: color.New(color.FgRed),
			unistyle.Sans:    color.New(color.FgCyan),
			unistyle.Mono:    color.New(color.FgYellow),
		},
		faint: color.New(color.Faint),
		levels: map[edit.CountLevel]*color.Color{
			edit.CountWarn:  color.New(color.FgYellow),
			edit.CountAlert: color.New(color.FgRed, color.Bold),
		},
	}
	switch mode {
	case "always":
		r.colored = true
	case "never":
		r.colored = false
	default:
		if f, ok := w.(*os.File); ok {
			r.colored = term.IsTerminal(int(f.Fd()))
		}
	}
	for _, c := range r.allColors() {
		if r.colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func (r *reporter) allColors() []*color.Color {
	all := []*color.Color{r.faint}
	for _, c := range r.flags {
		all = append(all, c)
	}
	for _, c := range r.family {
		all = append(all, c)
	}
	for _, c := range r.levels {
		all = append(all, c)
	}
	return all
}

// format prints the flags of a formatting state on a single line.
func (r *reporter) format(label string, f unistyle.Format) {
	fmt.Fprintf(r.w, "%-6s ", label+":")
	if f.IsPlain() {
		r.faint.Fprintln(r.w, "plain")
		return
	}
	for i, flag := range strings.Split(f.String(), "+") {
		if i > 0 {
			fmt.Fprint(r.w, " ")
		}
		r.flags[flag].Fprint(r.w, flag)
	}
	fmt.Fprintln(r.w)
}

// run prints a style run together with its normalized content.
func (r *reporter) run(content string, run unistyle.Run) {
	fmt.Fprintf(r.w, "%4d %4d  ", run.Position, run.Length)
	if !run.Styled {
		r.faint.Fprintf(r.w, "%-24s", "unstyled")
	} else {
		fmt.Fprintf(r.w, "%-24s", run.Format)
	}
	fmt.Fprintf(r.w, " %q\n", unistyle.Normalize(content))
}

// style prints a style name, padded to width, followed by a sample text.
func (r *reporter) style(name string, width int, sample string, family unistyle.Family) {
	c := r.family[family]
	c.Fprint(r.w, name)
	fmt.Fprint(r.w, strings.Repeat(" ", width-wrap.Width(name, nil)+2))
	fmt.Fprintln(r.w, sample)
}

// count prints the character count of a post, colored if it gets close to
// the length limit.
func (r *reporter) count(n int) {
	if c, ok := r.levels[edit.LevelOf(n)]; ok {
		c.Fprintf(r.w, "%d", n)
	} else {
		fmt.Fprintf(r.w, "%d", n)
	}
	fmt.Fprintln(r.w, " characters")
}
