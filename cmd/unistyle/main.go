/*
Command unistyle converts text to and from styled Unicode letters.

	unistyle [-trace level] <command> [flags] [text …]

Commands:

	convert   -s <style>           convert text to a style
	normalize                      convert styled letters back to ASCII
	classify                       report the formatting state of text
	runs                           list runs of uniformly styled text
	styles                         list all styles with a sample
	toggle    -t bold|italic|script toggle a formatting flag on text
	html                           render an HTML fragment
	markdown                       render Markdown
	post                           clean up text for posting, report its length

Text is taken from the command line arguments or, if there are none, from
standard input. Flags common to all commands:

	-italic serif|sans-serif       face for italic text
	-bold-italic serif|sans-serif  face for bold italic text
	-compat                        legacy style resolution (sans-serif only)
	-w <width>                     wrap output lines (-1: terminal width)
	-color auto|always|never       colored reports
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/unistyle"
	"github.com/npillmayer/unistyle/edit"
	"github.com/npillmayer/unistyle/html"
	"github.com/npillmayer/unistyle/markdown"
	"github.com/npillmayer/unistyle/wrap"
	"golang.org/x/term"
	"golang.org/x/text/transform"
)

func main() {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// options are the flags shared by all commands.
type options struct {
	style      string
	toggle     string
	italic     string
	boldItalic string
	compat     bool
	width      int
	color      string
}

func (o *options) register(fs *flag.FlagSet) {
	fs.StringVar(&o.style, "s", "bold", "style name")
	fs.StringVar(&o.toggle, "t", "bold", "formatting flag to toggle: bold, italic or script")
	fs.StringVar(&o.italic, "italic", "sans-serif", "face for italic text: serif or sans-serif")
	fs.StringVar(&o.boldItalic, "bold-italic", "sans-serif", "face for bold italic text: serif or sans-serif")
	fs.BoolVar(&o.compat, "compat", false, "legacy style resolution, preferring sans-serif throughout")
	fs.IntVar(&o.width, "w", 0, "wrap output at width (0: no wrapping, -1: terminal width)")
	fs.StringVar(&o.color, "color", "auto", "colored reports: auto, always or never")
}

func (o *options) preferences() (edit.Preferences, error) {
	var err error
	prefs := edit.Preferences{Compat: o.compat}
	if prefs.Italic, err = edit.ParseFace(o.italic); err != nil {
		return prefs, err
	}
	if prefs.BoldItalic, err = edit.ParseFace(o.boldItalic); err != nil {
		return prefs, err
	}
	return prefs, nil
}

// lineWidth resolves the -w flag, asking the terminal if requested.
func (o *options) lineWidth(out io.Writer) int {
	if o.width >= 0 {
		return o.width
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil {
			return w
		}
	}
	return 80
}

func usage(stderr io.Writer) {
	fmt.Fprintln(stderr, "usage: unistyle [-trace level] <command> [flags] [text …]")
	fmt.Fprintln(stderr, "commands: convert, normalize, classify, runs, styles, toggle, html, markdown, post")
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("unistyle", flag.ContinueOnError)
	global.SetOutput(stderr)
	level := global.String("trace", "error", "trace level: debug, info or error")
	if err := global.Parse(args); err != nil {
		return 2
	}
	setTraceLevel(*level)
	if global.NArg() == 0 {
		usage(stderr)
		return 2
	}
	cmd := global.Arg(0)
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts := &options{}
	opts.register(fs)
	if err := fs.Parse(global.Args()[1:]); err != nil {
		return 2
	}
	prefs, err := opts.preferences()
	if err != nil {
		fmt.Fprintf(stderr, "unistyle: %v\n", err)
		return 2
	}
	gtrace.CoreTracer.Debugf("unistyle: command %s with %+v", cmd, prefs)
	c := &command{
		opts:   opts,
		prefs:  prefs,
		args:   fs.Args(),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		report: newReporter(stdout, opts.color),
	}
	switch cmd {
	case "convert":
		err = c.convert()
	case "normalize":
		err = c.normalize()
	case "classify":
		err = c.classify()
	case "runs":
		err = c.runs()
	case "styles":
		err = c.styles()
	case "toggle":
		err = c.toggleText()
	case "html":
		err = c.render(html.Render)
	case "markdown":
		err = c.render(func(r io.Reader, prefs edit.Preferences) (string, error) {
			source, err := io.ReadAll(r)
			if err != nil {
				return "", err
			}
			return markdown.Render(source, prefs), nil
		})
	case "post":
		err = c.post()
	default:
		fmt.Fprintf(stderr, "unistyle: unknown command %q\n", cmd)
		usage(stderr)
		return 2
	}
	if err != nil {
		fmt.Fprintf(stderr, "unistyle: %v\n", err)
		var use unistyle.UnknownStyleError
		if errors.As(err, &use) {
			if names := suggest(use.Name, unistyle.StyleNames()); len(names) > 0 {
				fmt.Fprintf(stderr, "did you mean: %s?\n", strings.Join(names, ", "))
			}
		}
		return 1
	}
	return 0
}

func setTraceLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	default:
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
}

// --- Commands --------------------------------------------------------------

type command struct {
	opts   *options
	prefs  edit.Preferences
	args   []string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	report *reporter
}

// input returns the command's text: its arguments, or all of stdin.
func (c *command) input() (string, error) {
	if len(c.args) > 0 {
		return strings.Join(c.args, " "), nil
	}
	b, err := io.ReadAll(c.stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\n"), nil
}

func (c *command) output(text string) error {
	lines := wrap.Lines(text, c.opts.lineWidth(c.stdout), nil)
	_, err := fmt.Fprintln(c.stdout, strings.Join(lines, "\n"))
	return err
}

// stream copies stdin to stdout through t. It is used if there are no
// arguments and wrapping is off.
func (c *command) stream(t transform.Transformer) (bool, error) {
	if len(c.args) > 0 || c.opts.width != 0 {
		return false, nil
	}
	_, err := io.Copy(c.stdout, transform.NewReader(c.stdin, t))
	return true, err
}

func (c *command) convert() error {
	t, err := unistyle.NewTransformer(c.opts.style)
	if err != nil {
		return err
	}
	if done, err := c.stream(t); done {
		return err
	}
	return c.transformText(func(s string) string {
		out, _ := unistyle.ConvertTo(s, c.opts.style)
		return out
	})
}

func (c *command) normalize() error {
	if done, err := c.stream(unistyle.Normalizer()); done {
		return err
	}
	return c.transformText(unistyle.Normalize)
}

func (c *command) transformText(f func(string) string) error {
	text, err := c.input()
	if err != nil {
		return err
	}
	return c.output(f(text))
}

// post prints text cleaned up for posting. Its character count goes to stderr,
// keeping stdout ready to be copied.
func (c *command) post() error {
	text, err := c.input()
	if err != nil {
		return err
	}
	out := edit.PostText(text)
	if err := c.output(out); err != nil {
		return err
	}
	newReporter(c.stderr, c.opts.color).count(edit.CharCount(out))
	return nil
}

func (c *command) classify() error {
	text, err := c.input()
	if err != nil {
		return err
	}
	c.report.format("first", unistyle.Classify(text))
	c.report.format("all", unistyle.ClassifyAll(text))
	fmt.Fprintf(c.stdout, "styled: %v\n", unistyle.HasStyling(text))
	return nil
}

func (c *command) runs() error {
	text, err := c.input()
	if err != nil {
		return err
	}
	return unistyle.EachStyleRun(text, func(content string, run unistyle.Run) error {
		c.report.run(content, run)
		return nil
	})
}

func (c *command) styles() error {
	sample := "Sample 123"
	if len(c.args) > 0 {
		sample = strings.Join(c.args, " ")
	}
	names := unistyle.StyleNames()
	pad := 0
	for _, name := range names {
		if w := wrap.Width(name, nil); w > pad {
			pad = w
		}
	}
	for _, name := range names {
		styled, err := unistyle.ConvertTo(sample, name)
		if err != nil {
			return err
		}
		style, _ := unistyle.Lookup(name)
		c.report.style(name, pad, styled, style.Letters.Family)
	}
	return nil
}

func (c *command) toggleText() error {
	toggle, ok := edit.ParseToggle(c.opts.toggle)
	if !ok {
		return fmt.Errorf("unknown formatting flag %q", c.opts.toggle)
	}
	text, err := c.input()
	if err != nil {
		return err
	}
	out, state := edit.ToggleSelection(text, toggle, c.prefs)
	gtrace.CoreTracer.Infof("unistyle: new state is %v", state)
	return c.output(out)
}

func (c *command) render(f func(io.Reader, edit.Preferences) (string, error)) error {
	var r io.Reader = c.stdin
	if len(c.args) > 0 {
		r = strings.NewReader(strings.Join(c.args, " "))
	}
	out, err := f(r, c.prefs)
	if err != nil {
		return err
	}
	return c.output(out)
}
