package unistyle

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Format is the formatting state inferred from styled code points.
type Format struct {
	Bold   bool
	Italic bool
	Script bool
	Sans   bool
	Mono   bool
}

// IsPlain is true if no formatting flag is set.
func (f Format) IsPlain() bool {
	return f == Format{}
}

// Union returns a format with all flags set which are set in f or other.
func (f Format) Union(other Format) Format {
	return Format{
		Bold:   f.Bold || other.Bold,
		Italic: f.Italic || other.Italic,
		Script: f.Script || other.Script,
		Sans:   f.Sans || other.Sans,
		Mono:   f.Mono || other.Mono,
	}
}

func (f Format) String() string {
	if f.IsPlain() {
		return "plain"
	}
	var flags []string
	if f.Bold {
		flags = append(flags, "bold")
	}
	if f.Italic {
		flags = append(flags, "italic")
	}
	if f.Script {
		flags = append(flags, "script")
	}
	if f.Sans {
		flags = append(flags, "sans")
	}
	if f.Mono {
		flags = append(flags, "mono")
	}
	return strings.Join(flags, "+")
}

func letterFormat(m *LetterMap) Format {
	return Format{
		Bold:   m.Bold,
		Italic: m.Italic,
		Script: m.Family == Script,
		Sans:   m.Family == Sans,
		Mono:   m.Family == Mono,
	}
}

func digitFormat(m *DigitMap) Format {
	return Format{
		Bold: m.Bold,
		Sans: m.Family == Sans,
		Mono: m.Family == Mono,
	}
}

// ClassifyRune returns the format of the styled block r belongs to. If r
// is not a styled letter or digit, ClassifyRune returns false.
func ClassifyRune(r rune) (Format, bool) {
	for i := range letterMaps {
		if letterMaps[i].Contains(r) {
			return letterFormat(&letterMaps[i]), true
		}
	}
	for i := range digitMaps {
		if digitMaps[i].Contains(r) {
			return digitFormat(&digitMaps[i]), true
		}
	}
	return Format{}, false
}

// Classify infers the formatting state of text from the first styled code
// point found. Subsequent code points are not inspected, so text with mixed
// styles reports the style of its leading styled character only.
// Text without any styled code point is reported as plain.
func Classify(text string) Format {
	for _, r := range text {
		if r < utf8.RuneSelf {
			continue
		}
		if f, ok := ClassifyRune(r); ok {
			return f
		}
	}
	return Format{}
}

// ClassifyAll returns the union of the formats of all styled code points of text.
func ClassifyAll(text string) Format {
	var all Format
	for _, r := range text {
		if f, ok := ClassifyRune(r); ok {
			all = all.Union(f)
		}
	}
	return all
}

// --- Style runs ------------------------------------------------------------

// Run is a maximal run of code points sharing a single classification.
// Position and Length are byte offsets into the classified text.
type Run struct {
	Format   Format
	Styled   bool // false for runs of code points outside any styled block
	Position uint64
	Length   uint64
}

func (r Run) String() string {
	if !r.Styled {
		return fmt.Sprintf("[%d…%d) unstyled", r.Position, r.Position+r.Length)
	}
	return fmt.Sprintf("[%d…%d) %s", r.Position, r.Position+r.Length, r.Format)
}

// StyleRuns splits text into runs of uniform classification. Whitespace and
// other unstyled code points form runs of their own. The runs cover text
// without gaps.
func StyleRuns(text string) []Run {
	var runs []Run
	for i, r := range text {
		f, styled := ClassifyRune(r)
		w := uint64(utf8.RuneLen(r))
		if r == utf8.RuneError {
			_, w0 := utf8.DecodeRuneInString(text[i:])
			w = uint64(w0)
		}
		if n := len(runs); n > 0 && runs[n-1].Styled == styled && runs[n-1].Format == f {
			runs[n-1].Length += w
			continue
		}
		runs = append(runs, Run{Format: f, Styled: styled, Position: uint64(i), Length: w})
	}
	return runs
}

// EachStyleRun applies a function to each style run of text, together with
// the run's content. Iteration stops at the first error, which is returned.
func EachStyleRun(text string, f func(content string, run Run) error) error {
	for _, run := range StyleRuns(text) {
		if err := f(text[run.Position:run.Position+run.Length], run); err != nil {
			return err
		}
	}
	return nil
}
