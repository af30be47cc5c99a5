package wrap

import (
	"bufio"
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

var graphemeSetup sync.Once

// Width returns the display width of s in fixed-width ‘en’s. If context is
// nil, uax11.LatinContext is used.
func Width(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	if context == nil {
		context = uax11.LatinContext
	}
	graphemeSetup.Do(func() { grapheme.SetupGraphemeClasses() })
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// Lines breaks text into lines not wider than width, if possible. Newlines in
// text are kept as mandatory breaks; trailing blanks of lines are dropped.
// Fragments wider than width are put on a line of their own.
//
// If width is not positive, text is split at newlines only. If context is nil,
// uax11.LatinContext is used.
func Lines(text string, width int, context *uax11.Context) []string {
	paras := strings.Split(text, "\n")
	if width <= 0 {
		return paras
	}
	if context == nil {
		context = uax11.LatinContext
	}
	lines := make([]string, 0, len(paras))
	for _, para := range paras {
		lines = append(lines, firstFit(para, width, context)...)
	}
	return lines
}

/*
Wikipedia:

	1. |  SpaceLeft := LineWidth
	2. |  for each Word in Text
	3. |      if (Width(Word) + SpaceWidth) > SpaceLeft
	4. |           insert line break before Word in Text
	5. |           SpaceLeft := LineWidth - Width(Word)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - (Width(Word) + SpaceWidth)
*/
func firstFit(para string, linewidth int, context *uax11.Context) []string {
	if strings.TrimSpace(para) == "" {
		return []string{""}
	}
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(para)))
	var lines []string
	var line strings.Builder
	used := 0 // width of current line, including trailing blanks
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		fraglen := Width(strings.TrimRight(frag, " \t"), context)
		if used > 0 && used+fraglen > linewidth { // fragment overshoots line
			lines = append(lines, strings.TrimRight(line.String(), " \t"))
			T().Debugf("wrap: break after %q", lines[len(lines)-1])
			line.Reset()
			used = 0
		}
		line.WriteString(frag)
		used += Width(frag, context)
	}
	if line.Len() > 0 {
		lines = append(lines, strings.TrimRight(line.String(), " \t"))
	}
	return lines
}
