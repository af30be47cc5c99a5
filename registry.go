package unistyle

import "sort"

// Block lengths of styled code point ranges.
const (
	LetterBlockLength = 52 // A–Z followed by a–z
	DigitBlockLength  = 10 // 0–9

	letterSplit = 26 // offset of 'a' within a letter block
)

// Family tags the visual family of a styled block. It replaces guessing
// the family from a block's display name.
type Family int8

// Families of styled blocks.
const (
	Serif Family = iota
	Script
	Fraktur
	Sans
	Mono
)

func (f Family) String() string {
	switch f {
	case Serif:
		return "serif"
	case Script:
		return "script"
	case Fraktur:
		return "fraktur"
	case Sans:
		return "sans-serif"
	case Mono:
		return "monospace"
	}
	return "Family(?)"
}

// LetterMap is a block of 52 consecutive code points holding styled Latin
// letters, 26 uppercase followed by 26 lowercase. Start is the code point for 'A'.
type LetterMap struct {
	Start  rune
	Bold   bool
	Italic bool
	Name   string // display name, informational only
	Family Family
}

// Contains is true if code point r lies within the letter block.
func (m *LetterMap) Contains(r rune) bool {
	return r >= m.Start && r < m.Start+LetterBlockLength
}

// DigitMap is a block of 10 consecutive code points holding styled digits.
// Start is the code point for '0'.
type DigitMap struct {
	Start  rune
	Bold   bool
	Name   string
	Family Family
}

// Contains is true if code point r lies within the digit block.
func (m *DigitMap) Contains(r rune) bool {
	return r >= m.Start && r < m.Start+DigitBlockLength
}

// Style is a named style, pairing a letter block with an optional digit block.
// Letters is never nil. If Digits is nil, digits are left unconverted.
type Style struct {
	Name    string
	Letters *LetterMap
	Digits  *DigitMap
}

// Registry order matters: Normalize and Classify check blocks in this order.
var letterMaps = [...]LetterMap{
	{Start: 0x1D400, Bold: true, Name: "Mathematical Bold", Family: Serif},
	{Start: 0x1D434, Italic: true, Name: "Mathematical Italic", Family: Serif},
	{Start: 0x1D468, Bold: true, Italic: true, Name: "Mathematical Bold Italic", Family: Serif},
	{Start: 0x1D4D0, Bold: true, Name: "Script Bold", Family: Script},
	{Start: 0x1D56C, Bold: true, Name: "Fraktur Bold", Family: Fraktur},
	{Start: 0x1D5A0, Name: "Sans-Serif", Family: Sans},
	{Start: 0x1D5D4, Bold: true, Name: "Sans-Serif Bold", Family: Sans},
	{Start: 0x1D608, Italic: true, Name: "Sans-Serif Italic", Family: Sans},
	{Start: 0x1D63C, Bold: true, Italic: true, Name: "Sans-Serif Bold Italic", Family: Sans},
	{Start: 0x1D670, Name: "Monospace", Family: Mono},
	{Start: 0x1D6A8, Bold: true, Name: "Monospace Bold", Family: Mono},
}

var digitMaps = [...]DigitMap{
	{Start: 0x1D7CE, Bold: true, Name: "Mathematical Bold", Family: Serif},
	{Start: 0x1D7E2, Name: "Sans-Serif", Family: Sans},
	{Start: 0x1D7EC, Bold: true, Name: "Sans-Serif Bold", Family: Sans},
	{Start: 0x1D7F6, Name: "Monospace", Family: Mono},
}

var styles = map[string]*Style{
	"bold":                   {Name: "bold", Letters: &letterMaps[0], Digits: &digitMaps[0]},
	"italic":                 {Name: "italic", Letters: &letterMaps[1], Digits: &digitMaps[0]},
	"bold-italic":            {Name: "bold-italic", Letters: &letterMaps[2], Digits: &digitMaps[0]},
	"script":                 {Name: "script", Letters: &letterMaps[3], Digits: &digitMaps[0]},
	"fraktur":                {Name: "fraktur", Letters: &letterMaps[4], Digits: &digitMaps[0]},
	"sans-serif":             {Name: "sans-serif", Letters: &letterMaps[5]},
	"sans-serif-bold":        {Name: "sans-serif-bold", Letters: &letterMaps[6], Digits: &digitMaps[2]},
	"sans-serif-italic":      {Name: "sans-serif-italic", Letters: &letterMaps[7], Digits: &digitMaps[2]},
	"sans-serif-bold-italic": {Name: "sans-serif-bold-italic", Letters: &letterMaps[8], Digits: &digitMaps[2]},
	"monospace":              {Name: "monospace", Letters: &letterMaps[9], Digits: &digitMaps[3]},
	"monospace-bold":         {Name: "monospace-bold", Letters: &letterMaps[10], Digits: &digitMaps[3]},
}

// Lookup returns the style registered under name. If there is no such style,
// Lookup returns an UnknownStyleError.
//
// The returned style is shared and must not be modified.
func Lookup(name string) (*Style, error) {
	s, ok := styles[name]
	if !ok {
		T().Debugf("unistyle: no style named %q", name)
		return nil, UnknownStyleError{Name: name}
	}
	return s, nil
}

// StyleNames returns the names of all registered styles, sorted alphabetically.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LetterMaps returns a copy of the registered letter blocks in registry order.
func LetterMaps() []LetterMap {
	maps := make([]LetterMap, len(letterMaps))
	copy(maps, letterMaps[:])
	return maps
}

// DigitMaps returns a copy of the registered digit blocks in registry order.
func DigitMaps() []DigitMap {
	maps := make([]DigitMap, len(digitMaps))
	copy(maps, digitMaps[:])
	return maps
}
