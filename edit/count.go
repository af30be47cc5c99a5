package edit

import "unicode/utf16"

// Limits for the length of a post, in characters as counted by CharCount.
const (
	CharWarnLimit  = 2500
	CharAlertLimit = 2800
)

// CountLevel grades a character count against the post limits.
type CountLevel int8

// Levels of a character count.
const (
	CountOK CountLevel = iota
	CountWarn
	CountAlert
)

func (l CountLevel) String() string {
	switch l {
	case CountOK:
		return "ok"
	case CountWarn:
		return "warn"
	case CountAlert:
		return "alert"
	}
	return "CountLevel(?)"
}

// CharCount returns the length of text in UTF-16 code units, which is how web
// platforms count characters. Styled letters lie outside the Basic
// Multilingual Plane and count twice.
func CharCount(text string) int {
	n := 0
	for _, r := range text {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// LevelOf grades a character count: above CharAlertLimit is an alert, above
// CharWarnLimit a warning.
func LevelOf(count int) CountLevel {
	switch {
	case count > CharAlertLimit:
		return CountAlert
	case count > CharWarnLimit:
		return CountWarn
	}
	return CountOK
}
