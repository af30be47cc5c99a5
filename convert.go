package unistyle

import (
	"strings"
	"unicode/utf8"
)

// ConvertTo converts every ASCII letter and digit of text to the style named
// styleName. All other code points, including already styled ones, are left
// untouched. If the style has no digit block, digits stay plain.
//
// The result has the same number of code points as text. Bytes which are not
// valid UTF-8 are copied unchanged. If styleName is not a registered style,
// ConvertTo returns an UnknownStyleError.
func ConvertTo(text string, styleName string) (string, error) {
	style, err := Lookup(styleName)
	if err != nil {
		return text, err
	}
	var b strings.Builder
	b.Grow(len(text) * 2)
	mapText(&b, text, func(r rune) rune {
		return ConvertRune(r, style)
	})
	return b.String(), nil
}

// ConvertRune converts a single code point to style. Code points other than
// A–Z, a–z and 0–9 are returned unchanged.
func ConvertRune(r rune, style *Style) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return style.Letters.Start + (r - 'A')
	case r >= 'a' && r <= 'z':
		return style.Letters.Start + (r - 'a') + letterSplit
	case r >= '0' && r <= '9':
		if style.Digits == nil {
			return r
		}
		return style.Digits.Start + (r - '0')
	}
	return r
}

// Normalize converts every styled letter or digit of text back to plain ASCII.
// Code points not belonging to a styled block, and bytes which are not valid
// UTF-8, are left untouched.
//
// Normalize is idempotent.
func Normalize(text string) string {
	i := firstStyled(text)
	if i < 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	b.WriteString(text[:i])
	mapText(&b, text[i:], NormalizeRune)
	return b.String()
}

// NormalizeRune converts a single styled code point to plain ASCII. Digit
// blocks are checked before letter blocks, each in registry order.
func NormalizeRune(r rune) rune {
	for i := range digitMaps {
		if digitMaps[i].Contains(r) {
			return '0' + (r - digitMaps[i].Start)
		}
	}
	for i := range letterMaps {
		if letterMaps[i].Contains(r) {
			offset := r - letterMaps[i].Start
			if offset < letterSplit {
				return 'A' + offset
			}
			return 'a' + (offset - letterSplit)
		}
	}
	return r
}

// mapText writes text to b, mapping every code point with f. Invalid UTF-8 is
// copied byte by byte.
func mapText(b *strings.Builder, text string, f func(rune) rune) {
	for i := 0; i < len(text); {
		r, w := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && w == 1 {
			b.WriteByte(text[i])
		} else {
			b.WriteRune(f(r))
		}
		i += w
	}
}

// HasStyling is true if Normalize would change text, i.e. if text contains
// at least one styled letter or digit.
func HasStyling(text string) bool {
	return firstStyled(text) >= 0
}

// firstStyled returns the byte index of the first styled code point in s, or -1.
func firstStyled(s string) int {
	for i, r := range s {
		if r < utf8.RuneSelf {
			continue
		}
		if NormalizeRune(r) != r {
			return i
		}
	}
	return -1
}
