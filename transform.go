package unistyle

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// NewTransformer returns a transformer converting text to the style named
// styleName, suitable for streaming with transform.NewReader or
// transform.NewWriter. Unlike ConvertTo, the transformer replaces invalid
// UTF-8 by U+FFFD.
//
//	t, err := unistyle.NewTransformer("sans-serif-bold")
//	…
//	io.Copy(os.Stdout, transform.NewReader(os.Stdin, t))
//
func NewTransformer(styleName string) (transform.Transformer, error) {
	style, err := Lookup(styleName)
	if err != nil {
		return nil, err
	}
	return runes.Map(func(r rune) rune {
		return ConvertRune(r, style)
	}), nil
}

// Normalizer returns a transformer converting styled letters and digits back
// to plain ASCII. Invalid UTF-8 is replaced by U+FFFD.
func Normalizer() transform.Transformer {
	return runes.Map(NormalizeRune)
}
