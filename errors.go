package unistyle

import "fmt"

// StyleError is an error type for the unistyle module.
type StyleError string

func (e StyleError) Error() string {
	return string(e)
}

// ErrUnknownStyle is flagged whenever a style name is not found in the style table.
// Errors returned by ConvertTo and Lookup are of type UnknownStyleError, which
// matches ErrUnknownStyle with errors.Is.
const ErrUnknownStyle = StyleError("unknown style")

// UnknownStyleError reports the style name which could not be resolved.
type UnknownStyleError struct {
	Name string // requested style name
}

func (e UnknownStyleError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownStyle, e.Name)
}

// Is lets errors.Is(err, ErrUnknownStyle) succeed.
func (e UnknownStyleError) Is(target error) bool {
	return target == ErrUnknownStyle
}
