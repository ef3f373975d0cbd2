package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrUnsupported is returned for fields that cannot be entered through a
	// single prompt, such as lists of dicts.
	ErrUnsupported = errors.New("prompt: unsupported field")
)
