package runtime

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// Effects is the boundary to the outside world. The file primitive is the
// only primitive with a side effect and reads through it.
type Effects interface {
	ReadFile(path string) (string, error)
}

// OSEffects reads from the operating system's file system.
type OSEffects struct{}

// ReadFile reads a whole file as UTF-8 text.
func (OSEffects) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIO, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: file %q is not valid UTF-8", ErrIO, path)
	}
	return string(data), nil
}

// NoEffects refuses every effect.
type NoEffects struct{}

// ReadFile always fails.
func (NoEffects) ReadFile(path string) (string, error) {
	return "", fmt.Errorf("%w: reading %q not permitted", ErrIO, path)
}
