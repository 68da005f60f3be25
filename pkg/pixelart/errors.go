package pixelart

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrInputNotFound indicates the input file does not exist.
var ErrInputNotFound = errors.New("input not found")

// ErrDecode indicates the input file exists but could not be parsed.
var ErrDecode = errors.New("decode failed")

// ErrWrite indicates the output destination could not be written.
var ErrWrite = errors.New("write failed")

// ErrConfig indicates an invalid mode or parameter.
var ErrConfig = errors.New("invalid configuration")

// ConversionError represents a failure in one conversion step.
type ConversionError struct {
	Op   string // "read image", "write sheet", "read sheet", "write image"
	Path string
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// inputError classifies a read failure as ErrInputNotFound when the
// underlying cause is a missing file, ErrDecode otherwise.
func inputError(op, path string, err error) *ConversionError {
	kind := ErrDecode
	if errors.Is(err, fs.ErrNotExist) {
		kind = ErrInputNotFound
	}
	return &ConversionError{Op: op, Path: path, Err: fmt.Errorf("%w: %v", kind, err)}
}

// writeError wraps a failure to produce output as ErrWrite.
func writeError(op, path string, err error) *ConversionError {
	return &ConversionError{Op: op, Path: path, Err: fmt.Errorf("%w: %v", ErrWrite, err)}
}
