package parser

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedVersion    = errors.New("unsupported chart format version")
	ErrExpectedSectionHeader = errors.New("expected section header")
	ErrMissingKey            = errors.New("missing key")
	ErrInvalidNumber         = errors.New("invalid number")
)

// FormatError describes why a chart was rejected. Kind is one of the Err
// values above and is matched by errors.Is.
type FormatError struct {
	Kind error
	Line int // 1 based, counting only non blank lines
	Text string
	Err  error
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("line %d: %v", e.Line, e.Kind)
	if e.Text != "" {
		msg += fmt.Sprintf(" (%q)", e.Text)
	}
	if nil != e.Err {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Is(target error) bool {
	return e.Kind == target
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
