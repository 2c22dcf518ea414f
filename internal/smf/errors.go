package smf

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEOF means the buffer ran out in the middle of a header field.
var ErrUnexpectedEOF = errors.New("file ended unexpectedly")

// ErrZeroTracks means the header declares no track chunks at all.
var ErrZeroTracks = errors.New("MIDI file must have at least one track chunk")

// ErrZeroDivision means the header declares a meaningless zero division.
var ErrZeroDivision = errors.New("division cannot be zero")

// IdentifierError means the chunk does not start with the MThd identifier.
type IdentifierError struct {
	Expected string
	Actual   string
}

func (e *IdentifierError) Error() string {
	return fmt.Sprintf("wrong identifier for header chunk: expected %q but got %q", e.Expected, e.Actual)
}

// LengthError means the header declared an unexpected payload length.
type LengthError struct {
	Expected uint32
	Actual   uint32
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("wrong header chunk length: expected %#06x but got %#06x", e.Expected, e.Actual)
}

// FormatError means the format code is outside 0, 1 and 2.
type FormatError struct {
	Actual uint16
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid file format: %d", e.Actual)
}
