// Package smf provides decoding and validation of Standard MIDI File header chunks.
package smf

import "fmt"

const (
	// headerIdentifier is the chunk identifier every SMF header starts with.
	headerIdentifier = "MThd"

	// headerDataLength is the payload length the header chunk must declare.
	headerDataLength = 6
)

// Format is the file format class stored in the header chunk.
type Format uint16

const (
	// SingleTrack is a format 0 file with a single track chunk.
	SingleTrack Format = iota

	// MultipleTrack is a format 1 file with simultaneous tracks.
	MultipleTrack

	// MultipleSong is a format 2 file with independent single-track songs.
	MultipleSong
)

// String returns the human readable name of the format class.
func (f Format) String() string {
	switch f {
	case SingleTrack:
		return "single track"
	case MultipleTrack:
		return "multiple track"
	case MultipleSong:
		return "multiple song"
	default:
		return fmt.Sprintf("unknown (%d)", uint16(f))
	}
}

// Header is a decoded and validated MThd chunk.
type Header struct {
	Format      Format   // file format class (code 0, 1 or 2)
	TrackChunks uint16   // number of track chunks, always >= 1
	Division    Division // timing scheme for track chunk events
}
