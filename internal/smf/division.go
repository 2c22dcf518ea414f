package smf

import "fmt"

// Division is the header timing field. A positive value gives the number of
// ticks per beat, a negative value selects SMPTE frame based timing.
type Division int16

// IsSMPTE reports whether the division uses SMPTE frame based timing.
func (d Division) IsSMPTE() bool {
	return d < 0
}

// TicksPerBeat returns the number of ticks per beat, or 0 for SMPTE timing.
func (d Division) TicksPerBeat() uint16 {
	if d < 0 {
		return 0
	}

	return uint16(d)
}

// SMPTE returns the frames per second and ticks per frame. The high byte
// stores the frame rate as a negative two's complement number, the low byte
// the ticks per frame. Returns 0, 0 for ticks per beat divisions.
func (d Division) SMPTE() (fps, ticksPerFrame uint8) {
	if d >= 0 {
		return 0, 0
	}

	return uint8(-int8(uint16(d) >> 8)), uint8(uint16(d) & 0xFF)
}

// String returns the human readable description of the timing scheme.
func (d Division) String() string {
	if d.IsSMPTE() {
		fps, tpf := d.SMPTE()
		return fmt.Sprintf("%d frames per second, %d ticks per frame", fps, tpf)
	}

	return fmt.Sprintf("%d ticks per beat", d.TicksPerBeat())
}
