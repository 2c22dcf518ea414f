package smf

import "strings"

// cursor walks an owned byte buffer with a monotonically advancing position.
// Every read checks the remaining length first, so no operation can step
// past the end of the buffer or return a partial field.
type cursor struct {
	buf []byte
	pos int
}

// readByte returns the byte at the current position and advances past it.
func (c *cursor) readByte() (byte, error) {
	if c.pos >= len(c.buf) {
		return 0, ErrUnexpectedEOF
	}

	b := c.buf[c.pos]
	c.pos++

	return b, nil
}

// readString reads n bytes, interpreting each one as a single character.
func (c *cursor) readString(n int) (string, error) {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		b, err := c.readByte()
		if err != nil {
			return "", err
		}
		sb.WriteByte(b)
	}

	return sb.String(), nil
}

// readWord reads a big-endian 16-bit integer.
func (c *cursor) readWord() (uint16, error) {
	hi, err := c.readByte()
	if err != nil {
		return 0, err
	}

	lo, err := c.readByte()
	if err != nil {
		return 0, err
	}

	return uint16(hi)<<8 | uint16(lo), nil
}

// readDword reads a big-endian 32-bit integer.
func (c *cursor) readDword() (uint32, error) {
	var v uint32
	for i := 0; i < 4; i++ {
		b, err := c.readByte()
		if err != nil {
			return 0, err
		}
		v = v<<8 | uint32(b)
	}

	return v, nil
}

// ParseHeader decodes and validates the MThd chunk at the start of data.
// The five header fields are checked in file order and the first violated
// rule aborts the parse, so either a fully validated header is returned or
// no header at all. Bytes past the 14-byte header are ignored.
func ParseHeader(data []byte) (*Header, error) {
	c := &cursor{buf: data}

	identifier, err := c.readString(4)
	if err != nil {
		return nil, err
	}
	if identifier != headerIdentifier {
		return nil, &IdentifierError{Expected: headerIdentifier, Actual: identifier}
	}

	length, err := c.readDword()
	if err != nil {
		return nil, err
	}
	if length != headerDataLength {
		return nil, &LengthError{Expected: headerDataLength, Actual: length}
	}

	code, err := c.readWord()
	if err != nil {
		return nil, err
	}

	var format Format
	switch code {
	case 0:
		format = SingleTrack
	case 1:
		format = MultipleTrack
	case 2:
		format = MultipleSong
	default:
		return nil, &FormatError{Actual: code}
	}

	tracks, err := c.readWord()
	if err != nil {
		return nil, err
	}
	if tracks == 0 {
		return nil, ErrZeroTracks
	}

	raw, err := c.readWord()
	if err != nil {
		return nil, err
	}

	division := Division(int16(raw))
	if division == 0 {
		return nil, ErrZeroDivision
	}

	return &Header{
		Format:      format,
		TrackChunks: tracks,
		Division:    division,
	}, nil
}
