package main

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/invopop/yaml"

	"github.com/woozymasta/tinymid/internal/smf"
)

// headerReport is the serialized inspection report for a MIDI file header.
type headerReport struct {
	File        string         `json:"file"`                  // inspected file path
	Format      string         `json:"format"`                // format class name
	Division    divisionReport `json:"division"`              // timing scheme details
	Size        int            `json:"size"`                  // file size in bytes
	Fingerprint uint32         `json:"fingerprint"`           // 32-bit content hash
	FormatCode  uint16         `json:"format_code"`           // raw format code (0, 1 or 2)
	TrackChunks uint16         `json:"track_chunks"`          // declared track chunk count
}

// divisionReport describes the header division field.
type divisionReport struct {
	Timing          string `json:"timing"`                      // "ticks_per_beat" or "smpte"
	Raw             int16  `json:"raw"`                         // division field as signed 16-bit
	TicksPerBeat    uint16 `json:"ticks_per_beat,omitempty"`    // set for positive divisions
	FramesPerSecond uint8  `json:"frames_per_second,omitempty"` // set for SMPTE divisions
	TicksPerFrame   uint8  `json:"ticks_per_frame,omitempty"`   // set for SMPTE divisions
}

// buildReport builds the inspection report from the decoded header.
func buildReport(path string, data []byte, hdr *smf.Header) headerReport {
	div := divisionReport{Raw: int16(hdr.Division)}
	if hdr.Division.IsSMPTE() {
		div.Timing = "smpte"
		div.FramesPerSecond, div.TicksPerFrame = hdr.Division.SMPTE()
	} else {
		div.Timing = "ticks_per_beat"
		div.TicksPerBeat = hdr.Division.TicksPerBeat()
	}

	return headerReport{
		File:        path,
		Size:        len(data),
		Fingerprint: fingerprint(data),
		Format:      hdr.Format.String(),
		FormatCode:  uint16(hdr.Format),
		TrackChunks: hdr.TrackChunks,
		Division:    div,
	}
}

// encodeReport encodes the report into the requested output format.
func encodeReport(r headerReport, format string) ([]byte, error) {
	switch format {
	case "yaml":
		return yaml.Marshal(r)
	case "json":
		return json.MarshalIndent(r, "", "  ")
	case "text":
		return []byte(formatText(r)), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// formatText renders the report as plain text lines.
func formatText(r headerReport) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "file: %s\n", r.File)
	fmt.Fprintf(&sb, "size: %d bytes\n", r.Size)
	fmt.Fprintf(&sb, "fingerprint: %#08x\n", r.Fingerprint)
	fmt.Fprintf(&sb, "format: %s (%d)\n", r.Format, r.FormatCode)
	fmt.Fprintf(&sb, "track chunks: %d\n", r.TrackChunks)

	if r.Division.Timing == "smpte" {
		fmt.Fprintf(&sb, "division: %d frames per second, %d ticks per frame\n",
			r.Division.FramesPerSecond, r.Division.TicksPerFrame)
	} else {
		fmt.Fprintf(&sb, "division: %d ticks per beat\n", r.Division.TicksPerBeat)
	}

	return sb.String()
}

// fingerprint builds a deterministic 32-bit hash of the file contents.
func fingerprint(data []byte) uint32 {
	var buf [8]byte
	h := xxhash.Sum64(data)

	binary.LittleEndian.PutUint64(buf[:], h)
	lo := binary.LittleEndian.Uint32(buf[:4])
	hi := binary.LittleEndian.Uint32(buf[4:])

	return lo ^ hi
}
