package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/woozymasta/tinymid/internal/smf"
)

var sampleHeader = []byte{
	0x4D, 0x54, 0x68, 0x64,
	0x00, 0x00, 0x00, 0x06,
	0x00, 0x01,
	0x00, 0x02,
	0x00, 0x78,
}

func TestFingerprintDeterministic(t *testing.T) {
	t.Parallel()

	a := fingerprint(sampleHeader)
	b := fingerprint(sampleHeader)
	if a != b {
		t.Fatalf("fingerprint not deterministic: %v vs %v", a, b)
	}

	other := append([]byte(nil), sampleHeader...)
	other[13] = 0x60
	if a == fingerprint(other) {
		t.Fatalf("fingerprint collision for different inputs")
	}
}

func TestBuildReport(t *testing.T) {
	t.Parallel()

	hdr, err := smf.ParseHeader(sampleHeader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := buildReport("sample.mid", sampleHeader, hdr)
	if r.File != "sample.mid" {
		t.Fatalf("file=%q", r.File)
	}
	if r.Size != len(sampleHeader) {
		t.Fatalf("size=%d want %d", r.Size, len(sampleHeader))
	}
	if r.Format != "multiple track" || r.FormatCode != 1 {
		t.Fatalf("format=%q code=%d", r.Format, r.FormatCode)
	}
	if r.TrackChunks != 2 {
		t.Fatalf("track chunks=%d want 2", r.TrackChunks)
	}
	if r.Division.Timing != "ticks_per_beat" || r.Division.TicksPerBeat != 120 {
		t.Fatalf("division=%+v", r.Division)
	}
}

func TestBuildReportSMPTE(t *testing.T) {
	t.Parallel()

	data := append([]byte(nil), sampleHeader...)
	data[12] = 0xE2
	data[13] = 0x50

	hdr, err := smf.ParseHeader(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := buildReport("sample.mid", data, hdr)
	if r.Division.Timing != "smpte" {
		t.Fatalf("timing=%q want smpte", r.Division.Timing)
	}
	if r.Division.FramesPerSecond != 30 || r.Division.TicksPerFrame != 0x50 {
		t.Fatalf("division=%+v", r.Division)
	}
}

func TestEncodeReport(t *testing.T) {
	t.Parallel()

	hdr, err := smf.ParseHeader(sampleHeader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := buildReport("sample.mid", sampleHeader, hdr)

	text, err := encodeReport(r, "text")
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	if !strings.Contains(string(text), "120 ticks per beat") {
		t.Fatalf("text report missing division line:\n%s", text)
	}

	raw, err := encodeReport(r, "json")
	if err != nil {
		t.Fatalf("json: %v", err)
	}

	var back headerReport
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("json roundtrip: %v", err)
	}
	if back.TrackChunks != r.TrackChunks {
		t.Fatalf("roundtrip track chunks=%d want %d", back.TrackChunks, r.TrackChunks)
	}

	if _, err := encodeReport(r, "yaml"); err != nil {
		t.Fatalf("yaml: %v", err)
	}

	if _, err := encodeReport(r, "xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
