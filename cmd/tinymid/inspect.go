package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/woozymasta/tinymid/internal/smf"
)

// inspect reads the MIDI file, validates its header chunk and writes the
// report to stdout.
func inspect(opts options) error {
	format := strings.ToLower(opts.Format)
	if format == "" {
		format = "text"
	}

	data, err := os.ReadFile(opts.Args.Infile)
	if err != nil {
		return err
	}

	hdr, err := smf.ParseHeader(data)
	if err != nil {
		return err
	}

	if opts.Debug {
		fmt.Fprintf(os.Stderr, "%s file format\n", hdr.Format)
		if hdr.Division.IsSMPTE() {
			fmt.Fprintln(os.Stderr, "division given in SMPTE format")
		} else {
			fmt.Fprintln(os.Stderr, "division given in ticks per beat")
		}
	}

	report := buildReport(opts.Args.Infile, data, hdr)
	out, err := encodeReport(report, format)
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(out)

	return err
}
