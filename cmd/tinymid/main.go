// Command tinymid inspects and validates Standard MIDI File headers.
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/woozymasta/tinymid/internal/vars"
)

type options struct {
	Format string `short:"f" long:"format" choice:"text" choice:"yaml" choice:"json" default:"text" description:"Report output format"`

	Args struct {
		Infile string `positional-arg-name:"INFILE" description:"MIDI file to inspect"`
	} `positional-args:"true"`

	Debug   bool `short:"d" long:"debug" description:"Turn debugging information on"`
	Version bool `short:"V" long:"version" description:"Show version information"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "INFILE [-d|--debug]"

	if _, err := parser.Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}

	if opts.Version {
		vars.Print()
		os.Exit(0)
	}

	// INFILE is checked here instead of a required tag so that
	// --version works without a positional argument.
	if opts.Args.Infile == "" {
		fmt.Fprintln(os.Stderr, "the required argument INFILE was not provided")
		os.Exit(1)
	}

	if err := inspect(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
