// Command rngfixture prints randomly generated register and flag values to
// paste into a CPU test case.
package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"

	"github.com/thelolagemann/z80flags/internal/fixture"
	"github.com/thelolagemann/z80flags/pkg/log"
)

const (
	exitOK = iota
	exitUsage
	exitFailure
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	seed := fs.String("seed", "", "seed for the generator: an integer, or any text such as a test name (default: current time)")
	count := fs.Int("n", 1, "number of fixtures to print")
	copyOut := fs.Bool("clipboard", false, "also copy the output to the clipboard")
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	logger := log.NewWithOutput(stderr)
	log.SetDebug(logger, *verbose)

	if fs.NArg() != 0 || *count < 1 {
		fs.Usage()
		return exitUsage
	}

	s := fixture.ParseSeed(*seed)
	logger.Debugf("seed %d", s)
	gen := fixture.NewGenerator(s)

	var out bytes.Buffer
	for i := 0; i < *count; i++ {
		if i > 0 {
			out.WriteByte('\n')
		}
		f := gen.Next()
		logger.Debugf("fixture %d: F=%#04x %s", i, uint8(f.F), f.F)
		if _, err := f.WriteTo(&out); err != nil {
			logger.Errorf("rendering fixture: %s", err)
			return exitFailure
		}
	}

	if _, err := stdout.Write(out.Bytes()); err != nil {
		logger.Errorf("writing output: %s", err)
		return exitFailure
	}

	if *copyOut {
		if err := fixture.CopyToClipboard(out.Bytes()); err != nil {
			logger.Errorf("unable to copy to clipboard: %s", err)
			return exitFailure
		}
		logger.Infof("copied %d fixture(s) to clipboard", *count)
	}
	return exitOK
}
