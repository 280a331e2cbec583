// Command calcflagh prints the expected H flag for an 8-bit addition or
// subtraction.
//
//	calcflagh [-v] <bool isSubtraction> <int originalValue> <int toAdd>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/thelolagemann/z80flags/internal/flags"
	"github.com/thelolagemann/z80flags/pkg/log"
)

const (
	exitOK = iota
	exitUsage
	exitInvalidInput
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s <bool isSubtraction> <int originalValue> <int toAdd>\n", fs.Name())
		fs.PrintDefaults()
	}
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	logger := log.NewWithOutput(stderr)
	log.SetDebug(logger, *verbose)

	if fs.NArg() != 3 {
		fs.Usage()
		return exitUsage
	}

	isSub, err := flags.ParseBool(fs.Arg(0))
	if err != nil {
		logger.Errorf("isSubtraction: %s", err)
		return exitInvalidInput
	}
	original, err := strconv.ParseInt(fs.Arg(1), 10, 64)
	if err != nil {
		logger.Errorf("originalValue: %s", err)
		return exitInvalidInput
	}
	operand, err := strconv.ParseInt(fs.Arg(2), 10, 64)
	if err != nil {
		logger.Errorf("toAdd: %s", err)
		return exitInvalidInput
	}

	op := flags.Op(isSub)
	h := flags.HalfCarry(original, operand, op)
	logger.Debugf("%s %#x, %#x: low nibbles %#x, %#x", op, original, operand, original&0xF, operand&0xF)

	fmt.Fprintf(stdout, "Expected H flag: %s\n", flags.FormatBool(h))
	return exitOK
}
