package fixture

import (
	"fmt"
	"io"

	"github.com/thelolagemann/z80flags/internal/flags"
)

// WriteTo writes the fixture as labelled lines: the address, the 16-bit
// value with its upper and lower bytes, then each flag.
func (f *Fixture) WriteTo(w io.Writer) (int64, error) {
	var total int64
	write := func(format string, args ...interface{}) error {
		n, err := fmt.Fprintf(w, format, args...)
		total += int64(n)
		return err
	}

	if err := write("Address: %#x\n", f.Address); err != nil {
		return total, err
	}
	if err := write("16-bit: %#x\n", f.Value.Uint16()); err != nil {
		return total, err
	}
	if err := write("8-bit upper: %#x\n", f.Upper()); err != nil {
		return total, err
	}
	if err := write("8-bit lower: %#x\n", f.Lower()); err != nil {
		return total, err
	}
	for _, flag := range flags.Printed {
		if err := write("%s: %s\n", flag, flags.FormatBool(f.Flag(flag))); err != nil {
			return total, err
		}
	}
	return total, nil
}
