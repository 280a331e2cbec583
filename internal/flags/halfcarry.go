package flags

import "github.com/thelolagemann/z80flags/pkg/bits"

// Op is the direction of an 8-bit arithmetic operation.
type Op bool

const (
	Add      Op = false
	Subtract Op = true
)

func (o Op) String() string {
	if o == Subtract {
		return "Subtract"
	}
	return "Add"
}

// HalfCarry reports whether the H flag is expected to be set after
// applying operand to original.
//
// For additions H is set on a carry out of bit 3. For subtractions H is
// set when the full result is negative; this is not a nibble borrow and
// differs from real hardware for operands such as 0x10 - 0x01. Inputs
// are not clamped to 8 bits, and the comparison holds across the whole
// int64 range.
func HalfCarry(original, operand int64, op Op) bool {
	if op == Add {
		return bits.Nibble(original)+bits.Nibble(operand) > 0xF
	}
	return original < operand
}
