package bits

import "golang.org/x/exp/constraints"

// Val returns the value of the bit at the given index.
func Val[T constraints.Unsigned](b T, i uint8) T {
	return (b >> i) & 1
}

// Reset resets the bit at the given index.
func Reset[T constraints.Unsigned](b T, i uint8) T {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set[T constraints.Unsigned](b T, i uint8) T {
	return b | (1 << i)
}

// Test tests the bit at the given index.
func Test[T constraints.Unsigned](b T, i uint8) bool {
	return (b>>i)&1 != 0
}

// Nibble returns the low 4 bits of v.
func Nibble[T constraints.Integer](v T) T {
	return v & 0xF
}

// Split returns the upper and lower byte of a 16-bit value.
func Split(value uint16) (upper, lower uint8) {
	return uint8(value >> 8), uint8(value & 0xFF)
}

// Join combines an upper and lower byte into a 16-bit value.
func Join(upper, lower uint8) uint16 {
	return uint16(upper)<<8 | uint16(lower)
}
