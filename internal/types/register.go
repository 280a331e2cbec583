package types

import "github.com/thelolagemann/z80flags/pkg/bits"

// Register represents an 8-bit Z80 register.
type Register = uint8

// RegisterPair represents a pair of 8-bit registers which together hold a
// 16-bit value, such as BC, DE or HL. The high register holds the upper
// byte and the low register the lower byte.
type RegisterPair struct {
	High Register
	Low  Register
}

// NewRegisterPair returns a RegisterPair holding value.
func NewRegisterPair(value uint16) *RegisterPair {
	r := &RegisterPair{}
	r.SetUint16(value)
	return r
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return bits.Join(r.High, r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	r.High, r.Low = bits.Split(value)
}
