package flags

import (
	"fmt"
	"strings"

	"github.com/thelolagemann/z80flags/pkg/bits"
)

// Flag is the bit position of a flag in the F register.
type Flag uint8

const (
	FlagCarry     Flag = 0
	FlagAddSub    Flag = 1
	FlagOverflow  Flag = 2
	FlagHalfCarry Flag = 4
	FlagZero      Flag = 6
	FlagSign      Flag = 7
)

// Printed is the order in which fixtures list the flags.
var Printed = []Flag{FlagCarry, FlagAddSub, FlagOverflow, FlagHalfCarry, FlagZero, FlagSign}

var flagNames = map[Flag]string{
	FlagCarry:     "Carry",
	FlagAddSub:    "Add/Sub",
	FlagOverflow:  "Overflow",
	FlagHalfCarry: "Half-Carry",
	FlagZero:      "Zero",
	FlagSign:      "Sign",
}

func (f Flag) String() string {
	if name, ok := flagNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Unused(%d)", uint8(f))
}

// Register is the Z80 F register. Bits 3 and 5 are undocumented and are
// never touched by the helpers here.
type Register uint8

// Set sets the given flag.
func (r *Register) Set(flag Flag) {
	*r = Register(bits.Set(uint8(*r), uint8(flag)))
}

// Clear clears the given flag.
func (r *Register) Clear(flag Flag) {
	*r = Register(bits.Reset(uint8(*r), uint8(flag)))
}

// SetTo sets or clears the flag depending on v.
func (r *Register) SetTo(flag Flag, v bool) {
	if v {
		r.Set(flag)
	} else {
		r.Clear(flag)
	}
}

// IsSet returns true if the given flag is set.
func (r Register) IsSet(flag Flag) bool {
	return bits.Test(uint8(r), uint8(flag))
}

// String dumps every bit of the register, unused bits included.
func (r Register) String() string {
	var b strings.Builder
	b.WriteString("FlagRegister {")
	for i := Flag(0); i < 8; i++ {
		name := i.String()
		if _, ok := flagNames[i]; !ok {
			name = "Unused"
		}
		fmt.Fprintf(&b, "\n\t%s: %d", name, bits.Val(uint8(r), uint8(i)))
	}
	b.WriteString("}")
	return b.String()
}

// FormatBool renders a boolean the way the tools print it.
func FormatBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
