// Package fixture generates random register and flag values for seeding
// hand-written CPU test cases.
package fixture

import (
	"math/rand"

	"github.com/thelolagemann/z80flags/internal/flags"
	"github.com/thelolagemann/z80flags/internal/types"
)

const (
	MinAddress = 0x1
	MaxAddress = 0x10

	// MinValue keeps the upper byte non-zero. MaxValue is inclusive.
	MinValue = 0x100
	MaxValue = 0xFFFF
)

// Fixture is a single randomly generated test case seed.
type Fixture struct {
	Address uint8
	Value   *types.RegisterPair
	F       flags.Register
}

// Upper returns the upper byte of Value.
func (f *Fixture) Upper() uint8 {
	return f.Value.High
}

// Lower returns the lower byte of Value.
func (f *Fixture) Lower() uint8 {
	return f.Value.Low
}

// Flag reports whether flag was drawn as set.
func (f *Fixture) Flag(flag flags.Flag) bool {
	return f.F.IsSet(flag)
}

// Generator draws fixtures from a pseudo-random source. It is not safe
// for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Next draws a new fixture.
func (g *Generator) Next() *Fixture {
	f := &Fixture{
		Address: uint8(g.between(MinAddress, MaxAddress)),
		Value:   types.NewRegisterPair(uint16(g.between(MinValue, MaxValue))),
	}
	for _, flag := range flags.Printed {
		f.F.SetTo(flag, g.rng.Float64() < 0.5)
	}
	return f
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}
