package fixture

import (
	"strconv"
	"time"

	"github.com/cespare/xxhash"
)

// ParseSeed turns a user supplied seed into a generator seed. Integers are
// used as is; any other text is hashed, so a test case name can be reused
// to regenerate the same fixture. An empty seed uses the current time.
func ParseSeed(s string) int64 {
	if s == "" {
		return time.Now().UnixNano()
	}
	if v, err := strconv.ParseInt(s, 0, 64); err == nil {
		return v
	}
	return SeedFromString(s)
}

// SeedFromString hashes s into a seed.
func SeedFromString(s string) int64 {
	return int64(xxhash.Sum64([]byte(s)))
}
