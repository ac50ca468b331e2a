package tribloom

import (
	"math/rand/v2"
	"time"
)

// SeedSource supplies the random values used as hash seeds. *rand.Rand from
// math/rand/v2 satisfies it.
type SeedSource interface {
	Uint32() uint32
}

// NewClockSource returns a SeedSource seeded from the wall clock. Filters
// built in the same process will most likely, but not certainly, get
// different seeds, and seeds are not reproducible across runs.
func NewClockSource() SeedSource {
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, now>>32|now<<32))
}

// GenerateSeeds draws SeedCount(k) seeds from src, in draw order.
func GenerateSeeds(src SeedSource, k uint32) []uint32 {
	seeds := make([]uint32, SeedCount(k))
	for i := range seeds {
		seeds[i] = src.Uint32()
	}
	return seeds
}
