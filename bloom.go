package tribloom

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unsafe"

	"github.com/bits-and-blooms/bitset"
	"github.com/zeebo/xxh3"
	"go.uber.org/zap"
)

// ErrInvalidParameter is returned when a filter cannot be built from the
// given parameters.
var ErrInvalidParameter = errors.New("tribloom: invalid parameter")

// Filter is a non-thread-safe bloom filter whose k probes are the first k
// (hash function, seed) pairs drawn from [Family] and a per-filter seed list.
//
// The bit array and seeds are fixed at construction. Bits only ever go from
// unset to set.
type Filter struct {
	n     uint64         // Expected number of items
	p     float64        // Target false positive rate
	m     uint64         // Number of bits
	k     uint32         // Number of probes per key
	seeds []uint32       // SeedCount(k) seeds, in generation order
	data  *bitset.BitSet // m bits
	count uint64         // Number of Add calls (approximate item count)
}

type options struct {
	source   SeedSource
	seeds    []uint32
	hasSeeds bool
	logger   *zap.Logger
}

// Option configures a Filter at construction.
type Option func(*options)

// WithSeedSource draws seeds from src instead of a clock-seeded generator.
func WithSeedSource(src SeedSource) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithSeeds uses the given seeds, in order. At least SeedCount(k) seeds must
// be supplied; extras are ignored. Passing a filter's Seeds to a filter with
// the same expected items and rate reproduces its probe positions.
func WithSeeds(seeds ...uint32) Option {
	return func(o *options) {
		o.seeds = seeds
		o.hasSeeds = true
	}
}

// WithLogger sets the logger used to report filter sizing.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New creates a bloom filter sized for expectedItems keys at a false
// positive rate of fpRate. It fails with an error wrapping
// [ErrInvalidParameter] if the parameters are out of range.
func New(expectedItems uint64, fpRate float64, opts ...Option) (*Filter, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	m, k, err := OptimalParams(expectedItems, fpRate)
	if err != nil {
		return nil, err
	}

	var seeds []uint32
	switch {
	case o.hasSeeds:
		need := SeedCount(k)
		if len(o.seeds) < need {
			return nil, fmt.Errorf("%w: %d probes need %d seeds, got %d", ErrInvalidParameter, k, need, len(o.seeds))
		}
		seeds = append([]uint32(nil), o.seeds[:need]...)
	case o.source != nil:
		seeds = GenerateSeeds(o.source, k)
	default:
		seeds = GenerateSeeds(NewClockSource(), k)
	}

	o.logger.Debug("bloom filter sized",
		zap.Uint64("expected_items", expectedItems),
		zap.Float64("fp_rate", fpRate),
		zap.Uint64("bits", m),
		zap.Uint32("probes", k),
		zap.Uint32s("seeds", seeds),
	)

	return &Filter{
		n:     expectedItems,
		p:     fpRate,
		m:     m,
		k:     k,
		seeds: seeds,
		data:  bitset.New(uint(m)),
	}, nil
}

// Add adds key to the filter. Adding the same key again sets no new bits.
func (f *Filter) Add(key []byte) {
	var i uint32
probes:
	for _, h := range Family {
		for _, seed := range f.seeds {
			f.data.Set(f.index(h, key, seed))
			if i++; i == f.k {
				break probes
			}
		}
	}

	f.count++
}

// AddString adds a string to the filter without allocating.
func (f *Filter) AddString(s string) {
	f.Add(stringBytes(s))
}

// Has reports whether key might be in the filter. It returns false only if
// key was never added.
func (f *Filter) Has(key []byte) bool {
	var i uint32
	for _, h := range Family {
		for _, seed := range f.seeds {
			if !f.data.Test(f.index(h, key, seed)) {
				return false
			}
			if i++; i == f.k {
				return true
			}
		}
	}
	return true
}

// HasString checks a string without allocating.
func (f *Filter) HasString(s string) bool {
	return f.Has(stringBytes(s))
}

// index maps one (hash function, seed) probe of key to a bit position.
func (f *Filter) index(h HashFunc, key []byte, seed uint32) uint {
	return uint(uint64(h.Sum32(key, seed)) % f.m)
}

// stringBytes views s as a byte slice. The hash functions never write to it.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// N returns the expected number of items the filter was sized for.
func (f *Filter) N() uint64 {
	return f.n
}

// P returns the target false positive rate the filter was sized for.
func (f *Filter) P() float64 {
	return f.p
}

// M returns the size of the bit array.
func (f *Filter) M() uint64 {
	return f.m
}

// K returns the number of probes per key.
func (f *Filter) K() uint32 {
	return f.k
}

// Seeds returns a copy of the filter's seeds.
func (f *Filter) Seeds() []uint32 {
	return append([]uint32(nil), f.seeds...)
}

// Count returns the number of Add calls, which approximates the number of
// distinct items if keys are not re-added.
func (f *Filter) Count() uint64 {
	return f.count
}

// EstimatedFillRatio returns the proportion of bits that are set.
func (f *Filter) EstimatedFillRatio() float64 {
	return float64(f.data.Count()) / float64(f.m)
}

// EstimatedFalsePositiveRate estimates the current false positive rate
// based on the number of items added.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	return EstimateFalsePositiveRate(f.m, f.k, f.count)
}

// Digest returns an xxh3 hash of the bit array. Two filters with the same m
// and the same bits set have the same digest.
func (f *Filter) Digest() uint64 {
	h := xxh3.New()
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], f.m)
	_, _ = h.Write(buf[:])

	for i, ok := f.data.NextSet(0); ok; i, ok = f.data.NextSet(i + 1) {
		binary.LittleEndian.PutUint64(buf[:], uint64(i))
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}
