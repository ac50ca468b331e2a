// Package tribloom provides a seeded, three-hash bloom filter for Go.
//
// A bloom filter is a space-efficient probabilistic data structure that tests
// whether an element is a member of a set. False positive matches are possible,
// but false negatives are not – if the filter says an element is not present,
// it definitely is not. If it says an element might be present, it could be a
// false positive.
//
// # Architecture
//
// Probes come from a fixed family of three 32-bit hash functions:
// a MurmurHash2 variant, MurmurHash3 x86_32 and Jenkins' lookup3. Each is
// seeded, so a handful of random seeds stretches the three algorithms into
// k independent probes. A filter with k probes draws ceil(k/3) seeds at
// construction and walks the (function, seed) pairs with the function as the
// outer loop, stopping at the k-th pair:
//
//	murmur2(s0) murmur2(s1) ... murmur3(s0) murmur3(s1) ... lookup3(s0) ...
//
// Each probe sets or tests bit hash % m of a packed bit array.
//
// All multi-byte reads are explicit little-endian, so hash values, and
// therefore bit positions, are the same on every architecture.
//
// # Choosing Parameters
//
// Use [New] with your expected number of items and desired false positive
// rate:
//
//	// Filter for 1 million items with 1% false positive rate
//	f, err := tribloom.New(1_000_000, 0.01)
//
// The size m and probe count k are computed by [OptimalParams]:
//
//	m = ceil(n * ln(p) / ln(1 / 2^ln2))
//	k = max(1, round(ln2 * m / n))
//
// # Seeds
//
// By default seeds are drawn from a generator seeded by the wall clock, so two
// filters built from the same keys usually set different bits. Pass
// [WithSeedSource] or [WithSeeds] to make bit patterns reproducible, for
// example in tests or to rebuild a filter that matches another one's
// [Filter.Seeds].
//
// # Thread Safety
//
// [Filter] is NOT thread-safe. Concurrent Has calls are fine on their own, but
// any Add must be serialized against every other call, for example by holding
// a [sync.RWMutex] for writing around Add and for reading around Has.
//
// # Limitations
//
// There is no deletion, resizing, or serialization. Clearing a bit could
// introduce false negatives for other keys, so none is offered.
package tribloom
