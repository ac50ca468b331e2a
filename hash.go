package tribloom

import (
	"encoding/binary"
	"math/bits"
)

// HashFunc identifies one of the fixed 32-bit seeded hash functions a
// filter derives its probes from.
type HashFunc uint8

const (
	// Murmur2 is a MurmurHash2 variant (32-bit, multiplier 0x5bd1e995).
	Murmur2 HashFunc = iota
	// Murmur3 is MurmurHash3 x86_32.
	Murmur3
	// Lookup3 is Bob Jenkins' lookup3 hashlittle.
	Lookup3
)

// Family is the hash family in probe order. A filter with k probes uses
// pairs (Family[i], seed[j]) with i as the outer loop.
var Family = [...]HashFunc{Murmur2, Murmur3, Lookup3}

// Sum32 hashes key with the given seed. Different seeds give independent
// outputs for the same key.
func (h HashFunc) Sum32(key []byte, seed uint32) uint32 {
	switch h {
	case Murmur2:
		return murmur2(key, seed)
	case Murmur3:
		return murmur3(key, seed)
	case Lookup3:
		return lookup3(key, seed)
	}
	panic("tribloom: unknown hash function")
}

func (h HashFunc) String() string {
	switch h {
	case Murmur2:
		return "murmur2"
	case Murmur3:
		return "murmur3"
	case Lookup3:
		return "lookup3"
	}
	return "unknown"
}

// murmur2 differs from the published MurmurHash2: each word is multiplied by
// m*m after the shift and h is not multiplied per word.
func murmur2(key []byte, seed uint32) uint32 {
	const (
		m  = 0x5bd1e995
		mm = 0x286a90b9 // m*m mod 2^32
		r  = 24
	)

	h := seed ^ uint32(len(key))

	for len(key) >= 4 {
		k := binary.LittleEndian.Uint32(key)
		k *= m
		k ^= k >> r
		k *= mm
		h ^= k
		key = key[4:]
	}

	switch len(key) {
	case 3:
		h ^= uint32(key[2]) << 16
		fallthrough
	case 2:
		h ^= uint32(key[1]) << 8
		fallthrough
	case 1:
		h ^= uint32(key[0])
		h *= m
	}

	h ^= h >> 13
	h *= m
	h ^= h >> 15
	return h
}

func murmur3(key []byte, seed uint32) uint32 {
	const (
		c1 = 0xcc9e2d51
		c2 = 0x1b873593
	)

	h := seed
	n := len(key)

	for len(key) >= 4 {
		k := binary.LittleEndian.Uint32(key)
		k *= c1
		k = bits.RotateLeft32(k, 15)
		k *= c2

		h ^= k
		h = bits.RotateLeft32(h, 13)
		h = h*5 + 0xe6546b64
		key = key[4:]
	}

	var k uint32
	switch len(key) {
	case 3:
		k ^= uint32(key[2]) << 16
		fallthrough
	case 2:
		k ^= uint32(key[1]) << 8
		fallthrough
	case 1:
		k ^= uint32(key[0])
		k *= c1
		k = bits.RotateLeft32(k, 15)
		k *= c2
		h ^= k
	}

	h ^= uint32(n)
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

func lookup3(key []byte, seed uint32) uint32 {
	a := 0xdeadbeef + uint32(len(key)) + seed
	b, c := a, a

	if len(key) == 0 {
		return c
	}

	for len(key) > 12 {
		a += binary.LittleEndian.Uint32(key[0:])
		b += binary.LittleEndian.Uint32(key[4:])
		c += binary.LittleEndian.Uint32(key[8:])
		a, b, c = lookup3Mix(a, b, c)
		key = key[12:]
	}

	// 1 to 12 bytes remain; missing high bytes count as zero.
	var tail [12]byte
	copy(tail[:], key)
	a += binary.LittleEndian.Uint32(tail[0:])
	b += binary.LittleEndian.Uint32(tail[4:])
	c += binary.LittleEndian.Uint32(tail[8:])

	return lookup3Final(a, b, c)
}

func lookup3Mix(a, b, c uint32) (uint32, uint32, uint32) {
	a -= c
	a ^= bits.RotateLeft32(c, 4)
	c += b
	b -= a
	b ^= bits.RotateLeft32(a, 6)
	a += c
	c -= b
	c ^= bits.RotateLeft32(b, 8)
	b += a
	a -= c
	a ^= bits.RotateLeft32(c, 16)
	c += b
	b -= a
	b ^= bits.RotateLeft32(a, 19)
	a += c
	c -= b
	c ^= bits.RotateLeft32(b, 4)
	b += a
	return a, b, c
}

func lookup3Final(a, b, c uint32) uint32 {
	c ^= b
	c -= bits.RotateLeft32(b, 14)
	a ^= c
	a -= bits.RotateLeft32(c, 11)
	b ^= a
	b -= bits.RotateLeft32(a, 25)
	c ^= b
	c -= bits.RotateLeft32(b, 16)
	a ^= c
	a -= bits.RotateLeft32(c, 4)
	b ^= a
	b -= bits.RotateLeft32(a, 14)
	c ^= b
	c -= bits.RotateLeft32(b, 24)
	return c
}
