package tribloom

import (
	"fmt"
	"math"
)

const (
	// ln2 is the natural logarithm of 2.
	ln2 = 0.6931471805599453
	// ln2Squared is ln(2)^2.
	ln2Squared = 0.4804530139182014

	// MaxBits is the largest bit array a filter will allocate (2^40 bits, 128 GiB).
	MaxBits = uint64(1) << 40
)

// OptimalParams computes the bit array size m and probe count k for a filter
// expected to hold expectedItems keys at a false positive rate of fpRate.
//
//	m = ceil(n * ln(p) / ln(1 / 2^ln2))
//	k = max(1, round(ln2 * m / n))
//
// ln(1 / 2^ln2) is -(ln2)^2, so this is the textbook optimum written another
// way. The expression is kept as is so that m matches existing filters bit for
// bit; see [CanonicalParams] for the conventional spelling.
//
// OptimalParams is deterministic. It returns an error wrapping
// [ErrInvalidParameter] if expectedItems is zero, fpRate is outside (0, 1), or
// the resulting m exceeds [MaxBits].
func OptimalParams(expectedItems uint64, fpRate float64) (m uint64, k uint32, err error) {
	if err := validate(expectedItems, fpRate); err != nil {
		return 0, 0, err
	}

	n := float64(expectedItems)
	bits := math.Ceil(n * math.Log(fpRate) / math.Log(1/math.Pow(2, math.Log(2))))
	return finishParams(expectedItems, bits)
}

// CanonicalParams is OptimalParams using m = ceil(-(n * ln p) / (ln2)^2).
// The two agree to within floating point rounding, which can move m by one
// bit near integer boundaries.
func CanonicalParams(expectedItems uint64, fpRate float64) (m uint64, k uint32, err error) {
	if err := validate(expectedItems, fpRate); err != nil {
		return 0, 0, err
	}

	n := float64(expectedItems)
	bits := math.Ceil(-n * math.Log(fpRate) / ln2Squared)
	return finishParams(expectedItems, bits)
}

func validate(expectedItems uint64, fpRate float64) error {
	if expectedItems == 0 {
		return fmt.Errorf("%w: expected items must be positive", ErrInvalidParameter)
	}
	// Written this way so NaN is rejected too.
	if !(fpRate > 0 && fpRate < 1) {
		return fmt.Errorf("%w: false positive rate %v is outside (0, 1)", ErrInvalidParameter, fpRate)
	}
	return nil
}

func finishParams(expectedItems uint64, bits float64) (uint64, uint32, error) {
	if bits > float64(MaxBits) {
		return 0, 0, fmt.Errorf("%w: filter needs %.0f bits, limit is %d", ErrInvalidParameter, bits, MaxBits)
	}

	m := max(uint64(bits), 1)
	k := uint32(math.Round(ln2 * float64(m) / float64(expectedItems)))
	k = max(k, 1)

	return m, k, nil
}

// SeedCount returns how many seeds are needed to derive k probes from the
// hash family: ceil(k / len(Family)).
func SeedCount(k uint32) int {
	h := uint32(len(Family))
	return int((k + h - 1) / h)
}

// EstimateFalsePositiveRate estimates the false positive rate for given parameters.
// Formula: (1 - e^(-kn/m))^k
func EstimateFalsePositiveRate(m uint64, k uint32, itemsAdded uint64) float64 {
	mf := float64(m)
	n := float64(itemsAdded)
	kf := float64(k)

	if m == 0 || n == 0 {
		return 0
	}

	return math.Pow(1-math.Exp(-kf*n/mf), kf)
}
