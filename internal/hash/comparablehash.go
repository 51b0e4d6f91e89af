package hash

import (
	"hash/maphash"
)

// ComparableHashAlgorithm - The internally used default hash algorithm, implemented using
// hash/maphash over any comparable key type. The seed is drawn when the instance is created,
// hence hash values, and by that bucket placement, are not stable across process runs.
type ComparableHashAlgorithm[K comparable] struct {
	seed maphash.Seed
}

// NewComparableHashAlgorithm - Returns a pointer to a new ComparableHashAlgorithm instance with
// a randomly drawn seed
func NewComparableHashAlgorithm[K comparable]() *ComparableHashAlgorithm[K] {
	return &ComparableHashAlgorithm[K]{seed: maphash.MakeSeed()}
}

// Sum64 - Given key it generates a 64 bit hash value
func (C *ComparableHashAlgorithm[K]) Sum64(key K) uint64 {
	return maphash.Comparable(C.seed, key)
}
