package hashfunc

import (
	"github.com/cespare/xxhash/v2"
)

// StringHashAlgorithm - A HashAlgorithm over string keys implemented using xxhash.
// As opposed to the internally used default algorithm it is unseeded, hence hash values are stable
// across process runs, which gives deterministic bucket placement for a given table size.
type StringHashAlgorithm struct{}

// NewStringHashAlgorithm - Returns a pointer to a new StringHashAlgorithm instance
func NewStringHashAlgorithm() *StringHashAlgorithm {
	return &StringHashAlgorithm{}
}

// Sum64 - Given key it generates a 64 bit hash value over the string key
func (S *StringHashAlgorithm) Sum64(key string) uint64 {
	return xxhash.Sum64String(key)
}
