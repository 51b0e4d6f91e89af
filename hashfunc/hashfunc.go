package hashfunc

// HashAlgorithm - Interface that permits an implementation using the HashTable to supply a custom
// hash algorithm suited for its particular distribution of keys.
// The hash table derives bucket numbers by taking Sum64 modulo the current number of buckets, so
// an implementation is independent of table size and survives resizing untouched.
// Hash and equality must be consistent: keys that are equal must produce the same hash value. A
// violation of that contract is not detectable at runtime and gives undefined results.
type HashAlgorithm[K comparable] interface {
	// Sum64 - Given a key it generates a 64 bit hash value
	Sum64(key K) uint64
}
