package memhashmap

import (
	"github.com/gostonefire/memhashmap/internal/storage/openaddressing"
)

// KeyIterator - Is used to iterate over the keys currently stored, one by one, in bucket (slot)
// order rather than insertion order. Every call to HashTable.Keys returns a fresh iterator starting
// from the first bucket, hence iteration is restartable.
// Mutating the table while iterating gives undefined results. The iterator does however keep
// addressing the backing store that was current when it was created, so a resize of the table will
// not be reflected mid iteration.
type KeyIterator[K comparable, V any] struct {
	store        *openaddressing.Store[K, V]
	nextBucketNo int64
}

// Keys - Returns an iterator over all keys currently stored
func (H *HashTable[K, V]) Keys() *KeyIterator[K, V] {
	return &KeyIterator[K, V]{store: H.store}
}

// HasNext - Returns true if there are more keys to be fetched from a call to Next
func (I *KeyIterator[K, V]) HasNext() bool {
	return I.store.NextInUse(I.nextBucketNo) != -1
}

// Next - Returns the next key.
// It returns:
//   - key is the next stored key
//   - err is of type KeyNotFound if there are no more keys when calling this function
func (I *KeyIterator[K, V]) Next() (key K, err error) {
	bucketNo := I.store.NextInUse(I.nextBucketNo)
	if bucketNo == -1 {
		err = KeyNotFound{}
		return
	}

	key = I.store.Record(bucketNo).Key
	I.nextBucketNo = bucketNo + 1

	return
}
