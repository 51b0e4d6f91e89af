package openaddressing

import (
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/model"
)

// Store - Represents an in-memory backing store for the Open Addressing Collision Resolution
// Technique using linear probing. It holds at most one record per bucket; in case of a collision
// it probes forward one bucket at a time, with wraparound, looking for a matching or empty bucket.
// The store has a fixed number of buckets for its entire life, growing a hash table is done by
// rehashing all records into a fresh bigger store.
type Store[K comparable, V any] struct {
	records       []model.Record[K, V]
	nData         int64
	hashAlgorithm hashfunc.HashAlgorithm[K]
}

// NewStore - Returns a pointer to a new Store instance holding the given number of all empty buckets
//   - nBuckets is the number of buckets to allot
//   - hashAlgorithm is the hash algorithm to derive bucket numbers with
func NewStore[K comparable, V any](nBuckets int64, hashAlgorithm hashfunc.HashAlgorithm[K]) *Store[K, V] {
	return &Store[K, V]{
		records:       make([]model.Record[K, V], nBuckets),
		hashAlgorithm: hashAlgorithm,
	}
}

// LocateResult - The outcome of a successful probe for a key
//   - BucketNo is the bucket the probe resolved to
//   - InUse is true if the resolved bucket holds the sought key, or false if it is empty
//   - Collisions is the number of occupied, non matching buckets examined before resolution
type LocateResult struct {
	BucketNo   int64
	InUse      bool
	Collisions int64
}

// Locate - Returns the bucket already holding the given key, or the first empty bucket encountered
// while probing, whichever comes first. Probing starts at the hash value of the key modulo the
// number of buckets and steps one bucket at a time with wraparound.
// The probe gives up once the number of collisions exceeds the number of stored records. An empty
// bucket is always reachable within that many steps when the store is not full, so running past
// the bound proves the key absent without scanning the entire store.
//
// It returns:
//   - res is a LocateResult identifying the resolved bucket
//   - err is of type ZeroCapacity if the store has no buckets, or ProbeExhausted if the probe bound was passed
func (S *Store[K, V]) Locate(key K) (res LocateResult, err error) {
	nBuckets := int64(len(S.records))
	if nBuckets == 0 {
		err = ZeroCapacity{}
		return
	}

	bucketNo := int64(S.hashAlgorithm.Sum64(key) % uint64(nBuckets))

	var collisions int64
	for {
		if !S.records[bucketNo].InUse {
			res = LocateResult{BucketNo: bucketNo, InUse: false, Collisions: collisions}
			return
		}
		if S.records[bucketNo].Key == key {
			res = LocateResult{BucketNo: bucketNo, InUse: true, Collisions: collisions}
			return
		}

		bucketNo++
		if bucketNo == nBuckets {
			bucketNo = 0
		}

		collisions++
		if collisions > S.nData {
			err = ProbeExhausted{}
			return
		}
	}
}

// HomeBucket - Returns the bucket number the key hashes to before any probing is applied
func (S *Store[K, V]) HomeBucket(key K) (bucketNo int64, err error) {
	if len(S.records) == 0 {
		err = ZeroCapacity{}
		return
	}

	bucketNo = int64(S.hashAlgorithm.Sum64(key) % uint64(len(S.records)))
	return
}

// Record - Returns the record in the given bucket
func (S *Store[K, V]) Record(bucketNo int64) model.Record[K, V] {
	return S.records[bucketNo]
}

// Set - Stores key and value in the given bucket, which is expected to come from a call to Locate.
// It returns true if the bucket transitioned from empty to occupied, i.e. a new record was added
// rather than an existing one overwritten.
func (S *Store[K, V]) Set(bucketNo int64, key K, value V) (added bool) {
	added = !S.records[bucketNo].InUse
	S.records[bucketNo] = model.Record[K, V]{InUse: true, Key: key, Value: value}
	if added {
		S.nData++
	}

	return
}

// Delete - Clears the given bucket and updates the record count accordingly.
// Clearing an already empty bucket is a no-op.
func (S *Store[K, V]) Delete(bucketNo int64) {
	if S.records[bucketNo].InUse {
		S.records[bucketNo] = model.Record[K, V]{}
		S.nData--
	}
}

// NumberOfBuckets - Returns the total number of buckets allotted in the store
func (S *Store[K, V]) NumberOfBuckets() int64 {
	return int64(len(S.records))
}

// NumberOfRecords - Returns the number of occupied buckets in the store
func (S *Store[K, V]) NumberOfRecords() int64 {
	return S.nData
}

// Records - Returns all occupied records in bucket (slot) order
func (S *Store[K, V]) Records() (records []model.Record[K, V]) {
	records = make([]model.Record[K, V], 0, S.nData)
	for _, r := range S.records {
		if r.InUse {
			records = append(records, r)
		}
	}

	return
}

// NextInUse - Returns the bucket number of the first occupied bucket at or after fromBucketNo,
// or -1 if there is none
func (S *Store[K, V]) NextInUse(fromBucketNo int64) int64 {
	for i := fromBucketNo; i < int64(len(S.records)); i++ {
		if S.records[i].InUse {
			return i
		}
	}

	return -1
}
