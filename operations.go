package memhashmap

import (
	"errors"
	"fmt"

	"github.com/gostonefire/memhashmap/internal/storage/openaddressing"
	"go.uber.org/zap"
)

// Get - Gets the value stored under the given key.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found, if not found an error of type KeyNotFound is also returned
//   - err is either of type KeyNotFound or CapacityError (the latter only if the table has no buckets at all)
func (H *HashTable[K, V]) Get(key K) (value V, err error) {
	H.logger.Debug("get", zap.Any("key", key))

	res, err := H.locate(key)
	if err != nil {
		err = H.notFound(key, err)
		return
	}
	if !res.InUse {
		err = KeyNotFound{msg: fmt.Sprintf("key not found: %v", key)}
		return
	}

	value = H.store.Record(res.BucketNo).Value

	return
}

// Set - Updates an existing record with a new value or adds it if no existing is found with same key.
// After a new record has been added (not after an overwrite), and if the table was created with
// AutoResize, the backing store is grown by BucketIncrement buckets whenever utilization has passed
// MaxUtilization. A failure to resize does not roll back the already committed record.
//   - key is the identifier of a record
//   - value is the value to store along with its key
//
// It returns:
//   - err is of type CapacityError if no matching or empty bucket could be found, the table never silently drops data
func (H *HashTable[K, V]) Set(key K, value V) (err error) {
	added, err := H.set(key, value)
	if err != nil {
		return
	}

	H.logger.Debug("set", zap.Any("key", key), zap.String("utilization", H.UtilizationStatus()))

	// Resize if necessary
	if added && H.autoResize && H.Utilization() > H.maxUtilization {
		err = H.resize(H.NumberOfBuckets() + H.bucketIncrement)
	}

	return
}

// Delete - Removes the record stored under the given key and decrements the record count.
//   - key is the identifier of a record
//
// It returns:
//   - err is of type KeyNotFound if no record was stored under the key
func (H *HashTable[K, V]) Delete(key K) (err error) {
	res, err := H.locate(key)
	if err != nil {
		err = H.notFound(key, err)
		return
	}
	if !res.InUse {
		err = KeyNotFound{msg: fmt.Sprintf("key not found: %v", key)}
		return
	}

	H.store.Delete(res.BucketNo)
	H.logger.Debug("delete", zap.Any("key", key), zap.String("utilization", H.UtilizationStatus()))

	return
}

// Pop - Returns the value stored under the given key and removes the record from the table.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found, if not found an error of type KeyNotFound is also returned
//   - err is of type KeyNotFound if no record was stored under the key
func (H *HashTable[K, V]) Pop(key K) (value V, err error) {
	res, err := H.locate(key)
	if err != nil {
		err = H.notFound(key, err)
		return
	}
	if !res.InUse {
		err = KeyNotFound{msg: fmt.Sprintf("key not found: %v", key)}
		return
	}

	value = H.store.Record(res.BucketNo).Value
	H.store.Delete(res.BucketNo)
	H.logger.Debug("pop", zap.Any("key", key), zap.String("utilization", H.UtilizationStatus()))

	return
}

// Has - Returns true if a record is stored under the given key
func (H *HashTable[K, V]) Has(key K) bool {
	_, err := H.Get(key)
	return err == nil
}

// Resize - Replaces the backing store with a fresh one of the given size and rehashes every stored
// record into it. Since bucket numbers are derived from hash value modulo the number of buckets,
// every record gets a new home bucket. On failure the table is left completely untouched.
// The table only ever grows by itself, but an explicit resize to any capacity of at least one
// bucket that still holds all stored records is honored.
//   - newBuckets is the requested total number of buckets
//
// It returns:
//   - err is of type CapacityError if newBuckets is smaller than the number of stored records or smaller than 1
func (H *HashTable[K, V]) Resize(newBuckets int64) (err error) {
	return H.resize(newBuckets)
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - NumberOfBuckets is the total number of buckets allotted
//   - Utilization is the utilization fraction (filled buckets / total buckets)
//   - BucketDistribution is the number of stored records that hash to each home bucket, before probing
type HashMapStat struct {
	Records            int64
	NumberOfBuckets    int64
	Utilization        float64
	BucketDistribution []int64
}

// Stat - Walks through the entire set of buckets and produces a HashMapStat struct with information.
// For a very big table the HashMapStat.BucketDistribution slice can be memory heavy (there will be
// one entry per bucket).
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of records hashing to each home bucket, false will set HashMapStat.BucketDistribution to nil
func (H *HashTable[K, V]) Stat(includeDistribution bool) (hashMapStat *HashMapStat, err error) {
	hms := HashMapStat{
		Records:         H.Len(),
		NumberOfBuckets: H.NumberOfBuckets(),
		Utilization:     H.Utilization(),
	}

	if includeDistribution {
		hms.BucketDistribution = make([]int64, H.NumberOfBuckets())

		var bucketNo int64
		for _, record := range H.store.Records() {
			bucketNo, err = H.store.HomeBucket(record.Key)
			if err != nil {
				return
			}
			hms.BucketDistribution[bucketNo]++
		}
	}

	hashMapStat = &hms

	return
}

// locate - Resolves a key to a bucket using the store probing, logging the collision outcome of
// every successful resolution. Failed resolutions are not logged.
func (H *HashTable[K, V]) locate(key K) (res openaddressing.LocateResult, err error) {
	res, err = H.store.Locate(key)
	if err != nil {
		return
	}

	H.logCollisions(res.Collisions)

	return
}

// set - The set logic without the automatic resize trigger. It is used both from Set and while
// rehashing records during a resize, the latter to avoid cascading growth mid rehash.
func (H *HashTable[K, V]) set(key K, value V) (added bool, err error) {
	res, err := H.locate(key)
	if err != nil {
		err = CapacityError{msg: fmt.Sprintf("cannot set key %v, hash table is full: %s", key, err)}
		return
	}

	added = H.store.Set(res.BucketNo, key, value)

	return
}

// resize - Replaces the backing store with a fresh all empty one of the given size and re-inserts
// every snapshotted record, in slot order, relying on normal probing to find each record's new home.
// The capacity precondition is checked before any mutation, hence a failing resize leaves the table
// unmodified.
func (H *HashTable[K, V]) resize(newBuckets int64) (err error) {
	if newBuckets < 1 {
		err = CapacityError{msg: "cannot resize - hash table needs at least one bucket"}
		return
	}
	if newBuckets < H.Len() {
		err = CapacityError{msg: fmt.Sprintf("cannot resize - requested size %d smaller than stored data %d", newBuckets, H.Len())}
		return
	}

	H.logger.Debug("resize", zap.Int64("fromBuckets", H.NumberOfBuckets()), zap.Int64("toBuckets", newBuckets))

	// Snapshot all records in slot order, then recommit them to a fresh store
	records := H.store.Records()
	H.store = openaddressing.NewStore[K, V](newBuckets, H.hashAlgorithm)

	for _, record := range records {
		_, err = H.set(record.Key, record.Value)
		if err != nil {
			// This is just a failsafe, a store sized to hold all records can not run out of empty buckets
			err = fmt.Errorf("error while rehashing records into resized store: %s", err)
			return
		}
	}

	H.logger.Debug("resize complete", zap.String("utilization", H.UtilizationStatus()))

	return
}

// notFound - Converts a locate error to what the read/write/delete operations report: a failed
// probe proves the key absent, while a store without buckets is a capacity problem
func (H *HashTable[K, V]) notFound(key K, locateErr error) (err error) {
	if errors.Is(locateErr, openaddressing.ZeroCapacity{}) {
		err = CapacityError{msg: "hash table has no buckets"}
		return
	}

	err = KeyNotFound{msg: fmt.Sprintf("key not found: %v", key)}

	return
}
