package memhashmap

import (
	"fmt"

	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/hash"
	"github.com/gostonefire/memhashmap/internal/storage/openaddressing"
	"go.uber.org/zap"
)

// Conf - Configuration for a new HashTable
//   - InitialBuckets is the number of buckets allotted in the new table, it must be at least 1
//   - AutoResize set to true makes the table grow its backing store whenever utilization passes MaxUtilization
//   - MaxUtilization is the utilization fraction, exclusively between 0 and 1, above which the table resizes itself to keep utilization (and thus collisions) low
//   - BucketIncrement is the number of buckets the backing store grows with on every automatic resize, it must be at least 1
//   - HashAlgorithm is an optional custom hash algorithm following the hashfunc.HashAlgorithm interface
//   - Logger is an optional zap logger receiving debug traces and collision reports, nil gives a no-op logger
type Conf[K comparable] struct {
	InitialBuckets  int64
	AutoResize      bool
	MaxUtilization  float64
	BucketIncrement int64
	HashAlgorithm   hashfunc.HashAlgorithm[K]
	Logger          *zap.Logger
}

// HashTable - An in-memory hash table using open addressing with linear probing as collision
// resolution technique. It resizes as it grows (if configured to) and logs its collision
// performance so collision rate can be studied against utilization.
// The table is not safe for concurrent use, a caller in a multi goroutine setting has to provide
// external mutual exclusion.
type HashTable[K comparable, V any] struct {
	store           *openaddressing.Store[K, V]
	hashAlgorithm   hashfunc.HashAlgorithm[K]
	autoResize      bool
	maxUtilization  float64
	bucketIncrement int64
	collisionLog    []CollisionRecord
	nCollisions     int64
	logger          *zap.Logger
}

// NewHashTable - Returns a new hash table prepared to cover the configured initial number of buckets.
// If Conf.HashAlgorithm is nil an internal general purpose algorithm is used. That algorithm is
// seeded per table instance, hence bucket placement is not stable across table instances or process
// runs. Supply an algorithm (e.g. hashfunc.StringHashAlgorithm) when deterministic placement is
// needed, for instance in tests asserting on exact bucket numbers.
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - err is of type ConfigurationError if any configuration value is invalid
func NewHashTable[K comparable, V any](conf Conf[K]) (hashTable *HashTable[K, V], err error) {
	// Check if InitialBuckets is valid
	if conf.InitialBuckets <= 0 {
		err = ConfigurationError{msg: "initial buckets must be a positive value higher than 0 (zero)"}
		return
	}

	// Check if BucketIncrement is valid
	if conf.BucketIncrement <= 0 {
		err = ConfigurationError{msg: "bucket increment must be a positive value higher than 0 (zero)"}
		return
	}

	// Check if MaxUtilization is valid
	if conf.MaxUtilization <= 0 || conf.MaxUtilization >= 1 {
		err = ConfigurationError{msg: "max utilization must be exclusively between 0 (zero) and 1 (one)"}
		return
	}

	// If no HashAlgorithm was given then use the default internal
	hashAlgorithm := conf.HashAlgorithm
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewComparableHashAlgorithm[K]()
	}

	logger := conf.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	hashTable = &HashTable[K, V]{
		store:           openaddressing.NewStore[K, V](conf.InitialBuckets, hashAlgorithm),
		hashAlgorithm:   hashAlgorithm,
		autoResize:      conf.AutoResize,
		maxUtilization:  conf.MaxUtilization,
		bucketIncrement: conf.BucketIncrement,
		logger:          logger,
	}

	return
}

// Len - Returns the number of records stored in the table
func (H *HashTable[K, V]) Len() int64 {
	return H.store.NumberOfRecords()
}

// NumberOfBuckets - Returns the total number of buckets allotted
func (H *HashTable[K, V]) NumberOfBuckets() int64 {
	return H.store.NumberOfBuckets()
}

// Utilization - Returns the utilization fraction of the hash table (filled buckets / total buckets)
func (H *HashTable[K, V]) Utilization() float64 {
	return float64(H.Len()) / float64(H.NumberOfBuckets())
}

// UtilizationStatus - Returns a string status showing the current utilization of the allotted buckets
func (H *HashTable[K, V]) UtilizationStatus() string {
	return fmt.Sprintf("%d / %d (%.1f%%)", H.Len(), H.NumberOfBuckets(), H.Utilization()*100)
}

// String - Implements fmt.Stringer
func (H *HashTable[K, V]) String() string {
	return fmt.Sprintf("HashTable of size %s", H.UtilizationStatus())
}
