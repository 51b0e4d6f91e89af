//go:build unit

package memhashmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// identityHashAlgorithm - Deterministic test algorithm treating the int key itself as the hash
// value, which makes bucket placement fully predictable regardless of platform or process run
type identityHashAlgorithm struct{}

func (I identityHashAlgorithm) Sum64(key int) uint64 {
	return uint64(key)
}

func newTestTable(t *testing.T, initialBuckets int64, autoResize bool) *HashTable[int, string] {
	ht, err := NewHashTable[int, string](Conf[int]{
		InitialBuckets:  initialBuckets,
		AutoResize:      autoResize,
		MaxUtilization:  0.5,
		BucketIncrement: 2,
		HashAlgorithm:   identityHashAlgorithm{},
	})
	assert.NoError(t, err, "create new hash table")

	return ht
}

func TestNewHashTable(t *testing.T) {
	t.Run("creates hash table", func(t *testing.T) {
		// Execute
		ht, err := NewHashTable[string, int](Conf[string]{
			InitialBuckets:  100,
			AutoResize:      true,
			MaxUtilization:  0.7,
			BucketIncrement: 100,
		})

		// Check
		assert.NoError(t, err, "create new hash table")
		assert.Equal(t, int64(100), ht.NumberOfBuckets(), "correct number of buckets")
		assert.Equal(t, int64(0), ht.Len(), "new table is empty")
		assert.Equal(t, 0.0, ht.Utilization(), "new table has zero utilization")
	})

	t.Run("works with the default hash algorithm", func(t *testing.T) {
		// Prepare
		ht, err := NewHashTable[string, int](Conf[string]{
			InitialBuckets:  16,
			AutoResize:      true,
			MaxUtilization:  0.7,
			BucketIncrement: 16,
		})
		assert.NoError(t, err, "create new hash table")

		// Execute
		err = ht.Set("answer", 42)

		// Check
		assert.NoError(t, err, "set a record")
		value, err := ht.Get("answer")
		assert.NoError(t, err, "get the record back")
		assert.Equal(t, 42, value, "correct value")
	})

	t.Run("throws correct error when configuration is invalid", func(t *testing.T) {
		// Prepare
		tests := []struct {
			name string
			conf Conf[string]
		}{
			{name: "zero initial buckets", conf: Conf[string]{InitialBuckets: 0, MaxUtilization: 0.7, BucketIncrement: 100}},
			{name: "negative initial buckets", conf: Conf[string]{InitialBuckets: -1, MaxUtilization: 0.7, BucketIncrement: 100}},
			{name: "zero bucket increment", conf: Conf[string]{InitialBuckets: 100, MaxUtilization: 0.7, BucketIncrement: 0}},
			{name: "negative bucket increment", conf: Conf[string]{InitialBuckets: 100, MaxUtilization: 0.7, BucketIncrement: -100}},
			{name: "zero max utilization", conf: Conf[string]{InitialBuckets: 100, MaxUtilization: 0, BucketIncrement: 100}},
			{name: "max utilization of one", conf: Conf[string]{InitialBuckets: 100, MaxUtilization: 1, BucketIncrement: 100}},
			{name: "max utilization above one", conf: Conf[string]{InitialBuckets: 100, MaxUtilization: 1.5, BucketIncrement: 100}},
			{name: "negative max utilization", conf: Conf[string]{InitialBuckets: 100, MaxUtilization: -0.7, BucketIncrement: 100}},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				// Execute
				ht, err := NewHashTable[string, int](test.conf)

				// Check
				assert.ErrorIs(t, err, ConfigurationError{}, "get correct error")
				assert.Nil(t, ht, "no hash table returned")
			})
		}
	})
}

func TestHashTable_UtilizationStatus(t *testing.T) {
	t.Run("reports utilization", func(t *testing.T) {
		// Prepare
		ht := newTestTable(t, 8, false)

		err := ht.Set(1, "one")
		assert.NoError(t, err, "set a record")
		err = ht.Set(2, "two")
		assert.NoError(t, err, "set another record")

		// Execute
		status := ht.UtilizationStatus()

		// Check
		assert.Equal(t, "2 / 8 (25.0%)", status, "correct utilization status")
		assert.Equal(t, "HashTable of size 2 / 8 (25.0%)", ht.String(), "correct string representation")
		assert.Equal(t, 0.25, ht.Utilization(), "correct utilization fraction")
	})
}
