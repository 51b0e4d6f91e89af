package memhashmap

import (
	"go.uber.org/zap"
)

// CollisionRecord - One immutable entry in the collision log. It captures the state of the table
// at the time a key was resolved to a bucket, together with the number of collisions the probe
// had to pass. NumberOfRecords is the count before any mutation the triggering operation applied,
// so utilization at resolution time is NumberOfRecords / NumberOfBuckets.
type CollisionRecord struct {
	NumberOfBuckets int64
	NumberOfRecords int64
	Collisions      int64
}

// CollisionLog - Returns a copy of the collision log collected over the life of the table.
// The log is append-only and unbounded, one entry per successful bucket resolution (get, set,
// delete, pop and the re-insertions performed during a resize). It exists purely for diagnostics,
// e.g. plotting collision rate against utilization, and a caller wanting bounded memory has to cap
// or drain it externally.
func (H *HashTable[K, V]) CollisionLog() (collisionLog []CollisionRecord) {
	collisionLog = make([]CollisionRecord, len(H.collisionLog))
	copy(collisionLog, H.collisionLog)

	return
}

// TotalCollisions - Returns the running sum of all collisions ever recorded
func (H *HashTable[K, V]) TotalCollisions() int64 {
	return H.nCollisions
}

// logCollisions - Appends one entry to the collision log, updates the running total and emits the
// entry to the attached logger
func (H *HashTable[K, V]) logCollisions(collisions int64) {
	record := CollisionRecord{
		NumberOfBuckets: H.store.NumberOfBuckets(),
		NumberOfRecords: H.store.NumberOfRecords(),
		Collisions:      collisions,
	}

	H.collisionLog = append(H.collisionLog, record)
	H.nCollisions += collisions

	H.logger.Debug("collision report",
		zap.Int64("nBuckets", record.NumberOfBuckets),
		zap.Int64("nRecords", record.NumberOfRecords),
		zap.Int64("collisions", record.Collisions),
	)
}
