package model

// Record - Represents one record in a bucket.
// A record with InUse set to false represents an empty bucket, in which case Key and Value
// hold the zero values of their respective types.
type Record[K comparable, V any] struct {
	InUse bool
	Key   K
	Value V
}
