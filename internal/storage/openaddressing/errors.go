package openaddressing

// ProbeExhausted - Custom error to inform that a probe passed its bound without finding a matching
// or empty bucket, which proves the sought key absent and, for an insert, the store full
type ProbeExhausted struct {
	msg string
}

// Error - Used to notify that the probe bound was passed
func (E ProbeExhausted) Error() string {
	if E.msg == "" {
		return "probing exhausted without finding matching or empty bucket"
	}
	return E.msg
}

// Is - Lets errors.Is match on error type regardless of message
func (E ProbeExhausted) Is(target error) bool {
	_, ok := target.(ProbeExhausted)
	return ok
}

// ZeroCapacity - Custom error to inform that the store holds no buckets at all, in which case no
// bucket number can be derived from a hash value
type ZeroCapacity struct {
	msg string
}

// Error - Used to notify that the store has no buckets
func (E ZeroCapacity) Error() string {
	if E.msg == "" {
		return "store has no buckets"
	}
	return E.msg
}

// Is - Lets errors.Is match on error type regardless of message
func (E ZeroCapacity) Is(target error) bool {
	_, ok := target.(ZeroCapacity)
	return ok
}
