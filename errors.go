package memhashmap

// KeyNotFound - Custom error to inform that no record was found for a key
type KeyNotFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E KeyNotFound) Error() string {
	if E.msg == "" {
		return "key not found"
	}
	return E.msg
}

// Is - Lets errors.Is match on error type regardless of message
func (E KeyNotFound) Is(target error) bool {
	_, ok := target.(KeyNotFound)
	return ok
}

// CapacityError - Custom error to inform that the hash table can't take more records,
// or that a requested capacity is too small to hold the records already stored
type CapacityError struct {
	msg string
}

// Error - Used to notify that the hash table capacity was exhausted or insufficient
func (E CapacityError) Error() string {
	if E.msg == "" {
		return "hash table capacity exhausted"
	}
	return E.msg
}

// Is - Lets errors.Is match on error type regardless of message
func (E CapacityError) Is(target error) bool {
	_, ok := target.(CapacityError)
	return ok
}

// ConfigurationError - Custom error to inform that the hash table was given an invalid configuration
type ConfigurationError struct {
	msg string
}

// Error - Used to notify that configuration is invalid
func (E ConfigurationError) Error() string {
	if E.msg == "" {
		return "invalid hash table configuration"
	}
	return E.msg
}

// Is - Lets errors.Is match on error type regardless of message
func (E ConfigurationError) Is(target error) bool {
	_, ok := target.(ConfigurationError)
	return ok
}
