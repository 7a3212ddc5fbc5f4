package domain

import "strconv"

// Bounds of a resource id taken from the request path.
const (
	MinResourceID = 1
	MaxResourceID = 999999
)

// IsValidResourceID reports whether id lies in [MinResourceID, MaxResourceID].
func IsValidResourceID(id uint64) bool {
	return id >= MinResourceID && id <= MaxResourceID
}

// ParseResourceID converts a decimal path parameter into a resource id.
// Anything that is not an unsigned integer inside the valid bounds yields
// ErrResourceOutOfRange, so callers never pass such values to the store.
func ParseResourceID(raw string) (int, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || !IsValidResourceID(id) {
		return 0, ErrResourceOutOfRange
	}
	return int(id), nil
}
