package utils

import (
	"strconv"
)

// ParseID converts a path segment to a positive record ID
func ParseID(value string) (int64, bool) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
