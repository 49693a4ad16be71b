package utils

import (
	"strconv"
	"strings"
)

// CompareApartmentNo orders apartment numbers naturally: numeric values by
// value ("2" < "10"), numeric before non-numeric, the rest lexically.
func CompareApartmentNo(a, b string) int {
	na, errA := strconv.Atoi(strings.TrimSpace(a))
	nb, errB := strconv.Atoi(strings.TrimSpace(b))
	switch {
	case errA == nil && errB == nil:
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(a, b)
}
