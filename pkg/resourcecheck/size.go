package resourcecheck

import "math"

const (
	_         = iota
	KB uint64 = 1 << (10 * iota)
	MB
	GB
)

// AtLeastGB reports whether bytes is at least requiredGB gigabytes (2^30).
// The comparison is exact; rounding is for display only.
func AtLeastGB(bytes uint64, requiredGB int) bool {
	if requiredGB <= 0 {
		return true
	}
	return bytes >= uint64(requiredGB)*GB
}

// BytesToGB converts bytes to gigabytes (2^30), rounded to two decimals
// for display.
func BytesToGB(bytes uint64) float64 {
	return Round2(float64(bytes) / float64(GB))
}

// Round2 rounds to two decimal places, halves away from zero.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}
