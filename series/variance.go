package series

import "math"

// Variance returns the population variance over the length values
// ending at index (inclusive), taken from the log domain: log-prices
// by default, or bar-to-bar log-returns when useChange is set.
//
// Preconditions: length >= 1; index < len(prices); the window must
// fit, which means index >= length-1 for log-prices and index >=
// length for log-returns (each return consumes its predecessor).
// Non-positive prices yield NaN rather than an error.
//
// Complexity: O(length), two passes, no allocation.
//
// Errors:
//   - ErrWindow if length < 1.
//   - ErrIndexRange if the window does not fit inside prices.
func Variance(useChange bool, prices []float64, index, length int) (float64, error) {
	if length < 1 {
		return 0, ErrWindow
	}
	if index < 0 || index >= len(prices) {
		return 0, ErrIndexRange
	}
	first := index - length + 1
	if useChange {
		// Each log-return reads prices[i-1].
		if first < 1 {
			return 0, ErrIndexRange
		}
	} else if first < 0 {
		return 0, ErrIndexRange
	}

	value := func(i int) float64 {
		if useChange {
			return math.Log(prices[i] / prices[i-1])
		}
		return math.Log(prices[i])
	}

	var sum float64
	for i := first; i <= index; i++ {
		sum += value(i)
	}
	mean := sum / float64(length)

	var ss float64
	for i := first; i <= index; i++ {
		d := value(i) - mean
		ss += d * d
	}
	return ss / float64(length), nil
}
