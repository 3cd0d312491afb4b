package series

import "math"

// ReverseWindow fills dst with the len(dst) samples of src ending at
// index, newest first: dst[j] = src[index-j]. This is the window
// convention the Morlet transform consumes.
//
// Errors:
//   - ErrWindow if dst is empty.
//   - ErrIndexRange if the window does not fit inside src.
func ReverseWindow(dst, src []float64, index int) error {
	if len(dst) == 0 {
		return ErrWindow
	}
	if index >= len(src) || index-len(dst)+1 < 0 {
		return ErrIndexRange
	}
	for j := range dst {
		dst[j] = src[index-j]
	}
	return nil
}

// LogSeries returns a new slice holding the natural log of every
// price. Non-positive prices map to NaN, which downstream robust
// statistics filter out.
func LogSeries(prices []float64) []float64 {
	out := make([]float64, len(prices))
	for i, p := range prices {
		if p <= 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = math.Log(p)
	}
	return out
}
