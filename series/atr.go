package series

import "math"

// ATR returns the average true range over the length bars ending at
// index (inclusive). With useLog the three range legs are measured as
// log ratios instead of price differences, which makes the result
// comparable across price scales.
//
// Description:
//
//	The true range of bar i extends the plain high-low span to cover
//	gaps against the previous close:
//
//	  TR(i) = max(high[i]-low[i], high[i]-close[i-1], close[i-1]-low[i])
//
//	A non-positive length degenerates to the single true range at
//	index, with no averaging.
//
// Preconditions: index >= 1 always (the previous close must exist),
// and index >= length when length > 0, so the whole window has a
// predecessor. Prices are assumed positive when useLog is set;
// non-positive prices yield NaN, which downstream robust statistics
// filter out.
//
// Complexity: O(length).
//
// Errors:
//   - ErrLengthMismatch if b's columns disagree.
//   - ErrIndexRange if index is outside [1, b.Len()) or the window
//     starts before bar 1.
func ATR(useLog bool, b Bars, index, length int) (float64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	if index < 1 || index >= b.Len() {
		return 0, ErrIndexRange
	}
	if length <= 0 {
		return trueRange(useLog, b, index), nil
	}
	if index < length {
		return 0, ErrIndexRange
	}

	var sum float64
	for i := index - length + 1; i <= index; i++ {
		sum += trueRange(useLog, b, i)
	}
	return sum / float64(length), nil
}

// trueRange computes one bar's true range; i >= 1 is the caller's
// responsibility.
func trueRange(useLog bool, b Bars, i int) float64 {
	if useLog {
		hl := math.Log(b.High[i] / b.Low[i])
		hc := math.Log(b.High[i] / b.Close[i-1])
		cl := math.Log(b.Close[i-1] / b.Low[i])
		return math.Max(hl, math.Max(hc, cl))
	}
	hl := b.High[i] - b.Low[i]
	hc := b.High[i] - b.Close[i-1]
	cl := b.Close[i-1] - b.Low[i]
	return math.Max(hl, math.Max(hc, cl))
}
