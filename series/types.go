package series

import "errors"

// Bars stores one OHLCV history in columnar form, indexed by bar
// position with 0 the oldest bar. All transforms treat Bars as
// read-only.
type Bars struct {
	Open   []float64
	High   []float64
	Low    []float64
	Close  []float64
	Volume []float64
}

// Len reports the number of bars.
func (b Bars) Len() int { return len(b.Close) }

// Validate checks the columnar invariant: Open, High, Low and Close
// must share one length, and Volume must either be nil or match it.
func (b Bars) Validate() error {
	n := len(b.Close)
	if len(b.Open) != n || len(b.High) != n || len(b.Low) != n {
		return ErrLengthMismatch
	}
	if b.Volume != nil && len(b.Volume) != n {
		return ErrLengthMismatch
	}
	return nil
}

var (
	// ErrLengthMismatch is returned when OHLCV columns disagree on the
	// number of bars.
	ErrLengthMismatch = errors.New("series: ohlcv columns must share one length")

	// ErrIndexRange is returned when a trailing window would reach
	// before the first usable bar or beyond the last one.
	ErrIndexRange = errors.New("series: window out of range")

	// ErrWindow is returned when a window length must be positive but
	// is not.
	ErrWindow = errors.New("series: window length must be positive")

	// ErrBasisSize is returned by LegendreLinear for n < 2.
	ErrBasisSize = errors.New("series: basis needs at least 2 points")

	// ErrCapacity is returned by NewHistory for a non-positive capacity.
	ErrCapacity = errors.New("series: capacity must be positive")
)
