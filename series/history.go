package series

// History is a fixed-capacity ring of recent raw indicator values.
// Push evicts the oldest value once the ring is full. The indicator
// layer keeps one History per indicator and derives median/IQR from
// Values before pushing the current bar's raw value, so the current
// bar never normalizes against itself.
//
// History is not safe for concurrent use.
type History struct {
	buf  []float64
	next int
	full bool
}

// NewHistory returns an empty ring holding at most capacity values.
//
// Errors:
//   - ErrCapacity if capacity < 1.
func NewHistory(capacity int) (*History, error) {
	if capacity < 1 {
		return nil, ErrCapacity
	}
	return &History{buf: make([]float64, 0, capacity)}, nil
}

// Push appends v, evicting the oldest value when the ring is full.
func (h *History) Push(v float64) {
	if !h.full {
		h.buf = append(h.buf, v)
		if len(h.buf) == cap(h.buf) {
			h.full = true
		}
		return
	}
	h.buf[h.next] = v
	h.next++
	if h.next == len(h.buf) {
		h.next = 0
	}
}

// Len reports how many values the ring currently holds.
func (h *History) Len() int { return len(h.buf) }

// Cap reports the ring's fixed capacity.
func (h *History) Cap() int { return cap(h.buf) }

// Full reports whether the ring has reached capacity, i.e. whether a
// complete trailing window is available.
func (h *History) Full() bool { return h.full }

// Values copies the ring out in chronological order, oldest first.
func (h *History) Values() []float64 {
	out := make([]float64, 0, len(h.buf))
	if h.full {
		out = append(out, h.buf[h.next:]...)
		return append(out, h.buf[:h.next]...)
	}
	return append(out, h.buf...)
}
