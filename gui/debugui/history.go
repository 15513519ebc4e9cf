package debugui

// History is a fixed-size ring of samples.
type History struct {
	samples []float32
	index   int
	count   int
}

func NewHistory(size int) *History {
	return &History{samples: make([]float32, size)}
}

// Push records v, overwriting the oldest sample once full.
func (h *History) Push(v float32) {
	h.samples[h.index] = v
	h.index = (h.index + 1) % len(h.samples)
	h.count = min(h.count+1, len(h.samples))
}

// Len returns the number of recorded samples.
func (h *History) Len() int {
	return h.count
}

// Average returns the mean of the recorded samples.
func (h *History) Average() float32 {
	if h.count == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.Ordered() {
		sum += v
	}
	return sum / float32(h.count)
}

// Max returns the largest recorded sample.
func (h *History) Max() float32 {
	var m float32
	for _, v := range h.Ordered() {
		m = max(m, v)
	}
	return m
}

// Ordered returns the recorded samples oldest first.
func (h *History) Ordered() []float32 {
	out := make([]float32, h.count)
	if h.count < len(h.samples) {
		copy(out, h.samples[:h.count])
		return out
	}
	n := copy(out, h.samples[h.index:])
	copy(out[n:], h.samples[:h.index])
	return out
}
