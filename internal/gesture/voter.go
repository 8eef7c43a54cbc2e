package gesture

// Voter smooths the frame-level label stream with a fixed-capacity sliding
// window and majority vote. A small window reacts quickly; a larger one rides
// out single-frame misclassifications. Owned by the producer only; not safe
// for concurrent use.
type Voter struct {
	window []Label
	size   int
}

// NewVoter creates a Voter with the given window size. Sizes below 1 are
// clamped to 1, which disables smoothing.
func NewVoter(size int) *Voter {
	if size < 1 {
		size = 1
	}
	return &Voter{
		window: make([]Label, 0, size),
		size:   size,
	}
}

// Push adds a frame label to the window, evicting the oldest entry when full,
// and returns the new voted label.
func (v *Voter) Push(l Label) Label {
	if len(v.window) >= v.size {
		copy(v.window, v.window[1:])
		v.window = v.window[:v.size-1]
	}
	v.window = append(v.window, l)
	return v.Current()
}

// Current returns the most frequent label in the window. Ties go to the most
// recently pushed label, which keeps the result a pure function of the window
// contents and lets a released gesture drain out as neutral frames arrive
// instead of winning one last vote. An empty window votes None.
func (v *Voter) Current() Label {
	if len(v.window) == 0 {
		return None
	}

	counts := make(map[Label]int, len(v.window))
	best := 0
	for _, l := range v.window {
		counts[l]++
		if counts[l] > best {
			best = counts[l]
		}
	}

	for i := len(v.window) - 1; i >= 0; i-- {
		if counts[v.window[i]] == best {
			return v.window[i]
		}
	}
	return None
}

// Len returns the number of labels currently in the window.
func (v *Voter) Len() int {
	return len(v.window)
}

// Reset clears the window.
func (v *Voter) Reset() {
	v.window = v.window[:0]
}
