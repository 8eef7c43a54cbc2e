package gesture

// Wave detection constants.
const (
	// DefaultWaveWindow is the number of wrist samples considered.
	DefaultWaveWindow = 8
	// DefaultWaveAmplitude is the minimum normalized X travel of the wrist.
	DefaultWaveAmplitude = 0.15
)

// WaveDetector watches recent wrist X positions for a side-to-side wave.
// This rolling history is the one place landmark data outlives the frame
// that produced it. Owned by the producer only; not safe for concurrent use.
type WaveDetector struct {
	window    int
	amplitude float64
	xs        []float64
}

// NewWaveDetector creates a WaveDetector over the given window of wrist
// samples requiring the given amplitude. Non-positive arguments fall back
// to the defaults.
func NewWaveDetector(window int, amplitude float64) *WaveDetector {
	if window < 2 {
		window = DefaultWaveWindow
	}
	if amplitude <= 0 {
		amplitude = DefaultWaveAmplitude
	}
	return &WaveDetector{
		window:    window,
		amplitude: amplitude,
		xs:        make([]float64, 0, window),
	}
}

// Observe records the wrist X position for one frame and reports whether the
// window now describes a wave: at least two direction reversals around the
// window mean with enough total travel.
func (w *WaveDetector) Observe(x float64) bool {
	if len(w.xs) >= w.window {
		copy(w.xs, w.xs[1:])
		w.xs = w.xs[:w.window-1]
	}
	w.xs = append(w.xs, x)

	if len(w.xs) < w.window {
		return false
	}

	var mean float64
	for _, v := range w.xs {
		mean += v
	}
	mean /= float64(len(w.xs))

	var lo, hi float64
	changes := 0
	prev := 0
	for i, v := range w.xs {
		c := v - mean
		if i == 0 || c < lo {
			lo = c
		}
		if i == 0 || c > hi {
			hi = c
		}

		s := 0
		if c > 0 {
			s = 1
		} else if c < 0 {
			s = -1
		}
		if i > 0 && s != prev {
			changes++
		}
		prev = s
	}

	return changes >= 2 && hi-lo > w.amplitude
}

// Reset clears the wrist history, e.g. when the hand leaves the frame.
func (w *WaveDetector) Reset() {
	w.xs = w.xs[:0]
}
