package gesture

import "testing"

func TestWaveDetector(t *testing.T) {
	t.Run("zig-zag wrist motion is a wave", func(t *testing.T) {
		w := NewWaveDetector(8, 0.15)

		xs := []float64{0.3, 0.6, 0.3, 0.6, 0.3, 0.6, 0.3}
		for _, x := range xs {
			if w.Observe(x) {
				t.Fatal("wave reported before the window filled")
			}
		}

		if !w.Observe(0.6) {
			t.Error("expected a wave once the window filled with reversals")
		}
	})

	t.Run("steady hand is not a wave", func(t *testing.T) {
		w := NewWaveDetector(8, 0.15)

		for i := 0; i < 16; i++ {
			if w.Observe(0.5) {
				t.Fatal("steady wrist should never register as a wave")
			}
		}
	})

	t.Run("monotonic drift is not a wave", func(t *testing.T) {
		w := NewWaveDetector(8, 0.15)

		for i := 0; i < 8; i++ {
			if w.Observe(0.1 + 0.1*float64(i)) {
				t.Fatal("one-directional motion should not register as a wave")
			}
		}
	})

	t.Run("small oscillation is below amplitude", func(t *testing.T) {
		w := NewWaveDetector(8, 0.15)

		for i := 0; i < 8; i++ {
			x := 0.5
			if i%2 == 0 {
				x = 0.55
			}
			if w.Observe(x) {
				t.Fatal("oscillation under the amplitude floor should not register")
			}
		}
	})

	t.Run("reset clears the history", func(t *testing.T) {
		w := NewWaveDetector(8, 0.15)

		for i := 0; i < 7; i++ {
			x := 0.3
			if i%2 == 0 {
				x = 0.6
			}
			w.Observe(x)
		}

		w.Reset()

		// One more sample must not complete a window after the reset.
		if w.Observe(0.3) {
			t.Error("wave reported from a cleared history")
		}
	})
}
