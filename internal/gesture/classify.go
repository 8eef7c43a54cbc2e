package gesture

import (
	"github.com/ayusman/gestix/internal/detector"
)

// Thresholds holds the geometric constants used by single-hand classification.
type Thresholds struct {
	// PinchRatio is the maximum thumb-tip to index-tip distance, divided by
	// the hand scale, for a Pinch to register.
	PinchRatio float64
}

// DefaultThresholds returns the tuned classification thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		PinchRatio: 0.35,
	}
}

// Classifier turns one hand observation into one gesture label. It is pure:
// no state is kept between calls, so it is safe to share and trivial to test
// against literal landmark fixtures.
type Classifier struct {
	thresholds Thresholds
}

// NewClassifier creates a Classifier with the given thresholds.
func NewClassifier(t Thresholds) *Classifier {
	return &Classifier{thresholds: t}
}

// fingers reports which digits are extended, indexed thumb through pinky.
//
// Index through pinky count as extended when the tip sits above the PIP
// joint in image coordinates. The thumb is judged along X and mirrored by
// handedness: frames are flipped before detection to give the user a
// natural view, so an extended right thumb points toward decreasing X.
func fingers(h *detector.Hand) [5]bool {
	var f [5]bool

	if h.Handedness == detector.Right {
		f[0] = h.Points[detector.ThumbTip].X < h.Points[detector.ThumbIP].X
	} else {
		f[0] = h.Points[detector.ThumbTip].X > h.Points[detector.ThumbIP].X
	}

	tipPIP := [4][2]int{
		{detector.IndexTip, detector.IndexPIP},
		{detector.MiddleTip, detector.MiddlePIP},
		{detector.RingTip, detector.RingPIP},
		{detector.PinkyTip, detector.PinkyPIP},
	}
	for i, pair := range tipPIP {
		f[i+1] = h.Points[pair[0]].Y < h.Points[pair[1]].Y
	}

	return f
}

// Classify returns exactly one label for the observation. Predicates are
// evaluated in a fixed priority order and the first match wins; when none
// match the result is None. The order matters for overlapping shapes:
// Pinch outranks Victory, and Gun outranks Point.
func (c *Classifier) Classify(h *detector.Hand) Label {
	if h == nil {
		return None
	}

	f := fingers(h)
	thumb, index, middle, ring, pinky := f[0], f[1], f[2], f[3], f[4]

	restExtended := 0
	for _, up := range []bool{middle, ring, pinky} {
		if up {
			restExtended++
		}
	}

	switch {
	case h.PinchDistance() < c.thresholds.PinchRatio && restExtended <= 1:
		return Pinch
	case index && middle && !ring && !pinky:
		return Victory
	case index && !middle && !ring && !pinky:
		return Gun
	case index && !thumb && !middle && !ring && !pinky:
		// Shadowed by Gun, which accepts any thumb state.
		return Point
	case thumb && !index && !middle && !ring && !pinky:
		return ThumbUp
	case !thumb && !index && !middle && !ring && !pinky:
		return Fist
	case thumb && index && middle && ring && pinky:
		return Open
	default:
		return None
	}
}
