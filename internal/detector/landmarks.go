// Package detector provides hand observation types and detection interfaces
// for the GestiX gesture control core.
package detector

import "math"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Handedness identifies which hand an observation belongs to.
type Handedness string

const (
	// Left is the left hand as reported by the detection pipeline.
	Left Handedness = "Left"
	// Right is the right hand as reported by the detection pipeline.
	Right Handedness = "Right"
)

// Point3D represents a normalized landmark coordinate. X and Y are
// image-relative in [0,1]; Z is relative depth with the wrist near zero.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Hand is one observation of a detected hand in one processed frame:
// the 21 MediaPipe landmarks plus a handedness tag and detection score.
// A Hand is immutable after creation and owned by the frame-processing
// call that produced it.
type Hand struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness Handedness            `json:"handedness"`
	Score      float64               `json:"score"`
}

// dist2D calculates the Euclidean distance between two points in the
// image plane, ignoring depth.
func dist2D(a, b Point3D) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Scale returns the hand-scale normalizer: the image-plane distance from
// the wrist to the middle finger MCP. Landmark distances are divided by
// this value so thresholds hold regardless of how close the hand is to
// the camera.
func (h *Hand) Scale() float64 {
	return dist2D(h.Points[Wrist], h.Points[MiddleMCP])
}

// PinchDistance returns the thumb-tip to index-tip distance divided by
// the hand scale. Returns +Inf for a degenerate hand with zero scale.
func (h *Hand) PinchDistance() float64 {
	scale := h.Scale()
	if scale < 1e-9 {
		return math.Inf(1)
	}
	return dist2D(h.Points[ThumbTip], h.Points[IndexTip]) / scale
}
