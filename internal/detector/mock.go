package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []Hand
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []Hand) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]Hand, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// Mirrored returns a copy of h reflected around the vertical image center
// with the handedness tag flipped. Useful for deriving Left-hand fixtures
// from the Right-hand presets below.
func Mirrored(h Hand) Hand {
	out := h
	for i := range out.Points {
		out.Points[i].X = 1.0 - out.Points[i].X
	}
	if h.Handedness == Right {
		out.Handedness = Left
	} else {
		out.Handedness = Right
	}
	return out
}

// The preset hands below describe a mirrored camera view of a right hand:
// wrist at (0.5, 0.85), middle MCP at (0.5, 0.65), hand scale 0.2.
// An extended right thumb points toward decreasing X (tip.x < IP.x).

// FistLandmarks returns a preset Hand with all five digits flexed.
func FistLandmarks() Hand {
	h := Hand{
		Handedness: Right,
		Score:      0.95,
	}

	h.Points[Wrist] = Point3D{X: 0.50, Y: 0.85, Z: 0.0}

	// Thumb folded across the palm
	h.Points[ThumbCMC] = Point3D{X: 0.56, Y: 0.80, Z: 0.0}
	h.Points[ThumbMCP] = Point3D{X: 0.59, Y: 0.76, Z: 0.0}
	h.Points[ThumbIP] = Point3D{X: 0.60, Y: 0.73, Z: 0.0}
	h.Points[ThumbTip] = Point3D{X: 0.66, Y: 0.74, Z: 0.0}

	// Index finger curled, tip below PIP
	h.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.68, Z: -0.02}
	h.Points[IndexPIP] = Point3D{X: 0.55, Y: 0.63, Z: -0.05}
	h.Points[IndexDIP] = Point3D{X: 0.55, Y: 0.68, Z: -0.04}
	h.Points[IndexTip] = Point3D{X: 0.54, Y: 0.70, Z: -0.02}

	// Middle finger curled
	h.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.65, Z: -0.02}
	h.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.61, Z: -0.05}
	h.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.66, Z: -0.04}
	h.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.69, Z: -0.02}

	// Ring finger curled
	h.Points[RingMCP] = Point3D{X: 0.45, Y: 0.67, Z: -0.02}
	h.Points[RingPIP] = Point3D{X: 0.45, Y: 0.63, Z: -0.05}
	h.Points[RingDIP] = Point3D{X: 0.45, Y: 0.67, Z: -0.04}
	h.Points[RingTip] = Point3D{X: 0.45, Y: 0.70, Z: -0.02}

	// Pinky finger curled
	h.Points[PinkyMCP] = Point3D{X: 0.41, Y: 0.70, Z: -0.02}
	h.Points[PinkyPIP] = Point3D{X: 0.41, Y: 0.66, Z: -0.05}
	h.Points[PinkyDIP] = Point3D{X: 0.41, Y: 0.70, Z: -0.04}
	h.Points[PinkyTip] = Point3D{X: 0.41, Y: 0.72, Z: -0.02}

	return h
}

// OpenPalmLandmarks returns a preset Hand with all five digits extended.
func OpenPalmLandmarks() Hand {
	h := Hand{
		Handedness: Right,
		Score:      0.95,
	}

	h.Points[Wrist] = Point3D{X: 0.50, Y: 0.85, Z: 0.0}

	// Thumb extended to the side
	h.Points[ThumbCMC] = Point3D{X: 0.44, Y: 0.78, Z: 0.02}
	h.Points[ThumbMCP] = Point3D{X: 0.40, Y: 0.73, Z: 0.03}
	h.Points[ThumbIP] = Point3D{X: 0.37, Y: 0.69, Z: 0.03}
	h.Points[ThumbTip] = Point3D{X: 0.33, Y: 0.66, Z: 0.03}

	// Index finger extended upward
	h.Points[IndexMCP] = Point3D{X: 0.45, Y: 0.64, Z: 0.0}
	h.Points[IndexPIP] = Point3D{X: 0.45, Y: 0.54, Z: 0.0}
	h.Points[IndexDIP] = Point3D{X: 0.45, Y: 0.46, Z: 0.0}
	h.Points[IndexTip] = Point3D{X: 0.45, Y: 0.38, Z: 0.0}

	// Middle finger extended upward
	h.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.65, Z: 0.0}
	h.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.53, Z: 0.0}
	h.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.44, Z: 0.0}
	h.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.35, Z: 0.0}

	// Ring finger extended upward
	h.Points[RingMCP] = Point3D{X: 0.55, Y: 0.66, Z: 0.0}
	h.Points[RingPIP] = Point3D{X: 0.55, Y: 0.55, Z: 0.0}
	h.Points[RingDIP] = Point3D{X: 0.55, Y: 0.47, Z: 0.0}
	h.Points[RingTip] = Point3D{X: 0.55, Y: 0.39, Z: 0.0}

	// Pinky finger extended upward
	h.Points[PinkyMCP] = Point3D{X: 0.59, Y: 0.69, Z: 0.0}
	h.Points[PinkyPIP] = Point3D{X: 0.60, Y: 0.60, Z: 0.0}
	h.Points[PinkyDIP] = Point3D{X: 0.60, Y: 0.53, Z: 0.0}
	h.Points[PinkyTip] = Point3D{X: 0.60, Y: 0.46, Z: 0.0}

	return h
}

// GunLandmarks returns a preset Hand with index and thumb extended and the
// remaining fingers flexed.
func GunLandmarks() Hand {
	h := FistLandmarks()

	// Thumb extended
	h.Points[ThumbCMC] = Point3D{X: 0.46, Y: 0.79, Z: 0.0}
	h.Points[ThumbMCP] = Point3D{X: 0.42, Y: 0.74, Z: 0.0}
	h.Points[ThumbIP] = Point3D{X: 0.39, Y: 0.71, Z: 0.0}
	h.Points[ThumbTip] = Point3D{X: 0.35, Y: 0.68, Z: 0.0}

	// Index finger extended upward
	h.Points[IndexMCP] = Point3D{X: 0.45, Y: 0.64, Z: 0.0}
	h.Points[IndexPIP] = Point3D{X: 0.45, Y: 0.54, Z: 0.0}
	h.Points[IndexDIP] = Point3D{X: 0.45, Y: 0.46, Z: 0.0}
	h.Points[IndexTip] = Point3D{X: 0.45, Y: 0.38, Z: 0.0}

	return h
}

// VictoryLandmarks returns a preset Hand with index and middle extended and
// thumb, ring and pinky flexed.
func VictoryLandmarks() Hand {
	h := FistLandmarks()

	// Index finger extended, leaning out
	h.Points[IndexMCP] = Point3D{X: 0.46, Y: 0.64, Z: 0.0}
	h.Points[IndexPIP] = Point3D{X: 0.46, Y: 0.54, Z: 0.0}
	h.Points[IndexDIP] = Point3D{X: 0.45, Y: 0.46, Z: 0.0}
	h.Points[IndexTip] = Point3D{X: 0.44, Y: 0.38, Z: 0.0}

	// Middle finger extended, leaning the other way
	h.Points[MiddlePIP] = Point3D{X: 0.51, Y: 0.53, Z: 0.0}
	h.Points[MiddleDIP] = Point3D{X: 0.52, Y: 0.44, Z: 0.0}
	h.Points[MiddleTip] = Point3D{X: 0.53, Y: 0.36, Z: 0.0}

	return h
}

// ThumbsUpLandmarks returns a preset Hand with only the thumb extended.
func ThumbsUpLandmarks() Hand {
	h := FistLandmarks()

	h.Points[ThumbCMC] = Point3D{X: 0.46, Y: 0.79, Z: 0.0}
	h.Points[ThumbMCP] = Point3D{X: 0.42, Y: 0.74, Z: 0.0}
	h.Points[ThumbIP] = Point3D{X: 0.39, Y: 0.71, Z: 0.0}
	h.Points[ThumbTip] = Point3D{X: 0.35, Y: 0.68, Z: 0.0}

	return h
}

// PinchLandmarks returns a preset Hand with thumb and index tips touching
// and the middle finger extended, an OK-style pinch.
func PinchLandmarks() Hand {
	h := FistLandmarks()

	// Thumb reaching toward the index tip
	h.Points[ThumbCMC] = Point3D{X: 0.52, Y: 0.78, Z: 0.0}
	h.Points[ThumbMCP] = Point3D{X: 0.50, Y: 0.72, Z: 0.0}
	h.Points[ThumbIP] = Point3D{X: 0.48, Y: 0.67, Z: 0.0}
	h.Points[ThumbTip] = Point3D{X: 0.46, Y: 0.62, Z: 0.0}

	// Index curled down to meet the thumb
	h.Points[IndexMCP] = Point3D{X: 0.45, Y: 0.64, Z: 0.0}
	h.Points[IndexPIP] = Point3D{X: 0.45, Y: 0.56, Z: 0.0}
	h.Points[IndexDIP] = Point3D{X: 0.46, Y: 0.58, Z: 0.0}
	h.Points[IndexTip] = Point3D{X: 0.47, Y: 0.60, Z: 0.0}

	// Middle finger extended
	h.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.53, Z: 0.0}
	h.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.44, Z: 0.0}
	h.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.35, Z: 0.0}

	// Ring and pinky stay curled (inherited from FistLandmarks)
	return h
}
