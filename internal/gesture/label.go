// Package gesture provides hand-pose classification, frame combination and
// temporal smoothing for the GestiX control core.
package gesture

// Label is one discrete gesture from the closed vocabulary. Equality is the
// only operation consumers rely on; there is no meaningful ordering.
type Label string

const (
	// None is the neutral label: no hand, or no predicate matched.
	None Label = "None"
	// Fist is all five digits flexed.
	Fist Label = "Fist"
	// Open is all five digits extended.
	Open Label = "Open"
	// Point is index extended with every other digit, thumb included, flexed.
	Point Label = "Point"
	// Gun is index extended with middle, ring and pinky flexed; thumb free.
	Gun Label = "Gun"
	// ThumbUp is only the thumb extended.
	ThumbUp Label = "ThumbUp"
	// Victory is index and middle extended with ring and pinky flexed.
	Victory Label = "Victory"
	// Pinch is thumb and index tips touching, an OK-style sign.
	Pinch Label = "Pinch"
	// DualOpen is both hands open in the same frame.
	DualOpen Label = "DualOpen"
	// Wave is a side-to-side wrist motion over recent frames.
	Wave Label = "Wave"
)

// Trait describes how a label behaves when read from the shared mailbox.
type Trait int

const (
	// LevelTriggered labels persist across reads until superseded.
	LevelTriggered Trait = iota
	// EdgeTriggered labels are consumed on read so a held gesture fires
	// exactly one downstream action per physical occurrence.
	EdgeTriggered
)

// Trait returns the read semantics of the label. The trait travels with the
// label itself so no call site can classify a label inconsistently.
// Fist doubles as a held state (start/slide) and is therefore level-triggered;
// everything else maps to a discrete one-shot action.
func (l Label) Trait() Trait {
	switch l {
	case None, Fist:
		return LevelTriggered
	default:
		return EdgeTriggered
	}
}

// String returns the label name.
func (l Label) String() string {
	return string(l)
}

// Labels lists the full gesture vocabulary, neutral label included.
func Labels() []Label {
	return []Label{None, Fist, Open, Point, Gun, ThumbUp, Victory, Pinch, DualOpen, Wave}
}
