package gesture

// CombineFrame reduces the per-hand labels of one processed frame to a single
// frame-level label. Hands absent from the frame contribute None.
//
// Both hands open is the only two-hand coincidence in the vocabulary and wins
// outright. Otherwise the right hand takes priority over the left, so an
// off-hand drifting into frame cannot steal a deliberate gesture.
func CombineFrame(left, right Label) Label {
	if left == Open && right == Open {
		return DualOpen
	}
	if right != None {
		return right
	}
	return left
}
