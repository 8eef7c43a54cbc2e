package gesture

import (
	"testing"

	"github.com/ayusman/gestix/internal/detector"
)

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier(DefaultThresholds())

	tests := []struct {
		name string
		hand detector.Hand
		want Label
	}{
		{name: "open palm", hand: detector.OpenPalmLandmarks(), want: Open},
		{name: "fist", hand: detector.FistLandmarks(), want: Fist},
		{name: "gun", hand: detector.GunLandmarks(), want: Gun},
		{name: "victory", hand: detector.VictoryLandmarks(), want: Victory},
		{name: "thumbs up", hand: detector.ThumbsUpLandmarks(), want: ThumbUp},
		{name: "pinch", hand: detector.PinchLandmarks(), want: Pinch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(&tt.hand); got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})

		t.Run(tt.name+" mirrored left hand", func(t *testing.T) {
			mirrored := detector.Mirrored(tt.hand)
			if got := c.Classify(&mirrored); got != tt.want {
				t.Errorf("Classify(mirrored) = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifier_GunOutranksPointAndVictory(t *testing.T) {
	c := NewClassifier(DefaultThresholds())

	// Index and thumb extended, everything else flexed: must be Gun, never
	// Point (lower priority) nor Victory (middle is flexed).
	hand := detector.GunLandmarks()
	got := c.Classify(&hand)

	if got == Point || got == Victory {
		t.Fatalf("Classify() = %s, want Gun", got)
	}
	if got != Gun {
		t.Errorf("Classify() = %s, want Gun", got)
	}
}

func TestClassifier_UnmatchedShapeIsNeutral(t *testing.T) {
	c := NewClassifier(DefaultThresholds())

	// Middle and ring extended only: matches no predicate.
	hand := detector.FistLandmarks()
	hand.Points[detector.MiddlePIP] = detector.Point3D{X: 0.50, Y: 0.53}
	hand.Points[detector.MiddleTip] = detector.Point3D{X: 0.50, Y: 0.35}
	hand.Points[detector.RingPIP] = detector.Point3D{X: 0.55, Y: 0.55}
	hand.Points[detector.RingTip] = detector.Point3D{X: 0.55, Y: 0.39}

	if got := c.Classify(&hand); got != None {
		t.Errorf("Classify() = %s, want None", got)
	}
}

func TestClassifier_NilHandIsNeutral(t *testing.T) {
	c := NewClassifier(DefaultThresholds())

	if got := c.Classify(nil); got != None {
		t.Errorf("Classify(nil) = %s, want None", got)
	}
}

func TestClassifier_PinchNeedsFlexedRest(t *testing.T) {
	c := NewClassifier(DefaultThresholds())

	// Touching tips but middle, ring and pinky all extended: too many
	// extended fingers for a pinch.
	hand := detector.PinchLandmarks()
	hand.Points[detector.RingPIP] = detector.Point3D{X: 0.55, Y: 0.55}
	hand.Points[detector.RingTip] = detector.Point3D{X: 0.55, Y: 0.39}
	hand.Points[detector.PinkyPIP] = detector.Point3D{X: 0.59, Y: 0.60}
	hand.Points[detector.PinkyTip] = detector.Point3D{X: 0.59, Y: 0.46}

	if got := c.Classify(&hand); got == Pinch {
		t.Errorf("Classify() = Pinch, want a non-pinch label with three fingers extended")
	}
}
