package app

import (
	"log"
	"time"

	"github.com/ayusman/gestix/internal/detector"
	"github.com/ayusman/gestix/internal/gesture"
)

// runPipeline is the producer loop: read a frame, detect hands, classify,
// vote, publish. It exits when the shared liveness flag drops. Read and
// detect errors are logged and skipped; a broken frame must not kill the
// pipeline.
func (a *App) runPipeline() {
	interval := time.Second / time.Duration(a.camera.FPS())

	for a.mailbox.IsRunning() {
		frame, err := a.camera.ReadFrame()
		if err != nil {
			log.Printf("Frame read failed: %v", err)
			time.Sleep(interval)
			continue
		}

		hands, err := a.detector.Detect(frame)
		frame.Close()
		if err != nil {
			log.Printf("Hand detection failed: %v", err)
			continue
		}

		a.ProcessHands(hands)
	}
}

// ProcessHands runs one frame's observations through classification, the
// per-hand combiner, wave detection and the majority voter, then publishes
// the result to the mailbox. Exposed so tests and alternative frame sources
// can drive the pipeline without a camera.
func (a *App) ProcessHands(hands []detector.Hand) {
	if len(hands) == 0 {
		a.wave.Reset()
		a.publish(gesture.None)
		return
	}

	left, right := gesture.None, gesture.None
	var wrist *detector.Point3D
	for i := range hands {
		h := &hands[i]
		l := a.classifier.Classify(h)
		switch h.Handedness {
		case detector.Right:
			right = l
			wrist = &h.Points[detector.Wrist]
		case detector.Left:
			left = l
			if wrist == nil {
				wrist = &h.Points[detector.Wrist]
			}
		}
	}

	label := gesture.CombineFrame(left, right)

	// The wave watches the right wrist when present, else the left. A wave
	// outranks whatever static pose the moving hand happens to form.
	if wrist != nil && a.wave.Observe(wrist.X) {
		label = gesture.Wave
		a.wave.Reset()
	}

	a.publish(label)
}

// publish runs a raw per-frame label through the voter and forwards the
// settled result to the mailbox.
func (a *App) publish(raw gesture.Label) {
	a.mailbox.Set(a.voter.Push(raw))
}
