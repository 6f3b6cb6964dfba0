package app

import (
	"context"

	"github.com/ayusman/actioncam/internal/action"
	"github.com/ayusman/actioncam/internal/capture"
	"github.com/ayusman/actioncam/internal/detector"
	"github.com/ayusman/actioncam/internal/display"
	"gocv.io/x/gocv"
)

// Outcome is what one iteration detected and decided.
type Outcome struct {
	Faces detector.FaceResult
	Hand  detector.HandResult
	Label action.Label
}

// loop is the main detection loop. It has a single steady state and leaves
// it on the quit key, context cancellation or source loss.
//
// Loop logic:
// 1. Read a frame; on failure report it and try again
// 2. Process the frame (mirror, detect, classify, annotate) and show it
// 3. Poll the keyboard; 'q' quits
func (a *App) loop(ctx context.Context) error {
	failures := 0

	for {
		select {
		case <-ctx.Done():
			a.log.Info("Interrupted. Quitting...")
			return nil
		default:
		}

		frame, err := a.camera.ReadFrame()
		if err != nil {
			failures++
			a.mu.Lock()
			a.stats.FailedReads++
			a.mu.Unlock()

			a.log.WithError(err).Warn("Could not read frame. Retrying...")
			if a.config.MaxReadFailures > 0 && failures >= a.config.MaxReadFailures {
				a.log.WithField("failures", failures).Error("Giving up on the video source")
				return ErrSourceLost
			}
			continue
		}
		failures = 0

		mirrored := capture.Mirror(*frame)
		frame.Close()

		outcome := a.processFrame(&mirrored)
		a.display.Show(&mirrored)
		mirrored.Close()

		a.mu.Lock()
		a.stats.Frames++
		a.stats.LastLabel = outcome.Label
		a.mu.Unlock()

		if display.IsQuitKey(a.display.PollKey(KeyPollInterval)) {
			a.log.Info("Exit key pressed. Quitting...")
			return nil
		}
	}
}

// processFrame runs both detectors on an already mirrored frame, classifies
// the result and draws the annotations onto frame.
func (a *App) processFrame(frame *gocv.Mat) Outcome {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(*frame, &gray, gocv.ColorBGRToGray)

	faces := a.faces.DetectFaces(gray)
	if faces.Err != nil {
		a.log.WithError(faces.Err).Debug("Face detection failed")
	}
	display.DrawFaces(frame, faces.Regions)

	hand := a.hands.DetectHand(*frame)
	if hand.Err != nil {
		a.log.WithError(hand.Err).Debug("Hand detection failed")
	}
	if hand.Detected() {
		display.DrawContour(frame, hand.Contour)
	}

	label := action.Classify(faces.Detected(), hand.Detected())
	display.DrawLabel(frame, label.String())

	return Outcome{Faces: faces, Hand: hand, Label: label}
}
