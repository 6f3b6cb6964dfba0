package e2e

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/ayusman/actioncam/internal/action"
	"github.com/ayusman/actioncam/internal/app"
	"github.com/ayusman/actioncam/internal/capture"
	"github.com/ayusman/actioncam/internal/detector"
	"github.com/ayusman/actioncam/internal/display"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/sirupsen/logrus/hooks/test"
	"gocv.io/x/gocv"
)

// skinFrame returns a black frame with a hand-sized skin-toned square.
func skinFrame() gocv.Mat {
	r, g, b := colorful.Hsv(20, 0.45, 0.8).RGB255()
	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	gocv.Rectangle(&frame, image.Rect(400, 200, 520, 320), color.RGBA{R: r, G: g, B: b}, -1)
	return frame
}

func TestE2E_SkinPipeline(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	skin := skinFrame()
	defer skin.Close()
	blank := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer blank.Close()

	face := detector.NewMockFaceDetector()
	face.SetResult(detector.FaceResult{Regions: []image.Rectangle{image.Rect(100, 80, 220, 200)}})

	tests := []struct {
		name  string
		frame *gocv.Mat
		want  action.Label
	}{
		{name: "face and skin region", frame: &skin, want: action.Working},
		{name: "face without skin region", frame: &blank, want: action.UsingPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := test.NewNullLogger()
			cam := capture.NewMockCamera([]*gocv.Mat{tt.frame}, true)
			cam.FailNextReads(2)
			screen := display.NewMockDisplay(-1, 'q')

			var labels []string
			screen.OnShow = func(f *gocv.Mat) {
				if f.Empty() {
					t.Error("shown frame is empty")
				}
				labels = append(labels, "shown")
			}

			application, err := app.New(app.Config{
				Logger:          logger,
				Camera:          cam,
				Display:         screen,
				FaceDetector:    face,
				HandDetector:    detector.NewSkinDetector(detector.DefaultConfig()),
				MaxReadFailures: 3,
				WarmUp:          -1,
			})
			if err != nil {
				t.Fatalf("app.New() error = %v", err)
			}
			defer application.Close()

			if err := application.Run(context.Background()); err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			stats := application.Stats()
			if stats.LastLabel != tt.want {
				t.Errorf("LastLabel = %v, want %v", stats.LastLabel, tt.want)
			}
			if stats.Frames != 2 || len(labels) != 2 {
				t.Errorf("Frames = %d, shown = %d, want 2 each", stats.Frames, len(labels))
			}
			if stats.FailedReads != 2 {
				t.Errorf("FailedReads = %d, want 2", stats.FailedReads)
			}
			if cam.Closes() != 1 || screen.Closes() != 1 {
				t.Errorf("closes = (camera %d, display %d), want (1, 1)", cam.Closes(), screen.Closes())
			}
			if len(hook.AllEntries()) == 0 {
				t.Error("expected status lines to be logged")
			}
		})
	}
}

func TestE2E_RealFaceDetector(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}
	path, err := detector.FindCascade(detector.FrontalFaceCascade)
	if err != nil {
		t.Skipf("skipping test - cascade not installed: %v", err)
	}

	skin := skinFrame()
	defer skin.Close()

	logger, _ := test.NewNullLogger()
	application, err := app.New(app.Config{
		Logger:      logger,
		CascadePath: path,
		Camera:      capture.NewMockCamera([]*gocv.Mat{&skin}, true),
		Display:     display.NewMockDisplay('q'),
		WarmUp:      -1,
	})
	if err != nil {
		t.Fatalf("app.New() error = %v", err)
	}
	defer application.Close()

	if err := application.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// A square of skin has a hand but no face.
	if got := application.Stats().LastLabel; got != action.UsingPhone {
		t.Errorf("LastLabel = %v, want UsingPhone", got)
	}
}
