// Package app runs the capture, detect, classify and render loop.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/ayusman/actioncam/internal/action"
	"github.com/ayusman/actioncam/internal/capture"
	"github.com/ayusman/actioncam/internal/detector"
	"github.com/ayusman/actioncam/internal/display"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Loop timing constants.
const (
	// KeyPollInterval is how long each iteration waits for a key press.
	KeyPollInterval = 10 * time.Millisecond
	// WarmUp is the pause after opening the camera before the first read.
	WarmUp = 2 * time.Second
)

var (
	// ErrCameraUnavailable matches the CameraError returned by Run when the
	// video source cannot be opened.
	ErrCameraUnavailable = errors.New("could not access the webcam")
	// ErrSourceLost is returned by Run when MaxReadFailures consecutive reads fail.
	ErrSourceLost = errors.New("video source stopped delivering frames")
	// ErrAlreadyRan is returned when Run is called a second time.
	ErrAlreadyRan = errors.New("app has already run")
)

// CameraError is returned by Run when the video source cannot be opened.
// It matches ErrCameraUnavailable with errors.Is and unwraps to the backend error.
type CameraError struct {
	Err error
}

func (e *CameraError) Error() string {
	return ErrCameraUnavailable.Error() + ": " + e.Err.Error()
}

// Is reports whether target is ErrCameraUnavailable.
func (e *CameraError) Is(target error) bool {
	return target == ErrCameraUnavailable
}

func (e *CameraError) Unwrap() error { return e.Err }

// Cause lets errors.Cause reach the backend error.
func (e *CameraError) Cause() error { return e.Err }

// Config holds configuration options for the application.
type Config struct {
	// CameraID is the OpenCV device index. Ignored when Device is set.
	CameraID int
	// Device is a V4L2 device path. Empty uses CameraID.
	Device string
	// CascadePath is the face cascade file. Empty searches the OpenCV install.
	CascadePath string
	// WindowTitle defaults to display.DefaultTitle.
	WindowTitle string
	// MaxReadFailures ends the loop after that many consecutive failed reads.
	// Zero retries forever.
	MaxReadFailures int
	// WarmUp overrides the post-open pause. Negative disables it.
	WarmUp time.Duration

	Logger logrus.FieldLogger

	// Camera, Display, FaceDetector and HandDetector replace the default
	// implementations when set.
	Camera       capture.Camera
	Display      display.Display
	FaceDetector detector.FaceDetector
	HandDetector detector.HandDetector
}

// Stats counts what the loop did.
type Stats struct {
	Frames      int
	FailedReads int
	LastLabel   action.Label
}

// App owns the camera, detectors and display for one classification session.
type App struct {
	config  Config
	log     logrus.FieldLogger
	session string

	camera  capture.Camera
	display display.Display
	faces   detector.FaceDetector
	hands   detector.HandDetector

	mu     sync.Mutex
	ran    bool
	closed bool
	stats  Stats
}

// New creates an App and loads its detectors. The camera and display are
// not touched until Run.
func New(config Config) (*App, error) {
	session := uuid.NewString()

	logger := config.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	logger = logger.WithField("session", session)

	a := &App{
		config:  config,
		log:     logger,
		session: session,
		camera:  config.Camera,
		display: config.Display,
		faces:   config.FaceDetector,
		hands:   config.HandDetector,
	}

	if a.faces == nil {
		a.log.Info("Loading Haar cascade for face detection...")
		faces, err := detector.NewCascadeFaceDetector(config.CascadePath, detector.DefaultConfig())
		if err != nil {
			return nil, errors.Wrap(err, "load face detector")
		}
		a.log.WithField("path", faces.Path()).Debug("Face cascade loaded")
		a.faces = faces
	}

	if a.hands == nil {
		a.hands = detector.NewSkinDetector(detector.DefaultConfig())
	}

	if a.camera == nil {
		if config.Device != "" {
			a.camera = capture.NewV4L2Camera(config.Device)
		} else {
			a.camera = capture.NewCamera(config.CameraID)
		}
	}

	return a, nil
}

// Session returns the identifier attached to every log line of this App.
func (a *App) Session() string {
	return a.session
}

// Stats returns a snapshot of the loop counters.
func (a *App) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// Run opens the camera and display, then processes frames until the quit key
// is pressed, ctx is cancelled, or the source is declared lost. The camera
// and display are released before Run returns on every path.
func (a *App) Run(ctx context.Context) error {
	a.mu.Lock()
	if a.ran {
		a.mu.Unlock()
		return ErrAlreadyRan
	}
	a.ran = true
	a.mu.Unlock()

	a.log.Info("Initializing the camera...")
	if err := a.camera.Open(); err != nil {
		a.log.WithError(err).Error("Could not access the webcam.")
		return &CameraError{Err: err}
	}

	if a.display == nil {
		title := a.config.WindowTitle
		if title == "" {
			title = display.DefaultTitle
		}
		a.display = display.NewWindow(title)
	}
	defer func() {
		a.releaseCamera()
		a.releaseDisplay()
	}()

	a.log.Info("Camera initialized successfully.")
	if !a.warmUp(ctx) {
		return nil
	}

	return a.loop(ctx)
}

// warmUp gives the sensor time to settle. It returns false if ctx ended first.
func (a *App) warmUp(ctx context.Context) bool {
	d := a.config.WarmUp
	if d == 0 {
		d = WarmUp
	}
	if d < 0 {
		return true
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (a *App) releaseCamera() {
	a.log.Info("Releasing the camera...")
	if err := a.camera.Close(); err != nil {
		a.log.WithError(err).Warn("Error closing camera")
	}
}

func (a *App) releaseDisplay() {
	a.log.Info("Destroying all windows...")
	if err := a.display.Close(); err != nil {
		a.log.WithError(err).Warn("Error closing display")
	}
}

// Close releases the detectors. It is safe to call more than once.
func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil
	}
	a.closed = true

	var first error
	if err := a.faces.Close(); err != nil {
		first = err
	}
	if err := a.hands.Close(); err != nil && first == nil {
		first = err
	}
	return first
}
