package detector

import (
	"image"
	"sync"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// CascadeFaceDetector implements FaceDetector with an OpenCV Haar cascade.
type CascadeFaceDetector struct {
	config     Config
	classifier gocv.CascadeClassifier
	path       string
	mu         sync.Mutex
	closed     bool
}

// NewCascadeFaceDetector loads the cascade at path. An empty path looks up
// the stock frontal face cascade with FindCascade.
func NewCascadeFaceDetector(path string, config Config) (*CascadeFaceDetector, error) {
	if path == "" {
		found, err := FindCascade(FrontalFaceCascade)
		if err != nil {
			return nil, err
		}
		path = found
	}

	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(path) {
		classifier.Close()
		return nil, errors.Errorf("error reading cascade file: %s", path)
	}

	return &CascadeFaceDetector{
		config:     config,
		classifier: classifier,
		path:       path,
	}, nil
}

// Path returns the cascade file the detector was loaded from.
func (d *CascadeFaceDetector) Path() string {
	return d.path
}

// DetectFaces runs the cascade over a single-channel frame.
func (d *CascadeFaceDetector) DetectFaces(gray gocv.Mat) FaceResult {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return FaceResult{Err: errors.New("face detector is closed")}
	}
	if gray.Empty() {
		return FaceResult{Err: ErrEmptyFrame}
	}

	rects := d.classifier.DetectMultiScaleWithParams(
		gray,
		d.config.ScaleFactor,
		d.config.MinNeighbors,
		0,
		image.Point{},
		image.Point{},
	)

	return FaceResult{Regions: rects}
}

// Close releases the classifier. Calling Close more than once is safe.
func (d *CascadeFaceDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true
	return d.classifier.Close()
}
