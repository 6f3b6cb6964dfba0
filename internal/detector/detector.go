// Package detector provides the face and hand-proxy detectors used to
// classify each frame.
package detector

import (
	"image"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// ErrEmptyFrame is reported in a result when the detector was handed an empty Mat.
var ErrEmptyFrame = errors.New("frame is empty")

// Face detection sensitivity.
const (
	// FaceScaleFactor is how much the image is shrunk between cascade scales.
	FaceScaleFactor = 1.1
	// FaceMinNeighbors is how many overlapping hits a face candidate needs.
	FaceMinNeighbors = 4
)

// Skin-tone range in OpenCV 8-bit HSV (hue 0-179, saturation and value 0-255).
const (
	SkinHueMin = 0
	SkinHueMax = 20
	SkinSatMin = 20
	SkinSatMax = 255
	SkinValMin = 70
	SkinValMax = 255
)

const (
	// SkinBlurSize is the Gaussian kernel size applied to the skin mask.
	SkinBlurSize = 5
	// MinHandArea is the contour area, in pixels, a skin region must exceed
	// to count as a hand. The comparison is strict.
	MinHandArea = 5000.0
)

// FaceDetector finds frontal faces in a grayscale frame.
type FaceDetector interface {
	// DetectFaces returns the face regions found in gray.
	DetectFaces(gray gocv.Mat) FaceResult

	// Close releases any resources held by the detector.
	Close() error
}

// HandDetector finds a hand-sized skin region in a BGR frame.
type HandDetector interface {
	// DetectHand returns the first qualifying skin region in frame.
	DetectHand(frame gocv.Mat) HandResult

	// Close releases any resources held by the detector.
	Close() error
}

// FaceResult is the outcome of one face detection pass. Err is set when the
// detector could not run; Regions is then empty.
type FaceResult struct {
	Regions []image.Rectangle
	Err     error
}

// Detected reports whether at least one face was found. A failed run counts
// as no detection.
func (r FaceResult) Detected() bool {
	return r.Err == nil && len(r.Regions) > 0
}

// HandResult is the outcome of one skin-region pass.
type HandResult struct {
	// Contour is the outline of the first region larger than MinHandArea.
	Contour []image.Point
	// Area is the enclosed area of Contour in pixels.
	Area  float64
	Found bool
	Err   error
}

// Detected reports whether a hand-sized region was found. A failed run counts
// as no detection.
func (r HandResult) Detected() bool {
	return r.Err == nil && r.Found
}

// Config holds the detection tuning values.
type Config struct {
	ScaleFactor  float64
	MinNeighbors int
	SkinLower    gocv.Scalar
	SkinUpper    gocv.Scalar
	BlurSize     int
	MinHandArea  float64
}

// DefaultConfig returns a Config built from the package constants.
func DefaultConfig() Config {
	return Config{
		ScaleFactor:  FaceScaleFactor,
		MinNeighbors: FaceMinNeighbors,
		SkinLower:    gocv.NewScalar(SkinHueMin, SkinSatMin, SkinValMin, 0),
		SkinUpper:    gocv.NewScalar(SkinHueMax, SkinSatMax, SkinValMax, 0),
		BlurSize:     SkinBlurSize,
		MinHandArea:  MinHandArea,
	}
}
