package detector

import (
	"image"
	"sync"

	"gocv.io/x/gocv"
)

// SkinDetector stands in for a hand detector by segmenting skin-toned pixels
// and looking for a region large enough to be a hand.
type SkinDetector struct {
	config Config
	mu     sync.Mutex
}

// NewSkinDetector creates a SkinDetector with the given configuration.
func NewSkinDetector(config Config) *SkinDetector {
	return &SkinDetector{config: config}
}

// DetectHand analyzes a BGR frame for a hand-sized skin region.
//
// Algorithm:
// 1. Convert frame to HSV
// 2. Keep pixels inside the skin range
// 3. Apply Gaussian blur (5x5) to suppress speckle
// 4. Extract external contours
// 5. Return the first contour whose area exceeds MinHandArea
func (d *SkinDetector) DetectHand(frame gocv.Mat) HandResult {
	d.mu.Lock()
	defer d.mu.Unlock()

	if frame.Empty() {
		return HandResult{Err: ErrEmptyFrame}
	}

	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(frame, &hsv, gocv.ColorBGRToHSV)

	mask := gocv.NewMat()
	defer mask.Close()
	gocv.InRangeWithScalar(hsv, d.config.SkinLower, d.config.SkinUpper, &mask)

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(mask, &blurred, image.Point{X: d.config.BlurSize, Y: d.config.BlurSize}, 0, 0, gocv.BorderDefault)

	contours := gocv.FindContours(blurred, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	idx, area := FirstAbove(contours.Size(), func(i int) float64 {
		return gocv.ContourArea(contours.At(i))
	}, d.config.MinHandArea)
	if idx < 0 {
		return HandResult{}
	}

	return HandResult{
		Contour: contours.At(idx).ToPoints(),
		Area:    area,
		Found:   true,
	}
}

// Close is a no-op; the detector holds no native resources between calls.
func (d *SkinDetector) Close() error {
	return nil
}

// FirstAbove scans indices 0..n-1 in order and returns the first index whose
// area is strictly greater than min, together with that area. Scanning stops
// at the first match. It returns -1 when nothing qualifies.
func FirstAbove(n int, area func(i int) float64, min float64) (int, float64) {
	for i := 0; i < n; i++ {
		if a := area(i); a > min {
			return i, a
		}
	}
	return -1, 0
}
