package capture

import "gocv.io/x/gocv"

// flipHorizontal is the OpenCV flip code for mirroring around the vertical axis.
const flipHorizontal = 1

// Mirror returns a horizontally flipped copy of src so the preview behaves
// like a mirror. The caller owns the returned Mat.
func Mirror(src gocv.Mat) gocv.Mat {
	dst := gocv.NewMat()
	gocv.Flip(src, &dst, flipHorizontal)
	return dst
}
