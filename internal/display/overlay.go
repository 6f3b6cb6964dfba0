package display

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"gocv.io/x/gocv"
)

// Annotation styling.
const (
	LineThickness = 2
	LabelScale    = 1.0
	LabelPrefix   = "Action: "
)

// LabelOrigin is the baseline origin of the action text.
var LabelOrigin = image.Point{X: 10, Y: 50}

var (
	faceColor    = rgba(colorful.Color{R: 0, G: 0, B: 1})
	contourColor = rgba(colorful.Color{R: 0, G: 1, B: 0})
	labelColor   = rgba(colorful.Color{R: 1, G: 0, B: 0})
)

func rgba(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0}
}

// DrawFaces outlines each face region on img.
func DrawFaces(img *gocv.Mat, faces []image.Rectangle) {
	for _, r := range faces {
		gocv.Rectangle(img, r, faceColor, LineThickness)
	}
}

// DrawContour outlines a single contour on img. Empty contours are ignored.
func DrawContour(img *gocv.Mat, contour []image.Point) {
	if len(contour) == 0 {
		return
	}
	pv := gocv.NewPointsVectorFromPoints([][]image.Point{contour})
	defer pv.Close()
	gocv.DrawContours(img, pv, -1, contourColor, LineThickness)
}

// DrawLabel writes "Action: <label>" in the top-left corner of img.
func DrawLabel(img *gocv.Mat, label string) {
	gocv.PutText(img, LabelPrefix+label, LabelOrigin, gocv.FontHersheySimplex, LabelScale, labelColor, LineThickness)
}
