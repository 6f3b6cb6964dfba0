// Package action maps per-frame detection outcomes to the displayed action label.
package action

// Label is the action shown for a frame.
type Label int

const (
	// UsingPhone is shown unless both a face and a hand were detected.
	UsingPhone Label = iota
	// Working is shown when a face and a hand are both visible.
	Working
)

// String returns the text rendered on the preview window.
func (l Label) String() string {
	switch l {
	case Working:
		return "Working"
	case UsingPhone:
		return "Using Phone"
	default:
		return "Unknown"
	}
}

// Classify returns the label for a frame. Only the face/hand pair is
// consulted; three of the four combinations collapse to UsingPhone.
func Classify(faceDetected, handDetected bool) Label {
	if faceDetected && handDetected {
		return Working
	}
	return UsingPhone
}
