package capture

import "github.com/pkg/errors"

var (
	// ErrUnsupportedFormat is returned when a V4L2 device cannot stream MJPEG.
	ErrUnsupportedFormat = errors.New("device does not support MJPEG")
	// ErrUnsupportedPlatform is returned by the V4L2 camera on non-Linux systems.
	ErrUnsupportedPlatform = errors.New("V4L2 capture is only available on Linux")
)

// pixelFormatMJPEG is the V4L2 FourCC for motion JPEG ("MJPG").
const pixelFormatMJPEG = 'M' | 'J'<<8 | 'P'<<16 | 'G'<<24
