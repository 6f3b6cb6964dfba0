//go:build linux

package capture

import (
	"sync"

	"github.com/blackjack/webcam"
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// v4l2FrameTimeout is how long ReadFrame waits for the driver, in seconds.
const v4l2FrameTimeout = 1

// v4l2Camera reads MJPEG frames straight from a V4L2 device node and decodes
// them with OpenCV. It exists for devices that the OpenCV backend cannot
// address by index, such as secondary nodes of multi-sensor cameras.
type v4l2Camera struct {
	device  string
	cam     *webcam.Webcam
	mu      sync.Mutex
	running bool
}

// NewV4L2Camera creates a Camera backed by the V4L2 device at path (e.g. /dev/video0).
func NewV4L2Camera(path string) Camera {
	return &v4l2Camera{device: path}
}

func (c *v4l2Camera) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return nil
	}

	cam, err := webcam.Open(c.device)
	if err != nil {
		return errors.Wrapf(err, "open %s", c.device)
	}

	if _, ok := cam.GetSupportedFormats()[pixelFormatMJPEG]; !ok {
		cam.Close()
		return errors.Wrapf(ErrUnsupportedFormat, "open %s", c.device)
	}

	// Keep the driver's preferred size; only the pixel format is forced.
	sizes := cam.GetSupportedFrameSizes(pixelFormatMJPEG)
	if len(sizes) == 0 {
		cam.Close()
		return errors.Errorf("open %s: no MJPEG frame sizes reported", c.device)
	}
	size := sizes[0]
	if _, _, _, err := cam.SetImageFormat(pixelFormatMJPEG, size.MaxWidth, size.MaxHeight); err != nil {
		cam.Close()
		return errors.Wrap(err, "set image format")
	}

	if err := cam.StartStreaming(); err != nil {
		cam.Close()
		return errors.Wrap(err, "start streaming")
	}

	c.cam = cam
	c.running = true
	return nil
}

func (c *v4l2Camera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running || c.cam == nil {
		c.running = false
		return nil
	}

	c.cam.StopStreaming()
	err := c.cam.Close()
	c.cam = nil
	c.running = false

	return err
}

func (c *v4l2Camera) ReadFrame() (*gocv.Mat, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running || c.cam == nil {
		return nil, ErrCameraNotOpen
	}

	err := c.cam.WaitForFrame(v4l2FrameTimeout)
	switch err.(type) {
	case nil:
	case *webcam.Timeout:
		return nil, errors.Wrap(err, "wait for frame")
	default:
		return nil, errors.Wrap(err, "frame wait failed")
	}

	buf, err := c.cam.ReadFrame()
	if err != nil {
		return nil, errors.Wrap(err, "read frame failed")
	}
	if len(buf) == 0 {
		return nil, errors.New("captured frame is empty")
	}

	mat, err := gocv.IMDecode(buf, gocv.IMReadColor)
	if err != nil {
		return nil, errors.Wrap(err, "decode frame")
	}
	if mat.Empty() {
		mat.Close()
		return nil, errors.New("decoded frame is empty")
	}

	return &mat, nil
}

func (c *v4l2Camera) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.running
}
