//go:build !linux

package capture

import "gocv.io/x/gocv"

type v4l2Camera struct {
	device string
}

// NewV4L2Camera returns a Camera whose Open always fails with ErrUnsupportedPlatform.
func NewV4L2Camera(path string) Camera {
	return &v4l2Camera{device: path}
}

func (c *v4l2Camera) Open() error                   { return ErrUnsupportedPlatform }
func (c *v4l2Camera) Close() error                  { return nil }
func (c *v4l2Camera) ReadFrame() (*gocv.Mat, error) { return nil, ErrCameraNotOpen }
func (c *v4l2Camera) IsOpen() bool                  { return false }
