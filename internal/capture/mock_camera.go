package capture

import (
	"sync"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// ErrMockReadFailure is returned by MockCamera for each injected read failure.
var ErrMockReadFailure = errors.New("mock camera: injected read failure")

// MockCamera plays back pre-recorded frames for testing
type MockCamera struct {
	frames   []*gocv.Mat
	index    int
	loop     bool
	failures int
	openErr  error
	mu       sync.Mutex
	running  bool

	opens  int
	closes int
	reads  int
}

func NewMockCamera(frames []*gocv.Mat, loop bool) *MockCamera {
	return &MockCamera{
		frames: frames,
		loop:   loop,
	}
}

// FailNextReads makes the next n calls to ReadFrame fail before playback resumes.
// A negative n fails every read.
func (c *MockCamera) FailNextReads(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures = n
}

// SetOpenError makes Open return err.
func (c *MockCamera) SetOpenError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.openErr = err
}

func (c *MockCamera) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.openErr != nil {
		return c.openErr
	}
	c.opens++
	c.running = true
	c.index = 0
	return nil
}

func (c *MockCamera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closes++
	c.running = false
	return nil
}

func (c *MockCamera) ReadFrame() (*gocv.Mat, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return nil, ErrCameraNotOpen
	}
	c.reads++

	if c.failures != 0 {
		if c.failures > 0 {
			c.failures--
		}
		return nil, ErrMockReadFailure
	}

	if len(c.frames) == 0 {
		return nil, errors.New("no frames available")
	}

	if c.index >= len(c.frames) {
		if c.loop {
			c.index = 0
		} else {
			return nil, errors.New("no more frames")
		}
	}

	// Clone the frame so the original isn't modified
	frame := c.frames[c.index].Clone()
	c.index++

	return &frame, nil
}

func (c *MockCamera) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Opens returns how many times Open succeeded.
func (c *MockCamera) Opens() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opens
}

// Closes returns how many times Close was called.
func (c *MockCamera) Closes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closes
}

// Reads returns how many ReadFrame calls reached an open camera.
func (c *MockCamera) Reads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads
}

// SetFrames replaces the frame sequence
func (c *MockCamera) SetFrames(frames []*gocv.Mat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = frames
	c.index = 0
}
