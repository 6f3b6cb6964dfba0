package display

import (
	"sync"
	"time"

	"gocv.io/x/gocv"
)

// MockDisplay records what is shown and replays a scripted key sequence.
// Once the script runs out PollKey returns -1.
type MockDisplay struct {
	keys   []int
	shown  int
	polls  int
	closes int
	closed bool
	// UsedAfterClose is set if Show or PollKey is called after Close.
	UsedAfterClose bool
	// OnShow, if set, is called with each frame passed to Show.
	OnShow func(frame *gocv.Mat)
	mu     sync.Mutex
}

// NewMockDisplay creates a MockDisplay that returns keys in order from PollKey.
func NewMockDisplay(keys ...int) *MockDisplay {
	return &MockDisplay{keys: keys}
}

func (d *MockDisplay) Show(frame *gocv.Mat) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		d.UsedAfterClose = true
		return
	}
	d.shown++
	if d.OnShow != nil {
		d.OnShow(frame)
	}
}

func (d *MockDisplay) PollKey(delay time.Duration) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		d.UsedAfterClose = true
		return -1
	}
	d.polls++
	if len(d.keys) == 0 {
		return -1
	}
	key := d.keys[0]
	d.keys = d.keys[1:]
	return key
}

func (d *MockDisplay) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closes++
	d.closed = true
	return nil
}

// Shown returns how many frames were shown.
func (d *MockDisplay) Shown() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shown
}

// Polls returns how many times PollKey was called.
func (d *MockDisplay) Polls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.polls
}

// Closes returns how many times Close was called.
func (d *MockDisplay) Closes() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closes
}
