// Package display provides the live preview surface and frame annotations.
package display

import (
	"sync"
	"time"

	"gocv.io/x/gocv"
)

// DefaultTitle is the preview window title.
const DefaultTitle = "Action Classification - Live Feed"

// Display presents annotated frames and reports key presses.
type Display interface {
	// Show draws frame on the display surface.
	Show(frame *gocv.Mat)

	// PollKey waits up to delay for a key press and returns its code, or -1.
	PollKey(delay time.Duration) int

	// Close destroys the display surface.
	Close() error
}

// Window is a Display backed by an OpenCV HighGUI window.
type Window struct {
	window *gocv.Window
	mu     sync.Mutex
}

// NewWindow opens a HighGUI window with the given title.
func NewWindow(title string) *Window {
	return &Window{window: gocv.NewWindow(title)}
}

// Show renders frame in the window. It is a no-op once the window is closed.
func (w *Window) Show(frame *gocv.Mat) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.window == nil || frame == nil || frame.Empty() {
		return
	}
	w.window.IMShow(*frame)
}

// PollKey pumps the HighGUI event loop for delay and returns the pressed key.
func (w *Window) PollKey(delay time.Duration) int {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.window == nil {
		return -1
	}
	ms := int(delay / time.Millisecond)
	if ms < 1 {
		ms = 1
	}
	return w.window.WaitKey(ms)
}

// Close destroys the window. Calling Close more than once is safe.
func (w *Window) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.window == nil {
		return nil
	}
	err := w.window.Close()
	w.window = nil
	return err
}

// IsQuitKey reports whether key (as returned by PollKey) is the quit key.
// Only the low byte is compared, matching HighGUI key codes with modifiers.
func IsQuitKey(key int) bool {
	return key >= 0 && key&0xFF == 'q'
}
