package detector

import (
	"sync"

	"gocv.io/x/gocv"
)

// MockFaceDetector is a test implementation of the FaceDetector interface.
// It allows tests to control the detection results.
type MockFaceDetector struct {
	result FaceResult
	calls  int
	closes int
	mu     sync.Mutex
}

// NewMockFaceDetector creates a new MockFaceDetector instance.
func NewMockFaceDetector() *MockFaceDetector {
	return &MockFaceDetector{}
}

// SetResult sets the result that will be returned by DetectFaces.
func (m *MockFaceDetector) SetResult(result FaceResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.result = result
}

// DetectFaces returns the pre-configured result.
func (m *MockFaceDetector) DetectFaces(gray gocv.Mat) FaceResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.result
}

// Calls returns how many times DetectFaces was called.
func (m *MockFaceDetector) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Close records the call.
func (m *MockFaceDetector) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closes++
	return nil
}

// Closes returns how many times Close was called.
func (m *MockFaceDetector) Closes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closes
}

// MockHandDetector is a test implementation of the HandDetector interface.
type MockHandDetector struct {
	result HandResult
	calls  int
	mu     sync.Mutex
}

// NewMockHandDetector creates a new MockHandDetector instance.
func NewMockHandDetector() *MockHandDetector {
	return &MockHandDetector{}
}

// SetResult sets the result that will be returned by DetectHand.
func (m *MockHandDetector) SetResult(result HandResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.result = result
}

// DetectHand returns the pre-configured result.
func (m *MockHandDetector) DetectHand(frame gocv.Mat) HandResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.result
}

// Calls returns how many times DetectHand was called.
func (m *MockHandDetector) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Close is a no-op for the mock detector.
func (m *MockHandDetector) Close() error {
	return nil
}
