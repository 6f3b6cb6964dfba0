package capture

import (
	"testing"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

func TestMockCamera_Playback(t *testing.T) {
	frame1 := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame1.Close()
	frame2 := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame2.Close()

	cam := NewMockCamera([]*gocv.Mat{&frame1, &frame2}, false)

	if err := cam.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer cam.Close()

	f1, err := cam.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame() error = %v", err)
	}
	f1.Close()

	f2, err := cam.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame() error = %v", err)
	}
	f2.Close()

	// Third read should fail (no loop)
	if _, err = cam.ReadFrame(); err == nil {
		t.Error("expected error after all frames consumed")
	}
}

func TestMockCamera_Loop(t *testing.T) {
	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	cam := NewMockCamera([]*gocv.Mat{&frame}, true)
	cam.Open()
	defer cam.Close()

	for i := 0; i < 5; i++ {
		f, err := cam.ReadFrame()
		if err != nil {
			t.Fatalf("ReadFrame() iteration %d error = %v", i, err)
		}
		f.Close()
	}
}

func TestMockCamera_FailNextReads(t *testing.T) {
	frame := gocv.NewMatWithSize(48, 64, gocv.MatTypeCV8UC3)
	defer frame.Close()

	cam := NewMockCamera([]*gocv.Mat{&frame}, true)
	cam.FailNextReads(3)
	cam.Open()
	defer cam.Close()

	for i := 0; i < 3; i++ {
		if _, err := cam.ReadFrame(); errors.Cause(err) != ErrMockReadFailure {
			t.Fatalf("read %d: error = %v, want ErrMockReadFailure", i, err)
		}
	}

	f, err := cam.ReadFrame()
	if err != nil {
		t.Fatalf("read after failures: error = %v", err)
	}
	f.Close()

	if got := cam.Reads(); got != 4 {
		t.Errorf("Reads() = %d, want 4", got)
	}
}

func TestMockCamera_ReadAfterClose(t *testing.T) {
	frame := gocv.NewMatWithSize(48, 64, gocv.MatTypeCV8UC3)
	defer frame.Close()

	cam := NewMockCamera([]*gocv.Mat{&frame}, true)
	cam.Open()
	cam.Close()

	if _, err := cam.ReadFrame(); err != ErrCameraNotOpen {
		t.Errorf("ReadFrame() after Close error = %v, want ErrCameraNotOpen", err)
	}
	if got := cam.Reads(); got != 0 {
		t.Errorf("Reads() = %d, want 0 for reads on a closed camera", got)
	}
	if got := cam.Closes(); got != 1 {
		t.Errorf("Closes() = %d, want 1", got)
	}
}

func TestMockCamera_OpenError(t *testing.T) {
	cam := NewMockCamera(nil, false)
	want := errors.New("no such device")
	cam.SetOpenError(want)

	if err := cam.Open(); err != want {
		t.Errorf("Open() error = %v, want %v", err, want)
	}
	if cam.IsOpen() {
		t.Error("camera should not be open after a failed Open()")
	}
	if got := cam.Opens(); got != 0 {
		t.Errorf("Opens() = %d, want 0", got)
	}
}
