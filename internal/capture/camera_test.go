package capture

import (
	"errors"
	"testing"
)

func TestNewCamera(t *testing.T) {
	tests := []struct {
		name     string
		deviceID int
	}{
		{name: "default device", deviceID: 0},
		{name: "device 1", deviceID: 1},
		{name: "device 2", deviceID: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(tt.deviceID)

			if cam == nil {
				t.Fatal("NewCamera returned nil")
			}

			if got := cam.FPS(); got != DefaultFPS {
				t.Errorf("FPS() = %d, want %d (default)", got, DefaultFPS)
			}

			if cam.IsOpen() {
				t.Error("camera should not be running initially")
			}
		})
	}
}

func TestCamera_SetFPS(t *testing.T) {
	cam := NewCamera(0)

	tests := []struct {
		name    string
		fps     int
		wantFPS int
	}{
		{name: "set to 10", fps: 10, wantFPS: 10},
		{name: "set to 30", fps: 30, wantFPS: 30},
		{name: "zero is ignored", fps: 0, wantFPS: 30},
		{name: "negative is ignored", fps: -5, wantFPS: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam.SetFPS(tt.fps)
			if got := cam.FPS(); got != tt.wantFPS {
				t.Errorf("FPS() = %d, want %d", got, tt.wantFPS)
			}
		})
	}
}

func TestCamera_ReadFrameWhenClosed(t *testing.T) {
	cam := NewCamera(0)

	_, err := cam.ReadFrame()
	if !errors.Is(err, ErrCameraNotOpen) {
		t.Errorf("ReadFrame() error = %v, want ErrCameraNotOpen", err)
	}
}

func TestMockCamera(t *testing.T) {
	t.Run("read before open fails", func(t *testing.T) {
		cam := NewMockCamera(nil, false)

		if _, err := cam.ReadFrame(); !errors.Is(err, ErrCameraNotOpen) {
			t.Errorf("ReadFrame() error = %v, want ErrCameraNotOpen", err)
		}
	})

	t.Run("open and close toggle state", func(t *testing.T) {
		cam := NewMockCamera(nil, false)

		if err := cam.Open(); err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if !cam.IsOpen() {
			t.Error("IsOpen() = false after Open")
		}

		if err := cam.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		if cam.IsOpen() {
			t.Error("IsOpen() = true after Close")
		}
	})

	t.Run("configured open error simulates a missing device", func(t *testing.T) {
		cam := NewMockCamera(nil, false)
		wantErr := errors.New("device busy")
		cam.SetOpenError(wantErr)

		if err := cam.Open(); !errors.Is(err, wantErr) {
			t.Errorf("Open() error = %v, want %v", err, wantErr)
		}
		if cam.IsOpen() {
			t.Error("camera should not report open after a failed Open")
		}
	})

	t.Run("empty frame list errors on read", func(t *testing.T) {
		cam := NewMockCamera(nil, false)
		if err := cam.Open(); err != nil {
			t.Fatal(err)
		}

		if _, err := cam.ReadFrame(); err == nil {
			t.Error("ReadFrame() should fail with no frames loaded")
		}
	})

	t.Run("implements Camera interface", func(t *testing.T) {
		var _ Camera = (*MockCamera)(nil)
	})
}
