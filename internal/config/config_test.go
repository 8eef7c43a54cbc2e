package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ayusman/gestix/internal/action"
	"github.com/ayusman/gestix/internal/gesture"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.VoteFrames != 2 {
		t.Errorf("VoteFrames = %d, want 2", cfg.VoteFrames)
	}
	if cfg.Debounce != 120*time.Millisecond {
		t.Errorf("Debounce = %v, want 120ms", cfg.Debounce)
	}
	if cfg.Staleness != 600*time.Millisecond {
		t.Errorf("Staleness = %v, want 600ms", cfg.Staleness)
	}
	if cfg.PinchRatio != 0.35 {
		t.Errorf("PinchRatio = %f, want 0.35", cfg.PinchRatio)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %s, want :8080", cfg.Addr)
	}
	if cfg.DBPath == "" {
		t.Error("DBPath should default to a path under the home directory")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("GESTIX_VOTE_FRAMES", "5")
	t.Setenv("GESTIX_DEBOUNCE", "300ms")
	t.Setenv("GESTIX_CAMERA_ID", "2")
	t.Setenv("GESTIX_DB", "/tmp/gestix-test.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.VoteFrames != 5 {
		t.Errorf("VoteFrames = %d, want 5", cfg.VoteFrames)
	}
	if cfg.Debounce != 300*time.Millisecond {
		t.Errorf("Debounce = %v, want 300ms", cfg.Debounce)
	}
	if cfg.CameraID != 2 {
		t.Errorf("CameraID = %d, want 2", cfg.CameraID)
	}
	if cfg.DBPath != "/tmp/gestix-test.db" {
		t.Errorf("DBPath = %s, want /tmp/gestix-test.db", cfg.DBPath)
	}
}

func TestConfig_Thresholds(t *testing.T) {
	cfg := Config{PinchRatio: 0.25}

	if got := cfg.Thresholds(); got.PinchRatio != 0.25 {
		t.Errorf("Thresholds().PinchRatio = %f, want 0.25", got.PinchRatio)
	}
}

func TestLoadBindings(t *testing.T) {
	t.Run("empty path returns the default table", func(t *testing.T) {
		table, err := LoadBindings("")
		if err != nil {
			t.Fatalf("LoadBindings() error = %v", err)
		}
		if table[gesture.Open] != action.Jump {
			t.Errorf("table[Open] = %s, want JUMP", table[gesture.Open])
		}
	})

	t.Run("file overrides win, unmentioned labels keep defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bindings.yaml")
		data := "bindings:\n  Victory: SHOOT\n  Wave: NONE\n"
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}

		table, err := LoadBindings(path)
		if err != nil {
			t.Fatalf("LoadBindings() error = %v", err)
		}

		if table[gesture.Victory] != action.Shoot {
			t.Errorf("table[Victory] = %s, want SHOOT", table[gesture.Victory])
		}
		if table[gesture.Wave] != action.NoAction {
			t.Errorf("table[Wave] = %s, want NONE", table[gesture.Wave])
		}
		if table[gesture.Open] != action.Jump {
			t.Errorf("table[Open] = %s, want JUMP", table[gesture.Open])
		}
	})

	t.Run("missing file is an error", func(t *testing.T) {
		if _, err := LoadBindings(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected an error for a missing bindings file")
		}
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("bindings: ["), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadBindings(path); err == nil {
			t.Error("expected an error for malformed yaml")
		}
	})
}
