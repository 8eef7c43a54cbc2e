package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ayusman/gestix/internal/app"
	"github.com/ayusman/gestix/internal/config"
	"github.com/ayusman/gestix/internal/detector"
	"github.com/ayusman/gestix/internal/gesture"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()

	cfg := config.Config{
		VoteFrames:    1,
		PinchRatio:    0.35,
		WaveWindow:    8,
		WaveAmplitude: 0.15,
	}
	a, err := app.New(cfg, nil)
	if err != nil {
		t.Fatalf("app.New() error = %v", err)
	}
	a.SetDetector(detector.NewMockDetector())

	return a
}

func TestServer_Health(t *testing.T) {
	s := New(Config{})

	t.Run("returns 200 with JSON response", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		rec := httptest.NewRecorder()

		s.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
		}

		var response map[string]interface{}
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		if response["status"] != "ok" {
			t.Errorf("expected status 'ok', got %v", response["status"])
		}
		if _, exists := response["uptime"]; !exists {
			t.Error("expected 'uptime' field in response")
		}
	})

	t.Run("only allows GET method", func(t *testing.T) {
		methods := []string{http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch}

		for _, method := range methods {
			req := httptest.NewRequest(method, "/api/health", nil)
			rec := httptest.NewRecorder()

			s.ServeHTTP(rec, req)

			if rec.Code != http.StatusMethodNotAllowed {
				t.Errorf("method %s: expected status %d, got %d", method, http.StatusMethodNotAllowed, rec.Code)
			}
		}
	})
}

func TestServer_State(t *testing.T) {
	a := newTestApp(t)
	s := New(Config{App: a})

	t.Run("reports running and current gesture without consuming", func(t *testing.T) {
		a.ProcessHands([]detector.Hand{detector.GunLandmarks()})

		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
			rec := httptest.NewRecorder()

			s.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
			}

			var response map[string]interface{}
			if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if response["running"] != true {
				t.Errorf("expected running true, got %v", response["running"])
			}
			if response["gesture"] != "Gun" {
				t.Errorf("read %d: expected gesture Gun, got %v", i, response["gesture"])
			}
		}

		// The gesture is still pending for the real consumer.
		if got := a.Gesture(); got != gesture.Gun {
			t.Errorf("Gesture() after state reads = %v, want Gun", got)
		}
	})

	t.Run("only allows GET method", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/state", nil)
		rec := httptest.NewRecorder()

		s.ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, rec.Code)
		}
	})
}

func TestServer_Action(t *testing.T) {
	a := newTestApp(t)
	s := New(Config{App: a})

	t.Run("consumes one gesture per poll", func(t *testing.T) {
		a.ProcessHands([]detector.Hand{detector.GunLandmarks()})

		poll := func() string {
			req := httptest.NewRequest(http.MethodPost, "/api/action", nil)
			rec := httptest.NewRecorder()
			s.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
			}

			var response map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			return response["action"]
		}

		if got := poll(); got != "SHOOT" {
			t.Errorf("first poll = %s, want SHOOT", got)
		}
		if got := poll(); got != "NONE" {
			t.Errorf("second poll = %s, want NONE", got)
		}
	})

	t.Run("only allows POST method", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/action", nil)
		rec := httptest.NewRecorder()

		s.ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, rec.Code)
		}
	})
}

func TestServer_NotFound(t *testing.T) {
	s := New(Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()

	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestServer_StaticFiles(t *testing.T) {
	tmpDir := t.TempDir()
	content := []byte("<html><body>gestix</body></html>")
	if err := os.WriteFile(filepath.Join(tmpDir, "index.html"), content, 0o644); err != nil {
		t.Fatalf("failed to write static file: %v", err)
	}

	s := New(Config{StaticDir: tmpDir})

	req := httptest.NewRequest(http.MethodGet, "/index.html", nil)
	rec := httptest.NewRecorder()

	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if rec.Body.String() != string(content) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
