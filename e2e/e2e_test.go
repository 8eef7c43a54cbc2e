package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ayusman/gestix/internal/app"
	"github.com/ayusman/gestix/internal/config"
	"github.com/ayusman/gestix/internal/detector"
	"github.com/ayusman/gestix/internal/gesture"
	"github.com/ayusman/gestix/internal/server"
	"github.com/ayusman/gestix/internal/store"
)

func TestE2E_CompleteWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "data.db")

	s, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	cfg := config.Config{
		VoteFrames:    3,
		PinchRatio:    0.35,
		WaveWindow:    8,
		WaveAmplitude: 0.15,
	}
	application, err := app.New(cfg, s)
	if err != nil {
		t.Fatalf("app.New() error = %v", err)
	}
	application.SetDetector(detector.NewMockDetector())

	srv := server.New(server.Config{App: application})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	client := ts.Client()

	// Two Open frames followed by three Gun frames with a three-frame vote
	// window: the Gun majority settles on the last frame and is delivered
	// to the consumer exactly once.
	t.Run("SettleAndConsume", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			application.ProcessHands([]detector.Hand{detector.OpenPalmLandmarks()})
		}
		for i := 0; i < 3; i++ {
			application.ProcessHands([]detector.Hand{detector.GunLandmarks()})
		}

		if got := application.Gesture(); got != gesture.Gun {
			t.Fatalf("Gesture() = %v, want Gun", got)
		}
		if got := application.Gesture(); got != gesture.None {
			t.Errorf("second Gesture() = %v, want None after consume", got)
		}
	})

	t.Run("RemapBindingOverAPI", func(t *testing.T) {
		resp, err := client.Post(
			ts.URL+"/api/bindings",
			"application/json",
			strings.NewReader(`{"gesture": "Gun", "action": "ULTI"}`),
		)
		if err != nil {
			t.Fatalf("create binding error = %v", err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusCreated)
		}
	})

	t.Run("RemappedActionFires", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			application.ProcessHands([]detector.Hand{detector.GunLandmarks()})
		}

		resp, err := client.Post(ts.URL+"/api/action", "application/json", nil)
		if err != nil {
			t.Fatalf("poll action error = %v", err)
		}
		defer resp.Body.Close()

		var body map[string]string
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["action"] != "ULTI" {
			t.Errorf("action = %s, want ULTI", body["action"])
		}
	})

	t.Run("FiredActionIsLogged", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/events")
		if err != nil {
			t.Fatalf("list events error = %v", err)
		}
		defer resp.Body.Close()

		var body struct {
			Events []struct {
				Gesture string `json:"gesture"`
				Action  string `json:"action"`
			} `json:"events"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}

		if len(body.Events) != 1 {
			t.Fatalf("got %d events, want 1", len(body.Events))
		}
		if body.Events[0].Gesture != "Gun" || body.Events[0].Action != "ULTI" {
			t.Errorf("logged event = %+v", body.Events[0])
		}
	})

	t.Run("APIStillWorks", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/health")
		if err != nil {
			t.Fatalf("health check error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("health check failed after app operations")
		}
	})
}
