package plugin

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// writeScriptPlugin creates a complete plugin (manifest plus executable
// script) under dir.
func writeScriptPlugin(t *testing.T, dir, name string, actions []string, script string) {
	t.Helper()

	pluginDir := filepath.Join(dir, name)
	if err := os.MkdirAll(pluginDir, 0o755); err != nil {
		t.Fatal(err)
	}

	manifest := Manifest{
		Name:       name,
		Version:    "1.0.0",
		Executable: "run.sh",
		Actions:    actions,
	}
	data, err := json.Marshal(manifest)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(pluginDir, "plugin.json"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	content := "#!/bin/sh\n" + script + "\n"
	if err := os.WriteFile(filepath.Join(pluginDir, "run.sh"), []byte(content), 0o755); err != nil {
		t.Fatal(err)
	}
}

func TestDispatcher_Dispatch(t *testing.T) {
	t.Run("delivers to plugins declaring the action", func(t *testing.T) {
		dir := t.TempDir()
		marker := filepath.Join(dir, "fired")
		writeScriptPlugin(t, dir, "keyboard", []string{"SHOOT"},
			`touch `+marker+`; echo '{"success": true}'`)
		writeScriptPlugin(t, dir, "notifier", []string{"ULTI"},
			`touch `+filepath.Join(dir, "wrong")+`; echo '{"success": true}'`)

		m := NewManager(dir)
		if err := m.Discover(); err != nil {
			t.Fatal(err)
		}

		d := NewDispatcher(m, nil)
		if err := d.Dispatch("SHOOT", "Gun"); err != nil {
			t.Fatalf("Dispatch() error = %v", err)
		}

		if _, err := os.Stat(marker); err != nil {
			t.Error("declaring plugin was not invoked")
		}
		if _, err := os.Stat(filepath.Join(dir, "wrong")); err == nil {
			t.Error("non-declaring plugin was invoked")
		}
	})

	t.Run("one failing plugin does not stop the rest", func(t *testing.T) {
		dir := t.TempDir()
		marker := filepath.Join(dir, "fired")
		// Discovery order is map order; make both declare the action so
		// the good one must run regardless.
		writeScriptPlugin(t, dir, "broken", []string{"JUMP"}, `exit 1`)
		writeScriptPlugin(t, dir, "working", []string{"JUMP"},
			`touch `+marker+`; echo '{"success": true}'`)

		m := NewManager(dir)
		if err := m.Discover(); err != nil {
			t.Fatal(err)
		}

		d := NewDispatcher(m, nil)
		if err := d.Dispatch("JUMP", "Open"); err == nil {
			t.Error("Dispatch() should surface the plugin failure")
		}

		if _, err := os.Stat(marker); err != nil {
			t.Error("working plugin was not invoked")
		}
	})

	t.Run("no declaring plugins is a no-op", func(t *testing.T) {
		m := NewManager(t.TempDir())
		if err := m.Discover(); err != nil {
			t.Fatal(err)
		}

		d := NewDispatcher(m, nil)
		if err := d.Dispatch("RESTART", "ThumbUp"); err != nil {
			t.Errorf("Dispatch() error = %v", err)
		}
	})
}
