// Package main provides a keyboard plugin for macOS. It translates fired
// action tokens into keystrokes via AppleScript, so gestures can drive any
// game or application that listens to the keyboard.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
)

// Request represents the input from the plugin executor.
type Request struct {
	Action  string          `json:"action"`
	Gesture string          `json:"gesture"`
	Config  json.RawMessage `json:"config"`
	Params  json.RawMessage `json:"params"`
}

// Response represents the output to the plugin executor.
type Response struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// pluginConfig allows a deployment to remap action tokens to keys.
type pluginConfig struct {
	Keys map[string]string `json:"keys"`
}

// defaultKeys maps action tokens to the keys most games expect.
var defaultKeys = map[string]string{
	"START_GAME":   "return",
	"JUMP":         "space",
	"PAUSE_TOGGLE": "p",
	"SHOOT":        "x",
	"RESTART":      "r",
	"ULTI":         "u",
}

// keyCodes maps named keys to macOS virtual key codes; everything else is
// sent as a literal keystroke.
var keyCodes = map[string]int{
	"return": 36,
	"space":  49,
	"escape": 53,
	"left":   123,
	"right":  124,
	"down":   125,
	"up":     126,
}

func main() {
	var req Request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		writeErrorResponse(fmt.Sprintf("failed to decode request: %v", err))
		return
	}

	keys := defaultKeys
	if len(req.Config) > 0 {
		var cfg pluginConfig
		if err := json.Unmarshal(req.Config, &cfg); err != nil {
			writeErrorResponse(fmt.Sprintf("failed to parse config: %v", err))
			return
		}
		for action, key := range cfg.Keys {
			keys[action] = key
		}
	}

	key, ok := keys[req.Action]
	if !ok {
		writeErrorResponse(fmt.Sprintf("no key bound for action: %s", req.Action))
		return
	}

	if err := press(key); err != nil {
		writeErrorResponse(fmt.Sprintf("action %s failed: %v", req.Action, err))
		return
	}

	writeSuccessResponse()
}

// press sends one key press via AppleScript.
func press(key string) error {
	var script string
	if code, ok := keyCodes[key]; ok {
		script = fmt.Sprintf(`tell application "System Events" to key code %d`, code)
	} else {
		script = fmt.Sprintf(`tell application "System Events" to keystroke "%s"`, key)
	}
	return runAppleScript(script)
}

// runAppleScript executes the given AppleScript via osascript.
func runAppleScript(script string) error {
	cmd := exec.Command("osascript", "-e", script)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("osascript failed: %w, output: %s", err, output)
	}
	return nil
}

// writeErrorResponse writes an error response to stdout.
func writeErrorResponse(errMsg string) {
	resp := Response{
		Success: false,
		Error:   errMsg,
	}
	json.NewEncoder(os.Stdout).Encode(resp)
}

// writeSuccessResponse writes a success response to stdout.
func writeSuccessResponse() {
	resp := Response{
		Success: true,
	}
	json.NewEncoder(os.Stdout).Encode(resp)
}
