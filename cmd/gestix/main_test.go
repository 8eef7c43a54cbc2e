package main

import "testing"

func TestSettingsURL(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":8080", "http://localhost:8080"},
		{"127.0.0.1:9000", "http://127.0.0.1:9000"},
		{"gestix.local:80", "http://gestix.local:80"},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			if got := settingsURL(tt.addr); got != tt.want {
				t.Errorf("settingsURL(%s) = %s, want %s", tt.addr, got, tt.want)
			}
		})
	}
}
