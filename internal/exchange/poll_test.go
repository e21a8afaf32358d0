package exchange

import (
	"testing"
	"time"

	"github.com/sevigo/review-assistant/internal/config"
)

func TestNextInterval(t *testing.T) {
	cfg := config.PollConfig{
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      2,
	}

	tests := []struct {
		name    string
		current time.Duration
		want    time.Duration
	}{
		{"doubles", 500 * time.Millisecond, time.Second},
		{"doubles again", 2 * time.Second, 4 * time.Second},
		{"capped at ceiling", 4 * time.Second, 5 * time.Second},
		{"stays at ceiling", 5 * time.Second, 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextInterval(tt.current, cfg); got != tt.want {
				t.Errorf("nextInterval(%s) = %s, want %s", tt.current, got, tt.want)
			}
		})
	}

	t.Run("multiplier of one keeps a fixed interval", func(t *testing.T) {
		fixed := cfg
		fixed.Multiplier = 1
		if got := nextInterval(time.Second, fixed); got != time.Second {
			t.Errorf("nextInterval with multiplier 1 = %s, want 1s", got)
		}
	})
}
