package ctl

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    time.Duration
		want string
	}{
		{45 * time.Second, "45s"},
		{2 * time.Minute, "2m 0s"},
		{2*time.Hour + 14*time.Minute + 8*time.Second, "2h 14m 8s"},
		{0, "0s"},
	}

	for _, tc := range tests {
		if got := formatDuration(tc.d); got != tc.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	t.Parallel()

	if got := padRight("US", 6); got != "US    " {
		t.Errorf("padRight = %q", got)
	}
	// Already wide enough: unchanged.
	if got := padRight("EU_868", 4); got != "EU_868" {
		t.Errorf("padRight = %q", got)
	}
}
