package ws

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseTypeFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want map[string]bool
	}{
		{"", nil},
		{"  ", nil},
		{",", nil},
		{"resolution", map[string]bool{"resolution": true}},
		{"resolution,heartbeat", map[string]bool{"resolution": true, "heartbeat": true}},
		{" resolution , log ", map[string]bool{"resolution": true, "log": true}},
	}

	for _, tc := range tests {
		got := parseTypeFilter(tc.raw)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("parseTypeFilter(%q) mismatch (-want +got):\n%s", tc.raw, diff)
		}
	}
}
