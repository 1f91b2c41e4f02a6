package session

import (
	"strings"
	"testing"
	"time"

	"github.com/aerialops/snaptrigger/internal/stats"
)

func TestRenderStatus_ContainsCounters(t *testing.T) {
	snap := stats.Snapshot{
		TotalTriggers:      12,
		SuccessfulCaptures: 10,
		FailedCaptures:     2,
		SessionStart:       time.Now(),
		UptimeSeconds:      3725,
		SuccessRatePercent: 83.3,
		CurrentStatus:      stats.StatusReady,
	}

	out := RenderStatus(snap, "/data/photos")

	for _, want := range []string{"12", "10", "2", "83.3%", "ready", "01:02:05", "/data/photos"} {
		if !strings.Contains(out, want) {
			t.Errorf("status block missing %q:\n%s", want, out)
		}
	}
}

func TestRenderStatus_ZeroTriggers(t *testing.T) {
	out := RenderStatus(stats.Snapshot{CurrentStatus: stats.StatusReady}, "/photos")

	if !strings.Contains(out, "0.0%") {
		t.Errorf("expected 0.0%% rate with no triggers:\n%s", out)
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{3600, "01:00:00"},
		{86399, "23:59:59"},
		{90061, "25:01:01"},
	}
	for _, tt := range tests {
		if got := FormatUptime(tt.seconds); got != tt.want {
			t.Errorf("FormatUptime(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
