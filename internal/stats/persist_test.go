package stats

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPersist_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	agg := New()
	agg.IncTriggers()
	agg.IncTriggers()
	agg.IncTriggers()
	agg.IncSuccesses()
	agg.IncSuccesses()
	agg.IncFailures()

	written := agg.Snapshot()
	if err := WriteSnapshot(dir, written); err != nil {
		t.Fatalf("WriteSnapshot failed: %v", err)
	}

	loaded, err := LoadSnapshot(dir)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}

	if loaded.TotalTriggers != written.TotalTriggers {
		t.Errorf("total_triggers mismatch: wrote %d, read %d", written.TotalTriggers, loaded.TotalTriggers)
	}
	if loaded.SuccessfulCaptures != written.SuccessfulCaptures {
		t.Errorf("successful_captures mismatch: wrote %d, read %d", written.SuccessfulCaptures, loaded.SuccessfulCaptures)
	}
	if loaded.FailedCaptures != written.FailedCaptures {
		t.Errorf("failed_captures mismatch: wrote %d, read %d", written.FailedCaptures, loaded.FailedCaptures)
	}
	if !loaded.SessionStart.Equal(written.SessionStart) {
		t.Errorf("session_start mismatch: wrote %v, read %v", written.SessionStart, loaded.SessionStart)
	}

	// Recomputing the rate from the reloaded counters must match what
	// was written.
	recomputed := successRatePercent(loaded.SuccessfulCaptures, loaded.TotalTriggers)
	if recomputed != written.SuccessRatePercent {
		t.Errorf("recomputed rate %f differs from written %f", recomputed, written.SuccessRatePercent)
	}
}

func TestPersist_FileShape(t *testing.T) {
	dir := t.TempDir()

	agg := New()
	agg.IncTriggers()
	agg.IncSuccesses()
	if err := agg.Persist(dir); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}

	data, err := os.ReadFile(StatsFile(dir))
	if err != nil {
		t.Fatalf("failed to read stats file: %v", err)
	}

	content := string(data)
	for _, field := range []string{
		"total_triggers",
		"successful_captures",
		"failed_captures",
		"session_start",
		"uptime_seconds",
		"success_rate_percent",
		"current_status",
	} {
		if !strings.Contains(content, field) {
			t.Errorf("stats file missing field %q", field)
		}
	}
}

func TestPersist_LeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()

	if err := New().Persist(dir); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, statsFileName+".tmp")); !os.IsNotExist(err) {
		t.Error("temporary file should not remain after a successful persist")
	}
}

func TestLoadSnapshot_MissingFile(t *testing.T) {
	if _, err := LoadSnapshot(t.TempDir()); err == nil {
		t.Error("expected error loading from empty directory")
	}
}
