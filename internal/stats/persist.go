package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const statsFileName = "session_stats.json"

// StatsFile returns the path of the statistics file inside dir.
func StatsFile(dir string) string {
	return filepath.Join(dir, statsFileName)
}

// Persist writes the current snapshot to session_stats.json in dir.
// The write is atomic: data goes to a temporary file first, then is
// renamed into place, so a crash mid-write never leaves a torn file.
func (a *Aggregator) Persist(dir string) error {
	return WriteSnapshot(dir, a.Snapshot())
}

// WriteSnapshot writes an already-taken snapshot to session_stats.json in dir.
func WriteSnapshot(dir string, snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal statistics: %w", err)
	}

	target := StatsFile(dir)
	tmp := target + ".tmp"

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// LoadSnapshot reads a previously persisted snapshot from dir.
func LoadSnapshot(dir string) (Snapshot, error) {
	data, err := os.ReadFile(StatsFile(dir))
	if err != nil {
		return Snapshot{}, fmt.Errorf("read statistics file: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("parse statistics file: %w", err)
	}

	return snap, nil
}
