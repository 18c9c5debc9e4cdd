// Package ledger owns the append-only status history of an interview.
// The history is persisted as a JSON array of {stage, status, timestamp}
// objects; that exact shape is read by other systems and must not change.
package ledger

import (
	"encoding/json"
	"fmt"
	"time"
)

// NotScheduled is returned by Current when there is no usable history.
const NotScheduled = "Not Scheduled"

type Entry struct {
	Stage     int    `json:"stage"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Parse decodes a serialized history. Missing or malformed history is
// treated as empty so a corrupt legacy value never blocks a transition.
func Parse(raw []byte) []Entry {
	if len(raw) == 0 {
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	return entries
}

// Append returns a new serialized history with one more entry. Stages
// are 1-based and contiguous; existing entries are never touched.
func Append(raw []byte, status string, at time.Time) ([]byte, error) {
	entries := Parse(raw)
	entries = append(entries, Entry{
		Stage:     len(entries) + 1,
		Status:    status,
		Timestamp: at.Format(time.RFC3339),
	})
	out, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("marshal status history: %w", err)
	}
	return out, nil
}

// Current returns the status of the entry with the latest timestamp,
// which is not necessarily the last appended one. Entries whose
// timestamp does not parse lose against any entry that does.
func Current(raw []byte) string {
	entries := Parse(raw)
	if len(entries) == 0 {
		return NotScheduled
	}

	best := 0
	var bestTime time.Time
	for i, e := range entries {
		ts, err := time.Parse(time.RFC3339, e.Timestamp)
		if err != nil {
			continue
		}
		if bestTime.IsZero() || ts.After(bestTime) {
			best = i
			bestTime = ts
		}
	}
	return entries[best].Status
}
