package ledger

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendStartsAtStageOne(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	raw, err := Append(nil, "Scheduled", now)
	require.NoError(t, err)

	entries := Parse(raw)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Stage)
	assert.Equal(t, "Scheduled", entries[0].Status)
	assert.Equal(t, now.Format(time.RFC3339), entries[0].Timestamp)
}

func TestAppendStagesAreContiguous(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	var raw []byte
	var err error
	for i, status := range []string{"Scheduled", "Rescheduled", "placed"} {
		raw, err = Append(raw, status, now.Add(time.Duration(i)*time.Hour))
		require.NoError(t, err)
	}

	entries := Parse(raw)
	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Stage)
	}
}

func TestAppendTreatsMalformedHistoryAsEmpty(t *testing.T) {
	for _, raw := range [][]byte{
		[]byte("not json"),
		[]byte(`{"stage":1}`),
		[]byte("null"),
	} {
		out, err := Append(raw, "Scheduled", time.Now())
		require.NoError(t, err)

		entries := Parse(out)
		require.Len(t, entries, 1)
		assert.Equal(t, 1, entries[0].Stage)
	}
}

func TestCurrentPicksLatestTimestampNotLastAppended(t *testing.T) {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	// Append order differs from timestamp order: the second entry
	// carries the latest timestamp.
	entries := []Entry{
		{Stage: 1, Status: "Scheduled", Timestamp: base.Format(time.RFC3339)},
		{Stage: 2, Status: "Rescheduled", Timestamp: base.Add(5 * time.Hour).Format(time.RFC3339)},
		{Stage: 3, Status: "cancelled", Timestamp: base.Add(time.Hour).Format(time.RFC3339)},
	}
	raw, err := json.Marshal(entries)
	require.NoError(t, err)

	assert.Equal(t, "Rescheduled", Current(raw))
}

func TestCurrentSentinelOnEmptyHistory(t *testing.T) {
	assert.Equal(t, NotScheduled, Current(nil))
	assert.Equal(t, NotScheduled, Current([]byte{}))
	assert.Equal(t, NotScheduled, Current([]byte("garbage")))
	assert.Equal(t, NotScheduled, Current([]byte("[]")))
}

func TestCurrentSkipsUnparseableTimestamps(t *testing.T) {
	entries := []Entry{
		{Stage: 1, Status: "Scheduled", Timestamp: "not-a-time"},
		{Stage: 2, Status: "Rescheduled", Timestamp: "2026-08-01T10:00:00Z"},
	}
	raw, err := json.Marshal(entries)
	require.NoError(t, err)

	assert.Equal(t, "Rescheduled", Current(raw))
}

func TestPersistedShape(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	raw, err := Append(nil, "Scheduled", now)
	require.NoError(t, err)

	// Other systems read this exact shape; keys must not drift.
	var generic []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &generic))
	require.Len(t, generic, 1)
	assert.Equal(t, float64(1), generic[0]["stage"])
	assert.Equal(t, "Scheduled", generic[0]["status"])
	assert.Equal(t, "2026-08-01T10:00:00Z", generic[0]["timestamp"])
}
