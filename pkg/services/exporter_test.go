package services

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Detrauxa/Otoma--Tracker/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type mockSnapshotWriter struct {
	captures []data.Capture
	at       time.Time
	calls    int
	err      error
}

func (m *mockSnapshotWriter) ReplaceSnapshot(captures []data.Capture, at time.Time) error {
	m.calls++
	m.captures = captures
	m.at = at
	return m.err
}

func TestExporterExport(t *testing.T) {
	tracker, _ := newTestTracker(t, sampleCatalog)
	require.NoError(t, tracker.SetCaptured("Tofu", true))

	writer := &mockSnapshotWriter{}
	exporter := NewExporter(tracker, writer, zaptest.NewLogger(t))
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	exporter.now = func() time.Time { return fixed }

	summary, err := exporter.Export()
	require.NoError(t, err)

	assert.Equal(t, data.Summary{Done: 1, Total: 6}, summary)
	assert.Equal(t, 1, writer.calls)
	assert.Len(t, writer.captures, 6)
	assert.Equal(t, fixed, writer.at)
}

func TestExporterPropagatesErrors(t *testing.T) {
	tracker, _ := newTestTracker(t, sampleCatalog)
	writer := &mockSnapshotWriter{err: errors.New("database locked")}

	_, err := NewExporter(tracker, writer, nil).Export()
	assert.ErrorIs(t, err, writer.err)
}

func TestExporterWithDuckDB(t *testing.T) {
	tracker, _ := newTestTracker(t, sampleCatalog)
	require.NoError(t, tracker.SetAllInGroup(data.Boss, true))

	repo, err := data.NewDuckDBRepository(filepath.Join(t.TempDir(), "captures.db"))
	require.NoError(t, err)
	defer repo.Close()

	_, err = NewExporter(tracker, repo, nil).Export()
	require.NoError(t, err)

	counts, err := repo.CategoryCounts()
	require.NoError(t, err)
	assert.Equal(t, data.Summary{Done: 2, Total: 2}, counts[data.Boss])
	assert.Equal(t, data.Summary{Done: 0, Total: 3}, counts[data.Monstres])
}
