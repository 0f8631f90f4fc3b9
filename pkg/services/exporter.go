package services

import (
	"fmt"
	"time"

	"github.com/Detrauxa/Otoma--Tracker/pkg/data"
	"go.uber.org/zap"
)

// SnapshotWriter is the part of the export repository the exporter needs.
type SnapshotWriter interface {
	ReplaceSnapshot(captures []data.Capture, at time.Time) error
}

// Exporter copies the current checklist into an analytics store.
type Exporter struct {
	tracker *Tracker
	writer  SnapshotWriter
	logger  *zap.Logger
	now     func() time.Time
}

func NewExporter(tracker *Tracker, writer SnapshotWriter, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{tracker: tracker, writer: writer, logger: logger, now: time.Now}
}

// Export writes one row per catalog entry and returns the exported summary.
func (e *Exporter) Export() (data.Summary, error) {
	captures := e.tracker.Captures()
	if err := e.writer.ReplaceSnapshot(captures, e.now()); err != nil {
		return data.Summary{}, fmt.Errorf("export captures: %w", err)
	}

	summary := e.tracker.Summary()
	e.logger.Info("captures exported",
		zap.Int("rows", len(captures)),
		zap.Int("captured", summary.Done),
	)
	return summary, nil
}
