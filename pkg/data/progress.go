package data

import (
	"encoding/json"
	"fmt"
	"maps"

	"github.com/Detrauxa/Otoma--Tracker/pkg/storage"
	"go.uber.org/zap"
)

// ProgressStore owns the captured flags and is the only thing that writes
// progress.json. Every mutation is persisted before it returns.
type ProgressStore struct {
	doc      storage.Document
	captured map[string]bool
	logger   *zap.Logger
}

// LoadProgress reads the persisted progress and adds a false entry for each
// known name that has none. Entries for names outside known are kept.
func LoadProgress(doc storage.Document, known []string, logger *zap.Logger) (*ProgressStore, storage.Result) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var raw map[string]json.RawMessage
	res := doc.Load(&raw)
	logLoad(logger, "progress", res)

	captured := make(map[string]bool, len(raw)+len(known))
	for name, value := range raw {
		var v bool
		if err := json.Unmarshal(value, &v); err != nil {
			logger.Debug("dropping non-boolean progress entry", zap.String("name", name))
			continue
		}
		captured[name] = v
	}

	for _, name := range known {
		if _, ok := captured[name]; !ok {
			captured[name] = false
		}
	}

	return &ProgressStore{doc: doc, captured: captured, logger: logger}, res
}

func (p *ProgressStore) IsCaptured(name string) bool {
	return p.captured[name]
}

// SetCaptured sets one flag and persists the whole map.
func (p *ProgressStore) SetCaptured(name string, captured bool) error {
	p.captured[name] = captured
	return p.save()
}

// Toggle flips one flag and returns its new value.
func (p *ProgressStore) Toggle(name string) (bool, error) {
	v := !p.captured[name]
	if err := p.SetCaptured(name, v); err != nil {
		return v, err
	}
	return v, nil
}

// SetAllInGroup applies the same flag to every name and persists once.
func (p *ProgressStore) SetAllInGroup(names []string, captured bool) error {
	for _, name := range names {
		p.captured[name] = captured
	}
	return p.save()
}

// Done counts the captured names among names. Names without an entry count
// as not captured.
func (p *ProgressStore) Done(names []string) int {
	done := 0
	for _, name := range names {
		if p.captured[name] {
			done++
		}
	}
	return done
}

// Snapshot returns a copy of the progress map.
func (p *ProgressStore) Snapshot() map[string]bool {
	return maps.Clone(p.captured)
}

func (p *ProgressStore) save() error {
	if err := p.doc.Save(p.captured); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	p.logger.Debug("progress saved", zap.Int("entries", len(p.captured)))
	return nil
}
