package data

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Detrauxa/Otoma--Tracker/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// countingDoc records how many times Save was called.
type countingDoc struct {
	*storage.File
	saves int
	err   error
}

func (d *countingDoc) Save(v any) error {
	d.saves++
	if d.err != nil {
		return d.err
	}
	return d.File.Save(v)
}

func newCountingDoc(t *testing.T, name string) *countingDoc {
	t.Helper()
	return &countingDoc{File: storage.NewFile(filepath.Join(t.TempDir(), name))}
}

func TestLoadProgressReconciles(t *testing.T) {
	doc := newCountingDoc(t, "progress.json")
	require.NoError(t, doc.File.Save(map[string]bool{"Tofu": true, "Old Monster": true}))

	known := []string{"Tofu", "Moskito", "Bouftou Royal"}
	p, res := LoadProgress(doc, known, zaptest.NewLogger(t))

	assert.Equal(t, storage.Ok, res.Status)
	snap := p.Snapshot()
	for _, name := range known {
		assert.Contains(t, snap, name, "%s should have an entry", name)
	}
	assert.True(t, p.IsCaptured("Tofu"))
	assert.False(t, p.IsCaptured("Moskito"))
	assert.True(t, p.IsCaptured("Old Monster"), "stale entries are preserved")
	assert.Equal(t, 0, doc.saves, "loading must not write")
}

func TestLoadProgressFromAbsentOrCorrupt(t *testing.T) {
	known := []string{"Tofu", "Arakne"}

	absent := newCountingDoc(t, "progress.json")
	p, res := LoadProgress(absent, known, nil)
	assert.Equal(t, storage.Absent, res.Status)
	assert.Equal(t, map[string]bool{"Tofu": false, "Arakne": false}, p.Snapshot())

	path := filepath.Join(t.TempDir(), "progress.json")
	require.NoError(t, os.WriteFile(path, []byte(`[true, false]`), 0o644))
	p, res = LoadProgress(storage.NewFile(path), known, nil)
	assert.Equal(t, storage.Corrupt, res.Status)
	assert.Equal(t, map[string]bool{"Tofu": false, "Arakne": false}, p.Snapshot())
}

func TestLoadProgressDropsNonBooleans(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Tofu": "yes", "Arakne": true, "Piou": 1}`), 0o644))

	p, res := LoadProgress(storage.NewFile(path), []string{"Tofu"}, zaptest.NewLogger(t))

	require.Equal(t, storage.Ok, res.Status)
	assert.Equal(t, map[string]bool{"Tofu": false, "Arakne": true}, p.Snapshot())
}

func TestProgressRoundTrip(t *testing.T) {
	doc := storage.NewFile(filepath.Join(t.TempDir(), "progress.json"))
	known := []string{"Tofu", "Moskito"}
	require.NoError(t, doc.Save(map[string]bool{"Ghost": true}))

	p, _ := LoadProgress(doc, known, nil)
	require.NoError(t, p.SetCaptured("Tofu", true))
	saved := p.Snapshot()

	reloaded, res := LoadProgress(doc, known, nil)
	require.Equal(t, storage.Ok, res.Status)
	assert.Equal(t, saved, reloaded.Snapshot())
	assert.Equal(t, map[string]bool{"Ghost": true, "Tofu": true, "Moskito": false}, reloaded.Snapshot())
}

func TestSetCapturedPersistsEveryCall(t *testing.T) {
	doc := newCountingDoc(t, "progress.json")
	p, _ := LoadProgress(doc, []string{"Tofu"}, nil)

	require.NoError(t, p.SetCaptured("Tofu", true))
	require.NoError(t, p.SetCaptured("Tofu", true))

	assert.True(t, p.IsCaptured("Tofu"))
	assert.Equal(t, 2, doc.saves)
}

func TestToggle(t *testing.T) {
	doc := newCountingDoc(t, "progress.json")
	p, _ := LoadProgress(doc, []string{"Tofu"}, nil)

	v, err := p.Toggle("Tofu")
	require.NoError(t, err)
	assert.True(t, v)

	v, err = p.Toggle("Tofu")
	require.NoError(t, err)
	assert.False(t, v)
	assert.False(t, p.IsCaptured("Tofu"))
}

func TestSetAllInGroupWritesOnce(t *testing.T) {
	doc := newCountingDoc(t, "progress.json")
	names := []string{"Tofu", "Moskito", "Arakne"}
	p, _ := LoadProgress(doc, names, nil)

	require.NoError(t, p.SetAllInGroup(names, true))

	for _, name := range names {
		assert.True(t, p.IsCaptured(name))
	}
	assert.Equal(t, 1, doc.saves)

	reloaded, _ := LoadProgress(doc.File, names, nil)
	assert.Equal(t, 3, reloaded.Done(names))
}

func TestSaveErrorPropagates(t *testing.T) {
	doc := newCountingDoc(t, "progress.json")
	doc.err = errors.New("disk full")
	p, _ := LoadProgress(doc, []string{"Tofu"}, nil)

	err := p.SetCaptured("Tofu", true)
	assert.ErrorIs(t, err, doc.err)

	err = p.SetAllInGroup([]string{"Tofu"}, false)
	assert.ErrorIs(t, err, doc.err)
}

func TestDoneCountsOnlyGivenNames(t *testing.T) {
	doc := newCountingDoc(t, "progress.json")
	require.NoError(t, doc.File.Save(map[string]bool{"Ghost": true, "Tofu": true}))
	p, _ := LoadProgress(doc, []string{"Tofu", "Moskito"}, nil)

	assert.Equal(t, 1, p.Done([]string{"Tofu", "Moskito"}))
	assert.Equal(t, 0, p.Done([]string{"Never Seen"}))
}
