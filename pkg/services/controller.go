package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Detrauxa/Otoma--Tracker/pkg/config"
	"github.com/Detrauxa/Otoma--Tracker/pkg/data"
	"github.com/Detrauxa/Otoma--Tracker/pkg/filter"
	"github.com/Detrauxa/Otoma--Tracker/pkg/storage"
	"go.uber.org/zap"
)

// Tracker is the application context: the catalog and the two stores, built
// once at startup. The view goes through its methods and never touches the
// stores' maps.
type Tracker struct {
	catalog  *data.Catalog
	progress *data.ProgressStore
	settings *data.SettingsStore
	logger   *zap.Logger

	// Seeded is set when this run created the template catalog.
	Seeded bool
}

// NewTracker seeds the catalog if needed, then loads catalog, settings and
// progress from paths, in that order.
func NewTracker(paths config.Paths, logger *zap.Logger) (*Tracker, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	seeded, err := data.SeedCatalog(paths.Catalog)
	if err != nil {
		return nil, err
	}
	if seeded {
		logger.Info("catalog template created", zap.String("path", paths.Catalog))
	}

	catalog, _ := data.LoadCatalog(storage.NewFile(paths.Catalog), logger)
	settings, _ := data.LoadSettings(storage.NewFile(paths.Settings), logger)
	progress, _ := data.LoadProgress(storage.NewFile(paths.Progress), catalog.All(), logger)

	logger.Info("tracker loaded",
		zap.Int("monsters", catalog.Total()),
		zap.String("theme", string(settings.Theme())),
	)

	return &Tracker{
		catalog:  catalog,
		progress: progress,
		settings: settings,
		logger:   logger,
		Seeded:   seeded,
	}, nil
}

func (t *Tracker) Catalog() *data.Catalog {
	return t.catalog
}

func (t *Tracker) Theme() data.Theme {
	return t.settings.Theme()
}

func (t *Tracker) SetTheme(theme data.Theme) error {
	return t.settings.SetTheme(theme)
}

func (t *Tracker) ToggleTheme() (data.Theme, error) {
	return t.settings.ToggleTheme()
}

// IsOpen returns the persisted open flag of a category.
func (t *Tracker) IsOpen(cat data.Category) bool {
	return t.settings.IsOpen(cat)
}

func (t *Tracker) ToggleCategory(cat data.Category) (bool, error) {
	return t.settings.ToggleCategory(cat)
}

func (t *Tracker) IsCaptured(name string) bool {
	return t.progress.IsCaptured(name)
}

func (t *Tracker) ToggleCaptured(name string) (bool, error) {
	return t.progress.Toggle(name)
}

func (t *Tracker) SetCaptured(name string, captured bool) error {
	return t.progress.SetCaptured(name, captured)
}

// SetAllInGroup marks every monster of a category and persists once.
func (t *Tracker) SetAllInGroup(cat data.Category, captured bool) error {
	names := t.catalog.Names(cat)
	if names == nil {
		return fmt.Errorf("%w: %s", data.ErrUnknownCategory, cat)
	}
	return t.progress.SetAllInGroup(names, captured)
}

// Search applies a query against the catalog and the persisted open flags.
func (t *Tracker) Search(query string) filter.Result {
	return filter.Apply(t.catalog, query, t.settings)
}

// Suggest returns catalog names close to a query that matched nothing.
func (t *Tracker) Suggest(query string) []string {
	return filter.Suggest(query, t.catalog.All())
}

// Summary counts captured catalog entries against the catalog size.
func (t *Tracker) Summary() data.Summary {
	s := data.Summary{Total: t.catalog.Total()}
	for _, cat := range data.Categories {
		s.Done += t.progress.Done(t.catalog.Names(cat))
	}
	return s
}

func (t *Tracker) CategorySummary(cat data.Category) data.Summary {
	names := t.catalog.Names(cat)
	return data.Summary{Done: t.progress.Done(names), Total: len(names)}
}

// Captures lists every catalog entry with its flag, in display order.
func (t *Tracker) Captures() []data.Capture {
	captures := make([]data.Capture, 0, t.catalog.Total())
	for _, cat := range data.Categories {
		for _, name := range t.catalog.Names(cat) {
			captures = append(captures, data.Capture{
				Category: cat,
				Name:     name,
				Captured: t.progress.IsCaptured(name),
			})
		}
	}
	return captures
}

// UnknownMonsterError carries close matches for a name not in the catalog.
type UnknownMonsterError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownMonsterError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown monster %q", e.Name)
	}
	return fmt.Sprintf("unknown monster %q, did you mean: %s?", e.Name, strings.Join(e.Suggestions, ", "))
}

func (e *UnknownMonsterError) Unwrap() error {
	return data.ErrUnknownMonster
}

// ResolveName finds the catalog name for user input: exact match first,
// then a unique case-insensitive match.
func (t *Tracker) ResolveName(input string) (string, error) {
	input = strings.TrimSpace(input)
	if _, ok := t.catalog.CategoryOf(input); ok {
		return input, nil
	}

	var found []string
	for _, name := range t.catalog.All() {
		if strings.EqualFold(name, input) {
			found = append(found, name)
		}
	}
	if len(found) == 1 {
		return found[0], nil
	}

	return "", &UnknownMonsterError{Name: input, Suggestions: t.Suggest(input)}
}

// IsUnknownMonster reports whether err is about a name outside the catalog.
func IsUnknownMonster(err error) bool {
	return errors.Is(err, data.ErrUnknownMonster)
}
