package data

import (
	"encoding/json"
	"fmt"
	"maps"
	"strings"

	"github.com/Detrauxa/Otoma--Tracker/pkg/storage"
	"go.uber.org/zap"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme accepts "dark" or "light" in any case.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeDark:
		return ThemeDark, nil
	case ThemeLight:
		return ThemeLight, nil
	}
	return "", fmt.Errorf("invalid theme %q: expected dark or light", s)
}

func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Settings is the persisted UI preferences document.
type Settings struct {
	Theme          Theme           `json:"theme"`
	CategoriesOpen map[string]bool `json:"categories_open"`
}

func DefaultSettings() Settings {
	return Settings{
		Theme:          ThemeDark,
		CategoriesOpen: map[string]bool{},
	}
}

// SettingsStore owns settings.json. Every mutation rewrites the full document.
type SettingsStore struct {
	doc      storage.Document
	settings Settings
	logger   *zap.Logger

	// Top-level keys the tracker does not use, written back untouched.
	extra map[string]json.RawMessage
}

// LoadSettings reads the settings document, keeping whatever fields are
// usable and defaulting the rest.
func LoadSettings(doc storage.Document, logger *zap.Logger) (*SettingsStore, storage.Result) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var raw map[string]json.RawMessage
	res := doc.Load(&raw)
	logLoad(logger, "settings", res)

	s := DefaultSettings()

	extra := make(map[string]json.RawMessage)
	for key, value := range raw {
		if key != "theme" && key != "categories_open" {
			extra[key] = value
		}
	}

	var theme string
	if err := json.Unmarshal(raw["theme"], &theme); err == nil {
		if t, err := ParseTheme(theme); err == nil {
			s.Theme = t
		}
	}

	var open map[string]json.RawMessage
	if err := json.Unmarshal(raw["categories_open"], &open); err == nil {
		for cat, value := range open {
			var v bool
			if err := json.Unmarshal(value, &v); err == nil {
				s.CategoriesOpen[cat] = v
			}
		}
	}

	return &SettingsStore{doc: doc, settings: s, extra: extra, logger: logger}, res
}

func (s *SettingsStore) Theme() Theme {
	return s.settings.Theme
}

func (s *SettingsStore) SetTheme(t Theme) error {
	s.settings.Theme = t
	return s.save()
}

// ToggleTheme switches between dark and light and returns the new theme.
func (s *SettingsStore) ToggleTheme() (Theme, error) {
	t := s.settings.Theme.Toggle()
	return t, s.SetTheme(t)
}

// IsOpen returns the persisted state of a category. Categories never
// toggled are open.
func (s *SettingsStore) IsOpen(cat Category) bool {
	open, ok := s.settings.CategoriesOpen[string(cat)]
	return !ok || open
}

func (s *SettingsStore) SetCategoryOpen(cat Category, open bool) error {
	s.settings.CategoriesOpen[string(cat)] = open
	return s.save()
}

// ToggleCategory flips a category between open and closed and returns the
// new state.
func (s *SettingsStore) ToggleCategory(cat Category) (bool, error) {
	open := !s.IsOpen(cat)
	return open, s.SetCategoryOpen(cat, open)
}

// Snapshot returns a copy of the current settings.
func (s *SettingsStore) Snapshot() Settings {
	return Settings{
		Theme:          s.settings.Theme,
		CategoriesOpen: maps.Clone(s.settings.CategoriesOpen),
	}
}

func (s *SettingsStore) save() error {
	out := make(map[string]any, len(s.extra)+2)
	for key, value := range s.extra {
		out[key] = value
	}
	out["theme"] = s.settings.Theme
	out["categories_open"] = s.settings.CategoriesOpen

	if err := s.doc.Save(out); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	s.logger.Debug("settings saved", zap.String("theme", string(s.settings.Theme)))
	return nil
}
