package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Detrauxa/Otoma--Tracker/pkg/storage"
	"go.uber.org/zap"
)

// TemplateCatalog is written on first run so the user has something to edit.
var TemplateCatalog = Catalog{
	Monstres:      []string{"Arakne", "Arakne malade", "Boufton blanc", "Moskito", "Piou bleu", "Tofu"},
	Boss:          []string{"Blop Coco Royal", "Bouftou Royal", "Dragon Cochon"},
	Archimonstres: []string{"Sourizoto le Collant", "Mosketère le Dévoué", "Kralamoure Géant"},
}

// SeedCatalog writes TemplateCatalog to path unless a file already exists
// there. It reports whether the template was written.
func SeedCatalog(path string) (bool, error) {
	raw, err := storage.Encode(TemplateCatalog)
	if err != nil {
		return false, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create catalog directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("create catalog template: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(raw); err != nil {
		return false, fmt.Errorf("write catalog template: %w", err)
	}
	return true, nil
}

// LoadCatalog reads the catalog document and normalizes it to the three
// categories. Anything it cannot use becomes an empty category.
func LoadCatalog(doc storage.Document, logger *zap.Logger) (*Catalog, storage.Result) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var raw map[string]json.RawMessage
	res := doc.Load(&raw)
	logLoad(logger, "catalog", res)

	c := &Catalog{}
	for _, cat := range Categories {
		c.set(cat, decodeNames(raw[string(cat)]))
	}

	for key := range raw {
		if _, err := ParseCategory(key); err != nil {
			logger.Debug("ignoring unknown catalog key", zap.String("key", key))
		}
	}

	return c, res
}

// decodeNames keeps the string entries of a JSON array, first occurrence
// wins. Non-array values yield an empty list.
func decodeNames(raw json.RawMessage) []string {
	names := []string{}
	if len(raw) == 0 {
		return names
	}

	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return names
	}

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		name, ok := item.(string)
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

func logLoad(logger *zap.Logger, document string, res storage.Result) {
	switch res.Status {
	case storage.Absent:
		logger.Debug("document absent, using defaults", zap.String("document", document))
	case storage.Corrupt:
		logger.Warn("document unreadable, using defaults", zap.String("document", document), zap.Error(res.Err))
	}
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
