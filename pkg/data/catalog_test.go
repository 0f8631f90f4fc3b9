package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Detrauxa/Otoma--Tracker/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func writeCatalog(t *testing.T, content string) *storage.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "monsters.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return storage.NewFile(path)
}

func TestLoadCatalogMissingCategories(t *testing.T) {
	doc := writeCatalog(t, `{"Monstres": ["Tofu"]}`)

	c, res := LoadCatalog(doc, zaptest.NewLogger(t))

	assert.Equal(t, storage.Ok, res.Status)
	assert.Equal(t, &Catalog{
		Monstres:      []string{"Tofu"},
		Boss:          []string{},
		Archimonstres: []string{},
	}, c)
}

func TestLoadCatalogAbsent(t *testing.T) {
	doc := storage.NewFile(filepath.Join(t.TempDir(), "monsters.json"))

	c, res := LoadCatalog(doc, nil)

	assert.Equal(t, storage.Absent, res.Status)
	for _, cat := range Categories {
		assert.NotNil(t, c.Names(cat))
		assert.Empty(t, c.Names(cat))
	}
}

func TestLoadCatalogNotAnObject(t *testing.T) {
	for name, content := range map[string]string{
		"array":   `["Tofu", "Moskito"]`,
		"string":  `"Tofu"`,
		"garbage": `{{{`,
	} {
		t.Run(name, func(t *testing.T) {
			c, res := LoadCatalog(writeCatalog(t, content), zaptest.NewLogger(t))

			assert.Equal(t, storage.Corrupt, res.Status)
			assert.Equal(t, 0, c.Total())
		})
	}
}

func TestLoadCatalogNullDocument(t *testing.T) {
	c, res := LoadCatalog(writeCatalog(t, `null`), nil)

	assert.Equal(t, storage.Ok, res.Status)
	assert.Equal(t, 0, c.Total())
	assert.NotNil(t, c.Boss)
}

func TestLoadCatalogCoercesValues(t *testing.T) {
	doc := writeCatalog(t, `{
		"Monstres": ["Tofu", 42, null, "Tofu", "Moskito"],
		"Boss": "Dragon Cochon",
		"Archimonstres": {"name": "Kralamoure Géant"},
		"Extra": ["ignored"]
	}`)

	c, res := LoadCatalog(doc, zaptest.NewLogger(t))

	require.Equal(t, storage.Ok, res.Status)
	assert.Equal(t, []string{"Tofu", "Moskito"}, c.Monstres)
	assert.Equal(t, []string{}, c.Boss)
	assert.Equal(t, []string{}, c.Archimonstres)
	assert.Equal(t, 2, c.Total())
}

func TestSeedCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "monsters.json")

	created, err := SeedCatalog(path)
	require.NoError(t, err)
	assert.True(t, created)

	c, res := LoadCatalog(storage.NewFile(path), nil)
	require.Equal(t, storage.Ok, res.Status)
	for _, cat := range Categories {
		assert.NotEmpty(t, c.Names(cat), "category %s should have sample data", cat)
	}
	assert.Equal(t, &TemplateCatalog, c)

	// A second run must leave the file alone.
	created, err = SeedCatalog(path)
	require.NoError(t, err)
	assert.False(t, created)

	again, _ := LoadCatalog(storage.NewFile(path), nil)
	assert.Equal(t, c, again)
}

func TestSeedCatalogKeepsUserFile(t *testing.T) {
	doc := writeCatalog(t, `{"Boss": ["Bworkette"]}`)

	created, err := SeedCatalog(doc.Path)
	require.NoError(t, err)
	assert.False(t, created)

	c, _ := LoadCatalog(doc, nil)
	assert.Equal(t, []string{"Bworkette"}, c.Boss)
	assert.Empty(t, c.Monstres)
}

func TestCatalogHelpers(t *testing.T) {
	c := &Catalog{
		Monstres:      []string{"Tofu", "Moskito"},
		Boss:          []string{"Bouftou Royal"},
		Archimonstres: []string{},
	}

	assert.Equal(t, 3, c.Total())
	assert.Equal(t, []string{"Tofu", "Moskito", "Bouftou Royal"}, c.All())

	cat, ok := c.CategoryOf("Bouftou Royal")
	assert.True(t, ok)
	assert.Equal(t, Boss, cat)

	_, ok = c.CategoryOf("tofu")
	assert.False(t, ok, "names are case-sensitive")

	assert.Nil(t, c.Names(Category("Donjons")))
}

func TestParseCategory(t *testing.T) {
	cat, err := ParseCategory(" boss ")
	require.NoError(t, err)
	assert.Equal(t, Boss, cat)

	_, err = ParseCategory("Donjons")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
