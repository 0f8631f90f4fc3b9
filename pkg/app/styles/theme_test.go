package styles

import (
	"testing"

	"github.com/Detrauxa/Otoma--Tracker/pkg/data"
	"github.com/stretchr/testify/assert"
)

func TestNewTheme(t *testing.T) {
	dark := NewTheme(data.ThemeDark)
	assert.Equal(t, data.ThemeDark, dark.Name)
	assert.Equal(t, DarkPalette, dark.Palette)
	assert.Equal(t, "🌙", dark.Icon())

	light := NewTheme(data.ThemeLight)
	assert.Equal(t, data.ThemeLight, light.Name)
	assert.Equal(t, LightPalette, light.Palette)
	assert.Equal(t, "☀️", light.Icon())
}

func TestNewThemeUnknownFallsBackToDark(t *testing.T) {
	th := NewTheme(data.Theme("sepia"))
	assert.Equal(t, data.ThemeDark, th.Name)
	assert.Equal(t, DarkPalette, th.Palette)
}
