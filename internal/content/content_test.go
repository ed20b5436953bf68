package content

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestNavEnglish(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	nav := c.Nav(language.English)
	assert.Equal(t, "Home", nav.Home)
	assert.Equal(t, "Getting Started", nav.GettingStarted)
	assert.Equal(t, "Basics", nav.Basics)
	assert.Equal(t, "API", nav.API)
	assert.Equal(t, "Search", nav.Search)
}

func TestNavTranslated(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Buscar", c.Nav(language.Spanish).Search)
	assert.Equal(t, "Começando", c.Nav(language.BrazilianPortuguese).GettingStarted)
}

func TestMissingTranslationFallsBackToEnglish(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	// fr has no api entry
	assert.Equal(t, "API", c.Nav(language.French).API)
}

func TestUnknownMessageRendersID(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "nope", c.Message(language.English, "nope"))
}

func TestLanguages(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	tags := c.Languages()
	require.NotEmpty(t, tags)
	assert.Equal(t, language.English, tags[0])
	assert.Len(t, tags, 4)
}

func TestLoadFSErrors(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{}, "locales")
	assert.Error(t, err)

	bad := fstest.MapFS{"locales/active.en.toml": {Data: []byte("home = ")}}
	_, err = LoadFS(bad, "locales")
	assert.Error(t, err)
}
