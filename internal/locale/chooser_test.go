package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/glamorous-css/website/internal/theme"
	"github.com/glamorous-css/website/pkg/render"
	"github.com/glamorous-css/website/pkg/vtest"
)

func TestChooserOptions(t *testing.T) {
	c := Chooser{Pathname: "/api", Current: language.French, Languages: supported}
	opts := c.Options()
	require.Len(t, opts, 4)

	assert.Equal(t, "English", opts[0].Label)
	assert.Equal(t, "/api?lang=fr", opts[2].Href)
	assert.True(t, opts[2].Active)
	assert.False(t, opts[0].Active)
}

func TestChooserLinksToLocaleBase(t *testing.T) {
	base := func(tag language.Tag) string {
		if tag == language.English {
			return "/docs"
		}
		return "/docs/" + tag.String()
	}
	c := Chooser{Pathname: "/api", Current: language.Spanish, Languages: supported, Base: base}
	opts := c.Options()
	require.Len(t, opts, 4)

	assert.Equal(t, "/docs/api", opts[0].Href)
	assert.Equal(t, "/docs/es/api", opts[1].Href)
	assert.Equal(t, "/docs/pt-BR/api", opts[3].Href)

	home := Chooser{Pathname: "/", Languages: supported, Base: base}.Options()
	assert.Equal(t, "/docs/", home[0].Href)
	assert.Equal(t, "/docs/fr/", home[2].Href)
}

func TestChooserRender(t *testing.T) {
	c := Chooser{Pathname: "/", Current: language.Spanish, Languages: supported}
	tree := c.Render()

	links := vtest.FindAll(tree, vtest.ByTag("a"))
	require.Len(t, links, 4)
	active := vtest.Find(tree, vtest.ByAttr("aria-current", "true"))
	require.NotNil(t, active)
	assert.Equal(t, "es", active.Props["hreflang"])
}

func TestChooserSheetFollowsTop(t *testing.T) {
	th := theme.Default()
	assert.Contains(t, render.CSSString(Chooser{Top: true}.Sheet(th)), "@media (min-width: 1024px){.LocaleChooser{flex-direction:row}}")
	assert.Contains(t, render.CSSString(Chooser{Top: false}.Sheet(th)), "{.LocaleChooser{flex-direction:column}}")
}
