// Package pages assembles the documentation pages around the navigation
// bar. Both the HTTP server and the static exporter render through Site.
package pages

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/glamorous-css/website/internal/anchor"
	"github.com/glamorous-css/website/internal/assets"
	"github.com/glamorous-css/website/internal/content"
	"github.com/glamorous-css/website/internal/locale"
	"github.com/glamorous-css/website/internal/nav"
	"github.com/glamorous-css/website/internal/search"
	"github.com/glamorous-css/website/internal/theme"
	"github.com/glamorous-css/website/pkg/render"
	"github.com/glamorous-css/website/pkg/vdom"
)

// LivePath is the WebSocket endpoint of the navigation session.
const LivePath = "/_nav/live"

// DocSearchScript is the hosted DocSearch client.
const DocSearchScript = "https://cdn.jsdelivr.net/npm/docsearch.js@2/dist/cdn/docsearch.min.js"

// Page is one documentation page.
type Page struct {
	Path string
	// TitleKey is the content message used as heading and title.
	TitleKey string
	// Top docks the navigation above the content instead of beside it.
	Top bool
}

// All lists every page in navigation order.
var All = []Page{
	{Path: "/", TitleKey: content.KeyHome, Top: true},
	{Path: "/getting-started", TitleKey: content.KeyGettingStarted},
	{Path: "/basics", TitleKey: content.KeyBasics},
	{Path: "/advanced", TitleKey: content.KeyAdvanced},
	{Path: "/examples", TitleKey: content.KeyExamples},
	{Path: "/integrations", TitleKey: content.KeyIntegrations},
	{Path: "/api", TitleKey: content.KeyAPI},
}

// Lookup returns the page served at path.
func Lookup(path string) (Page, bool) {
	path = anchor.Normalize(path)
	for _, p := range All {
		if p.Path == path {
			return p, true
		}
	}
	return Page{}, false
}

// Site renders pages for one configuration.
type Site struct {
	Theme    theme.Theme
	Catalog  *content.Catalog
	Locales  *locale.Resolver
	Prefetch bool
	Search   search.Config

	// Live enables the WebSocket session. Static exports turn it off.
	Live bool

	// Base is the URL path a static export is served under, such as
	// "/docs". The live server always serves from the root.
	Base string

	renderer *render.Renderer
}

// NewSite creates a site. The locale resolver offers every language of
// the catalog with def first.
func NewSite(t theme.Theme, catalog *content.Catalog, def language.Tag) *Site {
	langs := []language.Tag{def}
	for _, tag := range catalog.Languages() {
		if tag != def {
			langs = append(langs, tag)
		}
	}
	return &Site{
		Theme:    t,
		Catalog:  catalog,
		Locales:  locale.NewResolver(langs),
		Live:     true,
		renderer: render.NewRenderer(render.RendererConfig{}),
	}
}

// LiveURL returns the session endpoint for a bar on page p in tag.
func LiveURL(p Page, tag language.Tag) string {
	q := url.Values{}
	q.Set("path", p.Path)
	q.Set("top", strconv.FormatBool(p.Top))
	q.Set(locale.LangParam, tag.String())
	return LivePath + "?" + q.Encode()
}

// LocaleDir returns the directory holding the static pages of tag. The
// default locale sits at the root.
func (s *Site) LocaleDir(tag language.Tag) string {
	if tag == s.Locales.Default() {
		return ""
	}
	return tag.String()
}

// LocaleBase returns the URL path prefix of the pages rendered in tag. It
// is empty for the live server, which selects the language per request.
func (s *Site) LocaleBase(tag language.Tag) string {
	if s.Live {
		return ""
	}
	base := strings.TrimRight(s.Base, "/")
	if dir := s.LocaleDir(tag); dir != "" {
		return base + "/" + dir
	}
	return base
}

func (s *Site) assetBase() string {
	if s.Live {
		return ""
	}
	return strings.TrimRight(s.Base, "/")
}

// Bar builds a navigation bar for page p. bootstrap may be nil.
func (s *Site) Bar(p Page, tag language.Tag, bootstrap search.Bootstrapper) *nav.NavBar {
	opts := nav.Options{
		Theme:     s.Theme,
		Content:   s.Catalog.Nav(tag),
		Prefetch:  s.Prefetch,
		Locale:    tag,
		Languages: s.Locales.Supported(),
		Search:    bootstrap,
		Base:      s.LocaleBase(tag),
	}
	if s.Live {
		opts.LiveURL = LiveURL(p, tag)
	} else {
		opts.LocaleBase = s.LocaleBase
	}
	return nav.New(nav.Props{Pathname: p.Path, Top: p.Top}, opts)
}

// Title returns the document title of page p.
func (s *Site) Title(p Page, tag language.Tag) string {
	name := s.Catalog.Message(tag, content.KeySiteName)
	if p.Path == "/" {
		return name
	}
	return fmt.Sprintf("%s | %s", s.Catalog.Message(tag, p.TitleKey), name)
}

// Render writes the full document for page p. The bar is rendered once
// and never mounted; the live session or the static bootstrap script
// brings it to life in the browser.
func (s *Site) Render(w io.Writer, p Page, tag language.Tag) error {
	bar := s.Bar(p, tag, nil)

	scripts := []render.ScriptTag{{Src: s.assetBase() + assets.ScriptPath, Defer: true}}
	if s.Search.Enabled() {
		scripts = append(scripts, render.ScriptTag{Src: DocSearchScript})
		if !s.Live {
			inline, err := staticBootstrap(s.Search)
			if err != nil {
				return err
			}
			scripts = append(scripts, render.ScriptTag{Inline: inline})
		}
	}

	return s.renderer.RenderPage(w, render.PageData{
		Title:   s.Title(p, tag),
		Lang:    tag.String(),
		Styles:  []string{render.CSSString(s.layout(p))},
		Scripts: scripts,
		Body: vdom.Div(
			vdom.Class("Page", pick(p.Top, "Page--top", "Page--side")),
			bar,
			vdom.Main(
				vdom.Class("Content"),
				vdom.H1(s.Catalog.Message(tag, p.TitleKey)),
			),
		),
	})
}

// layout places the bar above the content in top mode and beside it
// otherwise.
func (s *Site) layout(p Page) render.Sheet {
	var sheet render.Sheet
	sheet = sheet.Add("", "body", vdom.Style{
		{Prop: "margin", Value: "0"},
		{Prop: "font-family", Value: "sans-serif"},
		{Prop: "color", Value: s.Theme.Colors.DarkGray},
	})
	sheet = sheet.Add("", ".Content", vdom.Style{
		{Prop: "padding", Value: "1rem 2rem"},
	})
	if !p.Top {
		sheet = sheet.Add(s.Theme.MediaQueries.LargeUp, ".Page--side", vdom.Style{
			{Prop: "display", Value: "flex"},
		})
	}
	return sheet
}

// staticBootstrap starts DocSearch from the page itself when no live
// session will send the command.
func staticBootstrap(cfg search.Config) (string, error) {
	cmd := search.NewDocSearch(cfg, nil).Command()
	b, err := json.Marshal(cmd)
	if err != nil {
		return "", fmt.Errorf("encode docsearch command: %w", err)
	}
	return fmt.Sprintf("window.docsearch && window.docsearch(%s);", b), nil
}

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
