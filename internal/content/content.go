// Package content serves the localized strings of the site chrome.
package content

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Message IDs of the navigation bar.
const (
	KeyHome           = "home"
	KeyGettingStarted = "gettingStarted"
	KeyBasics         = "basics"
	KeyAdvanced       = "advanced"
	KeyExamples       = "examples"
	KeyIntegrations   = "integrations"
	KeyAPI            = "api"
	KeySearch         = "search"
	KeySiteName       = "siteName"
)

// Nav is the navigation bar copy for one locale.
type Nav struct {
	Home           string
	GettingStarted string
	Basics         string
	Advanced       string
	Examples       string
	Integrations   string
	API            string
	Search         string
}

// Catalog resolves messages for the supported locales. English is the
// fallback for messages a locale does not translate.
type Catalog struct {
	bundle *i18n.Bundle
}

// Load builds the catalog from the embedded message files.
func Load() (*Catalog, error) {
	return LoadFS(localeFS, "locales")
}

// LoadFS builds a catalog from every *.toml file under dir in fsys.
// File names follow the go-i18n convention: active.<tag>.toml.
func LoadFS(fsys fs.FS, dir string) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(fsys, path.Join(dir, "*.toml"))
	if err != nil {
		return nil, fmt.Errorf("list message files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no message files under %q", dir)
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(fsys, f); err != nil {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return &Catalog{bundle: bundle}, nil
}

// Languages returns the locales with at least one message, default first.
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}

// Message returns the localized message id for tag. Unknown ids render as
// the id itself.
func (c *Catalog) Message(tag language.Tag, id string) string {
	loc := i18n.NewLocalizer(c.bundle, tag.String())
	// A message missing from tag comes back in the default language
	// together with a not-found error; the text is still usable.
	msg, _ := loc.Localize(&i18n.LocalizeConfig{MessageID: id})
	if msg == "" {
		return id
	}
	return msg
}

// Nav returns the navigation copy for tag.
func (c *Catalog) Nav(tag language.Tag) Nav {
	return Nav{
		Home:           c.Message(tag, KeyHome),
		GettingStarted: c.Message(tag, KeyGettingStarted),
		Basics:         c.Message(tag, KeyBasics),
		Advanced:       c.Message(tag, KeyAdvanced),
		Examples:       c.Message(tag, KeyExamples),
		Integrations:   c.Message(tag, KeyIntegrations),
		API:            c.Message(tag, KeyAPI),
		Search:         c.Message(tag, KeySearch),
	}
}
