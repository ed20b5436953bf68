// Package assets bundles the site's static files into the binary.
//
// The search icon is base64-encoded once at package init and exposed as a
// data URI so styles can inline it without touching the filesystem.
package assets

import (
	"embed"
	"encoding/base64"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed static
var static embed.FS

var (
	searchSVG   = mustRead("static/search.svg")
	menuSVG     = mustRead("static/menu.svg")
	lipstickSVG = mustRead("static/lipstick.svg")

	searchIconURI = "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(searchSVG)
)

// ScriptPath is the URL of the client runtime relative to the asset mount.
const ScriptPath = "/assets/nav.js"

// FS returns the static files rooted at the asset mount.
func FS() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(fmt.Sprintf("assets: %v", err))
	}
	return sub
}

// SearchIconURI is the search icon as a base64 data URI.
func SearchIconURI() string {
	return searchIconURI
}

// MenuIcon returns the inline SVG markup of the menu icon.
func MenuIcon() string {
	return string(menuSVG)
}

// BrandIcon returns the inline SVG markup of the brand icon at the given
// width in pixels.
func BrandIcon(width int) string {
	return strings.Replace(string(lipstickSVG), "<svg ", fmt.Sprintf(`<svg width="%d" `, width), 1)
}

func mustRead(name string) []byte {
	b, err := static.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("assets: read %s: %v", name, err))
	}
	return []byte(strings.TrimSpace(string(b)))
}
