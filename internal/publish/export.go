package publish

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"mime"
	"path"
	"strings"

	"golang.org/x/text/language"

	"github.com/glamorous-css/website/internal/assets"
	"github.com/glamorous-css/website/internal/errors"
	"github.com/glamorous-css/website/internal/pages"
)

// Exporter renders every page and asset into a Store.
type Exporter struct {
	Site   *pages.Site
	Store  Store
	Lang   language.Tag
	Logger *slog.Logger
}

// Result summarizes an export.
type Result struct {
	Pages  int
	Assets int
	Keys   []string
}

// PageKey returns the file key of the page served at p.
func PageKey(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return "index.html"
	}
	return p + "/index.html"
}

// Export writes the site. Pages are rendered without the live session, so
// the navigation toggles in the browser and search starts from the page.
// Pages of a non-default locale go under a directory named after it, and
// every locale shares the root assets directory.
func (e *Exporter) Export(ctx context.Context) (Result, error) {
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "publish")

	live := e.Site.Live
	e.Site.Live = false
	defer func() { e.Site.Live = live }()

	var res Result
	for _, p := range pages.All {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		var buf bytes.Buffer
		if err := e.Site.Render(&buf, p, e.Lang); err != nil {
			return res, errors.New("W022").WithDetail("page %s", p.Path).Wrap(err)
		}
		key := PageKey(p.Path)
		if dir := e.Site.LocaleDir(e.Lang); dir != "" {
			key = dir + "/" + key
		}
		if err := e.put(ctx, key, "text/html; charset=utf-8", buf.Bytes()); err != nil {
			return res, err
		}
		res.Pages++
		res.Keys = append(res.Keys, key)
		logger.Debug("page exported", "key", key)
	}

	err := fs.WalkDir(assets.FS(), ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		body, err := fs.ReadFile(assets.FS(), name)
		if err != nil {
			return err
		}
		key := path.Join("assets", name)
		if err := e.put(ctx, key, contentType(name), body); err != nil {
			return err
		}
		res.Assets++
		res.Keys = append(res.Keys, key)
		return nil
	})
	if err != nil {
		return res, err
	}

	logger.Info("export complete", "pages", res.Pages, "assets", res.Assets, "lang", e.Lang.String())
	return res, nil
}

func (e *Exporter) put(ctx context.Context, key, ct string, body []byte) error {
	if err := e.Store.Put(ctx, key, ct, body); err != nil {
		code := "W023"
		if _, ok := e.Store.(*S3Store); ok {
			code = "W024"
		}
		return errors.New(code).WithDetail("%s", key).Wrap(err)
	}
	return nil
}

func contentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
