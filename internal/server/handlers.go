package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"

	"github.com/glamorous-css/website/internal/locale"
	"github.com/glamorous-css/website/internal/nav"
	"github.com/glamorous-css/website/internal/pages"
	"github.com/glamorous-css/website/internal/search"
)

// handlePage serves p in the language resolved from the request.
func (s *Server) handlePage(p pages.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tag, persist := s.site.Locales.Resolve(r)
		if persist {
			locale.SetCookie(w, tag)
		}
		w.Header().Add("Vary", "Accept-Language, Cookie")
		s.writePage(w, r, p, tag)
	}
}

// handleStaticPage serves p in a fixed language, the way a static host
// serves an exported locale directory.
func (s *Server) handleStaticPage(p pages.Page, tag language.Tag) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.writePage(w, r, p, tag)
	}
}

func (s *Server) writePage(w http.ResponseWriter, r *http.Request, p pages.Page, tag language.Tag) {
	trace.SpanFromContext(r.Context()).SetAttributes(
		attribute.String("page.path", p.Path),
		attribute.String("page.lang", tag.String()),
	)

	var buf bytes.Buffer
	if err := s.site.Render(&buf, p, tag); err != nil {
		s.logger.Error("render failed", "path", p.Path, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", tag.String())
	buf.WriteTo(w)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	// A trailing slash names the same page.
	if p, ok := pages.Lookup(r.URL.Path); ok && p.Path != r.URL.Path {
		target := p.Path
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusMovedPermanently)
		return
	}
	http.NotFound(w, r)
}

// buildBar creates the bar of a live session from the path, top and lang
// query parameters.
func (s *Server) buildBar(r *http.Request, sink search.Sink) (*nav.NavBar, error) {
	q := r.URL.Query()

	p, ok := pages.Lookup(q.Get("path"))
	if !ok {
		return nil, fmt.Errorf("unknown page %q", q.Get("path"))
	}
	if v := q.Get("top"); v != "" {
		top, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("bad top flag %q", v)
		}
		p.Top = top
	}

	tag := s.site.Locales.Default()
	if v := q.Get(locale.LangParam); v != "" {
		parsed, ok := s.site.Locales.Parse(v)
		if !ok {
			return nil, errors.New("bad lang")
		}
		tag = parsed
	}

	return s.site.Bar(p, tag, s.bootstrapper(sink)), nil
}

func (s *Server) bootstrapper(sink search.Sink) search.Bootstrapper {
	if !s.site.Search.Enabled() {
		return search.Noop
	}
	return search.NewDocSearch(s.site.Search, sink)
}
