// Package locale picks the request language and renders the locale chooser.
package locale

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// CookieName stores the visitor's language preference.
	CookieName = "glamorous_lang"
)

// Resolver matches requested languages against the supported set.
type Resolver struct {
	supported []language.Tag
	matcher   language.Matcher
}

// NewResolver creates a resolver. The first tag is the default.
func NewResolver(supported []language.Tag) *Resolver {
	if len(supported) == 0 {
		supported = []language.Tag{language.English}
	}
	return &Resolver{
		supported: supported,
		matcher:   language.NewMatcher(supported),
	}
}

// Supported returns the supported tags, default first.
func (r *Resolver) Supported() []language.Tag {
	return r.supported
}

// Default returns the fallback tag.
func (r *Resolver) Default() language.Tag {
	return r.supported[0]
}

// match returns the best supported tag for the wanted tags.
func (r *Resolver) match(wanted ...language.Tag) language.Tag {
	if len(wanted) == 0 {
		return r.Default()
	}
	_, i, conf := r.matcher.Match(wanted...)
	if conf == language.No {
		return r.Default()
	}
	return r.supported[i]
}

// Parse matches a single raw tag. ok is false when value does not parse.
func (r *Resolver) Parse(value string) (language.Tag, bool) {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return r.Default(), false
	}
	return r.match(tag), true
}

// Resolve determines the language for the request: query parameter, then
// cookie, then Accept-Language. persist reports whether the query parameter
// chose the language and should be stored with SetCookie.
func (r *Resolver) Resolve(req *http.Request) (tag language.Tag, persist bool) {
	if req == nil {
		return r.Default(), false
	}
	if v := req.URL.Query().Get(LangParam); v != "" {
		if tag, ok := r.Parse(v); ok {
			return tag, true
		}
	}
	if c, err := req.Cookie(CookieName); err == nil {
		if tag, ok := r.Parse(c.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(req.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return r.match(tags...), false
		}
	}
	return r.Default(), false
}

// SetCookie persists the selected language on the response.
func SetCookie(w http.ResponseWriter, tag language.Tag) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// URL returns path with the language parameter set to tag.
func URL(path string, tag language.Tag) string {
	if path = strings.TrimSpace(path); path == "" {
		path = "/"
	}
	q := url.Values{}
	q.Set(LangParam, tag.String())
	return (&url.URL{Path: path, RawQuery: q.Encode()}).String()
}

// Prefixed joins a path prefix such as "/docs/es" and a site path. The
// root path keeps its trailing slash.
func Prefixed(base, path string) string {
	base = strings.TrimRight(base, "/")
	if path = strings.TrimSpace(path); path == "" || path == "/" {
		return base + "/"
	}
	return base + "/" + strings.TrimLeft(path, "/")
}
