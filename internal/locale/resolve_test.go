package locale

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var supported = []language.Tag{language.English, language.Spanish, language.French, language.BrazilianPortuguese}

func TestResolvePrecedence(t *testing.T) {
	r := NewResolver(supported)

	tests := []struct {
		name    string
		target  string
		cookie  string
		accept  string
		want    language.Tag
		persist bool
	}{
		{name: "default", target: "/", want: language.English},
		{name: "query wins", target: "/?lang=es", cookie: "fr", accept: "pt-BR", want: language.Spanish, persist: true},
		{name: "cookie over header", target: "/", cookie: "fr", accept: "es", want: language.French},
		{name: "accept language", target: "/", accept: "pt-BR,pt;q=0.9", want: language.BrazilianPortuguese},
		{name: "bad query falls through", target: "/?lang=%%%", cookie: "es", want: language.Spanish},
		{name: "unsupported query", target: "/?lang=de", want: language.English, persist: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			got, persist := r.Resolve(req)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.persist, persist)
		})
	}
}

func TestResolveNilRequest(t *testing.T) {
	tag, persist := NewResolver(nil).Resolve(nil)
	assert.Equal(t, language.English, tag)
	assert.False(t, persist)
}

func TestSetCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	SetCookie(rec, language.Spanish)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, "es", cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)
}

func TestURL(t *testing.T) {
	assert.Equal(t, "/basics?lang=pt-BR", URL("/basics", language.BrazilianPortuguese))
	assert.Equal(t, "/?lang=en", URL("  ", language.English))
}

func TestPrefixed(t *testing.T) {
	tests := []struct {
		base, path, want string
	}{
		{"", "/basics", "/basics"},
		{"", "/", "/"},
		{"", "", "/"},
		{"/es", "/", "/es/"},
		{"/es/", "/basics", "/es/basics"},
		{"/docs/pt-BR", "/api", "/docs/pt-BR/api"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Prefixed(tt.base, tt.path), "%q + %q", tt.base, tt.path)
	}
}
