package web

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikmargit/blog/app/colormode"
	"github.com/nikmargit/blog/app/enum"
	"github.com/nikmargit/blog/app/server/web/mocks"
	"github.com/nikmargit/blog/app/site"
	"github.com/nikmargit/blog/app/store"
)

func TestNew(t *testing.T) {
	t.Run("defaults to cookie backend", func(t *testing.T) {
		h, err := New(nil, testSite(), Config{})
		require.NoError(t, err)
		assert.Equal(t, enum.BackendCookie, h.backend)
		assert.NotNil(t, h.tmpl)
	})

	t.Run("db backend", func(t *testing.T) {
		h, err := New(&mocks.PrefStoreMock{}, testSite(), Config{Backend: enum.BackendDB})
		require.NoError(t, err)
		assert.Equal(t, enum.BackendDB, h.backend)
	})

	t.Run("db backend requires store", func(t *testing.T) {
		_, err := New(nil, testSite(), Config{Backend: enum.BackendDB})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "preference store is required")
	})

	t.Run("site provider required", func(t *testing.T) {
		_, err := New(nil, nil, Config{})
		require.Error(t, err)
	})
}

func TestNew_LayoutCheck(t *testing.T) {
	t.Run("missing switch", func(t *testing.T) {
		fsys := fstest.MapFS{"templates/base.html": {Data: []byte(
			`<!DOCTYPE html><html data-theme="{{.Theme}}"><body><h1>{{.Site.Title}}</h1></body></html>`)}}
		_, err := newHandler(nil, testSite(), Config{}, fsys)
		require.Error(t, err)
		require.ErrorIs(t, err, colormode.ErrAnchorMissing)
		var anchorErr *colormode.AnchorError
		require.ErrorAs(t, err, &anchorErr)
		assert.Equal(t, ".btn-switch", anchorErr.Selector)
	})

	t.Run("switch present", func(t *testing.T) {
		fsys := fstest.MapFS{"templates/base.html": {Data: []byte(
			`<html data-theme="{{.Theme}}"><body><a class="btn-switch">x</a></body></html>`)}}
		_, err := newHandler(nil, testSite(), Config{}, fsys)
		require.NoError(t, err)
	})

	t.Run("no layout", func(t *testing.T) {
		_, err := newHandler(nil, testSite(), Config{}, fstest.MapFS{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse templates")
	})

	t.Run("broken layout", func(t *testing.T) {
		fsys := fstest.MapFS{"templates/base.html": {Data: []byte(`<html>{{.Theme</html>`)}}
		_, err := newHandler(nil, testSite(), Config{}, fsys)
		require.Error(t, err)
	})

	t.Run("layout fails to render", func(t *testing.T) {
		fsys := fstest.MapFS{"templates/base.html": {Data: []byte(`<html>{{.Unknown}}</html>`)}}
		_, err := newHandler(nil, testSite(), Config{}, fsys)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "render layout")
	})
}

func TestStaticFS(t *testing.T) {
	sub, err := StaticFS()
	require.NoError(t, err)

	for _, name := range []string{"colormode.js", "style.css"} {
		data, err := fs.ReadFile(sub, name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data)
	}

	js, err := fs.ReadFile(sub, "colormode.js")
	require.NoError(t, err)
	assert.Contains(t, string(js), ".btn-switch")
	assert.Contains(t, string(js), "--color-text")
}

func TestHandler_CookiePath(t *testing.T) {
	h := newTestHandler(t)
	assert.Equal(t, "/", h.cookiePath())
	assert.Equal(t, "/web/color-mode", h.url("/web/color-mode"))

	h.baseURL = "/blog"
	assert.Equal(t, "/blog/", h.cookiePath())
	assert.Equal(t, "/blog/web/color-mode", h.url("/web/color-mode"))
}

func TestHandler_SetCookie(t *testing.T) {
	h := newTestHandler(t)
	h.baseURL = "/blog"
	h.secureCookies = true

	rec := httptest.NewRecorder()
	h.setCookie(rec, colormode.StorageKey, "dark")

	cookie := findCookie(rec, colormode.StorageKey)
	require.NotNil(t, cookie)
	assert.Equal(t, "dark", cookie.Value)
	assert.Equal(t, "/blog/", cookie.Path)
	assert.Equal(t, 365*24*60*60, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestHandler_VisitorID(t *testing.T) {
	h := newTestHandler(t)

	t.Run("existing cookie", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.AddCookie(&http.Cookie{Name: visitorCookie, Value: id})
		rec := httptest.NewRecorder()
		assert.Equal(t, id, h.visitorID(rec, req, true))
		assert.Nil(t, findCookie(rec, visitorCookie), "no new cookie for known visitor")
	})

	t.Run("no cookie without create", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		rec := httptest.NewRecorder()
		assert.Empty(t, h.visitorID(rec, req, false))
		assert.Nil(t, findCookie(rec, visitorCookie))
	})

	t.Run("invalid cookie replaced on create", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.AddCookie(&http.Cookie{Name: visitorCookie, Value: "not-a-uuid"})
		rec := httptest.NewRecorder()
		id := h.visitorID(rec, req, true)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		cookie := findCookie(rec, visitorCookie)
		require.NotNil(t, cookie)
		assert.Equal(t, id, cookie.Value)
	})
}

func TestCookieStore(t *testing.T) {
	h := newTestHandler(t)
	ctx := context.Background()

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.AddCookie(&http.Cookie{Name: colormode.StorageKey, Value: "dark"})
	rec := httptest.NewRecorder()
	cs := &cookieStore{h: h, w: rec, r: req}

	val, ok, err := cs.Get(ctx, colormode.StorageKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", val)

	_, ok, err = cs.Get(ctx, "other")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cs.Set(ctx, colormode.StorageKey, "light"))
	cookie := findCookie(rec, colormode.StorageKey)
	require.NotNil(t, cookie)
	assert.Equal(t, "light", cookie.Value)
}

func TestVisitorStore(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		prefs := &mocks.PrefStoreMock{
			GetFunc: func(_ context.Context, visitor, key string) (string, error) {
				assert.Equal(t, "v1", visitor)
				assert.Equal(t, colormode.StorageKey, key)
				return "dark", nil
			},
		}
		vs := &visitorStore{prefs: prefs, visitor: "v1"}
		val, ok, err := vs.Get(ctx, colormode.StorageKey)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "dark", val)
	})

	t.Run("not found", func(t *testing.T) {
		prefs := &mocks.PrefStoreMock{
			GetFunc: func(context.Context, string, string) (string, error) { return "", store.ErrNotFound },
		}
		vs := &visitorStore{prefs: prefs, visitor: "v1"}
		_, ok, err := vs.Get(ctx, colormode.StorageKey)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("get error", func(t *testing.T) {
		prefs := &mocks.PrefStoreMock{
			GetFunc: func(context.Context, string, string) (string, error) { return "", errors.New("db down") },
		}
		vs := &visitorStore{prefs: prefs, visitor: "v1"}
		_, _, err := vs.Get(ctx, colormode.StorageKey)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db down")
	})

	t.Run("no visitor", func(t *testing.T) {
		prefs := &mocks.PrefStoreMock{}
		vs := &visitorStore{prefs: prefs}
		_, ok, err := vs.Get(ctx, colormode.StorageKey)
		require.NoError(t, err)
		assert.False(t, ok)
		require.Error(t, vs.Set(ctx, colormode.StorageKey, "dark"))
		assert.Empty(t, prefs.GetCalls())
		assert.Empty(t, prefs.SetCalls())
	})

	t.Run("set", func(t *testing.T) {
		prefs := &mocks.PrefStoreMock{
			SetFunc: func(context.Context, string, string, string) error { return nil },
		}
		vs := &visitorStore{prefs: prefs, visitor: "v1"}
		require.NoError(t, vs.Set(ctx, colormode.StorageKey, "dark"))
		require.Len(t, prefs.SetCalls(), 1)
		assert.Equal(t, "v1", prefs.SetCalls()[0].Visitor)
		assert.Equal(t, "dark", prefs.SetCalls()[0].Value)
	})
}

func TestClientHint(t *testing.T) {
	tests := []struct {
		name   string
		header string
		dark   bool
		ok     bool
	}{
		{name: "dark", header: "dark", dark: true, ok: true},
		{name: "quoted dark", header: `"dark"`, dark: true, ok: true},
		{name: "light", header: "light", ok: true},
		{name: "missing", header: ""},
		{name: "unknown", header: "no-preference"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tc.header != "" {
				req.Header.Set(clientHintHeader, tc.header)
			}
			dark, ok := clientHint{r: req}.PrefersDark()
			assert.Equal(t, tc.dark, dark)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestPageDocument(t *testing.T) {
	doc := newPageDocument()
	assert.Empty(t, doc.Attr(colormode.ThemeAttr))
	assert.Empty(t, string(doc.style()))

	colormode.Apply(doc, enum.ColorModeDark)
	assert.Equal(t, "dark", doc.Attr(colormode.ThemeAttr))
	assert.Equal(t, "blue", doc.property(colormode.TextColorProperty))
	assert.Equal(t, "--color-text: blue", string(doc.style()))

	doc.SetProperty("--color-bg", "black")
	assert.Equal(t, "--color-bg: black; --color-text: blue", string(doc.style()))
}

func testSite() *mocks.SiteProviderMock {
	return &mocks.SiteProviderMock{
		CurrentFunc: func() site.Config {
			return site.Config{
				Title:       "Test Blog",
				Author:      "Jane Doe",
				Description: "notes and things",
				Social:      []site.Social{{Name: "GitHub", URL: "https://github.com/janedoe"}},
			}
		},
	}
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	h, err := New(nil, testSite(), Config{})
	require.NoError(t, err)
	return h
}

func newTestHandlerWithStore(t *testing.T, prefs PrefStore) *Handler {
	t.Helper()
	h, err := New(prefs, testSite(), Config{Backend: enum.BackendDB})
	require.NoError(t, err)
	return h
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
