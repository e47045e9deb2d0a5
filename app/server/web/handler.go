// Package web provides HTTP handlers for the blog pages and the color mode endpoints.
package web

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/go-pkgz/routegroup"

	"github.com/nikmargit/blog/app/colormode"
	"github.com/nikmargit/blog/app/enum"
	"github.com/nikmargit/blog/app/site"
)

//go:generate moq -out mocks/prefstore.go -pkg mocks -skip-ensure -fmt goimports . PrefStore
//go:generate moq -out mocks/siteprovider.go -pkg mocks -skip-ensure -fmt goimports . SiteProvider

//go:embed static
var staticFS embed.FS

//go:embed templates
var templatesFS embed.FS

// StaticFS returns the embedded static filesystem for external use.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static sub-filesystem: %w", err)
	}
	return sub, nil
}

// PrefStore defines the interface for server-side preference storage.
type PrefStore interface {
	Get(ctx context.Context, visitor, key string) (string, error)
	Set(ctx context.Context, visitor, key, value string) error
}

// SiteProvider defines the interface for the current site metadata.
type SiteProvider interface {
	Current() site.Config
}

// Config holds web handler configuration.
type Config struct {
	BaseURL       string
	Backend       enum.Backend // where the chosen mode is persisted, cookie if not set
	SecureCookies bool
}

// Handler handles blog page and color mode requests.
type Handler struct {
	prefs         PrefStore
	site          SiteProvider
	tmpl          *template.Template
	baseURL       string
	backend       enum.Backend
	secureCookies bool
}

// New creates a new web handler. prefs is required for the db backend only.
// Fails if the rendered layout has no element the color mode switch can bind to.
func New(prefs PrefStore, sp SiteProvider, cfg Config) (*Handler, error) {
	return newHandler(prefs, sp, cfg, templatesFS)
}

func newHandler(prefs PrefStore, sp SiteProvider, cfg Config, templates fs.FS) (*Handler, error) {
	if sp == nil {
		return nil, fmt.Errorf("site provider is required")
	}
	backend := cfg.Backend
	if backend == (enum.Backend{}) {
		backend = enum.BackendCookie
	}
	if backend == enum.BackendDB && prefs == nil {
		return nil, fmt.Errorf("preference store is required for %s backend", backend)
	}

	tmpl, err := parseTemplates(templates)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	h := &Handler{
		prefs:         prefs,
		site:          sp,
		tmpl:          tmpl,
		baseURL:       cfg.BaseURL,
		backend:       backend,
		secureCookies: cfg.SecureCookies,
	}
	if err := h.checkLayout(); err != nil {
		return nil, fmt.Errorf("layout check failed: %w", err)
	}
	return h, nil
}

// Register registers page and color mode routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("GET /web/color-mode", h.handleColorMode)
	r.HandleFunc("POST /web/color-mode", h.handleColorModeToggle)
}

// parseTemplates parses the layout from the given filesystem.
func parseTemplates(templates fs.FS) (*template.Template, error) {
	content, err := fs.ReadFile(templates, "templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("read base.html: %w", err)
	}
	tmpl, err := template.New("base.html").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parse base.html: %w", err)
	}
	return tmpl, nil
}

// checkLayout renders the layout once and verifies the switch element is present.
func (h *Handler) checkLayout() error {
	doc := newPageDocument()
	colormode.Apply(doc, enum.ColorModeLight)

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "base.html", h.pageData(doc)); err != nil {
		return fmt.Errorf("render layout: %w", err)
	}
	if err := colormode.CheckAnchor(&buf, colormode.SwitchSelector); err != nil {
		return fmt.Errorf("color mode switch: %w", err)
	}
	return nil
}

// pageData holds data passed to the layout.
type pageData struct {
	Site    site.Config
	Theme   string
	Style   template.CSS
	BaseURL string
}

func (h *Handler) pageData(doc *pageDocument) pageData {
	return pageData{
		Site:    h.site.Current(),
		Theme:   doc.Attr(colormode.ThemeAttr),
		Style:   doc.style(),
		BaseURL: h.baseURL,
	}
}

// url returns a URL path with the base URL prefix.
func (h *Handler) url(path string) string {
	return h.baseURL + path
}

// cookiePath returns the path for cookies (base URL with trailing slash or "/").
func (h *Handler) cookiePath() string {
	if h.baseURL == "" {
		return "/"
	}
	return h.baseURL + "/"
}

// setCookie sets a long-lived preference cookie.
func (h *Handler) setCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     h.cookiePath(),
		MaxAge:   365 * 24 * 60 * 60, // 1 year
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
