package web

import (
	"encoding/json"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/nikmargit/blog/app/colormode"
)

// handleIndex renders the main page with the resolved color mode applied.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	setClientHintHeaders(w)

	resolver := colormode.NewResolver(h.prefStore(w, r, false), clientHint{r: r})
	doc := newPageDocument()
	colormode.Apply(doc, resolver.Resolve(r.Context()))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "base.html", h.pageData(doc)); err != nil {
		log.Printf("[ERROR] failed to execute template: %v", err)
	}
}

// handleColorMode reports the resolved color mode and the step it came from.
func (h *Handler) handleColorMode(w http.ResponseWriter, r *http.Request) {
	setClientHintHeaders(w)
	resolver := colormode.NewResolver(h.prefStore(w, r, false), clientHint{r: r})
	mode, src := resolver.ResolveWithSource(r.Context())
	rest.RenderJSON(w, rest.JSON{"mode": mode.String(), "source": src.String(), "textColor": mode.TextColor()})
}

// handleColorModeToggle flips the mode posted by the page in the "theme" form field,
// persists it and returns the new mode for the page to apply.
func (h *Handler) handleColorModeToggle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "can't parse form")
		return
	}

	doc := newPageDocument()
	doc.SetAttr(colormode.ThemeAttr, r.PostForm.Get("theme"))

	mode, err := colormode.Toggle(r.Context(), doc, h.prefStore(w, r, true))
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to save color mode")
		return
	}
	log.Printf("[DEBUG] color mode switched to %s", mode)

	resp := rest.JSON{"mode": mode.String(), "textColor": doc.property(colormode.TextColorProperty)}
	if trigger, err := json.Marshal(map[string]rest.JSON{"colorModeChanged": resp}); err == nil {
		w.Header().Set("HX-Trigger", string(trigger))
	}
	rest.RenderJSON(w, resp)
}
