package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/nikmargit/blog/app/colormode"
	"github.com/nikmargit/blog/app/enum"
	"github.com/nikmargit/blog/app/store"
)

const (
	visitorCookie    = "visitor"
	clientHintHeader = "Sec-CH-Prefers-Color-Scheme"
)

// prefStore returns the request-scoped durable storage for the configured backend.
// With create set, a visitor id is issued when the db backend has none.
func (h *Handler) prefStore(w http.ResponseWriter, r *http.Request, create bool) colormode.Store {
	if h.backend == enum.BackendDB {
		return &visitorStore{prefs: h.prefs, visitor: h.visitorID(w, r, create)}
	}
	return &cookieStore{h: h, w: w, r: r}
}

// visitorID returns the visitor id from cookie, issuing a new one if create is set.
func (h *Handler) visitorID(w http.ResponseWriter, r *http.Request, create bool) string {
	if cookie, err := r.Cookie(visitorCookie); err == nil {
		if id, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
			return id.String()
		}
	}
	if !create {
		return ""
	}
	id := uuid.NewString()
	h.setCookie(w, visitorCookie, id)
	return id
}

// cookieStore keeps each preference in its own cookie, scoped to the site like browser storage.
type cookieStore struct {
	h *Handler
	w http.ResponseWriter
	r *http.Request
}

func (c *cookieStore) Get(_ context.Context, key string) (string, bool, error) {
	cookie, err := c.r.Cookie(key)
	if err != nil || cookie.Value == "" {
		return "", false, nil
	}
	return cookie.Value, true, nil
}

func (c *cookieStore) Set(_ context.Context, key, value string) error {
	c.h.setCookie(c.w, key, value)
	return nil
}

// visitorStore keeps preferences in the database, keyed by visitor id.
type visitorStore struct {
	prefs   PrefStore
	visitor string
}

func (v *visitorStore) Get(ctx context.Context, key string) (string, bool, error) {
	if v.visitor == "" {
		return "", false, nil
	}
	val, err := v.prefs.Get(ctx, v.visitor, key)
	if errors.Is(err, store.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return val, true, nil
}

func (v *visitorStore) Set(ctx context.Context, key, value string) error {
	if v.visitor == "" {
		return errors.New("visitor id not set")
	}
	if err := v.prefs.Set(ctx, v.visitor, key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// clientHint reads the browser's color scheme preference from the client hint header.
type clientHint struct {
	r *http.Request
}

func (c clientHint) PrefersDark() (dark, ok bool) {
	switch strings.Trim(strings.TrimSpace(c.r.Header.Get(clientHintHeader)), `"`) {
	case "dark":
		return true, true
	case "light":
		return false, true
	default:
		return false, false
	}
}

// setClientHintHeaders asks the browser to send the color scheme hint.
func setClientHintHeaders(w http.ResponseWriter) {
	w.Header().Set("Accept-CH", clientHintHeader)
	w.Header().Set("Critical-CH", clientHintHeader)
	w.Header().Add("Vary", clientHintHeader)
	w.Header().Add("Vary", "Cookie")
}
