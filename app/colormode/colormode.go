// Package colormode resolves, applies and toggles the color mode of the blog pages.
// Durable storage, the scheme signal and the page document are reached through small
// capability interfaces so the same logic serves both rendering and the toggle endpoint.
package colormode

import (
	"context"

	log "github.com/go-pkgz/lgr"

	"github.com/nikmargit/blog/app/enum"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/scheme_signal.go -pkg mocks -skip-ensure -fmt goimports . SchemeSignal

const (
	// StorageKey is the durable key holding the chosen mode.
	StorageKey = "color-mode"
	// ThemeAttr is the root element attribute carrying the active mode.
	ThemeAttr = "data-theme"
	// TextColorProperty is the CSS custom property written for the active mode.
	TextColorProperty = "--color-text"
	// SwitchSelector selects the element toggling the mode.
	SwitchSelector = ".btn-switch"
)

// Store is the durable preference storage.
// Get reports ok=false when nothing is stored under key.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// SchemeSignal is the platform-level dark scheme hint.
// PrefersDark reports ok=false when the hint is not available.
type SchemeSignal interface {
	PrefersDark() (dark, ok bool)
}

// Document is the root element of a page.
type Document interface {
	Attr(name string) string
	SetAttr(name, value string)
	SetProperty(name, value string)
}

// Resolver determines the initial color mode of a page.
type Resolver struct {
	store  Store
	signal SchemeSignal
}

// NewResolver makes a resolver. Both store and signal may be nil, missing
// capabilities are treated as providing no value.
func NewResolver(st Store, sig SchemeSignal) *Resolver {
	return &Resolver{store: st, signal: sig}
}

// Resolve returns the color mode, always light or dark.
func (r *Resolver) Resolve(ctx context.Context) enum.ColorMode {
	mode, _ := r.ResolveWithSource(ctx)
	return mode
}

// ResolveWithSource returns the color mode and the step which produced it:
// a recognized stored value first, then the scheme signal, then light.
func (r *Resolver) ResolveWithSource(ctx context.Context) (enum.ColorMode, enum.Source) {
	if r.store != nil {
		val, ok, err := r.store.Get(ctx, StorageKey)
		switch {
		case err != nil:
			log.Printf("[WARN] can't read stored color mode: %v", err)
		case ok:
			if mode, parseErr := enum.ParseColorMode(val); parseErr == nil {
				return mode, enum.SourceStored
			}
			log.Printf("[DEBUG] ignore unrecognized stored color mode %q", val)
		}
	}

	if r.signal != nil {
		if dark, ok := r.signal.PrefersDark(); ok {
			if dark {
				return enum.ColorModeDark, enum.SourceSignal
			}
			return enum.ColorModeLight, enum.SourceSignal
		}
	}

	return enum.ColorModeLight, enum.SourceDefault
}

// ApplyVariables sets the CSS custom properties for the mode.
func ApplyVariables(doc Document, mode enum.ColorMode) {
	doc.SetProperty(TextColorProperty, mode.TextColor())
}

// Apply sets the theme attribute and the CSS custom properties for the mode.
func Apply(doc Document, mode enum.ColorMode) {
	doc.SetAttr(ThemeAttr, mode.String())
	ApplyVariables(doc, mode)
}
