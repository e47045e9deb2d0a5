package colormode

import (
	"context"
	"fmt"

	"github.com/nikmargit/blog/app/enum"
)

// Toggle flips the mode found in the document's theme attribute, writes the new mode back
// to the document and persists it. The attribute is written before persisting, so a store
// failure leaves the document ahead of the store until the next resolution.
func Toggle(ctx context.Context, doc Document, st Store) (enum.ColorMode, error) {
	// unrecognized values parse to the zero mode, which toggles to light
	current, _ := enum.ParseColorMode(doc.Attr(ThemeAttr))
	next := current.Toggle()
	Apply(doc, next)

	if err := st.Set(ctx, StorageKey, next.String()); err != nil {
		return next, fmt.Errorf("failed to persist color mode %s: %w", next, err)
	}
	return next, nil
}
