package colormode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ErrAnchorMissing is returned when a page has no element the toggle can bind to.
var ErrAnchorMissing = errors.New("anchor element missing")

// AnchorError describes the selector which matched nothing.
type AnchorError struct {
	Selector string
}

func (e *AnchorError) Error() string {
	return fmt.Sprintf("%v: no element matches %q", ErrAnchorMissing, e.Selector)
}

// Unwrap returns ErrAnchorMissing.
func (e *AnchorError) Unwrap() error { return ErrAnchorMissing }

// CheckAnchor parses the page and verifies that an element matches selector.
// Supported selectors are ".class", "#id" and a bare tag name.
func CheckAnchor(r io.Reader, selector string) error {
	if selector == "" || selector == "." || selector == "#" {
		return fmt.Errorf("invalid selector %q", selector)
	}
	root, err := html.Parse(r)
	if err != nil {
		return fmt.Errorf("failed to parse page: %w", err)
	}
	if findElement(root, matcher(selector)) == nil {
		return &AnchorError{Selector: selector}
	}
	return nil
}

func matcher(selector string) func(n *html.Node) bool {
	switch {
	case strings.HasPrefix(selector, "."):
		class := selector[1:]
		return func(n *html.Node) bool {
			return hasClass(attr(n, "class"), class)
		}
	case strings.HasPrefix(selector, "#"):
		id := selector[1:]
		return func(n *html.Node) bool { return attr(n, "id") == id }
	default:
		tag := strings.ToLower(selector)
		return func(n *html.Node) bool { return n.Data == tag }
	}
}

func findElement(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func hasClass(classes, class string) bool {
	for _, c := range strings.Fields(classes) {
		if c == class {
			return true
		}
	}
	return false
}
