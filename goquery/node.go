package goquery

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node helpers for the parts of extraction that goquery selections cannot
// express: walks over raw siblings and children, where text nodes matter.

// nodeClasses returns the element's class attribute split into markers,
// preserving their order of appearance.
func nodeClasses(n *html.Node) []string {
	for _, attr := range n.Attr {
		if attr.Key == "class" {
			return strings.Fields(attr.Val)
		}
	}
	return nil
}

// hasClass reports whether the element's class list contains name exactly.
func hasClass(n *html.Node, name string) bool {
	for _, c := range nodeClasses(n) {
		if c == name {
			return true
		}
	}
	return false
}

// hasClassPrefix reports whether any class marker starts with prefix.
func hasClassPrefix(n *html.Node, prefix string) bool {
	for _, c := range nodeClasses(n) {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

// textContent concatenates all descendant text nodes in document order,
// without any normalization.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// findAll returns all descendant elements with the given tag in document
// order. The root itself is not considered.
func findAll(n *html.Node, tag atom.Atom) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == tag {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// findFirst returns the first descendant element with the given tag, or nil.
func findFirst(n *html.Node, tag atom.Atom) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == tag {
			return c
		}
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// isHeading reports whether the element is an h1-h6 heading.
func isHeading(n *html.Node) bool {
	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}
