package goquery

import (
	"github.com/fwojciec/refdex"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// highlightClass wraps rendered code blocks in Sphinx output.
const highlightClass = "highlight"

// pageContext recovers page-level introductory content for a principal
// subject definition: the paragraphs and code blocks that precede it on the
// page without belonging to any definition.
//
// The walk is an explicit reverse iteration over preceding siblings, from
// nearest to farthest, and stops at the first heading or definition list.
// Prose is inserted at the front of the accumulator so the final order is
// document order. Code blocks are inserted at the front in per-wrapper
// reversed order, so multiple blocks within one highlight wrapper keep
// their original order ahead of previously collected wrappers.
func pageContext(dl *html.Node) (desc, code []string) {
	for n := dl.PrevSibling; n != nil; n = n.PrevSibling {
		if n.Type != html.ElementNode {
			continue
		}

		if isHeading(n) || n.DataAtom == atom.Dl {
			break
		}

		switch n.DataAtom {
		case atom.P:
			if t := refdex.NormalizeText(textContent(n)); t != "" {
				desc = append([]string{t}, desc...)
			}

		case atom.Pre:
			code = append([]string{textContent(n)}, code...)

		case atom.Div:
			if !hasClass(n, highlightClass) && !hasHighlightChild(n) {
				continue
			}
			pres := findAll(n, atom.Pre)
			for i := len(pres) - 1; i >= 0; i-- {
				code = append([]string{textContent(pres[i])}, code...)
			}
		}
	}
	return desc, code
}

// hasHighlightChild reports whether the wrapper contains a nested highlight
// div, as produced by Sphinx's highlight-<lang> containers.
func hasHighlightChild(n *html.Node) bool {
	for _, div := range findAll(n, atom.Div) {
		if hasClass(div, highlightClass) {
			return true
		}
	}
	return false
}
