// Package goquery implements API entity extraction from Sphinx-generated
// reference pages using PuerkitoBio/goquery for document-level queries and
// raw x/net/html nodes for the sibling and child walks that need text nodes.
package goquery

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/refdex"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// definitionClassPrefix marks definition blocks in the Sphinx Python domain
// ("py class", "py function", "py-attribute", ...).
const definitionClassPrefix = "py"

// fieldListClass marks the structured key/value list inside a definition body.
const fieldListClass = "field-list"

// Ensure Parser implements refdex.EntityParser at compile time.
var _ refdex.EntityParser = (*Parser)(nil)

// Parser extracts API entity records from Sphinx documentation pages.
type Parser struct {
	// LivePathSegment is the canonical-URL path segment pointing at the
	// live documentation build; it is rewritten to PinnedPathSegment so
	// stored URLs keep resolving after the live docs move on.
	LivePathSegment   string
	PinnedPathSegment string
}

// NewParser creates a Parser with the default URL pinning.
func NewParser() *Parser {
	return &Parser{
		LivePathSegment:   "/current/",
		PinnedPathSegment: "/4.5/",
	}
}

// ParseFile parses a single HTML file. The file's base name (without
// extension) identifies the page's principal subject.
func (p *Parser) ParseFile(path string) ([]*refdex.Entity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	base := filepath.Base(path)
	pageName := strings.TrimSuffix(base, filepath.Ext(base))
	return p.Parse(f, pageName)
}

// Parse extracts all entities from one documentation page.
func (p *Parser) Parse(r io.Reader, pageName string) ([]*refdex.Entity, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, refdex.Errorf(refdex.EINVALID, "failed to parse HTML: %v", err)
	}

	main := doc.Find(`article[role="main"]`).First()
	if main.Length() == 0 {
		main = doc.Find(`div[role="main"]`).First()
	}
	if main.Length() == 0 {
		return nil, nil
	}

	baseURL := ""
	if href, ok := doc.Find(`link[rel="canonical"]`).Attr("href"); ok {
		baseURL = strings.Replace(href, p.LivePathSegment, p.PinnedPathSegment, 1)
	}

	// Flat scan: finds definitions at any nesting depth, including ones
	// nested inside other definitions' bodies. Nested definitions are
	// emitted as standalone records without a parent link.
	var entities []*refdex.Entity
	main.Find("dl").Each(func(_ int, sel *goquery.Selection) {
		node := sel.Nodes[0]
		if !hasClassPrefix(node, definitionClassPrefix) {
			return
		}
		if e := p.parseDefinition(node, pageName, baseURL); e != nil {
			entities = append(entities, e)
		}
	})

	return entities, nil
}

// parseDefinition builds one entity record from a definition block.
// Blocks without a heading or without an anchor ID yield nil: decorative
// and malformed markup is expected and skipped silently.
func (p *Parser) parseDefinition(dl *html.Node, pageName, baseURL string) *refdex.Entity {
	dt := findFirst(dl, atom.Dt)
	if dt == nil {
		return nil
	}

	id := attrValue(dt, "id")
	if id == "" {
		return nil
	}

	e := &refdex.Entity{
		ID:        id,
		Type:      refdex.ClassifyKind(nodeClasses(dl)),
		Name:      headingName(dt),
		Signature: refdex.NormalizeText(textContent(dt)),
	}
	if baseURL != "" {
		e.URL = baseURL + "#" + id
	}

	// Page-level introductory content belongs to the principal subject:
	// the definition whose ID matches the page's file name.
	var introDesc, introCode []string
	if id == pageName {
		introDesc, introCode = pageContext(dl)
	}

	if dd := findFirst(dl, atom.Dd); dd != nil {
		desc, code := parseBody(dd)
		e.Description = strings.Join(append(introDesc, desc...), " ")
		e.CodeExamples = append(introCode, code...)

		if fl := findFieldList(dd); fl != nil {
			applyFieldList(fl, e)
		}
	}

	return e
}

// headingName prefers the dedicated name span over the full heading text.
func headingName(dt *html.Node) string {
	for _, span := range findAll(dt, atom.Span) {
		if hasClass(span, "sig-name") && hasClass(span, "descname") {
			return textContent(span)
		}
	}
	return refdex.NormalizeText(textContent(dt))
}

// parseBody walks a definition body's direct children in document order,
// separating prose from code examples. Each child contributes either code
// or prose, never both. Nested definitions and the field list are skipped;
// they are handled elsewhere.
func parseBody(dd *html.Node) (desc, code []string) {
	for n := dd.FirstChild; n != nil; n = n.NextSibling {
		switch n.Type {
		case html.TextNode:
			if t := refdex.NormalizeText(n.Data); t != "" {
				desc = append(desc, t)
			}

		case html.ElementNode:
			switch n.DataAtom {
			case atom.Dl:
				// Nested definition or field list: not body content.
				continue

			case atom.Pre:
				code = append(code, textContent(n))

			case atom.Div:
				if pres := findAll(n, atom.Pre); len(pres) > 0 {
					for _, pre := range pres {
						code = append(code, textContent(pre))
					}
					continue
				}
				if t := refdex.NormalizeText(textContent(n)); t != "" {
					desc = append(desc, t)
				}

			case atom.P, atom.Ul, atom.Ol, atom.Span:
				if t := refdex.NormalizeText(textContent(n)); t != "" {
					desc = append(desc, t)
				}
			}
		}
	}
	return desc, code
}

// findFieldList locates the field-list block within a definition body.
func findFieldList(dd *html.Node) *html.Node {
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil && found == nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == atom.Dl && hasClass(c, fieldListClass) {
				found = c
				return
			}
			walk(c)
		}
	}
	walk(dd)
	return found
}

// attrValue returns the value of the named attribute, or empty string.
func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
