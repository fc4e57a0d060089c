package goquery

import (
	"strings"

	"github.com/fwojciec/refdex"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// applyFieldList interprets a field-list block (alternating dt/dd pairs)
// into the entity's structured fields. The current field name is local to
// the traversal: a dt sets it, the following dd consumes and clears it.
// A dt without a dd, or a dd without a preceding dt, contributes nothing.
func applyFieldList(fl *html.Node, e *refdex.Entity) {
	field := ""
	for n := fl.FirstChild; n != nil; n = n.NextSibling {
		if n.Type != html.ElementNode {
			continue
		}

		switch n.DataAtom {
		case atom.Dt:
			field = strings.ToLower(refdex.NormalizeText(textContent(n)))

		case atom.Dd:
			if field == "" {
				continue
			}
			value := refdex.NormalizeText(textContent(n))

			switch {
			case strings.Contains(field, "type") && !strings.Contains(field, "return"):
				e.DataType = value

			case strings.Contains(field, "return"):
				e.ReturnType = value

			case strings.Contains(field, "param"):
				// Multiple parameter fields accumulate rather than
				// overwrite.
				e.Parameters = append(e.Parameters, parameterItems(n, value)...)
			}

			field = ""
		}
	}
}

// parameterItems splits a parameter field into one string per declared
// parameter. Bulleted lists yield one item per bullet; plain text yields
// the whole normalized value as a single parameter.
func parameterItems(dd *html.Node, value string) []string {
	ul := findFirst(dd, atom.Ul)
	if ul == nil {
		return []string{value}
	}

	var items []string
	for _, li := range findAll(ul, atom.Li) {
		items = append(items, refdex.NormalizeText(textContent(li)))
	}
	return items
}
