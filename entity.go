package refdex

import (
	"io"
	"strings"
)

// Kind classifies a documented API entity.
type Kind string

// Kind constants cover the entity kinds emitted by the Sphinx Python domain.
const (
	KindClass        Kind = "class"
	KindFunction     Kind = "function"
	KindMethod       Kind = "method"
	KindAttribute    Kind = "attribute"
	KindData         Kind = "data"
	KindModule       Kind = "module"
	KindClassMethod  Kind = "classmethod"
	KindStaticMethod Kind = "staticmethod"
	KindException    Kind = "exception"
	KindUnknown      Kind = "unknown"
)

// kindPrefix is the Sphinx Python domain marker prefix. Class markers like
// "pyattribute" or "py-attribute" classify the same as their bare form.
const kindPrefix = "py"

var validKinds = map[string]bool{
	string(KindClass):        true,
	string(KindFunction):     true,
	string(KindMethod):       true,
	string(KindAttribute):    true,
	string(KindData):         true,
	string(KindModule):       true,
	string(KindClassMethod):  true,
	string(KindStaticMethod): true,
	string(KindException):    true,
}

// ClassifyKind maps a definition block's class markers to an entity kind.
// The first marker that exactly matches the vocabulary wins; failing that,
// the first marker that matches after stripping the "py-" prefix wins.
// Returns KindUnknown when no marker matches.
func ClassifyKind(classes []string) Kind {
	for _, c := range classes {
		if validKinds[c] {
			return Kind(c)
		}
	}
	for _, c := range classes {
		s, ok := strings.CutPrefix(c, kindPrefix)
		if !ok {
			continue
		}
		s = strings.TrimPrefix(s, "-")
		if validKinds[s] {
			return Kind(s)
		}
	}
	return KindUnknown
}

// Entity represents one documented API entity extracted from a reference
// page: a class, function, method, attribute, data item or module, together
// with its description, signature and structured field-list metadata.
//
// Optional fields use omitempty so corpus records only carry the fields the
// source markup supplied.
type Entity struct {
	ID           string   `json:"id"`
	Type         Kind     `json:"type"`
	Name         string   `json:"name"`
	Signature    string   `json:"signature"`
	URL          string   `json:"url"`
	Description  string   `json:"description"`
	CodeExamples []string `json:"code_examples,omitempty"`
	DataType     string   `json:"data_type,omitempty"`
	ReturnType   string   `json:"return_type,omitempty"`
	Parameters   []string `json:"parameters,omitempty"`
}

// Validate returns an error if the entity contains invalid fields.
// Every emitted entity must carry its anchor identifier.
func (e *Entity) Validate() error {
	if e.ID == "" {
		return Errorf(EINVALID, "entity ID required")
	}
	return nil
}

// EntityParser extracts API entity records from documentation HTML.
// Implementations hide the markup template specifics.
type EntityParser interface {
	// Parse reads one HTML page and returns the entities found on it.
	// pageName is the page's base file name without extension; the entity
	// whose ID equals pageName is the page's principal subject and absorbs
	// page-level introductory content. Blocks without a usable heading or
	// anchor ID are skipped silently. Pages without a main content region
	// yield no entities and no error.
	Parse(r io.Reader, pageName string) ([]*Entity, error)
}
