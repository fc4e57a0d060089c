package refdex

import (
	"context"
	"strings"
)

// Document is the retrievable unit pushed to the vector store: a Markdown
// rendering of one API entity plus flat metadata for filtering.
type Document struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Embedding []float32 `json:"embedding,omitempty"`
	Metadata  Metadata  `json:"metadata"`
}

// Metadata holds the per-document fields stored alongside the embedding.
type Metadata struct {
	EntityID string `json:"id"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Module   string `json:"module"`
	URL      string `json:"url"`
	HasCode  bool   `json:"has_code"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Metadata.EntityID == "" {
		return Errorf(EINVALID, "document entity ID required")
	}
	if d.Content == "" {
		return Errorf(EINVALID, "document content required")
	}
	return nil
}

// NewDocument converts a corpus entity into a retrievable document.
// The content is a Markdown rendering of the entity; the embedding is left
// empty for the ingestion stage to fill.
func NewDocument(e *Entity) *Document {
	return &Document{
		Content: RenderEntity(e),
		Metadata: Metadata{
			EntityID: e.ID,
			Type:     string(e.Type),
			Name:     e.Name,
			Module:   ModuleOf(e.ID),
			URL:      e.URL,
			HasCode:  len(e.CodeExamples) > 0,
		},
	}
}

// ModuleOf derives a coarse module grouping from an entity ID: the first two
// dot-separated segments (e.g. "bpy.ops" from "bpy.ops.mesh.loopcut"), or the
// single segment when the ID has no dots. Empty IDs group under "unknown".
func ModuleOf(id string) string {
	if id == "" {
		return "unknown"
	}
	parts := strings.SplitN(id, ".", 3)
	if len(parts) >= 2 {
		return parts[0] + "." + parts[1]
	}
	return parts[0]
}

// RenderEntity renders an entity as structured Markdown for embedding.
// Headed sections are emitted only for fields the entity carries, so the
// text stays dense and section headers carry signal for retrieval.
func RenderEntity(e *Entity) string {
	parts := []string{
		"# API Reference: " + e.ID,
		"- Type: " + string(e.Type),
		"- Name: " + e.Name,
	}

	if e.Description != "" {
		parts = append(parts, "\n## Description\n"+e.Description)
	}

	if e.Signature != "" {
		parts = append(parts, "\n## Signature\n```python\n"+e.Signature+"\n```")
	}

	if len(e.Parameters) > 0 {
		parts = append(parts, "\n## Parameters")
		for _, p := range e.Parameters {
			parts = append(parts, "- "+p)
		}
	}

	if e.ReturnType != "" {
		parts = append(parts, "\n## Return Type\n- "+e.ReturnType)
	}

	if len(e.CodeExamples) > 0 {
		parts = append(parts, "\n## Example Code")
		for _, ex := range e.CodeExamples {
			parts = append(parts, "```python\n"+ex+"\n```")
		}
	}

	return strings.Join(parts, "\n")
}

// Embedder computes embedding vectors for batches of texts.
type Embedder interface {
	// EmbedTexts returns one vector per input text, in input order.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// DocumentStore persists batches of embedded documents.
// Implementations must accept each batch independently; a failed batch
// leaves previously inserted batches intact.
type DocumentStore interface {
	InsertDocuments(ctx context.Context, docs []*Document) error
}

// SearchResult represents a similarity-search match.
type SearchResult struct {
	Document *Document `json:"document"`
	Score    float32   `json:"score"`
}

// SimilaritySearcher finds stored documents by embedding similarity.
type SimilaritySearcher interface {
	// SearchSimilar returns up to limit documents ranked by similarity
	// to the query embedding.
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]SearchResult, error)
}

// DedupFilter tracks already-seen keys during ingestion. Probabilistic
// implementations may report false positives but never false negatives.
type DedupFilter interface {
	Add(key string)
	Test(key string) bool
}
