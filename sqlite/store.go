package sqlite

import (
	"context"
	"encoding/hex"
	"sort"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/refdex"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ refdex.DocumentStore      = (*Store)(nil)
	_ refdex.SimilaritySearcher = (*Store)(nil)
)

// Store implements document storage and similarity search using SQLite.
// Embeddings are stored as little-endian float32 blobs; search scans all
// rows and ranks by cosine similarity, which is adequate for corpora of
// reference documentation scale.
type Store struct {
	db *DB
}

// NewStore creates a new Store.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// InsertDocuments inserts one batch of embedded documents in a single
// transaction. Document IDs are generated; content hashes are derived.
// A failed batch leaves previously inserted batches intact.
func (s *Store) InsertDocuments(ctx context.Context, docs []*refdex.Document) error {
	if len(docs) == 0 {
		return nil
	}

	for _, doc := range docs {
		if err := doc.Validate(); err != nil {
			return err
		}
		if len(doc.Embedding) == 0 {
			return refdex.Errorf(refdex.EINVALID, "document %q has no embedding", doc.Metadata.EntityID)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)

	for _, doc := range docs {
		doc.ID = uuid.New().String()

		hasCode := 0
		if doc.Metadata.HasCode {
			hasCode = 1
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO documents (id, entity_id, type, name, module, url, has_code, content, content_hash, embedding, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, doc.ID, doc.Metadata.EntityID, doc.Metadata.Type, doc.Metadata.Name, doc.Metadata.Module,
			doc.Metadata.URL, hasCode, doc.Content, hashContent(doc.Content),
			encodeVector(doc.Embedding), now); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Count returns the number of stored documents.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM documents").Scan(&n)
	return n, err
}

// SearchSimilar returns up to limit documents ranked by cosine similarity
// to the query embedding.
func (s *Store) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]refdex.SearchResult, error) {
	if len(embedding) == 0 {
		return nil, refdex.Errorf(refdex.EINVALID, "query embedding required")
	}
	if limit <= 0 {
		limit = 1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, entity_id, type, name, module, url, has_code, content, embedding
		FROM documents
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []refdex.SearchResult
	for rows.Next() {
		var doc refdex.Document
		var hasCode int
		var blob []byte

		if err := rows.Scan(&doc.ID, &doc.Metadata.EntityID, &doc.Metadata.Type, &doc.Metadata.Name,
			&doc.Metadata.Module, &doc.Metadata.URL, &hasCode, &doc.Content, &blob); err != nil {
			return nil, err
		}
		doc.Metadata.HasCode = hasCode != 0

		vec, err := decodeVector(blob)
		if err != nil {
			return nil, err
		}
		doc.Embedding = vec

		results = append(results, refdex.SearchResult{
			Document: &doc,
			Score:    cosineSimilarity(embedding, vec),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
