package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/refdex"
	"github.com/fwojciec/refdex/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument(entityID string, embedding []float32) *refdex.Document {
	return &refdex.Document{
		Content:   "# API Reference: " + entityID,
		Embedding: embedding,
		Metadata: refdex.Metadata{
			EntityID: entityID,
			Type:     "class",
			Name:     entityID,
			Module:   refdex.ModuleOf(entityID),
			HasCode:  true,
		},
	}
}

func TestStore_InsertDocuments(t *testing.T) {
	t.Parallel()

	t.Run("inserts a batch and generates IDs", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewStore(db)
		ctx := context.Background()

		docs := []*refdex.Document{
			testDocument("bpy.types.Object", []float32{1, 0, 0}),
			testDocument("bpy.types.Mesh", []float32{0, 1, 0}),
		}

		require.NoError(t, store.InsertDocuments(ctx, docs))

		assert.NotEmpty(t, docs[0].ID)
		assert.NotEmpty(t, docs[1].ID)
		assert.NotEqual(t, docs[0].ID, docs[1].ID)

		count, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewStore(db)

		require.NoError(t, store.InsertDocuments(context.Background(), nil))
	})

	t.Run("rejects documents without embeddings", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewStore(db)

		err := store.InsertDocuments(context.Background(), []*refdex.Document{
			testDocument("bpy.types.Object", nil),
		})
		require.Error(t, err)
		assert.Equal(t, refdex.EINVALID, refdex.ErrorCode(err))
	})

	t.Run("rejects invalid documents", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewStore(db)

		err := store.InsertDocuments(context.Background(), []*refdex.Document{
			{Content: "orphan", Embedding: []float32{1}},
		})
		require.Error(t, err)
		assert.Equal(t, refdex.EINVALID, refdex.ErrorCode(err))
	})

	t.Run("failed batch leaves earlier batches intact", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewStore(db)
		ctx := context.Background()

		require.NoError(t, store.InsertDocuments(ctx, []*refdex.Document{
			testDocument("bpy.types.Object", []float32{1, 0, 0}),
		}))

		err := store.InsertDocuments(ctx, []*refdex.Document{
			testDocument("bpy.types.Mesh", []float32{0, 1, 0}),
			{Content: "no metadata", Embedding: []float32{1}},
		})
		require.Error(t, err)

		count, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestStore_SearchSimilar(t *testing.T) {
	t.Parallel()

	t.Run("ranks by cosine similarity", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewStore(db)
		ctx := context.Background()

		require.NoError(t, store.InsertDocuments(ctx, []*refdex.Document{
			testDocument("bpy.types.Object", []float32{1, 0, 0}),
			testDocument("bpy.types.Mesh", []float32{0.9, 0.1, 0}),
			testDocument("bpy.ops.render", []float32{0, 0, 1}),
		}))

		results, err := store.SearchSimilar(ctx, []float32{1, 0, 0}, 2)
		require.NoError(t, err)
		require.Len(t, results, 2)

		assert.Equal(t, "bpy.types.Object", results[0].Document.Metadata.EntityID)
		assert.Equal(t, "bpy.types.Mesh", results[1].Document.Metadata.EntityID)
		assert.Greater(t, results[0].Score, results[1].Score)
	})

	t.Run("round-trips metadata and embedding", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewStore(db)
		ctx := context.Background()

		doc := testDocument("bpy.types.Object.name", []float32{0.5, -0.25, 1.5})
		doc.Metadata.URL = "https://docs.blender.org/api/4.5/bpy.types.Object.html#bpy.types.Object.name"
		require.NoError(t, store.InsertDocuments(ctx, []*refdex.Document{doc}))

		results, err := store.SearchSimilar(ctx, []float32{0.5, -0.25, 1.5}, 1)
		require.NoError(t, err)
		require.Len(t, results, 1)

		got := results[0].Document
		assert.Equal(t, doc.Metadata, got.Metadata)
		assert.Equal(t, []float32{0.5, -0.25, 1.5}, got.Embedding)
		assert.InDelta(t, 1.0, results[0].Score, 1e-6)
	})

	t.Run("rejects empty query embedding", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewStore(db)

		_, err := store.SearchSimilar(context.Background(), nil, 5)
		require.Error(t, err)
		assert.Equal(t, refdex.EINVALID, refdex.ErrorCode(err))
	})

	t.Run("empty store returns no results", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewStore(db)

		results, err := store.SearchSimilar(context.Background(), []float32{1, 0}, 5)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
