package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/refdex"
	"github.com/fwojciec/refdex/gemini"
	"github.com/fwojciec/refdex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerer_Answer_ReturnsErrorWhenQuestionEmpty(t *testing.T) {
	t.Parallel()

	answerer := gemini.NewAnswerer(nil, nil, nil)

	_, err := answerer.Answer(context.Background(), "", 5)

	require.Error(t, err)
	assert.Equal(t, refdex.EINVALID, refdex.ErrorCode(err))
	assert.Contains(t, refdex.ErrorMessage(err), "question required")
}

func TestAnswerer_Answer_ReturnsErrorWhenNoDocuments(t *testing.T) {
	t.Parallel()

	embedder := &mock.Embedder{
		EmbedTextsFn: func(context.Context, []string) ([][]float32, error) {
			return [][]float32{{1, 0, 0}}, nil
		},
	}
	searcher := &mock.SimilaritySearcher{
		SearchSimilarFn: func(context.Context, []float32, int) ([]refdex.SearchResult, error) {
			return nil, nil
		},
	}

	answerer := gemini.NewAnswerer(nil, embedder, searcher) // nil client ok for this test

	_, err := answerer.Answer(context.Background(), "what is an Object?", 5)

	require.Error(t, err)
	assert.Equal(t, refdex.ENOTFOUND, refdex.ErrorCode(err))
	assert.Contains(t, refdex.ErrorMessage(err), "no documents")
}

func TestAnswerer_Answer_PropagatesEmbedderError(t *testing.T) {
	t.Parallel()

	expectedErr := refdex.Errorf(refdex.EINTERNAL, "embedding failed")
	embedder := &mock.Embedder{
		EmbedTextsFn: func(context.Context, []string) ([][]float32, error) {
			return nil, expectedErr
		},
	}

	answerer := gemini.NewAnswerer(nil, embedder, nil)

	_, err := answerer.Answer(context.Background(), "what is an Object?", 5)

	require.Error(t, err)
	assert.Equal(t, refdex.EINTERNAL, refdex.ErrorCode(err))
	assert.Contains(t, refdex.ErrorMessage(err), "embedding failed")
}

func TestAnswerer_Answer_PropagatesSearcherError(t *testing.T) {
	t.Parallel()

	expectedErr := refdex.Errorf(refdex.EINTERNAL, "database error")
	embedder := &mock.Embedder{
		EmbedTextsFn: func(context.Context, []string) ([][]float32, error) {
			return [][]float32{{1, 0, 0}}, nil
		},
	}
	searcher := &mock.SimilaritySearcher{
		SearchSimilarFn: func(context.Context, []float32, int) ([]refdex.SearchResult, error) {
			return nil, expectedErr
		},
	}

	answerer := gemini.NewAnswerer(nil, embedder, searcher)

	_, err := answerer.Answer(context.Background(), "what is an Object?", 5)

	require.Error(t, err)
	assert.Equal(t, refdex.EINTERNAL, refdex.ErrorCode(err))
	assert.Contains(t, refdex.ErrorMessage(err), "database error")
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "helpful assistant")
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, *config.Temperature, 0.001)
}

func TestBuildEmbedConfig_SetsTaskType(t *testing.T) {
	t.Parallel()

	config := gemini.BuildEmbedConfig()

	assert.Equal(t, "RETRIEVAL_DOCUMENT", config.TaskType)
}

func TestBuildUserPrompt_ContainsDocumentation(t *testing.T) {
	t.Parallel()

	results := []refdex.SearchResult{
		{
			Document: &refdex.Document{
				Content: "# API Reference: bpy.types.Object",
				Metadata: refdex.Metadata{
					EntityID: "bpy.types.Object",
					URL:      "https://docs.blender.org/api/4.5/bpy.types.Object.html#bpy.types.Object",
				},
			},
			Score: 0.9,
		},
	}

	prompt := gemini.BuildUserPrompt(results, "What is an Object?")

	assert.Contains(t, prompt, "<documents>")
	assert.Contains(t, prompt, "bpy.types.Object")
	assert.Contains(t, prompt, "# API Reference: bpy.types.Object")
	assert.Contains(t, prompt, "</documents>")
}

func TestBuildUserPrompt_ContainsQuestion(t *testing.T) {
	t.Parallel()

	results := []refdex.SearchResult{
		{Document: &refdex.Document{Content: "Content"}},
	}

	prompt := gemini.BuildUserPrompt(results, "How do I use this?")

	assert.Contains(t, prompt, "Question: How do I use this?")
}

func TestBuildUserPrompt_DoesNotContainSystemInstruction(t *testing.T) {
	t.Parallel()

	results := []refdex.SearchResult{
		{Document: &refdex.Document{Content: "Content"}},
	}

	prompt := gemini.BuildUserPrompt(results, "question")

	assert.NotContains(t, prompt, "You are a helpful assistant")
}

func TestEmbedder_EmbedTexts_EmptyInput(t *testing.T) {
	t.Parallel()

	embedder := gemini.NewEmbedder(nil) // nil client ok, no request is made

	embeddings, err := embedder.EmbedTexts(context.Background(), nil)

	require.NoError(t, err)
	assert.Nil(t, embeddings)
}
