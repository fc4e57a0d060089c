package gemini

import (
	"context"

	"github.com/fwojciec/refdex"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const embeddingModel = "gemini-embedding-001"

// requestsPerSecond paces EmbedContent calls to stay within API quotas.
const requestsPerSecond = 2

// Ensure Embedder implements refdex.Embedder at compile time.
var _ refdex.Embedder = (*Embedder)(nil)

// Embedder implements refdex.Embedder using the Gemini embedding API.
// Each EmbedTexts call issues one batch EmbedContent request, paced by
// a rate limiter.
type Embedder struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

// NewEmbedder creates a new Embedder.
func NewEmbedder(client *genai.Client) *Embedder {
	return &Embedder{
		client:  client,
		model:   embeddingModel,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// EmbedTexts returns one embedding vector per input text, in input order.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = genai.NewContentFromText(text, "user")
	}

	result, err := e.client.Models.EmbedContent(ctx, e.model, contents, BuildEmbedConfig())
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, refdex.Errorf(refdex.EINTERNAL, "gemini returned nil result")
	}
	if len(result.Embeddings) != len(texts) {
		return nil, refdex.Errorf(refdex.EINTERNAL, "gemini returned %d embeddings for %d texts", len(result.Embeddings), len(texts))
	}

	embeddings := make([][]float32, len(result.Embeddings))
	for i, emb := range result.Embeddings {
		if emb == nil || len(emb.Values) == 0 {
			return nil, refdex.Errorf(refdex.EINTERNAL, "gemini returned empty embedding at index %d", i)
		}
		embeddings[i] = emb.Values
	}
	return embeddings, nil
}

// BuildEmbedConfig returns the EmbedContentConfig for Gemini API calls.
func BuildEmbedConfig() *genai.EmbedContentConfig {
	return &genai.EmbedContentConfig{
		TaskType: "RETRIEVAL_DOCUMENT",
	}
}
