package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/refdex"
	"google.golang.org/genai"
)

const generationModel = "gemini-2.5-flash"

// Answerer answers natural language questions about indexed API reference
// documentation. It embeds the question, retrieves the most similar
// documents and asks Gemini to answer using only those documents.
type Answerer struct {
	client   *genai.Client
	embedder refdex.Embedder
	searcher refdex.SimilaritySearcher
}

// NewAnswerer creates a new Answerer.
func NewAnswerer(client *genai.Client, embedder refdex.Embedder, searcher refdex.SimilaritySearcher) *Answerer {
	return &Answerer{client: client, embedder: embedder, searcher: searcher}
}

// Answer answers a question using the top limit documents from the index.
func (a *Answerer) Answer(ctx context.Context, question string, limit int) (string, error) {
	if question == "" {
		return "", refdex.Errorf(refdex.EINVALID, "question required")
	}

	embeddings, err := a.embedder.EmbedTexts(ctx, []string{question})
	if err != nil {
		return "", err
	}
	if len(embeddings) != 1 {
		return "", refdex.Errorf(refdex.EINTERNAL, "expected 1 question embedding, got %d", len(embeddings))
	}

	results, err := a.searcher.SearchSimilar(ctx, embeddings[0], limit)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", refdex.Errorf(refdex.ENOTFOUND, "no documents found in the index")
	}

	prompt := BuildUserPrompt(results, question)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, generationModel,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", refdex.Errorf(refdex.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about API reference documentation. Answer based only on the documentation provided. If the answer is not in the documentation, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing documentation and question.
func BuildUserPrompt(results []refdex.SearchResult, question string) string {
	var sb strings.Builder
	sb.WriteString("<documents>\n")
	for i, result := range results {
		doc := result.Document
		sb.WriteString("<document>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<id>%s</id>\n", doc.Metadata.EntityID)
		fmt.Fprintf(&sb, "<source>%s</source>\n", doc.Metadata.URL)
		fmt.Fprintf(&sb, "<content>%s</content>\n", doc.Content)
		sb.WriteString("</document>\n")
	}
	sb.WriteString("</documents>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
