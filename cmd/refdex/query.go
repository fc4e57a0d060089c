package main

import (
	"fmt"

	"github.com/fwojciec/refdex"
)

// Run executes the query command.
func (c *QueryCmd) Run(deps *Dependencies) error {
	if c.Answer {
		answer, err := deps.Answerer.Answer(deps.Ctx, c.Question, c.Limit)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", refdex.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, answer)
		return nil
	}

	embeddings, err := deps.Embedder.EmbedTexts(deps.Ctx, []string{c.Question})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdex.ErrorMessage(err))
		return err
	}
	if len(embeddings) != 1 {
		return refdex.Errorf(refdex.EINTERNAL, "expected 1 question embedding, got %d", len(embeddings))
	}

	results, err := deps.Searcher.SearchSimilar(deps.Ctx, embeddings[0], c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdex.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No matching documents found. Use 'refdex ingest' to load a corpus first.")
		return nil
	}

	for i, result := range results {
		doc := result.Document
		fmt.Fprintf(deps.Stdout, "%d. %s (score %.3f)\n", i+1, doc.Metadata.EntityID, result.Score)
		fmt.Fprintf(deps.Stdout, "   %s\n", doc.Metadata.URL)
		fmt.Fprintln(deps.Stdout, doc.Content)
		fmt.Fprintln(deps.Stdout)
	}
	return nil
}
