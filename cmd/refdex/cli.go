package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/refdex"
	"github.com/fwojciec/refdex/gemini"
	"github.com/fwojciec/refdex/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	DB       *sqlite.DB
	Parser   refdex.EntityParser
	Store    refdex.DocumentStore
	Searcher refdex.SimilaritySearcher
	Embedder refdex.Embedder
	Answerer *gemini.Answerer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Select SelectCmd `cmd:"" help:"Copy matching documentation pages into a working directory"`
	Parse  ParseCmd  `cmd:"" help:"Extract API entities from HTML pages into a JSONL corpus"`
	Ingest IngestCmd `cmd:"" help:"Embed and load a JSONL corpus into the vector store"`
	Query  QueryCmd  `cmd:"" help:"Search the vector store for relevant API documentation"`
}

// SelectCmd is the "select" subcommand.
type SelectCmd struct {
	SrcDir  string   `arg:"" help:"Directory containing the full documentation dump"`
	DstDir  string   `arg:"" help:"Working directory to copy selected pages into"`
	Include []string `short:"i" default:"*.html" help:"Include base names matching pattern (repeatable)"`
	Exclude []string `short:"x" help:"Exclude base names matching pattern (repeatable)"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	SrcDir string `arg:"" help:"Directory containing selected HTML pages"`
	Out    string `short:"o" default:"corpus.jsonl" help:"Output corpus file"`
}

// IngestCmd is the "ingest" subcommand.
type IngestCmd struct {
	Corpus    string `arg:"" default:"corpus.jsonl" help:"JSONL corpus file to ingest"`
	BatchSize int    `short:"b" default:"1000" help:"Documents per insertion batch"`
}

// QueryCmd is the "query" subcommand.
type QueryCmd struct {
	Question string `arg:"" help:"Free-text question about the API"`
	Limit    int    `short:"k" default:"5" help:"Number of documents to retrieve"`
	Answer   bool   `short:"a" help:"Generate an answer from the retrieved documents"`
}
