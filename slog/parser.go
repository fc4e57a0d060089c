package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/refdex"
)

// Ensure LoggingParser implements refdex.EntityParser.
var _ refdex.EntityParser = (*LoggingParser)(nil)

// LoggingParser wraps an EntityParser with logging.
type LoggingParser struct {
	next   refdex.EntityParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next refdex.EntityParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) Parse(r io.Reader, pageName string) (entities []*refdex.Entity, err error) {
	defer func(begin time.Time) {
		p.logger.Info("page parse",
			"page", pageName,
			"entities", len(entities),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(r, pageName)
}
