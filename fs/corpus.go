// Package fs provides file-based corpus storage and documentation file
// selection.
package fs

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/fwojciec/refdex"
)

// CorpusWriter serializes entity records as JSON Lines, one record per line.
type CorpusWriter struct {
	w   *bufio.Writer
	enc *json.Encoder
}

// NewCorpusWriter creates a CorpusWriter on top of w.
func NewCorpusWriter(w io.Writer) *CorpusWriter {
	bw := bufio.NewWriter(w)
	return &CorpusWriter{
		w:   bw,
		enc: json.NewEncoder(bw),
	}
}

// WriteEntity appends one record line to the corpus.
func (cw *CorpusWriter) WriteEntity(e *refdex.Entity) error {
	if err := e.Validate(); err != nil {
		return err
	}
	return cw.enc.Encode(e)
}

// Flush writes any buffered records to the underlying writer.
func (cw *CorpusWriter) Flush() error {
	return cw.w.Flush()
}

// CorpusScanner streams corpus lines one record at a time, tracking line
// numbers so consumers can report malformed lines without aborting.
type CorpusScanner struct {
	s    *bufio.Scanner
	line int
}

// NewCorpusScanner creates a CorpusScanner reading from r.
func NewCorpusScanner(r io.Reader) *CorpusScanner {
	s := bufio.NewScanner(r)
	// Records with large code examples can exceed the default token size.
	s.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	return &CorpusScanner{s: s}
}

// Scan advances to the next non-blank line. It returns false at end of input.
func (cs *CorpusScanner) Scan() bool {
	for cs.s.Scan() {
		cs.line++
		if len(trimBlank(cs.s.Bytes())) > 0 {
			return true
		}
	}
	return false
}

// Entity decodes the current line. A decode failure is a corpus-line-parse
// error: the caller should log it with Line() and continue scanning.
func (cs *CorpusScanner) Entity() (*refdex.Entity, error) {
	var e refdex.Entity
	if err := json.Unmarshal(cs.s.Bytes(), &e); err != nil {
		return nil, refdex.Errorf(refdex.EINVALID, "malformed corpus line %d: %v", cs.line, err)
	}
	return &e, nil
}

// Line returns the 1-based line number of the current line.
func (cs *CorpusScanner) Line() int {
	return cs.line
}

// Err returns the first non-EOF error encountered while scanning.
func (cs *CorpusScanner) Err() error {
	return cs.s.Err()
}

func trimBlank(b []byte) []byte {
	start, end := 0, len(b)
	for start < end && (b[start] == ' ' || b[start] == '\t' || b[start] == '\r') {
		start++
	}
	for end > start && (b[end-1] == ' ' || b[end-1] == '\t' || b[end-1] == '\r') {
		end--
	}
	return b[start:end]
}
