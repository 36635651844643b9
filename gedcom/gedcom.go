// Package gedcom parses, validates and writes genealogical data in the
// GEDCOM line format. The parser builds a Document tree from the
// level-numbered lines, folding CONT and CONC continuations back into
// their values and keeping vendor extension tags intact; the writer
// serializes a Document back to the same format so that a parse,
// write, parse sequence is loss-free.
package gedcom

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Options tunes parsing beyond the defaults.
type Options struct {
	// ValidateReferences runs the cross-reference check after parsing.
	ValidateReferences bool

	// MaxInputSize rejects inputs larger than this many bytes before
	// parsing starts. Zero means no limit.
	MaxInputSize int64

	// Logger receives debug output. Defaults to a no-op logger.
	Logger *zap.SugaredLogger
}

// A Gedcom wraps a tokenizer over one source text and produces the
// Document from it.
type Gedcom struct {
	tk  *Tokenizer
	log *zap.SugaredLogger
}

// New returns a parser over the GEDCOM source text.
func New(src string) *Gedcom {
	return &Gedcom{tk: NewTokenizer(src), log: zap.NewNop().Sugar()}
}

// SetLogger routes the parser's debug output to l.
func (g *Gedcom) SetLogger(l *zap.SugaredLogger) {
	if l != nil {
		g.log = l
	}
}

// Parse consumes the source and returns the document tree.
func (g *Gedcom) Parse() (*Document, error) {
	return parseDocument(g.tk, g.log)
}

// Parse parses a complete GEDCOM text into a Document.
func Parse(src string) (*Document, error) {
	return New(src).Parse()
}

// ParseWithOptions parses a complete GEDCOM text, applying opts.
func ParseWithOptions(src string, opts Options) (*Document, error) {
	if opts.MaxInputSize > 0 && int64(len(src)) > opts.MaxInputSize {
		return nil, &InvalidFormatError{Message: fmt.Sprintf("input of %d bytes exceeds limit of %d", len(src), opts.MaxInputSize)}
	}
	g := New(src)
	g.SetLogger(opts.Logger)
	doc, err := g.Parse()
	if err != nil {
		return nil, err
	}
	if opts.ValidateReferences {
		if err := doc.ValidateReferences(); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// ParseReader reads all of r, decodes it and parses the result.
func ParseReader(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	src, err := DecodeBytes(raw)
	if err != nil {
		return nil, err
	}
	return Parse(src)
}

// ParseFile reads, decodes and parses the named GEDCOM file.
func ParseFile(name string) (*Document, error) {
	raw, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	src, err := DecodeBytes(raw)
	if err != nil {
		return nil, err
	}
	return Parse(src)
}
