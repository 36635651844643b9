package gedcom

import (
	"bufio"
	"io"
	"strings"

	"go.uber.org/zap"
)

// A Record is any top-level entry a StreamReader can return.
type Record interface {
	recordKind() string
}

func (*Header) recordKind() string         { return "HEAD" }
func (*Individual) recordKind() string     { return "INDI" }
func (*Family) recordKind() string         { return "FAM" }
func (*Source) recordKind() string         { return "SOUR" }
func (*Repository) recordKind() string     { return "REPO" }
func (*Multimedia) recordKind() string     { return "OBJE" }
func (*Submitter) recordKind() string      { return "SUBM" }
func (*Submission) recordKind() string     { return "SUBN" }
func (*SharedNote) recordKind() string     { return "SNOTE" }
func (*UserDefinedTag) recordKind() string { return "" }

// A StreamReader parses one top-level record at a time, holding only
// the lines of the current record in memory. Use it for files too large
// to parse in one piece.
type StreamReader struct {
	sc   *bufio.Scanner
	next string
	held bool
	done bool
	log  *zap.SugaredLogger
}

const maxStreamLine = 8 * 1024 * 1024

// NewStreamReader returns a reader over r. The input must already be
// UTF-8; decode other encodings with DecodeBytes first.
func NewStreamReader(r io.Reader) *StreamReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxStreamLine)
	return &StreamReader{sc: sc, log: zap.NewNop().Sugar()}
}

// SetLogger routes diagnostics for unrecognized records to l.
func (sr *StreamReader) SetLogger(l *zap.SugaredLogger) {
	sr.log = l
}

// isRecordStart reports whether the line opens a level-0 record.
func isRecordStart(line string) bool {
	trimmed := strings.TrimLeft(line, " \t\uFEFF")
	return trimmed == "0" || strings.HasPrefix(trimmed, "0 ")
}

// Read returns the next top-level record. It returns io.EOF after the
// trailer, or after the last record when the file has no trailer.
func (sr *StreamReader) Read() (Record, error) {
	for {
		if sr.done {
			return nil, io.EOF
		}
		chunk, err := sr.nextChunk()
		if err != nil {
			return nil, err
		}
		rec, err := sr.parseChunk(chunk)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			return rec, nil
		}
	}
}

// nextChunk gathers the lines of one record: a level-0 line and
// everything up to, but not including, the next level-0 line.
func (sr *StreamReader) nextChunk() ([]string, error) {
	var chunk []string
	if sr.held {
		chunk = append(chunk, sr.next)
		sr.held = false
	}
	for sr.sc.Scan() {
		line := sr.sc.Text()
		if strings.TrimSpace(strings.TrimLeft(line, "\uFEFF")) == "" {
			continue
		}
		if isRecordStart(line) && len(chunk) > 0 {
			sr.next = line
			sr.held = true
			return chunk, nil
		}
		chunk = append(chunk, line)
	}
	if err := sr.sc.Err(); err != nil {
		sr.done = true
		return nil, err
	}
	sr.done = true
	if len(chunk) == 0 {
		return nil, io.EOF
	}
	return chunk, nil
}

// parseChunk parses one record's lines through the regular record
// parsers. A nil record with a nil error means the chunk carried
// nothing to return, such as the trailer.
func (sr *StreamReader) parseChunk(chunk []string) (Record, error) {
	src := strings.Join(chunk, "\n") + "\n0 TRLR\n"
	doc, err := parseDocument(NewTokenizer(src), sr.log)
	if err != nil {
		return nil, err
	}
	switch {
	case doc.Header != nil:
		return doc.Header, nil
	case len(doc.Individuals) > 0:
		return doc.Individuals[0], nil
	case len(doc.Families) > 0:
		return doc.Families[0], nil
	case len(doc.Sources) > 0:
		return doc.Sources[0], nil
	case len(doc.Repositories) > 0:
		return doc.Repositories[0], nil
	case len(doc.Media) > 0:
		return doc.Media[0], nil
	case len(doc.Submitters) > 0:
		return doc.Submitters[0], nil
	case len(doc.Submissions) > 0:
		return doc.Submissions[0], nil
	case len(doc.SharedNotes) > 0:
		return doc.SharedNotes[0], nil
	case len(doc.Custom) > 0:
		return doc.Custom[0], nil
	}
	return nil, nil
}

// CollectDocument drains r into a Document, the same shape Parse would
// have produced for the whole file.
func CollectDocument(r *StreamReader) (*Document, error) {
	doc := &Document{}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return doc, nil
		}
		if err != nil {
			return nil, err
		}
		switch rec := rec.(type) {
		case *Header:
			doc.Header = rec
		case *Individual:
			doc.Individuals = append(doc.Individuals, rec)
		case *Family:
			doc.Families = append(doc.Families, rec)
		case *Source:
			doc.Sources = append(doc.Sources, rec)
		case *Repository:
			doc.Repositories = append(doc.Repositories, rec)
		case *Multimedia:
			doc.Media = append(doc.Media, rec)
		case *Submitter:
			doc.Submitters = append(doc.Submitters, rec)
		case *Submission:
			doc.Submissions = append(doc.Submissions, rec)
		case *SharedNote:
			doc.SharedNotes = append(doc.SharedNotes, rec)
		case *UserDefinedTag:
			doc.Custom = append(doc.Custom, rec)
		}
	}
}
