package gedcom

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// A Document holds every record of one GEDCOM file.
type Document struct {
	Header       *Header
	Individuals  []*Individual
	Families     []*Family
	Sources      []*Source
	Repositories []*Repository
	Media        []*Multimedia
	Submitters   []*Submitter
	Submissions  []*Submission
	SharedNotes  []*SharedNote
	Custom       []*UserDefinedTag
}

// parseDocument runs the top-level loop: every record opens with a
// level-0 line carrying an optional xref pointer and a record tag. The
// TRLR tag ends the document; so does the end of the input, for files
// written without a trailer.
func parseDocument(tk *Tokenizer, log *zap.SugaredLogger) (*Document, error) {
	doc := &Document{}
	if err := tk.Next(); err != nil {
		return nil, err
	}
	for !tk.Done() {
		if tk.tok.Type != LevelToken {
			return nil, &ParseError{Line: tk.line, Message: fmt.Sprintf("expected level, found %s token", tk.tok.Type)}
		}
		level := tk.tok.Level
		if err := tk.Next(); err != nil {
			return nil, err
		}

		xref := ""
		if tk.tok.Type == PointerToken {
			xref = tk.tok.Value
			if err := tk.Next(); err != nil {
				return nil, err
			}
		}

		switch tk.tok.Type {
		case TagToken:
			tag := tk.tok.Value
			if tag == "TRLR" {
				return doc, nil
			}
			if err := doc.parseRecord(tk, level, tag, xref, log); err != nil {
				return nil, err
			}
		case CustomTagToken:
			udt, err := parseUserDefinedTag(tk, level, tk.tok.Value)
			if err != nil {
				return nil, err
			}
			doc.Custom = append(doc.Custom, udt)
		case EOFToken:
			return doc, nil
		default:
			return nil, &ParseError{Line: tk.line, Message: fmt.Sprintf("expected record tag, found %s token", tk.tok.Type)}
		}
	}
	return doc, nil
}

func (doc *Document) parseRecord(tk *Tokenizer, level int, tag, xref string, log *zap.SugaredLogger) error {
	switch tag {
	case "HEAD":
		h, err := parseHeader(tk, level)
		if err != nil {
			return err
		}
		doc.Header = h
	case "INDI":
		i, err := parseIndividual(tk, level, xref)
		if err != nil {
			return err
		}
		doc.Individuals = append(doc.Individuals, i)
	case "FAM":
		f, err := parseFamily(tk, level, xref)
		if err != nil {
			return err
		}
		doc.Families = append(doc.Families, f)
	case "SOUR":
		s, err := parseSource(tk, level, xref)
		if err != nil {
			return err
		}
		doc.Sources = append(doc.Sources, s)
	case "REPO":
		r, err := parseRepository(tk, level, xref)
		if err != nil {
			return err
		}
		doc.Repositories = append(doc.Repositories, r)
	case "OBJE":
		m, err := parseMultimedia(tk, level, xref)
		if err != nil {
			return err
		}
		doc.Media = append(doc.Media, m)
	case "SUBM":
		s, err := parseSubmitter(tk, level, xref)
		if err != nil {
			return err
		}
		doc.Submitters = append(doc.Submitters, s)
	case "SUBN":
		s, err := parseSubmission(tk, level, xref)
		if err != nil {
			return err
		}
		doc.Submissions = append(doc.Submissions, s)
	case "SNOTE":
		n, err := parseSharedNote(tk, level, xref)
		if err != nil {
			return err
		}
		doc.SharedNotes = append(doc.SharedNotes, n)
	default:
		// An unrecognized record tag. Keep the whole subtree so the
		// writer can reproduce it.
		log.Debugw("keeping unrecognized record", "tag", tag, "line", tk.line)
		udt, err := parseUserDefinedTag(tk, level, tag)
		if err != nil {
			return err
		}
		doc.Custom = append(doc.Custom, udt)
	}
	return nil
}

// TotalRecords returns the number of records in the document, the
// header excluded.
func (doc *Document) TotalRecords() int {
	return len(doc.Individuals) + len(doc.Families) + len(doc.Sources) +
		len(doc.Repositories) + len(doc.Media) + len(doc.Submitters) +
		len(doc.Submissions) + len(doc.SharedNotes) + len(doc.Custom)
}

// Version returns the GEDCOM version declared in the header, or "" when
// the header does not carry one.
func (doc *Document) Version() string {
	if doc.Header == nil || doc.Header.Gedcom == nil {
		return ""
	}
	return doc.Header.Gedcom.Version
}

// IsV5 reports whether the header declares a 5.x version.
func (doc *Document) IsV5() bool {
	return strings.HasPrefix(doc.Version(), "5")
}

// IsV7 reports whether the header declares a 7.x version.
func (doc *Document) IsV7() bool {
	return strings.HasPrefix(doc.Version(), "7")
}

// FindIndividual returns the individual declared with the given xref,
// or nil.
func (doc *Document) FindIndividual(xref string) *Individual {
	for _, i := range doc.Individuals {
		if i.Xref == xref {
			return i
		}
	}
	return nil
}

// FindFamily returns the family declared with the given xref, or nil.
func (doc *Document) FindFamily(xref string) *Family {
	for _, f := range doc.Families {
		if f.Xref == xref {
			return f
		}
	}
	return nil
}

// FindSource returns the source declared with the given xref, or nil.
func (doc *Document) FindSource(xref string) *Source {
	for _, s := range doc.Sources {
		if s.Xref == xref {
			return s
		}
	}
	return nil
}

// FindRepository returns the repository declared with the given xref,
// or nil.
func (doc *Document) FindRepository(xref string) *Repository {
	for _, r := range doc.Repositories {
		if r.Xref == xref {
			return r
		}
	}
	return nil
}

// FindMultimedia returns the multimedia record declared with the given
// xref, or nil.
func (doc *Document) FindMultimedia(xref string) *Multimedia {
	for _, m := range doc.Media {
		if m.Xref == xref {
			return m
		}
	}
	return nil
}

// FindSubmitter returns the submitter declared with the given xref, or
// nil.
func (doc *Document) FindSubmitter(xref string) *Submitter {
	for _, s := range doc.Submitters {
		if s.Xref == xref {
			return s
		}
	}
	return nil
}
