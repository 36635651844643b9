package gedcom

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// WriterConfig tunes serialization. The zero value is usable: LF line
// endings, 255-character lines, empty fields omitted, version 5.5.1.
type WriterConfig struct {
	// LineEnding terminates every line. Defaults to "\n".
	LineEnding string

	// MaxLineLength is the whole-line budget in characters; values that
	// would overflow it continue on CONC lines. Zero means the default
	// of 255, a negative value disables wrapping.
	MaxLineLength int

	// IncludeEmptyFields emits optional scalar fields even when empty.
	IncludeEmptyFields bool

	// Version is the GEDCOM version written into a synthesized header.
	// Defaults to "5.5.1".
	Version string
}

func (c WriterConfig) withDefaults() WriterConfig {
	if c.LineEnding == "" {
		c.LineEnding = "\n"
	}
	if c.MaxLineLength == 0 {
		c.MaxLineLength = 255
	}
	if c.Version == "" {
		c.Version = "5.5.1"
	}
	return c
}

// A Writer serializes a Document back to GEDCOM text. Values that were
// reassembled from CONT and CONC lines on parse are split again on
// write, so parse, write, parse reproduces the same Document.
type Writer struct {
	cfg WriterConfig
	b   strings.Builder
}

// NewWriter returns a writer using cfg, with defaults applied.
func NewWriter(cfg WriterConfig) *Writer {
	return &Writer{cfg: cfg.withDefaults()}
}

// Write serializes doc with the default configuration.
func Write(doc *Document) string {
	return NewWriter(WriterConfig{}).Render(doc)
}

// Render serializes doc: header first, then records grouped by kind,
// then the trailer. A document without a header gets a minimal
// synthesized one.
func (w *Writer) Render(doc *Document) string {
	w.b.Reset()
	if doc.Header != nil {
		w.header(doc.Header)
	} else {
		w.syntheticHeader()
	}
	for _, s := range doc.Submitters {
		w.submitter(s)
	}
	for _, s := range doc.Submissions {
		w.submission(s)
	}
	for _, i := range doc.Individuals {
		w.individual(i)
	}
	for _, f := range doc.Families {
		w.family(f)
	}
	for _, s := range doc.Sources {
		w.source(s)
	}
	for _, r := range doc.Repositories {
		w.repository(r)
	}
	for _, m := range doc.Media {
		w.multimediaRecord(m)
	}
	for _, n := range doc.SharedNotes {
		w.sharedNote(n)
	}
	w.custom(0, doc.Custom)
	w.raw(0, "TRLR", "")
	return w.b.String()
}

// raw emits one line without wrapping.
func (w *Writer) raw(level int, tag, value string) {
	w.b.WriteString(strconv.Itoa(level))
	w.b.WriteByte(' ')
	w.b.WriteString(tag)
	if value != "" {
		w.b.WriteByte(' ')
		w.b.WriteString(value)
	}
	w.b.WriteString(w.cfg.LineEnding)
}

// recordLine emits the level-0 line opening a record, with its xref
// pointer when present.
func (w *Writer) recordLine(xref, tag string) {
	w.b.WriteByte('0')
	w.b.WriteByte(' ')
	if xref != "" {
		w.b.WriteString(xref)
		w.b.WriteByte(' ')
	}
	w.b.WriteString(tag)
	w.b.WriteString(w.cfg.LineEnding)
}

// line emits one line, continuing the value on CONC lines at concLevel
// when the whole line would exceed the length budget. Splits never land
// inside a rune and never leave a continuation starting with a space,
// which the tokenizer would swallow.
func (w *Writer) line(level int, tag, value string, concLevel int) {
	if w.cfg.MaxLineLength <= 0 {
		w.raw(level, tag, value)
		return
	}
	prefix := len(strconv.Itoa(level)) + 1 + utf8.RuneCountInString(tag) + 1
	budget := w.cfg.MaxLineLength - prefix
	if budget < 1 {
		budget = 1
	}
	head, rest := splitValue(value, budget)
	w.raw(level, tag, head)
	concPrefix := len(strconv.Itoa(concLevel)) + len(" CONC ")
	concBudget := w.cfg.MaxLineLength - concPrefix
	if concBudget < 1 {
		concBudget = 1
	}
	for rest != "" {
		head, rest = splitValue(rest, concBudget)
		w.raw(concLevel, "CONC", head)
	}
}

// splitValue cuts at most budget runes off the front of value, moving
// the cut left so the remainder never begins with a space.
func splitValue(value string, budget int) (head, rest string) {
	if utf8.RuneCountInString(value) <= budget {
		return value, ""
	}
	cut := 0
	for n := 0; n < budget; n++ {
		_, size := utf8.DecodeRuneInString(value[cut:])
		cut += size
	}
	// The tokenizer swallows blanks after the CONC tag, so the remainder
	// must not start with a space. Walk the cut back over whole runes
	// until it does not.
	adjusted := cut
	for adjusted > 0 && value[adjusted] == ' ' {
		_, size := utf8.DecodeLastRuneInString(value[:adjusted])
		adjusted -= size
	}
	if adjusted > 0 && value[adjusted] != ' ' {
		cut = adjusted
	} else if value[cut] == ' ' {
		// A space run longer than the whole budget. Keep the run in
		// this chunk even though the line overflows, because a
		// continuation can never begin with a space.
		for cut < len(value) && value[cut] == ' ' {
			cut++
		}
		if cut == len(value) {
			return value, ""
		}
	}
	return value[:cut], value[cut:]
}

// opt emits a single-line field, skipping empty values unless the
// configuration keeps them. Single-line values are never wrapped: their
// parsers read exactly one line, so a CONC split would not merge back.
func (w *Writer) opt(level int, tag, value string) {
	if value == "" && !w.cfg.IncludeEmptyFields {
		return
	}
	w.raw(level, tag, value)
}

// text emits a value that may span lines: the first segment inline,
// later segments on CONT lines, all wrapped with CONC against the
// length budget.
func (w *Writer) text(level int, tag, value string) {
	segments := strings.Split(value, "\n")
	w.line(level, tag, segments[0], level+1)
	for _, seg := range segments[1:] {
		w.line(level+1, "CONT", seg, level+1)
	}
}

// custom writes extension subtrees verbatim, without wrapping, so they
// reparse into identical trees.
func (w *Writer) custom(level int, tags []*UserDefinedTag) {
	for _, t := range tags {
		w.raw(level, t.Tag, t.Value)
		w.custom(level+1, t.Children)
	}
}

func (w *Writer) syntheticHeader() {
	w.raw(0, "HEAD", "")
	w.raw(1, "GEDC", "")
	w.raw(2, "VERS", w.cfg.Version)
	w.raw(2, "FORM", "LINEAGE-LINKED")
	w.raw(1, "CHAR", "UTF-8")
}

func (w *Writer) header(h *Header) {
	w.raw(0, "HEAD", "")
	if s := h.Source; s != nil {
		w.raw(1, "SOUR", s.Value)
		w.opt(2, "VERS", s.Version)
		w.opt(2, "NAME", s.Name)
		if c := s.Corporation; c != nil {
			w.raw(2, "CORP", c.Value)
			if c.Address != nil {
				w.address(3, c.Address)
			}
			w.opt(3, "PHON", c.Phone)
			w.opt(3, "EMAIL", c.Email)
			w.opt(3, "FAX", c.Fax)
			w.opt(3, "WWW", c.Website)
		}
		if d := s.Data; d != nil {
			w.raw(2, "DATA", d.Value)
			if d.Date != nil {
				w.date(3, d.Date)
			}
			if d.Copyright != "" || w.cfg.IncludeEmptyFields {
				w.text(3, "COPR", d.Copyright)
			}
		}
	}
	w.opt(1, "DEST", h.Destination)
	if h.Date != nil {
		w.date(1, h.Date)
	}
	w.opt(1, "SUBM", h.Submitter)
	w.opt(1, "SUBN", h.Submission)
	w.opt(1, "FILE", h.Filename)
	if h.Copyright != "" || w.cfg.IncludeEmptyFields {
		w.text(1, "COPR", h.Copyright)
	}
	if g := h.Gedcom; g != nil {
		w.raw(1, "GEDC", "")
		w.opt(2, "VERS", g.Version)
		w.opt(2, "FORM", g.Form)
	}
	if cs := h.Encoding; cs != nil {
		w.raw(1, "CHAR", cs.Value)
		w.opt(2, "VERS", cs.Version)
	}
	w.opt(1, "LANG", h.Language)
	if h.Note != nil {
		w.note(1, h.Note)
	}
	w.custom(1, h.Custom)
}

func (w *Writer) individual(i *Individual) {
	w.recordLine(i.Xref, "INDI")
	if i.Name != nil {
		w.name(1, i.Name)
	}
	if i.Sex != nil {
		w.gender(1, i.Sex)
	}
	for _, e := range i.Events {
		w.event(1, e)
	}
	for _, a := range i.Attributes {
		w.attribute(1, a)
	}
	for _, fl := range i.Families {
		w.familyLink(1, fl)
	}
	for _, c := range i.Citations {
		w.citation(1, c)
	}
	for _, m := range i.Media {
		w.multimediaLink(1, m)
	}
	if i.Note != nil {
		w.note(1, i.Note)
	}
	if i.ChangeDate != nil {
		w.changeDate(1, i.ChangeDate)
	}
	w.custom(1, i.Custom)
}

func (w *Writer) name(level int, n *Name) {
	w.raw(level, "NAME", n.Value)
	w.opt(level+1, "NPFX", n.Prefix)
	w.opt(level+1, "GIVN", n.Given)
	w.opt(level+1, "NICK", n.Nickname)
	w.opt(level+1, "SPFX", n.SurnamePrefix)
	w.opt(level+1, "SURN", n.Surname)
	w.opt(level+1, "NSFX", n.Suffix)
	w.opt(level+1, "TYPE", n.Type)
	for _, nv := range n.Phonetic {
		w.nameVariation(level+1, "FONE", nv)
	}
	for _, nv := range n.Romanized {
		w.nameVariation(level+1, "ROMN", nv)
	}
	for _, c := range n.Citations {
		w.citation(level+1, c)
	}
	if n.Note != nil {
		w.note(level+1, n.Note)
	}
	w.custom(level+1, n.Custom)
}

func (w *Writer) nameVariation(level int, tag string, nv *NameVariation) {
	w.raw(level, tag, nv.Value)
	w.opt(level+1, "TYPE", nv.Type)
	w.opt(level+1, "GIVN", nv.Given)
	w.opt(level+1, "SURN", nv.Surname)
}

func (w *Writer) gender(level int, g *Gender) {
	w.raw(level, "SEX", g.Value)
	if g.Fact != "" || w.cfg.IncludeEmptyFields {
		w.text(level+1, "FACT", g.Fact)
	}
	for _, c := range g.Citations {
		w.citation(level+1, c)
	}
	w.custom(level+1, g.Custom)
}

func (w *Writer) event(level int, e *Event) {
	w.raw(level, e.Tag, e.Value)
	w.opt(level+1, "TYPE", e.Type)
	if e.Date != nil {
		w.date(level+1, e.Date)
	}
	if e.Place != nil {
		w.place(level+1, e.Place)
	}
	w.opt(level+1, "AGE", e.Age)
	w.opt(level+1, "AGNC", e.Agency)
	if e.Cause != "" || w.cfg.IncludeEmptyFields {
		w.text(level+1, "CAUS", e.Cause)
	}
	if e.FamilyLink != nil {
		w.familyLink(level+1, e.FamilyLink)
	}
	for _, sd := range e.Spouses {
		w.raw(level+1, sd.Kind, "")
		w.opt(level+2, "AGE", sd.Age)
	}
	for _, c := range e.Citations {
		w.citation(level+1, c)
	}
	for _, m := range e.Media {
		w.multimediaLink(level+1, m)
	}
	if e.Note != nil {
		w.note(level+1, e.Note)
	}
	w.custom(level+1, e.Custom)
}

func (w *Writer) attribute(level int, a *Attribute) {
	w.text(level, a.Tag, a.Value)
	if a.Type != "" || w.cfg.IncludeEmptyFields {
		w.text(level+1, "TYPE", a.Type)
	}
	if a.Date != nil {
		w.date(level+1, a.Date)
	}
	w.opt(level+1, "PLAC", a.Place)
	if a.Address != nil {
		w.address(level+1, a.Address)
	}
	w.opt(level+1, "AGE", a.Age)
	w.opt(level+1, "AGNC", a.Agency)
	if a.Cause != "" || w.cfg.IncludeEmptyFields {
		w.text(level+1, "CAUS", a.Cause)
	}
	for _, c := range a.Citations {
		w.citation(level+1, c)
	}
	if a.Note != nil {
		w.note(level+1, a.Note)
	}
	w.custom(level+1, a.Custom)
}

func (w *Writer) familyLink(level int, fl *FamilyLink) {
	w.raw(level, fl.Kind, fl.Xref)
	w.opt(level+1, "PEDI", fl.Pedigree)
	w.opt(level+1, "STAT", fl.Status)
	w.opt(level+1, "ADOP", fl.AdoptedBy)
	if fl.Note != nil {
		w.note(level+1, fl.Note)
	}
	w.custom(level+1, fl.Custom)
}

func (w *Writer) family(f *Family) {
	w.recordLine(f.Xref, "FAM")
	if f.Husband != "" || w.cfg.IncludeEmptyFields {
		w.raw(1, "HUSB", f.Husband)
	}
	if f.Wife != "" || w.cfg.IncludeEmptyFields {
		w.raw(1, "WIFE", f.Wife)
	}
	for _, c := range f.Children {
		w.raw(1, "CHIL", c)
	}
	w.opt(1, "NCHI", f.NumChildren)
	for _, e := range f.Events {
		w.event(1, e)
	}
	for _, c := range f.Citations {
		w.citation(1, c)
	}
	for _, m := range f.Media {
		w.multimediaLink(1, m)
	}
	for _, n := range f.Notes {
		w.note(1, n)
	}
	if f.ChangeDate != nil {
		w.changeDate(1, f.ChangeDate)
	}
	w.custom(1, f.Custom)
}

func (w *Writer) source(s *Source) {
	w.recordLine(s.Xref, "SOUR")
	if d := s.Data; d != nil {
		w.raw(1, "DATA", "")
		for _, ev := range d.Events {
			w.raw(2, "EVEN", ev.Value)
			w.opt(3, "DATE", ev.Date)
			w.opt(3, "PLAC", ev.Place)
		}
		w.opt(2, "AGNC", d.Agency)
		w.custom(2, d.Custom)
	}
	if s.Abbreviation != "" || w.cfg.IncludeEmptyFields {
		w.text(1, "ABBR", s.Abbreviation)
	}
	if s.Title != "" || w.cfg.IncludeEmptyFields {
		w.text(1, "TITL", s.Title)
	}
	if s.Author != "" || w.cfg.IncludeEmptyFields {
		w.text(1, "AUTH", s.Author)
	}
	if s.Publication != "" || w.cfg.IncludeEmptyFields {
		w.text(1, "PUBL", s.Publication)
	}
	if s.Text != "" || w.cfg.IncludeEmptyFields {
		w.text(1, "TEXT", s.Text)
	}
	for _, rc := range s.RepoCitations {
		w.raw(1, "REPO", rc.Xref)
		if rc.CallNumber != "" || w.cfg.IncludeEmptyFields {
			w.raw(2, "CALN", rc.CallNumber)
			w.opt(3, "MEDI", rc.MediaType)
		}
	}
	for _, m := range s.Media {
		w.multimediaLink(1, m)
	}
	for _, n := range s.Notes {
		w.note(1, n)
	}
	if s.ChangeDate != nil {
		w.changeDate(1, s.ChangeDate)
	}
	w.custom(1, s.Custom)
}

func (w *Writer) repository(r *Repository) {
	w.recordLine(r.Xref, "REPO")
	w.opt(1, "NAME", r.Name)
	if r.Address != nil {
		w.address(1, r.Address)
	}
	for _, v := range r.Phones {
		w.raw(1, "PHON", v)
	}
	for _, v := range r.Emails {
		w.raw(1, "EMAIL", v)
	}
	for _, v := range r.Faxes {
		w.raw(1, "FAX", v)
	}
	for _, v := range r.Websites {
		w.raw(1, "WWW", v)
	}
	for _, n := range r.Notes {
		w.note(1, n)
	}
	if r.ChangeDate != nil {
		w.changeDate(1, r.ChangeDate)
	}
	w.custom(1, r.Custom)
}

func (w *Writer) submitter(s *Submitter) {
	w.recordLine(s.Xref, "SUBM")
	w.opt(1, "NAME", s.Name)
	if s.Address != nil {
		w.address(1, s.Address)
	}
	for _, m := range s.Media {
		w.multimediaLink(1, m)
	}
	w.opt(1, "LANG", s.Language)
	for _, v := range s.Phones {
		w.raw(1, "PHON", v)
	}
	for _, v := range s.Emails {
		w.raw(1, "EMAIL", v)
	}
	for _, v := range s.Faxes {
		w.raw(1, "FAX", v)
	}
	for _, v := range s.Websites {
		w.raw(1, "WWW", v)
	}
	if s.Note != nil {
		w.note(1, s.Note)
	}
	if s.ChangeDate != nil {
		w.changeDate(1, s.ChangeDate)
	}
	w.custom(1, s.Custom)
}

func (w *Writer) submission(s *Submission) {
	w.recordLine(s.Xref, "SUBN")
	w.opt(1, "SUBM", s.SubmitterRef)
	w.opt(1, "FAMF", s.FamilyFileName)
	w.opt(1, "TEMP", s.TempleCode)
	w.opt(1, "ANCE", s.AncestorGenerations)
	w.opt(1, "DESC", s.DescendantGenerations)
	w.opt(1, "ORDI", s.OrdinanceFlag)
	w.opt(1, "RIN", s.RecordID)
	if s.Note != nil {
		w.note(1, s.Note)
	}
	if s.ChangeDate != nil {
		w.changeDate(1, s.ChangeDate)
	}
	w.custom(1, s.Custom)
}

func (w *Writer) multimediaRecord(m *Multimedia) {
	w.recordLine(m.Xref, "OBJE")
	w.multimediaBody(1, m)
}

// multimediaLink writes an OBJE below another record: a bare pointer
// for link entries, an inline object otherwise.
func (w *Writer) multimediaLink(level int, m *Multimedia) {
	if m.IsLink() {
		w.raw(level, "OBJE", m.Xref)
		return
	}
	w.raw(level, "OBJE", m.Xref)
	w.multimediaBody(level+1, m)
}

func (w *Writer) multimediaBody(level int, m *Multimedia) {
	if f := m.File; f != nil {
		w.raw(level, "FILE", f.Value)
		if f.Format != nil {
			w.mediaFormat(level+1, f.Format)
		}
		w.opt(level+1, "TITL", f.Title)
	}
	if m.Form != nil {
		w.mediaFormat(level, m.Form)
	}
	w.opt(level, "TITL", m.Title)
	if m.Note != nil {
		w.note(level, m.Note)
	}
	if m.ChangeDate != nil {
		w.changeDate(level, m.ChangeDate)
	}
	w.custom(level, m.Custom)
}

func (w *Writer) mediaFormat(level int, f *MediaFormat) {
	w.raw(level, "FORM", f.Value)
	w.opt(level+1, "TYPE", f.MediaType)
}

func (w *Writer) sharedNote(n *SharedNote) {
	// The text rides on the record line itself, continuing on CONT
	// lines at level 1.
	segments := strings.Split(n.Text, "\n")
	tag := "SNOTE"
	if n.Xref != "" {
		tag = n.Xref + " SNOTE"
	}
	w.line(0, tag, segments[0], 1)
	for _, seg := range segments[1:] {
		w.line(1, "CONT", seg, 1)
	}
	w.opt(1, "MIME", n.Mime)
	w.opt(1, "LANG", n.Language)
	for _, tr := range n.Translations {
		w.text(1, "TRAN", tr.Value)
		w.opt(2, "MIME", tr.Mime)
		w.opt(2, "LANG", tr.Language)
	}
	for _, c := range n.Citations {
		w.citation(1, c)
	}
	if n.ChangeDate != nil {
		w.changeDate(1, n.ChangeDate)
	}
	w.custom(1, n.Custom)
}

func (w *Writer) citation(level int, c *Citation) {
	w.raw(level, "SOUR", c.Xref)
	if c.Page != "" || w.cfg.IncludeEmptyFields {
		w.text(level+1, "PAGE", c.Page)
	}
	if d := c.Data; d != nil {
		w.raw(level+1, "DATA", "")
		if d.Date != nil {
			w.date(level+2, d.Date)
		}
		if d.Text != "" || w.cfg.IncludeEmptyFields {
			w.text(level+2, "TEXT", d.Text)
		}
		w.custom(level+2, d.Custom)
	}
	w.opt(level+1, "QUAY", c.Quality)
	for _, m := range c.Media {
		w.multimediaLink(level+1, m)
	}
	if c.Note != nil {
		w.note(level+1, c.Note)
	}
	w.custom(level+1, c.Custom)
}

func (w *Writer) note(level int, n *Note) {
	w.text(level, "NOTE", n.Value)
	w.custom(level+1, n.Custom)
}

func (w *Writer) date(level int, d *Date) {
	w.raw(level, "DATE", d.Value)
	w.opt(level+1, "TIME", d.Time)
	w.opt(level+1, "PHRASE", d.Phrase)
	w.custom(level+1, d.Custom)
}

func (w *Writer) changeDate(level int, cd *ChangeDate) {
	w.raw(level, "CHAN", "")
	if cd.Date != nil {
		w.date(level+1, cd.Date)
	}
	if cd.Note != nil {
		w.note(level+1, cd.Note)
	}
	w.custom(level+1, cd.Custom)
}

func (w *Writer) place(level int, p *Place) {
	w.raw(level, "PLAC", p.Value)
	w.opt(level+1, "FORM", p.Form)
	if m := p.Map; m != nil {
		w.raw(level+1, "MAP", "")
		w.opt(level+2, "LATI", m.Latitude)
		w.opt(level+2, "LONG", m.Longitude)
		w.custom(level+2, m.Custom)
	}
	for _, pv := range p.Phonetic {
		w.raw(level+1, "FONE", pv.Value)
		w.opt(level+2, "TYPE", pv.Type)
	}
	for _, pv := range p.Romanized {
		w.raw(level+1, "ROMN", pv.Value)
		w.opt(level+2, "TYPE", pv.Type)
	}
	for _, n := range p.Notes {
		w.note(level+1, n)
	}
	w.custom(level+1, p.Custom)
}

func (w *Writer) address(level int, a *Address) {
	w.text(level, "ADDR", a.Value)
	w.opt(level+1, "CITY", a.City)
	w.opt(level+1, "STAE", a.State)
	w.opt(level+1, "POST", a.PostalCode)
	w.opt(level+1, "CTRY", a.Country)
	w.custom(level+1, a.Custom)
}
