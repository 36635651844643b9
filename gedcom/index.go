package gedcom

// An Index maps cross-reference pointers to the records that declare
// them, one map per record kind. Records without a pointer are not
// indexed.
type Index struct {
	Individuals  map[string]*Individual
	Families     map[string]*Family
	Sources      map[string]*Source
	Repositories map[string]*Repository
	Media        map[string]*Multimedia
	Submitters   map[string]*Submitter
	Submissions  map[string]*Submission
	SharedNotes  map[string]*SharedNote
}

// Index builds a pointer index over the document. On duplicate
// pointers the last record wins.
func (doc *Document) Index() *Index {
	idx := &Index{
		Individuals:  make(map[string]*Individual),
		Families:     make(map[string]*Family),
		Sources:      make(map[string]*Source),
		Repositories: make(map[string]*Repository),
		Media:        make(map[string]*Multimedia),
		Submitters:   make(map[string]*Submitter),
		Submissions:  make(map[string]*Submission),
		SharedNotes:  make(map[string]*SharedNote),
	}
	for _, r := range doc.Individuals {
		if r.Xref != "" {
			idx.Individuals[r.Xref] = r
		}
	}
	for _, r := range doc.Families {
		if r.Xref != "" {
			idx.Families[r.Xref] = r
		}
	}
	for _, r := range doc.Sources {
		if r.Xref != "" {
			idx.Sources[r.Xref] = r
		}
	}
	for _, r := range doc.Repositories {
		if r.Xref != "" {
			idx.Repositories[r.Xref] = r
		}
	}
	for _, r := range doc.Media {
		if r.Xref != "" {
			idx.Media[r.Xref] = r
		}
	}
	for _, r := range doc.Submitters {
		if r.Xref != "" {
			idx.Submitters[r.Xref] = r
		}
	}
	for _, r := range doc.Submissions {
		if r.Xref != "" {
			idx.Submissions[r.Xref] = r
		}
	}
	for _, r := range doc.SharedNotes {
		if r.Xref != "" {
			idx.SharedNotes[r.Xref] = r
		}
	}
	return idx
}
