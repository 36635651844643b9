package gedcom

import "fmt"

// ValidateReferences checks that every cross-reference pointer used by
// family structures resolves to a record declared in the document. It
// returns an *InvalidFormatError naming the first dangling pointer.
func (doc *Document) ValidateReferences() error {
	declared := make(map[string]bool)
	for _, i := range doc.Individuals {
		if i.Xref != "" {
			declared[i.Xref] = true
		}
	}
	for _, f := range doc.Families {
		if f.Xref != "" {
			declared[f.Xref] = true
		}
	}
	for _, s := range doc.Sources {
		if s.Xref != "" {
			declared[s.Xref] = true
		}
	}
	for _, r := range doc.Repositories {
		if r.Xref != "" {
			declared[r.Xref] = true
		}
	}
	for _, m := range doc.Media {
		if m.Xref != "" {
			declared[m.Xref] = true
		}
	}
	for _, s := range doc.Submitters {
		if s.Xref != "" {
			declared[s.Xref] = true
		}
	}
	for _, s := range doc.Submissions {
		if s.Xref != "" {
			declared[s.Xref] = true
		}
	}
	for _, n := range doc.SharedNotes {
		if n.Xref != "" {
			declared[n.Xref] = true
		}
	}

	check := func(xref, kind, holder string) error {
		if xref == "" || declared[xref] {
			return nil
		}
		return &InvalidFormatError{
			Message: fmt.Sprintf("%s reference %s in %s does not resolve", kind, xref, holder),
		}
	}

	for _, f := range doc.Families {
		holder := "family " + f.Xref
		if err := check(f.Husband, "HUSB", holder); err != nil {
			return err
		}
		if err := check(f.Wife, "WIFE", holder); err != nil {
			return err
		}
		for _, c := range f.Children {
			if err := check(c, "CHIL", holder); err != nil {
				return err
			}
		}
	}
	for _, i := range doc.Individuals {
		holder := "individual " + i.Xref
		for _, fl := range i.Families {
			if err := check(fl.Xref, fl.Kind, holder); err != nil {
				return err
			}
		}
	}
	return nil
}
