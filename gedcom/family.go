package gedcom

// A Family is a relationship between individuals (tag: FAM). HUSB and
// WIFE are just pointers to individuals; nothing is validated about
// them on parse.
type Family struct {
	Xref        string
	Husband     string
	Wife        string
	Children    []string
	NumChildren string
	Events      []*Event
	Citations   []*Citation
	Media       []*Multimedia
	Notes       []*Note
	ChangeDate  *ChangeDate
	Custom      []*UserDefinedTag
}

func parseFamily(tk *Tokenizer, level int, xref string) (*Family, error) {
	f := &Family{Xref: xref}
	if err := tk.Next(); err != nil {
		return nil, err
	}
	custom, err := parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch {
		case familyEventTags[tag]:
			e, err := parseEvent(tk, level+1, tag)
			if err != nil {
				return err
			}
			f.Events = append(f.Events, e)
		case tag == "HUSB":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			if f.Husband != "" {
				return &ParseError{Line: tk.line, Message: "family already has a HUSB pointer"}
			}
			f.Husband = v
		case tag == "WIFE":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			if f.Wife != "" {
				return &ParseError{Line: tk.line, Message: "family already has a WIFE pointer"}
			}
			f.Wife = v
		case tag == "CHIL":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			f.Children = append(f.Children, v)
		case tag == "NCHI":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			f.NumChildren = v
		case tag == "CHAN":
			cd, err := parseChangeDate(tk, level+1)
			if err != nil {
				return err
			}
			f.ChangeDate = cd
		case tag == "SOUR":
			c, err := parseCitation(tk, level+1)
			if err != nil {
				return err
			}
			f.Citations = append(f.Citations, c)
		case tag == "OBJE":
			m, err := parseMultimedia(tk, level+1, "")
			if err != nil {
				return err
			}
			f.Media = append(f.Media, m)
		case tag == "NOTE":
			n, err := parseNote(tk, level+1)
			if err != nil {
				return err
			}
			f.Notes = append(f.Notes, n)
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	f.Custom = custom
	return f, nil
}
