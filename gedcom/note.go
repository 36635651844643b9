package gedcom

// A Note is an inline note whose text has already been reassembled from
// its continuation lines.
type Note struct {
	Value  string
	Custom []*UserDefinedTag
}

// parseNote reads a NOTE subtree. level is the level of the NOTE line.
func parseNote(tk *Tokenizer, level int) (*Note, error) {
	n := &Note{}
	v, err := tk.TakeContinuedText(level)
	if err != nil {
		return nil, err
	}
	n.Value = v

	n.Custom, err = parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		_, err := tk.TakeLineValue()
		return err
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

// A SharedNote is a note record (tag: SNOTE) other records can point
// to.
type SharedNote struct {
	Xref         string
	Text         string
	Mime         string
	Language     string
	Translations []*Translation
	Citations    []*Citation
	ChangeDate   *ChangeDate
	Custom       []*UserDefinedTag
}

// A Translation is an alternate rendering of a shared note's text.
type Translation struct {
	Value    string
	Mime     string
	Language string
}

func parseSharedNote(tk *Tokenizer, level int, xref string) (*SharedNote, error) {
	n := &SharedNote{Xref: xref}
	v, err := tk.TakeContinuedText(level)
	if err != nil {
		return nil, err
	}
	n.Text = v

	n.Custom, err = parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "MIME":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			n.Mime = v
		case "LANG":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			n.Language = v
		case "TRAN":
			tr, err := parseTranslation(tk, level+1)
			if err != nil {
				return err
			}
			n.Translations = append(n.Translations, tr)
		case "SOUR":
			c, err := parseCitation(tk, level+1)
			if err != nil {
				return err
			}
			n.Citations = append(n.Citations, c)
		case "CHAN":
			cd, err := parseChangeDate(tk, level+1)
			if err != nil {
				return err
			}
			n.ChangeDate = cd
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

func parseTranslation(tk *Tokenizer, level int) (*Translation, error) {
	tr := &Translation{}
	v, err := tk.TakeContinuedText(level)
	if err != nil {
		return nil, err
	}
	tr.Value = v

	_, err = parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "MIME":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			tr.Mime = v
		case "LANG":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			tr.Language = v
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tr, nil
}
