package gedcom

// A Submitter identifies who contributed the data (tag: SUBM at
// level 0).
type Submitter struct {
	Xref       string
	Name       string
	Address    *Address
	Media      []*Multimedia
	Language   string
	Phones     []string
	Emails     []string
	Faxes      []string
	Websites   []string
	Note       *Note
	ChangeDate *ChangeDate
	Custom     []*UserDefinedTag
}

func parseSubmitter(tk *Tokenizer, level int, xref string) (*Submitter, error) {
	s := &Submitter{Xref: xref}
	if err := tk.Next(); err != nil {
		return nil, err
	}
	custom, err := parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "NAME":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			s.Name = v
		case "ADDR":
			a, err := parseAddress(tk, level+1)
			if err != nil {
				return err
			}
			s.Address = a
		case "OBJE":
			m, err := parseMultimedia(tk, level+1, "")
			if err != nil {
				return err
			}
			s.Media = append(s.Media, m)
		case "LANG":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			s.Language = v
		case "PHON":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			s.Phones = append(s.Phones, v)
		case "EMAIL":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			s.Emails = append(s.Emails, v)
		case "FAX":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			s.Faxes = append(s.Faxes, v)
		case "WWW":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			s.Websites = append(s.Websites, v)
		case "NOTE":
			n, err := parseNote(tk, level+1)
			if err != nil {
				return err
			}
			s.Note = n
		case "CHAN":
			cd, err := parseChangeDate(tk, level+1)
			if err != nil {
				return err
			}
			s.ChangeDate = cd
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Custom = custom
	return s, nil
}
