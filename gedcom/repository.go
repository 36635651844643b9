package gedcom

// A Repository is an archive holding sources (tag: REPO at level 0).
type Repository struct {
	Xref       string
	Name       string
	Address    *Address
	Phones     []string
	Emails     []string
	Faxes      []string
	Websites   []string
	Notes      []*Note
	ChangeDate *ChangeDate
	Custom     []*UserDefinedTag
}

func parseRepository(tk *Tokenizer, level int, xref string) (*Repository, error) {
	r := &Repository{Xref: xref}
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
			r.Name = v
		case "ADDR":
			a, err := parseAddress(tk, level+1)
			if err != nil {
				return err
			}
			r.Address = a
		case "PHON":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			r.Phones = append(r.Phones, v)
		case "EMAIL":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			r.Emails = append(r.Emails, v)
		case "FAX":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			r.Faxes = append(r.Faxes, v)
		case "WWW":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			r.Websites = append(r.Websites, v)
		case "NOTE":
			n, err := parseNote(tk, level+1)
			if err != nil {
				return err
			}
			r.Notes = append(r.Notes, n)
		case "CHAN":
			cd, err := parseChangeDate(tk, level+1)
			if err != nil {
				return err
			}
			r.ChangeDate = cd
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.Custom = custom
	return r, nil
}
