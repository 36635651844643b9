package gedcom

// A Header describes the file itself (tag: HEAD): the producing system,
// the format version and the character set the bytes were written in.
type Header struct {
	Gedcom      *GedcomMeta
	Encoding    *CharacterSet
	Source      *HeaderSource
	Destination string
	Date        *Date
	Submitter   string
	Submission  string
	Filename    string
	Copyright   string
	Language    string
	Note        *Note
	Custom      []*UserDefinedTag
}

// GedcomMeta declares the format version (tag: GEDC).
type GedcomMeta struct {
	Version string
	Form    string
}

// CharacterSet declares the encoding the file was written in (tag:
// CHAR).
type CharacterSet struct {
	Value   string
	Version string
}

// HeaderSource identifies the producing system (tag: SOUR under HEAD).
type HeaderSource struct {
	Value       string
	Version     string
	Name        string
	Corporation *Corporation
	Data        *HeaderSourceData
}

// A Corporation is the business behind the producing system.
type Corporation struct {
	Value   string
	Address *Address
	Phone   string
	Email   string
	Fax     string
	Website string
}

// HeaderSourceData names the data collection the file was derived from.
type HeaderSourceData struct {
	Value     string
	Date      *Date
	Copyright string
}

func parseHeader(tk *Tokenizer, level int) (*Header, error) {
	h := &Header{}
	if err := tk.Next(); err != nil {
		return nil, err
	}
	custom, err := parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "GEDC":
			m, err := parseGedcomMeta(tk, level+1)
			if err != nil {
				return err
			}
			h.Gedcom = m
		case "CHAR":
			cs, err := parseCharacterSet(tk, level+1)
			if err != nil {
				return err
			}
			h.Encoding = cs
		case "SOUR":
			s, err := parseHeaderSource(tk, level+1)
			if err != nil {
				return err
			}
			h.Source = s
		case "DEST":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			h.Destination = v
		case "DATE":
			d, err := parseDate(tk, level+1)
			if err != nil {
				return err
			}
			h.Date = d
		case "SUBM":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			h.Submitter = v
		case "SUBN":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			h.Submission = v
		case "FILE":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			h.Filename = v
		case "COPR":
			v, err := tk.TakeContinuedText(level + 1)
			if err != nil {
				return err
			}
			h.Copyright = v
		case "LANG":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			h.Language = v
		case "NOTE":
			n, err := parseNote(tk, level+1)
			if err != nil {
				return err
			}
			h.Note = n
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	h.Custom = custom
	return h, nil
}

func parseGedcomMeta(tk *Tokenizer, level int) (*GedcomMeta, error) {
	m := &GedcomMeta{}
	if err := tk.Next(); err != nil {
		return nil, err
	}
	_, err := parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "VERS":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			m.Version = v
		case "FORM":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			m.Form = v
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func parseCharacterSet(tk *Tokenizer, level int) (*CharacterSet, error) {
	cs := &CharacterSet{}
	v, err := tk.TakeLineValue()
	if err != nil {
		return nil, err
	}
	cs.Value = v
	_, err = parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "VERS":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			cs.Version = v
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cs, nil
}

func parseHeaderSource(tk *Tokenizer, level int) (*HeaderSource, error) {
	s := &HeaderSource{}
	v, err := tk.TakeLineValue()
	if err != nil {
		return nil, err
	}
	s.Value = v
	_, err = parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "VERS":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			s.Version = v
		case "NAME":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			s.Name = v
		case "CORP":
			c, err := parseCorporation(tk, level+1)
			if err != nil {
				return err
			}
			s.Corporation = c
		case "DATA":
			d, err := parseHeaderSourceData(tk, level+1)
			if err != nil {
				return err
			}
			s.Data = d
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func parseCorporation(tk *Tokenizer, level int) (*Corporation, error) {
	c := &Corporation{}
	v, err := tk.TakeLineValue()
	if err != nil {
		return nil, err
	}
	c.Value = v
	_, err = parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "ADDR":
			a, err := parseAddress(tk, level+1)
			if err != nil {
				return err
			}
			c.Address = a
		case "PHON":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			c.Phone = v
		case "EMAIL":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			c.Email = v
		case "FAX":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			c.Fax = v
		case "WWW":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			c.Website = v
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func parseHeaderSourceData(tk *Tokenizer, level int) (*HeaderSourceData, error) {
	d := &HeaderSourceData{}
	v, err := tk.TakeLineValue()
	if err != nil {
		return nil, err
	}
	d.Value = v
	_, err = parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "DATE":
			dt, err := parseDate(tk, level+1)
			if err != nil {
				return err
			}
			d.Date = dt
		case "COPR":
			v, err := tk.TakeContinuedText(level + 1)
			if err != nil {
				return err
			}
			d.Copyright = v
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}
