package gedcom

// A Source describes where genealogical facts were found (tag: SOUR at
// level 0).
type Source struct {
	Xref          string
	Data          *SourceData
	Abbreviation  string
	Title         string
	Author        string
	Publication   string
	Text          string
	RepoCitations []*RepoCitation
	Media         []*Multimedia
	Notes         []*Note
	ChangeDate    *ChangeDate
	Custom        []*UserDefinedTag
}

// SourceData summarizes what a source records (tag: DATA under SOUR).
type SourceData struct {
	Events []*SourceEvent
	Agency string
	Custom []*UserDefinedTag
}

// A SourceEvent names the event kinds a source covers, with the period
// and jurisdiction they span.
type SourceEvent struct {
	Value string
	Date  string
	Place string
}

// A RepoCitation points a source at the repository holding it.
type RepoCitation struct {
	Xref       string
	CallNumber string
	MediaType  string
}

func parseSource(tk *Tokenizer, level int, xref string) (*Source, error) {
	s := &Source{Xref: xref}
	if err := tk.Next(); err != nil {
		return nil, err
	}
	custom, err := parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "DATA":
			d, err := parseSourceData(tk, level+1)
			if err != nil {
				return err
			}
			s.Data = d
		case "ABBR":
			v, err := tk.TakeContinuedText(level + 1)
			if err != nil {
				return err
			}
			s.Abbreviation = v
		case "TITL":
			v, err := tk.TakeContinuedText(level + 1)
			if err != nil {
				return err
			}
			s.Title = v
		case "AUTH":
			v, err := tk.TakeContinuedText(level + 1)
			if err != nil {
				return err
			}
			s.Author = v
		case "PUBL":
			v, err := tk.TakeContinuedText(level + 1)
			if err != nil {
				return err
			}
			s.Publication = v
		case "TEXT":
			v, err := tk.TakeContinuedText(level + 1)
			if err != nil {
				return err
			}
			s.Text = v
		case "REPO":
			rc, err := parseRepoCitation(tk, level+1)
			if err != nil {
				return err
			}
			s.RepoCitations = append(s.RepoCitations, rc)
		case "OBJE":
			m, err := parseMultimedia(tk, level+1, "")
			if err != nil {
				return err
			}
			s.Media = append(s.Media, m)
		case "NOTE":
			n, err := parseNote(tk, level+1)
			if err != nil {
				return err
			}
			s.Notes = append(s.Notes, n)
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

func parseSourceData(tk *Tokenizer, level int) (*SourceData, error) {
	d := &SourceData{}
	if err := tk.Next(); err != nil {
		return nil, err
	}
	custom, err := parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "EVEN":
			ev, err := parseSourceEvent(tk, level+1)
			if err != nil {
				return err
			}
			d.Events = append(d.Events, ev)
		case "AGNC":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			d.Agency = v
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	d.Custom = custom
	return d, nil
}

func parseSourceEvent(tk *Tokenizer, level int) (*SourceEvent, error) {
	ev := &SourceEvent{}
	v, err := tk.TakeLineValue()
	if err != nil {
		return nil, err
	}
	ev.Value = v
	_, err = parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "DATE":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			ev.Date = v
		case "PLAC":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			ev.Place = v
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ev, nil
}

func parseRepoCitation(tk *Tokenizer, level int) (*RepoCitation, error) {
	rc := &RepoCitation{}
	v, err := tk.TakeLineValue()
	if err != nil {
		return nil, err
	}
	rc.Xref = v
	_, err = parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "CALN":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			rc.CallNumber = v
			_, err = parseChildren(tk, level+1, func(tag string, tk *Tokenizer) error {
				switch tag {
				case "MEDI":
					v, err := tk.TakeLineValue()
					if err != nil {
						return err
					}
					rc.MediaType = v
				default:
					_, err := tk.TakeLineValue()
					return err
				}
				return nil
			})
			return err
		default:
			_, err := tk.TakeLineValue()
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return rc, nil
}

// A Citation ties a fact to the source that documents it (tag: SOUR
// below a record or substructure).
type Citation struct {
	Xref    string
	Page    string
	Data    *CitationData
	Quality string
	Note    *Note
	Media   []*Multimedia
	Custom  []*UserDefinedTag
}

// CitationData carries the date and extracted text of the cited entry.
type CitationData struct {
	Date   *Date
	Text   string
	Custom []*UserDefinedTag
}

// parseCitation reads a SOUR citation subtree. level is the level of
// the SOUR line itself.
func parseCitation(tk *Tokenizer, level int) (*Citation, error) {
	c := &Citation{}
	v, err := tk.TakeLineValue()
	if err != nil {
		return nil, err
	}
	c.Xref = v

	c.Custom, err = parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "PAGE":
			v, err := tk.TakeContinuedText(level + 1)
			if err != nil {
				return err
			}
			c.Page = v
		case "DATA":
			d, err := parseCitationData(tk, level+1)
			if err != nil {
				return err
			}
			c.Data = d
		case "QUAY":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			c.Quality = v
		case "NOTE":
			n, err := parseNote(tk, level+1)
			if err != nil {
				return err
			}
			c.Note = n
		case "OBJE":
			m, err := parseMultimedia(tk, level+1, "")
			if err != nil {
				return err
			}
			c.Media = append(c.Media, m)
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

func parseCitationData(tk *Tokenizer, level int) (*CitationData, error) {
	d := &CitationData{}
	if err := tk.Next(); err != nil {
		return nil, err
	}
	custom, err := parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "DATE":
			dt, err := parseDate(tk, level+1)
			if err != nil {
				return err
			}
			d.Date = dt
		case "TEXT":
			v, err := tk.TakeContinuedText(level + 1)
			if err != nil {
				return err
			}
			d.Text = v
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	d.Custom = custom
	return d, nil
}
