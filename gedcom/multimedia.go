package gedcom

// A Multimedia entry is either a level-0 record describing a media
// object or a link to one from another record. A pure link carries only
// the Xref.
type Multimedia struct {
	Xref       string
	File       *FileReference
	Form       *MediaFormat
	Title      string
	Note       *Note
	ChangeDate *ChangeDate
	Custom     []*UserDefinedTag
}

// A FileReference locates the media file itself.
type FileReference struct {
	Value  string
	Title  string
	Format *MediaFormat
}

// A MediaFormat names the file format and, optionally, the source
// media type.
type MediaFormat struct {
	Value     string
	MediaType string
}

// IsLink reports whether the entry is only a pointer to a multimedia
// record.
func (m *Multimedia) IsLink() bool {
	return m.Xref != "" && m.File == nil && m.Form == nil && m.Title == "" &&
		m.Note == nil && m.ChangeDate == nil && len(m.Custom) == 0
}

// parseMultimedia reads an OBJE subtree. level is the level of the OBJE
// line; xref is the record pointer for level-0 records. A line value of
// the form @X@ marks the link form.
func parseMultimedia(tk *Tokenizer, level int, xref string) (*Multimedia, error) {
	m := &Multimedia{Xref: xref}
	v, err := tk.TakeLineValue()
	if err != nil {
		return nil, err
	}
	if v != "" && m.Xref == "" {
		m.Xref = v
	}

	m.Custom, err = parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "FILE":
			f, err := parseFileReference(tk, level+1)
			if err != nil {
				return err
			}
			m.File = f
		case "FORM":
			f, err := parseMediaFormat(tk, level+1)
			if err != nil {
				return err
			}
			m.Form = f
		case "TITL":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			m.Title = v
		case "NOTE":
			n, err := parseNote(tk, level+1)
			if err != nil {
				return err
			}
			m.Note = n
		case "CHAN":
			cd, err := parseChangeDate(tk, level+1)
			if err != nil {
				return err
			}
			m.ChangeDate = cd
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

func parseFileReference(tk *Tokenizer, level int) (*FileReference, error) {
	f := &FileReference{}
	v, err := tk.TakeLineValue()
	if err != nil {
		return nil, err
	}
	f.Value = v
	_, err = parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "TITL":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			f.Title = v
		case "FORM":
			mf, err := parseMediaFormat(tk, level+1)
			if err != nil {
				return err
			}
			f.Format = mf
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

func parseMediaFormat(tk *Tokenizer, level int) (*MediaFormat, error) {
	f := &MediaFormat{}
	v, err := tk.TakeLineValue()
	if err != nil {
		return nil, err
	}
	f.Value = v
	_, err = parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "TYPE":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			f.MediaType = v
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}
