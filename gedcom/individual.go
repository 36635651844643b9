package gedcom

// An Individual is a compilation of facts about one person (tag: INDI).
type Individual struct {
	Xref       string
	Name       *Name
	Sex        *Gender
	Families   []*FamilyLink
	Attributes []*Attribute
	Citations  []*Citation
	Events     []*Event
	Media      []*Multimedia
	Note       *Note
	ChangeDate *ChangeDate
	Custom     []*UserDefinedTag
}

func parseIndividual(tk *Tokenizer, level int, xref string) (*Individual, error) {
	i := &Individual{Xref: xref}
	if err := tk.Next(); err != nil {
		return nil, err
	}
	custom, err := parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch {
		case tag == "NAME":
			n, err := parseName(tk, level+1)
			if err != nil {
				return err
			}
			i.Name = n
		case tag == "SEX":
			g, err := parseGender(tk, level+1)
			if err != nil {
				return err
			}
			i.Sex = g
		case individualEventTags[tag]:
			e, err := parseEvent(tk, level+1, tag)
			if err != nil {
				return err
			}
			i.Events = append(i.Events, e)
		case attributeTags[tag]:
			a, err := parseAttribute(tk, level+1, tag)
			if err != nil {
				return err
			}
			i.Attributes = append(i.Attributes, a)
		case tag == "FAMC" || tag == "FAMS":
			fl, err := parseFamilyLink(tk, level+1, tag)
			if err != nil {
				return err
			}
			i.addFamily(fl)
		case tag == "CHAN":
			cd, err := parseChangeDate(tk, level+1)
			if err != nil {
				return err
			}
			i.ChangeDate = cd
		case tag == "SOUR":
			c, err := parseCitation(tk, level+1)
			if err != nil {
				return err
			}
			i.Citations = append(i.Citations, c)
		case tag == "OBJE":
			m, err := parseMultimedia(tk, level+1, "")
			if err != nil {
				return err
			}
			i.Media = append(i.Media, m)
		case tag == "NOTE":
			n, err := parseNote(tk, level+1)
			if err != nil {
				return err
			}
			i.Note = n
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	i.Custom = custom
	return i, nil
}

// addFamily keeps family links unique per family xref.
func (i *Individual) addFamily(link *FamilyLink) {
	for _, fl := range i.Families {
		if fl.Xref == link.Xref {
			return
		}
	}
	i.Families = append(i.Families, link)
}

// A Name is a personal name as normally spoken, with the surname
// between slashes, plus its optional structured pieces.
type Name struct {
	Value         string
	Given         string
	Surname       string
	Prefix        string
	SurnamePrefix string
	Suffix        string
	Nickname      string
	Type          string
	Phonetic      []*NameVariation
	Romanized     []*NameVariation
	Citations     []*Citation
	Note          *Note
	Custom        []*UserDefinedTag
}

// FullName returns the name with the surname slashes removed.
func (n *Name) FullName() string {
	out := make([]byte, 0, len(n.Value))
	for i := 0; i < len(n.Value); i++ {
		if n.Value[i] != '/' {
			out = append(out, n.Value[i])
		}
	}
	return trimSpaces(string(out))
}

func trimSpaces(s string) string {
	start, end := 0, len(s)
	for start < end && s[start] == ' ' {
		start++
	}
	for end > start && s[end-1] == ' ' {
		end--
	}
	return s[start:end]
}

// A NameVariation is a phonetic (FONE) or romanized (ROMN) rendering of
// a name.
type NameVariation struct {
	Value   string
	Type    string
	Given   string
	Surname string
}

func parseName(tk *Tokenizer, level int) (*Name, error) {
	n := &Name{}
	v, err := tk.TakeLineValue()
	if err != nil {
		return nil, err
	}
	n.Value = v

	n.Custom, err = parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "GIVN":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			n.Given = v
		case "SURN":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			n.Surname = v
		case "NPFX":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			n.Prefix = v
		case "SPFX":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			n.SurnamePrefix = v
		case "NSFX":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			n.Suffix = v
		case "NICK":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			n.Nickname = v
		case "TYPE":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			n.Type = v
		case "FONE":
			nv, err := parseNameVariation(tk, level+1)
			if err != nil {
				return err
			}
			n.Phonetic = append(n.Phonetic, nv)
		case "ROMN":
			nv, err := parseNameVariation(tk, level+1)
			if err != nil {
				return err
			}
			n.Romanized = append(n.Romanized, nv)
		case "SOUR":
			c, err := parseCitation(tk, level+1)
			if err != nil {
				return err
			}
			n.Citations = append(n.Citations, c)
		case "NOTE":
			note, err := parseNote(tk, level+1)
			if err != nil {
				return err
			}
			n.Note = note
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

func parseNameVariation(tk *Tokenizer, level int) (*NameVariation, error) {
	nv := &NameVariation{}
	v, err := tk.TakeLineValue()
	if err != nil {
		return nil, err
	}
	nv.Value = v
	_, err = parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "TYPE":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			nv.Type = v
		case "GIVN":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			nv.Given = v
		case "SURN":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			nv.Surname = v
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return nv, nil
}

// Gender records the sex assigned at birth (tag: SEX) with its
// single-letter payload kept verbatim: M, F, X or U.
type Gender struct {
	Value     string
	Fact      string
	Citations []*Citation
	Custom    []*UserDefinedTag
}

func parseGender(tk *Tokenizer, level int) (*Gender, error) {
	g := &Gender{}
	if err := tk.Next(); err != nil {
		return nil, err
	}
	if tk.tok.Type == LineValueToken {
		g.Value = tk.tok.Value
		if err := tk.Next(); err != nil {
			return nil, err
		}
	}
	custom, err := parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "FACT":
			v, err := tk.TakeContinuedText(level + 1)
			if err != nil {
				return err
			}
			g.Fact = v
		case "SOUR":
			c, err := parseCitation(tk, level+1)
			if err != nil {
				return err
			}
			g.Citations = append(g.Citations, c)
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	g.Custom = custom
	return g, nil
}

// A FamilyLink connects an individual to a family, as child (FAMC) or
// spouse (FAMS).
type FamilyLink struct {
	Xref      string
	Kind      string
	Pedigree  string
	Status    string
	AdoptedBy string
	Note      *Note
	Custom    []*UserDefinedTag
}

func parseFamilyLink(tk *Tokenizer, level int, tag string) (*FamilyLink, error) {
	fl := &FamilyLink{Kind: tag}
	v, err := tk.TakeLineValue()
	if err != nil {
		return nil, err
	}
	fl.Xref = v

	fl.Custom, err = parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "PEDI":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			fl.Pedigree = v
		case "STAT":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			fl.Status = v
		case "ADOP":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			fl.AdoptedBy = v
		case "NOTE":
			n, err := parseNote(tk, level+1)
			if err != nil {
				return err
			}
			fl.Note = n
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fl, nil
}
