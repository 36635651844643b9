package gedcom

// Event tags recognized on individuals.
const (
	TagBirth     = "BIRT"
	TagDeath     = "DEAT"
	TagBurial    = "BURI"
	TagMarriage  = "MARR"
	TagDivorce   = "DIV"
	TagResidence = "RESI"
	TagCensus    = "CENS"
	TagGeneric   = "EVEN"
)

// individualEventTags lists the event tags valid under an INDI record.
var individualEventTags = map[string]bool{
	"ADOP": true, "BIRT": true, "BAPM": true, "BARM": true, "BASM": true,
	"BLES": true, "BURI": true, "CENS": true, "CHR": true, "CHRA": true,
	"CONF": true, "CREM": true, "DEAT": true, "EMIG": true, "FCOM": true,
	"GRAD": true, "IMMI": true, "NATU": true, "ORDN": true, "RETI": true,
	"RESI": true, "PROB": true, "WILL": true, "EVEN": true, "MARR": true,
}

// familyEventTags lists the event tags valid under a FAM record.
var familyEventTags = map[string]bool{
	"MARR": true, "ANUL": true, "CENS": true, "DIV": true, "DIVF": true,
	"ENGA": true, "MARB": true, "MARC": true, "MARL": true, "MARS": true,
	"RESI": true, "EVEN": true, "SEP": true,
}

// attributeTags lists the attribute tags valid under an INDI record.
var attributeTags = map[string]bool{
	"CAST": true, "DSCR": true, "EDUC": true, "IDNO": true, "NATI": true,
	"NCHI": true, "NMR": true, "OCCU": true, "PROP": true, "RELI": true,
	"SSN": true, "TITL": true, "FACT": true,
}

// An Event is something that happened on a date, identified by its
// GEDCOM tag. The tag is kept as written so events outside the standard
// set survive a round trip.
type Event struct {
	Tag        string
	Value      string
	Type       string
	Date       *Date
	Place      *Place
	Age        string
	Agency     string
	Cause      string
	FamilyLink *FamilyLink
	Spouses    []*SpouseDetail
	Citations  []*Citation
	Media      []*Multimedia
	Note       *Note
	Custom     []*UserDefinedTag
}

// A SpouseDetail qualifies a family event for one spouse, such as the
// age at marriage (tags: HUSB, WIFE).
type SpouseDetail struct {
	Kind string
	Age  string
}

// parseEvent reads an event subtree. level is the level of the event's
// own line and tag its event tag.
func parseEvent(tk *Tokenizer, level int, tag string) (*Event, error) {
	e := &Event{Tag: tag}
	if err := tk.Next(); err != nil {
		return nil, err
	}
	if tk.tok.Type == LineValueToken {
		e.Value = tk.tok.Value
		if err := tk.Next(); err != nil {
			return nil, err
		}
	}

	custom, err := parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "DATE":
			d, err := parseDate(tk, level+1)
			if err != nil {
				return err
			}
			e.Date = d
		case "PLAC":
			p, err := parsePlace(tk, level+1)
			if err != nil {
				return err
			}
			e.Place = p
		case "SOUR":
			c, err := parseCitation(tk, level+1)
			if err != nil {
				return err
			}
			e.Citations = append(e.Citations, c)
		case "FAMC":
			fl, err := parseFamilyLink(tk, level+1, tag)
			if err != nil {
				return err
			}
			e.FamilyLink = fl
		case "HUSB", "WIFE":
			sd, err := parseSpouseDetail(tk, level+1, tag)
			if err != nil {
				return err
			}
			e.Spouses = append(e.Spouses, sd)
		case "NOTE":
			n, err := parseNote(tk, level+1)
			if err != nil {
				return err
			}
			e.Note = n
		case "TYPE":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			e.Type = v
		case "OBJE":
			m, err := parseMultimedia(tk, level+1, "")
			if err != nil {
				return err
			}
			e.Media = append(e.Media, m)
		case "CAUS":
			v, err := tk.TakeContinuedText(level + 1)
			if err != nil {
				return err
			}
			e.Cause = v
		case "AGE":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			e.Age = v
		case "AGNC":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			e.Agency = v
		default:
			// Unknown event substructures from other producers are
			// skipped rather than failing the parse.
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.Custom = custom
	return e, nil
}

func parseSpouseDetail(tk *Tokenizer, level int, tag string) (*SpouseDetail, error) {
	sd := &SpouseDetail{Kind: tag}
	if err := tk.Next(); err != nil {
		return nil, err
	}
	if tk.tok.Type == LineValueToken {
		if err := tk.Next(); err != nil {
			return nil, err
		}
	}
	_, err := parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "AGE":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			sd.Age = v
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sd, nil
}

// An Attribute is a fact about an individual that holds over a period,
// such as an occupation or title. Like events, the tag is kept as
// written.
type Attribute struct {
	Tag       string
	Value     string
	Type      string
	Date      *Date
	Place     string
	Address   *Address
	Age       string
	Agency    string
	Cause     string
	Citations []*Citation
	Note      *Note
	Custom    []*UserDefinedTag
}

// parseAttribute reads an attribute subtree. level is the level of the
// attribute's own line.
func parseAttribute(tk *Tokenizer, level int, tag string) (*Attribute, error) {
	a := &Attribute{Tag: tag}
	v, err := tk.TakeContinuedText(level)
	if err != nil {
		return nil, err
	}
	a.Value = v

	a.Custom, err = parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "DATE":
			d, err := parseDate(tk, level+1)
			if err != nil {
				return err
			}
			a.Date = d
		case "PLAC":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			a.Place = v
		case "SOUR":
			c, err := parseCitation(tk, level+1)
			if err != nil {
				return err
			}
			a.Citations = append(a.Citations, c)
		case "NOTE":
			n, err := parseNote(tk, level+1)
			if err != nil {
				return err
			}
			a.Note = n
		case "TYPE":
			v, err := tk.TakeContinuedText(level + 1)
			if err != nil {
				return err
			}
			a.Type = v
		case "ADDR":
			ad, err := parseAddress(tk, level+1)
			if err != nil {
				return err
			}
			a.Address = ad
		case "AGE":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			a.Age = v
		case "AGNC":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			a.Agency = v
		case "CAUS":
			v, err := tk.TakeContinuedText(level + 1)
			if err != nil {
				return err
			}
			a.Cause = v
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}
