package gedcom

// A Place names where an event occurred, optionally with the
// jurisdiction form, map coordinates and script variations.
type Place struct {
	Value     string
	Form      string
	Map       *MapCoordinates
	Phonetic  []*PlaceVariation
	Romanized []*PlaceVariation
	Notes     []*Note
	Custom    []*UserDefinedTag
}

// MapCoordinates carries the LATI and LONG payloads verbatim.
type MapCoordinates struct {
	Latitude  string
	Longitude string
	Custom    []*UserDefinedTag
}

// A PlaceVariation is a phonetic or romanized rendering of a place
// name.
type PlaceVariation struct {
	Value string
	Type  string
}

// parsePlace reads a PLAC subtree. level is the level of the PLAC line.
func parsePlace(tk *Tokenizer, level int) (*Place, error) {
	p := &Place{}
	v, err := tk.TakeLineValue()
	if err != nil {
		return nil, err
	}
	p.Value = v

	p.Custom, err = parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "FORM":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			p.Form = v
		case "MAP":
			m, err := parseMapCoordinates(tk, level+1)
			if err != nil {
				return err
			}
			p.Map = m
		case "FONE":
			pv, err := parsePlaceVariation(tk, level+1)
			if err != nil {
				return err
			}
			p.Phonetic = append(p.Phonetic, pv)
		case "ROMN":
			pv, err := parsePlaceVariation(tk, level+1)
			if err != nil {
				return err
			}
			p.Romanized = append(p.Romanized, pv)
		case "NOTE":
			n, err := parseNote(tk, level+1)
			if err != nil {
				return err
			}
			p.Notes = append(p.Notes, n)
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func parseMapCoordinates(tk *Tokenizer, level int) (*MapCoordinates, error) {
	m := &MapCoordinates{}
	if err := tk.Next(); err != nil {
		return nil, err
	}
	custom, err := parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "LATI":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			m.Latitude = v
		case "LONG":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			m.Longitude = v
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	m.Custom = custom
	return m, nil
}

func parsePlaceVariation(tk *Tokenizer, level int) (*PlaceVariation, error) {
	pv := &PlaceVariation{}
	v, err := tk.TakeLineValue()
	if err != nil {
		return nil, err
	}
	pv.Value = v
	_, err = parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "TYPE":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			pv.Type = v
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pv, nil
}
