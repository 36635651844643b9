package gedcom

// A Date keeps the date payload as written, without interpreting the
// calendar. Time carries the optional TIME child line.
type Date struct {
	Value  string
	Time   string
	Phrase string
	Custom []*UserDefinedTag
}

// parseDate reads a DATE subtree. level is the level of the DATE line.
func parseDate(tk *Tokenizer, level int) (*Date, error) {
	d := &Date{}
	v, err := tk.TakeLineValue()
	if err != nil {
		return nil, err
	}
	d.Value = v

	d.Custom, err = parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "TIME":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			d.Time = v
		case "PHRASE":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			d.Phrase = v
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

// A ChangeDate records when a record was last changed (tag: CHAN).
type ChangeDate struct {
	Date   *Date
	Note   *Note
	Custom []*UserDefinedTag
}

// parseChangeDate reads a CHAN subtree. level is the level of the CHAN
// line.
func parseChangeDate(tk *Tokenizer, level int) (*ChangeDate, error) {
	c := &ChangeDate{}
	if err := tk.Next(); err != nil {
		return nil, err
	}
	custom, err := parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "DATE":
			d, err := parseDate(tk, level+1)
			if err != nil {
				return err
			}
			c.Date = d
		case "NOTE":
			n, err := parseNote(tk, level+1)
			if err != nil {
				return err
			}
			c.Note = n
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.Custom = custom
	return c, nil
}
