package gedcom

import "strings"

// An Address is a postal address. The free-form Value, possibly
// spanning several lines, is the primary representation; the structured
// fields are auxiliary.
type Address struct {
	Value      string
	City       string
	State      string
	PostalCode string
	Country    string
	Custom     []*UserDefinedTag
}

// parseAddress reads an ADDR subtree. level is the level of the ADDR
// line itself. The address value continues over CONT and CONC lines
// like any other text, but here they are siblings of the structured
// city and country tags, so the merge happens in the handler.
func parseAddress(tk *Tokenizer, level int) (*Address, error) {
	a := &Address{}
	var value strings.Builder
	first, err := tk.TakeLineValue()
	if err != nil {
		return nil, err
	}
	value.WriteString(first)

	a.Custom, err = parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "CONT", "CONC":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			if tag == "CONT" {
				value.WriteByte('\n')
			}
			value.WriteString(v)
		case "CITY":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			a.City = v
		case "STAE":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			a.State = v
		case "POST":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			a.PostalCode = v
		case "CTRY":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			a.Country = v
		default:
			_, err := tk.TakeLineValue()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	a.Value = value.String()
	return a, nil
}
