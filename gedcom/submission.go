package gedcom

// A Submission carries processing instructions for the receiving system
// (tag: SUBN at level 0).
type Submission struct {
	Xref                  string
	FamilyFileName        string
	TempleCode            string
	SubmitterRef          string
	AncestorGenerations   string
	DescendantGenerations string
	OrdinanceFlag         string
	RecordID              string
	Note                  *Note
	ChangeDate            *ChangeDate
	Custom                []*UserDefinedTag
}

func parseSubmission(tk *Tokenizer, level int, xref string) (*Submission, error) {
	s := &Submission{Xref: xref}
	if err := tk.Next(); err != nil {
		return nil, err
	}
	custom, err := parseChildren(tk, level, func(tag string, tk *Tokenizer) error {
		switch tag {
		case "FAMF":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			s.FamilyFileName = v
		case "TEMP":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			s.TempleCode = v
		case "SUBM":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			s.SubmitterRef = v
		case "ANCE":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			s.AncestorGenerations = v
		case "DESC":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			s.DescendantGenerations = v
		case "ORDI":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			s.OrdinanceFlag = v
		case "RIN":
			v, err := tk.TakeLineValue()
			if err != nil {
				return err
			}
			s.RecordID = v
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
