package gedcom

import "fmt"

// A tagHandler processes one known tag. It is invoked with the
// tokenizer positioned on the tag token and must leave it on the first
// token it does not consume.
type tagHandler func(tag string, tk *Tokenizer) error

// parseChildren walks every token nested strictly below level and is
// the shared loop behind every record and substructure parser. Standard
// tags are dispatched to handle; tags beginning with an underscore are
// captured verbatim and returned so vendor extensions survive a round
// trip. Stray tokens that carry no tag are skipped. parseChildren
// returns with the tokenizer on the first token at or above level,
// which it never consumes.
func parseChildren(tk *Tokenizer, level int, handle tagHandler) ([]*UserDefinedTag, error) {
	var custom []*UserDefinedTag
	for {
		if tk.tok.Type == LevelToken && tk.tok.Level <= level {
			return custom, nil
		}
		switch tk.tok.Type {
		case TagToken:
			if err := handle(tk.tok.Value, tk); err != nil {
				return nil, err
			}
		case CustomTagToken:
			udt, err := parseUserDefinedTag(tk, level+1, tk.tok.Value)
			if err != nil {
				return nil, err
			}
			custom = append(custom, udt)
		case LevelToken, LineValueToken:
			if err := tk.Next(); err != nil {
				return nil, err
			}
		case EOFToken:
			return custom, nil
		default:
			return nil, &ParseError{Line: tk.line, Message: fmt.Sprintf("unhandled %s token", tk.tok.Type)}
		}
	}
}

// A UserDefinedTag holds a vendor extension subtree exactly as it
// appeared in the input, including any nested lines.
type UserDefinedTag struct {
	Tag      string
	Value    string
	Children []*UserDefinedTag
}

// parseUserDefinedTag captures the subtree of the tag the tokenizer is
// positioned on. level is the level of the tag's own line; children one
// level down are kept recursively, standard and custom alike.
func parseUserDefinedTag(tk *Tokenizer, level int, tag string) (*UserDefinedTag, error) {
	udt := &UserDefinedTag{Tag: tag}
	v, err := tk.TakeLineValue()
	if err != nil {
		return nil, err
	}
	udt.Value = v
	for {
		if tk.tok.Type == LevelToken && tk.tok.Level <= level {
			return udt, nil
		}
		switch tk.tok.Type {
		case TagToken, CustomTagToken:
			child, err := parseUserDefinedTag(tk, level+1, tk.tok.Value)
			if err != nil {
				return nil, err
			}
			udt.Children = append(udt.Children, child)
		case LevelToken, LineValueToken:
			if err := tk.Next(); err != nil {
				return nil, err
			}
		case EOFToken:
			return udt, nil
		default:
			return nil, &ParseError{Line: tk.line, Message: fmt.Sprintf("unhandled %s token in extension", tk.tok.Type)}
		}
	}
}
