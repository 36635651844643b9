package gedcom

import "strconv"

// A TokenType is the type of a Token.
type TokenType uint32

const (
	// NoneToken is the state before the first call to Next.
	NoneToken TokenType = iota
	// LevelToken is the numeric depth opening every line.
	LevelToken
	// TagToken is a standard tag such as INDI or DATE.
	TagToken
	// CustomTagToken is a vendor extension tag beginning with an underscore.
	CustomTagToken
	// PointerToken is a cross-reference identifier delimited by '@'.
	PointerToken
	// LineValueToken is the payload text following a tag.
	LineValueToken
	// EOFToken means the end of the input was reached.
	EOFToken
)

// String returns a string representation of the TokenType.
func (t TokenType) String() string {
	switch t {
	case NoneToken:
		return "None"
	case LevelToken:
		return "Level"
	case TagToken:
		return "Tag"
	case CustomTagToken:
		return "CustomTag"
	case PointerToken:
		return "Pointer"
	case LineValueToken:
		return "LineValue"
	case EOFToken:
		return "EOF"
	}
	return "Invalid(" + strconv.Itoa(int(t)) + ")"
}

// A Token is one lexical element of a GEDCOM line. Level carries the
// depth for LevelToken; Value carries the text for tag, pointer and
// line value tokens.
type Token struct {
	Type  TokenType
	Level int
	Value string
}

// String returns a string representation of the Token.
func (t Token) String() string {
	switch t.Type {
	case LevelToken:
		return strconv.Itoa(t.Level)
	case NoneToken, EOFToken:
		return ""
	}
	return t.Value
}
