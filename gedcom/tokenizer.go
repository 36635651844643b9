package gedcom

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Tokenizer turns GEDCOM characters into tokens. Every line follows
// the grammar
//
//	level [ @xref@ ] tag [ value ] terminator
//
// where the terminator is LF, CR or CRLF. The tokenizer holds exactly
// one token of state; parsers inspect Current and advance with Next or
// the take helpers. The token emitted for a given character depends on
// the token that preceded it: a level opens each line, a pointer or tag
// may follow a level, a tag follows a pointer, and a line value follows
// a tag.
type Tokenizer struct {
	src  string
	pos  int  // byte offset just past cur
	cur  rune // current character, 0 past the end of input
	tok  Token
	line int // lines consumed so far, 1-based for the active token
}

// NewTokenizer returns a tokenizer over the complete GEDCOM source
// text. The first token becomes available after the first call to Next.
func NewTokenizer(src string) *Tokenizer {
	// The synthetic '\n' makes the first real line look like any other.
	return &Tokenizer{src: src, cur: '\n'}
}

// Current returns the active token.
func (t *Tokenizer) Current() Token { return t.tok }

// Line returns the 1-based line number of the active token.
func (t *Tokenizer) Line() int { return t.line }

// Done reports whether the end of the input was reached.
func (t *Tokenizer) Done() bool { return t.tok.Type == EOFToken }

func (t *Tokenizer) nextChar() {
	if t.pos >= len(t.src) {
		t.cur = 0
		return
	}
	r, size := utf8.DecodeRuneInString(t.src[t.pos:])
	t.cur = r
	t.pos += size
}

// Next advances to the next token. Calling Next at the end of the input
// keeps yielding EOF.
func (t *Tokenizer) Next() error {
	if t.cur == 0 {
		t.tok = Token{Type: EOFToken}
		return nil
	}

	// A level number opens every line. The initial state carries a
	// synthetic newline so a file without a leading line break also
	// lands here.
	if t.tok.Type == NoneToken || t.cur == '\n' || t.cur == '\r' {
		t.skipLineBreaks()
		if t.cur == 0 {
			t.tok = Token{Type: EOFToken}
			return nil
		}
		level, err := t.extractNumber()
		if err != nil {
			return err
		}
		t.line++
		t.tok = Token{Type: LevelToken, Level: level}
		return nil
	}

	t.skipWhitespace()

	// Trailing blanks before the terminator.
	if t.cur == '\n' || t.cur == '\r' {
		return t.Next()
	}
	if t.cur == 0 {
		t.tok = Token{Type: EOFToken}
		return nil
	}

	switch t.tok.Type {
	case LevelToken:
		switch {
		case t.cur == '@':
			t.tok = Token{Type: PointerToken, Value: t.extractWord()}
		case t.cur == '_':
			t.tok = Token{Type: CustomTagToken, Value: t.extractWord()}
		default:
			t.tok = Token{Type: TagToken, Value: t.extractWord()}
		}
	case PointerToken:
		t.tok = Token{Type: TagToken, Value: t.extractWord()}
	case TagToken, CustomTagToken:
		t.tok = Token{Type: LineValueToken, Value: t.extractValue()}
	default:
		return &ParseError{Line: t.line, Message: fmt.Sprintf("unexpected %s token", t.tok.Type)}
	}
	return nil
}

// skipLineBreaks consumes the line terminator under the cursor plus any
// blank lines that follow it.
func (t *Tokenizer) skipLineBreaks() {
	for {
		switch t.cur {
		case '\r':
			t.nextChar()
			if t.cur == '\n' {
				t.nextChar()
			}
		case '\n':
			t.nextChar()
		default:
			return
		}
	}
}

func (t *Tokenizer) extractNumber() (int, error) {
	t.skipWhitespace()
	if t.cur < '0' || t.cur > '9' {
		return 0, &ParseError{Line: t.line, Message: "expected digit for level number"}
	}
	n := 0
	for t.cur >= '0' && t.cur <= '9' {
		// Clamp absurd depths instead of overflowing.
		if n < 1<<24 {
			n = n*10 + int(t.cur-'0')
		}
		t.nextChar()
	}
	return n, nil
}

func (t *Tokenizer) extractWord() string {
	var b strings.Builder
	for t.cur != 0 && t.cur != '\uFEFF' && !unicode.IsSpace(t.cur) {
		b.WriteRune(t.cur)
		t.nextChar()
	}
	return b.String()
}

func (t *Tokenizer) extractValue() string {
	var b strings.Builder
	for t.cur != 0 && t.cur != '\n' && t.cur != '\r' {
		b.WriteRune(t.cur)
		t.nextChar()
	}
	return b.String()
}

// skipWhitespace consumes blanks, tabs and stray byte order marks, but
// never a line terminator.
func (t *Tokenizer) skipWhitespace() {
	for t.cur != '\n' && t.cur != '\r' && (t.cur == '\uFEFF' || unicode.IsSpace(t.cur)) {
		t.nextChar()
	}
}

// TakeLineValue consumes the value of the current line and leaves the
// tokenizer on the following token. A valueless line gracefully yields
// the empty string.
func (t *Tokenizer) TakeLineValue() (string, error) {
	if err := t.Next(); err != nil {
		return "", err
	}
	switch t.tok.Type {
	case LineValueToken:
		v := t.tok.Value
		if err := t.Next(); err != nil {
			return "", err
		}
		return v, nil
	case LevelToken, EOFToken:
		return "", nil
	}
	return "", &ParseError{Line: t.line, Message: fmt.Sprintf("expected line value, found %s token", t.tok.Type)}
}

// TakeContinuedText consumes the current line's value together with any
// CONT and CONC continuation lines nested under it. CONT contributes a
// line break, CONC joins directly. level is the level of the line that
// owns the text; the tokenizer stops on the first token at or above it
// without consuming that token.
func (t *Tokenizer) TakeContinuedText(level int) (string, error) {
	first, err := t.TakeLineValue()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(first)

	for {
		if t.tok.Type == LevelToken && t.tok.Level <= level {
			return b.String(), nil
		}
		switch t.tok.Type {
		case TagToken:
			switch t.tok.Value {
			case "CONT":
				v, err := t.TakeLineValue()
				if err != nil {
					return "", err
				}
				b.WriteByte('\n')
				b.WriteString(v)
			case "CONC":
				v, err := t.TakeLineValue()
				if err != nil {
					return "", err
				}
				b.WriteString(v)
			default:
				// A real substructure tag. Leave it for the caller.
				return b.String(), nil
			}
		case LevelToken:
			if err := t.Next(); err != nil {
				return "", err
			}
		case EOFToken:
			return b.String(), nil
		default:
			return "", &ParseError{Line: t.line, Message: fmt.Sprintf("unexpected %s token in continued text", t.tok.Type)}
		}
	}
}
