package gedcom

import "fmt"

// A ParseError reports a syntax problem at a specific line of the input.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// An InvalidFormatError reports a structurally invalid document, such as
// a dangling cross-reference or a malformed container.
type InvalidFormatError struct {
	Message string
}

func (e *InvalidFormatError) Error() string {
	return "invalid format: " + e.Message
}

// An EncodingError reports input bytes that could not be decoded to text.
type EncodingError struct {
	Message string
}

func (e *EncodingError) Error() string {
	return "encoding: " + e.Message
}
