package gedcom

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// DecodeBytes converts raw file bytes to a UTF-8 string. UTF-16 input
// is detected by its byte order mark, a UTF-8 byte order mark is
// dropped, valid UTF-8 passes through unchanged and anything else is
// read as Windows-1252, which also covers plain ASCII and most ANSEL
// exports in practice.
func DecodeBytes(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF16BE):
		return decodeUTF16(data, unicode.BigEndian)
	case bytes.HasPrefix(data, bomUTF16LE):
		return decodeUTF16(data, unicode.LittleEndian)
	case bytes.HasPrefix(data, bomUTF8):
		data = data[len(bomUTF8):]
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", &EncodingError{Message: err.Error()}
	}
	return string(out), nil
}

func decodeUTF16(data []byte, endian unicode.Endianness) (string, error) {
	dec := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := dec.Bytes(data)
	if err != nil {
		return "", &EncodingError{Message: err.Error()}
	}
	return string(out), nil
}
