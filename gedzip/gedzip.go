// Package gedzip reads and writes zipped GEDCOM containers: a zip
// archive whose payload lives in an entry named gedcom.ged.
package gedzip

import (
	"archive/zip"
	"bytes"
	"io"
	"os"

	"github.com/trois-six/ged-io-sub000/gedcom"
)

// EntryName is the archive entry holding the GEDCOM payload.
const EntryName = "gedcom.ged"

// Parse reads a zipped GEDCOM from data and parses its payload. The
// payload bytes go through the usual encoding detection.
func Parse(data []byte) (*gedcom.Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &gedcom.InvalidFormatError{Message: "not a zip archive: " + err.Error()}
	}
	for _, f := range zr.File {
		if f.Name != EntryName {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, err
		}
		src, err := gedcom.DecodeBytes(raw)
		if err != nil {
			return nil, err
		}
		return gedcom.Parse(src)
	}
	return nil, &gedcom.InvalidFormatError{Message: "archive has no " + EntryName + " entry"}
}

// ParseFile reads and parses a zipped GEDCOM from disk.
func ParseFile(path string) (*gedcom.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Write serializes doc and wraps it in a zip archive written to w.
func Write(w io.Writer, doc *gedcom.Document, cfg gedcom.WriterConfig) error {
	zw := zip.NewWriter(w)
	entry, err := zw.Create(EntryName)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(entry, gedcom.NewWriter(cfg).Render(doc)); err != nil {
		return err
	}
	return zw.Close()
}

// WriteFile serializes doc into a zipped GEDCOM file at path.
func WriteFile(path string, doc *gedcom.Document, cfg gedcom.WriterConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, doc, cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
