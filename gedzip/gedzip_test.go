package gedzip

import (
	"archive/zip"
	"bytes"
	"reflect"
	"testing"

	"github.com/trois-six/ged-io-sub000/gedcom"
)

const sampleSource = "0 HEAD\n1 GEDC\n2 VERS 5.5.1\n2 FORM LINEAGE-LINKED\n1 CHAR UTF-8\n" +
	"0 @I1@ INDI\n1 NAME John /Doe/\n0 TRLR\n"

func TestWriteThenParse(t *testing.T) {
	doc, err := gedcom.Parse(sampleSource)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, doc, gedcom.WriterConfig{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !reflect.DeepEqual(doc, got) {
		t.Errorf("zip round trip changed the document\nbefore: %+v\nafter:  %+v", doc, got)
	}
}

func TestParseErrors(t *testing.T) {
	t.Run("not a zip archive", func(t *testing.T) {
		_, err := Parse([]byte("0 HEAD\n0 TRLR\n"))
		if err == nil {
			t.Fatalf("Parse() error = nil, want container error")
		}
		if _, ok := err.(*gedcom.InvalidFormatError); !ok {
			t.Errorf("error type = %T, want *gedcom.InvalidFormatError", err)
		}
	})

	t.Run("missing payload entry", func(t *testing.T) {
		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		entry, err := zw.Create("readme.txt")
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if _, err := entry.Write([]byte("nothing here")); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		if err := zw.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}

		_, err = Parse(buf.Bytes())
		if err == nil {
			t.Fatalf("Parse() error = nil, want missing entry error")
		}
		if _, ok := err.(*gedcom.InvalidFormatError); !ok {
			t.Errorf("error type = %T, want *gedcom.InvalidFormatError", err)
		}
	})
}
