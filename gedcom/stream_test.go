package gedcom

import (
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestStreamReaderOrder(t *testing.T) {
	sr := NewStreamReader(strings.NewReader(sampleSource))
	var kinds []string
	for {
		rec, err := sr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		kinds = append(kinds, rec.recordKind())
	}
	want := []string{"HEAD", "SUBM", "INDI", "INDI", "INDI", "FAM", "SOUR", "REPO"}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("record kinds = %v, want %v", kinds, want)
	}
}

func TestStreamReaderMatchesParse(t *testing.T) {
	whole, err := Parse(sampleSource)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	streamed, err := CollectDocument(NewStreamReader(strings.NewReader(sampleSource)))
	if err != nil {
		t.Fatalf("CollectDocument() error = %v", err)
	}
	if !reflect.DeepEqual(whole, streamed) {
		t.Errorf("streaming produced a different document\nwhole:    %+v\nstreamed: %+v", whole, streamed)
	}
}

func TestStreamReaderEOFIsSticky(t *testing.T) {
	sr := NewStreamReader(strings.NewReader("0 HEAD\n0 TRLR\n"))
	if _, err := sr.Read(); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := sr.Read(); err != io.EOF {
			t.Fatalf("Read() error = %v, want io.EOF", err)
		}
	}
}

func TestStreamReaderMissingTrailer(t *testing.T) {
	sr := NewStreamReader(strings.NewReader("0 @I1@ INDI\n1 NAME X\n"))
	rec, err := sr.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	i, ok := rec.(*Individual)
	if !ok {
		t.Fatalf("Read() = %T, want *Individual", rec)
	}
	if i.Xref != "@I1@" {
		t.Errorf("Xref = %q, want @I1@", i.Xref)
	}
	if _, err := sr.Read(); err != io.EOF {
		t.Errorf("Read() error = %v, want io.EOF", err)
	}
}
