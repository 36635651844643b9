package gedcom

import (
	"reflect"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestWriteMinimalDocument(t *testing.T) {
	doc := &Document{
		Individuals: []*Individual{
			{Xref: "@I1@", Name: &Name{Value: "John /Doe/"}},
		},
	}
	want := strings.Join([]string{
		"0 HEAD",
		"1 GEDC",
		"2 VERS 5.5.1",
		"2 FORM LINEAGE-LINKED",
		"1 CHAR UTF-8",
		"0 @I1@ INDI",
		"1 NAME John /Doe/",
		"0 TRLR",
		"",
	}, "\n")
	if got := Write(doc); got != want {
		t.Errorf("Write() = %q, want %q", got, want)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	first, err := Parse(sampleSource)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	out := Write(first)
	second, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse(rewritten) error = %v\noutput:\n%s", err, out)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("round trip changed the document\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestWriteContinuations(t *testing.T) {
	doc := &Document{
		Individuals: []*Individual{
			{Xref: "@I1@", Note: &Note{Value: "First\nSecond"}},
		},
	}
	out := Write(doc)
	if !strings.Contains(out, "1 NOTE First\n2 CONT Second\n") {
		t.Errorf("Write() missing CONT continuation:\n%s", out)
	}
	reparsed, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := reparsed.Individuals[0].Note.Value; got != "First\nSecond" {
		t.Errorf("reparsed note = %q, want %q", got, "First\nSecond")
	}
}

func TestWriteLongValueWrapping(t *testing.T) {
	long := strings.Repeat("abcdefghij", 40)
	doc := &Document{
		Individuals: []*Individual{
			{Xref: "@I1@", Note: &Note{Value: long}},
		},
	}
	out := Write(doc)
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if n := utf8.RuneCountInString(line); n > 255 {
			t.Errorf("line of %d runes exceeds the limit: %q", n, line)
		}
	}
	if !strings.Contains(out, "2 CONC ") {
		t.Errorf("Write() did not wrap the long value:\n%s", out)
	}
	reparsed, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := reparsed.Individuals[0].Note.Value; got != long {
		t.Errorf("reparsed note = %q, want the original %d characters back", got, len(long))
	}
}

func TestWriteWrappingNeverSplitsRunes(t *testing.T) {
	long := strings.Repeat("ценность", 60)
	doc := &Document{
		Individuals: []*Individual{
			{Xref: "@I1@", Note: &Note{Value: long}},
		},
	}
	out := Write(doc)
	if !utf8.ValidString(out) {
		t.Fatalf("Write() produced invalid UTF-8")
	}
	reparsed, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := reparsed.Individuals[0].Note.Value; got != long {
		t.Errorf("reparsed note differs from the original")
	}
}

func TestWriteWrappingKeepsSpaceRuns(t *testing.T) {
	long := "before" + strings.Repeat(" ", 300) + "after"
	doc := &Document{
		Individuals: []*Individual{
			{Xref: "@I1@", Note: &Note{Value: long}},
		},
	}
	out := Write(doc)
	reparsed, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := reparsed.Individuals[0].Note.Value; got != long {
		t.Errorf("reparsed note = %q, want the space run preserved", got)
	}
}

func TestWriterConfigOptions(t *testing.T) {
	doc := &Document{
		Individuals: []*Individual{
			{Xref: "@I1@", Name: &Name{Value: "X"}},
		},
	}

	t.Run("crlf line ending", func(t *testing.T) {
		out := NewWriter(WriterConfig{LineEnding: "\r\n"}).Render(doc)
		if !strings.HasSuffix(out, "0 TRLR\r\n") {
			t.Errorf("Render() does not end with CRLF trailer: %q", out)
		}
		if strings.Contains(strings.ReplaceAll(out, "\r\n", ""), "\n") {
			t.Errorf("Render() mixed line endings:\n%q", out)
		}
	})

	t.Run("wrapping disabled", func(t *testing.T) {
		long := strings.Repeat("x", 600)
		d := &Document{Individuals: []*Individual{{Xref: "@I1@", Note: &Note{Value: long}}}}
		out := NewWriter(WriterConfig{MaxLineLength: -1}).Render(d)
		if strings.Contains(out, "CONC") {
			t.Errorf("Render() wrapped despite MaxLineLength -1:\n%s", out)
		}
	})

	t.Run("version in synthesized header", func(t *testing.T) {
		out := NewWriter(WriterConfig{Version: "7.0"}).Render(doc)
		if !strings.Contains(out, "2 VERS 7.0\n") {
			t.Errorf("Render() missing configured version:\n%s", out)
		}
	})

	t.Run("include empty fields", func(t *testing.T) {
		d := &Document{Families: []*Family{{Xref: "@F1@"}}}
		out := NewWriter(WriterConfig{IncludeEmptyFields: true}).Render(d)
		if !strings.Contains(out, "1 HUSB\n") || !strings.Contains(out, "1 WIFE\n") {
			t.Errorf("Render() omitted empty fields:\n%s", out)
		}
	})
}

func TestWriteExtensionsVerbatim(t *testing.T) {
	src := "0 HEAD\n1 GEDC\n2 VERS 5.5.1\n0 @I1@ INDI\n1 _MILT\n2 _RANK Corporal\n2 _YEARS 1914-1918\n0 TRLR\n"
	doc, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	out := Write(doc)
	for _, line := range []string{"1 _MILT\n", "2 _RANK Corporal\n", "2 _YEARS 1914-1918\n"} {
		if !strings.Contains(out, line) {
			t.Errorf("Write() missing extension line %q:\n%s", line, out)
		}
	}
	reparsed, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !reflect.DeepEqual(doc.Individuals[0].Custom, reparsed.Individuals[0].Custom) {
		t.Errorf("extension tree changed across the round trip")
	}
}

// Levels in well formed output never increase by more than one from
// one line to the next.
func TestWriteLevelMonotonicity(t *testing.T) {
	doc := parseSample(t)
	out := Write(doc)
	prev := 0
	for n, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		fields := strings.SplitN(line, " ", 2)
		level, err := strconv.Atoi(fields[0])
		if err != nil {
			t.Fatalf("line %d does not start with a level: %q", n+1, line)
		}
		if level > prev+1 {
			t.Errorf("line %d jumps from level %d to %d: %q", n+1, prev, level, line)
		}
		prev = level
	}
}

func TestWriteRecordWithoutXref(t *testing.T) {
	doc := &Document{
		Individuals: []*Individual{{Name: &Name{Value: "Anonymous"}}},
	}
	out := Write(doc)
	if !strings.Contains(out, "0 INDI\n") {
		t.Errorf("Write() should open the record without a pointer:\n%s", out)
	}
	if strings.Contains(out, "@ INDI") {
		t.Errorf("Write() invented a pointer:\n%s", out)
	}
}
