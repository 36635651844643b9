package gedcom

import (
	"reflect"
	"strings"
	"testing"
)

const sampleSource = `0 HEAD
1 SOUR test-tool
2 VERS 1.0
2 NAME Test Tool
2 CORP Example Corp
3 ADDR 1 Main Street
4 CITY Springfield
4 CTRY USA
1 DEST receiver
1 DATE 1 JAN 2020
2 TIME 12:00:00
1 FILE sample.ged
1 GEDC
2 VERS 5.5.1
2 FORM LINEAGE-LINKED
1 CHAR UTF-8
1 LANG English
0 @U1@ SUBM
1 NAME Submitter Name
1 PHON +1 555 0100
0 @I1@ INDI
1 NAME John /Doe/
2 GIVN John
2 SURN Doe
2 NICK Johnny
1 SEX M
1 BIRT
2 DATE 2 FEB 1900
2 PLAC Springfield, USA
1 DEAT Y
1 OCCU Carpenter
2 DATE FROM 1920 TO 1950
1 FAMS @F1@
1 NOTE A note about John
2 CONT with a second line.
1 _LOYALTY high
2 _SINCE 1910
0 @I2@ INDI
1 NAME Jane /Smith/
1 SEX F
1 FAMS @F1@
0 @I3@ INDI
1 NAME Junior /Doe/
1 FAMC @F1@
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 CHIL @I3@
1 NCHI 1
1 MARR
2 DATE 3 MAR 1925
0 @S1@ SOUR
1 TITL Parish register
1 AUTH The parish
1 REPO @R1@
2 CALN 42-B
0 @R1@ REPO
1 NAME County Archive
0 TRLR
`

func parseSample(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse(sampleSource)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return doc
}

func TestParseHeader(t *testing.T) {
	doc := parseSample(t)
	h := doc.Header
	if h == nil {
		t.Fatalf("Header = nil")
	}
	if h.Source == nil || h.Source.Value != "test-tool" {
		t.Errorf("Header.Source = %+v, want value test-tool", h.Source)
	}
	if h.Source.Corporation == nil || h.Source.Corporation.Value != "Example Corp" {
		t.Fatalf("Header.Source.Corporation = %+v", h.Source.Corporation)
	}
	addr := h.Source.Corporation.Address
	if addr == nil || addr.Value != "1 Main Street" || addr.City != "Springfield" || addr.Country != "USA" {
		t.Errorf("corporation address = %+v", addr)
	}
	if h.Date == nil || h.Date.Value != "1 JAN 2020" || h.Date.Time != "12:00:00" {
		t.Errorf("Header.Date = %+v", h.Date)
	}
	if doc.Version() != "5.5.1" {
		t.Errorf("Version() = %q, want 5.5.1", doc.Version())
	}
	if !doc.IsV5() || doc.IsV7() {
		t.Errorf("IsV5() = %v, IsV7() = %v", doc.IsV5(), doc.IsV7())
	}
	if h.Encoding == nil || h.Encoding.Value != "UTF-8" {
		t.Errorf("Header.Encoding = %+v", h.Encoding)
	}
}

func TestParseIndividual(t *testing.T) {
	doc := parseSample(t)
	if len(doc.Individuals) != 3 {
		t.Fatalf("len(Individuals) = %d, want 3", len(doc.Individuals))
	}
	i := doc.FindIndividual("@I1@")
	if i == nil {
		t.Fatalf("FindIndividual(@I1@) = nil")
	}
	if i.Name == nil || i.Name.Value != "John /Doe/" {
		t.Fatalf("Name = %+v", i.Name)
	}
	if i.Name.Given != "John" || i.Name.Surname != "Doe" || i.Name.Nickname != "Johnny" {
		t.Errorf("name pieces = %q %q %q", i.Name.Given, i.Name.Surname, i.Name.Nickname)
	}
	if got := i.Name.FullName(); got != "John Doe" {
		t.Errorf("FullName() = %q, want John Doe", got)
	}
	if i.Sex == nil || i.Sex.Value != "M" {
		t.Errorf("Sex = %+v", i.Sex)
	}
	if len(i.Events) != 2 {
		t.Fatalf("len(Events) = %d, want 2", len(i.Events))
	}
	birth := i.Events[0]
	if birth.Tag != "BIRT" || birth.Date == nil || birth.Date.Value != "2 FEB 1900" {
		t.Errorf("birth event = %+v", birth)
	}
	if birth.Place == nil || birth.Place.Value != "Springfield, USA" {
		t.Errorf("birth place = %+v", birth.Place)
	}
	if death := i.Events[1]; death.Tag != "DEAT" || death.Value != "Y" {
		t.Errorf("death event = %+v", death)
	}
	if len(i.Attributes) != 1 {
		t.Fatalf("len(Attributes) = %d, want 1", len(i.Attributes))
	}
	occ := i.Attributes[0]
	if occ.Tag != "OCCU" || occ.Value != "Carpenter" || occ.Date == nil || occ.Date.Value != "FROM 1920 TO 1950" {
		t.Errorf("occupation = %+v", occ)
	}
	if len(i.Families) != 1 || i.Families[0].Xref != "@F1@" || i.Families[0].Kind != "FAMS" {
		t.Errorf("Families = %+v", i.Families)
	}
	if i.Note == nil || i.Note.Value != "A note about John\nwith a second line." {
		t.Errorf("Note = %+v", i.Note)
	}
	wantCustom := []*UserDefinedTag{
		{Tag: "_LOYALTY", Value: "high", Children: []*UserDefinedTag{
			{Tag: "_SINCE", Value: "1910"},
		}},
	}
	if !reflect.DeepEqual(i.Custom, wantCustom) {
		t.Errorf("Custom = %+v, want %+v", i.Custom, wantCustom)
	}
}

func TestParseFamily(t *testing.T) {
	doc := parseSample(t)
	f := doc.FindFamily("@F1@")
	if f == nil {
		t.Fatalf("FindFamily(@F1@) = nil")
	}
	if f.Husband != "@I1@" || f.Wife != "@I2@" {
		t.Errorf("Husband = %q, Wife = %q", f.Husband, f.Wife)
	}
	if !reflect.DeepEqual(f.Children, []string{"@I3@"}) {
		t.Errorf("Children = %v", f.Children)
	}
	if f.NumChildren != "1" {
		t.Errorf("NumChildren = %q", f.NumChildren)
	}
	if len(f.Events) != 1 || f.Events[0].Tag != "MARR" || f.Events[0].Date.Value != "3 MAR 1925" {
		t.Errorf("Events = %+v", f.Events)
	}
}

func TestParseSourceAndRepository(t *testing.T) {
	doc := parseSample(t)
	s := doc.FindSource("@S1@")
	if s == nil {
		t.Fatalf("FindSource(@S1@) = nil")
	}
	if s.Title != "Parish register" || s.Author != "The parish" {
		t.Errorf("source = %+v", s)
	}
	if len(s.RepoCitations) != 1 || s.RepoCitations[0].Xref != "@R1@" || s.RepoCitations[0].CallNumber != "42-B" {
		t.Errorf("RepoCitations = %+v", s.RepoCitations)
	}
	r := doc.FindRepository("@R1@")
	if r == nil || r.Name != "County Archive" {
		t.Errorf("repository = %+v", r)
	}
}

func TestParseSubmitter(t *testing.T) {
	doc := parseSample(t)
	if len(doc.Submitters) != 1 {
		t.Fatalf("len(Submitters) = %d, want 1", len(doc.Submitters))
	}
	s := doc.Submitters[0]
	if s.Xref != "@U1@" || s.Name != "Submitter Name" {
		t.Errorf("submitter = %+v", s)
	}
	if !reflect.DeepEqual(s.Phones, []string{"+1 555 0100"}) {
		t.Errorf("Phones = %v", s.Phones)
	}
}

func TestParseEdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr bool
		check   func(t *testing.T, doc *Document)
	}{
		{
			name: "missing trailer",
			src:  "0 HEAD\n1 GEDC\n2 VERS 5.5.1\n0 @I1@ INDI\n1 NAME X\n",
			check: func(t *testing.T, doc *Document) {
				if len(doc.Individuals) != 1 {
					t.Errorf("len(Individuals) = %d, want 1", len(doc.Individuals))
				}
			},
		},
		{
			name: "crlf source",
			src:  "0 HEAD\r\n1 GEDC\r\n2 VERS 5.5.1\r\n0 TRLR\r\n",
			check: func(t *testing.T, doc *Document) {
				if doc.Version() != "5.5.1" {
					t.Errorf("Version() = %q", doc.Version())
				}
			},
		},
		{
			name: "records after content ignored past trailer",
			src:  "0 HEAD\n0 TRLR\n0 @I1@ INDI\n",
			check: func(t *testing.T, doc *Document) {
				if len(doc.Individuals) != 0 {
					t.Errorf("len(Individuals) = %d, want 0", len(doc.Individuals))
				}
			},
		},
		{
			name: "unknown record kept as extension",
			src:  "0 HEAD\n0 @X1@ WEIRD data\n1 SUB more\n0 TRLR\n",
			check: func(t *testing.T, doc *Document) {
				want := []*UserDefinedTag{
					{Tag: "WEIRD", Value: "data", Children: []*UserDefinedTag{
						{Tag: "SUB", Value: "more"},
					}},
				}
				if !reflect.DeepEqual(doc.Custom, want) {
					t.Errorf("Custom = %+v, want %+v", doc.Custom, want)
				}
			},
		},
		{
			name: "custom record at level zero",
			src:  "0 HEAD\n0 _TODO check this\n0 TRLR\n",
			check: func(t *testing.T, doc *Document) {
				want := []*UserDefinedTag{{Tag: "_TODO", Value: "check this"}}
				if !reflect.DeepEqual(doc.Custom, want) {
					t.Errorf("Custom = %+v, want %+v", doc.Custom, want)
				}
			},
		},
		{
			name:    "duplicate husband pointer",
			src:     "0 @F1@ FAM\n1 HUSB @I1@\n1 HUSB @I2@\n0 TRLR\n",
			wantErr: true,
		},
		{
			name:    "garbage line",
			src:     "0 HEAD\nnot a gedcom line\n0 TRLR\n",
			wantErr: true,
		},
		{
			name: "gender fact with continuation",
			src:  "0 @I1@ INDI\n1 SEX M\n2 FACT first part\n3 CONC , second part\n0 TRLR\n",
			check: func(t *testing.T, doc *Document) {
				g := doc.Individuals[0].Sex
				if g == nil || g.Fact != "first part, second part" {
					t.Errorf("Sex = %+v", g)
				}
			},
		},
		{
			name: "stray valueless line inside a record",
			src:  "0 @I1@ INDI\n1 \n1 SEX M\n0 TRLR\n",
			check: func(t *testing.T, doc *Document) {
				i := doc.Individuals[0]
				if i.Sex == nil || i.Sex.Value != "M" {
					t.Errorf("individual = %+v", i)
				}
			},
		},
		{
			name: "duplicate family links collapse",
			src:  "0 @I1@ INDI\n1 FAMS @F1@\n1 FAMS @F1@\n0 TRLR\n",
			check: func(t *testing.T, doc *Document) {
				if got := len(doc.Individuals[0].Families); got != 1 {
					t.Errorf("len(Families) = %d, want 1", got)
				}
			},
		},
		{
			name: "unknown tags inside records are skipped",
			src:  "0 @I1@ INDI\n1 NAME X\n1 UID 12345\n1 SEX F\n0 TRLR\n",
			check: func(t *testing.T, doc *Document) {
				i := doc.Individuals[0]
				if i.Name == nil || i.Sex == nil || i.Sex.Value != "F" {
					t.Errorf("individual = %+v", i)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(tt.src)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && tt.check != nil {
				tt.check(t, doc)
			}
		})
	}
}

func TestParseWithOptions(t *testing.T) {
	t.Run("size limit", func(t *testing.T) {
		_, err := ParseWithOptions(sampleSource, Options{MaxInputSize: 16})
		if err == nil {
			t.Fatalf("ParseWithOptions() error = nil, want size error")
		}
		if _, ok := err.(*InvalidFormatError); !ok {
			t.Errorf("error type = %T, want *InvalidFormatError", err)
		}
	})
	t.Run("reference validation", func(t *testing.T) {
		src := "0 @F1@ FAM\n1 HUSB @MISSING@\n0 TRLR\n"
		_, err := ParseWithOptions(src, Options{ValidateReferences: true})
		if err == nil {
			t.Fatalf("ParseWithOptions() error = nil, want dangling reference error")
		}
	})
}

func TestParseReader(t *testing.T) {
	doc, err := ParseReader(strings.NewReader(sampleSource))
	if err != nil {
		t.Fatalf("ParseReader() error = %v", err)
	}
	if doc.TotalRecords() != 7 {
		t.Errorf("TotalRecords() = %d, want 7", doc.TotalRecords())
	}
}
