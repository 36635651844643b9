package gedcom

import "testing"

func TestIndex(t *testing.T) {
	doc := parseSample(t)
	idx := doc.Index()

	if got := idx.Individuals["@I1@"]; got == nil || got.Name.Value != "John /Doe/" {
		t.Errorf("Individuals[@I1@] = %+v", got)
	}
	if len(idx.Individuals) != 3 {
		t.Errorf("len(Individuals) = %d, want 3", len(idx.Individuals))
	}
	if got := idx.Families["@F1@"]; got == nil || got.Husband != "@I1@" {
		t.Errorf("Families[@F1@] = %+v", got)
	}
	if got := idx.Sources["@S1@"]; got == nil || got.Title != "Parish register" {
		t.Errorf("Sources[@S1@] = %+v", got)
	}
	if got := idx.Repositories["@R1@"]; got == nil || got.Name != "County Archive" {
		t.Errorf("Repositories[@R1@] = %+v", got)
	}
	if got := idx.Submitters["@U1@"]; got == nil || got.Name != "Submitter Name" {
		t.Errorf("Submitters[@U1@] = %+v", got)
	}
	if got := idx.Individuals["@NOPE@"]; got != nil {
		t.Errorf("Individuals[@NOPE@] = %+v, want nil", got)
	}
}
