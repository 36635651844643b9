package gedcom

import (
	"strings"
	"testing"
)

func TestValidateReferences(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name: "all references resolve",
			src: "0 @I1@ INDI\n1 FAMS @F1@\n0 @I2@ INDI\n1 FAMC @F1@\n" +
				"0 @F1@ FAM\n1 HUSB @I1@\n1 CHIL @I2@\n0 TRLR\n",
		},
		{
			name:    "dangling husband",
			src:     "0 @F1@ FAM\n1 HUSB @I9@\n0 TRLR\n",
			wantErr: "HUSB reference @I9@",
		},
		{
			name:    "dangling child",
			src:     "0 @I1@ INDI\n0 @F1@ FAM\n1 HUSB @I1@\n1 CHIL @I9@\n0 TRLR\n",
			wantErr: "CHIL reference @I9@",
		},
		{
			name:    "dangling family link",
			src:     "0 @I1@ INDI\n1 FAMC @F9@\n0 TRLR\n",
			wantErr: "FAMC reference @F9@",
		},
		{
			name: "empty pointers are not checked",
			src:  "0 @F1@ FAM\n1 HUSB\n0 TRLR\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			err = doc.ValidateReferences()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateReferences() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateReferences() error = nil, want %q", tt.wantErr)
			}
			if _, ok := err.(*InvalidFormatError); !ok {
				t.Errorf("error type = %T, want *InvalidFormatError", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}
