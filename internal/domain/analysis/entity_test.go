package analysis

import "testing"

func TestErrorRecord(t *testing.T) {
	r := ErrorRecord("Scraping failed")

	if !r.IsError() {
		t.Error("expected error record to report IsError")
	}
	if got := r[ErrorKey]; got != "Scraping failed" {
		t.Errorf("expected error message %q, got %v", "Scraping failed", got)
	}
	if len(r) != 1 {
		t.Errorf("error record must be single-field, got %d fields", len(r))
	}
}

func TestIsError(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want bool
	}{
		{
			name: "success record",
			rec:  Record{"Product Name": "Shirt", "Overall Ethical Rating": 7},
			want: false,
		},
		{
			name: "error record",
			rec:  ErrorRecord("Groq API request failed: timeout"),
			want: true,
		},
		{
			name: "empty record",
			rec:  Record{},
			want: false,
		},
		{
			name: "error key alongside other fields still counts",
			rec:  Record{"Error": "x", "Brand": "y"},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.IsError(); got != tt.want {
				t.Errorf("IsError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClone(t *testing.T) {
	orig := Record{"Brand": "Acme", "Overall Ethical Rating": 3}
	clone := orig.Clone()

	clone["Brand"] = "Other"
	if orig["Brand"] != "Acme" {
		t.Error("mutating the clone must not touch the original")
	}
	if len(clone) != len(orig) {
		t.Errorf("clone has %d fields, want %d", len(clone), len(orig))
	}
}

func TestRequiredFieldsCount(t *testing.T) {
	if len(RequiredFields) != 13 {
		t.Errorf("expected 13 required fields, got %d", len(RequiredFields))
	}
	seen := map[string]bool{}
	for _, f := range RequiredFields {
		if seen[f] {
			t.Errorf("duplicate field %q", f)
		}
		seen[f] = true
	}
}
