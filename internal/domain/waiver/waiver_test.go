package waiver

import "testing"

func TestNormalizeCheckFolding(t *testing.T) {
	roster := Normalize([]Record{
		{Name: "ABC Smith, Pat", Check: " X "},
		{Name: "ABC Lee, Sam", Check: "x"},
		{Name: "ABC Kim, Alex", Check: "yes"},
		{Name: "ABC Park, Jo", Check: ""},
	})

	cases := map[string]string{
		"ABC Smith, Pat": "Yes",
		"ABC Lee, Sam":   "Yes",
		"ABC Kim, Alex":  "No",
		"ABC Park, Jo":   "No",
	}
	for name, want := range cases {
		got, ok := roster.Lookup(name)
		if !ok {
			t.Fatalf("%s not on roster", name)
		}
		if got != want {
			t.Fatalf("%s: got %q, want %q", name, got, want)
		}
	}
}

func TestNormalizeKeepsFirstDuplicate(t *testing.T) {
	roster := Normalize([]Record{
		{Name: "ABC Smith, Pat", Check: "x"},
		{Name: "ABC Smith, Pat", Check: ""},
	})
	if len(roster.Entries) != 1 {
		t.Fatalf("expected 1 entry after dedup, got %d", len(roster.Entries))
	}
	if !roster.Signed("ABC Smith, Pat") {
		t.Fatal("first occurrence should win")
	}
}

func TestSignedAbsentName(t *testing.T) {
	roster := Normalize(nil)
	if roster.Signed("ABC Nobody, Here") {
		t.Fatal("absent name must not be waived")
	}
	if _, ok := roster.Lookup("ABC Nobody, Here"); ok {
		t.Fatal("absent name must miss the lookup")
	}
}

func TestRecordsFrom(t *testing.T) {
	records := RecordsFrom([]map[string]string{
		{"Name": "ABC Smith, Pat", "Check": "x", "Notes": "ignored"},
	})
	if len(records) != 1 || records[0].Name != "ABC Smith, Pat" || records[0].Check != "x" {
		t.Fatalf("unexpected records: %+v", records)
	}
}
