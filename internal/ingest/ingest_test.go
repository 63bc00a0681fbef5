package ingest

import "testing"

func TestRecordsFromRows(t *testing.T) {
	headers := normalizeHeaders([]string{"ID", "Employee", " In Punch ", "", ""})
	if len(headers) != 3 {
		t.Fatalf("expected 3 headers after trimming trailing blanks, got %d", len(headers))
	}
	if headers[2] != "In Punch" {
		t.Fatalf("expected trimmed header, got %q", headers[2])
	}

	rows := [][]string{
		{"ABC123", "Smith, Pat", "07/01/2024 9:00AM"},
		{"", "", ""},
		{"ABC124", "Lee, Sam"},
	}
	records := RecordsFromRows(headers, rows)
	if len(records) != 2 {
		t.Fatalf("expected blank row skipped, got %d records", len(records))
	}
	if records[0]["In Punch"] != "07/01/2024 9:00AM" {
		t.Fatalf("unexpected cell value %q", records[0]["In Punch"])
	}
	if got, ok := records[1]["In Punch"]; !ok || got != "" {
		t.Fatalf("short row should be padded with empty string, got %q ok=%v", got, ok)
	}
}

func TestRecordsFromRowsMiddleBlankHeader(t *testing.T) {
	headers := normalizeHeaders([]string{"ID", "", "Out Punch"})
	records := RecordsFromRows(headers, [][]string{{"A", "noise", "07/01/2024 5:00PM"}})
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if _, ok := records[0][""]; ok {
		t.Fatal("blank header must not produce a record key")
	}
	if records[0]["Out Punch"] != "07/01/2024 5:00PM" {
		t.Fatalf("unexpected value %q", records[0]["Out Punch"])
	}
}
