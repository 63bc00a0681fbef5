package register

import "testing"

func TestCellFloat(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"$1,234.50", 1234.5},
		{" 12.5 ", 12.5},
		{"(50)", -50},
		{"", 0},
		{"n/a", 0},
	}
	for _, tc := range cases {
		if got := cellFloat(tc.in); got != tc.want {
			t.Fatalf("cellFloat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseRecords(t *testing.T) {
	rows := ParseRecords([]map[string]string{{
		"CO.":                   "ABC",
		"FILE#":                 "123",
		"Payroll Name":          "Smith, Pat",
		"FLSA Code":             "N",
		"Regular Rate Paid":     "$20.00",
		"REG":                   "40",
		"OT":                    "10",
		"Regular Earnings Total": "800",
	}})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.CompanyCode != "ABC" || row.FileNumber != "123" {
		t.Fatalf("keys not mapped: %+v", row)
	}
	if row.RegularRatePaid != 20 || row.REGHours != 40 || row.OTHours != 10 {
		t.Fatalf("numeric cells not parsed: %+v", row)
	}
}
