package punch

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"payguard/internal/platform/clientcfg"
)

var punchLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"1/2/2006 3:04 PM",
	"01/02/2006 03:04 PM",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 15:04",
	"01/02/2006 15:04:05",
	"2006-01-02",
	"1/2/2006",
}

// NormalizeClientData renames client-specific columns to canonical names and
// drops configured junk columns. It returns new records; the input is not
// mutated.
func NormalizeClientData(records []map[string]string, cfg clientcfg.Config) []map[string]string {
	drop := make(map[string]bool, len(cfg.DropColumns))
	for _, col := range cfg.DropColumns {
		drop[col] = true
	}

	out := make([]map[string]string, 0, len(records))
	for _, record := range records {
		normalized := make(map[string]string, len(record))
		for col, value := range record {
			if renamed, ok := cfg.Mappings[col]; ok {
				col = renamed
			}
			if drop[col] {
				continue
			}
			normalized[col] = value
		}
		out = append(out, normalized)
	}
	return out
}

// ValidateColumns checks that every required canonical column appears in the
// dataset. A miss is fatal and returns a SchemaError naming all missing
// columns.
func ValidateColumns(records []map[string]string) error {
	present := make(map[string]bool)
	for _, record := range records {
		for col := range record {
			present[col] = true
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

// ParseRows converts validated records into typed punch rows. Records with a
// missing In or Out punch are dropped: an incomplete punch is not
// processable. Date is the In Punch normalized to midnight.
func ParseRows(records []map[string]string) ([]Row, error) {
	rows := make([]Row, 0, len(records))
	for _, record := range records {
		inRaw := strings.TrimSpace(record["In Punch"])
		outRaw := strings.TrimSpace(record["Out Punch"])
		if inRaw == "" || outRaw == "" {
			continue
		}

		in, ok := parsePunchTime(inRaw)
		if !ok {
			continue
		}
		out, ok := parsePunchTime(outRaw)
		if !ok {
			continue
		}

		hours, _ := strconv.ParseFloat(strings.TrimSpace(record["Totaled Amount"]), 64)
		rows = append(rows, Row{
			ID:       strings.TrimSpace(record["ID"]),
			Employee: strings.TrimSpace(record["Employee"]),
			InPunch:  in,
			OutPunch: out,
			Hours:    hours,
			Date:     midnight(in),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ID != rows[j].ID {
			return rows[i].ID < rows[j].ID
		}
		return rows[i].InPunch.Before(rows[j].InPunch)
	})
	return rows, nil
}

func parsePunchTime(value string) (time.Time, bool) {
	for _, layout := range punchLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	// Excel serial date: days since the 1900 epoch.
	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial > 0 {
		epoch := time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
		return epoch.Add(time.Duration(serial * 24 * float64(time.Hour))).Round(time.Second), true
	}
	return time.Time{}, false
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
