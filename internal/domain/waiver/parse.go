package waiver

// RecordsFrom maps raw header-keyed cells from the roster workbook onto
// records. Only the Name and Check columns matter; everything else in the
// sheet is layout.
func RecordsFrom(cells []map[string]string) []Record {
	records := make([]Record, 0, len(cells))
	for _, cell := range cells {
		records = append(records, Record{
			Name:  cell["Name"],
			Check: cell["Check"],
		})
	}
	return records
}
