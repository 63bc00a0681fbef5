package waiver

import "strings"

// Record is one raw roster row: an employee name and a free-text signature
// mark.
type Record struct {
	Name  string `json:"Name"`
	Check string `json:"Check"`
}

// Entry is a normalized roster row. CheckPure is "Yes" or "No".
type Entry struct {
	Name      string `json:"Name"`
	CheckPure string `json:"Check_Pure"`
}

// Roster is the deduplicated waiver lookup keyed by name.
type Roster struct {
	Entries []Entry
	byName  map[string]string
}

// Normalize dedupes the roster keeping the first occurrence per name and
// derives CheckPure: "Yes" iff the trimmed, lowercased mark equals "x".
// Empty or malformed marks yield "No". Later duplicate rows for the same name
// are dropped.
func Normalize(records []Record) *Roster {
	roster := &Roster{byName: make(map[string]string, len(records))}
	for _, record := range records {
		if _, seen := roster.byName[record.Name]; seen {
			continue
		}
		pure := "No"
		if strings.ToLower(strings.TrimSpace(record.Check)) == "x" {
			pure = "Yes"
		}
		roster.byName[record.Name] = pure
		roster.Entries = append(roster.Entries, Entry{Name: record.Name, CheckPure: pure})
	}
	return roster
}

// Lookup returns the CheckPure value for a name. The second return is false
// when the name is not on the roster.
func (r *Roster) Lookup(name string) (string, bool) {
	value, ok := r.byName[name]
	return value, ok
}

// Signed reports whether a waiver is on file for the name. Absent names are
// not waived.
func (r *Roster) Signed(name string) bool {
	return r.byName[name] == "Yes"
}
