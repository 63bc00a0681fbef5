package punch

import "sort"

// SortAndStaple merges adjacent punches whose Out Punch equals the next In
// Punch for the same employee, typically a midnight system rollover splitting
// one continuous span into two rows. The surviving row keeps the first In
// Punch, takes the last Out Punch, sums the hours, and is flagged "Stapled".
// Chains collapse into a single span, so re-running on stapled output is a
// no-op.
func SortAndStaple(rows []Row) []Row {
	if len(rows) == 0 {
		return rows
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ID != rows[j].ID {
			return rows[i].ID < rows[j].ID
		}
		return rows[i].InPunch.Before(rows[j].InPunch)
	})

	out := make([]Row, 0, len(rows))
	current := rows[0]
	for _, next := range rows[1:] {
		if next.ID == current.ID && next.InPunch.Equal(current.OutPunch) {
			current.OutPunch = next.OutPunch
			current.Hours += next.Hours
			current.Flag = "Stapled"
			continue
		}
		out = append(out, current)
		current = next
	}
	out = append(out, current)
	return out
}
