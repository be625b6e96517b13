package schedule

import "sort"

// Range is a run of consecutive calendar days sharing one shift set. Start
// and End are inclusive; a single day has Start == End.
type Range struct {
	Start  Date
	End    Date
	Shifts []Shift
}

// Collapse merges calendar-adjacent days whose shift lists are set-equal
// (order-insensitive) into inclusive date ranges. Non-adjacent days never
// merge, even with identical shifts.
func Collapse(c Collection) []Range {
	dates := c.Dates()
	if len(dates) == 0 {
		return nil
	}
	ranges := make([]Range, 0, len(dates))
	cur := Range{Start: dates[0], End: dates[0], Shifts: c[dates[0]]}
	for _, d := range dates[1:] {
		if d == cur.End.Next() && sameShiftSet(cur.Shifts, c[d]) {
			cur.End = d
			continue
		}
		ranges = append(ranges, cur)
		cur = Range{Start: d, End: d, Shifts: c[d]}
	}
	return append(ranges, cur)
}

// Singles returns one single-day range per covered date, ascending.
func Singles(c Collection) []Range {
	dates := c.Dates()
	ranges := make([]Range, 0, len(dates))
	for _, d := range dates {
		ranges = append(ranges, Range{Start: d, End: d, Shifts: c[d]})
	}
	return ranges
}

func sameShiftSet(a, b []Shift) bool {
	if len(a) != len(b) {
		return false
	}
	sa := append([]Shift(nil), a...)
	sb := append([]Shift(nil), b...)
	sortShifts(sa)
	sortShifts(sb)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

func sortShifts(shifts []Shift) {
	sort.Slice(shifts, func(i, j int) bool {
		a, b := shifts[i], shifts[j]
		if a.User != b.User {
			return a.User < b.User
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		if a.StartHour != b.StartHour {
			return a.StartHour < b.StartHour
		}
		return a.EndHour < b.EndHour
	})
}
