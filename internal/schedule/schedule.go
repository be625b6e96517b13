// Package schedule turns raw on-call rolls into per-day shift groupings and
// collapses runs of identical days into date ranges.
package schedule

import (
	"fmt"
	"sort"
	"time"
)

// timeLayout matches the API's ISO-8601 timestamps with offset.
const timeLayout = "2006-01-02T15:04:05Z07:00"

// hourLayout is the hour-of-day form shifts are compared and displayed with.
const hourLayout = "15:04"

// ParseTimestamp parses an ISO-8601 timestamp with offset.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}

// Date is a calendar day, free of clock and zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Next returns the following calendar day.
func (d Date) Next() Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+1, 0, 0, 0, 0, time.UTC))
}

// Before reports whether d precedes o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Shift is one on-call assignment active on a calendar day.
type Shift struct {
	User      string
	Name      string
	StartHour string
	EndHour   string
}

// Collection groups shifts by the calendar days they cover.
type Collection map[Date][]Shift

// Add appends a shift to the given day.
func (c Collection) Add(d Date, s Shift) {
	c[d] = append(c[d], s)
}

// Dates returns the covered days in ascending order.
func (c Collection) Dates() []Date {
	dates := make([]Date, 0, len(c))
	for d := range c {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// ExpandRoll adds one entry per calendar day the roll covers, from its start
// date through its end date inclusive. Every entry carries the roll's own
// hour-of-day start and end.
func ExpandRoll(c Collection, user, shiftName, start, end string) error {
	startT, err := ParseTimestamp(start)
	if err != nil {
		return err
	}
	endT, err := ParseTimestamp(end)
	if err != nil {
		return err
	}
	if !endT.After(startT) {
		return fmt.Errorf("roll end %s is not after start %s", end, start)
	}
	shift := Shift{
		User:      user,
		Name:      shiftName,
		StartHour: startT.Format(hourLayout),
		EndHour:   endT.Format(hourLayout),
	}
	last := DateOf(endT)
	for d := DateOf(startT); ; d = d.Next() {
		c.Add(d, shift)
		if d == last {
			break
		}
	}
	return nil
}
