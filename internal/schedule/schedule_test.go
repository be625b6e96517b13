package schedule

import (
	"testing"
)

func TestExpandRollSingleDay(t *testing.T) {
	c := make(Collection)
	err := ExpandRoll(c, "alice", "Day", "2024-01-01T09:00:00Z", "2024-01-01T17:00:00Z")
	if err != nil {
		t.Fatalf("expand roll: %v", err)
	}
	if len(c) != 1 {
		t.Fatalf("expected 1 covered day, got %d", len(c))
	}
	day := Date{Year: 2024, Month: 1, Day: 1}
	shifts := c[day]
	if len(shifts) != 1 {
		t.Fatalf("expected 1 shift on %s, got %d", day, len(shifts))
	}
	want := Shift{User: "alice", Name: "Day", StartHour: "09:00", EndHour: "17:00"}
	if shifts[0] != want {
		t.Fatalf("unexpected shift %+v", shifts[0])
	}
}

func TestExpandRollSpanningDays(t *testing.T) {
	c := make(Collection)
	err := ExpandRoll(c, "bob", "Night", "2024-01-01T21:00:00-05:00", "2024-01-03T09:00:00-05:00")
	if err != nil {
		t.Fatalf("expand roll: %v", err)
	}
	if len(c) != 3 {
		t.Fatalf("expected 3 covered days, got %d", len(c))
	}
	for _, day := range []Date{
		{Year: 2024, Month: 1, Day: 1},
		{Year: 2024, Month: 1, Day: 2},
		{Year: 2024, Month: 1, Day: 3},
	} {
		shifts := c[day]
		if len(shifts) != 1 {
			t.Fatalf("expected 1 shift on %s, got %d", day, len(shifts))
		}
		if shifts[0].StartHour != "21:00" || shifts[0].EndHour != "09:00" {
			t.Fatalf("day %s carries hours %s-%s", day, shifts[0].StartHour, shifts[0].EndHour)
		}
	}
}

func TestExpandRollRejectsMalformedTimestamp(t *testing.T) {
	c := make(Collection)
	if err := ExpandRoll(c, "alice", "Day", "2024-01-01 09:00", "2024-01-01T17:00:00Z"); err == nil {
		t.Fatal("expected error for malformed start timestamp")
	}
	if err := ExpandRoll(c, "alice", "Day", "2024-01-01T09:00:00Z", "not-a-time"); err == nil {
		t.Fatal("expected error for malformed end timestamp")
	}
}

func TestExpandRollRejectsInvertedWindow(t *testing.T) {
	c := make(Collection)
	err := ExpandRoll(c, "alice", "Day", "2024-01-01T17:00:00Z", "2024-01-01T09:00:00Z")
	if err == nil {
		t.Fatal("expected error when roll ends before it starts")
	}
}

func TestDatesSorted(t *testing.T) {
	c := Collection{
		{Year: 2024, Month: 2, Day: 1}:   nil,
		{Year: 2023, Month: 12, Day: 31}: nil,
		{Year: 2024, Month: 1, Day: 15}:  nil,
	}
	dates := c.Dates()
	for i := 1; i < len(dates); i++ {
		if !dates[i-1].Before(dates[i]) {
			t.Fatalf("dates out of order: %s before %s", dates[i-1], dates[i])
		}
	}
}

func TestDateNextCrossesMonth(t *testing.T) {
	d := Date{Year: 2024, Month: 1, Day: 31}
	next := d.Next()
	want := Date{Year: 2024, Month: 2, Day: 1}
	if next != want {
		t.Fatalf("expected %s, got %s", want, next)
	}
}
