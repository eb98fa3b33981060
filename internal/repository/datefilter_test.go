package repository

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateFilterThisMonth(t *testing.T) {
	t.Parallel()

	// Leap February must end on the 29th.
	f := NewDateFilter(FilterThisMonth, "", "", date(2024, time.February, 15))
	if !f.Start.Equal(date(2024, time.February, 1)) {
		t.Errorf("start = %v, want 2024-02-01", f.Start)
	}
	if !f.End.Equal(date(2024, time.February, 29)) {
		t.Errorf("end = %v, want 2024-02-29", f.End)
	}

	// December must roll over into January without leaving the year.
	f = NewDateFilter(FilterThisMonth, "", "", date(2023, time.December, 20))
	if !f.Start.Equal(date(2023, time.December, 1)) || !f.End.Equal(date(2023, time.December, 31)) {
		t.Errorf("december bounds = [%v, %v]", f.Start, f.End)
	}
}

func TestDateFilterThisWeek(t *testing.T) {
	t.Parallel()

	// 2024-02-15 is a Thursday; the week is Mon 12th through Sun 18th.
	f := NewDateFilter(FilterThisWeek, "", "", date(2024, time.February, 15))
	if !f.Start.Equal(date(2024, time.February, 12)) {
		t.Errorf("start = %v, want Monday 2024-02-12", f.Start)
	}
	if !f.End.Equal(date(2024, time.February, 18)) {
		t.Errorf("end = %v, want Sunday 2024-02-18", f.End)
	}

	// A Monday is its own week start; a Sunday belongs to the week behind it.
	f = NewDateFilter(FilterThisWeek, "", "", date(2024, time.February, 12))
	if !f.Start.Equal(date(2024, time.February, 12)) {
		t.Errorf("monday start = %v", f.Start)
	}
	f = NewDateFilter(FilterThisWeek, "", "", date(2024, time.February, 18))
	if !f.Start.Equal(date(2024, time.February, 12)) {
		t.Errorf("sunday start = %v", f.Start)
	}
}

func TestDateFilterToday(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 3, 17, 45, 12, 0, time.UTC)
	f := NewDateFilter(FilterToday, "", "", now)
	want := date(2024, time.March, 3)
	if !f.Start.Equal(want) || !f.End.Equal(want) {
		t.Errorf("today bounds = [%v, %v], want both %v", f.Start, f.End, want)
	}
}

func TestDateFilterCustomRange(t *testing.T) {
	t.Parallel()

	f := NewDateFilter(FilterCustom, "2024-01-10", "2024-01-20", date(2024, time.June, 1))
	if !f.Start.Equal(date(2024, time.January, 10)) || !f.End.Equal(date(2024, time.January, 20)) {
		t.Errorf("custom bounds = [%v, %v]", f.Start, f.End)
	}
	if f.Warning != "" {
		t.Errorf("unexpected warning %q", f.Warning)
	}

	// Open-ended ranges keep the supplied side only.
	f = NewDateFilter(FilterCustom, "2024-01-10", "", date(2024, time.June, 1))
	if f.Start.IsZero() || !f.End.IsZero() {
		t.Errorf("open-ended bounds = [%v, %v]", f.Start, f.End)
	}
}

func TestDateFilterMalformedCustomDegradesToAll(t *testing.T) {
	t.Parallel()

	f := NewDateFilter(FilterCustom, "10/01/2024", "2024-01-20", date(2024, time.June, 1))
	if !f.Start.IsZero() || !f.End.IsZero() {
		t.Errorf("malformed range must be unbounded, got [%v, %v]", f.Start, f.End)
	}
	if f.Warning == "" {
		t.Error("malformed range must carry a warning")
	}
}

func TestDateFilterAll(t *testing.T) {
	t.Parallel()

	for _, ft := range []string{FilterAll, "", "bogus"} {
		f := NewDateFilter(ft, "", "", date(2024, time.June, 1))
		if !f.Start.IsZero() || !f.End.IsZero() || f.Warning != "" {
			t.Errorf("filter %q must be unbounded, got %+v", ft, f)
		}
	}
}
