package repository

import "time"

// Filter types accepted by the calendar registers.
const (
	FilterAll       = "all"
	FilterThisMonth = "this_month"
	FilterThisWeek  = "this_week"
	FilterToday     = "today"
	FilterCustom    = "custom_range"
)

const isoDate = "2006-01-02"

// DateFilter bounds a calendar read. A zero Start or End means unbounded on
// that side. Warning is set when a malformed custom range was degraded to
// "all"; the request still succeeds.
type DateFilter struct {
	Start   time.Time
	End     time.Time
	Warning string
}

// NewDateFilter resolves a filter type relative to now.
//   - this_month: 1st through the last day of the current month
//   - this_week:  Monday through Sunday of the current week
//   - today:      the current day only
//   - custom_range: two ISO dates, either side optional; a malformed date
//     degrades the whole filter to "all" with a warning
//
// Anything else (including "all") is unbounded.
func NewDateFilter(filterType, startStr, endStr string, now time.Time) DateFilter {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch filterType {
	case FilterThisMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		// first of next month minus a day; AddDate handles Dec -> Jan
		end := start.AddDate(0, 1, -1)
		return DateFilter{Start: start, End: end}

	case FilterThisWeek:
		// Go weeks start on Sunday; shift so Monday is day 0.
		offset := (int(today.Weekday()) + 6) % 7
		start := today.AddDate(0, 0, -offset)
		return DateFilter{Start: start, End: start.AddDate(0, 0, 6)}

	case FilterToday:
		return DateFilter{Start: today, End: today}

	case FilterCustom:
		var f DateFilter
		if startStr != "" {
			t, err := time.Parse(isoDate, startStr)
			if err != nil {
				return DateFilter{Warning: "invalid date format for custom range, use YYYY-MM-DD; showing all"}
			}
			f.Start = t
		}
		if endStr != "" {
			t, err := time.Parse(isoDate, endStr)
			if err != nil {
				return DateFilter{Warning: "invalid date format for custom range, use YYYY-MM-DD; showing all"}
			}
			f.End = t
		}
		return f
	}
	return DateFilter{}
}
