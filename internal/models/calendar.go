package models

import "time"

// Holiday and LeaveRequest are the two parallel calendar registers. Both
// carry the same derived display pair: DisplayDate for humans (dd/mm/yyyy)
// and FormDate for re-editing forms (ISO), computed at read time.

type Holiday struct {
	ID          int64     `json:"id"`
	Country     string    `json:"country"`
	Name        string    `json:"name"`
	HolidayDate time.Time `json:"holidayDate"`
	DisplayDate string    `json:"displayDate"`
	FormDate    string    `json:"formDate"`
}

func (h *Holiday) Annotate() {
	h.DisplayDate, h.FormDate = FormatDatePair(h.HolidayDate)
}

type LeaveRequest struct {
	ID             int64     `json:"id"`
	ConsultantName string    `json:"consultantName"`
	LeaveDate      time.Time `json:"leaveDate"`
	LeaveType      LeaveType `json:"leaveType"`
	Remarks        string    `json:"remarks"`
	CreatedAt      time.Time `json:"createdAt"`
	DisplayDate    string    `json:"displayDate"`
	FormDate       string    `json:"formDate"`
}

func (l *LeaveRequest) Annotate() {
	l.DisplayDate, l.FormDate = FormatDatePair(l.LeaveDate)
}

// FormatDatePair renders the human and form representations of a calendar
// date. Zero time yields empty strings rather than the epoch.
func FormatDatePair(t time.Time) (display, form string) {
	if t.IsZero() {
		return "", ""
	}
	return t.Format("02/01/2006"), t.Format("2006-01-02")
}
