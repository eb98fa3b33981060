package models

import "time"

// AttendanceRecord keys on (user, day); at most one row per pair. A row is
// created lazily on the first check-in of the day, so CheckIn is only nil
// in theory, while CheckOut stays nil until the user checks out.
type AttendanceRecord struct {
	UserID   int64      `json:"userId"`
	Day      time.Time  `json:"date"`
	CheckIn  *time.Time `json:"checkIn"`
	CheckOut *time.Time `json:"checkOut"`
}
