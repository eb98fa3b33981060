package service

import (
	"context"
	"errors"
	"time"

	"github.com/Divy2308/Synobiz/internal/models"
	"github.com/Divy2308/Synobiz/internal/repository"
)

// Attendance transition rejections. Each transition happens at most once
// per (user, day); repeats are rejected, never overwritten.
var (
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNotCheckedIn      = errors.New("check in first")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
)

type AttendanceService struct {
	records repository.AttendanceRepository
}

func NewAttendanceService(records repository.AttendanceRepository) *AttendanceService {
	return &AttendanceService{records: records}
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Today returns the day's record (nil when absent) and up to limit rows of
// recent history.
func (s *AttendanceService) Today(ctx context.Context, userID int64, now time.Time, limit int) (*models.AttendanceRecord, []models.AttendanceRecord, error) {
	rec, err := s.records.ForDay(ctx, userID, dayOf(now))
	if err != nil {
		return nil, nil, err
	}
	recent, err := s.records.Recent(ctx, userID, limit)
	if err != nil {
		return nil, nil, err
	}
	return rec, recent, nil
}

// CheckIn creates the day's record. An existing record is rejected whether
// the read finds it or a racing insert surfaces as a conflict.
func (s *AttendanceService) CheckIn(ctx context.Context, userID int64, now time.Time) (time.Time, error) {
	day := dayOf(now)
	rec, err := s.records.ForDay(ctx, userID, day)
	if err != nil {
		return time.Time{}, err
	}
	if rec != nil {
		return time.Time{}, ErrAlreadyCheckedIn
	}
	if err := s.records.CheckIn(ctx, userID, day, now); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return time.Time{}, ErrAlreadyCheckedIn
		}
		return time.Time{}, err
	}
	return now, nil
}

func (s *AttendanceService) CheckOut(ctx context.Context, userID int64, now time.Time) (time.Time, error) {
	day := dayOf(now)
	rec, err := s.records.ForDay(ctx, userID, day)
	if err != nil {
		return time.Time{}, err
	}
	if rec == nil || rec.CheckIn == nil {
		return time.Time{}, ErrNotCheckedIn
	}
	if rec.CheckOut != nil {
		return time.Time{}, ErrAlreadyCheckedOut
	}
	if err := s.records.CheckOut(ctx, userID, day, now); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return time.Time{}, ErrAlreadyCheckedOut
		}
		return time.Time{}, err
	}
	return now, nil
}
