package repository

import (
	"context"
	"time"

	"github.com/Divy2308/Synobiz/internal/models"
)

type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	// Create persists a new user with the given bcrypt hash and returns the
	// store-assigned id.
	Create(ctx context.Context, u *models.User, passwordHash string) (int64, error)
	// Update overwrites every listed field, including with NULL when the
	// submitted value was blank. passwordHash == "" keeps the stored hash.
	Update(ctx context.Context, id int64, u *models.User, passwordHash string) error
	Delete(ctx context.Context, id int64) error

	// Managers lists users with position Manager or Senior, ordered by name.
	Managers(ctx context.Context) ([]models.UserRef, error)
	// Customers lists users with user_type Customer, ordered by name.
	Customers(ctx context.Context) ([]models.UserRef, error)
	// Assignees lists Admin and Consultant users, ordered by name.
	Assignees(ctx context.Context) ([]models.UserRef, error)

	// GetByUserName returns the user and its stored password hash, or
	// (nil, "", nil) when no such user exists.
	GetByUserName(ctx context.Context, userName string) (*models.User, string, error)
	PasswordHash(ctx context.Context, id int64) (string, error)
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
}

type AttendanceRepository interface {
	// ForDay returns nil when the user has no record for the day.
	ForDay(ctx context.Context, userID int64, day time.Time) (*models.AttendanceRecord, error)
	Recent(ctx context.Context, userID int64, limit int) ([]models.AttendanceRecord, error)
	// CheckIn inserts the day's record; a concurrent duplicate surfaces as
	// ErrConflict via the (user_id, day) unique constraint.
	CheckIn(ctx context.Context, userID int64, day, at time.Time) error
	// CheckOut sets check_out once; ErrConflict when it was already set.
	CheckOut(ctx context.Context, userID int64, day, at time.Time) error
}

type TicketRepository interface {
	Dashboard(ctx context.Context) ([]models.DashboardRow, error)
	ListByStatus(ctx context.Context, status models.TicketStatus) ([]models.Ticket, error)
	Get(ctx context.Context, id int64) (*models.Ticket, error)
	// MaxTicketNumber returns 0 when the table is empty.
	MaxTicketNumber(ctx context.Context) (int64, error)
	Create(ctx context.Context, t *models.Ticket) error
	Update(ctx context.Context, t *models.Ticket) error
	SetAttachment(ctx context.Context, id int64, path string) error
	// Assign overwrites the assignee display string and forces status
	// Assigned; ErrNotFound when no row matched.
	Assign(ctx context.Context, id int64, assignees string) error
}

type HolidayRepository interface {
	List(ctx context.Context, f DateFilter) ([]models.Holiday, error)
	Add(ctx context.Context, h *models.Holiday) error
	Update(ctx context.Context, id int64, h *models.Holiday) error
	Delete(ctx context.Context, id int64) error
}

type LeaveRepository interface {
	List(ctx context.Context, f DateFilter) ([]models.LeaveRequest, error)
	Add(ctx context.Context, l *models.LeaveRequest) error
	Update(ctx context.Context, id int64, l *models.LeaveRequest) error
	Delete(ctx context.Context, id int64) error
}
