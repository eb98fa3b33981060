package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Divy2308/Synobiz/internal/models"
	"github.com/Divy2308/Synobiz/internal/repository"
)

// AttendanceRepo persists one row per (user_id, day); the table's composite
// primary key turns a racing double check-in into a reported conflict.
type AttendanceRepo struct{ db *pgxpool.Pool }

func NewAttendanceRepo(db *pgxpool.Pool) repository.AttendanceRepository {
	return &AttendanceRepo{db: db}
}

func (r *AttendanceRepo) ForDay(ctx context.Context, userID int64, day time.Time) (*models.AttendanceRecord, error) {
	var rec models.AttendanceRecord
	err := r.db.QueryRow(ctx, `
		SELECT user_id, day, check_in, check_out
		FROM attendance WHERE user_id=$1 AND day=$2`, userID, day).
		Scan(&rec.UserID, &rec.Day, &rec.CheckIn, &rec.CheckOut)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, mapErr(err)
	}
	return &rec, nil
}

func (r *AttendanceRepo) Recent(ctx context.Context, userID int64, limit int) ([]models.AttendanceRecord, error) {
	if limit <= 0 {
		limit = 7
	}
	rows, err := r.db.Query(ctx, `
		SELECT user_id, day, check_in, check_out
		FROM attendance WHERE user_id=$1
		ORDER BY day DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []models.AttendanceRecord
	for rows.Next() {
		var rec models.AttendanceRecord
		if err := rows.Scan(&rec.UserID, &rec.Day, &rec.CheckIn, &rec.CheckOut); err != nil {
			return nil, mapErr(err)
		}
		out = append(out, rec)
	}
	return out, mapErr(rows.Err())
}

func (r *AttendanceRepo) CheckIn(ctx context.Context, userID int64, day, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO attendance (user_id, day, check_in)
		VALUES ($1, $2, $3)`, userID, day, at)
	return mapErr(err)
}

// CheckOut sets check_out exactly once. The IS NULL guard keeps a concurrent
// second check-out from overwriting the stored time.
func (r *AttendanceRepo) CheckOut(ctx context.Context, userID int64, day, at time.Time) error {
	ct, err := r.db.Exec(ctx, `
		UPDATE attendance SET check_out=$1
		WHERE user_id=$2 AND day=$3 AND check_in IS NOT NULL AND check_out IS NULL`,
		at, userID, day)
	if err != nil {
		return mapErr(err)
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrConflict
	}
	return nil
}
