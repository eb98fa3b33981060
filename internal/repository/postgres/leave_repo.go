package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Divy2308/Synobiz/internal/models"
	"github.com/Divy2308/Synobiz/internal/repository"
)

// LeaveRepo mirrors HolidayRepo over the leave_requests table. The table
// carries a unique (consultant_name, leave_date) constraint, so a duplicate
// submission comes back as ErrConflict.
type LeaveRepo struct{ db *pgxpool.Pool }

func NewLeaveRepo(db *pgxpool.Pool) repository.LeaveRepository { return &LeaveRepo{db: db} }

func (r *LeaveRepo) List(ctx context.Context, f repository.DateFilter) ([]models.LeaveRequest, error) {
	where, args := dateWhere("leave_date", f)
	rows, err := r.db.Query(ctx, `
		SELECT id, consultant_name, leave_date, leave_type, COALESCE(remarks, ''), created_at
		FROM leave_requests
		`+where+`
		ORDER BY leave_date DESC, created_at DESC`, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []models.LeaveRequest
	for rows.Next() {
		var l models.LeaveRequest
		if err := rows.Scan(&l.ID, &l.ConsultantName, &l.LeaveDate, &l.LeaveType, &l.Remarks, &l.CreatedAt); err != nil {
			return nil, mapErr(err)
		}
		l.Annotate()
		out = append(out, l)
	}
	return out, mapErr(rows.Err())
}

func (r *LeaveRepo) Add(ctx context.Context, l *models.LeaveRequest) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO leave_requests (consultant_name, leave_date, leave_type, remarks)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at`,
		l.ConsultantName, l.LeaveDate, l.LeaveType, l.Remarks).
		Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return mapErr(err)
	}
	l.Annotate()
	return nil
}

func (r *LeaveRepo) Update(ctx context.Context, id int64, l *models.LeaveRequest) error {
	ct, err := r.db.Exec(ctx, `
		UPDATE leave_requests
		SET consultant_name=$1, leave_date=$2, leave_type=$3, remarks=$4
		WHERE id=$5`,
		l.ConsultantName, l.LeaveDate, l.LeaveType, l.Remarks, id)
	if err != nil {
		return mapErr(err)
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *LeaveRepo) Delete(ctx context.Context, id int64) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM leave_requests WHERE id=$1`, id)
	if err != nil {
		return mapErr(err)
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
