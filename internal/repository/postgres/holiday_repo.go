package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Divy2308/Synobiz/internal/models"
	"github.com/Divy2308/Synobiz/internal/repository"
)

type HolidayRepo struct{ db *pgxpool.Pool }

func NewHolidayRepo(db *pgxpool.Pool) repository.HolidayRepository { return &HolidayRepo{db: db} }

func (r *HolidayRepo) List(ctx context.Context, f repository.DateFilter) ([]models.Holiday, error) {
	where, args := dateWhere("holiday_date", f)
	rows, err := r.db.Query(ctx, `
		SELECT id, country, name, holiday_date
		FROM holidays
		`+where+`
		ORDER BY holiday_date ASC`, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []models.Holiday
	for rows.Next() {
		var h models.Holiday
		if err := rows.Scan(&h.ID, &h.Country, &h.Name, &h.HolidayDate); err != nil {
			return nil, mapErr(err)
		}
		h.Annotate()
		out = append(out, h)
	}
	return out, mapErr(rows.Err())
}

func (r *HolidayRepo) Add(ctx context.Context, h *models.Holiday) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO holidays (country, name, holiday_date)
		VALUES ($1,$2,$3)
		RETURNING id`,
		h.Country, h.Name, h.HolidayDate).Scan(&h.ID)
	if err != nil {
		return mapErr(err)
	}
	h.Annotate()
	return nil
}

func (r *HolidayRepo) Update(ctx context.Context, id int64, h *models.Holiday) error {
	ct, err := r.db.Exec(ctx, `
		UPDATE holidays SET country=$1, name=$2, holiday_date=$3 WHERE id=$4`,
		h.Country, h.Name, h.HolidayDate, id)
	if err != nil {
		return mapErr(err)
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *HolidayRepo) Delete(ctx context.Context, id int64) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM holidays WHERE id=$1`, id)
	if err != nil {
		return mapErr(err)
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// dateWhere builds the optional date-bound clause shared by both calendar
// registers. Either side of the filter may be open.
func dateWhere(col string, f repository.DateFilter) (string, []any) {
	clauses := []string{}
	args := []any{}

	if !f.Start.IsZero() {
		args = append(args, f.Start)
		clauses = append(clauses, col+" >= $"+strconv.Itoa(len(args)))
	}
	if !f.End.IsZero() {
		args = append(args, f.End)
		clauses = append(clauses, col+" <= $"+strconv.Itoa(len(args)))
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}
