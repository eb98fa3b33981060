package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Divy2308/Synobiz/internal/models"
	"github.com/Divy2308/Synobiz/internal/repository"
)

type UserRepo struct{ db *pgxpool.Pool }

func NewUserRepo(db *pgxpool.Pool) repository.UserRepository { return &UserRepo{db: db} }

const userColumns = `
	id, user_type, user_name, name, mobile, office_email, position,
	joining_date, status, consultant_type, reporting_manager, alternate_mobile,
	worksnap_credentials, timesheet_notification, date_of_birth,
	anniversary_date, sap_server_credentials, allow_backdated_timesheet`

func scanUser(row pgx.Row, u *models.User) error {
	return row.Scan(
		&u.ID, &u.UserType, &u.UserName, &u.Name, &u.Mobile, &u.OfficeEmail,
		&u.Position, &u.JoiningDate, &u.Status, &u.ConsultantType,
		&u.ReportingManager, &u.AlternateMobile, &u.WorksnapCredentials,
		&u.TimesheetNotification, &u.DateOfBirth, &u.AnniversaryDate,
		&u.SAPServerCredentials, &u.AllowBackdatedTimesheet,
	)
}

// List returns the directory table view, ordered by id.
func (r *UserRepo) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY id`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		var u models.User
		if err := scanUser(rows, &u); err != nil {
			return nil, mapErr(err)
		}
		out = append(out, u)
	}
	return out, mapErr(rows.Err())
}

func (r *UserRepo) Get(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	err := scanUser(r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users WHERE id=$1`, id), &u)
	if err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

func (r *UserRepo) Create(ctx context.Context, u *models.User, passwordHash string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (
			user_type, user_name, password_h, name, mobile, office_email,
			position, joining_date, status, consultant_type, reporting_manager,
			alternate_mobile, worksnap_credentials, timesheet_notification,
			date_of_birth, anniversary_date, sap_server_credentials,
			allow_backdated_timesheet
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
		RETURNING id`,
		u.UserType, u.UserName, passwordHash, u.Name, u.Mobile, u.OfficeEmail,
		u.Position, u.JoiningDate, u.Status, u.ConsultantType, u.ReportingManager,
		u.AlternateMobile, u.WorksnapCredentials, u.TimesheetNotification,
		u.DateOfBirth, u.AnniversaryDate, u.SAPServerCredentials,
		u.AllowBackdatedTimesheet,
	).Scan(&id)
	if err != nil {
		return 0, mapErr(err)
	}
	return id, nil
}

// Update overwrites every listed field; blank form values arrive as nil and
// clear the column (last write wins, blank clears). The password hash is
// only rewritten when one is supplied.
func (r *UserRepo) Update(ctx context.Context, id int64, u *models.User, passwordHash string) error {
	sql := `
		UPDATE users SET
			user_type=$1, user_name=$2, name=$3, mobile=$4, office_email=$5,
			position=$6, joining_date=$7, status=$8, consultant_type=$9,
			reporting_manager=$10, alternate_mobile=$11,
			worksnap_credentials=$12, timesheet_notification=$13,
			date_of_birth=$14, anniversary_date=$15,
			sap_server_credentials=$16, allow_backdated_timesheet=$17`
	args := []any{
		u.UserType, u.UserName, u.Name, u.Mobile, u.OfficeEmail,
		u.Position, u.JoiningDate, u.Status, u.ConsultantType,
		u.ReportingManager, u.AlternateMobile, u.WorksnapCredentials,
		u.TimesheetNotification, u.DateOfBirth, u.AnniversaryDate,
		u.SAPServerCredentials, u.AllowBackdatedTimesheet,
	}
	if passwordHash != "" {
		args = append(args, passwordHash)
		sql += `, password_h=$18
		WHERE id=$19`
	} else {
		sql += `
		WHERE id=$18`
	}
	args = append(args, id)

	ct, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return mapErr(err)
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return mapErr(err)
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepo) Managers(ctx context.Context) ([]models.UserRef, error) {
	return r.refs(ctx, `
		SELECT id, name, user_type, '' FROM users
		WHERE position IN ('Manager', 'Senior')
		ORDER BY name`)
}

func (r *UserRepo) Customers(ctx context.Context) ([]models.UserRef, error) {
	return r.refs(ctx, `
		SELECT id, name, user_type, office_email FROM users
		WHERE user_type = 'Customer'
		ORDER BY name`)
}

func (r *UserRepo) Assignees(ctx context.Context) ([]models.UserRef, error) {
	return r.refs(ctx, `
		SELECT id, name, user_type, '' FROM users
		WHERE user_type IN ('Admin', 'Consultant')
		ORDER BY name`)
}

func (r *UserRepo) refs(ctx context.Context, sql string) ([]models.UserRef, error) {
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []models.UserRef
	for rows.Next() {
		var ref models.UserRef
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.UserType, &ref.OfficeEmail); err != nil {
			return nil, mapErr(err)
		}
		out = append(out, ref)
	}
	return out, mapErr(rows.Err())
}

func (r *UserRepo) GetByUserName(ctx context.Context, userName string) (*models.User, string, error) {
	var u models.User
	var hash string
	err := r.db.QueryRow(ctx, `
		SELECT id, user_type, user_name, name, office_email, password_h
		FROM users WHERE user_name=$1`, userName).
		Scan(&u.ID, &u.UserType, &u.UserName, &u.Name, &u.OfficeEmail, &hash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", nil
		}
		return nil, "", mapErr(err)
	}
	return &u, hash, nil
}

func (r *UserRepo) PasswordHash(ctx context.Context, id int64) (string, error) {
	var hash string
	err := r.db.QueryRow(ctx, `SELECT password_h FROM users WHERE id=$1`, id).Scan(&hash)
	if err != nil {
		return "", mapErr(err)
	}
	return hash, nil
}

func (r *UserRepo) UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error {
	ct, err := r.db.Exec(ctx, `UPDATE users SET password_h=$1 WHERE id=$2`, passwordHash, id)
	if err != nil {
		return mapErr(err)
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
