package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Divy2308/Synobiz/internal/models"
	"github.com/Divy2308/Synobiz/internal/repository"
)

type TicketRepo struct{ db *pgxpool.Pool }

func NewTicketRepo(db *pgxpool.Pool) repository.TicketRepository { return &TicketRepo{db: db} }

const ticketColumns = `
	id, ticket_number, customer, module, status, form_type, priority, subject,
	task_given_by, approved_hours, description, attachment_path,
	COALESCE(assigned_to_user_name, ''), delivery_date, created_at, updated_at`

func scanTicket(row pgx.Row, t *models.Ticket) error {
	return row.Scan(
		&t.ID, &t.TicketNumber, &t.Customer, &t.Module, &t.Status, &t.FormType,
		&t.Priority, &t.Subject, &t.TaskGivenBy, &t.ApprovedHours,
		&t.Description, &t.AttachmentPath, &t.AssignedTo, &t.DeliveryDate,
		&t.CreatedAt, &t.UpdatedAt,
	)
}

// Dashboard lists every ticket in the dashboard projection. The delivery
// date is presentation-only and defaults to "N/A" when none is stored.
func (r *TicketRepo) Dashboard(ctx context.Context) ([]models.DashboardRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, ticket_number, customer, subject, priority, status, delivery_date
		FROM tickets
		ORDER BY ticket_number`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []models.DashboardRow
	for rows.Next() {
		var row models.DashboardRow
		var delivery *time.Time
		if err := rows.Scan(&row.ID, &row.TicketNumber, &row.Customer, &row.Task,
			&row.Priority, &row.Status, &delivery); err != nil {
			return nil, mapErr(err)
		}
		row.DeliveryDate = "N/A"
		if delivery != nil {
			row.DeliveryDate, _ = models.FormatDatePair(*delivery)
		}
		out = append(out, row)
	}
	return out, mapErr(rows.Err())
}

func (r *TicketRepo) ListByStatus(ctx context.Context, status models.TicketStatus) ([]models.Ticket, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+ticketColumns+`
		FROM tickets WHERE status=$1
		ORDER BY ticket_number ASC`, status)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []models.Ticket
	for rows.Next() {
		var t models.Ticket
		if err := scanTicket(rows, &t); err != nil {
			return nil, mapErr(err)
		}
		out = append(out, t)
	}
	return out, mapErr(rows.Err())
}

func (r *TicketRepo) Get(ctx context.Context, id int64) (*models.Ticket, error) {
	var t models.Ticket
	err := scanTicket(r.db.QueryRow(ctx, `
		SELECT `+ticketColumns+`
		FROM tickets WHERE id=$1`, id), &t)
	if err != nil {
		return nil, mapErr(err)
	}
	return &t, nil
}

func (r *TicketRepo) MaxTicketNumber(ctx context.Context) (int64, error) {
	var max int64
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(MAX(ticket_number), 0) FROM tickets`).Scan(&max)
	if err != nil {
		return 0, mapErr(err)
	}
	return max, nil
}

// Create inserts a ticket with its pre-allocated number. The unique
// constraint on ticket_number turns a numbering race between two concurrent
// creators into ErrConflict instead of a silent duplicate.
func (r *TicketRepo) Create(ctx context.Context, t *models.Ticket) error {
	now := time.Now()
	err := r.db.QueryRow(ctx, `
		INSERT INTO tickets (
			ticket_number, customer, module, status, form_type, priority,
			subject, task_given_by, approved_hours, description,
			attachment_path, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING id, created_at, updated_at`,
		t.TicketNumber, t.Customer, t.Module, t.Status, t.FormType, t.Priority,
		t.Subject, t.TaskGivenBy, t.ApprovedHours, t.Description,
		t.AttachmentPath, now, now,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	return mapErr(err)
}

func (r *TicketRepo) Update(ctx context.Context, t *models.Ticket) error {
	ct, err := r.db.Exec(ctx, `
		UPDATE tickets SET
			customer=$1, module=$2, status=$3, form_type=$4, priority=$5,
			subject=$6, task_given_by=$7, approved_hours=$8, description=$9,
			updated_at=now()
		WHERE id=$10`,
		t.Customer, t.Module, t.Status, t.FormType, t.Priority,
		t.Subject, t.TaskGivenBy, t.ApprovedHours, t.Description, t.ID,
	)
	if err != nil {
		return mapErr(err)
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TicketRepo) SetAttachment(ctx context.Context, id int64, path string) error {
	ct, err := r.db.Exec(ctx, `
		UPDATE tickets SET attachment_path=$1, updated_at=now() WHERE id=$2`,
		path, id)
	if err != nil {
		return mapErr(err)
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Assign does not check the current status: re-assigning an assigned or
// closed ticket is allowed and simply overwrites.
func (r *TicketRepo) Assign(ctx context.Context, id int64, assignees string) error {
	ct, err := r.db.Exec(ctx, `
		UPDATE tickets SET assigned_to_user_name=$1, status=$2, updated_at=now()
		WHERE id=$3`,
		assignees, models.StatusAssigned, id)
	if err != nil {
		return mapErr(err)
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
