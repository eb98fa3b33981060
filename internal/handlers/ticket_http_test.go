package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/Divy2308/Synobiz/internal/models"
	"github.com/Divy2308/Synobiz/internal/repository"
	"github.com/Divy2308/Synobiz/internal/service"
)

type fakeTicketStore struct {
	repository.TicketRepository
	rows map[int64]*models.Ticket
}

func (f *fakeTicketStore) Get(_ context.Context, id int64) (*models.Ticket, error) {
	t, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTicketStore) Update(_ context.Context, t *models.Ticket) error {
	cur, ok := f.rows[t.ID]
	if !ok {
		return repository.ErrNotFound
	}
	upd := *t
	upd.TicketNumber = cur.TicketNumber
	upd.AssignedTo = cur.AssignedTo
	f.rows[t.ID] = &upd
	return nil
}

func (f *fakeTicketStore) Assign(_ context.Context, id int64, assignees string) error {
	t, ok := f.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	t.AssignedTo = assignees
	t.Status = models.StatusAssigned
	return nil
}

func newTicketFixture(t *testing.T, rows ...*models.Ticket) (*TicketHTTP, *fakeTicketStore) {
	t.Helper()
	store := &fakeTicketStore{rows: map[int64]*models.Ticket{}}
	for _, row := range rows {
		store.rows[row.ID] = row
	}
	h := NewTicketHTTP(service.NewTicketService(store), store, nil, t.TempDir(), zerolog.Nop())
	return h, store
}

func postTicketUpdate(t *testing.T, h *TicketHTTP, id string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.Post("/tickets/update_ticket/{id}", h.Update())
	req := httptest.NewRequest(http.MethodPost, "/tickets/update_ticket/"+id, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestUpdateWithoutStatusKeepsStored(t *testing.T) {
	t.Parallel()

	h, store := newTicketFixture(t, &models.Ticket{
		ID: 7, TicketNumber: 25649, Status: models.StatusAssigned,
		Subject: "old subject", AssignedTo: "Alice",
	})

	form := url.Values{"subject": {"new subject"}, "customer": {"Acme"}}
	rec := postTicketUpdate(t, h, "7", form)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	got := store.rows[7]
	if got.Status != models.StatusAssigned {
		t.Errorf("stored status = %q, want the pre-update Assigned", got.Status)
	}
	if got.Subject != "new subject" || got.Customer != "Acme" {
		t.Errorf("fields not overwritten: %+v", got)
	}
}

func TestUpdateWithStatusOverwrites(t *testing.T) {
	t.Parallel()

	h, store := newTicketFixture(t, &models.Ticket{
		ID: 7, Status: models.StatusOpen, Subject: "s",
	})

	form := url.Values{"subject": {"s"}, "status": {"Closed"}}
	if rec := postTicketUpdate(t, h, "7", form); rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if store.rows[7].Status != models.StatusClosed {
		t.Errorf("stored status = %q, want Closed", store.rows[7].Status)
	}
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	h, store := newTicketFixture(t, &models.Ticket{
		ID: 7, Status: models.StatusOpen, Subject: "s",
	})

	form := url.Values{"subject": {"s"}, "status": {"Escalated"}}
	if rec := postTicketUpdate(t, h, "7", form); rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if store.rows[7].Status != models.StatusOpen {
		t.Errorf("row mutated: %+v", store.rows[7])
	}
}

func TestUpdateUnknownTicket(t *testing.T) {
	t.Parallel()

	h, _ := newTicketFixture(t)
	form := url.Values{"subject": {"s"}}
	if rec := postTicketUpdate(t, h, "99", form); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func postAssignment(t *testing.T, h *TicketHTTP, body, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/tickets/perform_assignment", strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.PerformAssignment().ServeHTTP(rec, req)
	return rec
}

func TestPerformAssignment(t *testing.T) {
	t.Parallel()

	h, store := newTicketFixture(t, &models.Ticket{
		ID: 7, Status: models.StatusOpen, Subject: "s",
	})

	// a single name arrives as a bare string
	rec := postAssignment(t, h, `{"ticket_id": 7, "assignee_names": "Alice"}`, "application/json")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if store.rows[7].AssignedTo != "Alice" || store.rows[7].Status != models.StatusAssigned {
		t.Errorf("row = %+v", store.rows[7])
	}

	// several names arrive as a list and are joined for display
	rec = postAssignment(t, h, `{"ticket_id": 7, "assignee_names": ["Alice", "Bob"]}`, "application/json")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if store.rows[7].AssignedTo != "Alice, Bob" {
		t.Errorf("assignedTo = %q", store.rows[7].AssignedTo)
	}
}

func TestPerformAssignmentErrors(t *testing.T) {
	t.Parallel()

	h, _ := newTicketFixture(t, &models.Ticket{ID: 7, Status: models.StatusOpen})

	if rec := postAssignment(t, h, "ticket_id=7", "application/x-www-form-urlencoded"); rec.Code != http.StatusBadRequest {
		t.Errorf("non-JSON body: %d", rec.Code)
	}
	if rec := postAssignment(t, h, `{"ticket_id": 99, "assignee_names": "Alice"}`, "application/json"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown ticket: %d", rec.Code)
	}
	if rec := postAssignment(t, h, `{"ticket_id": 7, "assignee_names": ""}`, "application/json"); rec.Code != http.StatusBadRequest {
		t.Errorf("blank assignee: %d", rec.Code)
	}
}
