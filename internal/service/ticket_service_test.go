package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Divy2308/Synobiz/internal/models"
	"github.com/Divy2308/Synobiz/internal/repository"
)

type fakeTickets struct {
	repository.TicketRepository
	rows      []*models.Ticket
	nextID    int64
	failReads bool
}

func (f *fakeTickets) MaxTicketNumber(context.Context) (int64, error) {
	var max int64
	for _, t := range f.rows {
		if t.TicketNumber > max {
			max = t.TicketNumber
		}
	}
	return max, nil
}

func (f *fakeTickets) Create(_ context.Context, t *models.Ticket) error {
	for _, existing := range f.rows {
		if existing.TicketNumber == t.TicketNumber {
			return repository.ErrConflict
		}
	}
	f.nextID++
	t.ID = f.nextID
	cp := *t
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeTickets) Get(_ context.Context, id int64) (*models.Ticket, error) {
	if f.failReads {
		return nil, repository.ErrUnavailable
	}
	for _, t := range f.rows {
		if t.ID == id {
			cp := *t
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeTickets) Assign(_ context.Context, id int64, assignees string) error {
	for _, t := range f.rows {
		if t.ID == id {
			t.AssignedTo = assignees
			t.Status = models.StatusAssigned
			return nil
		}
	}
	return repository.ErrNotFound
}

func TestTicketNumberingFromEmptyTable(t *testing.T) {
	t.Parallel()

	repo := &fakeTickets{}
	svc := NewTicketService(repo)
	ctx := context.Background()

	next, err := svc.NextTicketNumber(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if next != 25649 {
		t.Errorf("first number = %d, want seed 25649", next)
	}

	want := []int64{25649, 25650, 25651}
	for i, w := range want {
		tk := &models.Ticket{Subject: "t", Customer: "c"}
		if err := svc.Submit(ctx, tk); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if tk.TicketNumber != w {
			t.Errorf("ticket %d number = %d, want %d", i, tk.TicketNumber, w)
		}
	}
}

func TestSubmitDefaultsStatusOpen(t *testing.T) {
	t.Parallel()

	repo := &fakeTickets{}
	svc := NewTicketService(repo)

	tk := &models.Ticket{Subject: "broken report"}
	if err := svc.Submit(context.Background(), tk); err != nil {
		t.Fatal(err)
	}
	if tk.Status != models.StatusOpen {
		t.Errorf("status = %q, want Open", tk.Status)
	}
}

func TestAssignJoinsNamesAndSetsStatus(t *testing.T) {
	t.Parallel()

	repo := &fakeTickets{rows: []*models.Ticket{
		{ID: 7, TicketNumber: 25649, Status: models.StatusOpen, Subject: "s"},
	}, nextID: 7}
	svc := NewTicketService(repo)

	got, err := svc.Assign(context.Background(), 7, []string{"Alice", " Bob "})
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if got.Status != models.StatusAssigned {
		t.Errorf("status = %q", got.Status)
	}
	if got.AssignedTo != "Alice, Bob" {
		t.Errorf("assignedTo = %q", got.AssignedTo)
	}
}

func TestAssignMissingTicketDoesNotMutate(t *testing.T) {
	t.Parallel()

	repo := &fakeTickets{rows: []*models.Ticket{
		{ID: 7, Status: models.StatusOpen},
	}, nextID: 7}
	svc := NewTicketService(repo)

	_, err := svc.Assign(context.Background(), 99, []string{"Alice"})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Assign unknown id: %v", err)
	}
	if repo.rows[0].Status != models.StatusOpen || repo.rows[0].AssignedTo != "" {
		t.Errorf("row mutated: %+v", repo.rows[0])
	}
}

func TestAssignValidation(t *testing.T) {
	t.Parallel()

	svc := NewTicketService(&fakeTickets{})
	if _, err := svc.Assign(context.Background(), 0, []string{"Alice"}); !errors.Is(err, ErrMissingAssignment) {
		t.Errorf("zero id: %v", err)
	}
	if _, err := svc.Assign(context.Background(), 7, []string{" ", ""}); !errors.Is(err, ErrMissingAssignment) {
		t.Errorf("blank names: %v", err)
	}
}

func TestAssignSynthesizesResultWhenRefreshFails(t *testing.T) {
	t.Parallel()

	repo := &fakeTickets{rows: []*models.Ticket{
		{ID: 7, Status: models.StatusOpen},
	}, nextID: 7, failReads: true}
	svc := NewTicketService(repo)

	got, err := svc.Assign(context.Background(), 7, []string{"Alice", "Bob"})
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if got.ID != 7 || got.Status != models.StatusAssigned || got.AssignedTo != "Alice, Bob" {
		t.Errorf("synthesized ticket = %+v", got)
	}
}

func TestReassignAllowedRegardlessOfStatus(t *testing.T) {
	t.Parallel()

	repo := &fakeTickets{rows: []*models.Ticket{
		{ID: 3, Status: models.StatusClosed, AssignedTo: "Carol"},
	}, nextID: 3}
	svc := NewTicketService(repo)

	got, err := svc.Assign(context.Background(), 3, []string{"Dave"})
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if got.Status != models.StatusAssigned || got.AssignedTo != "Dave" {
		t.Errorf("reassigned ticket = %+v", got)
	}
}
