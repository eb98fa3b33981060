package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Divy2308/Synobiz/internal/models"
	"github.com/Divy2308/Synobiz/internal/repository"
)

// Ticket numbers are externally visible and start from a fixed seed when
// the table is empty.
const firstTicketNumber = 25649

var ErrMissingAssignment = errors.New("missing ticket id or assignee name")

type TicketService struct {
	tickets repository.TicketRepository
}

func NewTicketService(tickets repository.TicketRepository) *TicketService {
	return &TicketService{tickets: tickets}
}

func nextNumber(max int64) int64 {
	if max == 0 {
		return firstTicketNumber
	}
	return max + 1
}

// NextTicketNumber previews the number the next submission will take.
func (s *TicketService) NextTicketNumber(ctx context.Context) (int64, error) {
	max, err := s.tickets.MaxTicketNumber(ctx)
	if err != nil {
		return 0, err
	}
	return nextNumber(max), nil
}

// Submit allocates the next sequential number and persists the ticket.
// The max+1 read and the insert are not one atomic step; the unique
// constraint on ticket_number turns a lost race into ErrConflict.
func (s *TicketService) Submit(ctx context.Context, t *models.Ticket) error {
	max, err := s.tickets.MaxTicketNumber(ctx)
	if err != nil {
		return err
	}
	t.TicketNumber = nextNumber(max)
	if t.Status == "" {
		t.Status = models.StatusOpen
	}
	return s.tickets.Create(ctx, t)
}

// Assign joins the given names into one display string and moves the ticket
// to Assigned regardless of its current status. The refreshed row is
// returned; if that read fails the result is synthesized from the input so
// the caller's contract holds.
func (s *TicketService) Assign(ctx context.Context, ticketID int64, names []string) (*models.Ticket, error) {
	cleaned := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			cleaned = append(cleaned, n)
		}
	}
	joined := strings.Join(cleaned, ", ")
	if ticketID == 0 || joined == "" {
		return nil, ErrMissingAssignment
	}

	if err := s.tickets.Assign(ctx, ticketID, joined); err != nil {
		return nil, err
	}

	t, err := s.tickets.Get(ctx, ticketID)
	if err != nil || t == nil {
		// refresh read is non-fatal
		return &models.Ticket{
			ID:         ticketID,
			Status:     models.StatusAssigned,
			AssignedTo: joined,
		}, nil
	}
	return t, nil
}
