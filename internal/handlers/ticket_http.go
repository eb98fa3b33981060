package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Divy2308/Synobiz/internal/models"
	"github.com/Divy2308/Synobiz/internal/repository"
	"github.com/Divy2308/Synobiz/internal/service"
	"github.com/Divy2308/Synobiz/internal/utils"
)

// TicketHTTP wires the ticket workflow endpoints: dashboard, submission,
// editing and the assignment board.
type TicketHTTP struct {
	svc       *service.TicketService
	tickets   repository.TicketRepository
	users     repository.UserRepository
	uploadDir string
	log       zerolog.Logger
}

func NewTicketHTTP(svc *service.TicketService, tickets repository.TicketRepository,
	users repository.UserRepository, uploadDir string, log zerolog.Logger) *TicketHTTP {
	return &TicketHTTP{svc: svc, tickets: tickets, users: users, uploadDir: uploadDir, log: log}
}

// GET /tickets/dashboard
func (h *TicketHTTP) Dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := h.tickets.Dashboard(r.Context())
		if err != nil {
			storeError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"tickets": rows})
	}
}

// GET /tickets/assign_tickets returns the Open and Assigned buckets plus
// the Admin/Consultant directory to pick assignees from.
func (h *TicketHTTP) AssignBoard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		open, err := h.tickets.ListByStatus(r.Context(), models.StatusOpen)
		if err != nil {
			storeError(w, h.log, err)
			return
		}
		assigned, err := h.tickets.ListByStatus(r.Context(), models.StatusAssigned)
		if err != nil {
			storeError(w, h.log, err)
			return
		}
		assignees, err := h.users.Assignees(r.Context())
		if err != nil {
			storeError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{
			"openTickets":     open,
			"assignedTickets": assigned,
			"assignees":       assignees,
		})
	}
}

// GET /tickets/new_task returns the next ticket number and the customer picker.
func (h *TicketHTTP) NewTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		next, err := h.svc.NextTicketNumber(r.Context())
		if err != nil {
			storeError(w, h.log, err)
			return
		}
		customers, err := h.users.Customers(r.Context())
		if err != nil {
			storeError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{
			"nextTicketNo": next,
			"customers":    customers,
		})
	}
}

// ticketFromForm maps the submission/edit form onto a Ticket.
func ticketFromForm(r *http.Request) (*models.Ticket, error) {
	t := &models.Ticket{
		Customer:      strings.TrimSpace(r.PostFormValue("customer")),
		Module:        strings.TrimSpace(r.PostFormValue("module")),
		FormType:      strings.TrimSpace(r.PostFormValue("form_type")),
		Priority:      strings.TrimSpace(r.PostFormValue("priority")),
		Subject:       strings.TrimSpace(r.PostFormValue("subject")),
		TaskGivenBy:   strings.TrimSpace(r.PostFormValue("task_given_by")),
		ApprovedHours: utils.FormPtr(r.PostFormValue("approved_hours")),
		Description:   r.PostFormValue("description"),
	}
	if t.Subject == "" {
		return nil, errors.New("subject is required")
	}
	if s := r.PostFormValue("status"); s != "" {
		status, err := models.ParseTicketStatus(s)
		if err != nil {
			return nil, err
		}
		t.Status = status
	}
	return t, nil
}

// saveAttachment stores a valid upload and returns its path. A missing or
// disallowed file is silently ignored, matching the submission contract.
func (h *TicketHTTP) saveAttachment(r *http.Request) *string {
	file, hdr, err := r.FormFile("attachment")
	if err != nil {
		return nil
	}
	defer file.Close()
	if hdr.Filename == "" || !utils.AllowedUpload(hdr.Filename) {
		return nil
	}
	path, err := utils.SaveUpload(h.uploadDir, hdr.Filename, file)
	if err != nil {
		h.log.Warn().Err(err).Str("file", hdr.Filename).Msg("attachment not stored")
		return nil
	}
	return &path
}

// POST /tickets/submit_ticket (multipart form, optional attachment)
func (h *TicketHTTP) Submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			utils.Error(w, http.StatusBadRequest, "invalid form")
			return
		}
		t, err := ticketFromForm(r)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		t.AttachmentPath = h.saveAttachment(r)

		if err := h.svc.Submit(r.Context(), t); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				utils.Error(w, http.StatusConflict, "ticket number already taken, please retry")
				return
			}
			storeError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusCreated, map[string]any{
			"message": "ticket submitted successfully",
			"ticket":  t,
		})
	}
}

// GET /tickets/edit_ticket/{id}
func (h *TicketHTTP) Edit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			utils.Error(w, http.StatusBadRequest, "invalid ticket id")
			return
		}
		t, err := h.tickets.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				utils.Error(w, http.StatusNotFound, "ticket not found")
				return
			}
			storeError(w, h.log, err)
			return
		}
		customers, err := h.users.Customers(r.Context())
		if err != nil {
			storeError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"ticket": t, "customers": customers})
	}
}

// POST /tickets/update_ticket/{id}. Editable fields are overwritten
// unconditionally; the attachment is replaced only when a new valid file
// arrives.
func (h *TicketHTTP) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			utils.Error(w, http.StatusBadRequest, "invalid ticket id")
			return
		}
		if err := r.ParseMultipartForm(32 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			utils.Error(w, http.StatusBadRequest, "invalid form")
			return
		}
		t, err := ticketFromForm(r)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		t.ID = id

		// the edit form may omit status; keep the stored one rather than
		// writing an empty value outside the closed set
		if t.Status == "" {
			current, err := h.tickets.Get(r.Context(), id)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					utils.Error(w, http.StatusNotFound, "ticket not found")
					return
				}
				storeError(w, h.log, err)
				return
			}
			t.Status = current.Status
		}

		if err := h.tickets.Update(r.Context(), t); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				utils.Error(w, http.StatusNotFound, "ticket not found")
				return
			}
			storeError(w, h.log, err)
			return
		}

		if path := h.saveAttachment(r); path != nil {
			if err := h.tickets.SetAttachment(r.Context(), id, *path); err != nil {
				storeError(w, h.log, err)
				return
			}
		}

		updated, err := h.tickets.Get(r.Context(), id)
		if err != nil {
			storeError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{
			"message": "ticket updated successfully",
			"ticket":  updated,
		})
	}
}

// POST /tickets/perform_assignment
// Body: {"ticket_id": 7, "assignee_names": "Alice"} or a list of names.
func (h *TicketHTTP) PerformAssignment() http.HandlerFunc {
	type inDTO struct {
		TicketID      int64           `json:"ticket_id"`
		AssigneeNames json.RawMessage `json:"assignee_names"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
			utils.JSON(w, http.StatusBadRequest, map[string]any{
				"success": false, "message": "request must be JSON",
			})
			return
		}
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.JSON(w, http.StatusBadRequest, map[string]any{
				"success": false, "message": "invalid json",
			})
			return
		}

		// assignee_names may be a single string or a list
		var names []string
		var one string
		if err := json.Unmarshal(in.AssigneeNames, &names); err != nil {
			if err := json.Unmarshal(in.AssigneeNames, &one); err == nil && one != "" {
				names = []string{one}
			}
		}

		t, err := h.svc.Assign(r.Context(), in.TicketID, names)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrMissingAssignment):
				utils.JSON(w, http.StatusBadRequest, map[string]any{
					"success": false, "message": "missing ticket ID or assignee name",
				})
			case errors.Is(err, repository.ErrNotFound):
				utils.JSON(w, http.StatusNotFound, map[string]any{
					"success": false, "message": "ticket not found or no changes made",
				})
			default:
				h.log.Error().Err(err).Int64("ticket_id", in.TicketID).Msg("assignment failed")
				utils.JSON(w, http.StatusInternalServerError, map[string]any{
					"success": false, "message": "an internal error occurred",
				})
			}
			return
		}

		utils.JSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "ticket assigned to " + t.AssignedTo + " successfully",
			"ticket":  t,
		})
	}
}
