package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Divy2308/Synobiz/internal/service"
	"github.com/Divy2308/Synobiz/internal/utils"
)

type AttendanceHTTP struct {
	svc *service.AttendanceService
	log zerolog.Logger
}

func NewAttendanceHTTP(s *service.AttendanceService, log zerolog.Logger) *AttendanceHTTP {
	return &AttendanceHTTP{svc: s, log: log}
}

// GET /attendance returns today's record plus the recent history.
func (h *AttendanceHTTP) Summary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, _ := utils.GetPrincipal(r.Context())
		limit := utils.QueryInt(r.URL.Query(), "limit", 7)
		today, recent, err := h.svc.Today(r.Context(), p.ID, time.Now(), limit)
		if err != nil {
			storeError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{
			"user":       p,
			"now":        time.Now(),
			"attendance": today,
			"records":    recent,
		})
	}
}

// POST /attendance/check_in
func (h *AttendanceHTTP) CheckIn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, _ := utils.GetPrincipal(r.Context())
		at, err := h.svc.CheckIn(r.Context(), p.ID, time.Now())
		if err != nil {
			if errors.Is(err, service.ErrAlreadyCheckedIn) {
				utils.JSON(w, http.StatusBadRequest, map[string]any{
					"success": false, "message": "Already checked in today.",
				})
				return
			}
			storeError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{
			"success": true, "check_in": at.Format("15:04:05"),
		})
	}
}

// POST /attendance/check_out
func (h *AttendanceHTTP) CheckOut() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, _ := utils.GetPrincipal(r.Context())
		at, err := h.svc.CheckOut(r.Context(), p.ID, time.Now())
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotCheckedIn):
				utils.JSON(w, http.StatusBadRequest, map[string]any{
					"success": false, "message": "Check in first.",
				})
			case errors.Is(err, service.ErrAlreadyCheckedOut):
				utils.JSON(w, http.StatusBadRequest, map[string]any{
					"success": false, "message": "Already checked out today.",
				})
			default:
				storeError(w, h.log, err)
			}
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{
			"success": true, "check_out": at.Format("15:04:05"),
		})
	}
}
