package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Divy2308/Synobiz/internal/models"
	"github.com/Divy2308/Synobiz/internal/repository"
	"github.com/Divy2308/Synobiz/internal/utils"
)

type LeaveHTTP struct {
	leaves repository.LeaveRepository
	log    zerolog.Logger
}

func NewLeaveHTTP(leaves repository.LeaveRepository, log zerolog.Logger) *LeaveHTTP {
	return &LeaveHTTP{leaves: leaves, log: log}
}

// GET /leaves/list?filter_type=&start_date=&end_date=
func (h *LeaveHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filterType := q.Get("filter_type")
		if filterType == "" {
			filterType = repository.FilterAll
		}
		f := repository.NewDateFilter(filterType, q.Get("start_date"), q.Get("end_date"), time.Now())

		items, err := h.leaves.List(r.Context(), f)
		if err != nil {
			storeError(w, h.log, err)
			return
		}
		resp := map[string]any{
			"leaves":     items,
			"filterType": filterType,
			"startDate":  q.Get("start_date"),
			"endDate":    q.Get("end_date"),
		}
		if f.Warning != "" {
			resp["warning"] = f.Warning
		}
		utils.JSON(w, http.StatusOK, resp)
	}
}

func leaveFromForm(r *http.Request) (*models.LeaveRequest, string) {
	name := r.PostFormValue("consultant_name")
	dateStr := r.PostFormValue("leave_date")
	typeStr := r.PostFormValue("leave_type")
	if name == "" || dateStr == "" || typeStr == "" {
		return nil, "consultant_name, leave_date and leave_type are required"
	}
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, "leave_date must be YYYY-MM-DD"
	}
	lt, err := models.ParseLeaveType(typeStr)
	if err != nil {
		return nil, err.Error()
	}
	return &models.LeaveRequest{
		ConsultantName: name,
		LeaveDate:      d,
		LeaveType:      lt,
		Remarks:        r.PostFormValue("remarks"),
	}, ""
}

// POST /leaves/add
func (h *LeaveHTTP) Add() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, msg := leaveFromForm(r)
		if msg != "" {
			utils.Error(w, http.StatusBadRequest, msg)
			return
		}
		if err := h.leaves.Add(r.Context(), l); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				utils.Error(w, http.StatusConflict, "a leave request for this consultant and date already exists")
				return
			}
			storeError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusCreated, map[string]any{
			"message": "leave request added successfully",
			"leave":   l,
		})
	}
}

// POST /leaves/update/{id}
func (h *LeaveHTTP) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			utils.Error(w, http.StatusBadRequest, "invalid leave id")
			return
		}
		l, msg := leaveFromForm(r)
		if msg != "" {
			utils.Error(w, http.StatusBadRequest, msg)
			return
		}
		if err := h.leaves.Update(r.Context(), id, l); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				utils.Error(w, http.StatusConflict, "a leave request for this consultant and date already exists")
				return
			}
			storeError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]string{"message": "leave request updated successfully"})
	}
}

// POST /leaves/delete/{id}
func (h *LeaveHTTP) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			utils.Error(w, http.StatusBadRequest, "invalid leave id")
			return
		}
		if err := h.leaves.Delete(r.Context(), id); err != nil {
			storeError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]string{"message": "leave request deleted successfully"})
	}
}
