package handlers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Divy2308/Synobiz/internal/models"
	"github.com/Divy2308/Synobiz/internal/repository"
	"github.com/Divy2308/Synobiz/internal/utils"
)

type HolidayHTTP struct {
	holidays repository.HolidayRepository
	log      zerolog.Logger
}

func NewHolidayHTTP(holidays repository.HolidayRepository, log zerolog.Logger) *HolidayHTTP {
	return &HolidayHTTP{holidays: holidays, log: log}
}

// GET /holidays/list?filter_type=&start_date=&end_date=
func (h *HolidayHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filterType := q.Get("filter_type")
		if filterType == "" {
			filterType = repository.FilterAll
		}
		f := repository.NewDateFilter(filterType, q.Get("start_date"), q.Get("end_date"), time.Now())

		items, err := h.holidays.List(r.Context(), f)
		if err != nil {
			storeError(w, h.log, err)
			return
		}
		resp := map[string]any{
			"holidays":   items,
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

func holidayFromForm(r *http.Request) (*models.Holiday, string) {
	country := r.PostFormValue("country")
	name := r.PostFormValue("holiday_name")
	dateStr := r.PostFormValue("holiday_date")
	if country == "" || name == "" || dateStr == "" {
		return nil, "country, holiday_name and holiday_date are required"
	}
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, "holiday_date must be YYYY-MM-DD"
	}
	return &models.Holiday{Country: country, Name: name, HolidayDate: d}, ""
}

// POST /holidays/add
func (h *HolidayHTTP) Add() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hol, msg := holidayFromForm(r)
		if msg != "" {
			utils.Error(w, http.StatusBadRequest, msg)
			return
		}
		if err := h.holidays.Add(r.Context(), hol); err != nil {
			storeError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusCreated, map[string]any{
			"message": "holiday added successfully",
			"holiday": hol,
		})
	}
}

// POST /holidays/update/{id}
func (h *HolidayHTTP) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			utils.Error(w, http.StatusBadRequest, "invalid holiday id")
			return
		}
		hol, msg := holidayFromForm(r)
		if msg != "" {
			utils.Error(w, http.StatusBadRequest, msg)
			return
		}
		if err := h.holidays.Update(r.Context(), id, hol); err != nil {
			storeError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]string{"message": "holiday updated successfully"})
	}
}

// POST /holidays/delete/{id}
func (h *HolidayHTTP) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			utils.Error(w, http.StatusBadRequest, "invalid holiday id")
			return
		}
		if err := h.holidays.Delete(r.Context(), id); err != nil {
			storeError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]string{"message": "holiday deleted successfully"})
	}
}
