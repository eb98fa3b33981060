package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Divy2308/Synobiz/internal/models"
	"github.com/Divy2308/Synobiz/internal/repository"
	"github.com/Divy2308/Synobiz/internal/utils"
)

type UserHTTP struct {
	users repository.UserRepository
	log   zerolog.Logger
}

func NewUserHTTP(users repository.UserRepository, log zerolog.Logger) *UserHTTP {
	return &UserHTTP{users: users, log: log}
}

// userFromForm maps the HR form onto a User. Blank optional fields become
// nil so an update clears them (last write wins, blank clears).
func userFromForm(r *http.Request) (*models.User, error) {
	role, err := models.ParseRole(r.PostFormValue("user_type"))
	if err != nil {
		return nil, err
	}
	u := &models.User{
		UserType:                role,
		UserName:                strings.TrimSpace(r.PostFormValue("user_name")),
		Name:                    strings.TrimSpace(r.PostFormValue("name")),
		Mobile:                  utils.FormPtr(r.PostFormValue("mobile")),
		OfficeEmail:             strings.TrimSpace(r.PostFormValue("office_email")),
		Position:                utils.FormPtr(r.PostFormValue("position")),
		Status:                  utils.FormPtr(r.PostFormValue("status")),
		ConsultantType:          utils.FormPtr(r.PostFormValue("consultant_type")),
		ReportingManager:        utils.FormPtr(r.PostFormValue("reporting_manager")),
		AlternateMobile:         utils.FormPtr(r.PostFormValue("alternate_mobile")),
		WorksnapCredentials:     utils.FormPtr(r.PostFormValue("worksnap_credentials")),
		TimesheetNotification:   utils.FormPtr(r.PostFormValue("timesheet_notification")),
		SAPServerCredentials:    utils.FormPtr(r.PostFormValue("sap_server_credentials")),
		AllowBackdatedTimesheet: utils.FormPtr(r.PostFormValue("allow_backdated_timesheet")),
	}
	if u.UserName == "" || u.Name == "" || u.OfficeEmail == "" {
		return nil, errors.New("user_name, name and office_email are required")
	}
	if u.JoiningDate, err = utils.FormDate(r.PostFormValue("joining_date")); err != nil {
		return nil, errors.New("joining_date must be YYYY-MM-DD")
	}
	if u.DateOfBirth, err = utils.FormDate(r.PostFormValue("date_of_birth")); err != nil {
		return nil, errors.New("date_of_birth must be YYYY-MM-DD")
	}
	if u.AnniversaryDate, err = utils.FormDate(r.PostFormValue("anniversary_date")); err != nil {
		return nil, errors.New("anniversary_date must be YYYY-MM-DD")
	}
	return u, nil
}

// GET / returns the data behind the user creation form, the reporting-line choices.
func (h *UserHTTP) NewUserForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		managers, err := h.users.Managers(r.Context())
		if err != nil {
			storeError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"managers": managers})
	}
}

// GET /users/
func (h *UserHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := h.users.List(r.Context())
		if err != nil {
			storeError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"users": users})
	}
}

// POST /submit_user
func (h *UserHTTP) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := userFromForm(r)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		password := r.PostFormValue("password")
		if password == "" {
			utils.Error(w, http.StatusBadRequest, "password is required")
			return
		}
		hash, err := utils.HashPassword(password)
		if err != nil {
			h.log.Error().Err(err).Msg("hash password")
			utils.Error(w, http.StatusInternalServerError, "an internal error occurred")
			return
		}

		id, err := h.users.Create(r.Context(), u, hash)
		if err != nil {
			if errors.Is(err, repository.ErrConflict) {
				utils.Error(w, http.StatusConflict, "failed to add user: user name or office email already exists")
				return
			}
			storeError(w, h.log, err)
			return
		}
		u.ID = id
		utils.JSON(w, http.StatusCreated, map[string]any{
			"message": "user '" + u.Name + "' was added successfully",
			"user":    u,
		})
	}
}

// GET /edit_user/{id}
func (h *UserHTTP) Edit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			utils.Error(w, http.StatusBadRequest, "invalid user id")
			return
		}
		u, err := h.users.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				utils.Error(w, http.StatusNotFound, "user not found")
				return
			}
			storeError(w, h.log, err)
			return
		}
		managers, err := h.users.Managers(r.Context())
		if err != nil {
			storeError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"user": u, "managers": managers})
	}
}

// POST /update_user/{id}
func (h *UserHTTP) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			utils.Error(w, http.StatusBadRequest, "invalid user id")
			return
		}
		u, err := userFromForm(r)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		// password is rewritten only when a new value was supplied
		var hash string
		if pw := r.PostFormValue("password"); pw != "" {
			if hash, err = utils.HashPassword(pw); err != nil {
				h.log.Error().Err(err).Msg("hash password")
				utils.Error(w, http.StatusInternalServerError, "an internal error occurred")
				return
			}
		}

		if err := h.users.Update(r.Context(), id, u, hash); err != nil {
			switch {
			case errors.Is(err, repository.ErrConflict):
				utils.Error(w, http.StatusConflict, "failed to update user: user name or office email already exists for another user")
			case errors.Is(err, repository.ErrNotFound):
				utils.Error(w, http.StatusNotFound, "user not found")
			default:
				storeError(w, h.log, err)
			}
			return
		}
		utils.JSON(w, http.StatusOK, map[string]string{"message": "user updated successfully"})
	}
}

// DELETE /delete_user/{id}
func (h *UserHTTP) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			utils.Error(w, http.StatusBadRequest, "invalid user id")
			return
		}
		if err := h.users.Delete(r.Context(), id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				utils.Error(w, http.StatusNotFound, "user not found")
				return
			}
			storeError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]string{"message": "user deleted successfully"})
	}
}
