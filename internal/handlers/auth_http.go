package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Divy2308/Synobiz/internal/service"
	"github.com/Divy2308/Synobiz/internal/utils"
)

type AuthHTTP struct {
	svc *service.AuthService
	log zerolog.Logger
}

func NewAuthHTTP(s *service.AuthService, log zerolog.Logger) *AuthHTTP {
	return &AuthHTTP{svc: s, log: log}
}

// credentials reads the login pair from a JSON body or a classic form post.
func credentials(r *http.Request) (userName, password string) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var in struct {
			UserName string `json:"user_name"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		return in.UserName, in.Password
	}
	return r.PostFormValue("user_name"), r.PostFormValue("password")
}

// GET /login
func (h *AuthHTTP) LoginForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.JSON(w, http.StatusOK, map[string]string{
			"message": "POST user_name and password to sign in",
		})
	}
}

// POST /login
func (h *AuthHTTP) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userName, password := credentials(r)
		if userName == "" || password == "" {
			utils.Error(w, http.StatusBadRequest, "user_name and password are required")
			return
		}

		token, p, err := h.svc.Login(r.Context(), userName, password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				utils.Error(w, http.StatusUnauthorized, "invalid username or password")
				return
			}
			storeError(w, h.log, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     "session",
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Expires:  time.Now().Add(h.svc.TTL()),
		})
		utils.JSON(w, http.StatusOK, p)
	}
}

// GET /logout
func (h *AuthHTTP) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     "session",
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
			Expires:  time.Unix(0, 0),
		})
		utils.JSON(w, http.StatusOK, map[string]string{"message": "logged out successfully"})
	}
}

// GET /auth/me
func (h *AuthHTTP) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := utils.GetPrincipal(r.Context())
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		utils.JSON(w, http.StatusOK, p)
	}
}

// POST /change_password
func (h *AuthHTTP) ChangePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := utils.GetPrincipal(r.Context())
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		var current, newPW, confirm string
		if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
			var in struct {
				Current string `json:"current_password"`
				New     string `json:"new_password"`
				Confirm string `json:"confirm_password"`
			}
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				utils.Error(w, http.StatusBadRequest, "invalid json")
				return
			}
			current, newPW, confirm = in.Current, in.New, in.Confirm
		} else {
			current = r.PostFormValue("current_password")
			newPW = r.PostFormValue("new_password")
			confirm = r.PostFormValue("confirm_password")
		}

		err := h.svc.ChangePassword(r.Context(), p.ID, current, newPW, confirm)
		switch {
		case err == nil:
			utils.JSON(w, http.StatusOK, map[string]string{"message": "password changed successfully"})
		case errors.Is(err, service.ErrPasswordMismatch):
			utils.Error(w, http.StatusBadRequest, "new passwords do not match")
		case errors.Is(err, service.ErrWrongPassword):
			utils.Error(w, http.StatusBadRequest, "current password is incorrect")
		default:
			storeError(w, h.log, err)
		}
	}
}
