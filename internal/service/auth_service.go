package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Divy2308/Synobiz/internal/models"
	"github.com/Divy2308/Synobiz/internal/repository"
	"github.com/Divy2308/Synobiz/internal/utils"
)

// ErrInvalidCredentials covers both unknown user and wrong password so the
// response never reveals which check failed.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPasswordMismatch   = errors.New("new passwords do not match")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

type AuthService struct {
	users         repository.UserRepository
	sessionSecret string
	sessionTTL    time.Duration
}

func NewAuthService(users repository.UserRepository, sessionSecret string, sessionTTL time.Duration) *AuthService {
	return &AuthService{users: users, sessionSecret: sessionSecret, sessionTTL: sessionTTL}
}

func (a *AuthService) TTL() time.Duration { return a.sessionTTL }

// Login authenticates by exact user_name match and bcrypt comparison, then
// issues the session token for the resulting principal.
func (a *AuthService) Login(ctx context.Context, userName, password string) (string, models.Principal, error) {
	u, hash, err := a.users.GetByUserName(ctx, strings.TrimSpace(userName))
	if err != nil {
		return "", models.Principal{}, err
	}
	if u == nil {
		return "", models.Principal{}, ErrInvalidCredentials
	}
	if !utils.CheckPassword(hash, password) {
		return "", models.Principal{}, ErrInvalidCredentials
	}

	p := models.Principal{ID: u.ID, UserName: u.UserName, Role: u.UserType, Name: u.Name}
	tok, err := utils.SignJWT(a.sessionSecret, p, a.sessionTTL)
	if err != nil {
		return "", models.Principal{}, err
	}
	return tok, p, nil
}

// ChangePassword re-hashes only after the caller proves the current
// password and both new entries agree.
func (a *AuthService) ChangePassword(ctx context.Context, userID int64, current, newPW, confirm string) error {
	if newPW == "" || newPW != confirm {
		return ErrPasswordMismatch
	}
	hash, err := a.users.PasswordHash(ctx, userID)
	if err != nil {
		return err
	}
	if !utils.CheckPassword(hash, current) {
		return ErrWrongPassword
	}
	newHash, err := utils.HashPassword(newPW)
	if err != nil {
		return err
	}
	return a.users.UpdatePasswordHash(ctx, userID, newHash)
}
