package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Divy2308/Synobiz/internal/models"
	"github.com/Divy2308/Synobiz/internal/repository"
	"github.com/Divy2308/Synobiz/internal/utils"
)

type fakeUsers struct {
	repository.UserRepository
	user *models.User
	hash string
}

func (f *fakeUsers) GetByUserName(_ context.Context, userName string) (*models.User, string, error) {
	if f.user != nil && f.user.UserName == userName {
		return f.user, f.hash, nil
	}
	return nil, "", nil
}

func (f *fakeUsers) PasswordHash(_ context.Context, id int64) (string, error) {
	if f.user != nil && f.user.ID == id {
		return f.hash, nil
	}
	return "", repository.ErrNotFound
}

func (f *fakeUsers) UpdatePasswordHash(_ context.Context, id int64, hash string) error {
	if f.user == nil || f.user.ID != id {
		return repository.ErrNotFound
	}
	f.hash = hash
	return nil
}

func newAuthFixture(t *testing.T) (*AuthService, *fakeUsers) {
	t.Helper()
	hash, err := utils.HashPassword("s3cret")
	if err != nil {
		t.Fatal(err)
	}
	users := &fakeUsers{
		user: &models.User{ID: 7, UserName: "divya", UserType: models.RoleConsultant, Name: "Divya"},
		hash: hash,
	}
	return NewAuthService(users, "test-secret", time.Hour), users
}

func TestLoginReturnsPrincipalWithStoredRole(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthFixture(t)
	tok, p, err := svc.Login(context.Background(), "divya", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tok == "" {
		t.Error("expected a session token")
	}
	if p.ID != 7 || p.Role != models.RoleConsultant || p.UserName != "divya" || p.Name != "Divya" {
		t.Errorf("principal = %+v", p)
	}

	claims, err := utils.ParseJWT("test-secret", tok)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != 7 || claims.Role != string(models.RoleConsultant) {
		t.Errorf("claims = %+v", claims)
	}
}

func TestLoginFailureIsGeneric(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthFixture(t)

	// Wrong password and unknown user must be indistinguishable.
	_, _, errWrongPW := svc.Login(context.Background(), "divya", "nope")
	_, _, errNoUser := svc.Login(context.Background(), "ghost", "s3cret")

	if !errors.Is(errWrongPW, ErrInvalidCredentials) {
		t.Errorf("wrong password: %v", errWrongPW)
	}
	if !errors.Is(errNoUser, ErrInvalidCredentials) {
		t.Errorf("unknown user: %v", errNoUser)
	}
	if errWrongPW.Error() != errNoUser.Error() {
		t.Error("failure messages must not reveal which check failed")
	}
}

func TestChangePassword(t *testing.T) {
	t.Parallel()

	svc, users := newAuthFixture(t)
	ctx := context.Background()

	if err := svc.ChangePassword(ctx, 7, "s3cret", "newpw", "different"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("mismatched confirmation: %v", err)
	}
	if err := svc.ChangePassword(ctx, 7, "wrong", "newpw", "newpw"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("wrong current password: %v", err)
	}
	if err := svc.ChangePassword(ctx, 7, "s3cret", "newpw", "newpw"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if !utils.CheckPassword(users.hash, "newpw") {
		t.Error("stored hash was not rewritten")
	}
}
