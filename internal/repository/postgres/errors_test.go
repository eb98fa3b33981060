package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Divy2308/Synobiz/internal/repository"
)

func TestMapErr(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", pgx.ErrNoRows, repository.ErrNotFound},
		{"wrapped no rows", fmt.Errorf("get: %w", pgx.ErrNoRows), repository.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "users_user_name_key"}, repository.ErrConflict},
		{"connection failure", &pgconn.PgError{Code: "08006"}, repository.ErrUnavailable},
	}
	for _, tc := range cases {
		got := mapErr(tc.in)
		if tc.want == nil {
			if got != nil {
				t.Errorf("%s: got %v, want nil", tc.name, got)
			}
			continue
		}
		if !errors.Is(got, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestMapErrPassesThroughUnknown(t *testing.T) {
	t.Parallel()

	in := errors.New("some driver fault")
	if got := mapErr(in); !errors.Is(got, in) {
		t.Errorf("got %v, want passthrough", got)
	}
	// An unrelated SQLSTATE must not be shoehorned into the taxonomy.
	pgErr := &pgconn.PgError{Code: "42601"} // syntax_error
	got := mapErr(pgErr)
	if errors.Is(got, repository.ErrConflict) || errors.Is(got, repository.ErrUnavailable) {
		t.Errorf("syntax error mapped to taxonomy: %v", got)
	}
}
