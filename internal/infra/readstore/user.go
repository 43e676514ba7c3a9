package readstore

import (
	"context"

	"canchacontrol/internal/infra"
	"canchacontrol/internal/infra/db"
	"canchacontrol/internal/pkg/pgconv"
	"canchacontrol/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	dbtx db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{dbtx: dbtx}
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserCredentialView, error) {
	row := s.dbtx.QueryRow(ctx,
		`SELECT id, email, password_hash, role, is_active, last_login
		   FROM users WHERE email = $1`, email)

	var (
		cred      queries.UserCredentialView
		lastLogin pgtype.Timestamptz
	)
	err := row.Scan(
		&cred.User.ID, &cred.User.Email, &cred.PasswordHash,
		&cred.User.Role, &cred.User.IsActive, &lastLogin,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	cred.User.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &cred, nil
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row := s.dbtx.QueryRow(ctx,
		`SELECT id, email, role, is_active, last_login
		   FROM users WHERE id = $1`, id)

	var (
		v         queries.AuthorizedUserView
		lastLogin pgtype.Timestamptz
	)
	err := row.Scan(&v.ID, &v.Email, &v.Role, &v.IsActive, &lastLogin)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	v.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &v, nil
}
