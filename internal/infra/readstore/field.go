package readstore

import (
	"context"

	"canchacontrol/internal/infra"
	"canchacontrol/internal/infra/db"
	"canchacontrol/internal/pkg/pgconv"
	"canchacontrol/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const fieldColumns = `id, name, type, hourly_rate_cents, capacity, indoor, created_by, updated_by, created_at, updated_at`

type FieldReadStore struct {
	dbtx db.DBTX
}

func NewFieldReadStore(dbtx db.DBTX) *FieldReadStore {
	return &FieldReadStore{dbtx: dbtx}
}

func (s *FieldReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.FieldView, error) {
	row := s.dbtx.QueryRow(ctx,
		`SELECT `+fieldColumns+` FROM fields WHERE id = $1`, id)

	view, err := scanFieldView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("field not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find field by ID", err)
	}
	return view, nil
}

// List returns all fields ordered by name ascending, optionally filtered by
// exact type label.
func (s *FieldReadStore) List(ctx context.Context, typeFilter *string) ([]*queries.FieldView, error) {
	sql := `SELECT ` + fieldColumns + ` FROM fields`
	args := []any{}
	if typeFilter != nil {
		sql += ` WHERE type = $1`
		args = append(args, *typeFilter)
	}
	sql += ` ORDER BY name ASC`

	rows, err := s.dbtx.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list fields", err)
	}
	defer rows.Close()

	var result []*queries.FieldView
	for rows.Next() {
		view, scanErr := scanFieldView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan field row", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate field rows", err)
	}
	return result, nil
}

func scanFieldView(row pgx.Row) (*queries.FieldView, error) {
	var (
		v                    queries.FieldView
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&v.ID, &v.Name, &v.Type, &v.HourlyRateCents, &v.Capacity, &v.Indoor,
		&v.CreatedBy, &v.UpdatedBy, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}
