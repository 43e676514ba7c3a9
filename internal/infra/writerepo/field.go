package writerepo

import (
	"context"

	"canchacontrol/internal/domain/field"
	"canchacontrol/internal/infra"
	"canchacontrol/internal/infra/db"
	"canchacontrol/internal/usecase/shared"

	"github.com/google/uuid"
)

type FieldRepository struct{}

func NewFieldRepository() shared.FieldRepository {
	return &FieldRepository{}
}

func (r *FieldRepository) Create(ctx context.Context, tx db.DBTX, f *field.Field) (uuid.UUID, error) {
	_, err := tx.Exec(ctx,
		`INSERT INTO fields (id, name, type, hourly_rate_cents, capacity, indoor,
		                     created_by, updated_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		f.ID(), f.Name(), f.Type(), f.HourlyRateCents(), f.Capacity(), f.Indoor(),
		f.CreatedBy(), f.UpdatedBy(), f.CreatedAt(), f.UpdatedAt(),
	)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create field", err)
	}
	return f.ID(), nil
}

func (r *FieldRepository) Update(ctx context.Context, tx db.DBTX, f *field.Field) error {
	tag, err := tx.Exec(ctx,
		`UPDATE fields
		    SET name = $2, type = $3, hourly_rate_cents = $4, capacity = $5,
		        indoor = $6, updated_by = $7, updated_at = $8
		  WHERE id = $1`,
		f.ID(), f.Name(), f.Type(), f.HourlyRateCents(), f.Capacity(),
		f.Indoor(), f.UpdatedBy(), f.UpdatedAt(),
	)
	if err != nil {
		return wrapWriteErr("failed to update field", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("field not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete removes the field. Reservations referencing it keep their rows with
// field_id set to NULL by the schema's ON DELETE SET NULL.
func (r *FieldRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM fields WHERE id = $1`, id)
	if err != nil {
		return wrapWriteErr("failed to delete field", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("field not found", nil, infra.KindNotFound)
	}
	return nil
}
