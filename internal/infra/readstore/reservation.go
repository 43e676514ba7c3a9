package readstore

import (
	"context"
	"fmt"
	"strings"

	"canchacontrol/internal/domain/reservation"
	"canchacontrol/internal/infra"
	"canchacontrol/internal/infra/db"
	"canchacontrol/internal/pkg/pgconv"
	"canchacontrol/internal/usecase/queries"
	"canchacontrol/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `r.id, r.field_id, f.name, r.client_name, r.client_phone, r.client_email,
	r.reservation_date, r.start_min, r.end_min, r.total_price_cents, r.payment_status, r.note,
	r.created_by, r.created_at, r.updated_at`

const reservationFrom = ` FROM reservations r LEFT JOIN fields f ON f.id = r.field_id`

type ReservationReadStore struct {
	dbtx db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{dbtx: dbtx}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := s.dbtx.QueryRow(ctx,
		`SELECT `+reservationColumns+reservationFrom+` WHERE r.id = $1`, id)

	view, err := scanReservationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

// List applies the dashboard filters. Default order is created_at desc;
// SameDayOrder switches to (date, start) ascending for schedule views.
func (s *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.FieldID != nil {
		conds = append(conds, "r.field_id = "+arg(*filter.FieldID))
	}
	if filter.Date != nil {
		conds = append(conds, "r.reservation_date = "+arg(*filter.Date))
	}
	if filter.From != nil {
		conds = append(conds, "r.reservation_date >= "+arg(*filter.From))
	}
	if filter.To != nil {
		conds = append(conds, "r.reservation_date <= "+arg(*filter.To))
	}
	if filter.PaymentStatus != nil {
		conds = append(conds, "r.payment_status = "+arg(*filter.PaymentStatus))
	}

	sql := `SELECT ` + reservationColumns + reservationFrom
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	if filter.SameDayOrder {
		sql += " ORDER BY r.reservation_date ASC, r.start_min ASC"
	} else {
		sql += " ORDER BY r.created_at DESC"
	}
	if filter.Limit > 0 {
		sql += " LIMIT " + arg(filter.Limit)
	}

	rows, err := s.dbtx.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationView
	for rows.Next() {
		view, scanErr := scanReservationView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return result, nil
}

// OccupiedSlots returns the booked intervals of all non-cancelled
// reservations for the field/date, ordered by start time ascending.
func (s *ReservationReadStore) OccupiedSlots(ctx context.Context, fieldID uuid.UUID, date reservation.Date) ([]reservation.BookedSlot, error) {
	rows, err := s.dbtx.Query(ctx,
		`SELECT id, client_name, start_min, end_min
		   FROM reservations
		  WHERE field_id = $1 AND reservation_date = $2 AND payment_status <> $3
		  ORDER BY start_min ASC`,
		fieldID, date.String(), reservation.StatusCancelled.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query occupied slots", err)
	}
	defer rows.Close()

	var slots []reservation.BookedSlot
	for rows.Next() {
		var (
			id                 uuid.UUID
			clientName         string
			startMin, endMin   int32
		)
		if scanErr := rows.Scan(&id, &clientName, &startMin, &endMin); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan occupied slot", scanErr)
		}
		slot, rangeErr := minutesToRange(int(startMin), int(endMin))
		if rangeErr != nil {
			return nil, infra.WrapRepoErr("stored slot is malformed", rangeErr)
		}
		slots = append(slots, reservation.BookedSlot{
			ReservationID: id,
			ClientName:    clientName,
			Range:         slot,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate occupied slots", err)
	}
	return slots, nil
}

// FindConflicts returns the non-cancelled reservations on (fieldID, date)
// overlapping [slot.Start, slot.End), excluding excludeID. Overlap predicate
// matches the storage exclusion constraint: start < otherEnd AND otherStart < end.
func (s *ReservationReadStore) FindConflicts(ctx context.Context, fieldID uuid.UUID, date reservation.Date, slot reservation.TimeRange, excludeID uuid.UUID) ([]shared.ConflictingSlot, error) {
	sql := `SELECT id, client_name, reservation_date, start_min, end_min
		  FROM reservations
		 WHERE field_id = $1 AND reservation_date = $2 AND payment_status <> $3
		   AND start_min < $4 AND $5 < end_min`
	args := []any{fieldID, date.String(), reservation.StatusCancelled.String(), slot.End().Minutes(), slot.Start().Minutes()}
	if excludeID != uuid.Nil {
		sql += ` AND id <> $6`
		args = append(args, excludeID)
	}
	sql += ` ORDER BY start_min ASC`

	rows, err := s.dbtx.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query conflicting reservations", err)
	}
	defer rows.Close()

	var hits []shared.ConflictingSlot
	for rows.Next() {
		var (
			id               uuid.UUID
			clientName       string
			resDate          pgtype.Date
			startMin, endMin int32
		)
		if scanErr := rows.Scan(&id, &clientName, &resDate, &startMin, &endMin); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan conflicting reservation", scanErr)
		}
		hits = append(hits, shared.ConflictingSlot{
			ReservationID: id,
			ClientName:    clientName,
			Date:          pgconv.DateFromPgtype(resDate).Format("2006-01-02"),
			StartTime:     minutesLabel(int(startMin)),
			EndTime:       minutesLabel(int(endMin)),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate conflicting reservations", err)
	}
	return hits, nil
}

func (s *ReservationReadStore) FindSnapshot(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	row := s.dbtx.QueryRow(ctx,
		`SELECT id, field_id, client_name, client_phone, client_email, reservation_date,
		        start_min, end_min, total_price_cents, payment_status, COALESCE(note, ''),
		        created_by, created_at, updated_at
		   FROM reservations WHERE id = $1`, id)

	var (
		snap                 shared.ReservationSnapshot
		fieldID              pgtype.UUID
		phone, email         pgtype.Text
		resDate              pgtype.Date
		startMin, endMin     int32
		status               string
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&snap.ID, &fieldID, &snap.ClientName, &phone, &email, &resDate,
		&startMin, &endMin, &snap.PriceCents, &status, &snap.Note,
		&snap.CreatedBy, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load reservation snapshot", err)
	}

	slot, rangeErr := minutesToRange(int(startMin), int(endMin))
	if rangeErr != nil {
		return nil, infra.WrapRepoErr("stored slot is malformed", rangeErr)
	}
	snap.FieldID = pgconv.UUIDPtrFromPgtype(fieldID)
	snap.ClientPhone = pgconv.StringPtrFromPgtype(phone)
	snap.ClientEmail = pgconv.StringPtrFromPgtype(email)
	snap.Date = reservation.DateOf(pgconv.DateFromPgtype(resDate))
	snap.Slot = slot
	snap.PaymentStatus = reservation.PaymentStatus(status)
	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snap.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &snap, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var (
		v                    queries.ReservationView
		fieldID              pgtype.UUID
		fieldName            pgtype.Text
		phone, email, note   pgtype.Text
		resDate              pgtype.Date
		startMin, endMin     int32
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&v.ID, &fieldID, &fieldName, &v.ClientName, &phone, &email,
		&resDate, &startMin, &endMin, &v.TotalPriceCents, &v.PaymentStatus, &note,
		&v.CreatedBy, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.FieldID = pgconv.UUIDPtrFromPgtype(fieldID)
	v.FieldName = pgconv.StringPtrFromPgtype(fieldName)
	v.ClientPhone = pgconv.StringPtrFromPgtype(phone)
	v.ClientEmail = pgconv.StringPtrFromPgtype(email)
	v.Date = pgconv.DateFromPgtype(resDate).Format("2006-01-02")
	v.StartTime = minutesLabel(int(startMin))
	v.EndTime = minutesLabel(int(endMin))
	v.Note = pgconv.StringPtrFromPgtype(note)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}

func minutesToRange(startMin, endMin int) (reservation.TimeRange, error) {
	start, err := reservation.TimeOfDayFromMinutes(startMin)
	if err != nil {
		return reservation.TimeRange{}, err
	}
	end, err := reservation.TimeOfDayFromMinutes(endMin)
	if err != nil {
		return reservation.TimeRange{}, err
	}
	return reservation.NewTimeRange(start, end)
}

func minutesLabel(minutes int) string {
	t, err := reservation.TimeOfDayFromMinutes(minutes)
	if err != nil {
		return ""
	}
	return t.String()
}
