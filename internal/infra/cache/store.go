package cache

import (
	"context"
	"log/slog"

	"canchacontrol/internal/infra/db"
	"canchacontrol/internal/infra/readstore"
	"canchacontrol/internal/pkg/clock"
	"canchacontrol/internal/pkg/config"
	"canchacontrol/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	StrategyOptimistic = "optimistic"
	StrategyRefetch    = "refetch"
)

// DashboardStore caches the field and reservation lists for dashboard reads.
// It is display-only: conflict checks and command reads go to the
// authoritative store, never here. After a write it converges per the
// configured strategy, and an optimistic patch that cannot be applied falls
// back to invalidation so a later read refetches.
type DashboardStore struct {
	strategy     string
	fields       *snapshot[queries.FieldView]
	reservations *snapshot[queries.ReservationView]
}

func NewDashboardStore(dbtx db.DBTX, cfg config.CacheConfig, clk clock.Clock) *DashboardStore {
	fieldStore := readstore.NewFieldReadStore(dbtx)
	reservationStore := readstore.NewReservationReadStore(dbtx)

	strategy := cfg.Strategy
	if strategy != StrategyOptimistic && strategy != StrategyRefetch {
		slog.Warn("unknown cache strategy, using refetch", "strategy", strategy)
		strategy = StrategyRefetch
	}

	return &DashboardStore{
		strategy: strategy,
		fields: newSnapshot(
			func(ctx context.Context) ([]queries.FieldView, error) {
				views, err := fieldStore.List(ctx, nil)
				if err != nil {
					return nil, err
				}
				return deref(views), nil
			},
			func(v queries.FieldView) uuid.UUID { return v.ID },
			func(a, b queries.FieldView) bool { return a.Name < b.Name },
			cfg.TTL, clk,
		),
		reservations: newSnapshot(
			func(ctx context.Context) ([]queries.ReservationView, error) {
				views, err := reservationStore.List(ctx, queries.ReservationFilter{})
				if err != nil {
					return nil, err
				}
				return deref(views), nil
			},
			func(v queries.ReservationView) uuid.UUID { return v.ID },
			func(a, b queries.ReservationView) bool { return a.CreatedAt.After(b.CreatedAt) },
			cfg.TTL, clk,
		),
	}
}

func (s *DashboardStore) ReadFields(ctx context.Context) ([]queries.FieldView, error) {
	return s.fields.Read(ctx)
}

func (s *DashboardStore) ReadReservations(ctx context.Context) ([]queries.ReservationView, error) {
	return s.reservations.Read(ctx)
}

func (s *DashboardStore) ApplyFieldDelta(delta queries.FieldCacheDelta) {
	s.fields.ApplyDelta(delta.Upserted, delta.DeletedID)
}

func (s *DashboardStore) ApplyReservationDelta(delta queries.ReservationCacheDelta) {
	s.reservations.ApplyDelta(delta.Upserted, delta.DeletedID)
}

func (s *DashboardStore) ReconcileFields(ctx context.Context) error {
	return s.fields.Reconcile(ctx)
}

func (s *DashboardStore) ReconcileReservations(ctx context.Context) error {
	return s.reservations.Reconcile(ctx)
}

func (s *DashboardStore) AfterFieldWrite(ctx context.Context, delta queries.FieldCacheDelta) {
	if s.strategy == StrategyOptimistic {
		s.fields.ApplyDelta(delta.Upserted, delta.DeletedID)
		return
	}
	s.fields.Invalidate()
}

func (s *DashboardStore) AfterReservationWrite(ctx context.Context, delta queries.ReservationCacheDelta) {
	if s.strategy == StrategyOptimistic {
		s.reservations.ApplyDelta(delta.Upserted, delta.DeletedID)
		return
	}
	s.reservations.Invalidate()
}

func (s *DashboardStore) InvalidateAll() {
	s.fields.Invalidate()
	s.reservations.Invalidate()
}

func deref[T any](views []*T) []T {
	out := make([]T, 0, len(views))
	for _, v := range views {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}
