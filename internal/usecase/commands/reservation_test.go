//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"canchacontrol/internal/domain/reservation"
	reqdto "canchacontrol/internal/handler/dto/request"
	"canchacontrol/internal/infra"
	"canchacontrol/internal/pkg/clock"
	"canchacontrol/internal/usecase/commands"
	"canchacontrol/internal/usecase/queries"
	"canchacontrol/internal/usecase/shared"
	"canchacontrol/tests/common/builder"
	queriesmock "canchacontrol/tests/mock/queries"
	sharedmock "canchacontrol/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	repo     *sharedmock.MockReservationRepository
	views    *queriesmock.MockReservationViewRepo
	cache    *queriesmock.MockDashboardCache
	clock    *clock.MockClock
	commands commands.ReservationCommands
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.repo = sharedmock.NewMockReservationRepository(s.ctrl)
	s.views = queriesmock.NewMockReservationViewRepo(s.ctrl)
	s.cache = queriesmock.NewMockDashboardCache(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))

	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Reservations().Return(s.repo).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	s.commands = commands.NewReservationCommands(s.uow, s.views, s.cache, s.clock)
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

// expectWithin routes the unit-of-work callback through the mocked transaction.
func (s *ReservationCommandsTestSuite) expectWithin() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		})
}

func (s *ReservationCommandsTestSuite) expectReadAfterWrite(view *queries.ReservationView) {
	s.views.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
	s.cache.EXPECT().AfterReservationWrite(gomock.Any(), queries.ReservationCacheDelta{Upserted: view})
}

func (s *ReservationCommandsTestSuite) TestCreate() {
	s.Run("success: prices the slot and inserts inside the transaction", func() {
		b := builder.NewReservationBuilder()
		fieldSnap := builder.NewFieldBuilder().BuildSnapshot()
		fieldSnap.ID = b.FieldID
		req := b.BuildCreateRequestDTO()
		actorID := uuid.New()

		s.expectWithin()
		s.reads.EXPECT().FieldByID(gomock.Any(), b.FieldID).Return(fieldSnap, nil)
		s.reads.EXPECT().ConflictingSlots(gomock.Any(), b.FieldID, gomock.Any(), gomock.Any(), uuid.Nil).
			Return(nil, nil)

		var created *reservation.Reservation
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, r *reservation.Reservation) (uuid.UUID, error) {
				created = r
				return r.ID(), nil
			})

		view := b.BuildView()
		s.views.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(view, nil)
		s.cache.EXPECT().AfterReservationWrite(gomock.Any(), queries.ReservationCacheDelta{Upserted: view})

		result, err := s.commands.Create(context.Background(), req, actorID)
		s.Require().NoError(err)
		s.Equal(view, result)

		s.Require().NotNil(created)
		s.Equal(actorID, created.CreatedBy())
		// 90 minutes at the field's hourly rate
		s.Equal(fieldSnap.HourlyRateCents*90/60, created.Price().Cents())
		s.Equal(reservation.StatusPending, created.Status())
	})

	s.Run("error: overlapping booking yields conflict with colliding slots", func() {
		b := builder.NewReservationBuilder()
		fieldSnap := builder.NewFieldBuilder().BuildSnapshot()
		fieldSnap.ID = b.FieldID
		colliding := []shared.ConflictingSlot{{
			ReservationID: uuid.New(),
			ClientName:    "Maria",
			Date:          b.Date,
			StartTime:     "18:30",
			EndTime:       "20:00",
		}}

		s.expectWithin()
		s.reads.EXPECT().FieldByID(gomock.Any(), b.FieldID).Return(fieldSnap, nil)
		s.reads.EXPECT().ConflictingSlots(gomock.Any(), b.FieldID, gomock.Any(), gomock.Any(), uuid.Nil).
			Return(colliding, nil)

		_, err := s.commands.Create(context.Background(), b.BuildCreateRequestDTO(), uuid.New())
		s.Require().ErrorIs(err, commands.ErrReservationConflict)

		var conflict *commands.ConflictError
		s.Require().True(errors.As(err, &conflict))
		s.Equal(colliding, conflict.Colliding)
	})

	s.Run("success: cancelled booking skips the conflict check", func() {
		b := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.PaymentStatus = "cancelled" })
		fieldSnap := builder.NewFieldBuilder().BuildSnapshot()
		fieldSnap.ID = b.FieldID

		s.expectWithin()
		s.reads.EXPECT().FieldByID(gomock.Any(), b.FieldID).Return(fieldSnap, nil)
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

		view := b.BuildView()
		s.views.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(view, nil)
		s.cache.EXPECT().AfterReservationWrite(gomock.Any(), gomock.Any())

		_, err := s.commands.Create(context.Background(), b.BuildCreateRequestDTO(), uuid.New())
		s.Require().NoError(err)
	})

	s.Run("error: unknown field", func() {
		b := builder.NewReservationBuilder()

		s.expectWithin()
		s.reads.EXPECT().FieldByID(gomock.Any(), b.FieldID).
			Return(nil, infra.WrapRepoErr("field not found", nil, infra.KindNotFound))

		_, err := s.commands.Create(context.Background(), b.BuildCreateRequestDTO(), uuid.New())
		s.Require().ErrorIs(err, commands.ErrFieldNotFound)
	})

	s.Run("error: invalid payment status rejected before any transaction", func() {
		bogus := "refunded"
		req := builder.NewReservationBuilder().BuildCreateRequestDTO()
		req.PaymentStatus = &bogus

		_, err := s.commands.Create(context.Background(), req, uuid.New())
		s.Require().ErrorIs(err, commands.ErrInvalidPaymentStatus)
	})

	s.Run("error: invalid slot rejected before any transaction", func() {
		req := builder.NewReservationBuilder().BuildCreateRequestDTO()
		req.StartTime, req.EndTime = "19:00", "18:00"

		_, err := s.commands.Create(context.Background(), req, uuid.New())
		s.Require().ErrorIs(err, commands.ErrReservationValidation)
	})
}

func (s *ReservationCommandsTestSuite) TestUpdate() {
	s.Run("success: schedule change re-checks conflicts excluding itself", func() {
		b := builder.NewReservationBuilder()
		snap := b.BuildSnapshot()
		fieldSnap := builder.NewFieldBuilder().BuildSnapshot()
		fieldSnap.ID = b.FieldID
		fieldSnap.HourlyRateCents = 300000

		newStart, newEnd := "20:00", "21:00"
		req := reqdto.UpdateReservationRequest{StartTime: &newStart, EndTime: &newEnd}

		s.expectWithin()
		s.reads.EXPECT().ReservationByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.reads.EXPECT().FieldByID(gomock.Any(), b.FieldID).Return(fieldSnap, nil)
		s.reads.EXPECT().ConflictingSlots(gomock.Any(), b.FieldID, gomock.Any(), gomock.Any(), snap.ID).
			Return(nil, nil)

		var updated *reservation.Reservation
		s.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, r *reservation.Reservation) error {
				updated = r
				return nil
			})

		view := b.BuildView()
		view.ID = snap.ID
		s.expectReadAfterWrite(view)

		_, err := s.commands.Update(context.Background(), snap.ID, req)
		s.Require().NoError(err)

		s.Require().NotNil(updated)
		s.Equal("20:00-21:00", updated.Slot().String())
		// repriced against the field's current rate for the new 60 minute slot
		s.Equal(int64(300000), updated.Price().Cents())
	})

	s.Run("success: client-only change skips the conflict check", func() {
		b := builder.NewReservationBuilder()
		snap := b.BuildSnapshot()
		newName := "Carla Gomez"
		req := reqdto.UpdateReservationRequest{ClientName: &newName}

		s.expectWithin()
		s.reads.EXPECT().ReservationByID(gomock.Any(), snap.ID).Return(snap, nil)

		var updated *reservation.Reservation
		s.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, r *reservation.Reservation) error {
				updated = r
				return nil
			})

		view := b.BuildView()
		view.ID = snap.ID
		s.expectReadAfterWrite(view)

		_, err := s.commands.Update(context.Background(), snap.ID, req)
		s.Require().NoError(err)

		s.Require().NotNil(updated)
		s.Equal("Carla Gomez", updated.Client().Name())
		// untouched fields keep their stored values
		s.Equal(snap.Slot.String(), updated.Slot().String())
		s.Equal(snap.PriceCents, updated.Price().Cents())
	})

	s.Run("error: conflicting reschedule is rejected", func() {
		b := builder.NewReservationBuilder()
		snap := b.BuildSnapshot()
		fieldSnap := builder.NewFieldBuilder().BuildSnapshot()
		fieldSnap.ID = b.FieldID

		newDate := "2026-09-16"
		req := reqdto.UpdateReservationRequest{Date: &newDate}

		s.expectWithin()
		s.reads.EXPECT().ReservationByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.reads.EXPECT().FieldByID(gomock.Any(), b.FieldID).Return(fieldSnap, nil)
		s.reads.EXPECT().ConflictingSlots(gomock.Any(), b.FieldID, gomock.Any(), gomock.Any(), snap.ID).
			Return([]shared.ConflictingSlot{{ReservationID: uuid.New(), ClientName: "Maria"}}, nil)

		_, err := s.commands.Update(context.Background(), snap.ID, req)
		s.Require().ErrorIs(err, commands.ErrReservationConflict)
	})

	s.Run("error: unknown reservation", func() {
		id := uuid.New()
		newName := "Carla"
		req := reqdto.UpdateReservationRequest{ClientName: &newName}

		s.expectWithin()
		s.reads.EXPECT().ReservationByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		_, err := s.commands.Update(context.Background(), id, req)
		s.Require().ErrorIs(err, commands.ErrReservationNotFound)
	})

	s.Run("error: rescheduling an orphaned reservation requires a field", func() {
		b := builder.NewReservationBuilder()
		snap := b.BuildSnapshot()
		snap.FieldID = nil

		newStart := "20:00"
		newEnd := "21:00"
		req := reqdto.UpdateReservationRequest{StartTime: &newStart, EndTime: &newEnd}

		s.expectWithin()
		s.reads.EXPECT().ReservationByID(gomock.Any(), snap.ID).Return(snap, nil)

		_, err := s.commands.Update(context.Background(), snap.ID, req)
		s.Require().ErrorIs(err, commands.ErrReservationValidation)
	})
}

func (s *ReservationCommandsTestSuite) TestUpdatePaymentStatus() {
	s.Run("success: plain transition needs no conflict check", func() {
		b := builder.NewReservationBuilder()
		snap := b.BuildSnapshot()

		s.expectWithin()
		s.reads.EXPECT().ReservationByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.repo.EXPECT().UpdatePaymentStatus(gomock.Any(), gomock.Any(), snap.ID, reservation.StatusCompleted, gomock.Any()).
			Return(nil)

		view := b.BuildView()
		view.ID = snap.ID
		s.expectReadAfterWrite(view)

		_, err := s.commands.UpdatePaymentStatus(context.Background(), snap.ID, "completed")
		s.Require().NoError(err)
	})

	s.Run("success: reviving a cancelled booking re-checks the slot", func() {
		b := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.PaymentStatus = "cancelled" })
		snap := b.BuildSnapshot()

		s.expectWithin()
		s.reads.EXPECT().ReservationByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.reads.EXPECT().ConflictingSlots(gomock.Any(), b.FieldID, snap.Date, snap.Slot, snap.ID).
			Return(nil, nil)
		s.repo.EXPECT().UpdatePaymentStatus(gomock.Any(), gomock.Any(), snap.ID, reservation.StatusPending, gomock.Any()).
			Return(nil)

		view := b.BuildView()
		view.ID = snap.ID
		s.expectReadAfterWrite(view)

		_, err := s.commands.UpdatePaymentStatus(context.Background(), snap.ID, "pending")
		s.Require().NoError(err)
	})

	s.Run("error: revival into an occupied slot is rejected", func() {
		b := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.PaymentStatus = "cancelled" })
		snap := b.BuildSnapshot()

		s.expectWithin()
		s.reads.EXPECT().ReservationByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.reads.EXPECT().ConflictingSlots(gomock.Any(), b.FieldID, snap.Date, snap.Slot, snap.ID).
			Return([]shared.ConflictingSlot{{ReservationID: uuid.New(), ClientName: "Maria"}}, nil)

		_, err := s.commands.UpdatePaymentStatus(context.Background(), snap.ID, "completed")
		s.Require().ErrorIs(err, commands.ErrReservationConflict)
	})

	s.Run("error: unknown status", func() {
		_, err := s.commands.UpdatePaymentStatus(context.Background(), uuid.New(), "refunded")
		s.Require().ErrorIs(err, commands.ErrInvalidPaymentStatus)
	})
}

func (s *ReservationCommandsTestSuite) TestDelete() {
	s.Run("success: removes the row and patches the cache", func() {
		id := uuid.New()

		s.expectWithin()
		s.repo.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(nil)
		s.cache.EXPECT().AfterReservationWrite(gomock.Any(), queries.ReservationCacheDelta{DeletedID: id})

		s.Require().NoError(s.commands.Delete(context.Background(), id))
	})

	s.Run("error: unknown reservation", func() {
		id := uuid.New()

		s.expectWithin()
		s.repo.EXPECT().Delete(gomock.Any(), gomock.Any(), id).
			Return(infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		err := s.commands.Delete(context.Background(), id)
		s.Require().ErrorIs(err, commands.ErrReservationNotFound)
	})
}
