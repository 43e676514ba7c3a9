package queries

import (
	"context"

	"canchacontrol/internal/domain/reservation"
	"canchacontrol/internal/pkg/errs"
)

var ErrInvalidStatsRange = errs.New("invalid stats date range")

type ReportQueries interface {
	// ReservationStats aggregates reservations whose date falls in [from,to]
	// (inclusive civil dates). Cancelled bookings count toward the totals but
	// contribute no revenue.
	ReservationStats(ctx context.Context, from, to string) (*ReservationStatsView, error)
}

type reportQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReportQueries(repo ReservationViewRepo) ReportQueries {
	return &reportQueriesImpl{repo: repo}
}

func (q *reportQueriesImpl) ReservationStats(ctx context.Context, from, to string) (*ReservationStatsView, error) {
	fromDate, err := reservation.ParseDate(from)
	if err != nil {
		return nil, ErrInvalidStatsRange
	}
	toDate, err := reservation.ParseDate(to)
	if err != nil {
		return nil, ErrInvalidStatsRange
	}
	if toDate.Time().Before(fromDate.Time()) {
		return nil, ErrInvalidStatsRange
	}

	fromStr := fromDate.String()
	toStr := toDate.String()
	rows, err := q.repo.List(ctx, ReservationFilter{From: &fromStr, To: &toStr})
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	stats := &ReservationStatsView{From: fromStr, To: toStr}
	for _, row := range rows {
		stats.Total++
		switch reservation.PaymentStatus(row.PaymentStatus) {
		case reservation.StatusPending:
			stats.Pending++
			stats.PendingRevenueCents += row.TotalPriceCents
		case reservation.StatusPartial:
			stats.Partial++
			stats.TotalRevenueCents += row.TotalPriceCents
		case reservation.StatusCompleted:
			stats.Completed++
			stats.TotalRevenueCents += row.TotalPriceCents
		case reservation.StatusCancelled:
			stats.Cancelled++
		}
	}
	return stats, nil
}
