package queries

import (
	"context"

	"slotbooker/internal/infra"
	"slotbooker/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByCustomerEmail(ctx context.Context, email string, limit, offset int) ([]*BookingView, error)
	Stats(ctx context.Context) (*BookingStatsView, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByCustomerEmail(ctx context.Context, email string, limit, offset int32) ([]*BookingView, error)
	Stats(ctx context.Context) (*BookingStatsView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByCustomerEmail(ctx context.Context, email string, limit, offset int) ([]*BookingView, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return q.repo.FindByCustomerEmail(ctx, email, int32(limit), int32(offset))
}

func (q *bookingQueriesImpl) Stats(ctx context.Context) (*BookingStatsView, error) {
	return q.repo.Stats(ctx)
}
