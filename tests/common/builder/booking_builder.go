//go:build unit || e2e

package builder

import (
	"time"

	dombooking "slotbooker/internal/domain/booking"
	reqdto "slotbooker/internal/handler/dto/request"
	"slotbooker/internal/usecase/queries"
	"slotbooker/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID                   uuid.UUID
	CustomerID           uuid.UUID
	CustomerEmail        string
	CustomerName         string
	ServiceTypeID        uuid.UUID
	ServiceTypeName      string
	ResourceID           *uuid.UUID
	StartTime            time.Time
	DurationMinutes      int
	Status               string
	PaymentStatus        string
	RequiresConfirmation bool
	CreatedAt            time.Time
}

func NewBookingBuilder() *BookingBuilder {
	resourceID := uuid.New()
	start := time.Now().Add(48 * time.Hour).Truncate(time.Hour)
	return &BookingBuilder{
		ID:              uuid.New(),
		CustomerID:      uuid.New(),
		CustomerEmail:   "guest@example.com",
		CustomerName:    "Asha Rao",
		ServiceTypeID:   uuid.New(),
		ServiceTypeName: "Deep Tissue Massage",
		ResourceID:      &resourceID,
		StartTime:       start,
		DurationMinutes: 60,
		Status:          "confirmed",
		PaymentStatus:   "pending",
		CreatedAt:       time.Now(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain(now time.Time) (*dombooking.Booking, error) {
	return dombooking.New(
		b.CustomerID,
		b.ServiceTypeID,
		b.ResourceID,
		b.StartTime,
		time.Duration(b.DurationMinutes)*time.Minute,
		b.RequiresConfirmation,
		now,
	)
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:            b.ID,
		ServiceTypeID: b.ServiceTypeID,
		CustomerID:    b.CustomerID,
		StartTime:     b.StartTime,
		EndTime:       b.StartTime.Add(time.Duration(b.DurationMinutes) * time.Minute),
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:              b.ID,
		ServiceTypeID:   b.ServiceTypeID,
		ServiceTypeName: b.ServiceTypeName,
		CustomerID:      b.CustomerID,
		CustomerEmail:   b.CustomerEmail,
		StartTime:       b.StartTime,
		EndTime:         b.StartTime.Add(time.Duration(b.DurationMinutes) * time.Minute),
		Status:          b.Status,
		PaymentStatus:   b.PaymentStatus,
		CreatedAt:       b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildAdmitRequestDTO() reqdto.AdmitBookingRequest {
	return reqdto.AdmitBookingRequest{
		ServiceTypeID: b.ServiceTypeID,
		StartTime:     b.StartTime,
		CustomerEmail: b.CustomerEmail,
		CustomerName:  b.CustomerName,
	}
}
