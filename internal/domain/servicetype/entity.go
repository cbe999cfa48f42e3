package servicetype

import (
	"time"

	"slotbooker/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidDuration = errs.New("duration must be positive")
	ErrInvalidCapacity = errs.New("capacity must be positive")
	ErrEmptyName       = errs.New("service type name cannot be empty")
	ErrImmutableShape  = errs.New("duration and capacity are frozen once bookings exist")
)

const DefaultCapacity = 3

// ServiceType is a bookable offering with a fixed slot duration and a
// per-slot capacity. Price may be absent; checkout falls back to the
// deployment default.
type ServiceType struct {
	id                   uuid.UUID
	name                 string
	durationMinutes      int
	published            bool
	capacity             int
	requiresConfirmation bool
	priceCents           *int64
	currency             string
	resourceID           *uuid.UUID
	createdAt            time.Time
}

func New(name string, durationMinutes, capacity int, requiresConfirmation bool, priceCents *int64, currency string, resourceID *uuid.UUID) (*ServiceType, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &ServiceType{
		id:                   uuid.New(),
		name:                 name,
		durationMinutes:      durationMinutes,
		published:            true,
		capacity:             capacity,
		requiresConfirmation: requiresConfirmation,
		priceCents:           priceCents,
		currency:             currency,
		resourceID:           resourceID,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	name string,
	durationMinutes int,
	published bool,
	capacity int,
	requiresConfirmation bool,
	priceCents *int64,
	currency string,
	resourceID *uuid.UUID,
	createdAt time.Time,
) *ServiceType {
	return &ServiceType{
		id:                   id,
		name:                 name,
		durationMinutes:      durationMinutes,
		published:            published,
		capacity:             capacity,
		requiresConfirmation: requiresConfirmation,
		priceCents:           priceCents,
		currency:             currency,
		resourceID:           resourceID,
		createdAt:            createdAt,
	}
}

// UpdateShape changes duration and capacity. Rejected once any booking has
// been admitted against the type: already-admitted bookings must not be
// retroactively invalidated.
func (s *ServiceType) UpdateShape(durationMinutes, capacity int, hasBookings bool) error {
	if hasBookings && (durationMinutes != s.durationMinutes || capacity != s.capacity) {
		return ErrImmutableShape
	}
	if durationMinutes <= 0 {
		return ErrInvalidDuration
	}
	if capacity <= 0 {
		return ErrInvalidCapacity
	}
	s.durationMinutes = durationMinutes
	s.capacity = capacity
	return nil
}

func (s *ServiceType) ID() uuid.UUID              { return s.id }
func (s *ServiceType) Name() string               { return s.name }
func (s *ServiceType) DurationMinutes() int       { return s.durationMinutes }
func (s *ServiceType) Duration() time.Duration    { return time.Duration(s.durationMinutes) * time.Minute }
func (s *ServiceType) Published() bool            { return s.published }
func (s *ServiceType) Capacity() int              { return s.capacity }
func (s *ServiceType) RequiresConfirmation() bool { return s.requiresConfirmation }
func (s *ServiceType) PriceCents() *int64         { return s.priceCents }
func (s *ServiceType) Currency() string           { return s.currency }
func (s *ServiceType) ResourceID() *uuid.UUID     { return s.resourceID }
func (s *ServiceType) CreatedAt() time.Time       { return s.createdAt }
