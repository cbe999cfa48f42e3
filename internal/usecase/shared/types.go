package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side validation reads. Query responses use
// the richer view types in usecase/queries.

type ServiceTypeSnapshot struct {
	ID                   uuid.UUID
	ResourceID           *uuid.UUID
	Name                 string
	DurationMinutes      int
	Capacity             int
	Published            bool
	RequiresConfirmation bool
	PriceCents           *int64
	Currency             string
}

type BookingSnapshot struct {
	ID            uuid.UUID
	ServiceTypeID uuid.UUID
	CustomerID    uuid.UUID
	StartTime     time.Time
	EndTime       time.Time
	Status        string
	PaymentStatus string
}

type PaymentSnapshot struct {
	ID          uuid.UUID
	BookingID   uuid.UUID
	AmountCents int64
	Currency    string
	Status      string
}

type CustomerSnapshot struct {
	ID       uuid.UUID
	Email    string
	FullName string
	Role     string
}

// RuleSnapshot carries times as "HH:MM" the way they are stored; callers
// parse them into schedule values when they need arithmetic.
type RuleSnapshot struct {
	ID         uuid.UUID
	ResourceID uuid.UUID
	DayOfWeek  int
	StartTime  string
	EndTime    string
	Available  bool
}
