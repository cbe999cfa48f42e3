package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// SlotView is a derived row; nothing in it is stored. Identity for clients
// is the (service_type_id, start_time) pair.
type SlotView struct {
	ServiceTypeID uuid.UUID `json:"service_type_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	BookedCount   int       `json:"booked_count"`
	Capacity      int       `json:"capacity"`
	Available     bool      `json:"available"`
}

type ServiceTypeView struct {
	ID                   uuid.UUID  `json:"id"`
	ResourceID           *uuid.UUID `json:"resource_id,omitempty"`
	Name                 string     `json:"name"`
	DurationMinutes      int        `json:"duration_minutes"`
	Capacity             int        `json:"capacity"`
	Published            bool       `json:"published"`
	RequiresConfirmation bool       `json:"requires_confirmation"`
	PriceCents           *int64     `json:"price_cents,omitempty"`
	Currency             string     `json:"currency"`
	CreatedAt            time.Time  `json:"created_at"`
}

type BookingView struct {
	ID              uuid.UUID `json:"id"`
	ServiceTypeID   uuid.UUID `json:"service_type_id"`
	ServiceTypeName string    `json:"service_type_name"`
	CustomerID      uuid.UUID `json:"customer_id"`
	CustomerEmail   string    `json:"customer_email"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	CreatedAt       time.Time `json:"created_at"`
}

type PaymentView struct {
	ID          uuid.UUID `json:"id"`
	BookingID   uuid.UUID `json:"booking_id"`
	AmountCents int64     `json:"amount_cents"`
	Currency    string    `json:"currency"`
	Provider    string    `json:"provider"`
	Status      string    `json:"status"`
	ProviderRef *string   `json:"provider_ref,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CheckoutView quotes what settling a booking would cost right now.
type CheckoutView struct {
	BookingID      uuid.UUID `json:"booking_id"`
	BasePriceCents int64     `json:"base_price_cents"`
	TaxCents       int64     `json:"tax_cents"`
	TotalCents     int64     `json:"total_cents"`
	Currency       string    `json:"currency"`
}

// ReceiptView re-derives the base/tax split from the settled total. Exact is
// false when no base amount reproduces the total under the tax rounding.
type ReceiptView struct {
	PaymentID      uuid.UUID `json:"payment_id"`
	BookingID      uuid.UUID `json:"booking_id"`
	BasePriceCents int64     `json:"base_price_cents"`
	TaxCents       int64     `json:"tax_cents"`
	TotalCents     int64     `json:"total_cents"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	Exact          bool      `json:"exact"`
}

type BookingStatsView struct {
	TotalBookings    int64            `json:"total_bookings"`
	ByStatus         map[string]int64 `json:"by_status"`
	PaidRevenueCents int64            `json:"paid_revenue_cents"`
}

type ScheduleRuleView struct {
	ID         uuid.UUID `json:"id"`
	ResourceID uuid.UUID `json:"resource_id"`
	DayOfWeek  int       `json:"day_of_week"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Available  bool      `json:"available"`
}
