package shared

import (
	"context"
	"time"

	"slotbooker/internal/domain/booking"
	"slotbooker/internal/domain/customer"
	"slotbooker/internal/domain/payment"
	"slotbooker/internal/domain/schedule"
	"slotbooker/internal/domain/servicetype"
	"slotbooker/internal/infra/db"
	"slotbooker/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type UnitOfWork interface {
	// Within: read-committed transaction with retry for ordinary writes
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: serializable transaction for capacity admission;
	// retried on serialization failures like Within
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: validation reads outside any transaction
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Payments() PaymentRepository
	Customers() CustomerRepository
	Schedules() ScheduleRepository
	ServiceTypes() ServiceTypeRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads obtained from Tx.Reads() observe the transaction's snapshot;
// the one from UnitOfWork.CommandReads() reads autocommit.
type CommandReads interface {
	ServiceTypeByID(ctx context.Context, id uuid.UUID) (*ServiceTypeSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	PaymentByID(ctx context.Context, id uuid.UUID) (*PaymentSnapshot, error)
	CustomerByEmail(ctx context.Context, email string) (*CustomerSnapshot, error)
	RulesForResource(ctx context.Context, resourceID uuid.UUID) ([]RuleSnapshot, error)
	ActiveBookingCount(ctx context.Context, serviceTypeID uuid.UUID, startTime time.Time) (int, error)
	PaymentCountForBooking(ctx context.Context, bookingID uuid.UUID) (int, error)
	HasBookingsForServiceType(ctx context.Context, serviceTypeID uuid.UUID) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error
	UpdatePaymentStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.PaymentStatus) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type PaymentRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *payment.Payment) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status payment.Status, providerRef *string) error
}

type CustomerRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *customer.Customer) (uuid.UUID, error)
}

type ScheduleRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *schedule.Rule) (uuid.UUID, error)
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	ReplaceForResource(ctx context.Context, tx db.DBTX, resourceID uuid.UUID, rules []*schedule.Rule) error
}

type ServiceTypeRepository interface {
	Create(ctx context.Context, tx db.DBTX, st *servicetype.ServiceType) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, st *servicetype.ServiceType) error
	SetPublished(ctx context.Context, tx db.DBTX, id uuid.UUID, published bool) error
}
