//go:build unit

package commands_test

import (
	"context"
	"time"

	"slotbooker/internal/domain/booking"
	"slotbooker/internal/domain/customer"
	"slotbooker/internal/domain/payment"
	"slotbooker/internal/domain/schedule"
	"slotbooker/internal/domain/servicetype"
	"slotbooker/internal/infra"
	"slotbooker/internal/infra/db"
	"slotbooker/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeState backs an in-memory UnitOfWork. Commands observe it through the
// same interfaces they use against Postgres, so the orchestration logic runs
// unmodified.
type fakeState struct {
	serviceTypes map[uuid.UUID]*shared.ServiceTypeSnapshot
	bookings     map[uuid.UUID]*shared.BookingSnapshot
	payments     map[uuid.UUID]*shared.PaymentSnapshot
	customers    map[string]*shared.CustomerSnapshot
	rules        map[uuid.UUID][]shared.RuleSnapshot

	activeBookingCount int
	paymentCounts      map[uuid.UUID]int
	hasBookings        map[uuid.UUID]bool

	createdBookings  []*booking.Booking
	createdPayments  []*payment.Payment
	createdCustomers []*customer.Customer
	createdRules     []*schedule.Rule
	deletedBookings  []uuid.UUID
	deletedRules     []uuid.UUID

	bookingStatusUpdates  map[uuid.UUID]booking.Status
	bookingPaymentUpdates map[uuid.UUID]booking.PaymentStatus
	paymentStatusUpdates  map[uuid.UUID]payment.Status

	bookingCreateErr error
	paymentUpdateErr error
}

func newFakeState() *fakeState {
	return &fakeState{
		serviceTypes:          map[uuid.UUID]*shared.ServiceTypeSnapshot{},
		bookings:              map[uuid.UUID]*shared.BookingSnapshot{},
		payments:              map[uuid.UUID]*shared.PaymentSnapshot{},
		customers:             map[string]*shared.CustomerSnapshot{},
		rules:                 map[uuid.UUID][]shared.RuleSnapshot{},
		paymentCounts:         map[uuid.UUID]int{},
		hasBookings:           map[uuid.UUID]bool{},
		bookingStatusUpdates:  map[uuid.UUID]booking.Status{},
		bookingPaymentUpdates: map[uuid.UUID]booking.PaymentStatus{},
		paymentStatusUpdates:  map[uuid.UUID]payment.Status{},
	}
}

// ---------------------------------------------------------------------------
// CommandReads
// ---------------------------------------------------------------------------

type fakeReads struct{ s *fakeState }

func (r *fakeReads) ServiceTypeByID(_ context.Context, id uuid.UUID) (*shared.ServiceTypeSnapshot, error) {
	if st, ok := r.s.serviceTypes[id]; ok {
		return st, nil
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "service type not found")
}

func (r *fakeReads) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	if b, ok := r.s.bookings[id]; ok {
		return b, nil
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "booking not found")
}

func (r *fakeReads) PaymentByID(_ context.Context, id uuid.UUID) (*shared.PaymentSnapshot, error) {
	if p, ok := r.s.payments[id]; ok {
		return p, nil
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "payment not found")
}

func (r *fakeReads) CustomerByEmail(_ context.Context, email string) (*shared.CustomerSnapshot, error) {
	if c, ok := r.s.customers[email]; ok {
		return c, nil
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "customer not found")
}

func (r *fakeReads) RulesForResource(_ context.Context, resourceID uuid.UUID) ([]shared.RuleSnapshot, error) {
	return r.s.rules[resourceID], nil
}

func (r *fakeReads) ActiveBookingCount(_ context.Context, _ uuid.UUID, _ time.Time) (int, error) {
	return r.s.activeBookingCount, nil
}

func (r *fakeReads) PaymentCountForBooking(_ context.Context, bookingID uuid.UUID) (int, error) {
	return r.s.paymentCounts[bookingID], nil
}

func (r *fakeReads) HasBookingsForServiceType(_ context.Context, serviceTypeID uuid.UUID) (bool, error) {
	return r.s.hasBookings[serviceTypeID], nil
}

// ---------------------------------------------------------------------------
// Write repositories
// ---------------------------------------------------------------------------

type fakeBookingRepo struct{ s *fakeState }

func (r *fakeBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	if r.s.bookingCreateErr != nil {
		return uuid.Nil, r.s.bookingCreateErr
	}
	r.s.createdBookings = append(r.s.createdBookings, b)
	return b.ID(), nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, status booking.Status) error {
	r.s.bookingStatusUpdates[id] = status
	return nil
}

func (r *fakeBookingRepo) UpdatePaymentStatus(_ context.Context, _ db.DBTX, id uuid.UUID, status booking.PaymentStatus) error {
	r.s.bookingPaymentUpdates[id] = status
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	r.s.deletedBookings = append(r.s.deletedBookings, id)
	return nil
}

type fakePaymentRepo struct{ s *fakeState }

func (r *fakePaymentRepo) Create(_ context.Context, _ db.DBTX, p *payment.Payment) (uuid.UUID, error) {
	r.s.createdPayments = append(r.s.createdPayments, p)
	return p.ID(), nil
}

func (r *fakePaymentRepo) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, status payment.Status, _ *string) error {
	if r.s.paymentUpdateErr != nil {
		return r.s.paymentUpdateErr
	}
	r.s.paymentStatusUpdates[id] = status
	return nil
}

type fakeCustomerRepo struct{ s *fakeState }

func (r *fakeCustomerRepo) Create(_ context.Context, _ db.DBTX, c *customer.Customer) (uuid.UUID, error) {
	r.s.createdCustomers = append(r.s.createdCustomers, c)
	r.s.customers[c.Email()] = &shared.CustomerSnapshot{
		ID:       c.ID(),
		Email:    c.Email(),
		FullName: c.FullName(),
		Role:     c.Role().String(),
	}
	return c.ID(), nil
}

type fakeScheduleRepo struct{ s *fakeState }

func (r *fakeScheduleRepo) Create(_ context.Context, _ db.DBTX, rule *schedule.Rule) (uuid.UUID, error) {
	r.s.createdRules = append(r.s.createdRules, rule)
	return rule.ID(), nil
}

func (r *fakeScheduleRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	r.s.deletedRules = append(r.s.deletedRules, id)
	return nil
}

func (r *fakeScheduleRepo) ReplaceForResource(_ context.Context, _ db.DBTX, resourceID uuid.UUID, rules []*schedule.Rule) error {
	r.s.createdRules = append(r.s.createdRules, rules...)
	return nil
}

type fakeServiceTypeRepo struct {
	s       *fakeState
	updated []*servicetype.ServiceType
}

func (r *fakeServiceTypeRepo) Create(_ context.Context, _ db.DBTX, st *servicetype.ServiceType) (uuid.UUID, error) {
	return st.ID(), nil
}

func (r *fakeServiceTypeRepo) Update(_ context.Context, _ db.DBTX, st *servicetype.ServiceType) error {
	r.updated = append(r.updated, st)
	return nil
}

func (r *fakeServiceTypeRepo) SetPublished(_ context.Context, _ db.DBTX, id uuid.UUID, published bool) error {
	if st, ok := r.s.serviceTypes[id]; ok {
		st.Published = published
		return nil
	}
	return infra.NewRepoErr(infra.KindNotFound, "service type not found")
}

// ---------------------------------------------------------------------------
// UnitOfWork
// ---------------------------------------------------------------------------

type fakeTx struct {
	s            *fakeState
	serviceTypes *fakeServiceTypeRepo
}

func (t *fakeTx) Bookings() shared.BookingRepository         { return &fakeBookingRepo{s: t.s} }
func (t *fakeTx) Payments() shared.PaymentRepository         { return &fakePaymentRepo{s: t.s} }
func (t *fakeTx) Customers() shared.CustomerRepository       { return &fakeCustomerRepo{s: t.s} }
func (t *fakeTx) Schedules() shared.ScheduleRepository       { return &fakeScheduleRepo{s: t.s} }
func (t *fakeTx) ServiceTypes() shared.ServiceTypeRepository { return t.serviceTypes }
func (t *fakeTx) Reads() shared.CommandReads                 { return &fakeReads{s: t.s} }
func (t *fakeTx) DB() db.DBTX                                { return nil }

type fakeUoW struct {
	s  *fakeState
	tx *fakeTx

	withinErr       error
	serializableErr error
}

func newFakeUoW(s *fakeState) *fakeUoW {
	return &fakeUoW{s: s, tx: &fakeTx{s: s, serviceTypes: &fakeServiceTypeRepo{s: s}}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.withinErr != nil {
		return u.withinErr
	}
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.serializableErr != nil {
		return u.serializableErr
	}
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{s: u.s}
}
