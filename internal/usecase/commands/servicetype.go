package commands

import (
	"context"
	"time"

	"slotbooker/internal/domain/servicetype"
	"slotbooker/internal/infra"
	"slotbooker/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateServiceTypeRequest struct {
	Name                 string
	DurationMinutes      int
	Capacity             int
	RequiresConfirmation bool
	PriceCents           *int64
	Currency             string
	ResourceID           *uuid.UUID
}

type UpdateServiceTypeRequest struct {
	Name            string
	DurationMinutes int
	Capacity        int
	PriceCents      *int64
}

type ServiceTypeCommands interface {
	CreateServiceType(ctx context.Context, req CreateServiceTypeRequest) (uuid.UUID, error)
	UpdateServiceType(ctx context.Context, id uuid.UUID, req UpdateServiceTypeRequest) error
	SetPublished(ctx context.Context, id uuid.UUID, published bool) error
}

type serviceTypeUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewServiceTypeUseCase(uow shared.UnitOfWork) ServiceTypeCommands {
	return &serviceTypeUseCaseImpl{uow: uow}
}

func (uc *serviceTypeUseCaseImpl) CreateServiceType(ctx context.Context, req CreateServiceTypeRequest) (uuid.UUID, error) {
	st, err := servicetype.New(
		req.Name,
		req.DurationMinutes,
		req.Capacity,
		req.RequiresConfirmation,
		req.PriceCents,
		req.Currency,
		req.ResourceID,
	)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, cerr := tx.ServiceTypes().Create(ctx, tx.DB(), st)
		if cerr != nil {
			if infra.IsKind(cerr, infra.KindForeignKeyViolated) {
				return ErrResourceNotFound
			}
			return cerr
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// UpdateServiceType refuses to reshape duration or capacity once bookings
// reference the service type; derived slots would silently shift otherwise.
func (uc *serviceTypeUseCaseImpl) UpdateServiceType(ctx context.Context, id uuid.UUID, req UpdateServiceTypeRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ServiceTypeByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrServiceTypeNotFound
			}
			return err
		}

		hasBookings, err := tx.Reads().HasBookingsForServiceType(ctx, id)
		if err != nil {
			return err
		}

		name := snap.Name
		if req.Name != "" {
			name = req.Name
		}
		price := snap.PriceCents
		if req.PriceCents != nil {
			price = req.PriceCents
		}

		st := servicetype.Reconstruct(
			snap.ID, name, snap.DurationMinutes,
			snap.Published, snap.Capacity, snap.RequiresConfirmation,
			price, snap.Currency, snap.ResourceID, time.Time{},
		)
		if err := st.UpdateShape(req.DurationMinutes, req.Capacity, hasBookings); err != nil {
			return err
		}
		return tx.ServiceTypes().Update(ctx, tx.DB(), st)
	})
}

func (uc *serviceTypeUseCaseImpl) SetPublished(ctx context.Context, id uuid.UUID, published bool) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.ServiceTypes().SetPublished(ctx, tx.DB(), id, published)
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrServiceTypeNotFound
	}
	return err
}
