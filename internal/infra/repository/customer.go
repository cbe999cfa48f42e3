package repository

import (
	"context"

	"slotbooker/internal/domain/customer"
	"slotbooker/internal/infra"
	"slotbooker/internal/infra/db"

	"github.com/google/uuid"
)

type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

const createCustomerSQL = `
INSERT INTO customers (id, email, full_name, role)
VALUES ($1, $2, $3, $4)
RETURNING id`

func (r *CustomerRepository) Create(ctx context.Context, tx db.DBTX, c *customer.Customer) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createCustomerSQL,
		c.ID(),
		c.Email(),
		c.FullName(),
		c.Role().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create customer", err)
	}
	return id, nil
}
