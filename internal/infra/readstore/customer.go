package readstore

import (
	"context"

	"slotbooker/internal/infra"
	"slotbooker/internal/infra/db"

	"github.com/google/uuid"
)

type CustomerReadStore struct {
	dbtx db.DBTX
}

func NewCustomerReadStore(dbtx db.DBTX) *CustomerReadStore {
	return &CustomerReadStore{dbtx: dbtx}
}

// Credentials is the only place a password hash leaves the database.
type Credentials struct {
	ID           uuid.UUID
	Email        string
	Role         string
	PasswordHash string
}

const credentialsByEmailSQL = `
SELECT id, email, role, password_hash
FROM customers
WHERE email = $1`

func (s *CustomerReadStore) CredentialsByEmail(ctx context.Context, email string) (*Credentials, error) {
	var creds Credentials
	err := s.dbtx.QueryRow(ctx, credentialsByEmailSQL, email).Scan(
		&creds.ID, &creds.Email, &creds.Role, &creds.PasswordHash,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find customer credentials", err)
	}
	return &creds, nil
}
