package commands

import (
	"context"

	"slotbooker/internal/domain/customer"
	"slotbooker/internal/infra"
	"slotbooker/internal/infra/readstore"
	"slotbooker/internal/pkg/errs"
	"slotbooker/internal/pkg/jwt"
	"slotbooker/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	CustomerID  uuid.UUID
	Role        string
	AccessToken string
}

type CredentialReader interface {
	CredentialsByEmail(ctx context.Context, email string) (*readstore.Credentials, error)
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	creds      CredentialReader
	jwtService *jwt.Service
}

func NewAuthCommands(creds CredentialReader, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{creds: creds, jwtService: jwtService}
}

// Login authenticates staff accounts. Guests created through admission have
// no password and cannot log in.
func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	creds, err := a.creds.CredentialsByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if creds.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := password.ComparePassword(creds.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role := customer.Role(creds.Role)
	if !role.IsValid() {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(creds.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		CustomerID:  creds.ID,
		Role:        role.String(),
		AccessToken: token,
	}, nil
}
