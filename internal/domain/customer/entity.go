package customer

import (
	"strings"
	"time"

	"slotbooker/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail = errs.New("invalid email address")
	ErrEmptyName    = errs.New("customer name cannot be empty")
)

type Role string

const (
	RoleCustomer  Role = "customer"
	RoleOrganiser Role = "organiser"
	RoleAdmin     Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleOrganiser, RoleAdmin:
		return true
	default:
		return false
	}
}

// Customer is the stable identity a booking references. Guest customers are
// provisioned on first booking from an email and display name.
type Customer struct {
	id        uuid.UUID
	email     string
	fullName  string
	role      Role
	createdAt time.Time
}

func NewGuest(email, fullName string) (*Customer, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !isPlausibleEmail(email) {
		return nil, ErrInvalidEmail
	}

	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrEmptyName
	}

	return &Customer{
		id:       uuid.New(),
		email:    email,
		fullName: fullName,
		role:     RoleCustomer,
	}, nil
}

func Reconstruct(id uuid.UUID, email, fullName string, role Role, createdAt time.Time) *Customer {
	return &Customer{
		id:        id,
		email:     email,
		fullName:  fullName,
		role:      role,
		createdAt: createdAt,
	}
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) FullName() string     { return c.fullName }
func (c *Customer) Role() Role           { return c.role }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }

func isPlausibleEmail(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return strings.IndexByte(email[at+1:], '.') > 0
}
