package response

import (
	"slotbooker/internal/usecase/commands"

	"github.com/google/uuid"
)

type LoginResponse struct {
	CustomerID  uuid.UUID `json:"customerId"`
	Role        string    `json:"role"`
	AccessToken string    `json:"accessToken"`
}

func FromLoginResult(result *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		CustomerID:  result.CustomerID,
		Role:        result.Role,
		AccessToken: result.AccessToken,
	}
}
