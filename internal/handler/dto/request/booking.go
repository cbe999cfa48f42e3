package request

import (
	"strings"
	"time"

	"slotbooker/internal/usecase/commands"

	"github.com/google/uuid"
)

type AdmitBookingRequest struct {
	ServiceTypeID uuid.UUID `json:"service_type_id" binding:"required"`
	StartTime     time.Time `json:"start_time" binding:"required"`
	CustomerEmail string    `json:"customer_email" binding:"required,email"`
	CustomerName  string    `json:"customer_name" binding:"required"`
}

func (r AdmitBookingRequest) ToCommand() commands.AdmitBookingRequest {
	return commands.AdmitBookingRequest{
		ServiceTypeID: r.ServiceTypeID,
		StartTime:     r.StartTime,
		CustomerEmail: strings.TrimSpace(strings.ToLower(r.CustomerEmail)),
		CustomerName:  strings.TrimSpace(r.CustomerName),
	}
}

type TransitionBookingRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}
