package response

import (
	"time"

	"slotbooker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	ServiceTypeID uuid.UUID `json:"serviceTypeId"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	BookedCount   int       `json:"bookedCount"`
	Capacity      int       `json:"capacity"`
	Available     bool      `json:"available"`
}

type SlotListResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

func FromSlotViews(date string, views []queries.SlotView) *SlotListResponse {
	slots := make([]SlotResponse, 0, len(views))
	for _, view := range views {
		var resp SlotResponse
		_ = copier.Copy(&resp, &view)
		slots = append(slots, resp)
	}
	return &SlotListResponse{Date: date, Slots: slots}
}
