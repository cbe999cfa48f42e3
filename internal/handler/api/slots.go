package api

import (
	"errors"
	"net/http"
	"time"

	resdto "slotbooker/internal/handler/dto/response"
	"slotbooker/internal/handler/httperr"
	"slotbooker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type SlotHandler struct {
	slotQueries queries.SlotQueries
}

func NewSlotHandler(slotQueries queries.SlotQueries) *SlotHandler {
	return &SlotHandler{slotQueries: slotQueries}
}

// @Summary List slots for a day
// @Description Derive the bookable slots of a service type for one date
// @Tags slots
// @Produce json
// @Param id path string true "Service type ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param strict query bool false "Return 404 for unknown service types instead of an empty list"
// @Success 200 {object} resdto.SlotListResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /service-types/{id}/slots [get]
func (h *SlotHandler) ListDay(c *gin.Context) {
	serviceTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service type ID", nil)
		return
	}

	dateStr := c.Query("date")
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	var views []queries.SlotView
	if c.Query("strict") == "true" {
		views, err = h.slotQueries.ListDayStrict(c.Request.Context(), serviceTypeID, date)
	} else {
		views, err = h.slotQueries.ListDay(c.Request.Context(), serviceTypeID, date)
	}
	if err != nil {
		if errors.Is(err, queries.ErrServiceTypeNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service type not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list slots", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(dateStr, views))
}
