package api

import (
	"errors"
	"net/http"

	"slotbooker/internal/domain/schedule"

	reqdto "slotbooker/internal/handler/dto/request"
	resdto "slotbooker/internal/handler/dto/response"
	"slotbooker/internal/handler/httperr"
	"slotbooker/internal/usecase/commands"
	"slotbooker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	scheduleCommands commands.ScheduleCommands
	catalogQueries   queries.CatalogQueries
}

func NewScheduleHandler(scheduleCommands commands.ScheduleCommands, catalogQueries queries.CatalogQueries) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleCommands: scheduleCommands,
		catalogQueries:   catalogQueries,
	}
}

// @Summary List schedule rules for a resource
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {array} resdto.ScheduleRuleResponse
// @Router /resources/{id}/schedule [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource ID", nil)
		return
	}

	views, err := h.catalogQueries.ListRules(c.Request.Context(), resourceID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list schedule rules", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromScheduleRuleViews(views))
}

// @Summary Add a schedule rule
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param request body reqdto.ScheduleRuleRequest true "Rule"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/schedule [post]
func (h *ScheduleHandler) Create(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource ID", nil)
		return
	}

	var req reqdto.ScheduleRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.scheduleCommands.CreateRule(c.Request.Context(), resourceID, req.ToInput())
	if err != nil {
		h.mapScheduleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Replace a resource's weekly schedule
// @Tags schedules
// @Accept json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param request body reqdto.ReplaceScheduleRequest true "Rules"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/schedule [put]
func (h *ScheduleHandler) Replace(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource ID", nil)
		return
	}

	var req reqdto.ReplaceScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.scheduleCommands.ReplaceRules(c.Request.Context(), resourceID, req.ToInputs()); err != nil {
		h.mapScheduleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete a schedule rule
// @Tags schedules
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /schedule-rules/{id} [delete]
func (h *ScheduleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rule ID", nil)
		return
	}

	if err := h.scheduleCommands.DeleteRule(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrScheduleNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Schedule rule not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to delete schedule rule", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ScheduleHandler) mapScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrResourceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
	case errors.Is(err, schedule.ErrInvalidWeekday),
		errors.Is(err, schedule.ErrInvalidInterval),
		errors.Is(err, schedule.ErrInvalidTime):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid schedule rule", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to save schedule", nil)
	}
}
