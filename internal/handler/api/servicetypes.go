package api

import (
	"errors"
	"net/http"

	"slotbooker/internal/domain/servicetype"
	"slotbooker/internal/handler/middleware"

	reqdto "slotbooker/internal/handler/dto/request"
	resdto "slotbooker/internal/handler/dto/response"
	"slotbooker/internal/handler/httperr"
	"slotbooker/internal/usecase/commands"
	"slotbooker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ServiceTypeHandler struct {
	serviceTypeCommands commands.ServiceTypeCommands
	catalogQueries      queries.CatalogQueries
}

func NewServiceTypeHandler(serviceTypeCommands commands.ServiceTypeCommands, catalogQueries queries.CatalogQueries) *ServiceTypeHandler {
	return &ServiceTypeHandler{
		serviceTypeCommands: serviceTypeCommands,
		catalogQueries:      catalogQueries,
	}
}

// @Summary List service types
// @Tags service-types
// @Produce json
// @Success 200 {array} resdto.ServiceTypeResponse
// @Router /service-types [get]
func (h *ServiceTypeHandler) List(c *gin.Context) {
	includeUnpublished := false
	if role, ok := middleware.GetUserRole(c); ok && role != "customer" {
		includeUnpublished = c.Query("include_unpublished") == "true"
	}

	views, err := h.catalogQueries.ListServiceTypes(c.Request.Context(), includeUnpublished)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list service types", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceTypeViews(views))
}

// @Summary Get service type
// @Tags service-types
// @Produce json
// @Param id path string true "Service type ID"
// @Success 200 {object} resdto.ServiceTypeResponse
// @Failure 404 {object} httperr.Response
// @Router /service-types/{id} [get]
func (h *ServiceTypeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service type ID", nil)
		return
	}

	view, err := h.catalogQueries.GetServiceType(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrServiceTypeNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service type not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load service type", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceTypeView(view))
}

// @Summary Create service type
// @Tags service-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateServiceTypeRequest true "Service type"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Router /service-types [post]
func (h *ServiceTypeHandler) Create(c *gin.Context) {
	var req reqdto.CreateServiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.serviceTypeCommands.CreateServiceType(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrResourceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
		case errors.Is(err, servicetype.ErrEmptyName), errors.Is(err, servicetype.ErrInvalidDuration):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service type", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create service type", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update service type
// @Tags service-types
// @Accept json
// @Security BearerAuth
// @Param id path string true "Service type ID"
// @Param request body reqdto.UpdateServiceTypeRequest true "Changes"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /service-types/{id} [put]
func (h *ServiceTypeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service type ID", nil)
		return
	}

	var req reqdto.UpdateServiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	err = h.serviceTypeCommands.UpdateServiceType(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrServiceTypeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service type not found", nil)
		case errors.Is(err, servicetype.ErrImmutableShape):
			httperr.AbortWithError(c, http.StatusConflict, err, "Duration and capacity are frozen once bookings exist", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update service type", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Publish or hide service type
// @Tags service-types
// @Accept json
// @Security BearerAuth
// @Param id path string true "Service type ID"
// @Param request body reqdto.PublishServiceTypeRequest true "Visibility"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /service-types/{id}/publish [patch]
func (h *ServiceTypeHandler) SetPublished(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service type ID", nil)
		return
	}

	var req reqdto.PublishServiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	err = h.serviceTypeCommands.SetPublished(c.Request.Context(), id, *req.Published)
	if err != nil {
		if errors.Is(err, commands.ErrServiceTypeNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service type not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update service type", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
