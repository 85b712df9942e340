package api

import (
	"errors"
	"net/http"

	reqdto "bookslot/internal/handler/dto/request"
	resdto "bookslot/internal/handler/dto/response"
	"bookslot/internal/handler/middleware"
	"bookslot/internal/pkg/errs"
	"bookslot/internal/usecase/commands"
	"bookslot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogCmds commands.CatalogCommands
	catalogQrys queries.CatalogQueries
}

func NewCatalogHandler(catalogCmds commands.CatalogCommands, catalogQrys queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogCmds: catalogCmds,
		catalogQrys: catalogQrys,
	}
}

// @Summary List services
// @Description List bookable services; staff can include inactive ones
// @Tags catalog
// @Produce json
// @Param includeInactive query bool false "Include deactivated services (staff only)"
// @Success 200 {array} resdto.ServiceResponse
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	includeInactive := c.Query("includeInactive") == "true" && middleware.IsStaff(c)

	views, err := h.catalogQrys.ListServices(c.Request.Context(), includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp := make([]*resdto.ServiceResponse, len(views))
	for i, view := range views {
		resp[i] = resdto.FromServiceView(view)
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Create service
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateServiceRequest true "Service definition"
// @Success 201 {object} resdto.ServiceResponse
// @Failure 422 {object} map[string]string
// @Router /services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.catalogCmds.CreateService(c.Request.Context(), req.ToInput())
	if err != nil {
		h.respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromServiceView(view))
}

// @Summary Update service
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body reqdto.UpdateServiceRequest true "Fields to update"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 404 {object} map[string]string
// @Router /services/{id} [put]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service ID format",
		})
		return
	}

	var req reqdto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.catalogCmds.UpdateService(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

// @Summary List locations
// @Description List locations; staff can include inactive ones
// @Tags catalog
// @Produce json
// @Param includeInactive query bool false "Include deactivated locations (staff only)"
// @Success 200 {array} resdto.LocationResponse
// @Router /locations [get]
func (h *CatalogHandler) ListLocations(c *gin.Context) {
	includeInactive := c.Query("includeInactive") == "true" && middleware.IsStaff(c)

	views, err := h.catalogQrys.ListLocations(c.Request.Context(), includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp := make([]*resdto.LocationResponse, len(views))
	for i, view := range views {
		resp[i] = resdto.FromLocationView(view)
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Create location
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLocationRequest true "Location definition"
// @Success 201 {object} resdto.LocationResponse
// @Failure 422 {object} map[string]string
// @Router /locations [post]
func (h *CatalogHandler) CreateLocation(c *gin.Context) {
	var req reqdto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.catalogCmds.CreateLocation(c.Request.Context(), req.ToInput())
	if err != nil {
		h.respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromLocationView(view))
}

// @Summary Update location
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Param request body reqdto.UpdateLocationRequest true "Fields to update"
// @Success 200 {object} resdto.LocationResponse
// @Failure 404 {object} map[string]string
// @Router /locations/{id} [put]
func (h *CatalogHandler) UpdateLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid location ID format",
		})
		return
	}

	var req reqdto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.catalogCmds.UpdateLocation(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLocationView(view))
}

func (h *CatalogHandler) respondCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrServiceNotAvailable):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Service not found",
		})
	case errors.Is(err, errs.ErrLocationNotAvailable):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Location not found",
		})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
