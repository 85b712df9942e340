package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "bookslot/internal/handler/dto/request"
	resdto "bookslot/internal/handler/dto/response"
	"bookslot/internal/handler/middleware"
	"bookslot/internal/pkg/errs"
	"bookslot/internal/usecase/commands"
	"bookslot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	appointmentCmds commands.AppointmentCommands
	appointmentQrys queries.AppointmentQueries
}

func NewAppointmentHandler(appointmentCmds commands.AppointmentCommands, appointmentQrys queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentCmds: appointmentCmds,
		appointmentQrys: appointmentQrys,
	}
}

// @Summary Create appointment
// @Description Book a time slot, or join the waitlist when the slot is full
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAppointmentRequest true "Appointment request"
// @Success 201 {object} resdto.AppointmentEnvelope
// @Success 202 {object} resdto.QueuedResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	// Guests book without a token; authenticated callers get loyalty applied.
	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	result, err := h.appointmentCmds.Create(c.Request.Context(), req.ToInput(userID))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrServiceNotAvailable):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Selected service is not available",
			})
		case errors.Is(err, errs.ErrLocationNotAvailable):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Selected location is not available",
			})
		case errors.Is(err, errs.ErrAppointmentInPast):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cannot book an appointment in the past",
			})
		case errors.Is(err, errs.ErrSlotConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Selected time slot is no longer available",
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
		return
	}

	if result.Queued {
		resp := resdto.QueuedResponse{Message: result.Message}
		if result.WaitlistEntry != nil {
			resp.WaitlistEntry = resdto.FromWaitlistEntryView(result.WaitlistEntry)
		}
		c.JSON(http.StatusAccepted, resp)
		return
	}

	c.JSON(http.StatusCreated, resdto.AppointmentEnvelope{
		Appointment: resdto.FromAppointmentView(result.Appointment),
	})
}

// @Summary Get appointment
// @Description Get appointment by ID
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentEnvelope
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	actorID, actorRole, ok := actor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.appointmentQrys.GetByID(c.Request.Context(), id, actorID, actorRole)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAppointmentMissing):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
		case errors.Is(err, errs.ErrAppointmentAccess):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AppointmentEnvelope{Appointment: resdto.FromAppointmentView(view)})
}

// @Summary List appointments
// @Description List appointments; non-staff callers only see their own
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Param locationId query string false "Filter by location"
// @Param status query string false "Filter by status"
// @Param cursor query string false "Keyset cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.AppointmentListResponse
// @Router /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	actorID, actorRole, ok := actor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var filter queries.AppointmentFilter
	if date := c.Query("date"); date != "" {
		filter.Date = &date
	}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if locStr := c.Query("locationId"); locStr != "" {
		locID, err := uuid.Parse(locStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid location ID format",
			})
			return
		}
		filter.LocationID = &locID
	}

	cursor, limit := pageParams(c)

	items, next, err := h.appointmentQrys.List(c.Request.Context(), filter, actorID, actorRole, cursor, limit)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidCursor):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid cursor",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Date must be in YYYY-MM-DD format",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp := resdto.AppointmentListResponse{
		Appointments: make([]*resdto.AppointmentListItemResponse, len(items)),
	}
	for i, item := range items {
		resp.Appointments[i] = resdto.FromAppointmentListItem(item)
	}
	if next != nil {
		resp.NextCursor = &next.After
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get booked slots
// @Description Public occupancy projection for a date, without customer data
// @Tags appointments
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param locationId query string false "Filter by location"
// @Success 200 {object} resdto.BookedSlotsResponse
// @Failure 400 {object} map[string]string
// @Router /appointments/slots [get]
func (h *AppointmentHandler) BookedSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": `Query parameter "date" is required`,
		})
		return
	}

	var locationID *uuid.UUID
	if locStr := c.Query("locationId"); locStr != "" {
		locID, err := uuid.Parse(locStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid location ID format",
			})
			return
		}
		locationID = &locID
	}

	slots, err := h.appointmentQrys.BookedSlots(c.Request.Context(), date, locationID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Date must be in YYYY-MM-DD format",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp := resdto.BookedSlotsResponse{Slots: make([]*resdto.BookedSlotResponse, len(slots))}
	for i, slot := range slots {
		resp.Slots[i] = resdto.FromBookedSlotView(slot)
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update appointment
// @Description Patch appointment fields; rescheduling re-checks conflicts
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.UpdateAppointmentRequest true "Fields to update"
// @Success 200 {object} resdto.AppointmentEnvelope
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	actorID, actorRole, ok := actor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.appointmentCmds.Update(c.Request.Context(), id, req.ToInput(), actorID, actorRole)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAppointmentMissing):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
		case errors.Is(err, errs.ErrAppointmentAccess):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied",
			})
		case errors.Is(err, errs.ErrServiceNotAvailable):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Selected service is not available",
			})
		case errors.Is(err, errs.ErrLocationNotAvailable):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Selected location is not available",
			})
		case errors.Is(err, errs.ErrAppointmentInPast):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cannot move an appointment into the past",
			})
		case errors.Is(err, errs.ErrSlotConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Selected time slot is no longer available",
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
		return
	}

	c.JSON(http.StatusOK, resdto.AppointmentEnvelope{Appointment: resdto.FromAppointmentView(view)})
}

// @Summary Delete appointment
// @Description Hard-delete an appointment and promote the next waitlist entry
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.DeleteAppointmentResponse
// @Failure 404 {object} map[string]string
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	actorID, actorRole, ok := actor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result, err := h.appointmentCmds.Delete(c.Request.Context(), id, actorID, actorRole)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAppointmentMissing):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
		case errors.Is(err, errs.ErrAppointmentAccess):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp := resdto.DeleteAppointmentResponse{Deleted: true}
	if result.PromotedEntry != nil {
		resp.PromotedEntry = resdto.FromWaitlistEntryView(result.PromotedEntry)
	}

	c.JSON(http.StatusOK, resp)
}

func actor(c *gin.Context) (uuid.UUID, string, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, "", false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return uuid.Nil, "", false
	}
	return id, role, true
}

func pageParams(c *gin.Context) (*queries.Cursor, int) {
	var cursor *queries.Cursor
	if after := c.Query("cursor"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}
	return cursor, limit
}
