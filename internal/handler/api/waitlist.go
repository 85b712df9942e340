package api

import (
	"errors"
	"net/http"

	reqdto "bookslot/internal/handler/dto/request"
	resdto "bookslot/internal/handler/dto/response"
	"bookslot/internal/pkg/errs"
	"bookslot/internal/usecase/commands"
	"bookslot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WaitlistHandler struct {
	waitlistCmds commands.WaitlistCommands
	waitlistQrys queries.WaitlistQueries
}

func NewWaitlistHandler(waitlistCmds commands.WaitlistCommands, waitlistQrys queries.WaitlistQueries) *WaitlistHandler {
	return &WaitlistHandler{
		waitlistCmds: waitlistCmds,
		waitlistQrys: waitlistQrys,
	}
}

// @Summary List waitlist entries
// @Description List waitlist entries in promotion order (oldest first)
// @Tags waitlist
// @Produce json
// @Security BearerAuth
// @Param serviceId query string false "Filter by service"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Param notified query bool false "Filter by notified flag"
// @Param cursor query string false "Keyset cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.WaitlistListResponse
// @Router /waitlist [get]
func (h *WaitlistHandler) List(c *gin.Context) {
	var filter queries.WaitlistFilter
	if svcStr := c.Query("serviceId"); svcStr != "" {
		svcID, err := uuid.Parse(svcStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid service ID format",
			})
			return
		}
		filter.ServiceID = &svcID
	}
	if date := c.Query("date"); date != "" {
		filter.Date = &date
	}
	if notifiedStr := c.Query("notified"); notifiedStr != "" {
		notified := notifiedStr == "true"
		filter.Notified = &notified
	}

	cursor, limit := pageParams(c)

	entries, next, err := h.waitlistQrys.List(c.Request.Context(), filter, cursor, limit)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidCursor):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid cursor",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp := resdto.WaitlistListResponse{Entries: make([]*resdto.WaitlistEntryResponse, len(entries))}
	for i, entry := range entries {
		resp.Entries[i] = resdto.FromWaitlistEntryView(entry)
	}
	if next != nil {
		resp.NextCursor = &next.After
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Join waitlist
// @Description Queue for a full date without booking a slot
// @Tags waitlist
// @Accept json
// @Produce json
// @Param request body reqdto.EnqueueWaitlistRequest true "Waitlist request"
// @Success 201 {object} resdto.WaitlistEntryResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /waitlist [post]
func (h *WaitlistHandler) Enqueue(c *gin.Context) {
	var req reqdto.EnqueueWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.waitlistCmds.Enqueue(c.Request.Context(), req.ToInput())
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

	c.JSON(http.StatusCreated, resdto.FromWaitlistEntryView(view))
}

// @Summary Remove waitlist entry
// @Description Remove an entry from the waitlist
// @Tags waitlist
// @Produce json
// @Security BearerAuth
// @Param id path string true "Waitlist entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /waitlist/{id} [delete]
func (h *WaitlistHandler) Remove(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid waitlist entry ID format",
		})
		return
	}

	if err := h.waitlistCmds.Remove(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrWaitlistEntryMissing):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Waitlist entry not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
