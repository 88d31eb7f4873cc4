package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "recruitflow/internal/handler/dto/request"
	resdto "recruitflow/internal/handler/dto/response"
	"recruitflow/internal/handler/middleware"
	"recruitflow/internal/pkg/errs"
	"recruitflow/internal/usecase/commands"
	"recruitflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SlotHandler struct {
	slotCommands    commands.SlotCommands
	bookingCommands commands.BookingCommands
	slotQueries     queries.SlotQueries
}

func NewSlotHandler(slotCommands commands.SlotCommands, bookingCommands commands.BookingCommands, slotQueries queries.SlotQueries) *SlotHandler {
	return &SlotHandler{
		slotCommands:    slotCommands,
		bookingCommands: bookingCommands,
		slotQueries:     slotQueries,
	}
}

// @Summary List available slots
// @Description List open future slots with spare capacity
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SlotResponse
// @Router /slots [get]
func (h *SlotHandler) ListAvailable(c *gin.Context) {
	views, err := h.slotQueries.ListAvailable(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}

// @Summary Get slot
// @Description Get one slot by ID
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 200 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /slots/{id} [get]
func (h *SlotHandler) GetSlot(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID format",
		})
		return
	}

	view, err := h.slotQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}

// @Summary Create slot
// @Description Create one interview slot
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSlotRequest true "Slot definition"
// @Success 201 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/slots [post]
func (h *SlotHandler) CreateSlot(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.slotCommands.CreateSlot(c.Request.Context(), adminID, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid slot definition",
			})
		case errors.Is(err, errs.ErrTransactionFailed):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Slot could not be created, please retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSlotView(view))
}

// @Summary Generate slots
// @Description Carve a working window into equal slots, skipping occupied sub-windows
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GenerateSlotsRequest true "Generation window"
// @Success 201 {object} resdto.GenerateSlotsResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/slots/generate [post]
func (h *SlotHandler) GenerateSlots(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.GenerateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.slotCommands.GenerateSlots(c.Request.Context(), adminID, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid generation window",
			})
		case errors.Is(err, errs.ErrTransactionFailed):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Slots could not be generated, please retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.GenerateSlotsResponse{
		Created: result.Created,
		Skipped: result.Skipped,
	})
}

// @Summary List all slots
// @Description List every slot, optionally for one day (date=YYYY-MM-DD)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param date query string false "Calendar day filter"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Router /admin/slots [get]
func (h *SlotHandler) ListAll(c *gin.Context) {
	var day *time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		day = &parsed
	}

	views, err := h.slotQueries.ListAll(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}

// @Summary Slot roster
// @Description List the bookings on one slot
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 200 {array} resdto.SlotRosterResponse
// @Failure 404 {object} map[string]string
// @Router /admin/slots/{id}/bookings [get]
func (h *SlotHandler) Roster(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID format",
		})
		return
	}

	items, err := h.slotQueries.Roster(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]*resdto.SlotRosterResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromSlotRosterItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Open or close slot
// @Description Set the slot's open flag
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Param request body reqdto.SetSlotOpenRequest true "Open flag"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/slots/{id} [patch]
func (h *SlotHandler) SetOpen(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID format",
		})
		return
	}

	var req reqdto.SetSlotOpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.slotCommands.SetOpen(c.Request.Context(), adminID, id, *req.IsOpen); err != nil {
		switch {
		case errors.Is(err, errs.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		case errors.Is(err, errs.ErrTransactionFailed):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Slot could not be updated, please retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Slot updated",
	})
}

// @Summary Delete slot
// @Description Delete a slot that has no bookings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/slots/{id} [delete]
func (h *SlotHandler) DeleteSlot(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID format",
		})
		return
	}

	if err := h.slotCommands.DeleteSlot(c.Request.Context(), adminID, id); err != nil {
		switch {
		case errors.Is(err, errs.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		case errors.Is(err, errs.ErrSlotHasBookings):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot has bookings and cannot be deleted",
			})
		case errors.Is(err, errs.ErrTransactionFailed):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Slot could not be deleted, please retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Slot deleted",
	})
}

// @Summary Cancel booking
// @Description Cancel any booking by ID, bypassing the blackout window
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/bookings/{id} [delete]
func (h *SlotHandler) AdminCancelBooking(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingCommands.AdminCancelBooking(c.Request.Context(), adminID, id); err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound), errors.Is(err, errs.ErrNoBookingFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrTransactionFailed):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Cancellation could not be completed, please retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking canceled",
	})
}
