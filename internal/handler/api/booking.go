package api

import (
	"errors"
	"net/http"

	reqdto "recruitflow/internal/handler/dto/request"
	resdto "recruitflow/internal/handler/dto/response"
	"recruitflow/internal/handler/middleware"
	"recruitflow/internal/pkg/errs"
	"recruitflow/internal/usecase/commands"
	"recruitflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Claim slot
// @Description Book an interview slot for the authenticated candidate
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ClaimSlotRequest true "Slot to claim"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) ClaimSlot(c *gin.Context) {
	candidateID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ClaimSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.ClaimSlot(c.Request.Context(), candidateID, req.SlotID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		case errors.Is(err, errs.ErrSlotClosed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot is closed",
			})
		case errors.Is(err, errs.ErrSlotFull):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot just filled up",
			})
		case errors.Is(err, errs.ErrSlotInPast):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot has already started",
			})
		case errors.Is(err, errs.ErrAlreadyBooked):
			c.JSON(http.StatusConflict, gin.H{
				"error": "You already have a booking",
			})
		case errors.Is(err, errs.ErrTransactionFailed):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Booking could not be completed, please retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get own booking
// @Description Get the authenticated candidate's booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/me [get]
func (h *BookingHandler) GetOwnBooking(c *gin.Context) {
	candidateID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.bookingQueries.GetOwn(c.Request.Context(), candidateID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoBookingFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No booking found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel own booking
// @Description Cancel the authenticated candidate's booking, outside the blackout window
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /bookings/me [delete]
func (h *BookingHandler) CancelOwnBooking(c *gin.Context) {
	candidateID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	err := h.bookingCommands.CancelOwnBooking(c.Request.Context(), candidateID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoBookingFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No booking found",
			})
		case errors.Is(err, errs.ErrCancellationWindowClosed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cancellation window has closed",
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
