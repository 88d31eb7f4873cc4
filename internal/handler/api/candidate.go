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
	"github.com/google/uuid"
)

type CandidateHandler struct {
	candidateCommands commands.CandidateCommands
	userQueries       queries.UserQueries
}

func NewCandidateHandler(candidateCommands commands.CandidateCommands, userQueries queries.UserQueries) *CandidateHandler {
	return &CandidateHandler{
		candidateCommands: candidateCommands,
		userQueries:       userQueries,
	}
}

// @Summary Register candidate
// @Description Create a candidate account with an application, emails a temporary password
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterCandidateRequest true "Candidate details"
// @Success 201 {object} resdto.RegisterCandidateResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/candidates [post]
func (h *CandidateHandler) RegisterCandidate(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.RegisterCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.candidateCommands.RegisterCandidate(c.Request.Context(), adminID, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email already registered",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid candidate details",
			})
		case errors.Is(err, errs.ErrTransactionFailed):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Candidate could not be registered, please retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.RegisterCandidateResponse{
		UserID:        result.UserID,
		ApplicationID: result.ApplicationID,
	})
}

// @Summary List candidates
// @Description List every candidate with their application
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CandidateResponse
// @Router /admin/candidates [get]
func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	views, err := h.userQueries.ListCandidates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.CandidateResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromCandidateView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Set application status
// @Description Update an application's lifecycle status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body reqdto.SetApplicationStatusRequest true "New status"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/applications/{id}/status [patch]
func (h *CandidateHandler) SetApplicationStatus(c *gin.Context) {
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
			"error": "Invalid application ID format",
		})
		return
	}

	var req reqdto.SetApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.candidateCommands.SetApplicationStatus(c.Request.Context(), adminID, id, req.Status); err != nil {
		switch {
		case errors.Is(err, errs.ErrCandidateNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Application not found",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid application status",
			})
		case errors.Is(err, errs.ErrTransactionFailed):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Status could not be updated, please retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Application status updated",
	})
}
