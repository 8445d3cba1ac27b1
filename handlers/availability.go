package handlers

import (
	"errors"
	"net/http"
	"time"

	"medexam/models"
	"medexam/services/availability"
	"medexam/services/session"
	"medexam/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the slot-picker flow over HTTP.
type AvailabilityHandler struct {
	Sessions session.SessionService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(sessions session.SessionService) *AvailabilityHandler {
	return &AvailabilityHandler{Sessions: sessions}
}

// StartSession computes a fresh availability grid and opens a picker
// session over it.
func (h *AvailabilityHandler) StartSession(c *gin.Context) {
	var input struct {
		ExamID           string `json:"examId" binding:"required"`
		ClaimantID       string `json:"claimantId"`
		StartDate        string `json:"startDate"`
		ExcludeBookingID string `json:"excludeBookingId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	now := time.Now().UTC()
	startDate := now
	if input.StartDate != "" {
		parsed, err := utils.ParseDate(input.StartDate)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid startDate", err.Error())
			return
		}
		startDate = parsed
	}

	sess, err := h.Sessions.Start(c.Request.Context(), input.ExamID, input.ClaimantID, startDate, input.ExcludeBookingID, now)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(sess))
}

// GetSession returns the current picker state.
func (h *AvailabilityHandler) GetSession(c *gin.Context) {
	sess, err := h.Sessions.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "session not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, sessionView(sess))
}

// ApplyAction reduces one picker action (selectDay, selectSlot, next,
// previous, clear) onto the session.
func (h *AvailabilityHandler) ApplyAction(c *gin.Context) {
	var action models.SessionAction
	if err := c.ShouldBindJSON(&action); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid action", err.Error())
		return
	}

	sess, err := h.Sessions.Apply(c.Request.Context(), c.Param("sessionID"), action)
	if err != nil {
		if errors.Is(err, session.ErrSessionCommitted) {
			utils.JSONError(c, http.StatusConflict, "session already committed", err.Error())
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "failed to apply action", err.Error())
		return
	}
	c.JSON(http.StatusOK, sessionView(sess))
}

// CommitSession finalizes the selected appointment and hands it to the
// booking collaborator. Repeating a commit returns 409.
func (h *AvailabilityHandler) CommitSession(c *gin.Context) {
	var input struct {
		ExaminerID string `json:"examinerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Sessions.Commit(c.Request.Context(), c.Param("sessionID"), input.ExaminerID)
	if err != nil {
		if errors.Is(err, session.ErrSessionCommitted) {
			utils.JSONError(c, http.StatusConflict, "session already committed", err.Error())
			return
		}
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to commit selection", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// CancelSession discards the picker session; nothing was persisted.
func (h *AvailabilityHandler) CancelSession(c *gin.Context) {
	if err := h.Sessions.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

// sessionView is the render surface: full result plus the visible
// pagination window and selection state.
func sessionView(sess *models.PickerSession) gin.H {
	return gin.H{
		"session":    sess,
		"daysToShow": sess.DaysToShow(),
	}
}

func respondAvailabilityError(c *gin.Context, err error) {
	switch {
	case availability.IsOwnershipError(err):
		utils.JSONError(c, http.StatusForbidden, "examination not accessible", err.Error())
	case availability.IsConfigurationError(err):
		utils.JSONError(c, http.StatusUnprocessableEntity, "availability settings invalid", err.Error())
	case availability.IsUpstreamFetchError(err):
		// Distinct error panel on the client, never a silent empty grid.
		utils.JSONError(c, http.StatusBadGateway, "failed to load scheduling data", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
	}
}
