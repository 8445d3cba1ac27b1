package handlers

import (
	"net/http"

	settingsRepo "medexam/database/repository/settings"
	"medexam/models"
	"medexam/utils"

	"github.com/gin-gonic/gin"
)

// SettingsHandler administers the availability window settings.
type SettingsHandler struct {
	Repo     settingsRepo.SettingsRepository
	Defaults models.AvailabilitySettings
}

// NewSettingsHandler constructs a SettingsHandler.
func NewSettingsHandler(repo settingsRepo.SettingsRepository, defaults models.AvailabilitySettings) *SettingsHandler {
	return &SettingsHandler{Repo: repo, Defaults: defaults}
}

// GetSettings returns the stored settings, or the configured fallback
// when none are stored yet.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	stored, err := h.Repo.Get(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load settings", err.Error())
		return
	}
	settings := h.Defaults
	source := "default"
	if stored != nil {
		settings = *stored
		source = "stored"
	}
	c.JSON(http.StatusOK, gin.H{
		"settings":            settings,
		"source":              source,
		"startOfWorkingClock": utils.MinutesToClock(settings.StartOfWorkingMinutesUTC),
	})
}

// PutSettings validates and stores new availability settings. The
// working-day start may be given as raw minutes or as an "HH:MM"
// clock string; the clock form wins when both are present.
func (h *SettingsHandler) PutSettings(c *gin.Context) {
	var input struct {
		models.AvailabilitySettings
		StartOfWorkingClock string `json:"startOfWorkingClock"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid settings", err.Error())
		return
	}
	settings := input.AvailabilitySettings
	if input.StartOfWorkingClock != "" {
		minutes, err := utils.ClockToMinutes(input.StartOfWorkingClock)
		if err != nil {
			utils.JSONError(c, http.StatusUnprocessableEntity, "invalid working-day start", err.Error())
			return
		}
		settings.StartOfWorkingMinutesUTC = minutes
	}
	if err := settings.Validate(); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "settings failed validation", err.Error())
		return
	}
	if err := h.Repo.Put(c.Request.Context(), settings); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to store settings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
