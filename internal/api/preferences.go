package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/nutrimentor/backend/internal/service"
	"github.com/pageza/nutrimentor/backend/internal/types"
)

// PreferencesHandler exposes the derived preference summary and the language
// preference update.
type PreferencesHandler struct {
	analyzer       service.IPreferenceAnalyzer
	profileService service.IProfileService
}

// NewPreferencesHandler creates a new PreferencesHandler instance
func NewPreferencesHandler(analyzer service.IPreferenceAnalyzer, profileService service.IProfileService) *PreferencesHandler {
	return &PreferencesHandler{
		analyzer:       analyzer,
		profileService: profileService,
	}
}

// RegisterRoutes registers the preference routes
func (h *PreferencesHandler) RegisterRoutes(router *gin.RouterGroup) {
	prefs := router.Group("/preferences")
	{
		prefs.GET("", h.GetPreferences)
		prefs.POST("/language", h.UpdateLanguage)
	}
}

type preferencesResponse struct {
	types.PreferenceSummary
	PreferredLanguage string `json:"preferred_language"`
}

// GetPreferences returns the preference summary derived from the user's
// feedback log plus their preferred response language.
func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not logged in"})
		return
	}

	summary, err := h.analyzer.Summarize(userID.String())
	if err != nil {
		log.Printf("[PreferencesHandler] failed to summarize feedback for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to load preferences"})
		return
	}

	language := "en-US"
	if profile, err := h.profileService.GetProfile(c.Request.Context(), userID); err == nil {
		language = profile.PreferredLanguage
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"preferences": preferencesResponse{
			PreferenceSummary: summary,
			PreferredLanguage: language,
		},
	})
}

// UpdateLanguage changes the user's preferred response language
func (h *PreferencesHandler) UpdateLanguage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not logged in"})
		return
	}

	var req types.UpdateLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Language == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "No language provided"})
		return
	}

	if err := h.profileService.UpdateLanguage(c.Request.Context(), userID, req.Language); err != nil {
		log.Printf("[PreferencesHandler] failed to update language for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to update language preference"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Language preference updated."})
}
