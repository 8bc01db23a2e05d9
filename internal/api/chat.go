package api

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/nutrimentor/backend/internal/service"
)

// ChatHandler runs the query pipeline: feedback summary, prompt composition,
// model call, translation, response caching.
type ChatHandler struct {
	profileService service.IProfileService
	analyzer       service.IPreferenceAnalyzer
	gateway        service.IResponseGateway
	translator     service.ITranslator
	cache          service.IResponseCache
	uploadDir      string
}

// NewChatHandler creates a new ChatHandler instance
func NewChatHandler(
	profileService service.IProfileService,
	analyzer service.IPreferenceAnalyzer,
	gateway service.IResponseGateway,
	translator service.ITranslator,
	cache service.IResponseCache,
	uploadDir string,
) *ChatHandler {
	return &ChatHandler{
		profileService: profileService,
		analyzer:       analyzer,
		gateway:        gateway,
		translator:     translator,
		cache:          cache,
		uploadDir:      uploadDir,
	}
}

// RegisterRoutes registers the chat routes
func (h *ChatHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/chat", h.Chat)
}

// Chat handles a nutrition query: multipart form with user_text, an optional
// food_image and a target_language tag.
func (h *ChatHandler) Chat(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	userText := c.PostForm("user_text")
	targetLanguage := c.DefaultPostForm("target_language", "en-US")

	// The uploaded image lives only for the duration of this request; the
	// cleanup runs whether the pipeline succeeds or not.
	var imagePath string
	defer func() {
		if imagePath != "" {
			if err := os.Remove(imagePath); err != nil && !os.IsNotExist(err) {
				log.Printf("[ChatHandler] failed to remove uploaded image %s: %v", imagePath, err)
			}
		}
	}()

	var imageData []byte
	if file, err := c.FormFile("food_image"); err == nil && file != nil {
		if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store uploaded image"})
			return
		}
		imagePath = filepath.Join(h.uploadDir, fmt.Sprintf("%s.jpg", uuid.New()))
		if err := c.SaveUploadedFile(file, imagePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store uploaded image"})
			return
		}
		imageData, err = os.ReadFile(imagePath)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded image"})
			return
		}
	}

	user, err := h.profileService.GetUser(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[ChatHandler] failed to load user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user profile"})
		return
	}
	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[ChatHandler] failed to load profile for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user profile"})
		return
	}

	// A broken feedback log must not block the query; fall back to an empty
	// summary and keep going.
	summary, err := h.analyzer.Summarize(userID.String())
	if err != nil {
		log.Printf("[ChatHandler] failed to summarize feedback for user %s: %v", userID, err)
	}

	prompt := service.ComposePrompt(userText, user.Name, profile, summary, targetLanguage)
	answer := h.gateway.Ask(c.Request.Context(), prompt, imageData)
	answer = h.translator.Translate(c.Request.Context(), answer, targetLanguage, "")

	// Fallback texts from the gateway are cached like any other response.
	responseID, err := h.cache.Put(c.Request.Context(), answer)
	if err != nil {
		log.Printf("[ChatHandler] failed to cache response for user %s: %v", userID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"response":    answer,
		"response_id": responseID,
	})
}
