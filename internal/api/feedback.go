package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/nutrimentor/backend/internal/models"
	"github.com/pageza/nutrimentor/backend/internal/service"
	"github.com/pageza/nutrimentor/backend/internal/types"
)

// placeholderContent is stored when feedback references a response id the
// cache no longer holds. The record still counts toward like/dislike totals.
const placeholderContent = "Content not found"

// FeedbackHandler resolves a cached response and appends a feedback record
type FeedbackHandler struct {
	store service.IFeedbackStore
	cache service.IResponseCache
}

// NewFeedbackHandler creates a new FeedbackHandler instance
func NewFeedbackHandler(store service.IFeedbackStore, cache service.IResponseCache) *FeedbackHandler {
	return &FeedbackHandler{
		store: store,
		cache: cache,
	}
}

// RegisterRoutes registers the feedback routes
func (h *FeedbackHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/feedback", h.SubmitFeedback)
}

// SubmitFeedback records a like/dislike for a previously returned response
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not logged in"})
		return
	}

	var req types.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	if req.Feedback != models.FeedbackLike && req.Feedback != models.FeedbackDislike {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "feedback must be like or dislike"})
		return
	}

	content, err := h.cache.Take(c.Request.Context(), req.ResponseID)
	if err != nil {
		if !errors.Is(err, service.ErrResponseNotFound) {
			log.Printf("[FeedbackHandler] failed to resolve response %s: %v", req.ResponseID, err)
		}
		content = placeholderContent
	}

	if err := h.store.Append(userID.String(), req.ResponseID, req.Feedback, content); err != nil {
		log.Printf("[FeedbackHandler] failed to store feedback for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to store feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Feedback stored."})
}
