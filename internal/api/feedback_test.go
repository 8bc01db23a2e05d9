package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/nutrimentor/backend/internal/models"
	"github.com/pageza/nutrimentor/backend/internal/service"
	"github.com/pageza/nutrimentor/backend/internal/types"
)

func TestFeedbackHandler_SubmitFeedback(t *testing.T) {
	userID := uuid.New()

	newHandler := func(t *testing.T) (*FeedbackHandler, service.IFeedbackStore, service.IResponseCache) {
		t.Helper()
		store := service.NewCSVFeedbackStore(t.TempDir())
		cache := service.NewMemoryResponseCache()
		return NewFeedbackHandler(store, cache), store, cache
	}

	t.Run("stores the cached content under the feedback", func(t *testing.T) {
		handler, store, cache := newHandler(t)
		router := testRouter(userID, handler.RegisterRoutes)

		responseID, err := cache.Put(context.Background(), "Grilled salmon with quinoa")
		require.NoError(t, err)

		w := performJSON(t, router, http.MethodPost, "/api/v1/feedback", types.FeedbackRequest{
			ResponseID: responseID,
			Feedback:   models.FeedbackLike,
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "success", decodeBody(t, w)["status"])

		records, err := store.Load(userID.String())
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Grilled salmon with quinoa", records[0].Content)
		assert.Equal(t, models.FeedbackLike, records[0].Kind)
		assert.Equal(t, responseID, records[0].ResponseID)
	})

	t.Run("consumes the cached response", func(t *testing.T) {
		handler, _, cache := newHandler(t)
		router := testRouter(userID, handler.RegisterRoutes)

		responseID, err := cache.Put(context.Background(), "one-shot")
		require.NoError(t, err)

		w := performJSON(t, router, http.MethodPost, "/api/v1/feedback", types.FeedbackRequest{
			ResponseID: responseID,
			Feedback:   models.FeedbackLike,
		})
		require.Equal(t, http.StatusOK, w.Code)

		_, err = cache.Take(context.Background(), responseID)
		assert.ErrorIs(t, err, service.ErrResponseNotFound)
	})

	t.Run("unknown response id stores the placeholder", func(t *testing.T) {
		handler, store, _ := newHandler(t)
		router := testRouter(userID, handler.RegisterRoutes)

		w := performJSON(t, router, http.MethodPost, "/api/v1/feedback", types.FeedbackRequest{
			ResponseID: "expired-or-bogus",
			Feedback:   models.FeedbackDislike,
		})

		require.Equal(t, http.StatusOK, w.Code)
		records, err := store.Load(userID.String())
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, placeholderContent, records[0].Content)
	})

	t.Run("rejects an unknown feedback kind", func(t *testing.T) {
		handler, store, _ := newHandler(t)
		router := testRouter(userID, handler.RegisterRoutes)

		w := performJSON(t, router, http.MethodPost, "/api/v1/feedback", types.FeedbackRequest{
			ResponseID: "whatever",
			Feedback:   "meh",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		records, err := store.Load(userID.String())
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		handler, _, _ := newHandler(t)
		router := testRouter(userID, handler.RegisterRoutes)

		w := performJSON(t, router, http.MethodPost, "/api/v1/feedback", map[string]int{"response_id": 7})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("requires auth context", func(t *testing.T) {
		handler, _, _ := newHandler(t)
		router := testRouter(uuid.Nil, handler.RegisterRoutes)

		w := performJSON(t, router, http.MethodPost, "/api/v1/feedback", types.FeedbackRequest{
			ResponseID: "id",
			Feedback:   models.FeedbackLike,
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
