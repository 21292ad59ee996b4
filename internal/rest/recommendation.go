package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"dabbaMarket/business/recommend"
	"dabbaMarket/domain"
	"dabbaMarket/pkg/logger"
	"dabbaMarket/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationEngine interface {
		GetRecommendations(ctx context.Context, userID uint, profile domain.PreferenceProfile, orderHistory []domain.Order, city, mealTime string, limit int) []domain.Recommendation
		ExploreRecommendations(ctx context.Context, userID uint, profile domain.PreferenceProfile, limit int) []domain.Recommendation
		GetSimilarItems(ctx context.Context, mealID string, limit int) []domain.Recommendation
		GetPopularItems(ctx context.Context, city string, limit int) []domain.Recommendation
		GetTrendingItems(ctx context.Context, city string, limit int) []domain.Recommendation
		RecordInteraction(ctx context.Context, userID uint, mealID string, liked *bool, rating *float64, reqCtx map[string]any)
	}

	PreferenceProvider interface {
		GetPreferences(ctx context.Context, userID uint) (domain.PreferenceProfile, error)
	}

	OrderHistoryProvider interface {
		GetRecentOrders(ctx context.Context, userID uint, limit int) ([]domain.Order, error)
	}

	RegionalNoteProvider interface {
		RegionalNote(city, language string) string
	}

	RecommendationHandler struct {
		engine      RecommendationEngine
		preferences PreferenceProvider
		orders      OrderHistoryProvider
		localizer   RegionalNoteProvider
		validator   *validator.Validate
		defaultCity string
		timeout     time.Duration
	}

	FeedbackRequest struct {
		MealID  string         `json:"meal_id" validate:"required"`
		Liked   *bool          `json:"liked"`
		Rating  *float64       `json:"rating" validate:"omitempty,gte=1,lte=5"`
		Context map[string]any `json:"context"`
	}
)

func NewRecommendationHandler(
	engine RecommendationEngine,
	preferences PreferenceProvider,
	orders OrderHistoryProvider,
	localizer RegionalNoteProvider,
	defaultCity string,
) *RecommendationHandler {
	return &RecommendationHandler{
		engine:      engine,
		preferences: preferences,
		orders:      orders,
		localizer:   localizer,
		validator:   validator.New(),
		defaultCity: defaultCity,
		timeout:     10 * time.Second,
	}
}

// GetRecommendations serves the personalized path. Preference and order
// history lookups fail soft: a missing profile degrades to popularity
// ranking instead of a 500.
func (h *RecommendationHandler) GetRecommendations(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	profile, err := h.preferences.GetPreferences(ctx, userID)
	if err != nil {
		logger.Warn("failed to load preferences, using empty profile", "user_id", userID, "error", err)
		profile = domain.PreferenceProfile{Language: "en"}
	}

	orderHistory, err := h.orders.GetRecentOrders(ctx, userID, 10)
	if err != nil {
		logger.Warn("failed to load order history", "user_id", userID, "error", err)
		orderHistory = nil
	}

	city := c.QueryParam("city")
	if city == "" {
		city = h.defaultCity
	}
	mealTime := c.QueryParam("time")
	if mealTime == "" {
		mealTime = recommend.CurrentMealTime(time.Now())
	}
	limit := queryLimit(c, 10)

	logger.Info("generating recommendations", "user_id", userID, "city", city, "meal_time", mealTime)

	start := time.Now()
	recommendations := h.engine.GetRecommendations(ctx, userID, profile, orderHistory, city, mealTime, limit)
	metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	metrics.RecommendRequests.Inc()

	note := h.localizer.RegionalNote(city, profile.Language)
	for i := range recommendations {
		recommendations[i].RegionalNote = note
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"recommendations": recommendations,
		"count":           len(recommendations),
		"context": map[string]interface{}{
			"city":         city,
			"time_of_day":  mealTime,
			"personalized": true,
		},
	})
}

func (h *RecommendationHandler) ExploreRecommendations(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	profile, err := h.preferences.GetPreferences(ctx, userID)
	if err != nil {
		logger.Warn("failed to load preferences, using empty profile", "user_id", userID, "error", err)
		profile = domain.PreferenceProfile{}
	}

	recommendations := h.engine.ExploreRecommendations(ctx, userID, profile, queryLimit(c, 5))

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recommendations))
}

func (h *RecommendationHandler) GetSimilarItems(c echo.Context) error {
	mealID := c.Param("meal_id")
	if mealID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "meal id is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recommendations := h.engine.GetSimilarItems(ctx, mealID, queryLimit(c, 5))

	return c.JSON(http.StatusOK, map[string]interface{}{
		"meal_id":         mealID,
		"recommendations": recommendations,
		"count":           len(recommendations),
	})
}

func (h *RecommendationHandler) GetPopularItems(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	city := c.QueryParam("city")
	if city == "" {
		city = h.defaultCity
	}

	recommendations := h.engine.GetPopularItems(ctx, city, queryLimit(c, 10))

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recommendations))
}

func (h *RecommendationHandler) GetTrendingItems(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	city := c.QueryParam("city")
	if city == "" {
		city = h.defaultCity
	}

	recommendations := h.engine.GetTrendingItems(ctx, city, queryLimit(c, 10))

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recommendations))
}

// SubmitFeedback records like/dislike/rating feedback, the learning signal
// for the exploration policy.
func (h *RecommendationHandler) SubmitFeedback(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid feedback request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate feedback request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	h.engine.RecordInteraction(ctx, userID, req.MealID, req.Liked, req.Rating, req.Context)

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Feedback recorded. Thank you for helping us improve!"))
}

func queryLimit(c echo.Context, fallback int) int {
	raw := c.QueryParam("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}
