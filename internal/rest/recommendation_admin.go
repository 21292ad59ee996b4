package rest

import (
	"context"
	"net/http"
	"time"

	"dabbaMarket/business/recommend"
	"dabbaMarket/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationAdmin interface {
		ArmStatistics(ctx context.Context) (map[string]recommend.ArmStats, error)
		Config() recommend.Config
		Catalog() *recommend.Snapshot
	}

	RecommendationAdminHandler struct {
		engine  RecommendationAdmin
		timeout time.Duration
	}
)

func NewRecommendationAdminHandler(engine RecommendationAdmin) *RecommendationAdminHandler {
	return &RecommendationAdminHandler{
		engine:  engine,
		timeout: 10 * time.Second,
	}
}

// GetArmStatistics exposes the bandit's per-meal observation counts and
// mean rewards for operational inspection.
func (h *RecommendationAdminHandler) GetArmStatistics(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stats, err := h.engine.ArmStatistics(ctx)
	if err != nil {
		logger.Error("Failed to read arm statistics", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	type armView struct {
		Count     int64   `json:"count"`
		RewardSum float64 `json:"reward_sum"`
		Mean      float64 `json:"mean"`
	}
	view := make(map[string]armView, len(stats))
	for mealID, arm := range stats {
		view[mealID] = armView{Count: arm.Count, RewardSum: arm.RewardSum, Mean: arm.Mean()}
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(view))
}

func (h *RecommendationAdminHandler) GetConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.engine.Config()))
}

// GetCatalogStatus reports which snapshot is being served, so operators can
// tell store data from the built-in seed fallback.
func (h *RecommendationAdminHandler) GetCatalogStatus(c echo.Context) error {
	snap := h.engine.Catalog()

	return c.JSON(http.StatusOK, map[string]interface{}{
		"source":     snap.Source,
		"item_count": len(snap.Items),
		"loaded_at":  snap.LoadedAt,
	})
}
