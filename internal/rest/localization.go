package rest

import (
	"net/http"
	"time"

	"dabbaMarket/business/recommend"
	"dabbaMarket/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	LocalizationService interface {
		GetLanguages() []domain.Language
		GetRegionInfo(city string) domain.Region
		GetFestiveSpecial(regionLanguage string, now time.Time) *domain.FestiveSpecial
		GetLocalRecommendations(city, timeOfDay string) []domain.LocalDish
		GetCities() []string
		GetAreas(city string) []string
	}

	LocalizationHandler struct {
		localizationService LocalizationService
		defaultCity         string
	}
)

func NewLocalizationHandler(localizationService LocalizationService, defaultCity string) *LocalizationHandler {
	return &LocalizationHandler{
		localizationService: localizationService,
		defaultCity:         defaultCity,
	}
}

func (h *LocalizationHandler) GetLanguages(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.localizationService.GetLanguages()))
}

func (h *LocalizationHandler) GetCities(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.localizationService.GetCities()))
}

func (h *LocalizationHandler) GetCityAreas(c echo.Context) error {
	city := c.Param("city")
	if city == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "city is required"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"city":  city,
		"areas": h.localizationService.GetAreas(city),
	})
}

// GetRegionInfo returns the region profile for a city, plus the festival
// running this month if there is one.
func (h *LocalizationHandler) GetRegionInfo(c echo.Context) error {
	city := c.Param("city")
	if city == "" {
		city = h.defaultCity
	}

	region := h.localizationService.GetRegionInfo(city)
	special := h.localizationService.GetFestiveSpecial(region.Language, time.Now())

	return c.JSON(http.StatusOK, map[string]interface{}{
		"city":            city,
		"region":          region,
		"festive_special": special,
	})
}

// GetLocalRecommendations serves the regional-specialty list. Unlike the
// personalized path this one needs no authentication and no profile.
func (h *LocalizationHandler) GetLocalRecommendations(c echo.Context) error {
	city := c.QueryParam("city")
	if city == "" {
		city = h.defaultCity
	}
	timeOfDay := c.QueryParam("time")
	if timeOfDay == "" {
		timeOfDay = recommend.CurrentMealTime(time.Now())
	}

	dishes := h.localizationService.GetLocalRecommendations(city, timeOfDay)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"city":            city,
		"time_of_day":     timeOfDay,
		"recommendations": dishes,
		"count":           len(dishes),
	})
}
