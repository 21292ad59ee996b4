package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"dabbaMarket/domain"
	"dabbaMarket/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type MenuService interface {
	GetAllItems(ctx context.Context) ([]domain.MenuItem, error)
	GetItemByID(ctx context.Context, id string) (*domain.MenuItem, error)
	GetProviderItems(ctx context.Context, providerID string) ([]domain.MenuItem, error)
	CreateItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	UpdateItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	SetAvailability(ctx context.Context, id string, available bool) error
	DeleteItem(ctx context.Context, id string) error
}

type MenuHandler struct {
	menuService MenuService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewMenuHandler(menuService MenuService) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
		validator:   validator.New(),
		timeout:     10 * time.Second,
	}
}

type MenuItemRequest struct {
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description"`
	Cuisine      string  `json:"cuisine" validate:"required"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	IsVegetarian bool    `json:"is_vegetarian"`
	IsVegan      bool    `json:"is_vegan"`
	IsGlutenFree bool    `json:"is_gluten_free"`
	Tags         string  `json:"tags"`
	Ingredients  string  `json:"ingredients"`
	City         string  `json:"city"`
	MealTime     string  `json:"meal_time" validate:"omitempty,oneof=breakfast lunch snack dinner"`
}

type AvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}

func (h *MenuHandler) GetAllItems(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.menuService.GetAllItems(ctx)
	if err != nil {
		logger.Error("Failed to find all menu items", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(items))
}

func (h *MenuHandler) GetItemByID(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	item, err := h.menuService.GetItemByID(ctx, id)
	if err != nil {
		if err.Error() == "menu item not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(item))
}

func (h *MenuHandler) GetMyItems(c echo.Context) error {
	providerID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.menuService.GetProviderItems(ctx, providerParam(providerID))
	if err != nil {
		logger.Error("Failed to find provider items", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(items))
}

func (h *MenuHandler) CreateItem(c echo.Context) error {
	providerID := c.Get("user_id").(uint)

	var req MenuItemRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate menu item request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	item := &domain.MenuItem{
		ProviderID:   providerParam(providerID),
		Name:         req.Name,
		Description:  req.Description,
		Cuisine:      req.Cuisine,
		Price:        req.Price,
		IsVegetarian: req.IsVegetarian,
		IsVegan:      req.IsVegan,
		IsGlutenFree: req.IsGlutenFree,
		Tags:         req.Tags,
		Ingredients:  req.Ingredients,
		City:         req.City,
		MealTime:     req.MealTime,
	}

	created, err := h.menuService.CreateItem(ctx, item)
	if err != nil {
		logger.Error("Failed to create menu item", err)
		if err.Error() == "name is required" ||
			err.Error() == "cuisine is required" ||
			err.Error() == "price must be greater than 0" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(created))
}

func (h *MenuHandler) UpdateItem(c echo.Context) error {
	id := c.Param("id")
	providerID := c.Get("user_id").(uint)

	var req MenuItemRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate menu item request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.checkOwnership(ctx, c, id, providerID); err != nil {
		return err
	}

	item := &domain.MenuItem{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		Cuisine:      req.Cuisine,
		Price:        req.Price,
		IsVegetarian: req.IsVegetarian,
		IsVegan:      req.IsVegan,
		IsGlutenFree: req.IsGlutenFree,
		Tags:         req.Tags,
		Ingredients:  req.Ingredients,
		City:         req.City,
		MealTime:     req.MealTime,
	}

	updated, err := h.menuService.UpdateItem(ctx, item)
	if err != nil {
		logger.Error("Failed to update menu item", err)
		if err.Error() == "menu item not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(updated))
}

func (h *MenuHandler) SetAvailability(c echo.Context) error {
	id := c.Param("id")
	providerID := c.Get("user_id").(uint)

	var req AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate availability request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.checkOwnership(ctx, c, id, providerID); err != nil {
		return err
	}

	if err := h.menuService.SetAvailability(ctx, id, *req.IsAvailable); err != nil {
		logger.Error("Failed to set availability", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Availability updated"))
}

func (h *MenuHandler) DeleteItem(c echo.Context) error {
	id := c.Param("id")
	providerID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.checkOwnership(ctx, c, id, providerID); err != nil {
		return err
	}

	if err := h.menuService.DeleteItem(ctx, id); err != nil {
		logger.Error("Failed to delete menu item", err)
		if err.Error() == "menu item not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Menu item deleted"))
}

// checkOwnership rejects writes against another provider's item. Admins
// bypass the check.
func (h *MenuHandler) checkOwnership(ctx context.Context, c echo.Context, itemID string, providerID uint) error {
	if role, ok := c.Get("role").(string); ok && role == "admin" {
		return nil
	}

	item, err := h.menuService.GetItemByID(ctx, itemID)
	if err != nil {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "menu item not found"})
	}
	if item.ProviderID != providerParam(providerID) {
		return c.JSON(http.StatusForbidden, ResponseError{Message: "you can only manage your own menu items"})
	}
	return nil
}

func providerParam(userID uint) string {
	return "PRV-" + strconv.FormatUint(uint64(userID), 10)
}
