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

type (
	OrdersHandler struct {
		ordersService OrdersService
		validate      *validator.Validate
		timeout       time.Duration
	}

	OrdersService interface {
		CreateOrder(ctx context.Context, order *domain.Order) (domain.Order, error)
		GetOrder(ctx context.Context, id uint) (domain.Order, error)
		GetUserOrders(ctx context.Context, userID uint) ([]domain.Order, error)
		GetRecentOrders(ctx context.Context, userID uint, limit int) ([]domain.Order, error)
		UpdateOrderStatus(ctx context.Context, id uint, status string) error
	}

	OrderInput struct {
		MealID       string `json:"meal_id" validate:"required"`
		Quantity     int    `json:"quantity" validate:"required,gt=0"`
		DeliveryCity string `json:"delivery_city"`
		MealTime     string `json:"meal_time" validate:"omitempty,oneof=breakfast lunch snack dinner"`
	}

	OrderStatusInput struct {
		Status string `json:"status" validate:"required,oneof=CONFIRMED DELIVERED CANCELLED"`
	}
)

func NewOrdersHandler(ordersService OrdersService) *OrdersHandler {
	return &OrdersHandler{
		ordersService: ordersService,
		validate:      validator.New(),
		timeout:       10 * time.Second,
	}
}

func (h *OrdersHandler) CreateOrder(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	var req OrderInput
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&req); err != nil {
		logger.Error("Failed to validate order request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.CreateOrder(ctx, &domain.Order{
		UserID:       userID,
		MealID:       req.MealID,
		Quantity:     req.Quantity,
		DeliveryCity: req.DeliveryCity,
		MealTime:     req.MealTime,
	})
	if err != nil {
		logger.Error("Failed to create order", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(order))
}

func (h *OrdersHandler) GetMyOrders(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	orders, err := h.ordersService.GetUserOrders(ctx, userID)
	if err != nil {
		logger.Error("Failed to get user orders", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(orders))
}

func (h *OrdersHandler) GetOrderByID(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid order id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.GetOrder(ctx, uint(orderID))
	if err != nil {
		logger.Error("Failed to get order by id", err)
		return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
	}

	if role, _ := c.Get("role").(string); order.UserID != userID && role != "admin" {
		return c.JSON(http.StatusForbidden, ResponseError{Message: "you can only access your own orders"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(order))
}

func (h *OrdersHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid order id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req OrderStatusInput
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&req); err != nil {
		logger.Error("Failed to validate status request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.ordersService.UpdateOrderStatus(ctx, uint(orderID), req.Status); err != nil {
		logger.Error("Failed to update order status", err)
		if err.Error() == "order not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Order status updated"))
}
