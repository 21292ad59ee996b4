package rest

import (
	"context"
	"net/http"
	"time"

	"dabbaMarket/domain"
	"dabbaMarket/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	ComplaintService interface {
		CreateComplaint(ctx context.Context, userID uint, orderID uint, category, subject, message string) (domain.Complaint, error)
		GetComplaint(ctx context.Context, id string, userID uint) (domain.Complaint, error)
		GetUserComplaints(ctx context.Context, userID uint) ([]domain.Complaint, error)
		AddMessage(ctx context.Context, id string, userID uint, sender, message string) (domain.Complaint, error)
		Escalate(ctx context.Context, id string, userID uint) (domain.Complaint, error)
		Resolve(ctx context.Context, id string, userID uint) (domain.Complaint, error)
	}

	ComplaintHandler struct {
		complaintService ComplaintService
		validator        *validator.Validate
		timeout          time.Duration
	}

	ComplaintRequest struct {
		OrderID  uint   `json:"order_id"`
		Category string `json:"category" validate:"required,oneof=delivery quality billing other"`
		Subject  string `json:"subject" validate:"required"`
		Message  string `json:"message" validate:"required"`
	}

	ComplaintMessageRequest struct {
		Message string `json:"message" validate:"required"`
	}
)

func NewComplaintHandler(complaintService ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{
		complaintService: complaintService,
		validator:        validator.New(),
		timeout:          10 * time.Second,
	}
}

func (h *ComplaintHandler) CreateComplaint(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	var req ComplaintRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate complaint request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	complaint, err := h.complaintService.CreateComplaint(ctx, userID, req.OrderID, req.Category, req.Subject, req.Message)
	if err != nil {
		logger.Error("Failed to create complaint", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(complaint))
}

func (h *ComplaintHandler) GetMyComplaints(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	complaints, err := h.complaintService.GetUserComplaints(ctx, userID)
	if err != nil {
		logger.Error("Failed to find user complaints", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(complaints))
}

func (h *ComplaintHandler) GetComplaintByID(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	complaint, err := h.complaintService.GetComplaint(ctx, c.Param("id"), userID)
	if err != nil {
		logger.Error("Failed to find complaint", err)
		return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(complaint))
}

func (h *ComplaintHandler) AddMessage(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	var req ComplaintMessageRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate complaint message", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sender := "customer"
	if role, ok := c.Get("role").(string); ok && role == "admin" {
		sender = "support"
	}

	complaint, err := h.complaintService.AddMessage(ctx, c.Param("id"), userID, sender, req.Message)
	if err != nil {
		logger.Error("Failed to add complaint message", err)
		if err.Error() == "complaint not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(complaint))
}

func (h *ComplaintHandler) Escalate(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	complaint, err := h.complaintService.Escalate(ctx, c.Param("id"), userID)
	if err != nil {
		logger.Error("Failed to escalate complaint", err)
		if err.Error() == "complaint not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(complaint))
}

func (h *ComplaintHandler) Resolve(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	complaint, err := h.complaintService.Resolve(ctx, c.Param("id"), userID)
	if err != nil {
		logger.Error("Failed to resolve complaint", err)
		if err.Error() == "complaint not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(complaint))
}
