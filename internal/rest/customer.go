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

type CustomerService interface {
	Register(ctx context.Context, customer *domain.Customer) (domain.Customer, error)
	Login(ctx context.Context, email, password string) (string, domain.Customer, error)
	GetCustomerByID(ctx context.Context, id uint) (domain.Customer, error)
	UpdateCustomer(ctx context.Context, id uint, updateData *domain.Customer) (domain.Customer, error)
	GetPreferences(ctx context.Context, userID uint) (domain.PreferenceProfile, error)
	UpdatePreferences(ctx context.Context, userID uint, profile domain.PreferenceProfile) (domain.PreferenceProfile, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, code, newPassword string) error
}

type CustomerHandler struct {
	customerService CustomerService
	validator       *validator.Validate
	timeout         time.Duration
}

func NewCustomerHandler(customerService CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		validator:       validator.New(),
		timeout:         10 * time.Second,
	}
}

type CustomerRegisterRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"required"`
	City     string `json:"city"`
}

type CustomerLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CustomerUpdateRequest struct {
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty"`
	City     string `json:"city,omitempty"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Code        string `json:"code" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

func (h *CustomerHandler) Register(c echo.Context) error {
	var req CustomerRegisterRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate customer register", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	customer, err := h.customerService.Register(ctx, &domain.Customer{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		City:     req.City,
	})
	if err != nil {
		logger.Error("Failed to register customer", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":  "Registration successful",
		"customer": customer,
	})
}

func (h *CustomerHandler) Login(c echo.Context) error {
	var req CustomerLoginRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate customer login", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	token, customer, err := h.customerService.Login(ctx, req.Email, req.Password)
	if err != nil {
		logger.Error("Failed to login customer", err)
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "Login successful",
		"token":    token,
		"customer": customer,
	})
}

func (h *CustomerHandler) GetProfile(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	customer, err := h.customerService.GetCustomerByID(ctx, userID)
	if err != nil {
		logger.Error("Failed to get customer profile", err)
		return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(customer))
}

// GetCustomerByID serves a customer record by id. Routed behind the
// self-or-admin guard: customers read their own record, admins read any.
func (h *CustomerHandler) GetCustomerByID(c echo.Context) error {
	customerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid customer id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	customer, err := h.customerService.GetCustomerByID(ctx, uint(customerID))
	if err != nil {
		logger.Error("Failed to get customer by id", err)
		return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(customer))
}

func (h *CustomerHandler) UpdateProfile(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	var req CustomerUpdateRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate customer update", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	customer, err := h.customerService.UpdateCustomer(ctx, userID, &domain.Customer{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		City:     req.City,
	})
	if err != nil {
		logger.Error("Failed to update customer", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(customer))
}

func (h *CustomerHandler) GetPreferences(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	profile, err := h.customerService.GetPreferences(ctx, userID)
	if err != nil {
		logger.Error("Failed to get preferences", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(profile))
}

func (h *CustomerHandler) UpdatePreferences(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	var profile domain.PreferenceProfile
	if err := c.Bind(&profile); err != nil {
		logger.Error("Invalid preferences body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	saved, err := h.customerService.UpdatePreferences(ctx, userID, profile)
	if err != nil {
		logger.Error("Failed to update preferences", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(saved))
}

// ForgotPassword issues a reset code. The response is identical whether or
// not the email exists, so the endpoint cannot be used to probe accounts.
func (h *CustomerHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate forgot password request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if _, err := h.customerService.ForgotPassword(ctx, req.Email); err != nil {
		logger.Error("Failed to issue reset code", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to process request"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("If the email exists, a reset code has been sent"))
}

func (h *CustomerHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate reset password request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.customerService.ResetPassword(ctx, req.Code, req.NewPassword); err != nil {
		logger.Error("Failed to reset password", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Password reset successful"))
}
