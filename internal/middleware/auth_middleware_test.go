package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func callSelfOrAdmin(t *testing.T, userID uint, role, paramID string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(paramID)
	c.Set("user_id", userID)
	c.Set("role", role)

	handler := SelfOrAdmin()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec
}

func TestSelfOrAdmin_AllowsOwnResource(t *testing.T) {
	rec := callSelfOrAdmin(t, 7, "customer", "7")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for own resource, got %d", rec.Code)
	}
}

func TestSelfOrAdmin_BlocksOtherUsers(t *testing.T) {
	rec := callSelfOrAdmin(t, 7, "customer", "8")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for another user's resource, got %d", rec.Code)
	}
}

func TestSelfOrAdmin_AdminBypassesOwnershipCheck(t *testing.T) {
	rec := callSelfOrAdmin(t, 7, "admin", "8")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", rec.Code)
	}
}

func TestSelfOrAdmin_RejectsBadID(t *testing.T) {
	rec := callSelfOrAdmin(t, 7, "customer", "not-a-number")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a malformed id, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := AuthMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without an Authorization header, got %d", rec.Code)
	}
}
