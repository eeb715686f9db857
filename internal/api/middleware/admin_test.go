package middleware

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/homeworkbot/panel-api/internal/core/domain"
)

func TestRequireAdmin_Granted(t *testing.T) {
	c, rec := newTestContext("/", nil)
	c.Set(identityKey, &domain.Identity{UserID: 1, IsAdmin: true})

	called := false
	handler := RequireAdmin()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatal("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireAdmin_NonAdminForbidden(t *testing.T) {
	c, _ := newTestContext("/", nil)
	c.Set(identityKey, &domain.Identity{UserID: 7, IsAdmin: false})

	handler := RequireAdmin()(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrAdminRequired) {
		t.Fatalf("expected ErrAdminRequired, got %v", err)
	}
}

func TestRequireAdmin_MissingIdentity(t *testing.T) {
	c, _ := newTestContext("/", nil)

	handler := RequireAdmin()(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
}
