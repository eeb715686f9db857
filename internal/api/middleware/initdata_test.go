package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/homeworkbot/panel-api/internal/core/domain"
)

type stubAuthService struct {
	identity *domain.Identity
	seenRaw  string
}

func (a *stubAuthService) Identify(_ context.Context, raw string) (*domain.Identity, error) {
	a.seenRaw = raw
	if a.identity == nil {
		return nil, domain.ErrAuthRequired
	}
	return a.identity, nil
}

func (a *stubAuthService) RequireAdmin(ctx context.Context, raw string) (*domain.Identity, error) {
	id, err := a.Identify(ctx, raw)
	if err != nil {
		return nil, err
	}
	if !id.IsAdmin {
		return nil, domain.ErrAdminRequired
	}
	return id, nil
}

func newTestContext(target string, header map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestInitData_ValidAssertion(t *testing.T) {
	auth := &stubAuthService{identity: &domain.Identity{UserID: 42, Username: "alice"}}
	c, rec := newTestContext("/?init=signed-assertion", nil)

	called := false
	handler := InitData(auth)(func(c echo.Context) error {
		called = true
		id, _ := c.Get(identityKey).(*domain.Identity)
		if id == nil || id.UserID != 42 {
			t.Fatalf("identity not injected: %+v", id)
		}
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
	if auth.seenRaw != "signed-assertion" {
		t.Fatalf("unexpected raw assertion: %q", auth.seenRaw)
	}
}

func TestInitData_HeaderFallback(t *testing.T) {
	auth := &stubAuthService{identity: &domain.Identity{UserID: 42}}
	c, _ := newTestContext("/", map[string]string{HeaderInitData: "from-header"})

	handler := InitData(auth)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if auth.seenRaw != "from-header" {
		t.Fatalf("expected header assertion, got %q", auth.seenRaw)
	}
}

func TestInitData_QueryWinsOverHeader(t *testing.T) {
	auth := &stubAuthService{identity: &domain.Identity{UserID: 42}}
	c, _ := newTestContext("/?init=from-query", map[string]string{HeaderInitData: "from-header"})

	handler := InitData(auth)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if auth.seenRaw != "from-query" {
		t.Fatalf("expected query assertion, got %q", auth.seenRaw)
	}
}

func TestInitData_Unverifiable(t *testing.T) {
	auth := &stubAuthService{}
	c, _ := newTestContext("/?init=garbage", nil)

	handler := InitData(auth)(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	err := handler(c)
	if !errors.Is(err, domain.ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
}
