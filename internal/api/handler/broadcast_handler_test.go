package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/homeworkbot/panel-api/internal/core/domain"
	"github.com/homeworkbot/panel-api/internal/core/ports"
)

type stubBroadcastService struct {
	broadcastFn func(ctx context.Context, in ports.BroadcastInput) (*domain.BroadcastResult, error)
}

func (s *stubBroadcastService) Broadcast(ctx context.Context, in ports.BroadcastInput) (*domain.BroadcastResult, error) {
	return s.broadcastFn(ctx, in)
}

func newBroadcastContext(t *testing.T, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestBroadcastHandler_Send_Success(t *testing.T) {
	stub := &stubBroadcastService{
		broadcastFn: func(ctx context.Context, in ports.BroadcastInput) (*domain.BroadcastResult, error) {
			if in.RawInitData != "signed-assertion" {
				t.Fatalf("unexpected assertion: %q", in.RawInitData)
			}
			if in.Scope != domain.ScopeAll || in.Text != "School trip on Friday" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.BroadcastResult{Accepted: true, Sent: 12, Scope: in.Scope}, nil
		},
	}
	handler := NewBroadcastHandler(stub)

	c, rec := newBroadcastContext(t, "/broadcast?init=signed-assertion", `{"scope":"all","text":"School trip on Friday"}`)
	if err := handler.Send(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["ok"] != true || resp["sent"] != float64(12) || resp["scope"] != "all" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestBroadcastHandler_Send_DefaultsToAllScope(t *testing.T) {
	stub := &stubBroadcastService{
		broadcastFn: func(ctx context.Context, in ports.BroadcastInput) (*domain.BroadcastResult, error) {
			if in.Scope != domain.ScopeAll {
				t.Fatalf("expected default scope, got %q", in.Scope)
			}
			return &domain.BroadcastResult{Accepted: true, Sent: 1, Scope: in.Scope}, nil
		},
	}
	handler := NewBroadcastHandler(stub)

	c, _ := newBroadcastContext(t, "/broadcast?init=x", `{"text":"hi"}`)
	if err := handler.Send(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestBroadcastHandler_Send_ForbiddenPropagates(t *testing.T) {
	stub := &stubBroadcastService{
		broadcastFn: func(ctx context.Context, in ports.BroadcastInput) (*domain.BroadcastResult, error) {
			return nil, domain.ErrAdminRequired
		},
	}
	handler := NewBroadcastHandler(stub)

	c, _ := newBroadcastContext(t, "/broadcast?init=x", `{"scope":"all","text":"hi"}`)
	err := handler.Send(c)
	if !errors.Is(err, domain.ErrAdminRequired) {
		t.Fatalf("expected ErrAdminRequired, got %v", err)
	}
}

func TestBroadcastHandler_Send_RejectsUnknownScope(t *testing.T) {
	stub := &stubBroadcastService{
		broadcastFn: func(ctx context.Context, in ports.BroadcastInput) (*domain.BroadcastResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewBroadcastHandler(stub)

	c, _ := newBroadcastContext(t, "/broadcast?init=x", `{"scope":"everyone","text":"hi"}`)
	err := handler.Send(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestBroadcastHandler_Send_InvalidPayload(t *testing.T) {
	stub := &stubBroadcastService{
		broadcastFn: func(ctx context.Context, in ports.BroadcastInput) (*domain.BroadcastResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewBroadcastHandler(stub)

	c, _ := newBroadcastContext(t, "/broadcast?init=x", "not-json")
	err := handler.Send(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
