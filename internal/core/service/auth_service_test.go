package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/rs/zerolog"

	"github.com/homeworkbot/panel-api/internal/core/domain"
)

const testSecret = "42:TEST-TOKEN"

// signInitData builds a correctly signed assertion carrying the given user.
func signInitData(secret string, userID int64, username string) string {
	userJSON := fmt.Sprintf(`{"id":%d,"username":%q}`, userID, username)
	check := "auth_date=1700000000\nuser=" + userJSON

	kd := hmac.New(sha256.New, []byte("WebAppData"))
	kd.Write([]byte(secret))
	mac := hmac.New(sha256.New, kd.Sum(nil))
	mac.Write([]byte(check))

	return "auth_date=1700000000&user=" + url.QueryEscape(userJSON) +
		"&hash=" + hex.EncodeToString(mac.Sum(nil))
}

type stubAdminRepo struct {
	admins map[int64]bool
	err    error
	calls  int
}

func (r *stubAdminRepo) IsAdmin(_ context.Context, userID int64) (bool, error) {
	r.calls++
	if r.err != nil {
		return false, r.err
	}
	return r.admins[userID], nil
}

type stubAdminCache struct {
	values map[int64]bool
	getErr error
	sets   int
}

func (c *stubAdminCache) Get(_ context.Context, userID int64) (bool, bool, error) {
	if c.getErr != nil {
		return false, false, c.getErr
	}
	v, ok := c.values[userID]
	return v, ok, nil
}

func (c *stubAdminCache) Set(_ context.Context, userID int64, isAdmin bool) error {
	c.sets++
	if c.values == nil {
		c.values = map[int64]bool{}
	}
	c.values[userID] = isAdmin
	return nil
}

func TestAuthService_Identify_StaticAdmin(t *testing.T) {
	repo := &stubAdminRepo{}
	svc := NewAuthService(testSecret, map[int64]struct{}{42: {}}, repo, nil, zerolog.Nop())

	id, err := svc.Identify(context.Background(), signInitData(testSecret, 42, "alice"))
	if err != nil {
		t.Fatalf("Identify returned error: %v", err)
	}
	if id.UserID != 42 || id.Username != "alice" {
		t.Fatalf("unexpected identity: %+v", id)
	}
	if !id.IsAdmin {
		t.Fatal("expected static admin grant")
	}
	if repo.calls != 0 {
		t.Fatalf("static grant must not hit the store, got %d calls", repo.calls)
	}
}

func TestAuthService_Identify_DynamicAdmin(t *testing.T) {
	repo := &stubAdminRepo{admins: map[int64]bool{99: true}}
	svc := NewAuthService(testSecret, nil, repo, nil, zerolog.Nop())

	id, err := svc.Identify(context.Background(), signInitData(testSecret, 99, "bob"))
	if err != nil {
		t.Fatalf("Identify returned error: %v", err)
	}
	if !id.IsAdmin {
		t.Fatal("expected dynamic admin grant")
	}
}

func TestAuthService_Identify_NonAdminIsValue(t *testing.T) {
	repo := &stubAdminRepo{}
	svc := NewAuthService(testSecret, map[int64]struct{}{1: {}}, repo, nil, zerolog.Nop())

	id, err := svc.Identify(context.Background(), signInitData(testSecret, 7, "carol"))
	if err != nil {
		t.Fatalf("non-admin must not be an error, got %v", err)
	}
	if id.IsAdmin {
		t.Fatal("expected non-admin")
	}
}

func TestAuthService_Identify_Unverifiable(t *testing.T) {
	svc := NewAuthService(testSecret, nil, &stubAdminRepo{}, nil, zerolog.Nop())

	if _, err := svc.Identify(context.Background(), "user=junk&hash=0000"); !errors.Is(err, domain.ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
	if _, err := svc.Identify(context.Background(), ""); !errors.Is(err, domain.ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired for empty assertion, got %v", err)
	}
}

func TestAuthService_Identify_StoreDownMeansNonAdmin(t *testing.T) {
	repo := &stubAdminRepo{err: errors.New("store unavailable")}
	svc := NewAuthService(testSecret, nil, repo, nil, zerolog.Nop())

	id, err := svc.Identify(context.Background(), signInitData(testSecret, 7, "carol"))
	if err != nil {
		t.Fatalf("store trouble must not fail identification: %v", err)
	}
	if id.IsAdmin {
		t.Fatal("expected non-admin when store is down")
	}
}

func TestAuthService_RequireAdmin(t *testing.T) {
	repo := &stubAdminRepo{admins: map[int64]bool{99: true}}
	svc := NewAuthService(testSecret, nil, repo, nil, zerolog.Nop())

	if _, err := svc.RequireAdmin(context.Background(), signInitData(testSecret, 99, "bob")); err != nil {
		t.Fatalf("expected admin to pass, got %v", err)
	}
	if _, err := svc.RequireAdmin(context.Background(), signInitData(testSecret, 7, "carol")); !errors.Is(err, domain.ErrAdminRequired) {
		t.Fatalf("expected ErrAdminRequired, got %v", err)
	}
	if _, err := svc.RequireAdmin(context.Background(), "broken"); !errors.Is(err, domain.ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
}

func TestAuthService_CacheHitSkipsStore(t *testing.T) {
	repo := &stubAdminRepo{}
	cache := &stubAdminCache{values: map[int64]bool{99: true}}
	svc := NewAuthService(testSecret, nil, repo, cache, zerolog.Nop())

	id, err := svc.Identify(context.Background(), signInitData(testSecret, 99, "bob"))
	if err != nil || !id.IsAdmin {
		t.Fatalf("expected cached admin, got (%+v, %v)", id, err)
	}
	if repo.calls != 0 {
		t.Fatalf("cache hit must not hit the store, got %d calls", repo.calls)
	}
}

func TestAuthService_CacheMissPopulates(t *testing.T) {
	repo := &stubAdminRepo{admins: map[int64]bool{99: true}}
	cache := &stubAdminCache{}
	svc := NewAuthService(testSecret, nil, repo, cache, zerolog.Nop())

	if _, err := svc.Identify(context.Background(), signInitData(testSecret, 99, "bob")); err != nil {
		t.Fatalf("Identify returned error: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected 1 cache write, got %d", cache.sets)
	}
}

func TestAuthService_CacheErrorFallsThrough(t *testing.T) {
	repo := &stubAdminRepo{admins: map[int64]bool{99: true}}
	cache := &stubAdminCache{getErr: errors.New("cache unavailable")}
	svc := NewAuthService(testSecret, nil, repo, cache, zerolog.Nop())

	id, err := svc.Identify(context.Background(), signInitData(testSecret, 99, "bob"))
	if err != nil || !id.IsAdmin {
		t.Fatalf("cache trouble must fall through to the store, got (%+v, %v)", id, err)
	}
}
