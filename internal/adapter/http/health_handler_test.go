package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	uc "microloans-api/internal/usecase/health"
)

type proberFunc func(ctx context.Context) error

func (f proberFunc) Probe(ctx context.Context) error { return f(ctx) }

func TestHealth_OK(t *testing.T) {
	e := newEchoWithValidator()
	h := NewHealthHandler(uc.NewUsecase(proberFunc(func(ctx context.Context) error { return nil })))

	req := httptest.NewRequest(stdhttp.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Health(c); err != nil {
		t.Fatalf("Health error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got["status"] != "ok" || got["database"] != "healthy" {
		t.Fatalf("unexpected body: %v", got)
	}
}

func TestHealth_StoreDown(t *testing.T) {
	e := newEchoWithValidator()
	h := NewHealthHandler(uc.NewUsecase(proberFunc(func(ctx context.Context) error {
		return errors.New("dial tcp: connection refused")
	})))

	req := httptest.NewRequest(stdhttp.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Health(c); err != nil {
		t.Fatalf("Health error: %v", err)
	}
	if rec.Code != stdhttp.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var got map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got["status"] != "error" || got["database"] != "unhealthy" {
		t.Fatalf("unexpected body: %v", got)
	}
}
