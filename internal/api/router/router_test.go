package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/automari/agency-ai-platform/internal/botrouter"
	"github.com/automari/agency-ai-platform/internal/consultation"
	"github.com/automari/agency-ai-platform/internal/leads"
	"github.com/automari/agency-ai-platform/pkg/logging"
)

func newTestRouter() http.Handler {
	logger := logging.Default()
	return New(Config{
		Logger:             logger,
		CORSAllowedOrigins: []string{"*"},
		BotRouter:          botrouter.NewHandler(botrouter.DefaultTable(), logger),
		Leads:              leads.NewHandler(nil, logger, nil, false),
		Consultation:       consultation.NewHandler(nil, logger, nil, false),
	})
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Fatalf("unexpected health body %v", resp)
	}
}

func TestExecuteRoute(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/execute", strings.NewReader(`{"message":"book a demo"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestLeadGenerationRoutes(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/lead-generation", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 for GET, got %d", rec.Code)
	}

	body := `{"name":"Sarah","email":"sarah@techcorp.com","message":"automate intake"}`
	req = httptest.NewRequest(http.MethodPost, "/api/lead-generation", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 for POST, got %d", rec.Code)
	}
}

func TestConsultationRoutesIncludeAlias(t *testing.T) {
	r := newTestRouter()

	body := `{"intent":"book","client_name":"Lisa","email":"lisa@x.com","datetime":"2025-03-12T14:30"}`
	for _, path := range []string{"/api/consultation", "/api/bot-router"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200 for %s, got %d", path, rec.Code)
		}
	}
}

func TestUnknownRouteReturns404(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}
