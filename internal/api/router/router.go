package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/automari/agency-ai-platform/internal/botrouter"
	"github.com/automari/agency-ai-platform/internal/consultation"
	"github.com/automari/agency-ai-platform/internal/http/middleware"
	"github.com/automari/agency-ai-platform/internal/leads"
	"github.com/automari/agency-ai-platform/pkg/logging"
)

// Config carries the dependencies the router wires together.
type Config struct {
	Logger             *logging.Logger
	CORSAllowedOrigins []string

	BotRouter    *botrouter.Handler
	Leads        *leads.Handler
	Consultation *consultation.Handler

	// MetricsHandler serves /metrics when set.
	MetricsHandler http.Handler
}

// New builds the HTTP router for the demo API.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.RequestLogger(cfg.Logger))

	r.Get("/health", handleHealth)

	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		if cfg.BotRouter != nil {
			r.Get("/execute", cfg.BotRouter.Info)
			r.Post("/execute", cfg.BotRouter.Execute)
		}
		if cfg.Leads != nil {
			r.Get("/lead-generation", cfg.Leads.Status)
			r.Post("/lead-generation", cfg.Leads.Capture)
		}
		if cfg.Consultation != nil {
			r.Post("/consultation", cfg.Consultation.Book)
			r.Options("/consultation", cfg.Consultation.Preflight)
			// Early demo pages still post bookings here.
			r.Post("/bot-router", cfg.Consultation.Book)
		}
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
