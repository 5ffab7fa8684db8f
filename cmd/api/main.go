package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/automari/agency-ai-platform/internal/api/router"
	"github.com/automari/agency-ai-platform/internal/assistant"
	"github.com/automari/agency-ai-platform/internal/botrouter"
	"github.com/automari/agency-ai-platform/internal/config"
	"github.com/automari/agency-ai-platform/internal/consultation"
	"github.com/automari/agency-ai-platform/internal/leads"
	"github.com/automari/agency-ai-platform/internal/n8n"
	"github.com/automari/agency-ai-platform/internal/observability/metrics"
	"github.com/automari/agency-ai-platform/pkg/logging"
)

func main() {
	// Load .env if present; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *logging.Logger) error {
	demoMetrics := metrics.NewDemoMetrics(prometheus.DefaultRegisterer)

	relay := n8n.NewClient(cfg.N8NBaseURL, logger.With("component", "n8n"),
		n8n.WithTimeout(cfg.RelayTimeout),
		n8n.WithWebhookSecret(cfg.N8NWebhookSecret),
		n8n.WithConsultationWebhook(cfg.N8NWebhookURL),
	)

	botOpts := []botrouter.HandlerOption{
		botrouter.WithMetrics(demoMetrics),
	}
	if cfg.SimulateThinking {
		botOpts = append(botOpts, botrouter.WithThinkingDelay(cfg.ThinkingMinDelay, cfg.ThinkingMaxDelay))
	}
	if cfg.ExecuteMode == botrouter.ModeLLM {
		llm, err := buildAssistant(cfg, logger)
		if err != nil {
			return err
		}
		botOpts = append(botOpts, botrouter.WithLLM(llm))
	}

	exposeError := !cfg.IsProduction()

	mux := router.New(router.Config{
		Logger:             logger,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		BotRouter:          botrouter.NewHandler(botrouter.DefaultTable(), logger.With("component", "botrouter"), botOpts...),
		Leads:              leads.NewHandler(relay, logger.With("component", "leads"), demoMetrics, exposeError),
		Consultation:       consultation.NewHandler(relay, logger.With("component", "consultation"), demoMetrics, exposeError),
		MetricsHandler:     promhttp.Handler(),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			"port", cfg.Port,
			"env", cfg.Env,
			"execute_mode", cfg.ExecuteMode,
			"n8n_configured", relay.Configured(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}

// buildAssistant wires the LLM relay: OpenAI primary with a Gemini
// fallback when both keys are present.
func buildAssistant(cfg *config.Config, logger *logging.Logger) (assistant.Client, error) {
	var primary assistant.Client
	if cfg.OpenAIAPIKey != "" {
		openai, err := assistant.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		if err != nil {
			return nil, err
		}
		primary = openai
	}

	var fallback assistant.Client
	if cfg.GeminiAPIKey != "" {
		gemini, err := assistant.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		fallback = gemini
	}

	switch {
	case primary != nil && fallback != nil:
		return assistant.NewFallbackClient(primary, fallback, logger.With("component", "assistant")), nil
	case primary != nil:
		return primary, nil
	case fallback != nil:
		return fallback, nil
	default:
		return nil, errors.New("EXECUTE_MODE=llm requires OPENAI_API_KEY or GEMINI_API_KEY")
	}
}
