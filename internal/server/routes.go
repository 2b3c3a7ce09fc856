package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/praxpk/prompt-visualizer/internal/catalog"
	"github.com/praxpk/prompt-visualizer/internal/handler"
	"github.com/praxpk/prompt-visualizer/internal/middleware"
	"github.com/praxpk/prompt-visualizer/internal/provider"
	"github.com/praxpk/prompt-visualizer/internal/query"
	"github.com/rs/zerolog/log"
)

func (s *Server) setupRoutes(ctx context.Context) (http.Handler, *catalog.Catalog, error) {
	cfg := s.cfg

	// ─── Dataset ────────────────────────────────────────────────────────────────
	cat, err := catalog.Open(ctx, cfg.DatasetPath)
	if err != nil {
		return nil, nil, err
	}

	// ─── Providers ──────────────────────────────────────────────────────────────
	timeout := cfg.ProviderTimeout()
	openai := provider.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, timeout)
	anthropic := provider.NewAnthropic(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.AnthropicBaseURL, timeout)
	ollama := provider.NewOllama(cfg.OllamaURL, cfg.OllamaModel, timeout)

	log.Info().
		Bool("openai_configured", openai.Available()).
		Bool("anthropic_configured", anthropic.Available()).
		Str("ollama_url", cfg.OllamaURL).
		Msg("provider configuration")

	if !openai.Available() && !anthropic.Available() {
		log.Warn().Msg("no cloud provider configured - relying on the local model only")
	}

	validator := query.NewValidator(cat.ViewName())
	chain := provider.NewChain(validator, openai, anthropic, ollama)
	executor := query.NewExecutor(cat.DB(), cfg.MaxResultRows)

	// ─── Handlers ───────────────────────────────────────────────────────────────
	askH := handler.NewAskHandler(cat, chain, executor)
	healthH := handler.NewHealthHandler(cat, cat, cat.RowCount())
	debugH := handler.NewDebugHandler(cfg)
	metrics := middleware.NewMetrics()

	// ─── Router ─────────────────────────────────────────────────────────────────
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(metrics.Collect)
	r.Use(middleware.Logging)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.CORSOrigins)))
	r.Use(chiMiddleware.RealIP)

	r.Get("/", healthH.Root)
	r.Get("/health", healthH.Healthz)
	r.Get("/healthz", healthH.Healthz)
	r.Get("/readyz", healthH.Readyz)
	r.Get("/metricsz", metrics.Handler())
	r.Get("/debugz", debugH.Debugz)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMinute))
		r.Post("/ask", askH.Ask)
	})

	return r, cat, nil
}
