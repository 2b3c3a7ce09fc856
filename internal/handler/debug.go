package handler

import (
	"net/http"
	"os"
	"strings"

	"github.com/praxpk/prompt-visualizer/internal/config"
	"github.com/praxpk/prompt-visualizer/internal/models"
)

var secretMarkers = []string{"SECRET", "KEY", "TOKEN", "PASS", "PWD"}

// DebugHandler exposes a redacted snapshot of env and effective config.
type DebugHandler struct {
	cfg *config.Config
}

func NewDebugHandler(cfg *config.Config) *DebugHandler {
	return &DebugHandler{cfg: cfg}
}

// Debugz handles GET /debugz
func (h *DebugHandler) Debugz(w http.ResponseWriter, r *http.Request) {
	env := map[string]string{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[k] = redact(k, v)
	}

	models.WriteJSON(w, http.StatusOK, map[string]any{
		"env": env,
		"config": map[string]any{
			"environment":           h.cfg.Environment,
			"log_level":             h.cfg.LogLevel,
			"dataset_path":          h.cfg.DatasetPath,
			"max_result_rows":       h.cfg.MaxResultRows,
			"rate_limit_per_minute": h.cfg.RateLimitPerMinute,
			"openai_configured":     h.cfg.OpenAIAPIKey != "",
			"anthropic_configured":  h.cfg.AnthropicAPIKey != "",
			"ollama_url":            h.cfg.OllamaURL,
			"ollama_model":          h.cfg.OllamaModel,
		},
	})
}

func redact(key, value string) string {
	upper := strings.ToUpper(key)
	for _, marker := range secretMarkers {
		if strings.Contains(upper, marker) {
			return "***REDACTED***"
		}
	}
	return value
}
