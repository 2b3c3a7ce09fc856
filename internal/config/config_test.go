package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, DefaultPort)
	}
	if cfg.OllamaModel != DefaultOllamaModel {
		t.Errorf("OllamaModel = %q, want %q", cfg.OllamaModel, DefaultOllamaModel)
	}
	if cfg.MaxResultRows != DefaultMaxResultRows {
		t.Errorf("MaxResultRows = %d, want %d", cfg.MaxResultRows, DefaultMaxResultRows)
	}
	if cfg.DatasetPath != DefaultDatasetPath {
		t.Errorf("DatasetPath = %q, want %q", cfg.DatasetPath, DefaultDatasetPath)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PROMPTVIZ_PORT", "8080")
	t.Setenv("DATASET_PATH", "/srv/data/companies.parquet")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OLLAMA_MODEL", "sqlcoder")
	t.Setenv("PROVIDER_TIMEOUT_SECONDS", "30")
	t.Setenv("MAX_RESULT_ROWS", "250")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.DatasetPath != "/srv/data/companies.parquet" {
		t.Errorf("DatasetPath = %q", cfg.DatasetPath)
	}
	if cfg.OpenAIAPIKey != "sk-test" {
		t.Errorf("OpenAIAPIKey = %q", cfg.OpenAIAPIKey)
	}
	if cfg.OllamaModel != "sqlcoder" {
		t.Errorf("OllamaModel = %q", cfg.OllamaModel)
	}
	if got := cfg.ProviderTimeout(); got != 30*time.Second {
		t.Errorf("ProviderTimeout() = %v, want 30s", got)
	}
	if cfg.MaxResultRows != 250 {
		t.Errorf("MaxResultRows = %d, want 250", cfg.MaxResultRows)
	}
}

func TestLoadIgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("PROMPTVIZ_PORT", "not-a-port")
	t.Setenv("PROVIDER_TIMEOUT_SECONDS", "-5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("Port = %d, want default %d", cfg.Port, DefaultPort)
	}
	if cfg.ProviderTimeoutSeconds != DefaultProviderTimeoutSeconds {
		t.Errorf("ProviderTimeoutSeconds = %d, want default", cfg.ProviderTimeoutSeconds)
	}
}
