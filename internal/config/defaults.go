package config

const (
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 5000
	DefaultEnvironment = "development"
	DefaultLogLevel    = "info"

	DefaultRateLimitPerMinute = 60

	DefaultDatasetPath   = "data/dataset.parquet"
	DefaultMaxResultRows = 1000

	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultAnthropicModel = "claude-3-haiku-20240307"
	DefaultOllamaURL      = "http://localhost:11434"
	DefaultOllamaModel    = "duckdb-nsql"

	DefaultProviderTimeoutSeconds = 15
)

var DefaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
}
