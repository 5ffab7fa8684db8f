package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	PublicBaseURL      string
	LogLevel           string
	CORSAllowedOrigins []string

	// Keyword router / execute endpoint behavior
	ExecuteMode      string // "rules" answers from the routing table, "llm" relays to the completion API
	SimulateThinking bool
	ThinkingMinDelay time.Duration
	ThinkingMaxDelay time.Duration

	// n8n automation webhooks
	N8NBaseURL       string
	N8NWebhookURL    string
	N8NWebhookSecret string
	RelayTimeout     time.Duration

	// Completion API credentials
	OpenAIAPIKey string
	OpenAIModel  string
	GeminiAPIKey string
	GeminiModel  string

	// Agency contact details surfaced in fallback copy
	ContactPhone string
	ContactEmail string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		PublicBaseURL:      getEnv("PUBLIC_BASE_URL", ""),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),

		ExecuteMode:      strings.ToLower(strings.TrimSpace(getEnv("EXECUTE_MODE", "rules"))),
		SimulateThinking: getEnvAsBool("SIMULATE_THINKING", false),
		ThinkingMinDelay: getEnvAsDuration("THINKING_MIN_DELAY", 1*time.Second),
		ThinkingMaxDelay: getEnvAsDuration("THINKING_MAX_DELAY", 3*time.Second),

		N8NBaseURL:       getEnv("N8N_BASE_URL", ""),
		N8NWebhookURL:    getEnv("N8N_WEBHOOK_URL", ""),
		N8NWebhookSecret: getEnv("N8N_WEBHOOK_SECRET", ""),
		RelayTimeout:     getEnvAsDuration("RELAY_TIMEOUT", 15*time.Second),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", ""),

		ContactPhone: getEnv("CONTACT_PHONE", "561-201-4365"),
		ContactEmail: getEnv("CONTACT_EMAIL", "contactautomari@gmail.com"),
	}
}

// IsProduction reports whether error details should be redacted from responses.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsSlice retrieves a comma-separated environment variable as a string slice
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
