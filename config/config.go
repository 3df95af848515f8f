package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the environment-supplied settings for the backend and the
// terminal client.
type Config struct {
	Port string

	// Provider selects the model capability: "gemini" (default) or "anthropic".
	Provider        string
	GeminiAPIKey    string
	AnthropicAPIKey string
	Model           string

	// RequestTimeoutSeconds bounds a single exchange with the model
	// capability. Expiry is surfaced as an upstream error.
	RequestTimeoutSeconds int

	// BackendURL is where the terminal client reaches the backend.
	BackendURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[INFO] No .env file found, using environment variables")
	}

	return &Config{
		Port:                  getEnv("PORT", "8000"),
		Provider:              getEnv("LLM_PROVIDER", "gemini"),
		GeminiAPIKey:          os.Getenv("GEMINI_API_KEY"),
		AnthropicAPIKey:       os.Getenv("ANTHROPIC_API_KEY"),
		Model:                 os.Getenv("LLM_MODEL"),
		RequestTimeoutSeconds: getEnvInt("REQUEST_TIMEOUT", 60),
		BackendURL:            getEnv("BACKEND_URL", "http://localhost:8000"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
