package config

import (
	"os"
	"strings"
)

type Config struct {
	MongoURI           string
	PostgresURI        string
	RedisURI           string
	Port               string
	Host               string   // Public base URL of this backend (for payment redirect URLs)
	FrontendURL        string
	AllowedOrigins     []string // CORS: from ALLOWED_ORIGINS or FRONTEND_URL(s)
	Environment        string   // ENV: production, development, etc.
	HuggingFaceAPIKey  string
	SentimentModelURLs []string // Override the default candidate classifier endpoints
	IntaSendAPIKey     string
	CheckoutAPIURL     string
}

func Load() *Config {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))

	// CORS: allow multiple origins so production frontend works alongside local dev
	allowedOrigins := parseList(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		for _, u := range []string{getEnv("FRONTEND_URL", "http://localhost:3000"), getEnv("FRONTEND_URL_2", "")} {
			u = strings.TrimSpace(u)
			if u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	return &Config{
		// Empty URIs mean "not configured": the app runs in fallback mode
		// without persistence rather than refusing to start.
		MongoURI:           getEnv("MONGODB_URI", getEnv("MONGO_URI", "")),
		PostgresURI:        getEnv("POSTGRES_URI", ""),
		RedisURI:           getEnv("REDIS_URI", ""),
		Port:               getEnv("PORT", "8080"),
		Host:               getEnv("HOST", "http://localhost:8080"),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:3000"),
		AllowedOrigins:     allowedOrigins,
		Environment:        env,
		HuggingFaceAPIKey:  getEnv("HUGGINGFACE_API_KEY", "hf_demo"),
		SentimentModelURLs: parseList(getEnv("SENTIMENT_MODEL_URLS", "")),
		IntaSendAPIKey:     getEnv("INTASEND_API_KEY", ""),
		CheckoutAPIURL:     getEnv("CHECKOUT_API_URL", ""),
	}
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return strings.ToLower(strings.TrimSpace(c.Environment)) == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
