package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DatabaseURL string

	// Redis
	RedisURL string

	// JWT
	JWTSecret      string
	AccessTokenTTL int // minutes

	// AI providers
	GeminiAPIKey    string
	OpenAIAPIKey    string
	CardsPerSet     int
	PromptCharLimit int
	MinSourceChars  int
	MaxUploadSizeMB int

	// Client
	ClientURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:        getEnvOrDefault("PORT", "8080"),
		Env:         getEnvOrDefault("ENV", "development"),
		DatabaseURL: mustGetEnv("DATABASE_URL"),
		RedisURL:    mustGetEnv("REDIS_URL"),
		JWTSecret:   mustGetEnv("JWT_SECRET"),

		AccessTokenTTL: getEnvAsIntOrDefault("ACCESS_TOKEN_TTL_MINUTES", 60),

		// Provider keys are optional at boot: a missing key surfaces as a
		// generation error on the routes that need it, not a startup failure.
		GeminiAPIKey:    getEnvOrDefault("GEMINI_API_KEY", ""),
		OpenAIAPIKey:    getEnvOrDefault("OPENAI_API_KEY", ""),
		CardsPerSet:     getEnvAsIntOrDefault("AI_CARDS_PER_SET", 10),
		PromptCharLimit: getEnvAsIntOrDefault("AI_PROMPT_CHAR_LIMIT", 4000),
		MinSourceChars:  getEnvAsIntOrDefault("AI_MIN_SOURCE_CHARS", 50),
		MaxUploadSizeMB: getEnvAsIntOrDefault("MAX_UPLOAD_SIZE_MB", 10),

		ClientURL: getEnvOrDefault("CLIENT_URL", "http://localhost:5173"),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
