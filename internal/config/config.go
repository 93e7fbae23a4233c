package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	OpenRouter OpenRouterConfig
	Gemini     GeminiConfig
	Redis      RedisConfig
	Run        RunConfig
	Logging    LoggingConfig
}

type OpenRouterConfig struct {
	APIKey string
}

type GeminiConfig struct {
	APIKey string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// RunConfig carries the per-run pipeline settings. CLI flags override the
// environment values.
type RunConfig struct {
	Model        string
	Languages    []string
	Game         string
	CustomPrompt string
	OutputFormat string
	OutputDir    string
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		OpenRouter: OpenRouterConfig{
			APIKey: getEnv("OPENROUTER_API_KEY", ""),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Run: RunConfig{
			Model:        getEnv("LOCALIZATION_MODEL", "gpt-4o"),
			Languages:    parseCommaSeparated(getEnv("LOCALIZATION_LANGUAGES", "TR,FR,DE")),
			Game:         getEnv("LOCALIZATION_GAME", "brain-test-1"),
			OutputFormat: getEnv("LOCALIZATION_OUTPUT_FORMAT", "full"),
			OutputDir:    getEnv("LOCALIZATION_OUTPUT_DIR", "./output"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// Validate checks the settings a run cannot start without. Called after CLI
// flags have been merged in.
func (c *Config) Validate() error {
	if c.OpenRouter.APIKey == "" {
		return fmt.Errorf("OPENROUTER_API_KEY is required")
	}
	if len(c.Run.Languages) == 0 {
		return fmt.Errorf("at least one target language is required")
	}
	switch c.Run.OutputFormat {
	case "full", "language":
	default:
		return fmt.Errorf("output format must be \"full\" or \"language\", got %q", c.Run.OutputFormat)
	}
	return nil
}

// RedisEnabled reports whether the optional Redis-backed localization cache
// should be wired up.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func parseCommaSeparated(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
