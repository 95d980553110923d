package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tianji-app/fortune-api/internal/domain"
)

// Config holds everything read from the environment at startup. The
// Gemini API key is validated here so a missing key fails fast instead of
// surfacing as a confusing oracle error on the first request.
type Config struct {
	Port            string
	LogLevel        slog.Level
	DefaultLanguage domain.Language

	GeminiAPIKey   string
	ModelName      string
	UseMockOracle  bool
	OracleTimeout  time.Duration
	ThinkingBudget int32
}

// Load reads all FORTUNE_* env vars and builds the config.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("fortune")
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("default_language", "zh")
	v.SetDefault("model_name", "gemini-2.5-flash")
	v.SetDefault("use_mock_oracle", false)
	v.SetDefault("oracle_timeout", "60s")
	v.SetDefault("thinking_budget", 4096)

	level, err := parseLogLevel(v.GetString("log_level"))
	if err != nil {
		return nil, err
	}

	lang, err := domain.ParseLanguage(v.GetString("default_language"))
	if err != nil {
		return nil, fmt.Errorf("FORTUNE_DEFAULT_LANGUAGE: %w", err)
	}

	timeout := v.GetDuration("oracle_timeout")
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid FORTUNE_ORACLE_TIMEOUT %q", v.GetString("oracle_timeout"))
	}

	cfg := &Config{
		Port:            v.GetString("port"),
		LogLevel:        level,
		DefaultLanguage: lang,
		GeminiAPIKey:    v.GetString("gemini_api_key"),
		ModelName:       v.GetString("model_name"),
		UseMockOracle:   v.GetBool("use_mock_oracle"),
		OracleTimeout:   timeout,
		ThinkingBudget:  v.GetInt32("thinking_budget"),
	}

	if !cfg.UseMockOracle && cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("FORTUNE_GEMINI_API_KEY is required unless FORTUNE_USE_MOCK_ORACLE=true")
	}

	return cfg, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid FORTUNE_LOG_LEVEL %q", s)
	}
}
