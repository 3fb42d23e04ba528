package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultJWTTTL     = "360h" // 15 days, the only invalidation path
	defaultJWTSecret  = "change-me-jwt-secret"
	defaultListenAddr = ":8080"
	defaultPredictURL = "https://scraply-price-prediction-model.onrender.com"
	defaultChatModel  = "gpt-4o-mini"
	defaultChatRPS    = "1"
	defaultChatBurst  = "5"
	defaultPopupCache = "60s"
)

type Config struct {
	AppEnv        string
	ListenAddr    string
	DatabaseURL   string
	JWTSecret     string
	JWTTTL        time.Duration
	OpenAIAPIKey  string
	ChatModel     string
	ChatRPS       float64
	ChatBurst     int
	PredictURL    string
	RedisAddr     string
	RedisPassword string
	PopupCacheTTL time.Duration
	CORSOrigins   []string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.ListenAddr = getEnv("LISTEN_ADDR", defaultListenAddr)
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	cfg.OpenAIAPIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	cfg.ChatModel = getEnv("CHAT_MODEL", defaultChatModel)
	cfg.ChatRPS, err = strconv.ParseFloat(getEnv("CHAT_RPS", defaultChatRPS), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid CHAT_RPS: %w", err)
	}
	cfg.ChatBurst, err = strconv.Atoi(getEnv("CHAT_BURST", defaultChatBurst))
	if err != nil {
		return nil, fmt.Errorf("invalid CHAT_BURST: %w", err)
	}

	cfg.PredictURL = strings.TrimRight(getEnv("PREDICT_URL", defaultPredictURL), "/")

	cfg.RedisAddr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.PopupCacheTTL, err = parseDurationEnv("POPUP_CACHE_TTL", defaultPopupCache)
	if err != nil {
		return nil, err
	}

	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.ChatRPS <= 0 || cfg.ChatBurst <= 0 {
		return fmt.Errorf("CHAT_RPS and CHAT_BURST must be > 0")
	}
	if IsProdLike(cfg.AppEnv) {
		if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.OpenAIAPIKey == "" {
			return fmt.Errorf("in prod/release OPENAI_API_KEY must be set")
		}
	}
	return nil
}

func IsProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
