package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/matchcal/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	LogLevel           logging.Level
	CORSAllowedOrigins []string
	DataDir            string
	MatchThreshold     int
	ProtectedPairs     [][2]string
	LeagueNameMap      map[string]string
	TimezoneMap        map[string]string
	CacheEnabled       bool
	CacheTTL           time.Duration
	ExportWorkers      int
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	matchThreshold, err := getEnvAsInt("MATCH_THRESHOLD", 86)
	if err != nil {
		return Config{}, fmt.Errorf("parse MATCH_THRESHOLD: %w", err)
	}
	if matchThreshold < 0 || matchThreshold > 100 {
		return Config{}, fmt.Errorf("MATCH_THRESHOLD must be between 0 and 100, got %d", matchThreshold)
	}

	protectedPairs, err := parsePairList(getEnv("PROTECTED_PAIRS", ""))
	if err != nil {
		return Config{}, fmt.Errorf("parse PROTECTED_PAIRS: %w", err)
	}

	leagueNameMap, err := parseKeyValueList(getEnv("LEAGUE_NAME_MAP", ""))
	if err != nil {
		return Config{}, fmt.Errorf("parse LEAGUE_NAME_MAP: %w", err)
	}

	timezoneMap, err := parseKeyValueList(getEnv("TIMEZONE_MAP", ""))
	if err != nil {
		return Config{}, fmt.Errorf("parse TIMEZONE_MAP: %w", err)
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}

	exportWorkers, err := getEnvAsInt("EXPORT_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse EXPORT_WORKERS: %w", err)
	}
	if exportWorkers < 1 {
		return Config{}, fmt.Errorf("EXPORT_WORKERS must be at least 1, got %d", exportWorkers)
	}

	return Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("SERVICE_NAME", "matchcal"),
		ServiceVersion:     getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		LogLevel:           parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		DataDir:            getEnv("DATA_DIR", "data"),
		MatchThreshold:     matchThreshold,
		ProtectedPairs:     protectedPairs,
		LeagueNameMap:      leagueNameMap,
		TimezoneMap:        timezoneMap,
		CacheEnabled:       cacheEnabled,
		CacheTTL:           cacheTTL,
		ExportWorkers:      exportWorkers,
	}, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

// parsePairList parses "a|b,c|d" into name pairs for protected clustering.
func parsePairList(v string) ([][2]string, error) {
	items := splitCSV(v)
	out := make([][2]string, 0, len(items))
	for _, item := range items {
		sides := strings.SplitN(item, "|", 2)
		if len(sides) != 2 {
			return nil, fmt.Errorf("pair %q must use the a|b form", item)
		}
		a := strings.TrimSpace(sides[0])
		b := strings.TrimSpace(sides[1])
		if a == "" || b == "" {
			return nil, fmt.Errorf("pair %q has a blank side", item)
		}
		out = append(out, [2]string{a, b})
	}

	return out, nil
}

// parseKeyValueList parses "key:value,key:value" override tables.
func parseKeyValueList(v string) (map[string]string, error) {
	items := splitCSV(v)
	if len(items) == 0 {
		return nil, nil
	}

	out := make(map[string]string, len(items))
	for _, item := range items {
		parts := strings.SplitN(item, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("entry %q must use the key:value form", item)
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key == "" || value == "" {
			return nil, fmt.Errorf("entry %q has a blank side", item)
		}
		out[key] = value
	}

	return out, nil
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
