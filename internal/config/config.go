package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	Port                      string
	DBDriver                  string
	DatabaseURL               string
	JWTSecret                 string
	JWTIssuer                 string
	AccessTTLSeconds          int64
	RefreshTTLSeconds         int64
	MediaStoragePath          string
	MediaMaxUploadBytes       int64
	CorsOrigins               []string
	ActivityStrictTransitions bool
	LogDir                    string
	LogRetentionDays          int
	LogLevel                  string
}

var supportedDrivers = []string{"pgx", "sqlite"}

func Load() Config {
	return Config{
		Port:                      envOr("PORT", "8080"),
		DBDriver:                  envOr("DB_DRIVER", "sqlite"),
		DatabaseURL:               envOr("DATABASE_URL", "file:storage/panti.db"),
		JWTSecret:                 strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTIssuer:                 envOr("JWT_ISSUER", "panti-asuhan"),
		AccessTTLSeconds:          int64(envOrInt("ACCESS_TTL_SECONDS", 14400)),
		RefreshTTLSeconds:         int64(envOrInt("REFRESH_TTL_SECONDS", 1209600)),
		MediaStoragePath:          envOr("MEDIA_STORAGE_PATH", "storage/media"),
		MediaMaxUploadBytes:       int64(envOrInt("MEDIA_MAX_UPLOAD_BYTES", 10<<20)),
		CorsOrigins:               parseCSV(envOr("CORS_ORIGINS", "")),
		ActivityStrictTransitions: envOrBool("ACTIVITY_STRICT_TRANSITIONS", false),
		LogDir:                    envOr("LOG_DIR", "storage/logs"),
		LogRetentionDays:          envOrInt("LOG_RETENTION_DAYS", 7),
		LogLevel:                  envOr("LOG_LEVEL", "info"),
	}
}

// Validate reports every configuration problem at once.
func (c Config) Validate() error {
	var errs []error
	port, err := strconv.Atoi(c.Port)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("invalid port %q: must be a number", c.Port))
	case port < 1 || port > 65535:
		errs = append(errs, fmt.Errorf("invalid port %d: must be between 1 and 65535", port))
	}
	driverOK := false
	for _, d := range supportedDrivers {
		if c.DBDriver == d {
			driverOK = true
		}
	}
	if !driverOK {
		errs = append(errs, fmt.Errorf("invalid DB_DRIVER %q: must be one of %v", c.DBDriver, supportedDrivers))
	}
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	} else if len(c.JWTSecret) < 16 {
		errs = append(errs, errors.New("JWT_SECRET must be at least 16 characters"))
	}
	if c.AccessTTLSeconds <= 0 || c.RefreshTTLSeconds <= 0 {
		errs = append(errs, errors.New("token TTLs must be positive"))
	}
	if c.MediaMaxUploadBytes <= 0 {
		errs = append(errs, errors.New("MEDIA_MAX_UPLOAD_BYTES must be positive"))
	}
	if c.LogRetentionDays < 1 || c.LogRetentionDays > 7 {
		errs = append(errs, fmt.Errorf("invalid LOG_RETENTION_DAYS %d: must be between 1 and 7", c.LogRetentionDays))
	}
	return errors.Join(errs...)
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}
