package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        int
	GinMode     string
	DatabaseURL string

	DBMaxConns      int32
	DBMinConns      int32
	DBQueryTimeout  time.Duration
	DBRunMigrations bool

	// LegacyResponses keeps the pre-envelope response shapes: bare array for
	// the list, "project" key for the detail, 200 on query failures.
	LegacyResponses bool

	APIBaseURL       string
	APIClientTimeout time.Duration

	CORSAllowedOrigins []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("DB_MAX_CONNS", 25)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("DB_QUERY_TIMEOUT", 5*time.Second)
	v.SetDefault("DB_RUN_MIGRATIONS", false)
	v.SetDefault("API_LEGACY_RESPONSES", false)
	v.SetDefault("API_BASE_URL", "")
	v.SetDefault("API_CLIENT_TIMEOUT", 10*time.Second)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

// Load reads the configuration from the process environment. A .env file,
// when present, is loaded into the environment before this is called.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	databaseURL := strings.TrimSpace(v.GetString("DATABASE_URL"))
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	port := v.GetInt("PORT")
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT %q", v.GetString("PORT"))
	}

	cfg := &Config{
		Port:               port,
		GinMode:            v.GetString("GIN_MODE"),
		DatabaseURL:        databaseURL,
		DBMaxConns:         v.GetInt32("DB_MAX_CONNS"),
		DBMinConns:         v.GetInt32("DB_MIN_CONNS"),
		DBQueryTimeout:     v.GetDuration("DB_QUERY_TIMEOUT"),
		DBRunMigrations:    v.GetBool("DB_RUN_MIGRATIONS"),
		LegacyResponses:    v.GetBool("API_LEGACY_RESPONSES"),
		APIBaseURL:         strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
		APIClientTimeout:   v.GetDuration("API_CLIENT_TIMEOUT"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("invalid GIN_MODE %q (want debug, release or test)", cfg.GinMode)
	}

	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	if cfg.DBMinConns > cfg.DBMaxConns {
		return nil, fmt.Errorf("DB_MIN_CONNS (%d) must not exceed DB_MAX_CONNS (%d)", cfg.DBMinConns, cfg.DBMaxConns)
	}

	// The pages fetch from this same process unless told otherwise.
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
