package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Auth   AuthConfig
	Log    LogConfig
	Seed   SeedConfig
}

type ServerConfig struct {
	Host        string
	CORSOrigins []string
}

type DBConfig struct {
	DSN          string
	QueryTimeout time.Duration
}

type AuthConfig struct {
	Secret   string
	TokenTTL time.Duration
}

type LogConfig struct {
	Mode string
}

type SeedConfig struct {
	Enabled       bool
	AdminUsername string
	AdminPassword string
}

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://localhost:8081",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
	"http://127.0.0.1:8081",
}

// Load reads the configuration from the environment, loading a .env file first when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Host:        getEnv("SERVER_HOST", ":8080"),
			CORSOrigins: getList("CORS_ORIGINS", defaultCORSOrigins),
		},
		DB: DBConfig{
			DSN:          getEnv("DB_DSN", ""),
			QueryTimeout: time.Duration(getInt("DB_QUERY_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Auth: AuthConfig{
			Secret:   getEnv("JWT_SECRET", "change-me"),
			TokenTTL: time.Duration(getInt("TOKEN_TTL_HOURS", 12)) * time.Hour,
		},
		Log: LogConfig{
			Mode: getEnv("LOG_MODE", "dev"),
		},
		Seed: SeedConfig{
			Enabled:       getBool("SEED", true),
			AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
			AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil || i <= 0 {
		return def
	}
	return i
}

func getBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}

func getList(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
