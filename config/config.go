package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds client configuration loaded from environment.
type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Session SessionConfig
	Redis   RedisConfig
}

// ServerConfig holds the local UI server settings.
type ServerConfig struct {
	Port         string
	ReadTimeout  int
	WriteTimeout int
}

// BackendConfig points at the reservation REST backend.
type BackendConfig struct {
	BaseURL    string
	TimeoutSec int
}

// SessionConfig selects where the session survives restarts.
type SessionConfig struct {
	Backend  string // "file" or "redis"
	FilePath string
}

// RedisConfig holds Redis settings for the redis session backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load reads configuration from environment, with optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	readTimeout, _ := strconv.Atoi(getEnv("READ_TIMEOUT_SEC", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("WRITE_TIMEOUT_SEC", "30"))
	backendTimeout, _ := strconv.Atoi(getEnv("BACKEND_TIMEOUT_SEC", "15"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "3000"),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		Backend: BackendConfig{
			BaseURL:    getEnv("BACKEND_BASE_URL", "http://localhost:8080"),
			TimeoutSec: backendTimeout,
		},
		Session: SessionConfig{
			Backend:  getEnv("SESSION_BACKEND", "file"),
			FilePath: getEnv("SESSION_FILE", defaultSessionFile()),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
	}
	return cfg, nil
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "roomclient", "session.json")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
