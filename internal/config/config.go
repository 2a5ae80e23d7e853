package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	LogLevel   string
	ServerPort string

	DBUrl        string
	MaxOpenConns int
	MaxIdleConns int

	// CORSOrigin is the only front-end origin allowed to call the API.
	CORSOrigin string
}

// Load reads the environment, pulling in a .env file first when one exists.
// Variables already set in the environment win over the file.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:          getEnv("APP_ENV", "production"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		ServerPort:   getEnv("SERVER_PORT", "8000"),
		DBUrl:        getEnv("DATABASE_URL", "database.db"),
		MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),
		CORSOrigin:   getEnv("CORS_ORIGIN", "http://localhost:5173"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
