package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting read from the environment.
type Config struct {
	Env          string
	CitasPort    string
	UsuariosPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	Origin        string // CORS
	SessionSecret string
	SessionTTL    time.Duration
	RedisURL      string
	RateLimit     int
	TemplatesDir  string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// Load reads the .env file (if any) and then the process environment.
func Load() Config {
	// Cargar variables de entorno desde .env
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	return Config{
		Env:          env("APP_ENV", "dev"),
		CitasPort:    env("CITAS_PORT", "8000"),
		UsuariosPort: env("USUARIOS_PORT", "8001"),

		DBHost:     env("DB_HOST", "localhost"),
		DBPort:     env("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     env("DB_NAME", "citas"),
		DBSSLMode:  env("DB_SSLMODE", "disable"),

		Origin:        env("CORS_ORIGIN", "http://localhost:4200"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    envDuration("SESSION_TTL", 24*time.Hour),
		RedisURL:      os.Getenv("REDIS_URL"),
		RateLimit:     envInt("RATE_LIMIT_PER_MINUTE", 200),
		TemplatesDir:  os.Getenv("TEMPLATES_DIR"),
	}
}

// Validate reports missing settings the services cannot start without.
func (c Config) Validate() error {
	if c.DBUser == "" || c.DBPassword == "" || c.DBHost == "" || c.DBPort == "" || c.DBName == "" {
		return errors.New("database environment variables DB_USER, DB_PASSWORD, DB_HOST, DB_PORT, DB_NAME must be set")
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive, got %d", c.RateLimit)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	return nil
}

// DSN builds the PostgreSQL connection string shared by lib/pq and gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}
