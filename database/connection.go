package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// Importa el driver de PostgreSQL
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kelydev/apiCitas/config"
	"github.com/kelydev/apiCitas/models"
)

const pingTimeout = 5 * time.Second

// InitDB opens the database/sql pool used by the quote service.
func InitDB(ctx context.Context, cfg config.Config, l zerolog.Logger) (*sql.DB, error) {
	l.Info().Str("host", cfg.DBHost).Str("db", cfg.DBName).Msg("initializing postgresql connection")

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	l.Info().Msg("postgresql connection established")
	return db, nil
}

// InitGorm opens the gorm handle used by the user service.
func InitGorm(ctx context.Context, cfg config.Config, l zerolog.Logger) (*gorm.DB, error) {
	level := gormlogger.Warn
	if cfg.Env == "dev" {
		level = gormlogger.Info
	}
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get gorm pool: %w", err)
	}
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	l.Info().Msg("gorm connection established")
	return db, nil
}

const createCitasTable = `
CREATE TABLE IF NOT EXISTS "Citas" (
	id        SERIAL PRIMARY KEY,
	cita      TEXT NOT NULL,
	categoria TEXT NOT NULL
)`

// Migrate creates the "Citas" table when missing and migrates usuario.
func Migrate(ctx context.Context, sqlDB *sql.DB, gormDB *gorm.DB) error {
	if _, err := sqlDB.ExecContext(ctx, createCitasTable); err != nil {
		return fmt.Errorf("failed to create Citas table: %w", err)
	}
	if err := gormDB.WithContext(ctx).AutoMigrate(&models.Usuario{}); err != nil {
		return fmt.Errorf("failed to migrate usuario table: %w", err)
	}
	return nil
}
