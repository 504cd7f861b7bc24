package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kelydev/apiCitas/config"
	"github.com/kelydev/apiCitas/controllers"
	"github.com/kelydev/apiCitas/database"
	"github.com/kelydev/apiCitas/repository"
	"github.com/kelydev/apiCitas/routes"
	"github.com/kelydev/apiCitas/session"
	"github.com/kelydev/apiCitas/templates"
)

var citasCmd = &cobra.Command{
	Use:   "citas",
	Short: "Run the quote service",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		db, err := database.InitDB(ctx, cfg, l)
		if err != nil {
			return err
		}
		defer db.Close()
		repo := repository.NewCitaStore(db)

		citas, err := repo.GetAllCitas(ctx)
		if err != nil {
			return err
		}
		l.Info().Int("citas", len(citas)).Msg("citas loaded")

		sessions, closeSessions, err := newSessionStore(ctx, cfg, l)
		if err != nil {
			return err
		}
		defer closeSessions()

		tmpl, err := templates.Load(cfg.TemplatesDir)
		if err != nil {
			return fmt.Errorf("failed to parse templates: %w", err)
		}
		static, err := templates.Static(cfg.TemplatesDir)
		if err != nil {
			return fmt.Errorf("failed to open static files: %w", err)
		}

		h := routes.SetupCitasRoutes(controllers.CitasDeps{
			Repo:     repo,
			Sessions: sessions,
			Tmpl:     tmpl,
		}, static, l, cfg)
		return serve(ctx, l, ":"+cfg.CitasPort, h)
	},
}

func init() {
	rootCmd.AddCommand(citasCmd)
}

// newSessionStore uses Redis when REDIS_URL is set and a signed cookie otherwise.
// The returned func releases whatever the store holds.
func newSessionStore(ctx context.Context, cfg config.Config, l zerolog.Logger) (session.Store, func() error, error) {
	if cfg.RedisURL == "" {
		if cfg.SessionSecret == "" {
			return nil, nil, errors.New("SESSION_SECRET must be set when REDIS_URL is empty")
		}
		store, err := session.NewCookieStore(cfg.SessionSecret, cfg.SessionTTL)
		if err != nil {
			return nil, nil, err
		}
		l.Info().Msg("sessions kept in signed cookies")
		return store, func() error { return nil }, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	l.Info().Str("addr", opts.Addr).Msg("sessions kept in redis")
	return session.NewRedisStore(client, cfg.SessionTTL), client.Close, nil
}
