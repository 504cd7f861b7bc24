package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kelydev/apiCitas/database"
	"github.com/kelydev/apiCitas/repository"
	"github.com/kelydev/apiCitas/routes"
)

var usuariosCmd = &cobra.Command{
	Use:   "usuarios",
	Short: "Run the user service",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		db, err := database.InitGorm(ctx, cfg, l)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		h := routes.SetupUsuariosRoutes(repository.NewUsuarioStore(db), l, cfg)
		return serve(ctx, l, ":"+cfg.UsuariosPort, h)
	},
}

func init() {
	rootCmd.AddCommand(usuariosCmd)
}
