package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kelydev/apiCitas/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the Citas and usuario tables",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		sqlDB, err := database.InitDB(ctx, cfg, l)
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		gormDB, err := database.InitGorm(ctx, cfg, l)
		if err != nil {
			return err
		}
		if pool, err := gormDB.DB(); err == nil {
			defer pool.Close()
		}

		if err := database.Migrate(ctx, sqlDB, gormDB); err != nil {
			return err
		}
		l.Info().Msg("migration complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
