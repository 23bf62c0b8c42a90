package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vietanh2810/event-management-api/internal/repository/dao"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, postgresDB, err := bootstrap()
			if err != nil {
				return err
			}

			if err = dao.InitTables(postgresDB); err != nil {
				return fmt.Errorf("failed to migrate database -> %w", err)
			}

			zap.L().Info("database schema is up to date")
			return nil
		},
	}
}
