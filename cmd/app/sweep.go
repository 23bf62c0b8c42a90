package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vietanh2810/event-management-api/internal/repository"
	"github.com/vietanh2810/event-management-api/internal/repository/dao"
	"github.com/vietanh2810/event-management-api/internal/scheduler"
)

func sweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Mark past due scheduled events as completed once and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, postgresDB, err := bootstrap()
			if err != nil {
				return err
			}

			eventRepo := repository.NewEventRepository(dao.NewEventDAO(postgresDB))
			sweeper := scheduler.NewStatusSweeper(eventRepo, conf.Scheduler.Cron)

			updated, err := sweeper.Sweep(cmd.Context(), time.Now())
			if err != nil {
				return fmt.Errorf("failed to sweep events -> %w", err)
			}

			zap.L().Info("status sweep finished", zap.Int("updated", updated))
			return nil
		},
	}
}
