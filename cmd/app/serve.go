package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vietanh2810/event-management-api/internal/api"
	"github.com/vietanh2810/event-management-api/internal/config"
	"github.com/vietanh2810/event-management-api/internal/db"
	"github.com/vietanh2810/event-management-api/internal/notify"
	"github.com/vietanh2810/event-management-api/internal/payment"
	"github.com/vietanh2810/event-management-api/internal/repository"
	"github.com/vietanh2810/event-management-api/internal/repository/dao"
	"github.com/vietanh2810/event-management-api/internal/scheduler"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the schema, start the status sweeper and serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Start(cmd.Context())
		},
	}
}

func Start(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conf, postgresDB, err := bootstrap()
	if err != nil {
		return err
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to migrate database -> %w", err)
	}

	gateway, err := payment.NewGateway(conf.Payment.Provider, conf.Payment.KeyID, conf.Payment.KeySecret)
	if err != nil {
		return fmt.Errorf("failed to initialize payment gateway -> %w", err)
	}

	if conf.Scheduler.Enabled {
		eventRepo := repository.NewEventRepository(dao.NewEventDAO(postgresDB))
		if err = scheduler.NewStatusSweeper(eventRepo, conf.Scheduler.Cron).Start(ctx); err != nil {
			return fmt.Errorf("failed to start status sweeper -> %w", err)
		}
	}

	s := api.NewServer(conf, postgresDB, openRedis(ctx, conf), newPublisher(conf), gateway)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))

	return serveHTTP(ctx, &http.Server{Addr: addr, Handler: s.Router}, shutdownTimeout)
}

// serveHTTP runs srv until it fails or ctx is cancelled, then drains
// in-flight requests for at most timeout.
func serveHTTP(ctx context.Context, srv *http.Server, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start the server -> %w", err)
	case <-ctx.Done():
	}

	zap.L().Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown -> %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

// openRedis returns nil when rate limiting is off or redis cannot be reached.
func openRedis(ctx context.Context, conf *config.AppConfig) *redis.Client {
	if !conf.RateLimit.Enabled {
		return nil
	}

	rdb, err := db.OpenRedis(ctx, conf.Redis)
	if err != nil {
		zap.L().Warn("redis unavailable, rate limiting disabled", zap.String("addr", conf.Redis.Addr), zap.Error(err))
		return nil
	}

	return rdb
}

func newPublisher(conf *config.AppConfig) notify.Publisher {
	if !conf.RabbitMQ.Enabled {
		return notify.NopPublisher{}
	}

	return notify.NewAMQPPublisher(conf.RabbitMQ.URL)
}
