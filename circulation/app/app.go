package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/config"
	"github.com/Astemirdum/library-circulation/circulation/internal/activity"
	"github.com/Astemirdum/library-circulation/circulation/internal/handler"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
	"github.com/Astemirdum/library-circulation/circulation/internal/server"
	"github.com/Astemirdum/library-circulation/circulation/internal/service"
	"github.com/Astemirdum/library-circulation/circulation/migrations"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/Astemirdum/library-circulation/pkg/logger"
	"github.com/Astemirdum/library-circulation/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "circulation")
	defer log.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	defer db.Close()
	repo := repository.NewRepository(db, log)

	var recorder service.Recorder = activity.NewStoreRecorder(repo, log)
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		publisher := activity.NewPublisher(producer, cfg.Kafka.ActivityTopic, log)
		defer publisher.Close() //nolint:errcheck
		recorder = publisher

		group, err := kafka.NewConsumer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewConsumer", zap.Error(err))
		}
		defer group.Close() //nolint:errcheck
		go kafka.Consume(ctx, group, activity.NewConsumer(repo, log), log, cfg.Kafka.ActivityTopic)
	}

	svc := service.NewService(repo, log,
		service.WithPolicy(cfg.Circulation.Policy()),
		service.WithActivity(recorder),
	)
	if policy, err := svc.ReloadPolicy(ctx); err != nil {
		log.Warn("settings not loaded, using configured defaults", zap.Error(err))
	} else {
		log.Info("circulation policy",
			zap.Int("loan_days", policy.LoanDays),
			zap.Stringer("fine_rate_per_day", policy.FineRatePerDay),
			zap.Stringer("max_fine_before_block", policy.MaxFineBeforeBlock))
	}

	h := handler.New(svc, log, cfg.Auth)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	cancel()
	log.Info("Graceful shutdown finished")
}

// Migrate applies a goose command to the configured database.
func Migrate(cfg *config.Config, command string) error {
	log := logger.NewLogger(cfg.Log, "migrate")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, nil)
	if err != nil {
		return err
	}
	defer db.Close()

	if err = postgres.Migrate(db, migrations.MigrationFiles, command); err != nil {
		return err
	}
	log.Info("migrate done", zap.String("command", command))
	return nil
}
