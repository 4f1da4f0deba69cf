package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/api"
	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("ledger-server starting")

	cfg, err := config.Load(os.Getenv("LEDGER_CONFIG_FILE"))
	if err != nil {
		logrus.WithError(err).Fatal("config.Load")
		return
	}

	store := storage.NewStore(cfg.DataFile, logger)
	ldg := ledger.New()

	records, err := store.Load()
	if err != nil {
		logrus.WithError(err).Fatal("storage.Load")
		return
	}
	if err := ldg.Restore(storage.SummariesFromRecords(records)); err != nil {
		logrus.WithError(err).Fatal("ledger.Restore")
		return
	}

	svc := service.NewService(ldg, service.AuthConfig{
		JWTSecret:     cfg.JWTSecret,
		TokenTTL:      time.Duration(cfg.TokenTTLMinutes) * time.Minute,
		AttemptBudget: cfg.LoginAttempts,
		AdminPassword: cfg.AdminPassword,
	})

	delegator := operator.NewOperatorDelegator(ldg, cfg.Workers)
	delegator.Start()

	saveSnapshot := func() {
		if err := store.Save(storage.RecordsFromSummaries(ldg.Snapshot())); err != nil {
			logger.WithError(err).Error("Snapshot.Save")
		}
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.InterestSchedule, func() {
		if err := delegator.Process(context.Background(), &actions.AccrueInterest{}); err != nil {
			logger.WithError(err).Error("Scheduler.AccrueInterest")
		}
	}); err != nil {
		logrus.WithError(err).Fatal("cron.AddFunc interest")
		return
	}
	if _, err := scheduler.AddFunc(cfg.SnapshotSchedule, saveSnapshot); err != nil {
		logrus.WithError(err).Fatal("cron.AddFunc snapshot")
		return
	}
	scheduler.Start()

	httpRest := &api.Rest{
		Logger:   logger,
		Port:     cfg.Port,
		Service:  svc,
		Operator: delegator,
	}
	go httpRest.Serve()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logrus.Info("ledger-server shutting down")

	// Drain HTTP first so no request can reach a stopped queue.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpRest.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("HttpServer.Shutdown")
	}
	<-scheduler.Stop().Done()
	delegator.Stop()
	saveSnapshot()
}
