// Command notify sends one notification batch for the given status. It is
// intended to be invoked by cron or ops tooling; applicants already invited
// for the status are skipped, so reruns are safe.
//
// Usage:
//
//	notify -status ACCEPTED
//
// Exit codes: 0 = every email sent, 1 = error or at least one failed send.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/gis-admissions-backend/internal/adapter/postgres"
	"github.com/heartmarshall/gis-admissions-backend/internal/app"
	"github.com/heartmarshall/gis-admissions-backend/internal/config"
	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
)

func main() {
	status := flag.String("status", "", "application status to notify (PHONE_INTERVIEW_PHASE, ONSITE_INTERVIEW_PHASE, ACCEPTED, REJECTED)")
	timeout := flag.Duration("timeout", 30*time.Minute, "overall batch timeout")
	flag.Parse()

	target := domain.ApplicationStatus(*status)
	if !target.IsNotifiable() {
		fmt.Fprintln(os.Stderr, "Usage: notify -status ACCEPTED")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svcs, err := app.NewServices(cfg, pool, logger)
	if err != nil {
		logger.Error("create services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	result, err := svcs.Notification.SendBatch(ctx, target)
	if err != nil {
		logger.Error("notification batch failed",
			slog.String("status", target.String()),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	if result.Failed > 0 {
		os.Exit(1)
	}
}
