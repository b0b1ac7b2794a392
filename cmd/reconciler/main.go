package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prompt-hub/config"
	"prompt-hub/db"
	"prompt-hub/repositories"
	"prompt-hub/services"
)

// The reconciler recomputes the denormalized category counters from the
// real document counts on a fixed interval. Counter writes elsewhere are
// best-effort, so drift is expected and healed here.
func main() {
	config.InitApp()
	config.InitLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := db.Init(ctx); err != nil {
		config.Log.Errorf("failed to init mongo: %v", err)
		os.Exit(1)
	}

	interval := 10 * time.Minute
	if v := os.Getenv("RECONCILE_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			interval = d
		}
	}

	database := db.Database()
	svc := services.NewReconcileService(
		repositories.NewPromptRepository(database),
		repositories.NewBlogPostRepository(database),
		repositories.NewCategoryRepository(database),
		repositories.NewBlogCategoryRepository(database),
	)

	config.Log.Infof("starting counter reconciler, interval %s", interval)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	runOnce(ctx, svc)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			runOnce(ctx, svc)
		case <-sigChan:
			config.Log.Info("received shutdown signal, stopping reconciler")
			return
		}
	}
}

func runOnce(ctx context.Context, svc *services.ReconcileService) {
	runCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	fixed, err := svc.Run(runCtx)
	if err != nil {
		config.Log.Errorf("reconcile run failed: %v", err)
		return
	}
	if fixed > 0 {
		config.Log.Infof("reconcile run fixed %d drifted counters", fixed)
	} else {
		config.Log.Debug("reconcile run found no drift")
	}
}
