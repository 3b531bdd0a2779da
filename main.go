package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"freight-auction/config"
	auction "freight-auction/internal/auctionService"
	award "freight-auction/internal/awardService"
	"freight-auction/internal/notifier"
	"freight-auction/internal/repository"
	"freight-auction/internal/scheduler"
	"freight-auction/internal/server"
	trigger "freight-auction/internal/triggerService"
	"freight-auction/utils"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	repo := repository.NewMemoryRepo()
	dispatcher := notifier.NewDispatcher(repo)

	auctionSvc := auction.NewAuctionService(repo, dispatcher)
	awardSvc := award.NewAwardService(repo, dispatcher)
	triggerSvc := trigger.NewTriggerService(repo)

	evaluator := notifier.NewEvaluator(repo, repo, dispatcher, cfg.CycleWorkers)
	sched := scheduler.New(evaluator, repo, cfg.CycleInterval, cfg.CycleTimeout)
	if err := sched.Start(); err != nil {
		utils.Fatal("Failed to start scheduler", map[string]any{"error": err.Error()})
	}

	router := server.SetupRouter(auctionSvc, awardSvc, triggerSvc)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		utils.Info("Starting auction server", map[string]any{"port": cfg.Port})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Fatal("Server failed", map[string]any{"error": err.Error()})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	utils.Info("Shutting down", nil)

	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Error("Server shutdown failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	utils.Info("Shutdown complete", nil)
}
