package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/wheeltracker/backend/internal/api"
	"github.com/wheeltracker/backend/internal/config"
	"github.com/wheeltracker/backend/internal/database"
	"github.com/wheeltracker/backend/internal/demo"
	"github.com/wheeltracker/backend/internal/repository"
	"github.com/wheeltracker/backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	positionRepo := repository.NewPositionRepository(db)
	tradeRepo := repository.NewTradeRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	premiumService := service.NewPremiumService(tradeRepo)
	positionService := service.NewPositionService(db, positionRepo, tradeRepo)
	tradeService := service.NewTradeService(tradeRepo, positionService)
	snapshotService := service.NewSnapshotService(snapshotRepo, positionRepo)
	profileService := service.NewProfileService(profileRepo)

	settingService, err := service.NewSettingService(settingRepo, cfg.Settings.Secret)
	if err != nil {
		log.Fatalf("Failed to initialize settings: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Seed sample data in demo mode
	if cfg.DemoMode {
		seeder := demo.NewSeeder(positionRepo, tradeRepo)
		if err := seeder.Seed(ctx); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	// Schedule the daily snapshot job
	scheduler := cron.New()
	if cfg.Snapshot.Enabled {
		_, err := scheduler.AddFunc(cfg.Snapshot.Schedule, func() {
			if _, err := snapshotService.CaptureDailySnapshot(context.Background(), time.Now().UTC()); err != nil {
				log.Printf("Snapshot job failed: %v", err)
			}
		})
		if err != nil {
			log.Fatalf("Failed to schedule snapshot job: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
		log.Printf("Scheduled daily snapshot job: %s", cfg.Snapshot.Schedule)
	}

	// Create router
	router := api.NewRouter(api.Services{
		System:   systemService,
		Premium:  premiumService,
		Position: positionService,
		Trade:    tradeService,
		Snapshot: snapshotService,
		Setting:  settingService,
		Profile:  profileService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		log.Println("Shutting down server...")

		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server exited")
}
