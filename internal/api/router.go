package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wheeltracker/backend/internal/api/handlers"
	custommiddleware "github.com/wheeltracker/backend/internal/api/middleware"
	"github.com/wheeltracker/backend/internal/config"
	"github.com/wheeltracker/backend/internal/service"
)

// Services bundles the service dependencies the router wires into handlers.
type Services struct {
	System   *service.SystemService
	Premium  *service.PremiumService
	Position *service.PositionService
	Trade    *service.TradeService
	Snapshot *service.SnapshotService
	Setting  *service.SettingService
	Profile  *service.ProfileService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svcs Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svcs.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/premium", func(r chi.Router) {
			premiumHandler := handlers.NewPremiumHandler(svcs.Premium)
			r.Get("/summary", premiumHandler.Summary)
			r.Get("/top", premiumHandler.TopPerformers)
		})

		r.Route("/positions", func(r chi.Router) {
			positionHandler := handlers.NewPositionHandler(svcs.Position, svcs.Trade)
			r.Get("/", positionHandler.Positions)
			r.Get("/{ticker}", positionHandler.Position)
			r.Get("/{ticker}/trades", positionHandler.PositionTrades)
		})

		r.Route("/trades", func(r chi.Router) {
			tradeHandler := handlers.NewTradeHandler(svcs.Trade, svcs.Position)
			r.Get("/", tradeHandler.Trades)
			r.Post("/", tradeHandler.CreateTrade)
			r.Get("/{uuid}", tradeHandler.GetTrade)
			r.Put("/{uuid}/close", tradeHandler.CloseTrade)
		})

		r.Route("/assignments", func(r chi.Router) {
			tradeHandler := handlers.NewTradeHandler(svcs.Trade, svcs.Position)
			r.Post("/", tradeHandler.CreateAssignment)
		})

		r.Route("/snapshots", func(r chi.Router) {
			snapshotHandler := handlers.NewSnapshotHandler(svcs.Snapshot)
			r.Get("/", snapshotHandler.Snapshots)
			r.Post("/", snapshotHandler.SaveSnapshot)
		})

		r.Route("/settings", func(r chi.Router) {
			settingHandler := handlers.NewSettingHandler(svcs.Setting)
			r.Get("/", settingHandler.Settings)
			r.Get("/{key}", settingHandler.GetSetting)
			r.Put("/{key}", settingHandler.UpdateSetting)
		})

		r.Route("/portfolio", func(r chi.Router) {
			profileHandler := handlers.NewProfileHandler(svcs.Profile)
			r.Get("/info", profileHandler.Info)
			r.Put("/info", profileHandler.SaveInfo)
			r.Get("/milestones", profileHandler.Milestones)
			r.Put("/milestones", profileHandler.SaveMilestones)
		})
	})

	return r
}
