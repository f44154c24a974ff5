package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-presence/internal/audit"
	"github.com/BruksfildServices01/salon-presence/internal/config"
	"github.com/BruksfildServices01/salon-presence/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-presence/internal/infra/repository"
	"github.com/BruksfildServices01/salon-presence/internal/middleware"
	"github.com/BruksfildServices01/salon-presence/internal/presenceflags"
	ucPresence "github.com/BruksfildServices01/salon-presence/internal/usecase/presence"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	flags presenceflags.Store,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	presenceRepo := infraRepo.NewPresenceGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — PRESENCE
	// ======================================================
	getStatusUC := ucPresence.NewGetStatus(
		presenceRepo,
	)

	toggleStatusUC := ucPresence.NewToggleStatus(
		presenceRepo,
	)

	reportLocationUC := ucPresence.NewReportLocation(
		presenceRepo,
		flags,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	presenceHandler := handlers.NewPresenceHandler(
		getStatusUC,
		toggleStatusUC,
		reportLocationUC,
	)

	trackingConfigHandler := handlers.NewTrackingConfigHandler(db, auditDispatcher)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db, auditDispatcher)
	workersHandler := handlers.NewWorkersHandler(db, auditDispatcher)
	statusLogsHandler := handlers.NewStatusLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// PRESENCE (worker)
			// ------------------------------
			secured.GET("/me/presence", presenceHandler.GetStatus)
			secured.PUT("/me/presence/status", presenceHandler.ToggleStatus)
			secured.POST("/me/presence/report", presenceHandler.ReportLocation)

			// ------------------------------
			// SETTINGS / LEITURAS (owner)
			// ------------------------------
			owner := secured.Group("/")
			owner.Use(middleware.RequireOwner())
			{
				owner.GET("/me/salon/tracking-config", trackingConfigHandler.Get)
				owner.PUT("/me/salon/tracking-config", trackingConfigHandler.Update)

				owner.GET("/me/salon/working-hours", workingHoursHandler.Get)
				owner.PUT("/me/salon/working-hours", workingHoursHandler.Update)

				owner.POST("/me/workers", workersHandler.Create)
				owner.GET("/me/salon/presence", workersHandler.ListPresence)

				owner.GET("/me/salon/status-logs", statusLogsHandler.List)
				owner.GET("/me/salon/status-stats", statusLogsHandler.Stats)
			}
		}
	}
}
