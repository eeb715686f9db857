package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/homeworkbot/panel-api/internal/api/handler"
	"github.com/homeworkbot/panel-api/internal/api/middleware"
	"github.com/homeworkbot/panel-api/internal/core/ports"
	"github.com/homeworkbot/panel-api/internal/core/service"
	mongodb "github.com/homeworkbot/panel-api/internal/infrastructure/db/mongo"
	redisdb "github.com/homeworkbot/panel-api/internal/infrastructure/db/redis"
	"github.com/homeworkbot/panel-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb and sender may be nil: the admin cache and outbound delivery degrade
// gracefully without them.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, sender ports.Sender, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("panel"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	homeworkRepo := mongodb.NewHomeworkRepository(db)
	scheduleRepo := mongodb.NewScheduleRepository(db)
	rebusRepo := mongodb.NewRebusRepository(db)
	adminRepo := mongodb.NewAdminRepository(db)
	flagRepo := mongodb.NewFlagRepository(db)
	eventRepo := mongodb.NewEventRepository(db)

	var adminCache ports.AdminCache
	if rdb != nil {
		adminCache = redisdb.NewAdminCache(rdb)
	}

	// --- Services ---
	authService := service.NewAuthService(cfg.Secret(), cfg.StaticAdminIDs(), adminRepo, adminCache, log)
	engine := service.NewDeliveryEngine(sender, cfg.Broadcast.RatePerSec, log)
	broadcastService := service.NewBroadcastService(authService, userRepo, homeworkRepo, engine, log)

	initData := middleware.InitData(authService)
	admin := middleware.RequireAdmin()

	// --- Handlers ---
	authHandler := handler.NewAuthHandler()
	homeworkHandler := handler.NewHomeworkHandler(homeworkRepo)
	scheduleHandler := handler.NewScheduleHandler(scheduleRepo)
	fileHandler := handler.NewFileHandler(sender)
	rebusHandler := handler.NewRebusHandler(rebusRepo)
	userHandler := handler.NewUserHandler(userRepo)
	classHandler := handler.NewClassHandler()
	modeHandler := handler.NewModeHandler(flagRepo)
	broadcastHandler := handler.NewBroadcastHandler(broadcastService)
	statsHandler := handler.NewStatsHandler(userRepo, homeworkRepo, rebusRepo, eventRepo, log)

	// --- Identity ---
	e.GET("/auth/me", authHandler.Me, initData)

	// --- Homework ---
	e.GET("/homework", homeworkHandler.Get)
	e.POST("/homework", homeworkHandler.Save, initData, admin)
	e.POST("/homework/delete", homeworkHandler.Delete, initData, admin)

	// --- Schedule files ---
	e.GET("/schedule/:kind", scheduleHandler.List)
	e.POST("/schedule", scheduleHandler.Add, initData, admin)
	e.POST("/schedule/clear", scheduleHandler.Clear, initData, admin)
	e.GET("/file/:file_id", fileHandler.Get)

	// --- Rebuses ---
	e.GET("/rebuses", rebusHandler.List)
	e.GET("/rebuses/top", rebusHandler.Top)

	// --- Users ---
	e.GET("/users", userHandler.List)
	e.GET("/users/:id", userHandler.Get)
	e.POST("/users/block", userHandler.Block, initData, admin)
	e.POST("/users/unblock", userHandler.Unblock, initData, admin)

	// --- Classes (placeholder endpoints) ---
	e.GET("/classes", classHandler.List)
	e.GET("/classes/search", classHandler.Search)
	e.GET("/classes/:id", classHandler.Get)

	// --- Modes ---
	e.GET("/modes", modeHandler.Get)
	e.POST("/modes", modeHandler.Set, initData, admin)

	// --- Broadcast: the service authorizes the raw assertion itself, so
	// the route carries no identity middleware. ---
	e.POST("/broadcast", broadcastHandler.Send)

	// --- Stats ---
	e.GET("/stats", statsHandler.Get, initData, admin)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
