// @title Al Toque API
// @version 1.0
// @description Backend for the Al Toque Spanish school site: sign-ups, placement test and class schedule.
// @contact.name Al Toque
// @contact.email hola@altoque.ie
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_ADMIN_JWT' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "altoque/cmd/api/docs"
	"altoque/internal/adapter"
	"altoque/internal/adapter/emailjs"
	"altoque/internal/adapter/sheetdb"
	"altoque/internal/cache"
	"altoque/internal/config"
	"altoque/internal/handler"
	"altoque/internal/logger"
	"altoque/internal/middleware"
	"altoque/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer func() { _ = logger.Sync() }()

	// Redis backs the sheet caches and placement attempts
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// Upstream collaborators
	sheetClient := sheetdb.NewClient(cfg.SheetDB.Timeout)
	emailClient := emailjs.NewClient(cfg.EmailJS)
	if cfg.SheetDB.RegistrationsEndpoint == "" {
		appLogger.Warn("SHEETDB_ENDPOINT is not set; sign-ups will fail")
	}

	// Initialize services
	questionBank := service.NewQuestionBankService(sheetClient, cacheAdapter, cfg.SheetDB.QuestionsEndpoint,
		cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Questions, config.DefaultQuestionsTTL))
	scheduleService := service.NewScheduleService(sheetClient, cacheAdapter, cfg.SheetDB.ScheduleEndpoint,
		cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Schedule, config.DefaultScheduleTTL))
	placementService := service.NewPlacementService(questionBank, cacheAdapter,
		cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Attempt, config.DefaultAttemptTTL))
	registrationService := service.NewRegistrationService(emailClient, sheetClient, cfg.SheetDB.RegistrationsEndpoint)

	// Initialize handlers
	handlers := handler.Handlers{
		Health:       handler.NewHealthHandler(cacheAdapter),
		Registration: handler.NewRegistrationHandler(registrationService),
		Quiz:         handler.NewQuizHandler(questionBank, placementService),
		Schedule:     handler.NewScheduleHandler(scheduleService),
		Admin:        handler.NewAdminHandler(questionBank, scheduleService),
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,PUT,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Accept-Language,Authorization",
		MaxAge:       300,
	}))
	app.Use(middleware.Locale())

	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.RegisterRoutes(app.Group("/api"), handlers, cfg.Admin.JWTSecret)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
