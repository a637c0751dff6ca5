package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travel-planner/config"
	_ "travel-planner/docs"
	"travel-planner/internal/handler"
	"travel-planner/internal/logging"
	"travel-planner/internal/repository"
	"travel-planner/internal/security"
	"travel-planner/internal/service"
	"travel-planner/internal/tasks"

	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Travel planner API
// @version 1.0
// @description REST API для планирования поездок: пользователи, поездки, места, активности и аналитика

// @host localhost:8080

// @securityDefinitions.oauth2.password OAuth2Password
// @tokenUrl /v1/user/sign-in
// @scope.user Пользователь
// @scope.planner Планировщик поездок
// @scope.admin Администратор
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig(configPath())
	if err != nil {
		slog.Error("ошибка загрузки конфигурации", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	db, err := config.SetupDatabase(&cfg.DatabaseConfig)
	if err != nil {
		logger.Error("не удалось подключиться к БД", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("ошибка при закрытии БД", "error", err)
		}
	}()

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		logger.Error("ошибка подключения к Redis", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("ошибка при закрытии Redis", "error", err)
		}
	}()

	s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
	if err != nil {
		logger.Error("ошибка создания S3 сервиса", "error", err)
		os.Exit(1)
	}

	topicCtx, topicCancel := context.WithTimeout(ctx, 10*time.Second)
	if err := tasks.EnsureTopic(topicCtx, &cfg.Kafka); err != nil {
		logger.Warn("не удалось проверить топик задач", "topic", cfg.Kafka.Topic, "error", err)
	}
	topicCancel()

	dispatcher := tasks.NewDispatcher(tasks.NewKafkaWriter(&cfg.Kafka))
	defer func() {
		if err := dispatcher.Close(); err != nil {
			logger.Error("ошибка при закрытии очереди задач", "error", err)
		}
	}()

	tokenService, err := security.NewTokenService(&cfg.JWT)
	if err != nil {
		logger.Error("ошибка создания сервиса токенов", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	tripRepo := repository.NewTripRepository(db)
	participationRepo := repository.NewParticipationRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	blacklistRepo := repository.NewBlacklistRepository(redisClient)

	authService := service.NewAuthenticationService(db, userRepo, tokenService, blacklistRepo, &cfg.JWT)
	userService := service.NewUserService(db, userRepo, participationRepo, tripRepo, s3Service, dispatcher, &cfg.S3Config)
	plannerService := service.NewPlannerService(db, tripRepo, analyticsRepo, s3Service, dispatcher, &cfg.S3Config)
	adminService := service.NewAdminService(db, userRepo)

	if err := adminService.SeedAdmin(ctx, &cfg.Admin); err != nil {
		logger.Error("не удалось создать администратора", "error", err)
		os.Exit(1)
	}

	authorizer := security.NewAuthorizer(tokenService, userRepo, db)

	srv, router := config.SetupServer(cfg.Server.Addr)
	router.Use(middleware.RequestID, middleware.RealIP, logging.RequestLogger(logger), middleware.Recoverer)
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	setupUserRoutes(router, authorizer, handler.NewAuthenticationHandler(authService), handler.NewUserHandler(userService))
	setupPlannerRoutes(router, authorizer, handler.NewPlannerHandler(plannerService))
	setupAdminRoutes(router, authorizer, handler.NewAdminHandler(adminService))

	runServer(ctx, srv, cfg.Server.Shutdown(), logger)
}

func configPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "config.yaml"
}

func runServer(ctx context.Context, server *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) {
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("сервер запущен", "addr", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("ошибка работы сервера", "error", err)
			return
		}
	case sig := <-signalChannel:
		logger.Info("получен сигнал остановки работы сервера", "signal", sig.String())
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, shutdownTimeout)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		logger.Error("ошибка при остановке сервера", "error", err)
	} else {
		logger.Info("сервер успешно остановлен")
	}
}
