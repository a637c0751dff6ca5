package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"travel-planner/config"
	"travel-planner/internal/logging"
	"travel-planner/internal/service"
	"travel-planner/internal/tasks"
)

// Воркер фоновых задач: приветственные письма и загрузка изображений в S3
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		slog.Error("ошибка загрузки конфигурации", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
	if err != nil {
		logger.Error("ошибка создания S3 сервиса", "error", err)
		os.Exit(1)
	}

	reader := tasks.NewKafkaReader(&cfg.Kafka)
	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("ошибка при закрытии kafka reader", "error", err)
		}
	}()

	worker := tasks.NewWorker(reader, &cfg.Kafka, logger)
	tasks.Register(worker, tasks.NewSMTPMailer(&cfg.SMTP), s3Service)

	if err := worker.Run(ctx); err != nil {
		logger.Error("воркер остановлен с ошибкой", "error", err)
		os.Exit(1)
	}
}
