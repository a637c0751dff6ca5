package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"travel-planner/config"
	"travel-planner/internal/ports"

	"github.com/segmentio/kafka-go"
)

// MessageReader : часть kafka.Reader, нужная воркеру
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewKafkaReader : MaxBytes совпадает с лимитом writer, иначе задача s3_upload не помещается в fetch
func NewKafkaReader(cfg *config.KafkaConfig) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.GroupID,
		Topic:    cfg.Topic,
		MaxBytes: int(cfg.MaxMessageBytes),
	})
}

type Worker struct {
	reader     MessageReader
	handlers   map[string]ports.TaskHandler
	maxRetries int
	retryDelay time.Duration
	logger     *slog.Logger
}

func NewWorker(reader MessageReader, cfg *config.KafkaConfig, logger *slog.Logger) *Worker {
	return &Worker{
		reader:     reader,
		handlers:   make(map[string]ports.TaskHandler),
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryBackoff(),
		logger:     logger,
	}
}

func (w *Worker) Register(name string, handler ports.TaskHandler) {
	w.handlers[name] = handler
}

// Run : читает очередь до отмены контекста. Сообщение коммитится после обработки, даже неудачной
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info("[Worker] воркер запущен", "tasks", len(w.handlers))
	for {
		msg, err := w.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				w.logger.Info("[Worker] воркер остановлен")
				return nil
			}
			return fmt.Errorf("[Worker] ошибка чтения сообщения: %w", err)
		}

		w.process(ctx, msg)

		if err := w.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("[Worker] ошибка коммита сообщения: %w", err)
		}
	}
}

func (w *Worker) process(ctx context.Context, msg kafka.Message) {
	var envelope Envelope
	if err := json.Unmarshal(msg.Value, &envelope); err != nil {
		w.logger.Error("[Worker] некорректное сообщение", "offset", msg.Offset, "error", err)
		return
	}

	log := w.logger.With("task", envelope.Name, "offset", msg.Offset)
	handler, ok := w.handlers[envelope.Name]
	if !ok {
		log.Warn("[Worker] неизвестная задача")
		return
	}

	if err := w.runWithRetries(ctx, log, handler, envelope.Args); err != nil {
		log.Error("[Worker] задача не выполнена", "attempts", w.maxRetries+1, "error", err)
		return
	}
	log.Info("[Worker] задача выполнена")
}

func (w *Worker) runWithRetries(ctx context.Context, log *slog.Logger, handler ports.TaskHandler, args json.RawMessage) error {
	var err error
	for attempt := 0; attempt <= w.maxRetries; attempt++ {
		if attempt > 0 {
			log.Warn("[Worker] повтор задачи", "attempt", attempt, "error", err)
			select {
			case <-ctx.Done():
				return errors.Join(err, ctx.Err())
			case <-time.After(w.retryDelay):
			}
		}
		if err = handler(ctx, args); err == nil {
			return nil
		}
	}
	return err
}
