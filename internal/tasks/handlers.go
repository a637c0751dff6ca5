package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"travel-planner/internal/model"
	"travel-planner/internal/ports"
)

const welcomeBody = "On behalf of our team we wish you a very nice welcome."

func WelcomeEmailHandler(sender EmailSender) ports.TaskHandler {
	return func(ctx context.Context, raw json.RawMessage) error {
		var args model.WelcomeEmailArgs
		if err := json.Unmarshal(raw, &args); err != nil {
			return fmt.Errorf("[%s] некорректные аргументы: %w", model.TaskSendWelcomeEmail, err)
		}
		if args.Email == "" {
			return errors.New("[" + model.TaskSendWelcomeEmail + "] не указан email")
		}
		return sender.Send(ctx, args.Email, "Welcome to our app "+args.Username, welcomeBody)
	}
}

func S3UploadHandler(storage ports.S3Storage) ports.TaskHandler {
	return func(ctx context.Context, raw json.RawMessage) error {
		var args model.S3UploadArgs
		if err := json.Unmarshal(raw, &args); err != nil {
			return fmt.Errorf("[%s] некорректные аргументы: %w", model.TaskS3Upload, err)
		}
		if args.Key == "" {
			return errors.New("[" + model.TaskS3Upload + "] не указан ключ объекта")
		}
		return storage.PutObject(ctx, args.Key, args.ContentType, args.Body)
	}
}

// Register : регистрирует все обработчики задач приложения
func Register(w *Worker, sender EmailSender, storage ports.S3Storage) {
	w.Register(model.TaskSendWelcomeEmail, WelcomeEmailHandler(sender))
	w.Register(model.TaskS3Upload, S3UploadHandler(storage))
}
