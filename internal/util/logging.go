package util

import (
	"fmt"
	"log/slog"
)

func LogError(message string, err error) error {
	slog.Error(message, "error", err)
	return fmt.Errorf("%s: %w", message, err)
}
