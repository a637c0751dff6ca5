package service

import (
	"context"
	"log/slog"

	"travel-planner/internal/apperror"
	"travel-planner/internal/ports"
	"travel-planner/internal/util"

	"github.com/jmoiron/sqlx"
)

// runInTransaction : commit при успехе fn, rollback при ошибке или панике внутри fn
func runInTransaction(ctx context.Context, db ports.Database, fn func(exec sqlx.ExtContext) error) error {
	exec, rollback, commit, err := db.BeginTX(ctx)
	if err != nil {
		return apperror.Wrap(apperror.KindInternal, "transaction failed", util.LogError("не удалось открыть транзакцию", err))
	}

	finished := false
	defer func() {
		if finished {
			return
		}
		if rbErr := rollback(); rbErr != nil {
			slog.Error("ошибка отката транзакции", "error", rbErr)
		}
	}()

	if err := fn(exec); err != nil {
		return err
	}

	// после неудачного commit транзакция уже закрыта, повторный rollback не нужен
	finished = true
	if err := commit(); err != nil {
		return apperror.Wrap(apperror.KindInternal, "transaction failed", util.LogError("не удалось зафиксировать транзакцию", err))
	}
	return nil
}
