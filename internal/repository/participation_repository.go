package repository

import (
	"context"

	"travel-planner/config"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ParticipationRepository struct {
	*config.Database
}

func NewParticipationRepository(database *config.Database) *ParticipationRepository {
	return &ParticipationRepository{database}
}

func (r *ParticipationRepository) IsParticipant(ctx context.Context, exec sqlx.ExtContext, userID, tripID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM trip_participants WHERE user_id = $1 AND trip_id = $2)`
	if err := sqlx.GetContext(ctx, exec, &exists, query, userID, tripID); err != nil {
		return false, translateError("[ParticipationRepo] ошибка проверки участия", "trip not found", err)
	}
	return exists, nil
}

func (r *ParticipationRepository) AddParticipant(ctx context.Context, exec sqlx.ExtContext, userID, tripID uuid.UUID) error {
	query := `INSERT INTO trip_participants (user_id, trip_id) VALUES ($1, $2)`
	if _, err := exec.ExecContext(ctx, query, userID, tripID); err != nil {
		return translateError("[ParticipationRepo] не удалось добавить участника", "trip not found", err)
	}
	return nil
}

// RemoveParticipant : возвращает false, если пользователь не участвовал в поездке
func (r *ParticipationRepository) RemoveParticipant(ctx context.Context, exec sqlx.ExtContext, userID, tripID uuid.UUID) (bool, error) {
	query := `DELETE FROM trip_participants WHERE user_id = $1 AND trip_id = $2`
	result, err := exec.ExecContext(ctx, query, userID, tripID)
	if err != nil {
		return false, translateError("[ParticipationRepo] не удалось удалить участника", "trip not found", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, translateError("[ParticipationRepo] не удалось удалить участника", "trip not found", err)
	}
	return affected > 0, nil
}
