package repository

import (
	"context"

	"travel-planner/config"
	"travel-planner/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	tripColumns        = `trip_id, title, description, trip_type, start_date, end_date, duration_days, estimated_budget`
	destinationColumns = `destination_id, name, description, country, language, best_time_to_visit, images, trip_id`
	activityColumns    = `activity_id, name, description, start_time, end_time, duration_seconds, price, destination_id`
)

type TripRepository struct {
	*config.Database
}

func NewTripRepository(database *config.Database) *TripRepository {
	return &TripRepository{database}
}

// CreateTrip : сохраняет поездку, duration_days рассчитывается сервисом
func (r *TripRepository) CreateTrip(ctx context.Context, exec sqlx.ExtContext, trip *model.Trip) error {
	query := `
	INSERT INTO trips (` + tripColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := exec.ExecContext(ctx, query,
		trip.TripID, trip.Title, trip.Description, trip.TripType,
		trip.StartDate, trip.EndDate, trip.DurationDays, trip.EstimatedBudget,
	)
	if err != nil {
		return translateError("[TripRepo] ошибка вставки поездки", "trip not found", err)
	}
	return nil
}

func (r *TripRepository) TripExists(ctx context.Context, exec sqlx.ExtContext, tripID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM trips WHERE trip_id = $1)`
	if err := sqlx.GetContext(ctx, exec, &exists, query, tripID); err != nil {
		return false, translateError("[TripRepo] ошибка проверки поездки", "trip not found", err)
	}
	return exists, nil
}

// DeleteTrip : места, активности и участие удаляются каскадно
func (r *TripRepository) DeleteTrip(ctx context.Context, exec sqlx.ExtContext, tripID uuid.UUID) error {
	result, err := exec.ExecContext(ctx, `DELETE FROM trips WHERE trip_id = $1`, tripID)
	if err != nil {
		return translateError("[TripRepo] не удалось удалить поездку", "trip not found", err)
	}
	return requireAffected(result, "[TripRepo] не удалось удалить поездку", "trip not found")
}

func (r *TripRepository) ListTrips(ctx context.Context, exec sqlx.ExtContext, offset, limit int) ([]model.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips ORDER BY start_date ASC, trip_id ASC OFFSET $1 LIMIT $2`
	var trips []model.Trip
	if err := sqlx.SelectContext(ctx, exec, &trips, query, offset, limit); err != nil {
		return nil, translateError("[TripRepo] не удалось получить список поездок", "trip not found", err)
	}
	return trips, nil
}

func (r *TripRepository) CreateDestination(ctx context.Context, exec sqlx.ExtContext, destination *model.Destination) error {
	query := `
	INSERT INTO destinations (` + destinationColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := exec.ExecContext(ctx, query,
		destination.DestinationID, destination.Name, destination.Description, destination.Country,
		destination.Language, destination.BestTimeToVisit, destination.Images, destination.TripID,
	)
	if err != nil {
		return translateError("[TripRepo] ошибка вставки места", "destination not found", err)
	}
	return nil
}

func (r *TripRepository) DestinationExists(ctx context.Context, exec sqlx.ExtContext, destinationID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM destinations WHERE destination_id = $1)`
	if err := sqlx.GetContext(ctx, exec, &exists, query, destinationID); err != nil {
		return false, translateError("[TripRepo] ошибка проверки места", "destination not found", err)
	}
	return exists, nil
}

func (r *TripRepository) ListDestinations(ctx context.Context, exec sqlx.ExtContext) ([]model.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations ORDER BY name ASC`
	var destinations []model.Destination
	if err := sqlx.SelectContext(ctx, exec, &destinations, query); err != nil {
		return nil, translateError("[TripRepo] не удалось получить список мест", "destination not found", err)
	}
	return destinations, nil
}

func (r *TripRepository) ListDestinationsByTrips(ctx context.Context, exec sqlx.ExtContext, tripIDs []uuid.UUID) ([]model.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations WHERE trip_id = ANY($1::uuid[]) ORDER BY name ASC`
	var destinations []model.Destination
	if err := sqlx.SelectContext(ctx, exec, &destinations, query, uuidArray(tripIDs)); err != nil {
		return nil, translateError("[TripRepo] не удалось получить места поездок", "destination not found", err)
	}
	return destinations, nil
}

// CreateActivity : duration_seconds = end_time - start_time
func (r *TripRepository) CreateActivity(ctx context.Context, exec sqlx.ExtContext, activity *model.Activity) error {
	query := `
	INSERT INTO activities (` + activityColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := exec.ExecContext(ctx, query,
		activity.ActivityID, activity.Name, activity.Description, activity.StartTime,
		activity.EndTime, activity.DurationSeconds, activity.Price, activity.DestinationID,
	)
	if err != nil {
		return translateError("[TripRepo] ошибка вставки активности", "activity not found", err)
	}
	return nil
}

func (r *TripRepository) ListActivities(ctx context.Context, exec sqlx.ExtContext) ([]model.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities ORDER BY start_time ASC`
	var activities []model.Activity
	if err := sqlx.SelectContext(ctx, exec, &activities, query); err != nil {
		return nil, translateError("[TripRepo] не удалось получить список активностей", "activity not found", err)
	}
	return activities, nil
}

func (r *TripRepository) ListActivitiesByDestinations(ctx context.Context, exec sqlx.ExtContext, destinationIDs []uuid.UUID) ([]model.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE destination_id = ANY($1::uuid[]) ORDER BY start_time ASC`
	var activities []model.Activity
	if err := sqlx.SelectContext(ctx, exec, &activities, query, uuidArray(destinationIDs)); err != nil {
		return nil, translateError("[TripRepo] не удалось получить активности мест", "activity not found", err)
	}
	return activities, nil
}

func (r *TripRepository) ListParticipantsByTrips(ctx context.Context, exec sqlx.ExtContext, tripIDs []uuid.UUID) ([]model.TripParticipant, error) {
	query := `
	SELECT tp.trip_id, u.user_id, u.username, u.email, u.date_of_birth, u.phone_number
	FROM trip_participants tp
	JOIN users u ON u.user_id = tp.user_id
	WHERE tp.trip_id = ANY($1::uuid[])
	ORDER BY u.username ASC
	`
	var participants []model.TripParticipant
	if err := sqlx.SelectContext(ctx, exec, &participants, query, uuidArray(tripIDs)); err != nil {
		return nil, translateError("[TripRepo] не удалось получить участников", "trip not found", err)
	}
	return participants, nil
}

func uuidArray(ids []uuid.UUID) pq.StringArray {
	out := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
