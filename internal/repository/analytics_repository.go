package repository

import (
	"context"
	"time"

	"travel-planner/config"
	"travel-planner/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const participantColumns = `u.user_id, u.username, u.email, u.date_of_birth, u.phone_number`

// AnalyticsRepository : аналитические запросы, каждый выполняется одним выражением SQL
type AnalyticsRepository struct {
	*config.Database
}

func NewAnalyticsRepository(database *config.Database) *AnalyticsRepository {
	return &AnalyticsRepository{database}
}

func (r *AnalyticsRepository) ParticipantsOfTrip(ctx context.Context, exec sqlx.ExtContext, tripID uuid.UUID) ([]model.Participant, error) {
	query := `
	SELECT ` + participantColumns + `
	FROM users u
	JOIN trip_participants tp ON tp.user_id = u.user_id
	WHERE tp.trip_id = $1
	ORDER BY u.username
	`
	var out []model.Participant
	return out, r.selectInto(ctx, exec, &out, "[AnalyticsRepo] участники поездки", query, tripID)
}

// TripsWithParticipantsOver : поездки, где участников строго больше minParticipants
func (r *AnalyticsRepository) TripsWithParticipantsOver(ctx context.Context, exec sqlx.ExtContext, minParticipants int) ([]model.TripParticipantCount, error) {
	query := `
	SELECT t.trip_id, t.title, COUNT(tp.user_id) AS participant_count
	FROM trips t
	JOIN trip_participants tp ON tp.trip_id = t.trip_id
	GROUP BY t.trip_id, t.title
	HAVING COUNT(tp.user_id) > $1
	ORDER BY participant_count DESC, t.title
	`
	var out []model.TripParticipantCount
	return out, r.selectInto(ctx, exec, &out, "[AnalyticsRepo] поездки по числу участников", query, minParticipants)
}

func (r *AnalyticsRepository) DestinationsWithActivitiesOver(ctx context.Context, exec sqlx.ExtContext, minActivities int) ([]model.DestinationActivityCount, error) {
	query := `
	SELECT d.destination_id, d.name, d.country, COUNT(a.activity_id) AS activity_count
	FROM destinations d
	JOIN activities a ON a.destination_id = d.destination_id
	GROUP BY d.destination_id, d.name, d.country
	HAVING COUNT(a.activity_id) > $1
	ORDER BY activity_count DESC, d.name
	`
	var out []model.DestinationActivityCount
	return out, r.selectInto(ctx, exec, &out, "[AnalyticsRepo] места по числу активностей", query, minActivities)
}

func (r *AnalyticsRepository) UsersByDateOfBirth(ctx context.Context, exec sqlx.ExtContext, dateOfBirth time.Time) ([]model.Participant, error) {
	query := `
	SELECT ` + participantColumns + `
	FROM users u
	WHERE u.date_of_birth = $1
	ORDER BY u.username
	`
	var out []model.Participant
	return out, r.selectInto(ctx, exec, &out, "[AnalyticsRepo] пользователи по дате рождения", query, dateOfBirth)
}

// ActivitiesOfUser : активности всех поездок, в которых участвует пользователь
func (r *AnalyticsRepository) ActivitiesOfUser(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID) ([]model.ActivityWithDestination, error) {
	query := `
	SELECT a.activity_id, a.name, a.description, a.start_time, a.end_time, a.duration_seconds, a.price,
	       a.destination_id, d.name AS destination_name
	FROM activities a
	JOIN destinations d ON d.destination_id = a.destination_id
	JOIN trip_participants tp ON tp.trip_id = d.trip_id
	WHERE tp.user_id = $1
	ORDER BY a.start_time
	`
	var out []model.ActivityWithDestination
	return out, r.selectInto(ctx, exec, &out, "[AnalyticsRepo] активности пользователя", query, userID)
}

// TripsWithParticipantsBornBefore : вложенный подзапрос по участникам
func (r *AnalyticsRepository) TripsWithParticipantsBornBefore(ctx context.Context, exec sqlx.ExtContext, dateOfBirth time.Time) ([]model.Trip, error) {
	query := `
	SELECT ` + tripColumns + `
	FROM trips
	WHERE trip_id IN (
		SELECT tp.trip_id FROM trip_participants tp
		WHERE tp.user_id IN (SELECT u.user_id FROM users u WHERE u.date_of_birth < $1)
	)
	ORDER BY start_date
	`
	var out []model.Trip
	return out, r.selectInto(ctx, exec, &out, "[AnalyticsRepo] поездки по дате рождения участников", query, dateOfBirth)
}

func (r *AnalyticsRepository) ActivitiesByDestination(ctx context.Context, exec sqlx.ExtContext, destinationID uuid.UUID) ([]model.ActivityWithDestination, error) {
	query := `
	SELECT a.activity_id, a.name, a.description, a.start_time, a.end_time, a.duration_seconds, a.price,
	       a.destination_id, d.name AS destination_name
	FROM activities a
	JOIN destinations d ON d.destination_id = a.destination_id
	WHERE a.destination_id = $1
	ORDER BY a.start_time
	`
	var out []model.ActivityWithDestination
	return out, r.selectInto(ctx, exec, &out, "[AnalyticsRepo] активности места", query, destinationID)
}

func (r *AnalyticsRepository) ActivitiesByTrip(ctx context.Context, exec sqlx.ExtContext, tripID uuid.UUID) ([]model.ActivityWithDestination, error) {
	query := `
	SELECT a.activity_id, a.name, a.description, a.start_time, a.end_time, a.duration_seconds, a.price,
	       a.destination_id, d.name AS destination_name
	FROM activities a
	JOIN destinations d ON d.destination_id = a.destination_id
	WHERE d.trip_id = $1
	ORDER BY a.start_time
	`
	var out []model.ActivityWithDestination
	return out, r.selectInto(ctx, exec, &out, "[AnalyticsRepo] активности поездки", query, tripID)
}

// DestinationsWithActivitiesStartingAfter : timeOfDay в формате HH:MM
func (r *AnalyticsRepository) DestinationsWithActivitiesStartingAfter(ctx context.Context, exec sqlx.ExtContext, timeOfDay string) ([]model.Destination, error) {
	query := `
	SELECT ` + destinationColumns + `
	FROM destinations d
	WHERE EXISTS (
		SELECT 1 FROM activities a
		WHERE a.destination_id = d.destination_id AND a.start_time::time > $1::time
	)
	ORDER BY d.name
	`
	var out []model.Destination
	return out, r.selectInto(ctx, exec, &out, "[AnalyticsRepo] места по времени начала активностей", query, timeOfDay)
}

func (r *AnalyticsRepository) ActivitiesInInterval(ctx context.Context, exec sqlx.ExtContext, destinationID uuid.UUID, start, end time.Time) ([]model.Activity, error) {
	query := `
	SELECT ` + activityColumns + `
	FROM activities
	WHERE destination_id = $1 AND start_time >= $2 AND end_time <= $3
	ORDER BY start_time
	`
	var out []model.Activity
	return out, r.selectInto(ctx, exec, &out, "[AnalyticsRepo] активности в интервале", query, destinationID, start, end)
}

func (r *AnalyticsRepository) TotalAmountForDestination(ctx context.Context, exec sqlx.ExtContext, destinationID uuid.UUID) (*model.DestinationCost, error) {
	query := `
	SELECT d.destination_id, d.name, COUNT(a.activity_id) AS activity_count, COALESCE(SUM(a.price), 0) AS total_amount
	FROM destinations d
	LEFT JOIN activities a ON a.destination_id = d.destination_id
	WHERE d.destination_id = $1
	GROUP BY d.destination_id, d.name
	`
	var out model.DestinationCost
	if err := sqlx.GetContext(ctx, exec, &out, query, destinationID); err != nil {
		return nil, translateError("[AnalyticsRepo] сумма по месту", "destination not found", err)
	}
	return &out, nil
}

// MostExpensiveActivities : все активности с максимальной ценой, при равенстве несколько
func (r *AnalyticsRepository) MostExpensiveActivities(ctx context.Context, exec sqlx.ExtContext, destinationID uuid.UUID) ([]model.Activity, error) {
	query := `
	SELECT ` + activityColumns + `
	FROM activities
	WHERE destination_id = $1
	  AND price = (SELECT MAX(price) FROM activities WHERE destination_id = $1)
	ORDER BY start_time
	`
	var out []model.Activity
	return out, r.selectInto(ctx, exec, &out, "[AnalyticsRepo] самые дорогие активности", query, destinationID)
}

func (r *AnalyticsRepository) UsersInTripsWithActivitiesPricedOver(ctx context.Context, exec sqlx.ExtContext, price float64) ([]model.Participant, error) {
	query := `
	SELECT ` + participantColumns + `
	FROM users u
	WHERE u.user_id IN (
		SELECT tp.user_id FROM trip_participants tp
		WHERE tp.trip_id IN (
			SELECT d.trip_id FROM destinations d
			JOIN activities a ON a.destination_id = d.destination_id
			WHERE a.price > $1
		)
	)
	ORDER BY u.username
	`
	var out []model.Participant
	return out, r.selectInto(ctx, exec, &out, "[AnalyticsRepo] пользователи поездок с дорогими активностями", query, price)
}

func (r *AnalyticsRepository) MostExpensiveTrips(ctx context.Context, exec sqlx.ExtContext, limit int) ([]model.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips ORDER BY estimated_budget DESC, title LIMIT $1`
	var out []model.Trip
	return out, r.selectInto(ctx, exec, &out, "[AnalyticsRepo] самые дорогие поездки", query, limit)
}

// TripsByPopularity : поездки без участников тоже попадают в рейтинг
func (r *AnalyticsRepository) TripsByPopularity(ctx context.Context, exec sqlx.ExtContext) ([]model.TripPopularity, error) {
	query := `
	SELECT t.trip_id, t.title,
	       COUNT(tp.user_id) AS participants,
	       RANK() OVER (ORDER BY COUNT(tp.user_id) DESC) AS popularity_rank
	FROM trips t
	LEFT JOIN trip_participants tp ON tp.trip_id = t.trip_id
	GROUP BY t.trip_id, t.title
	ORDER BY popularity_rank, t.title
	`
	var out []model.TripPopularity
	return out, r.selectInto(ctx, exec, &out, "[AnalyticsRepo] популярность поездок", query)
}

func (r *AnalyticsRepository) DestinationsWithMostActivities(ctx context.Context, exec sqlx.ExtContext) ([]model.DestinationActivityCount, error) {
	query := `
	WITH counts AS (
		SELECT d.destination_id, d.name, d.country, COUNT(a.activity_id) AS activity_count
		FROM destinations d
		JOIN activities a ON a.destination_id = d.destination_id
		GROUP BY d.destination_id, d.name, d.country
	)
	SELECT destination_id, name, country, activity_count
	FROM counts
	WHERE activity_count = (SELECT MAX(activity_count) FROM counts)
	ORDER BY name
	`
	var out []model.DestinationActivityCount
	return out, r.selectInto(ctx, exec, &out, "[AnalyticsRepo] места с наибольшим числом активностей", query)
}

func (r *AnalyticsRepository) AverageActivityPricePerDestination(ctx context.Context, exec sqlx.ExtContext) ([]model.DestinationAveragePrice, error) {
	query := `
	SELECT d.destination_id, d.name, ROUND(AVG(a.price), 2) AS average_price
	FROM destinations d
	JOIN activities a ON a.destination_id = d.destination_id
	GROUP BY d.destination_id, d.name
	ORDER BY average_price DESC, d.name
	`
	var out []model.DestinationAveragePrice
	return out, r.selectInto(ctx, exec, &out, "[AnalyticsRepo] средняя цена активностей", query)
}

func (r *AnalyticsRepository) selectInto(ctx context.Context, exec sqlx.ExtContext, dest interface{}, message, query string, args ...interface{}) error {
	if err := sqlx.SelectContext(ctx, exec, dest, query, args...); err != nil {
		return translateError(message, "not found", err)
	}
	return nil
}
