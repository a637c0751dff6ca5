package ports

import (
	"context"
	"time"

	"travel-planner/internal/model"
	"travel-planner/internal/model/requestresponse"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// TripRepository : SQL слой поездок, мест и активностей
type TripRepository interface {
	CreateTrip(ctx context.Context, exec sqlx.ExtContext, trip *model.Trip) error
	TripExists(ctx context.Context, exec sqlx.ExtContext, tripID uuid.UUID) (bool, error)
	DeleteTrip(ctx context.Context, exec sqlx.ExtContext, tripID uuid.UUID) error
	ListTrips(ctx context.Context, exec sqlx.ExtContext, offset, limit int) ([]model.Trip, error)
	CreateDestination(ctx context.Context, exec sqlx.ExtContext, destination *model.Destination) error
	DestinationExists(ctx context.Context, exec sqlx.ExtContext, destinationID uuid.UUID) (bool, error)
	ListDestinations(ctx context.Context, exec sqlx.ExtContext) ([]model.Destination, error)
	ListDestinationsByTrips(ctx context.Context, exec sqlx.ExtContext, tripIDs []uuid.UUID) ([]model.Destination, error)
	CreateActivity(ctx context.Context, exec sqlx.ExtContext, activity *model.Activity) error
	ListActivities(ctx context.Context, exec sqlx.ExtContext) ([]model.Activity, error)
	ListActivitiesByDestinations(ctx context.Context, exec sqlx.ExtContext, destinationIDs []uuid.UUID) ([]model.Activity, error)
	ListParticipantsByTrips(ctx context.Context, exec sqlx.ExtContext, tripIDs []uuid.UUID) ([]model.TripParticipant, error)
}

// AnalyticsRepository : аналитические запросы планировщика, каждый одним SQL выражением
type AnalyticsRepository interface {
	ParticipantsOfTrip(ctx context.Context, exec sqlx.ExtContext, tripID uuid.UUID) ([]model.Participant, error)
	TripsWithParticipantsOver(ctx context.Context, exec sqlx.ExtContext, minParticipants int) ([]model.TripParticipantCount, error)
	DestinationsWithActivitiesOver(ctx context.Context, exec sqlx.ExtContext, minActivities int) ([]model.DestinationActivityCount, error)
	UsersByDateOfBirth(ctx context.Context, exec sqlx.ExtContext, dateOfBirth time.Time) ([]model.Participant, error)
	ActivitiesOfUser(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID) ([]model.ActivityWithDestination, error)
	TripsWithParticipantsBornBefore(ctx context.Context, exec sqlx.ExtContext, dateOfBirth time.Time) ([]model.Trip, error)
	ActivitiesByDestination(ctx context.Context, exec sqlx.ExtContext, destinationID uuid.UUID) ([]model.ActivityWithDestination, error)
	ActivitiesByTrip(ctx context.Context, exec sqlx.ExtContext, tripID uuid.UUID) ([]model.ActivityWithDestination, error)
	DestinationsWithActivitiesStartingAfter(ctx context.Context, exec sqlx.ExtContext, timeOfDay string) ([]model.Destination, error)
	ActivitiesInInterval(ctx context.Context, exec sqlx.ExtContext, destinationID uuid.UUID, start, end time.Time) ([]model.Activity, error)
	TotalAmountForDestination(ctx context.Context, exec sqlx.ExtContext, destinationID uuid.UUID) (*model.DestinationCost, error)
	MostExpensiveActivities(ctx context.Context, exec sqlx.ExtContext, destinationID uuid.UUID) ([]model.Activity, error)
	UsersInTripsWithActivitiesPricedOver(ctx context.Context, exec sqlx.ExtContext, price float64) ([]model.Participant, error)
	MostExpensiveTrips(ctx context.Context, exec sqlx.ExtContext, limit int) ([]model.Trip, error)
	TripsByPopularity(ctx context.Context, exec sqlx.ExtContext) ([]model.TripPopularity, error)
	DestinationsWithMostActivities(ctx context.Context, exec sqlx.ExtContext) ([]model.DestinationActivityCount, error)
	AverageActivityPricePerDestination(ctx context.Context, exec sqlx.ExtContext) ([]model.DestinationAveragePrice, error)
}

type PlannerService interface {
	CreateTrip(ctx context.Context, req requestresponse.CreateTripRequest) (*model.Trip, error)
	CreateDestination(ctx context.Context, owner *model.User, req requestresponse.CreateDestinationRequest, images []Upload) (*model.Destination, error)
	CreateActivity(ctx context.Context, req requestresponse.CreateActivityRequest) (*model.Activity, error)
	DeleteTrip(ctx context.Context, tripID uuid.UUID) error
	ListTrips(ctx context.Context, offset, limit int) ([]model.TripDetails, error)
	ListDestinations(ctx context.Context) ([]model.DestinationDetails, error)
	ListActivities(ctx context.Context) ([]model.Activity, error)

	ParticipantsOfTrip(ctx context.Context, tripID uuid.UUID) ([]model.Participant, error)
	TripsWithParticipantsOver(ctx context.Context, minParticipants int) ([]model.TripParticipantCount, error)
	DestinationsWithActivitiesOver(ctx context.Context, minActivities int) ([]model.DestinationActivityCount, error)
	UsersByDateOfBirth(ctx context.Context, dateOfBirth time.Time) ([]model.Participant, error)
	ActivitiesOfUser(ctx context.Context, userID uuid.UUID) ([]model.ActivityWithDestination, error)
	TripsWithParticipantsBornBefore(ctx context.Context, dateOfBirth time.Time) ([]model.Trip, error)
	ActivitiesByDestination(ctx context.Context, destinationID uuid.UUID) ([]model.ActivityWithDestination, error)
	ActivitiesByTrip(ctx context.Context, tripID uuid.UUID) ([]model.ActivityWithDestination, error)
	DestinationsWithActivitiesStartingAfter(ctx context.Context, timeOfDay string) ([]model.Destination, error)
	ActivitiesInInterval(ctx context.Context, destinationID uuid.UUID, start, end time.Time) ([]model.Activity, error)
	TotalAmountForDestination(ctx context.Context, destinationID uuid.UUID) (*model.DestinationCost, error)
	MostExpensiveActivities(ctx context.Context, destinationID uuid.UUID) ([]model.Activity, error)
	UsersInTripsWithActivitiesPricedOver(ctx context.Context, price float64) ([]model.Participant, error)
	MostExpensiveTrips(ctx context.Context, limit int) ([]model.Trip, error)
	TripsByPopularity(ctx context.Context) ([]model.TripPopularity, error)
	DestinationsWithMostActivities(ctx context.Context) ([]model.DestinationActivityCount, error)
	AverageActivityPricePerDestination(ctx context.Context) ([]model.DestinationAveragePrice, error)
}
