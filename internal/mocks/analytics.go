package mocks

import (
	"context"
	"time"

	"travel-planner/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

type MockAnalyticsRepository struct{ mock.Mock }

func participants(args mock.Arguments) ([]model.Participant, error) {
	if p, ok := args.Get(0).([]model.Participant); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func activitiesWithDestination(args mock.Arguments) ([]model.ActivityWithDestination, error) {
	if a, ok := args.Get(0).([]model.ActivityWithDestination); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func activities(args mock.Arguments) ([]model.Activity, error) {
	if a, ok := args.Get(0).([]model.Activity); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func trips(args mock.Arguments) ([]model.Trip, error) {
	if t, ok := args.Get(0).([]model.Trip); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func destinationCounts(args mock.Arguments) ([]model.DestinationActivityCount, error) {
	if d, ok := args.Get(0).([]model.DestinationActivityCount); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAnalyticsRepository) ParticipantsOfTrip(ctx context.Context, exec sqlx.ExtContext, tripID uuid.UUID) ([]model.Participant, error) {
	return participants(m.Called(ctx, exec, tripID))
}

func (m *MockAnalyticsRepository) TripsWithParticipantsOver(ctx context.Context, exec sqlx.ExtContext, minParticipants int) ([]model.TripParticipantCount, error) {
	args := m.Called(ctx, exec, minParticipants)
	if t, ok := args.Get(0).([]model.TripParticipantCount); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAnalyticsRepository) DestinationsWithActivitiesOver(ctx context.Context, exec sqlx.ExtContext, minActivities int) ([]model.DestinationActivityCount, error) {
	return destinationCounts(m.Called(ctx, exec, minActivities))
}

func (m *MockAnalyticsRepository) UsersByDateOfBirth(ctx context.Context, exec sqlx.ExtContext, dateOfBirth time.Time) ([]model.Participant, error) {
	return participants(m.Called(ctx, exec, dateOfBirth))
}

func (m *MockAnalyticsRepository) ActivitiesOfUser(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID) ([]model.ActivityWithDestination, error) {
	return activitiesWithDestination(m.Called(ctx, exec, userID))
}

func (m *MockAnalyticsRepository) TripsWithParticipantsBornBefore(ctx context.Context, exec sqlx.ExtContext, dateOfBirth time.Time) ([]model.Trip, error) {
	return trips(m.Called(ctx, exec, dateOfBirth))
}

func (m *MockAnalyticsRepository) ActivitiesByDestination(ctx context.Context, exec sqlx.ExtContext, destinationID uuid.UUID) ([]model.ActivityWithDestination, error) {
	return activitiesWithDestination(m.Called(ctx, exec, destinationID))
}

func (m *MockAnalyticsRepository) ActivitiesByTrip(ctx context.Context, exec sqlx.ExtContext, tripID uuid.UUID) ([]model.ActivityWithDestination, error) {
	return activitiesWithDestination(m.Called(ctx, exec, tripID))
}

func (m *MockAnalyticsRepository) DestinationsWithActivitiesStartingAfter(ctx context.Context, exec sqlx.ExtContext, timeOfDay string) ([]model.Destination, error) {
	args := m.Called(ctx, exec, timeOfDay)
	if d, ok := args.Get(0).([]model.Destination); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAnalyticsRepository) ActivitiesInInterval(ctx context.Context, exec sqlx.ExtContext, destinationID uuid.UUID, start, end time.Time) ([]model.Activity, error) {
	return activities(m.Called(ctx, exec, destinationID, start, end))
}

func (m *MockAnalyticsRepository) TotalAmountForDestination(ctx context.Context, exec sqlx.ExtContext, destinationID uuid.UUID) (*model.DestinationCost, error) {
	args := m.Called(ctx, exec, destinationID)
	if c, ok := args.Get(0).(*model.DestinationCost); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAnalyticsRepository) MostExpensiveActivities(ctx context.Context, exec sqlx.ExtContext, destinationID uuid.UUID) ([]model.Activity, error) {
	return activities(m.Called(ctx, exec, destinationID))
}

func (m *MockAnalyticsRepository) UsersInTripsWithActivitiesPricedOver(ctx context.Context, exec sqlx.ExtContext, price float64) ([]model.Participant, error) {
	return participants(m.Called(ctx, exec, price))
}

func (m *MockAnalyticsRepository) MostExpensiveTrips(ctx context.Context, exec sqlx.ExtContext, limit int) ([]model.Trip, error) {
	return trips(m.Called(ctx, exec, limit))
}

func (m *MockAnalyticsRepository) TripsByPopularity(ctx context.Context, exec sqlx.ExtContext) ([]model.TripPopularity, error) {
	args := m.Called(ctx, exec)
	if t, ok := args.Get(0).([]model.TripPopularity); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAnalyticsRepository) DestinationsWithMostActivities(ctx context.Context, exec sqlx.ExtContext) ([]model.DestinationActivityCount, error) {
	return destinationCounts(m.Called(ctx, exec))
}

func (m *MockAnalyticsRepository) AverageActivityPricePerDestination(ctx context.Context, exec sqlx.ExtContext) ([]model.DestinationAveragePrice, error) {
	args := m.Called(ctx, exec)
	if a, ok := args.Get(0).([]model.DestinationAveragePrice); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}
