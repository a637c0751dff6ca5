package mocks

import (
	"context"
	"time"

	"travel-planner/internal/model"
	"travel-planner/internal/model/requestresponse"
	"travel-planner/internal/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockAuthenticationService struct{ mock.Mock }

func tokensPair(args mock.Arguments) (*model.TokensPair, error) {
	if t, ok := args.Get(0).(*model.TokensPair); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthenticationService) Login(ctx context.Context, username, password string, scopes []string) (*model.TokensPair, error) {
	return tokensPair(m.Called(ctx, username, password, scopes))
}

func (m *MockAuthenticationService) Refresh(ctx context.Context, refreshToken string) (*model.TokensPair, error) {
	return tokensPair(m.Called(ctx, refreshToken))
}

func (m *MockAuthenticationService) Logout(ctx context.Context, refreshToken string) error {
	return m.Called(ctx, refreshToken).Error(0)
}

type MockUserService struct{ mock.Mock }

func (m *MockUserService) SignUp(ctx context.Context, req requestresponse.SignUpRequest) (*model.User, error) {
	args := m.Called(ctx, req)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) UpdateUsername(ctx context.Context, user *model.User, username string) error {
	return m.Called(ctx, user, username).Error(0)
}

func (m *MockUserService) UpdatePassword(ctx context.Context, user *model.User, password, confirmPassword string) error {
	return m.Called(ctx, user, password, confirmPassword).Error(0)
}

func (m *MockUserService) UpdateEmail(ctx context.Context, user *model.User, email string) error {
	return m.Called(ctx, user, email).Error(0)
}

func (m *MockUserService) UpdatePhoneNumber(ctx context.Context, user *model.User, phoneNumber string) error {
	return m.Called(ctx, user, phoneNumber).Error(0)
}

func (m *MockUserService) UpdateDateOfBirth(ctx context.Context, user *model.User, dateOfBirth string) error {
	return m.Called(ctx, user, dateOfBirth).Error(0)
}

func (m *MockUserService) UpdateProfilePicture(ctx context.Context, user *model.User, upload ports.Upload) (string, error) {
	args := m.Called(ctx, user, upload)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) DeleteProfilePicture(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserService) Profile(ctx context.Context, user *model.User) (*requestresponse.ProfileResponse, error) {
	args := m.Called(ctx, user)
	if p, ok := args.Get(0).(*requestresponse.ProfileResponse); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) ProfileImage(ctx context.Context, user *model.User) (*ports.ProfileImage, error) {
	args := m.Called(ctx, user)
	if p, ok := args.Get(0).(*ports.ProfileImage); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) Deactivate(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserService) Reactivate(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserService) JoinTrip(ctx context.Context, user *model.User, tripID uuid.UUID) error {
	return m.Called(ctx, user, tripID).Error(0)
}

func (m *MockUserService) LeaveTrip(ctx context.Context, user *model.User, tripID uuid.UUID) error {
	return m.Called(ctx, user, tripID).Error(0)
}

type MockAdminService struct{ mock.Mock }

func (m *MockAdminService) RemoveUser(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockAdminService) SetUserActive(ctx context.Context, userID uuid.UUID, active bool) (*model.User, error) {
	args := m.Called(ctx, userID, active)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminService) UpdateScopes(ctx context.Context, userID uuid.UUID, scopes []string) (*model.User, error) {
	args := m.Called(ctx, userID, scopes)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminService) ListUsers(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	if u, ok := args.Get(0).([]*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockPlannerService struct{ mock.Mock }

func (m *MockPlannerService) CreateTrip(ctx context.Context, req requestresponse.CreateTripRequest) (*model.Trip, error) {
	args := m.Called(ctx, req)
	if t, ok := args.Get(0).(*model.Trip); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlannerService) CreateDestination(ctx context.Context, owner *model.User, req requestresponse.CreateDestinationRequest, images []ports.Upload) (*model.Destination, error) {
	args := m.Called(ctx, owner, req, images)
	if d, ok := args.Get(0).(*model.Destination); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlannerService) CreateActivity(ctx context.Context, req requestresponse.CreateActivityRequest) (*model.Activity, error) {
	args := m.Called(ctx, req)
	if a, ok := args.Get(0).(*model.Activity); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlannerService) DeleteTrip(ctx context.Context, tripID uuid.UUID) error {
	return m.Called(ctx, tripID).Error(0)
}

func (m *MockPlannerService) ListTrips(ctx context.Context, offset, limit int) ([]model.TripDetails, error) {
	args := m.Called(ctx, offset, limit)
	if t, ok := args.Get(0).([]model.TripDetails); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlannerService) ListDestinations(ctx context.Context) ([]model.DestinationDetails, error) {
	args := m.Called(ctx)
	if d, ok := args.Get(0).([]model.DestinationDetails); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlannerService) ListActivities(ctx context.Context) ([]model.Activity, error) {
	return activities(m.Called(ctx))
}

func (m *MockPlannerService) ParticipantsOfTrip(ctx context.Context, tripID uuid.UUID) ([]model.Participant, error) {
	return participants(m.Called(ctx, tripID))
}

func (m *MockPlannerService) TripsWithParticipantsOver(ctx context.Context, minParticipants int) ([]model.TripParticipantCount, error) {
	args := m.Called(ctx, minParticipants)
	if t, ok := args.Get(0).([]model.TripParticipantCount); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlannerService) DestinationsWithActivitiesOver(ctx context.Context, minActivities int) ([]model.DestinationActivityCount, error) {
	return destinationCounts(m.Called(ctx, minActivities))
}

func (m *MockPlannerService) UsersByDateOfBirth(ctx context.Context, dateOfBirth time.Time) ([]model.Participant, error) {
	return participants(m.Called(ctx, dateOfBirth))
}

func (m *MockPlannerService) ActivitiesOfUser(ctx context.Context, userID uuid.UUID) ([]model.ActivityWithDestination, error) {
	return activitiesWithDestination(m.Called(ctx, userID))
}

func (m *MockPlannerService) TripsWithParticipantsBornBefore(ctx context.Context, dateOfBirth time.Time) ([]model.Trip, error) {
	return trips(m.Called(ctx, dateOfBirth))
}

func (m *MockPlannerService) ActivitiesByDestination(ctx context.Context, destinationID uuid.UUID) ([]model.ActivityWithDestination, error) {
	return activitiesWithDestination(m.Called(ctx, destinationID))
}

func (m *MockPlannerService) ActivitiesByTrip(ctx context.Context, tripID uuid.UUID) ([]model.ActivityWithDestination, error) {
	return activitiesWithDestination(m.Called(ctx, tripID))
}

func (m *MockPlannerService) DestinationsWithActivitiesStartingAfter(ctx context.Context, timeOfDay string) ([]model.Destination, error) {
	args := m.Called(ctx, timeOfDay)
	if d, ok := args.Get(0).([]model.Destination); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlannerService) ActivitiesInInterval(ctx context.Context, destinationID uuid.UUID, start, end time.Time) ([]model.Activity, error) {
	return activities(m.Called(ctx, destinationID, start, end))
}

func (m *MockPlannerService) TotalAmountForDestination(ctx context.Context, destinationID uuid.UUID) (*model.DestinationCost, error) {
	args := m.Called(ctx, destinationID)
	if c, ok := args.Get(0).(*model.DestinationCost); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlannerService) MostExpensiveActivities(ctx context.Context, destinationID uuid.UUID) ([]model.Activity, error) {
	return activities(m.Called(ctx, destinationID))
}

func (m *MockPlannerService) UsersInTripsWithActivitiesPricedOver(ctx context.Context, price float64) ([]model.Participant, error) {
	return participants(m.Called(ctx, price))
}

func (m *MockPlannerService) MostExpensiveTrips(ctx context.Context, limit int) ([]model.Trip, error) {
	return trips(m.Called(ctx, limit))
}

func (m *MockPlannerService) TripsByPopularity(ctx context.Context) ([]model.TripPopularity, error) {
	args := m.Called(ctx)
	if t, ok := args.Get(0).([]model.TripPopularity); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlannerService) DestinationsWithMostActivities(ctx context.Context) ([]model.DestinationActivityCount, error) {
	return destinationCounts(m.Called(ctx))
}

func (m *MockPlannerService) AverageActivityPricePerDestination(ctx context.Context) ([]model.DestinationAveragePrice, error) {
	args := m.Called(ctx)
	if a, ok := args.Get(0).([]model.DestinationAveragePrice); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}
