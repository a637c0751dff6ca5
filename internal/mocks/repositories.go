// Package mocks содержит testify моки портов для тестов сервисов, middleware и обработчиков.
package mocks

import (
	"context"
	"database/sql"
	"time"

	"travel-planner/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

// FakeDB : заглушка пула соединений, транзакция возвращает сам FakeDB
type FakeDB struct {
	Commits   int
	Rollbacks int
}

func (f *FakeDB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (f *FakeDB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (f *FakeDB) QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error) {
	return nil, nil
}
func (f *FakeDB) QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row {
	return &sqlx.Row{}
}
func (f *FakeDB) BindNamed(query string, arg interface{}) (string, []interface{}, error) {
	return "", nil, nil
}
func (f *FakeDB) DriverName() string         { return "fake" }
func (f *FakeDB) Rebind(query string) string { return query }

func (f *FakeDB) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	return f,
		func() error { f.Rollbacks++; return nil },
		func() error { f.Commits++; return nil },
		nil
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	args := m.Called(ctx, exec, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, exec sqlx.ExtContext, username string) (*model.User, error) {
	args := m.Called(ctx, exec, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, exec, userID)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) UpdateUsername(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, username string) error {
	return m.Called(ctx, exec, userID, username).Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, passwordHash string) error {
	return m.Called(ctx, exec, userID, passwordHash).Error(0)
}

func (m *MockUserRepository) UpdateEmail(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, email string) error {
	return m.Called(ctx, exec, userID, email).Error(0)
}

func (m *MockUserRepository) UpdatePhoneNumber(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, phoneNumber string) error {
	return m.Called(ctx, exec, userID, phoneNumber).Error(0)
}

func (m *MockUserRepository) UpdateDateOfBirth(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, dateOfBirth time.Time) error {
	return m.Called(ctx, exec, userID, dateOfBirth).Error(0)
}

func (m *MockUserRepository) UpdateProfilePicture(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, pictureURL *string) error {
	return m.Called(ctx, exec, userID, pictureURL).Error(0)
}

func (m *MockUserRepository) SetActive(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, active bool) error {
	return m.Called(ctx, exec, userID, active).Error(0)
}

func (m *MockUserRepository) UpdateScopes(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, scopes []string) error {
	return m.Called(ctx, exec, userID, scopes).Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID) error {
	return m.Called(ctx, exec, userID).Error(0)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, exec sqlx.ExtContext) ([]*model.User, error) {
	args := m.Called(ctx, exec)
	if users, ok := args.Get(0).([]*model.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockParticipationRepository struct{ mock.Mock }

func (m *MockParticipationRepository) IsParticipant(ctx context.Context, exec sqlx.ExtContext, userID, tripID uuid.UUID) (bool, error) {
	args := m.Called(ctx, exec, userID, tripID)
	return args.Bool(0), args.Error(1)
}

func (m *MockParticipationRepository) AddParticipant(ctx context.Context, exec sqlx.ExtContext, userID, tripID uuid.UUID) error {
	return m.Called(ctx, exec, userID, tripID).Error(0)
}

func (m *MockParticipationRepository) RemoveParticipant(ctx context.Context, exec sqlx.ExtContext, userID, tripID uuid.UUID) (bool, error) {
	args := m.Called(ctx, exec, userID, tripID)
	return args.Bool(0), args.Error(1)
}

type MockTripRepository struct{ mock.Mock }

func (m *MockTripRepository) CreateTrip(ctx context.Context, exec sqlx.ExtContext, trip *model.Trip) error {
	return m.Called(ctx, exec, trip).Error(0)
}

func (m *MockTripRepository) TripExists(ctx context.Context, exec sqlx.ExtContext, tripID uuid.UUID) (bool, error) {
	args := m.Called(ctx, exec, tripID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTripRepository) DeleteTrip(ctx context.Context, exec sqlx.ExtContext, tripID uuid.UUID) error {
	return m.Called(ctx, exec, tripID).Error(0)
}

func (m *MockTripRepository) ListTrips(ctx context.Context, exec sqlx.ExtContext, offset, limit int) ([]model.Trip, error) {
	args := m.Called(ctx, exec, offset, limit)
	if trips, ok := args.Get(0).([]model.Trip); ok {
		return trips, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTripRepository) CreateDestination(ctx context.Context, exec sqlx.ExtContext, destination *model.Destination) error {
	return m.Called(ctx, exec, destination).Error(0)
}

func (m *MockTripRepository) DestinationExists(ctx context.Context, exec sqlx.ExtContext, destinationID uuid.UUID) (bool, error) {
	args := m.Called(ctx, exec, destinationID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTripRepository) ListDestinations(ctx context.Context, exec sqlx.ExtContext) ([]model.Destination, error) {
	args := m.Called(ctx, exec)
	if d, ok := args.Get(0).([]model.Destination); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTripRepository) ListDestinationsByTrips(ctx context.Context, exec sqlx.ExtContext, tripIDs []uuid.UUID) ([]model.Destination, error) {
	args := m.Called(ctx, exec, tripIDs)
	if d, ok := args.Get(0).([]model.Destination); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTripRepository) CreateActivity(ctx context.Context, exec sqlx.ExtContext, activity *model.Activity) error {
	return m.Called(ctx, exec, activity).Error(0)
}

func (m *MockTripRepository) ListActivities(ctx context.Context, exec sqlx.ExtContext) ([]model.Activity, error) {
	args := m.Called(ctx, exec)
	if a, ok := args.Get(0).([]model.Activity); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTripRepository) ListActivitiesByDestinations(ctx context.Context, exec sqlx.ExtContext, destinationIDs []uuid.UUID) ([]model.Activity, error) {
	args := m.Called(ctx, exec, destinationIDs)
	if a, ok := args.Get(0).([]model.Activity); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTripRepository) ListParticipantsByTrips(ctx context.Context, exec sqlx.ExtContext, tripIDs []uuid.UUID) ([]model.TripParticipant, error) {
	args := m.Called(ctx, exec, tripIDs)
	if p, ok := args.Get(0).([]model.TripParticipant); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockBlacklistRepository struct{ mock.Mock }

func (m *MockBlacklistRepository) Blacklist(ctx context.Context, jti string, ttl time.Duration) error {
	return m.Called(ctx, jti, ttl).Error(0)
}

func (m *MockBlacklistRepository) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}
