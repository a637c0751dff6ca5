package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travel-planner/internal/apperror"
	"travel-planner/internal/handler"
	"travel-planner/internal/mocks"
	"travel-planner/internal/model"
	"travel-planner/internal/model/requestresponse"
	"travel-planner/internal/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateTrip(t *testing.T) {
	planner := &mocks.MockPlannerService{}
	h := handler.NewPlannerHandler(planner)

	req := requestresponse.CreateTripRequest{
		Title: "Alpine summer", StartDate: "2025-07-01", EndDate: "2025-07-14",
		EstimatedBudget: decimal.RequireFromString("2500.00"),
	}
	trip := &model.Trip{TripID: uuid.New(), Title: req.Title, DurationDays: 13, EstimatedBudget: req.EstimatedBudget}
	planner.On("CreateTrip", mock.Anything, mock.MatchedBy(func(got requestresponse.CreateTripRequest) bool {
		return got.Title == req.Title && got.EstimatedBudget.Equal(req.EstimatedBudget)
	})).Return(trip, nil).Once()

	rec := httptest.NewRecorder()
	h.CreateTrip(rec, jsonRequest(t, http.MethodPost, "/v1/planner/create-trip", req))

	require.Equal(t, http.StatusCreated, rec.Code)
	var got model.Trip
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, trip.TripID, got.TripID)
	assert.Equal(t, 13, got.DurationDays)
	planner.AssertExpectations(t)
}

func TestCreateDestination(t *testing.T) {
	planner := &mocks.MockPlannerService{}
	h := handler.NewPlannerHandler(planner)
	owner := testUser()
	tripID := uuid.New()

	data, err := json.Marshal(requestresponse.CreateDestinationRequest{Name: "Innsbruck", Country: "Austria", TripID: tripID})
	require.NoError(t, err)

	planner.On("CreateDestination", mock.Anything, owner,
		mock.MatchedBy(func(req requestresponse.CreateDestinationRequest) bool {
			return req.Name == "Innsbruck" && req.TripID == tripID
		}),
		mock.MatchedBy(func(images []ports.Upload) bool {
			return len(images) == 1 && images[0].Filename == "city.jpg" && string(images[0].Body) == "jpeg"
		}),
	).Return(&model.Destination{DestinationID: uuid.New(), Name: "Innsbruck", TripID: tripID}, nil).Once()

	req := multipartRequest(t, "/v1/planner/create-destination", "images", "city.jpg", "image/jpeg", []byte("jpeg"),
		map[string]string{"data": string(data)})
	rec := httptest.NewRecorder()
	h.CreateDestination(rec, withUser(req, owner))

	require.Equal(t, http.StatusCreated, rec.Code)
	planner.AssertExpectations(t)
}

func TestCreateDestination_BadData(t *testing.T) {
	planner := &mocks.MockPlannerService{}
	h := handler.NewPlannerHandler(planner)

	req := multipartRequest(t, "/v1/planner/create-destination", "images", "", "", nil, map[string]string{"data": "{oops"})
	rec := httptest.NewRecorder()
	h.CreateDestination(rec, withUser(req, testUser()))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "data must be a valid destination JSON", decodeError(t, rec).Error.Text)
}

func TestDeleteTrip_NotFound(t *testing.T) {
	planner := &mocks.MockPlannerService{}
	h := handler.NewPlannerHandler(planner)
	tripID := uuid.New()
	planner.On("DeleteTrip", mock.Anything, tripID).Return(apperror.New(apperror.KindNotFound, "trip not found")).Once()

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/v1/planner/delete-trip/"+tripID.String(), nil), "trip_id", tripID.String())
	rec := httptest.NewRecorder()
	h.DeleteTrip(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "trip not found", decodeError(t, rec).Error.Text)
}

func TestListTrips_Pagination(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantOffset  int
		wantLimit   int
		wantStatus  int
		expectsCall bool
	}{
		{name: "значения по умолчанию", query: "", wantOffset: 0, wantLimit: 20, wantStatus: http.StatusOK, expectsCall: true},
		{name: "явные значения", query: "?offset=10&limit=5", wantOffset: 10, wantLimit: 5, wantStatus: http.StatusOK, expectsCall: true},
		{name: "не число", query: "?limit=many", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planner := &mocks.MockPlannerService{}
			h := handler.NewPlannerHandler(planner)
			if tt.expectsCall {
				planner.On("ListTrips", mock.Anything, tt.wantOffset, tt.wantLimit).Return([]model.TripDetails{}, nil).Once()
			}

			rec := httptest.NewRecorder()
			h.ListTrips(rec, httptest.NewRequest(http.MethodGet, "/v1/planner/trips"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.expectsCall {
				assert.JSONEq(t, `[]`, rec.Body.String())
			}
			planner.AssertExpectations(t)
		})
	}
}

func TestListTrips_LimitRejectedByService(t *testing.T) {
	planner := &mocks.MockPlannerService{}
	h := handler.NewPlannerHandler(planner)
	planner.On("ListTrips", mock.Anything, 0, 500).
		Return(nil, apperror.New(apperror.KindInvalid, "limit must be between 1 and 50")).Once()

	rec := httptest.NewRecorder()
	h.ListTrips(rec, httptest.NewRequest(http.MethodGet, "/v1/planner/trips?limit=500", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalytics_QueryParsing(t *testing.T) {
	tripID := uuid.New()
	destinationID := uuid.New()
	start := time.Date(2025, 7, 2, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 2, 18, 0, 0, 0, time.UTC)
	dob := time.Date(1990, 10, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target string
		setup  func(m *mocks.MockPlannerService)
		call   func(h *handler.PlannerHandler) http.HandlerFunc
	}{
		{
			name:   "участники поездки",
			target: "/v1/planner/all-users-enlisted-in-trip?trip_id=" + tripID.String(),
			setup: func(m *mocks.MockPlannerService) {
				m.On("ParticipantsOfTrip", mock.Anything, tripID).Return([]model.Participant{}, nil).Once()
			},
			call: func(h *handler.PlannerHandler) http.HandlerFunc { return h.ParticipantsOfTrip },
		},
		{
			name:   "поездки по числу участников",
			target: "/v1/planner/trips-with-participant-count?number_of_participants=3",
			setup: func(m *mocks.MockPlannerService) {
				m.On("TripsWithParticipantsOver", mock.Anything, 3).Return([]model.TripParticipantCount{}, nil).Once()
			},
			call: func(h *handler.PlannerHandler) http.HandlerFunc { return h.TripsWithParticipantsOver },
		},
		{
			name:   "пользователи по дате рождения",
			target: "/v1/planner/get-users-by-date-of-birth?date_of_birth=1990-10-01",
			setup: func(m *mocks.MockPlannerService) {
				m.On("UsersByDateOfBirth", mock.Anything, dob).Return([]model.Participant{}, nil).Once()
			},
			call: func(h *handler.PlannerHandler) http.HandlerFunc { return h.UsersByDateOfBirth },
		},
		{
			name:   "активности в интервале",
			target: "/v1/planner/activities-in-specified-interval?destination_id_for_activity=" + destinationID.String() + "&start_time=2025-07-02T09:00:00Z&end_time=2025-07-02T18:00:00Z",
			setup: func(m *mocks.MockPlannerService) {
				m.On("ActivitiesInInterval", mock.Anything, destinationID, start, end).Return([]model.Activity{}, nil).Once()
			},
			call: func(h *handler.PlannerHandler) http.HandlerFunc { return h.ActivitiesInInterval },
		},
		{
			name:   "цена по умолчанию",
			target: "/v1/planner/get-users-in-trips-with-expensive-activities",
			setup: func(m *mocks.MockPlannerService) {
				m.On("UsersInTripsWithActivitiesPricedOver", mock.Anything, 1.0).Return([]model.Participant{}, nil).Once()
			},
			call: func(h *handler.PlannerHandler) http.HandlerFunc { return h.UsersInTripsWithActivitiesPricedOver },
		},
		{
			name:   "число поездок по умолчанию",
			target: "/v1/planner/most-expensive-trips",
			setup: func(m *mocks.MockPlannerService) {
				m.On("MostExpensiveTrips", mock.Anything, 1).Return([]model.Trip{}, nil).Once()
			},
			call: func(h *handler.PlannerHandler) http.HandlerFunc { return h.MostExpensiveTrips },
		},
		{
			name:   "время начала активностей",
			target: "/v1/planner/get-destinations-where-activities-start-after?activity_start_time=10:30",
			setup: func(m *mocks.MockPlannerService) {
				m.On("DestinationsWithActivitiesStartingAfter", mock.Anything, "10:30").Return([]model.Destination{}, nil).Once()
			},
			call: func(h *handler.PlannerHandler) http.HandlerFunc { return h.DestinationsWithActivitiesStartingAfter },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planner := &mocks.MockPlannerService{}
			tt.setup(planner)
			h := handler.NewPlannerHandler(planner)

			rec := httptest.NewRecorder()
			tt.call(h)(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `[]`, rec.Body.String())
			planner.AssertExpectations(t)
		})
	}
}

func TestAnalytics_InvalidQuery(t *testing.T) {
	planner := &mocks.MockPlannerService{}
	h := handler.NewPlannerHandler(planner)

	tests := []struct {
		name    string
		target  string
		handler http.HandlerFunc
		text    string
	}{
		{"некорректный uuid", "/x?trip_id=abc", h.ParticipantsOfTrip, "invalid trip_id"},
		{"нет обязательного параметра", "/x", h.TripsWithParticipantsOver, "number_of_participants is required"},
		{"некорректная дата", "/x?date_of_birth=01.10.1990", h.TripsWithParticipantsBornBefore, "invalid date_of_birth"},
		{"некорректная цена", "/x?activity_price=cheap", h.UsersInTripsWithActivitiesPricedOver, "activity_price must be a number"},
		{"нет времени начала", "/x", h.DestinationsWithActivitiesStartingAfter, "activity_start_time is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handler(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.text, decodeError(t, rec).Error.Text)
		})
	}
	planner.AssertExpectations(t)
}

func TestTotalAmountForDestination(t *testing.T) {
	planner := &mocks.MockPlannerService{}
	h := handler.NewPlannerHandler(planner)
	destinationID := uuid.New()
	planner.On("TotalAmountForDestination", mock.Anything, destinationID).Return(&model.DestinationCost{
		DestinationID: destinationID, Name: "Innsbruck", ActivityCount: 2, TotalAmount: decimal.RequireFromString("99.98"),
	}, nil).Once()

	rec := httptest.NewRecorder()
	h.TotalAmountForDestination(rec, httptest.NewRequest(http.MethodGet,
		"/v1/planner/total-amount-per-destination?destination_id="+destinationID.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_amount":"99.98"`)
}
