package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"travel-planner/internal/model/requestresponse"
	"travel-planner/internal/ports"

	"github.com/google/uuid"
)

const defaultTripsLimit = 20

type PlannerHandler struct {
	ports.PlannerService
}

func NewPlannerHandler(plannerService ports.PlannerService) *PlannerHandler {
	return &PlannerHandler{plannerService}
}

// CreateTrip godoc
// @Summary Создание поездки
// @Description Даты в формате YYYY-MM-DD, длительность рассчитывается автоматически
// @Tags Planner
// @Accept json
// @Produce json
// @Param body body requestresponse.CreateTripRequest true "Поездка"
// @Success 201 {object} model.Trip
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/planner/create-trip [post]
func (h *PlannerHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.CreateTripRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	trip, err := h.PlannerService.CreateTrip(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, trip)
}

// CreateDestination godoc
// @Summary Создание места поездки
// @Description Multipart форма: поле data с JSON места и до двух изображений images
// @Tags Planner
// @Accept mpfd
// @Produce json
// @Param data formData string true "JSON requestresponse.CreateDestinationRequest"
// @Param images formData file false "Изображения jpg, jpeg или png"
// @Success 201 {object} model.Destination
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Поездка не найдена"
// @Security OAuth2Password
// @Router /v1/planner/create-destination [post]
func (h *PlannerHandler) CreateDestination(w http.ResponseWriter, r *http.Request) {
	owner, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	var req requestresponse.CreateDestinationRequest
	if err := json.Unmarshal([]byte(r.FormValue("data")), &req); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "data must be a valid destination JSON")
		return
	}

	images := make([]ports.Upload, 0, len(r.MultipartForm.File["images"]))
	for _, header := range r.MultipartForm.File["images"] {
		upload, err := readUpload(header)
		if err != nil {
			respondError(w, r, err)
			return
		}
		images = append(images, upload)
	}

	destination, err := h.PlannerService.CreateDestination(r.Context(), owner, req, images)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, destination)
}

// CreateActivity godoc
// @Summary Создание активности
// @Description Время в формате RFC3339, окончание не раньше начала
// @Tags Planner
// @Accept json
// @Produce json
// @Param body body requestresponse.CreateActivityRequest true "Активность"
// @Success 201 {object} model.Activity
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/planner/create-activity [post]
func (h *PlannerHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.CreateActivityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	activity, err := h.PlannerService.CreateActivity(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, activity)
}

// DeleteTrip godoc
// @Summary Удаление поездки
// @Description Места, активности и записи участников удаляются вместе с поездкой
// @Tags Planner
// @Produce json
// @Param trip_id path string true "UUID поездки"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/planner/delete-trip/{trip_id} [delete]
func (h *PlannerHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := uuidParam(w, r, "trip_id")
	if !ok {
		return
	}

	if err := h.PlannerService.DeleteTrip(r.Context(), tripID); err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, requestresponse.MessageResponse{Message: "trip deleted successfully"})
}

// ListTrips godoc
// @Summary Список поездок
// @Description Поездки с местами, активностями и участниками
// @Tags Planner
// @Produce json
// @Param offset query int false "Смещение" default(0)
// @Param limit query int false "Размер страницы, от 1 до 50" default(20)
// @Success 200 {array} model.TripDetails
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/planner/trips [get]
func (h *PlannerHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	offset, ok := queryInt(w, r, "offset", 0)
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit", defaultTripsLimit)
	if !ok {
		return
	}

	trips, err := h.PlannerService.ListTrips(r.Context(), offset, limit)
	respond(w, r, trips, err)
}

// ListDestinations godoc
// @Summary Список мест
// @Tags Planner
// @Produce json
// @Success 200 {array} model.DestinationDetails
// @Failure 401 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/planner/destination [get]
func (h *PlannerHandler) ListDestinations(w http.ResponseWriter, r *http.Request) {
	destinations, err := h.PlannerService.ListDestinations(r.Context())
	respond(w, r, destinations, err)
}

// ListActivities godoc
// @Summary Список активностей
// @Tags Planner
// @Produce json
// @Success 200 {array} model.Activity
// @Failure 401 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/planner/activity [get]
func (h *PlannerHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.PlannerService.ListActivities(r.Context())
	respond(w, r, activities, err)
}

// ParticipantsOfTrip godoc
// @Summary Участники поездки
// @Tags Planner analytics
// @Produce json
// @Param trip_id query string true "UUID поездки"
// @Success 200 {array} model.Participant
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/planner/all-users-enlisted-in-trip [get]
func (h *PlannerHandler) ParticipantsOfTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := queryUUID(w, r, "trip_id")
	if !ok {
		return
	}
	participants, err := h.PlannerService.ParticipantsOfTrip(r.Context(), tripID)
	respond(w, r, participants, err)
}

// TripsWithParticipantsOver godoc
// @Summary Поездки, где участников больше N
// @Tags Planner analytics
// @Produce json
// @Param number_of_participants query int true "N, не меньше 1"
// @Success 200 {array} model.TripParticipantCount
// @Failure 400 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/planner/trips-with-participant-count [get]
func (h *PlannerHandler) TripsWithParticipantsOver(w http.ResponseWriter, r *http.Request) {
	n, ok := requiredQueryInt(w, r, "number_of_participants")
	if !ok {
		return
	}
	trips, err := h.PlannerService.TripsWithParticipantsOver(r.Context(), n)
	respond(w, r, trips, err)
}

// DestinationsWithActivitiesOver godoc
// @Summary Места, где активностей больше N
// @Tags Planner analytics
// @Produce json
// @Param number_of_activities query int true "N, не меньше 1"
// @Success 200 {array} model.DestinationActivityCount
// @Failure 400 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/planner/destinations-by-min-activities [get]
func (h *PlannerHandler) DestinationsWithActivitiesOver(w http.ResponseWriter, r *http.Request) {
	n, ok := requiredQueryInt(w, r, "number_of_activities")
	if !ok {
		return
	}
	destinations, err := h.PlannerService.DestinationsWithActivitiesOver(r.Context(), n)
	respond(w, r, destinations, err)
}

// UsersByDateOfBirth godoc
// @Summary Пользователи с указанной датой рождения
// @Tags Planner analytics
// @Produce json
// @Param date_of_birth query string true "YYYY-MM-DD"
// @Success 200 {array} model.Participant
// @Failure 400 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/planner/get-users-by-date-of-birth [get]
func (h *PlannerHandler) UsersByDateOfBirth(w http.ResponseWriter, r *http.Request) {
	date, ok := queryTime(w, r, "date_of_birth", time.DateOnly)
	if !ok {
		return
	}
	users, err := h.PlannerService.UsersByDateOfBirth(r.Context(), date)
	respond(w, r, users, err)
}

// ActivitiesOfUser godoc
// @Summary Активности поездок пользователя
// @Tags Planner analytics
// @Produce json
// @Param user_id query string true "UUID пользователя"
// @Success 200 {array} model.ActivityWithDestination
// @Failure 400 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/planner/get-user-activities [get]
func (h *PlannerHandler) ActivitiesOfUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryUUID(w, r, "user_id")
	if !ok {
		return
	}
	activities, err := h.PlannerService.ActivitiesOfUser(r.Context(), userID)
	respond(w, r, activities, err)
}

// TripsWithParticipantsBornBefore godoc
// @Summary Поездки с участниками, родившимися до даты
// @Tags Planner analytics
// @Produce json
// @Param date_of_birth query string true "YYYY-MM-DD"
// @Success 200 {array} model.Trip
// @Failure 400 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/planner/find-trips-by-user-birth-date [get]
func (h *PlannerHandler) TripsWithParticipantsBornBefore(w http.ResponseWriter, r *http.Request) {
	date, ok := queryTime(w, r, "date_of_birth", time.DateOnly)
	if !ok {
		return
	}
	trips, err := h.PlannerService.TripsWithParticipantsBornBefore(r.Context(), date)
	respond(w, r, trips, err)
}

// ActivitiesByDestination godoc
// @Summary Активности места
// @Tags Planner analytics
// @Produce json
// @Param destination_id query string true "UUID места"
// @Success 200 {array} model.ActivityWithDestination
// @Failure 400 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/planner/get-activities_by_destination [get]
func (h *PlannerHandler) ActivitiesByDestination(w http.ResponseWriter, r *http.Request) {
	destinationID, ok := queryUUID(w, r, "destination_id")
	if !ok {
		return
	}
	activities, err := h.PlannerService.ActivitiesByDestination(r.Context(), destinationID)
	respond(w, r, activities, err)
}

// ActivitiesByTrip godoc
// @Summary Активности поездки
// @Tags Planner analytics
// @Produce json
// @Param trip_id query string true "UUID поездки"
// @Success 200 {array} model.ActivityWithDestination
// @Failure 400 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/planner/get-activities_by_trip [get]
func (h *PlannerHandler) ActivitiesByTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := queryUUID(w, r, "trip_id")
	if !ok {
		return
	}
	activities, err := h.PlannerService.ActivitiesByTrip(r.Context(), tripID)
	respond(w, r, activities, err)
}

// DestinationsWithActivitiesStartingAfter godoc
// @Summary Места с активностями, начинающимися позже указанного времени
// @Tags Planner analytics
// @Produce json
// @Param activity_start_time query string true "HH:MM"
// @Success 200 {array} model.Destination
// @Failure 400 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/planner/get-destinations-where-activities-start-after [get]
func (h *PlannerHandler) DestinationsWithActivitiesStartingAfter(w http.ResponseWriter, r *http.Request) {
	timeOfDay := r.URL.Query().Get("activity_start_time")
	if timeOfDay == "" {
		sendErrorResponse(w, http.StatusBadRequest, "activity_start_time is required")
		return
	}
	destinations, err := h.PlannerService.DestinationsWithActivitiesStartingAfter(r.Context(), timeOfDay)
	respond(w, r, destinations, err)
}

// ActivitiesInInterval godoc
// @Summary Активности места в интервале времени
// @Tags Planner analytics
// @Produce json
// @Param destination_id_for_activity query string true "UUID места"
// @Param start_time query string true "RFC3339"
// @Param end_time query string true "RFC3339"
// @Success 200 {array} model.Activity
// @Failure 400 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/planner/activities-in-specified-interval [get]
func (h *PlannerHandler) ActivitiesInInterval(w http.ResponseWriter, r *http.Request) {
	destinationID, ok := queryUUID(w, r, "destination_id_for_activity")
	if !ok {
		return
	}
	start, ok := queryTime(w, r, "start_time", time.RFC3339)
	if !ok {
		return
	}
	end, ok := queryTime(w, r, "end_time", time.RFC3339)
	if !ok {
		return
	}
	activities, err := h.PlannerService.ActivitiesInInterval(r.Context(), destinationID, start, end)
	respond(w, r, activities, err)
}

// TotalAmountForDestination godoc
// @Summary Суммарная стоимость активностей места
// @Tags Planner analytics
// @Produce json
// @Param destination_id query string true "UUID места"
// @Success 200 {object} model.DestinationCost
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/planner/total-amount-per-destination [get]
func (h *PlannerHandler) TotalAmountForDestination(w http.ResponseWriter, r *http.Request) {
	destinationID, ok := queryUUID(w, r, "destination_id")
	if !ok {
		return
	}
	cost, err := h.PlannerService.TotalAmountForDestination(r.Context(), destinationID)
	respond(w, r, cost, err)
}

// MostExpensiveActivities godoc
// @Summary Самые дорогие активности места
// @Description При равных ценах возвращаются все активности с максимальной ценой
// @Tags Planner analytics
// @Produce json
// @Param destination_id query string true "UUID места"
// @Success 200 {array} model.Activity
// @Failure 400 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/planner/most-expensive-activity-per-destination [get]
func (h *PlannerHandler) MostExpensiveActivities(w http.ResponseWriter, r *http.Request) {
	destinationID, ok := queryUUID(w, r, "destination_id")
	if !ok {
		return
	}
	activities, err := h.PlannerService.MostExpensiveActivities(r.Context(), destinationID)
	respond(w, r, activities, err)
}

// UsersInTripsWithActivitiesPricedOver godoc
// @Summary Пользователи поездок с активностями дороже цены
// @Tags Planner analytics
// @Produce json
// @Param activity_price query number false "Цена" default(1)
// @Success 200 {array} model.Participant
// @Failure 400 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/planner/get-users-in-trips-with-expensive-activities [get]
func (h *PlannerHandler) UsersInTripsWithActivitiesPricedOver(w http.ResponseWriter, r *http.Request) {
	price := 1.0
	if raw := r.URL.Query().Get("activity_price"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			sendErrorResponse(w, http.StatusBadRequest, "activity_price must be a number")
			return
		}
		price = parsed
	}
	users, err := h.PlannerService.UsersInTripsWithActivitiesPricedOver(r.Context(), price)
	respond(w, r, users, err)
}

// MostExpensiveTrips godoc
// @Summary Самые дорогие поездки
// @Tags Planner analytics
// @Produce json
// @Param number_of_trips query int false "Количество" default(1)
// @Success 200 {array} model.Trip
// @Failure 400 {object} requestresponse.ErrorResponse
// @Security OAuth2Password
// @Router /v1/planner/most-expensive-trips [get]
func (h *PlannerHandler) MostExpensiveTrips(w http.ResponseWriter, r *http.Request) {
	n, ok := queryInt(w, r, "number_of_trips", 1)
	if !ok {
		return
	}
	trips, err := h.PlannerService.MostExpensiveTrips(r.Context(), n)
	respond(w, r, trips, err)
}

// TripsByPopularity godoc
// @Summary Рейтинг поездок по числу участников
// @Tags Planner analytics
// @Produce json
// @Success 200 {array} model.TripPopularity
// @Security OAuth2Password
// @Router /v1/planner/get-trips-by-popularity [get]
func (h *PlannerHandler) TripsByPopularity(w http.ResponseWriter, r *http.Request) {
	trips, err := h.PlannerService.TripsByPopularity(r.Context())
	respond(w, r, trips, err)
}

// DestinationsWithMostActivities godoc
// @Summary Места с наибольшим числом активностей
// @Tags Planner analytics
// @Produce json
// @Success 200 {array} model.DestinationActivityCount
// @Security OAuth2Password
// @Router /v1/planner/destination-with-most-activities [get]
func (h *PlannerHandler) DestinationsWithMostActivities(w http.ResponseWriter, r *http.Request) {
	destinations, err := h.PlannerService.DestinationsWithMostActivities(r.Context())
	respond(w, r, destinations, err)
}

// AverageActivityPricePerDestination godoc
// @Summary Средняя цена активностей по местам
// @Tags Planner analytics
// @Produce json
// @Success 200 {array} model.DestinationAveragePrice
// @Security OAuth2Password
// @Router /v1/planner/average-activity-price-for-each-destination [get]
func (h *PlannerHandler) AverageActivityPricePerDestination(w http.ResponseWriter, r *http.Request) {
	prices, err := h.PlannerService.AverageActivityPricePerDestination(r.Context())
	respond(w, r, prices, err)
}

func respond(w http.ResponseWriter, r *http.Request, body interface{}, err error) {
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, body)
}

func queryInt(w http.ResponseWriter, r *http.Request, name string, fallback int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, name+" must be an integer")
		return 0, false
	}
	return value, true
}

func requiredQueryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	if r.URL.Query().Get(name) == "" {
		sendErrorResponse(w, http.StatusBadRequest, name+" is required")
		return 0, false
	}
	return queryInt(w, r, name, 0)
}

func queryUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.URL.Query().Get(name))
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func queryTime(w http.ResponseWriter, r *http.Request, name, layout string) (time.Time, bool) {
	value, err := time.Parse(layout, r.URL.Query().Get(name))
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "invalid "+name)
		return time.Time{}, false
	}
	return value, true
}
