package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travel-planner/config"
	"travel-planner/internal/apperror"
	"travel-planner/internal/model"
	"travel-planner/internal/model/requestresponse"
	"travel-planner/internal/ports"
	"travel-planner/internal/util"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const MaxDestinationImages = 2

type PlannerService struct {
	db         ports.Database
	trips      ports.TripRepository
	analytics  ports.AnalyticsRepository
	storage    ports.S3Storage
	dispatcher ports.TaskDispatcher
	s3cfg      *config.S3Config
}

func NewPlannerService(
	db ports.Database,
	trips ports.TripRepository,
	analytics ports.AnalyticsRepository,
	storage ports.S3Storage,
	dispatcher ports.TaskDispatcher,
	s3cfg *config.S3Config,
) *PlannerService {
	return &PlannerService{
		db:         db,
		trips:      trips,
		analytics:  analytics,
		storage:    storage,
		dispatcher: dispatcher,
		s3cfg:      s3cfg,
	}
}

// CreateTrip : duration_days рассчитывается из дат
func (s *PlannerService) CreateTrip(ctx context.Context, req requestresponse.CreateTripRequest) (*model.Trip, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperror.New(apperror.KindInvalid, "title must not be empty")
	}
	start, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInvalid, "start_date must be in YYYY-MM-DD format", err)
	}
	end, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInvalid, "end_date must be in YYYY-MM-DD format", err)
	}
	if end.Before(start) {
		return nil, apperror.New(apperror.KindInvalid, "end_date must not be before start_date")
	}
	if req.EstimatedBudget.IsNegative() {
		return nil, apperror.New(apperror.KindInvalid, "estimated_budget must not be negative")
	}

	trip := &model.Trip{
		TripID:          uuid.New(),
		Title:           req.Title,
		Description:     req.Description,
		TripType:        req.TripType,
		StartDate:       start,
		EndDate:         end,
		DurationDays:    model.DaysBetween(start, end),
		EstimatedBudget: req.EstimatedBudget,
	}
	if err := s.trips.CreateTrip(ctx, s.db, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// CreateDestination ставит загрузку изображений в очередь и сохраняет место.
// В БД хранятся ключи объектов {user_id}/{uuid}-{filename}
func (s *PlannerService) CreateDestination(ctx context.Context, owner *model.User, req requestresponse.CreateDestinationRequest, images []ports.Upload) (*model.Destination, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperror.New(apperror.KindInvalid, "name must not be empty")
	}
	if len(images) > MaxDestinationImages {
		return nil, apperror.New(apperror.KindInvalid, fmt.Sprintf("no more than %d images are allowed", MaxDestinationImages))
	}
	for _, image := range images {
		if err := validateImage(image, s.s3cfg.MaxImageSize); err != nil {
			return nil, err
		}
	}

	exists, err := s.trips.TripExists(ctx, s.db, req.TripID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.New(apperror.KindNotFound, "no trip with id "+req.TripID.String()+" found")
	}

	keys := make(pq.StringArray, 0, len(images))
	for _, image := range images {
		keys = append(keys, imageKey(owner.UserID, image.Filename))
	}

	// место сохраняется только после того, как очередь приняла все загрузки
	for i, image := range images {
		err := s.dispatcher.Dispatch(ctx, model.TaskS3Upload, model.S3UploadArgs{
			Key:         keys[i],
			ContentType: util.ContentType(image.Filename),
			Body:        image.Body,
		})
		if err != nil {
			return nil, apperror.Wrap(apperror.KindInternal, "image upload failed",
				util.LogError("[PlannerService] не удалось поставить загрузку изображения в очередь", err))
		}
	}

	destination := &model.Destination{
		DestinationID:   uuid.New(),
		Name:            req.Name,
		Description:     req.Description,
		Country:         req.Country,
		Language:        req.Language,
		BestTimeToVisit: req.BestTimeToVisit,
		Images:          keys,
		TripID:          req.TripID,
	}
	if err := s.trips.CreateDestination(ctx, s.db, destination); err != nil {
		return nil, err
	}
	return destination, nil
}

// imageKey : {owner_id}/{uuid}-{filename}, одинаковые имена файлов не перезаписывают друг друга
func imageKey(ownerID uuid.UUID, filename string) string {
	return ownerID.String() + "/" + uuid.NewString() + "-" + filename
}

func (s *PlannerService) CreateActivity(ctx context.Context, req requestresponse.CreateActivityRequest) (*model.Activity, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperror.New(apperror.KindInvalid, "name must not be empty")
	}
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInvalid, "start_time must be in RFC3339 format", err)
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInvalid, "end_time must be in RFC3339 format", err)
	}
	if end.Before(start) {
		return nil, apperror.New(apperror.KindInvalid, "end_time must not be before start_time")
	}
	if req.Price.IsNegative() {
		return nil, apperror.New(apperror.KindInvalid, "price must not be negative")
	}

	exists, err := s.trips.DestinationExists(ctx, s.db, req.DestinationID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.New(apperror.KindInvalid, "no destination with id "+req.DestinationID.String()+" found")
	}

	activity := &model.Activity{
		ActivityID:      uuid.New(),
		Name:            req.Name,
		Description:     req.Description,
		StartTime:       start,
		EndTime:         end,
		DurationSeconds: int64(end.Sub(start) / time.Second),
		Price:           req.Price,
		DestinationID:   req.DestinationID,
	}
	if err := s.trips.CreateActivity(ctx, s.db, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *PlannerService) DeleteTrip(ctx context.Context, tripID uuid.UUID) error {
	return s.trips.DeleteTrip(ctx, s.db, tripID)
}

// ListTrips : поездки с местами, активностями и участниками, четыре запроса на страницу
func (s *PlannerService) ListTrips(ctx context.Context, offset, limit int) ([]model.TripDetails, error) {
	if offset < 0 {
		return nil, apperror.New(apperror.KindInvalid, "offset must not be negative")
	}
	if limit < 1 || limit > 50 {
		return nil, apperror.New(apperror.KindInvalid, "limit must be between 1 and 50")
	}

	trips, err := s.trips.ListTrips(ctx, s.db, offset, limit)
	if err != nil {
		return nil, err
	}
	if len(trips) == 0 {
		return []model.TripDetails{}, nil
	}

	tripIDs := make([]uuid.UUID, 0, len(trips))
	for _, trip := range trips {
		tripIDs = append(tripIDs, trip.TripID)
	}

	destinations, err := s.trips.ListDestinationsByTrips(ctx, s.db, tripIDs)
	if err != nil {
		return nil, err
	}
	details, err := s.destinationDetails(ctx, destinations)
	if err != nil {
		return nil, err
	}
	participants, err := s.trips.ListParticipantsByTrips(ctx, s.db, tripIDs)
	if err != nil {
		return nil, err
	}

	destinationsByTrip := make(map[uuid.UUID][]model.DestinationDetails)
	for _, d := range details {
		destinationsByTrip[d.TripID] = append(destinationsByTrip[d.TripID], d)
	}
	participantsByTrip := make(map[uuid.UUID][]model.Participant)
	for _, p := range participants {
		participantsByTrip[p.TripID] = append(participantsByTrip[p.TripID], p.Participant)
	}

	out := make([]model.TripDetails, 0, len(trips))
	for _, trip := range trips {
		item := model.TripDetails{
			Trip:         trip,
			Duration:     fmt.Sprintf("%d days", trip.DurationDays),
			Destinations: destinationsByTrip[trip.TripID],
			Participants: participantsByTrip[trip.TripID],
		}
		if item.Destinations == nil {
			item.Destinations = []model.DestinationDetails{}
		}
		if item.Participants == nil {
			item.Participants = []model.Participant{}
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *PlannerService) ListDestinations(ctx context.Context) ([]model.DestinationDetails, error) {
	destinations, err := s.trips.ListDestinations(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return s.destinationDetails(ctx, destinations)
}

func (s *PlannerService) ListActivities(ctx context.Context) ([]model.Activity, error) {
	return nonNil(s.trips.ListActivities(ctx, s.db))
}

// destinationDetails : подгружает активности и заменяет ключи изображений на presigned URL
func (s *PlannerService) destinationDetails(ctx context.Context, destinations []model.Destination) ([]model.DestinationDetails, error) {
	out := make([]model.DestinationDetails, 0, len(destinations))
	if len(destinations) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, 0, len(destinations))
	for _, d := range destinations {
		ids = append(ids, d.DestinationID)
	}
	activities, err := s.trips.ListActivitiesByDestinations(ctx, s.db, ids)
	if err != nil {
		return nil, err
	}
	byDestination := make(map[uuid.UUID][]model.Activity)
	for _, a := range activities {
		byDestination[a.DestinationID] = append(byDestination[a.DestinationID], a)
	}

	for _, d := range destinations {
		urls := make(pq.StringArray, 0, len(d.Images))
		for _, key := range d.Images {
			url, err := s.storage.GeneratePresignedGetURL(ctx, key, s.s3cfg.PresignExpiry())
			if err != nil {
				return nil, err
			}
			urls = append(urls, url)
		}
		d.Images = urls

		items := byDestination[d.DestinationID]
		if items == nil {
			items = []model.Activity{}
		}
		out = append(out, model.DestinationDetails{Destination: d, Activities: items})
	}
	return out, nil
}

func (s *PlannerService) ParticipantsOfTrip(ctx context.Context, tripID uuid.UUID) ([]model.Participant, error) {
	exists, err := s.trips.TripExists(ctx, s.db, tripID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.New(apperror.KindNotFound, "no trip with id "+tripID.String()+" found")
	}
	return nonNil(s.analytics.ParticipantsOfTrip(ctx, s.db, tripID))
}

func (s *PlannerService) TripsWithParticipantsOver(ctx context.Context, minParticipants int) ([]model.TripParticipantCount, error) {
	if minParticipants < 1 {
		return nil, apperror.New(apperror.KindInvalid, "number_of_participants must be at least 1")
	}
	return nonNil(s.analytics.TripsWithParticipantsOver(ctx, s.db, minParticipants))
}

func (s *PlannerService) DestinationsWithActivitiesOver(ctx context.Context, minActivities int) ([]model.DestinationActivityCount, error) {
	if minActivities < 1 {
		return nil, apperror.New(apperror.KindInvalid, "number_of_activities must be at least 1")
	}
	return nonNil(s.analytics.DestinationsWithActivitiesOver(ctx, s.db, minActivities))
}

func (s *PlannerService) UsersByDateOfBirth(ctx context.Context, dateOfBirth time.Time) ([]model.Participant, error) {
	return nonNil(s.analytics.UsersByDateOfBirth(ctx, s.db, dateOfBirth))
}

func (s *PlannerService) ActivitiesOfUser(ctx context.Context, userID uuid.UUID) ([]model.ActivityWithDestination, error) {
	return nonNil(s.analytics.ActivitiesOfUser(ctx, s.db, userID))
}

func (s *PlannerService) TripsWithParticipantsBornBefore(ctx context.Context, dateOfBirth time.Time) ([]model.Trip, error) {
	return nonNil(s.analytics.TripsWithParticipantsBornBefore(ctx, s.db, dateOfBirth))
}

func (s *PlannerService) ActivitiesByDestination(ctx context.Context, destinationID uuid.UUID) ([]model.ActivityWithDestination, error) {
	return nonNil(s.analytics.ActivitiesByDestination(ctx, s.db, destinationID))
}

func (s *PlannerService) ActivitiesByTrip(ctx context.Context, tripID uuid.UUID) ([]model.ActivityWithDestination, error) {
	return nonNil(s.analytics.ActivitiesByTrip(ctx, s.db, tripID))
}

// DestinationsWithActivitiesStartingAfter : timeOfDay в формате HH:MM
func (s *PlannerService) DestinationsWithActivitiesStartingAfter(ctx context.Context, timeOfDay string) ([]model.Destination, error) {
	if _, err := time.Parse("15:04", timeOfDay); err != nil {
		return nil, apperror.Wrap(apperror.KindInvalid, "activity_start_time must be in HH:MM format", err)
	}
	destinations, err := nonNil(s.analytics.DestinationsWithActivitiesStartingAfter(ctx, s.db, timeOfDay))
	if err != nil {
		return nil, err
	}
	for i := range destinations {
		if destinations[i].Images == nil {
			destinations[i].Images = pq.StringArray{}
		}
	}
	return destinations, nil
}

func (s *PlannerService) ActivitiesInInterval(ctx context.Context, destinationID uuid.UUID, start, end time.Time) ([]model.Activity, error) {
	if end.Before(start) {
		return nil, apperror.New(apperror.KindInvalid, "end_time must not be before start_time")
	}
	return nonNil(s.analytics.ActivitiesInInterval(ctx, s.db, destinationID, start, end))
}

func (s *PlannerService) TotalAmountForDestination(ctx context.Context, destinationID uuid.UUID) (*model.DestinationCost, error) {
	return s.analytics.TotalAmountForDestination(ctx, s.db, destinationID)
}

func (s *PlannerService) MostExpensiveActivities(ctx context.Context, destinationID uuid.UUID) ([]model.Activity, error) {
	return nonNil(s.analytics.MostExpensiveActivities(ctx, s.db, destinationID))
}

func (s *PlannerService) UsersInTripsWithActivitiesPricedOver(ctx context.Context, price float64) ([]model.Participant, error) {
	if price < 0 {
		return nil, apperror.New(apperror.KindInvalid, "activity_price must not be negative")
	}
	return nonNil(s.analytics.UsersInTripsWithActivitiesPricedOver(ctx, s.db, price))
}

func (s *PlannerService) MostExpensiveTrips(ctx context.Context, limit int) ([]model.Trip, error) {
	if limit < 1 {
		return nil, apperror.New(apperror.KindInvalid, "number_of_trips must be at least 1")
	}
	return nonNil(s.analytics.MostExpensiveTrips(ctx, s.db, limit))
}

func (s *PlannerService) TripsByPopularity(ctx context.Context) ([]model.TripPopularity, error) {
	return nonNil(s.analytics.TripsByPopularity(ctx, s.db))
}

func (s *PlannerService) DestinationsWithMostActivities(ctx context.Context) ([]model.DestinationActivityCount, error) {
	return nonNil(s.analytics.DestinationsWithMostActivities(ctx, s.db))
}

func (s *PlannerService) AverageActivityPricePerDestination(ctx context.Context) ([]model.DestinationAveragePrice, error) {
	return nonNil(s.analytics.AverageActivityPricePerDestination(ctx, s.db))
}

// nonNil : пустой результат сериализуется как [], а не null
func nonNil[T any](items []T, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	if items == nil {
		return []T{}, nil
	}
	return items, nil
}
