package requestresponse

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateTripRequest : даты в формате YYYY-MM-DD
type CreateTripRequest struct {
	Title           string          `json:"title" example:"Alpine summer"`
	Description     string          `json:"description" example:"Two weeks in the Alps"`
	TripType        string          `json:"trip_type" example:"adventure"`
	StartDate       string          `json:"start_date" example:"2025-07-01"`
	EndDate         string          `json:"end_date" example:"2025-07-14"`
	EstimatedBudget decimal.Decimal `json:"estimated_budget" swaggertype:"string" example:"2500.00"`
}

// CreateDestinationRequest : передается полем data в multipart форме
type CreateDestinationRequest struct {
	Name            string    `json:"name" example:"Innsbruck"`
	Description     string    `json:"description" example:"Capital of the Alps"`
	Country         string    `json:"country" example:"Austria"`
	Language        string    `json:"language" example:"German"`
	BestTimeToVisit string    `json:"best_time_to_visit" example:"June - September"`
	TripID          uuid.UUID `json:"trip_id" swaggertype:"string" example:"123e4567-e89b-12d3-a456-426614174000"`
}

// CreateActivityRequest : время в формате RFC3339
type CreateActivityRequest struct {
	Name          string          `json:"name" example:"Glacier hike"`
	Description   string          `json:"description" example:"Guided hike"`
	StartTime     string          `json:"start_time" example:"2025-07-02T09:00:00Z"`
	EndTime       string          `json:"end_time" example:"2025-07-02T15:00:00Z"`
	Price         decimal.Decimal `json:"price" swaggertype:"string" example:"49.99"`
	DestinationID uuid.UUID       `json:"destination_id" swaggertype:"string" example:"123e4567-e89b-12d3-a456-426614174000"`
}

// CreatedResponse : идентификатор созданной сущности
type CreatedResponse struct {
	ID      uuid.UUID `json:"id" swaggertype:"string"`
	Message string    `json:"message" example:"trip created"`
}
