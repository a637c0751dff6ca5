package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Trip struct {
	TripID          uuid.UUID       `db:"trip_id" json:"trip_id"`
	Title           string          `db:"title" json:"title"`
	Description     string          `db:"description" json:"description"`
	TripType        string          `db:"trip_type" json:"trip_type"`
	StartDate       time.Time       `db:"start_date" json:"start_date"`
	EndDate         time.Time       `db:"end_date" json:"end_date"`
	DurationDays    int             `db:"duration_days" json:"duration_days"`
	EstimatedBudget decimal.Decimal `db:"estimated_budget" json:"estimated_budget"`
}

type Destination struct {
	DestinationID   uuid.UUID      `db:"destination_id" json:"destination_id"`
	Name            string         `db:"name" json:"name"`
	Description     string         `db:"description" json:"description"`
	Country         string         `db:"country" json:"country"`
	Language        string         `db:"language" json:"language"`
	BestTimeToVisit string         `db:"best_time_to_visit" json:"best_time_to_visit"`
	Images          pq.StringArray `db:"images" json:"images"`
	TripID          uuid.UUID      `db:"trip_id" json:"trip_id"`
}

type Activity struct {
	ActivityID      uuid.UUID       `db:"activity_id" json:"activity_id"`
	Name            string          `db:"name" json:"name"`
	Description     string          `db:"description" json:"description"`
	StartTime       time.Time       `db:"start_time" json:"start_time"`
	EndTime         time.Time       `db:"end_time" json:"end_time"`
	DurationSeconds int64           `db:"duration_seconds" json:"duration_seconds"`
	Price           decimal.Decimal `db:"price" json:"price"`
	DestinationID   uuid.UUID       `db:"destination_id" json:"destination_id"`
}

func (a Activity) Duration() time.Duration {
	return time.Duration(a.DurationSeconds) * time.Second
}

// DaysBetween : длительность поездки в календарных днях
func DaysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}

// TripDetails : поездка со вложенными местами и участниками
type TripDetails struct {
	Trip
	Duration     string               `json:"duration"`
	Destinations []DestinationDetails `json:"destinations"`
	Participants []Participant        `json:"participants"`
}

// DestinationDetails : место с активностями, Images заменены на presigned URL
type DestinationDetails struct {
	Destination
	Activities []Activity `json:"activities"`
}
