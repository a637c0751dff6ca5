package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TripParticipantCount struct {
	TripID           uuid.UUID `db:"trip_id" json:"trip_id"`
	Title            string    `db:"title" json:"title"`
	ParticipantCount int64     `db:"participant_count" json:"participant_count"`
}

type TripPopularity struct {
	TripID       uuid.UUID `db:"trip_id" json:"trip_id"`
	Title        string    `db:"title" json:"title"`
	Participants int64     `db:"participants" json:"participants"`
	Rank         int64     `db:"popularity_rank" json:"rank"`
}

type DestinationActivityCount struct {
	DestinationID uuid.UUID `db:"destination_id" json:"destination_id"`
	Name          string    `db:"name" json:"name"`
	Country       string    `db:"country" json:"country"`
	ActivityCount int64     `db:"activity_count" json:"activity_count"`
}

type DestinationCost struct {
	DestinationID uuid.UUID       `db:"destination_id" json:"destination_id"`
	Name          string          `db:"name" json:"name"`
	ActivityCount int64           `db:"activity_count" json:"activity_count"`
	TotalAmount   decimal.Decimal `db:"total_amount" json:"total_amount"`
}

type DestinationAveragePrice struct {
	DestinationID uuid.UUID       `db:"destination_id" json:"destination_id"`
	Name          string          `db:"name" json:"name"`
	AveragePrice  decimal.Decimal `db:"average_price" json:"average_price"`
}

// ActivityWithDestination : активность вместе с названием места
type ActivityWithDestination struct {
	Activity
	DestinationName string `db:"destination_name" json:"destination_name"`
}
