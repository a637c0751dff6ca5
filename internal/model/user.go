package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	ScopeUser    = "user"
	ScopePlanner = "planner"
	ScopeAdmin   = "admin"
)

// KnownScopes : все уровни доступа, которые может иметь пользователь
var KnownScopes = []string{ScopeUser, ScopePlanner, ScopeAdmin}

type User struct {
	UserID         uuid.UUID      `db:"user_id" json:"user_id"`
	Username       string         `db:"username" json:"username"`
	PasswordHash   string         `db:"password" json:"-"`
	Email          string         `db:"email" json:"email"`
	IsActive       bool           `db:"is_active" json:"is_active"`
	PhoneNumber    *string        `db:"phone_number" json:"phone_number"`
	DateOfBirth    *time.Time     `db:"date_of_birth" json:"date_of_birth"`
	ProfilePicture *string        `db:"profile_picture" json:"profile_picture,omitempty"`
	Scopes         pq.StringArray `db:"scopes" json:"scopes"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
}

// Participant : участник поездки, без приватных полей
type Participant struct {
	UserID      uuid.UUID  `db:"user_id" json:"user_id"`
	Username    string     `db:"username" json:"username"`
	Email       string     `db:"email" json:"email"`
	DateOfBirth *time.Time `db:"date_of_birth" json:"date_of_birth"`
	PhoneNumber *string    `db:"phone_number" json:"phone_number"`
}

// TripParticipant : строка связи пользователь-поездка
type TripParticipant struct {
	TripID uuid.UUID `db:"trip_id"`
	Participant
}
