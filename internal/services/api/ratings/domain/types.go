// Package domain holds the rating model, its rules, events and ports
package domain

import (
	"time"

	"chargemap/internal/core/events"
)

// EventRatingCreated is the event name of RatingCreated
const EventRatingCreated = "rating.created"

// Record is a stored rating
type Record struct {
	ID        string    `json:"id"                   example:"66f1c0ffee0000000000cafe"`
	StationID string    `json:"station_id"           example:"66f1c0ffee0000000000beef"`
	UserID    string    `json:"user_id"              example:"u-123"`
	Username  string    `json:"username"             example:"ada"`
	Value     int       `json:"rating_value"         example:"4"`
	Comment   string    `json:"comment"              example:"fast and free parking"`
	Timestamp time.Time `json:"timestamp"            example:"2024-05-01T12:00:00Z"`
	UpdatedAt time.Time `json:"updated_at,omitzero"  example:"2024-05-02T08:30:00Z"`
}

// NewRating is a validated rating about to be stored
type NewRating struct {
	StationID string
	UserID    string
	Username  string
	Value     int
	Comment   string
	Timestamp time.Time
}

// CreateInput is what CreateRating needs
type CreateInput struct {
	StationID string
	UserID    string
	Username  string
	Value     int
	Comment   string
}

// Patch carries the fields an update writes; nil fields stay as stored
type Patch struct {
	Value   *int    `json:"rating_value,omitempty" example:"5"`
	Comment *string `json:"comment,omitempty"      example:"now with a second charger"`

	// UpdatedAt is stamped by the service
	UpdatedAt time.Time `json:"-"`
}

// Empty reports whether p changes nothing
func (p Patch) Empty() bool { return p.Value == nil && p.Comment == nil }

// Apply returns r with p written over it
func (p Patch) Apply(r Record) Record {
	if p.Value != nil {
		r.Value = *p.Value
	}
	if p.Comment != nil {
		r.Comment = *p.Comment
	}
	if !p.UpdatedAt.IsZero() {
		r.UpdatedAt = p.UpdatedAt
	}
	return r
}

// RatingCreated is emitted once per stored rating
type RatingCreated struct {
	ID        string    `json:"id"           example:"66f1c0ffee0000000000cafe"`
	StationID string    `json:"station_id"   example:"66f1c0ffee0000000000beef"`
	UserID    string    `json:"user_id"      example:"u-123"`
	Username  string    `json:"username"     example:"ada"`
	Value     int       `json:"rating_value" example:"4"`
	Comment   string    `json:"comment"      example:"fast and free parking"`
	Timestamp time.Time `json:"timestamp"    example:"2024-05-01T12:00:00Z"`
}

// Created builds the event for a stored record
func Created(r Record) RatingCreated {
	return RatingCreated{
		ID:        r.ID,
		StationID: r.StationID,
		UserID:    r.UserID,
		Username:  r.Username,
		Value:     r.Value,
		Comment:   r.Comment,
		Timestamp: r.Timestamp,
	}
}

// EventName implements events.Event
func (e RatingCreated) EventName() string { return EventRatingCreated }

// OccurredAt implements events.Event
func (e RatingCreated) OccurredAt() time.Time { return e.Timestamp }

// Describe implements events.Describer
func (e RatingCreated) Describe() events.Fields {
	return events.Fields{Subject: e.StationID, UserID: e.UserID, Count: e.Value}
}

// CreateRequest is the create body
type CreateRequest struct {
	Value   int    `json:"rating_value" example:"4"`
	Comment string `json:"comment"      example:"fast and free parking"`
}

// StationRef names a station in a path
type StationRef struct {
	StationID string `json:"station_id" validate:"required,opaque_id"`
}

// RatingRef names a rating in a path
type RatingRef struct {
	RatingID string `json:"rating_id" validate:"required,opaque_id"`
}

// ListResponse wraps a station's ratings
type ListResponse struct {
	Ratings []Record `json:"ratings"`
	Count   int      `json:"count" example:"1"`
}

// DeleteResponse reports a removed rating
type DeleteResponse struct {
	ID      string `json:"id"      example:"66f1c0ffee0000000000cafe"`
	Deleted bool   `json:"deleted" example:"true"`
}
