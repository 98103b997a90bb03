// Package domain holds the charging station model, events and ports
package domain

import (
	"strconv"
	"time"

	"chargemap/internal/core/events"
)

// DefaultStationName labels stations the register left unnamed
const DefaultStationName = "Unknown Name"

// EventStationSearched is the event name of ChargingStationSearched
const EventStationSearched = "charging_station.searched"

// Station is a charging station as served to callers
type Station struct {
	ID          string  `json:"id"                    example:"66f1c0ffee0000000000beef"`
	PostalCode  string  `json:"postal_code"           example:"10115"`
	Available   bool    `json:"availability_status"   example:"true"`
	Location    string  `json:"location"              example:"52.5321, 13.3849"`
	Name        string  `json:"name"                  example:"Stromnetz Berlin - Invalidenstraße 50"`
	PowerKW     float64 `json:"power_kw,omitempty"    example:"22"`
	Description string  `json:"description,omitempty" example:"Stromnetz Berlin, Invalidenstraße 50, Berlin"`
}

// FormatLocation renders a coordinate pair the way Station.Location carries it
func FormatLocation(lat, lon float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + ", " + strconv.FormatFloat(lon, 'f', -1, 64)
}

// NewStation is one station to import
type NewStation struct {
	PostalCode  string
	Available   bool
	Latitude    float64
	Longitude   float64
	Description string
	Name        string
	PowerKW     float64
}

// ChargingStationSearched is emitted once per search
type ChargingStationSearched struct {
	PostalCode    string    `json:"postal_code"    example:"10115"`
	StationsFound int       `json:"stations_found" example:"3"`
	Timestamp     time.Time `json:"timestamp"      example:"2024-05-01T12:00:00Z"`
}

// EventName implements events.Event
func (e ChargingStationSearched) EventName() string { return EventStationSearched }

// OccurredAt implements events.Event
func (e ChargingStationSearched) OccurredAt() time.Time { return e.Timestamp }

// Describe implements events.Describer
func (e ChargingStationSearched) Describe() events.Fields {
	return events.Fields{Subject: e.PostalCode, Count: e.StationsFound}
}

// SearchResult is the answer to a postal code search
// Stations keep store order
type SearchResult struct {
	Stations []Station
	Event    ChargingStationSearched
}

// SearchResponse is the wire form of SearchResult
type SearchResponse struct {
	Stations      []Station `json:"stations"`
	StationsFound int       `json:"stations_found" example:"3"`
	Timestamp     time.Time `json:"timestamp"      example:"2024-05-01T12:00:00Z"`
}

// Response flattens the result for transports
func (r SearchResult) Response() SearchResponse {
	st := r.Stations
	if st == nil {
		st = []Station{}
	}
	return SearchResponse{Stations: st, StationsFound: r.Event.StationsFound, Timestamp: r.Event.Timestamp}
}

// SearchInput is the search query
type SearchInput struct {
	PostalCode string `json:"postal_code" validate:"required,max=16" example:"10115"`
}

// StationRef addresses one station
type StationRef struct {
	StationID string `json:"station_id" validate:"required,opaque_id" example:"66f1c0ffee0000000000beef"`
}

// ToggleResponse reports the availability after a toggle
type ToggleResponse struct {
	StationID string `json:"station_id"          example:"66f1c0ffee0000000000beef"`
	Available bool   `json:"availability_status" example:"false"`
}
