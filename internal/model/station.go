// Package model defines the polling-station data types shared across the
// pipeline. The JSON field names on PollingStationRecord, ParishGroup and
// ExtractionResult are the contract with the dashboard frontend and must not
// change.
package model

import "time"

// PollingStationRecord is a single polling-station entry.
type PollingStationRecord struct {
	StationCode string `json:"stationCode"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Parish      string `json:"parish"`
	ParishID    int    `json:"parishId"`

	Constituency     string  `json:"constituency,omitempty"`
	Division         string  `json:"division,omitempty"`
	Latitude         float64 `json:"latitude,omitempty"`
	Longitude        float64 `json:"longitude,omitempty"`
	Capacity         int     `json:"capacity,omitempty"`
	RegisteredVoters int     `json:"registeredVoters,omitempty"`
}

// ParishGroup is the set of stations in one parish, sorted by station code.
type ParishGroup struct {
	Name     string                 `json:"name"`
	Stations []PollingStationRecord `json:"stations"`
}

// ExtractionResult is the pipeline's terminal output: parish groups sorted by
// parish name, with totalStations equal to the deduplicated record count.
type ExtractionResult struct {
	Parishes       []ParishGroup `json:"parishes"`
	TotalStations  int           `json:"totalStations"`
	DocumentSource string        `json:"documentSource"`
	ExtractionDate time.Time     `json:"extractionDate"`
}

// SourceDocument carries one registered source through the fetch and text
// extraction stages. Data is nil after a fetch failure; Text is empty after a
// parse failure. Lives only within a single pipeline run.
type SourceDocument struct {
	URL  string
	Name string
	Kind string
	Data []byte
	Text string
}
