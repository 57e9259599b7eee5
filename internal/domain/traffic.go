package domain

import "time"

// Location is a named area of the city, drawn from the location registry
type Location string

// AllLocations selects every incident regardless of where it happened
const AllLocations Location = "All"

// IncidentType classifies a traffic disruption
type IncidentType string

const (
	IncidentCongestion   IncidentType = "Congestion"
	IncidentAccident     IncidentType = "Accident"
	IncidentConstruction IncidentType = "Construction"
	IncidentEvent        IncidentType = "Event"
)

// IncidentTypes lists every incident type in display order
var IncidentTypes = []IncidentType{
	IncidentCongestion,
	IncidentAccident,
	IncidentConstruction,
	IncidentEvent,
}

// Incident represents a single synthetic traffic disruption between two locations.
// From and To may name the same location.
type Incident struct {
	Type         IncidentType `json:"type"`
	From         Location     `json:"from"`
	To           Location     `json:"to"`
	DelaySeconds int          `json:"delay_seconds"`
	LengthMeters int          `json:"length_meters"`
}

// SummaryStats holds the headline numbers for a batch of incidents.
// AverageDelaySeconds is nil when the batch is empty.
type SummaryStats struct {
	Count               int      `json:"count"`
	AverageDelaySeconds *float64 `json:"average_delay_seconds"`
	TotalLengthMeters   int      `json:"total_length_meters"`
}

// AverageDelay returns the mean delay or ErrEmptyBatch when there is nothing to average
func (s SummaryStats) AverageDelay() (float64, error) {
	if s.Count == 0 || s.AverageDelaySeconds == nil {
		return 0, ErrEmptyBatch
	}
	return *s.AverageDelaySeconds, nil
}

// TypeDistribution maps each incident type present in a batch to its count.
// Types that do not occur are omitted.
type TypeDistribution map[IncidentType]int

// TypeCount is one bar of the type distribution chart
type TypeCount struct {
	Type  IncidentType `json:"type"`
	Count int          `json:"count"`
}

// RankedIncident is an incident placed in the top affected list
type RankedIncident struct {
	Rank int `json:"rank"`
	Incident
}

// FormattedIncident is a ranked incident with human-readable delay and length
type FormattedIncident struct {
	Rank   int          `json:"rank"`
	From   Location     `json:"from"`
	To     Location     `json:"to"`
	Delay  string       `json:"delay"`
	Length string       `json:"length"`
	Type   IncidentType `json:"type"`
}

// HistoryPoint is one day of the synthetic historical series
type HistoryPoint struct {
	Date                time.Time `json:"date"`
	IncidentCount       int       `json:"incident_count"`
	AverageDelaySeconds float64   `json:"average_delay_seconds"`
}

// PointPrediction is a single synthetic guess for a future date.
// Location is echoed for display and has no influence on the values.
type PointPrediction struct {
	Date                         time.Time `json:"date"`
	Location                     Location  `json:"location"`
	PredictedIncidentCount       int       `json:"predicted_incident_count"`
	PredictedAverageDelaySeconds float64   `json:"predicted_average_delay_seconds"`
}

// Dashboard is the output of one render cycle for a selected location
type Dashboard struct {
	SnapshotID       string              `json:"snapshot_id"`
	City             string              `json:"city"`
	Location         Location            `json:"location"`
	Date             string              `json:"date"`
	Summary          *SummaryStats       `json:"summary"`
	TypeDistribution []TypeCount         `json:"type_distribution"`
	TopAffected      []FormattedIncident `json:"top_affected"`
	Incidents        []Incident          `json:"incidents"`

	// Ranked keeps the numeric ranking for prompt building
	Ranked []RankedIncident `json:"-"`
}
