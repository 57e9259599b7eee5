package service

import (
	"math/rand/v2"

	"github.com/smartcity/traffic-analyzer/internal/domain"
)

// DefaultIncidentCount is the batch size used when none is requested
const DefaultIncidentCount = 50

// Half-open ranges for generated incident fields
const (
	MinDelaySeconds = 60   // 1 minute
	MaxDelaySeconds = 1800 // 30 minutes, exclusive
	MinLengthMeters = 100
	MaxLengthMeters = 5000 // exclusive
)

// GenerateIncidents creates count synthetic incidents between the given locations.
// Every field is drawn independently and uniformly, so From and To can be the same place.
// A non-positive count falls back to DefaultIncidentCount.
func GenerateIncidents(rng *rand.Rand, locations []domain.Location, count int) []domain.Incident {
	if count <= 0 {
		count = DefaultIncidentCount
	}
	if len(locations) == 0 {
		return []domain.Incident{}
	}

	incidents := make([]domain.Incident, 0, count)
	for i := 0; i < count; i++ {
		incidents = append(incidents, domain.Incident{
			Type:         domain.IncidentTypes[rng.IntN(len(domain.IncidentTypes))],
			From:         locations[rng.IntN(len(locations))],
			To:           locations[rng.IntN(len(locations))],
			DelaySeconds: MinDelaySeconds + rng.IntN(MaxDelaySeconds-MinDelaySeconds),
			LengthMeters: MinLengthMeters + rng.IntN(MaxLengthMeters-MinLengthMeters),
		})
	}

	return incidents
}
