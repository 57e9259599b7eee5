package service

import (
	"strings"

	"github.com/smartcity/traffic-analyzer/internal/domain"
)

// FilterByLocation keeps incidents whose From or To contains location, ignoring case.
// The match is a substring match, so "Nagar" selects T Nagar, Anna Nagar and Besant Nagar.
// AllLocations returns a copy of the whole batch.
func FilterByLocation(incidents []domain.Incident, location domain.Location) []domain.Incident {
	if location == domain.AllLocations {
		out := make([]domain.Incident, len(incidents))
		copy(out, incidents)
		return out
	}

	needle := strings.ToLower(string(location))
	out := make([]domain.Incident, 0, len(incidents))
	for _, inc := range incidents {
		if strings.Contains(strings.ToLower(string(inc.From)), needle) ||
			strings.Contains(strings.ToLower(string(inc.To)), needle) {
			out = append(out, inc)
		}
	}

	return out
}
